// Package editor launches the user's text editor on a file.
package editor

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/oaslint/internal/errors"
)

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// Command builds the editor invocation for path without starting it.
// The editor comes from $EDITOR, then $VISUAL, then nano, then vi.
// Editor values may carry arguments, e.g. "code --wait".
func Command(ctx context.Context, path string) *exec.Cmd {
	fields := strings.Fields(detectEditor())
	args := append(fields[1:], path)

	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// Open runs the editor on path and waits for it to exit.
func Open(ctx context.Context, path string) error {
	if err := Command(ctx, path).Run(); err != nil {
		return errors.Wrapf(err, "running editor on %s", path)
	}
	return nil
}

func detectEditor() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}
	if _, err := lookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
