// Package main is the entry point for the oaslint CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/oaslint/cmd/oaslint/commands"
	"github.com/thoreinstein/oaslint/internal/errors"
)

func main() {
	err := commands.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
		}
	}
	os.Exit(errors.ExitCode(err))
}
