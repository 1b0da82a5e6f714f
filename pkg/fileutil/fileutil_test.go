package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/oaslint/internal/errors"
)

type sample struct {
	Version int    `yaml:"version" toml:"version" json:"version"`
	Name    string `yaml:"name" toml:"name" json:"name"`
}

func TestEncode(t *testing.T) {
	tests := []struct {
		enc  Encoding
		want []string
	}{
		{EncodingYAML, []string{"version: 1\n", "name: petstore\n"}},
		{EncodingTOML, []string{"version = 1\n", "name = ", "petstore"}},
		{EncodingJSON, []string{`"version": 1,`, `"name": "petstore"`}},
	}
	for _, tt := range tests {
		t.Run(string(tt.enc), func(t *testing.T) {
			got, err := Encode(sample{Version: 1, Name: "petstore"}, tt.enc)
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(string(got), want) {
					t.Errorf("Encode() = %q, missing %q", got, want)
				}
			}
			if !strings.HasSuffix(string(got), "\n") {
				t.Error("output should end with a newline")
			}
		})
	}
}

func TestEncode_Unsupported(t *testing.T) {
	_, err := Encode(sample{}, Encoding("xml"))
	if !errors.Is(err, errors.ErrUnsupportedFormat) {
		t.Errorf("Encode() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		perm os.FileMode
	}{
		{"successful write", []byte("hello world\n"), 0o644},
		{"empty data", []byte{}, 0o644},
		{"private file", []byte("version: 1\n"), 0o600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "test-file")

			if err := AtomicWriteFile(path, tt.data, tt.perm); err != nil {
				t.Fatalf("AtomicWriteFile() error = %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if string(got) != string(tt.data) {
				t.Errorf("content = %q, want %q", got, tt.data)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("Stat() error = %v", err)
			}
			if info.Mode().Perm() != tt.perm {
				t.Errorf("perm = %o, want %o", info.Mode().Perm(), tt.perm)
			}
		})
	}
}

func TestAtomicWriteFile_NoTempLeftBehind(t *testing.T) {
	dir := t.TempDir()
	if err := AtomicWriteEncoded(filepath.Join(dir, "config.yaml"), sample{Version: 1}, EncodingYAML, 0o600); err != nil {
		t.Fatalf("AtomicWriteEncoded() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".oaslint-atomic-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 file, got %d", len(entries))
	}
}

func TestAtomicWriteFile_MissingDir(t *testing.T) {
	err := AtomicWriteFile(filepath.Join(t.TempDir(), "missing", "file"), []byte("x"), 0o644)
	if err == nil {
		t.Error("expected error for missing parent directory")
	}
}

func TestReadFileWithLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	if err := os.WriteFile(path, []byte("openapi: 3.0.0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	data, err := ReadFileWithLimit(path, MaxDocumentSize)
	if err != nil {
		t.Fatalf("ReadFileWithLimit() error = %v", err)
	}
	if string(data) != "openapi: 3.0.0\n" {
		t.Errorf("data = %q", data)
	}

	if _, err := ReadFileWithLimit(path, 4); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("expected ErrFileTooLarge, got %v", err)
	}

	if _, err := ReadFileWithLimit(filepath.Join(dir, "missing"), MaxDocumentSize); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
