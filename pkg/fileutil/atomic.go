// Package fileutil provides file reading with size limits, atomic writes,
// and encoding of settings in the formats oaslint writes.
package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/oaslint/internal/errors"
)

// Encoding names an output serialization.
type Encoding string

// Supported encodings.
const (
	EncodingYAML Encoding = "yaml"
	EncodingTOML Encoding = "toml"
	EncodingJSON Encoding = "json"
)

// Encode serializes v. The result always ends with a newline.
func Encode(v any, enc Encoding) (data []byte, err error) {
	switch enc {
	case EncodingYAML:
		// yaml.Marshal panics on unmarshalable types
		defer func() {
			if r := recover(); r != nil {
				err = errors.Newf("marshaling YAML: %v", r)
			}
		}()
		data, err = yaml.Marshal(v)
	case EncodingTOML:
		data, err = toml.Marshal(v)
	case EncodingJSON:
		data, err = json.MarshalIndent(v, "", "  ")
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "%q", enc)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "marshaling %s", enc)
	}

	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}

// AtomicWriteFile writes data to a file atomically using a temp file + rename pattern.
// Interrupted writes leave the original file intact.
//
// The caller is responsible for ensuring the parent directory exists.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	// Same directory so the rename stays on one filesystem
	tmp, err := os.CreateTemp(dir, ".oaslint-atomic-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	tmpName := tmp.Name()
	defer func() {
		// Only present if the rename did not happen
		if _, statErr := os.Stat(tmpName); statErr == nil {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}

	return nil
}

// AtomicWriteEncoded encodes v and writes it to path atomically.
func AtomicWriteEncoded(path string, v any, enc Encoding, perm os.FileMode) error {
	data, err := Encode(v, enc)
	if err != nil {
		return err
	}
	return AtomicWriteFile(path, data, perm)
}
