// Package transfer reads and writes address books in the exchange formats
// the app understands: CSV, JSON and YAML, picked by file extension.
package transfer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jask/rubrica/internal/contact"
)

// Format identifies a serialisation.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from the file extension. Unknown extensions
// are treated as CSV.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatCSV
	}
}

// Decode parses every contact in r. It fails on the first bad record so
// callers never see a partial result.
func Decode(r io.Reader, f Format) ([]contact.Contact, error) {
	var (
		out []contact.Contact
		err error
	)
	switch f {
	case FormatJSON:
		out, err = decodeJSON(r)
	case FormatYAML:
		out, err = decodeYAML(r)
	default:
		out, err = decodeCSV(r)
	}
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] = out[i].Normalize()
		out[i].ID = ""
		if err := out[i].Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return out, nil
}

// Encode writes contacts to w.
func Encode(w io.Writer, f Format, contacts []contact.Contact) error {
	switch f {
	case FormatJSON:
		return encodeJSON(w, contacts)
	case FormatYAML:
		return encodeYAML(w, contacts)
	default:
		return encodeCSV(w, contacts)
	}
}

// ReadFile decodes the address book at path.
func ReadFile(path string) ([]contact.Contact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out, err := Decode(f, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return out, nil
}

// WriteFile encodes contacts to path. Data goes to a temporary file first
// and is renamed into place, so a failure never leaves a truncated export.
func WriteFile(path string, contacts []contact.Contact) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if err := Encode(f, FormatFor(path), contacts); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
