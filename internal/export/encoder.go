// Package export serializes parsed hands for external consumers. It
// consumes the parser's ordered field projection and emits TOML or JSON.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Format selects the output encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Encode writes the record to w in the requested format.
func Encode(w io.Writer, r *Record, format Format) error {
	if r == nil {
		return fmt.Errorf("export: record is nil")
	}
	switch format {
	case FormatTOML:
		return EncodeTOML(w, r)
	case FormatJSON:
		return EncodeJSON(w, r)
	default:
		return fmt.Errorf("export: unsupported format %q", format)
	}
}

// EncodeTOML writes the record as TOML.
func EncodeTOML(w io.Writer, r *Record) error {
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(r)
}

// EncodeJSON writes the record as indented JSON with a trailing newline.
func EncodeJSON(w io.Writer, r *Record) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
