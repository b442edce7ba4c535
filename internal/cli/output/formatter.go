package output

import (
	"fmt"
	"io"
)

// Format represents the output format.
type Format string

const (
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatPlain, FormatJSON, FormatYAML}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// Result is the record emitted at the end of a successful session.
type Result struct {
	Sum string `json:"sum" yaml:"sum"`
}

// Formatter formats data for output.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter creates a formatter for the given format.
// Unknown formats fall back to plain.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &PlainFormatter{}
	}
}

// errUnsupported reports a value a formatter cannot render.
func errUnsupported(f Format, data any) error {
	return fmt.Errorf("%s formatter: unsupported value of type %T", f, data)
}
