package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter formats data as single-line JSON.
type JSONFormatter struct{}

// Format writes data as one JSON line.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	return json.NewEncoder(w).Encode(data)
}
