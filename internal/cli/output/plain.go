package output

import (
	"fmt"
	"io"
)

// PlainFormatter writes the bare sum followed by a newline.
type PlainFormatter struct{}

// Format writes Result.Sum, a fmt.Stringer or a string on its own line.
func (f *PlainFormatter) Format(w io.Writer, data any) error {
	var line string
	switch v := data.(type) {
	case Result:
		line = v.Sum
	case *Result:
		if v == nil {
			return errUnsupported(FormatPlain, data)
		}
		line = v.Sum
	case string:
		line = v
	case fmt.Stringer:
		line = v.String()
	default:
		return errUnsupported(FormatPlain, data)
	}

	_, err := io.WriteString(w, line+"\n")
	return err
}
