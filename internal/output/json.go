// Package output writes analyses as JSON or XLSX and validates written JSON against
// the embedded analysis schema.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

const jsonIndent = "    "

// WriteJSON encodes v with four-space indentation, leaving non-ASCII and HTML characters as is.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", jsonIndent)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// MarshalJSON returns the bytes WriteJSON would write.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveJSON writes v to path and checks the result against the analysis schema.
func SaveJSON(path string, v any) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	if err := Validate(data); err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
