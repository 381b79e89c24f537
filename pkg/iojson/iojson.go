// Package iojson reads and writes JSON from a command line interface
// perspective.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Encode writes v to w as indented JSON.
func Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
