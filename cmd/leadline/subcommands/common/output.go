package common

import (
	"encoding/json"
	"io"
)

// PrintJSON writes v as indented json.
func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}
