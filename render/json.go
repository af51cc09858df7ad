package render

import (
	"encoding/json"
	"io"
)

// JSONRenderer writes the report as one JSON document to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the report.
func (r *JSONRenderer) Render(rep Report) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
