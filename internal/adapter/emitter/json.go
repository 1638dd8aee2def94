package emitter

import (
	"encoding/json"
	"io"

	"builtins/internal/domain"
)

// JSONEmitter writes the manifest as indented JSON.
type JSONEmitter struct{}

func NewJSONEmitter() *JSONEmitter {
	return &JSONEmitter{}
}

func (e *JSONEmitter) Format() string { return "json" }

func (e *JSONEmitter) Emit(w io.Writer, m domain.Manifest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
