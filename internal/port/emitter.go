package port

import (
	"io"

	"builtins/internal/domain"
)

// Emitter writes a manifest in some output format.
type Emitter interface {
	Emit(w io.Writer, m domain.Manifest) error

	// Format returns the name used to select the emitter, e.g. "json".
	Format() string
}
