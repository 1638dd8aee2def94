package emitter

import (
	"fmt"

	"builtins/internal/port"
)

// New returns the emitter registered for format.
func New(format, packageName string) (port.Emitter, error) {
	switch format {
	case "json", "":
		return NewJSONEmitter(), nil
	case "go":
		return NewGoEmitter(packageName), nil
	case "text":
		return NewTextEmitter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
