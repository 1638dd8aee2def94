package emitter

import (
	"bufio"
	"fmt"
	"io"

	"builtins/internal/domain"
)

// TextEmitter writes a human-readable listing, one object per section.
type TextEmitter struct{}

func NewTextEmitter() *TextEmitter {
	return &TextEmitter{}
}

func (e *TextEmitter) Format() string { return "text" }

func (e *TextEmitter) Emit(w io.Writer, m domain.Manifest) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Framework: %s (namespace %s, macro prefix %s)\n", m.Framework, m.Namespace, m.MacroPrefix)
	for _, c := range m.Copyrights {
		fmt.Fprintf(bw, "Copyright (C) %s\n", c)
	}

	for _, obj := range m.Objects {
		fmt.Fprintf(bw, "\n%s:\n", obj.Name)
		for _, fn := range obj.Functions {
			fmt.Fprintf(bw, "  %s\n", fn)
		}
	}

	return bw.Flush()
}
