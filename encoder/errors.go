package encoder

import (
	"fmt"

	"github.com/brandtdamman/i281-software/parser"
)

// EncodingError gives an instruction-encoding failure the context an
// encoder-only *parser.Error can't carry on its own: which instruction
// in the stream it was, and the raw line the programmer wrote.
type EncodingError struct {
	Instruction *parser.Instruction
	Wrapped     error
}

func (e *EncodingError) Error() string {
	if e.Instruction == nil || e.Instruction.RawLine == "" {
		return e.Wrapped.Error()
	}
	return fmt.Sprintf("%s\n%s", e.Wrapped.Error(), e.Instruction.RawLine)
}

// Unwrap exposes the underlying *parser.Error for errors.As callers.
func (e *EncodingError) Unwrap() error {
	return e.Wrapped
}

// wrap attaches inst to err, returning nil when err is nil and avoiding
// double-wrapping.
func wrap(inst *parser.Instruction, err error) error {
	if err == nil {
		return nil
	}
	if ee, ok := err.(*EncodingError); ok {
		return ee
	}
	return &EncodingError{Instruction: inst, Wrapped: err}
}
