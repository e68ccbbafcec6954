// Package assembler fuses the parser and encoder passes into the one
// "core" entry point a caller needs per source file: parse, encode,
// emit. i281 has no separate linking pass, so unlike a multi-stage
// toolchain this is a single deterministic function, not a pipeline of
// independently invokable stages.
package assembler

import (
	"github.com/brandtdamman/i281-software/image"
	"github.com/brandtdamman/i281-software/parser"
)

// Result is everything a successful assembly produces: the resolved
// program (symbol/branch tables, instruction stream) and the code/data
// images ready for transcript and Verilog emission.
type Result struct {
	Program *parser.Program
	Image   *image.Image
}

// Assemble runs the full pipeline over source: lex/split sections,
// resolve labels, allocate data, then encode every instruction and
// build the padded code/data images. It returns the first failure
// encountered, matching the specification's single-diagnostic-per-file
// model; subsequent sources in a batch are unaffected by one file's
// failure (see report.Batch).
func Assemble(source string) (*Result, error) {
	return AssembleWithLimits(source, parser.DefaultLimits())
}

// AssembleWithLimits is Assemble with configurable memory bounds,
// typically those of the loaded configuration file.
func AssembleWithLimits(source string, limits parser.Limits) (*Result, error) {
	program, err := parser.ParseWithLimits(source, limits)
	if err != nil {
		return nil, err
	}

	img, err := image.Build(program)
	if err != nil {
		return nil, err
	}

	return &Result{Program: program, Image: img}, nil
}
