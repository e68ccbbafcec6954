package parser

// Program is the fully resolved result of the lex/label/data passes: a
// symbol table for data addressing, a branch table for jump targets, and
// the ordered instruction stream the encoder consumes next. It owns all
// per-source state exclusively; nothing is shared between invocations.
type Program struct {
	Symbols      *SymbolTable
	Branches     *BranchTable
	Instructions []*Instruction
}

// Limits bounds one assembly's data and instruction memories. The
// defaults match the i281 hardware; a configuration file may relax
// them for experimentation.
type Limits struct {
	DMEM int
	IMEM int
}

// DefaultLimits returns the real i281 memory bounds.
func DefaultLimits() Limits {
	return Limits{DMEM: DMEMLimit, IMEM: IMEMLimit}
}

// Parse runs the lexer, label resolver, and data allocator over source,
// returning a Program ready for instruction encoding. It stops at the
// first failure, matching the assembler's single-error-per-file model.
func Parse(source string) (*Program, error) {
	return ParseWithLimits(source, DefaultLimits())
}

// ParseWithLimits is Parse with configurable memory bounds.
func ParseWithLimits(source string, limits Limits) (*Program, error) {
	cleaned, err := CleanWithLimits(source, limits)
	if err != nil {
		return nil, err
	}

	resolvedCode, branches, err := ResolveLabels(cleaned.CodeLines())
	if err != nil {
		return nil, err
	}

	symbols, err := AllocateDataWithLimits(cleaned.DataLines(), limits)
	if err != nil {
		return nil, err
	}

	return &Program{
		Symbols:      symbols,
		Branches:     branches,
		Instructions: BuildInstructions(resolvedCode),
	}, nil
}
