package parser

// Instruction is a single code-section line after label stripping: its
// mnemonic, its operand tokens, and its zero-based index within the
// instruction stream (the index branch targets and PC-relative
// displacements are computed against).
type Instruction struct {
	Mnemonic string
	Operands []string
	Index    int
	RawLine  string
}

// BuildInstructions splits each resolved code line into an Instruction.
func BuildInstructions(resolvedLines []string) []*Instruction {
	out := make([]*Instruction, len(resolvedLines))
	for i, line := range resolvedLines {
		tokens := SplitTokens(line)
		var mnemonic string
		var operands []string
		if len(tokens) > 0 {
			mnemonic = tokens[0]
			operands = tokens[1:]
		}
		out[i] = &Instruction{Mnemonic: mnemonic, Operands: operands, Index: i, RawLine: line}
	}
	return out
}
