package encoder

import (
	"strconv"

	"github.com/brandtdamman/i281-software/parser"
)

// Encode translates a single resolved instruction into its 16-bit
// machine word, rendered as opcode_fa_fb_fc with underscores at the
// nibble boundaries the image emitter reproduces verbatim.
func Encode(inst *parser.Instruction, symbols *parser.SymbolTable, branches *parser.BranchTable) (string, error) {
	opcode, ok := opcodes[inst.Mnemonic]
	if !ok {
		return "", wrap(inst, parser.NewError(parser.InstructionError, inst.Index, "Opcode is not valid"))
	}

	var fa, fb, fc string
	var err error

	switch inst.Mnemonic {
	case "NOOP":
		fa, fb, fc, err = encodeNOOP(inst)
	case "INPUTC":
		fa, fb, fc, err = encodeInputPlain(inst, symbols, "00")
	case "INPUTD":
		fa, fb, fc, err = encodeInputPlain(inst, symbols, "10")
	case "INPUTCF":
		fa, fb, fc, err = encodeInputFast(inst, symbols, "01")
	case "INPUTDF":
		fa, fb, fc, err = encodeInputFast(inst, symbols, "11")
	case "MOVE", "ADD", "SUB", "CMP":
		fa, fb, fc, err = encodeMACS(inst)
	case "ADDI", "SUBI":
		fa, fb, fc, err = encodeSAI(inst)
	case "LOADI":
		fa, fb, fc, err = encodeLOADI(inst)
	case "LOADP":
		fa, fb, fc, err = encodeLOADP(inst, symbols)
	case "LOAD":
		fa, fb, fc, err = encodeLOAD(inst, symbols)
	case "LOADF":
		fa, fb, fc, err = encodeLOADF(inst, symbols)
	case "STORE":
		fa, fb, fc, err = encodeSTORE(inst, symbols)
	case "STOREF":
		fa, fb, fc, err = encodeSTOREF(inst, symbols)
	case "SHIFTL":
		fa, fb, fc, err = encodeSHIFT(inst, "00")
	case "SHIFTR":
		fa, fb, fc, err = encodeSHIFT(inst, "01")
	case "JUMP", "BRE", "BRZ":
		fa, fb, fc, err = encodeBranch(inst, branches, "00")
	case "BRNE", "BRNZ":
		fa, fb, fc, err = encodeBranch(inst, branches, "01")
	case "BRG":
		fa, fb, fc, err = encodeBranch(inst, branches, "10")
	case "BRGE":
		fa, fb, fc, err = encodeBranch(inst, branches, "11")
	default:
		err = parser.NewError(parser.InstructionError, inst.Index, "Opcode is not valid")
	}

	if err != nil {
		return "", wrap(inst, err)
	}
	return word(opcode, fa, fb, fc), nil
}

func requireLength(inst *parser.Instruction, min int) error {
	if len(inst.Operands) < min {
		return parser.NewError(parser.ArgumentError, inst.Index,
			inst.Mnemonic+" does not have the correct number of arguments ( "+strconv.Itoa(min)+" ).")
	}
	return nil
}

func requireComma(tok string, lineNumber int) error {
	if tok != "," {
		return parser.NewError(parser.InstructionError, lineNumber, "Token is not a comma.")
	}
	return nil
}

func register(tok string, lineNumber int) (parser.Register, error) {
	r, ok := parser.RegisterFromToken(tok)
	if !ok {
		return 0, parser.NewError(parser.ArgumentError, lineNumber, "Register [ "+tok+" ] does not exist.")
	}
	return r, nil
}

// immediateBits renders a literal integer operand (not a data address)
// to its 8-bit two's-complement form, matching integerToBinary's
// sign-aware digit check.
func immediateBits(tok string, lineNumber int) (string, error) {
	n, convErr := strconv.Atoi(tok)
	if convErr != nil {
		return "", parser.NewError(parser.ValueError, lineNumber, "Value given ( "+tok+" ) is invalid.")
	}
	return parser.ByteBits(n), nil
}

func encodeNOOP(inst *parser.Instruction) (string, string, string, error) {
	if len(inst.Operands) > 0 {
		return "", "", "", parser.NewError(parser.ArgumentError, inst.Index,
			"NOOP does not have the correct number of arguments ( 0 ).")
	}
	return "00", "00", "00000000", nil
}

func encodeInputPlain(inst *parser.Instruction, symbols *parser.SymbolTable, fieldB string) (string, string, string, error) {
	if err := requireLength(inst, 3); err != nil {
		return "", "", "", err
	}
	br, err := parser.ParseBracket(inst.Operands, symbols, parser.SquareBracket(true), inst.Index)
	if err != nil {
		return "", "", "", err
	}
	return "00", fieldB, parser.ByteBits(br.Address), nil
}

func encodeInputFast(inst *parser.Instruction, symbols *parser.SymbolTable, fieldB string) (string, string, string, error) {
	if err := requireLength(inst, 3); err != nil {
		return "", "", "", err
	}
	br, err := parser.ParseBracket(inst.Operands, symbols, parser.SquareBracketWithRegister(true), inst.Index)
	if err != nil {
		return "", "", "", err
	}
	return br.Register.Bits(), fieldB, parser.ByteBits(br.Address), nil
}

func encodeMACS(inst *parser.Instruction) (string, string, string, error) {
	if err := requireLength(inst, 3); err != nil {
		return "", "", "", err
	}
	if err := requireComma(inst.Operands[1], inst.Index); err != nil {
		return "", "", "", err
	}
	ra, err := register(inst.Operands[0], inst.Index)
	if err != nil {
		return "", "", "", err
	}
	rb, err := register(inst.Operands[2], inst.Index)
	if err != nil {
		return "", "", "", err
	}
	return ra.Bits(), rb.Bits(), "00000000", nil
}

func encodeSAI(inst *parser.Instruction) (string, string, string, error) {
	if err := requireLength(inst, 3); err != nil {
		return "", "", "", err
	}
	if err := requireComma(inst.Operands[1], inst.Index); err != nil {
		return "", "", "", err
	}
	ra, err := register(inst.Operands[0], inst.Index)
	if err != nil {
		return "", "", "", err
	}
	imm, err := immediateBits(inst.Operands[2], inst.Index)
	if err != nil {
		return "", "", "", err
	}
	return ra.Bits(), "00", imm, nil
}

func encodeLOADI(inst *parser.Instruction) (string, string, string, error) {
	if err := requireLength(inst, 3); err != nil {
		return "", "", "", err
	}
	if err := requireComma(inst.Operands[1], inst.Index); err != nil {
		return "", "", "", err
	}
	ra, err := register(inst.Operands[0], inst.Index)
	if err != nil {
		return "", "", "", err
	}
	imm, err := immediateBits(inst.Operands[2], inst.Index)
	if err != nil {
		return "", "", "", err
	}
	return ra.Bits(), "00", imm, nil
}

func encodeLOADP(inst *parser.Instruction, symbols *parser.SymbolTable) (string, string, string, error) {
	if err := requireLength(inst, 5); err != nil {
		return "", "", "", err
	}
	if err := requireComma(inst.Operands[1], inst.Index); err != nil {
		return "", "", "", err
	}
	ra, err := register(inst.Operands[0], inst.Index)
	if err != nil {
		return "", "", "", err
	}
	br, err := parser.ParseBracket(inst.Operands[2:], symbols, parser.CurlyBracket(), inst.Index)
	if err != nil {
		return "", "", "", err
	}
	return ra.Bits(), "00", parser.ByteBits(br.Address), nil
}

func encodeLOAD(inst *parser.Instruction, symbols *parser.SymbolTable) (string, string, string, error) {
	if err := requireLength(inst, 5); err != nil {
		return "", "", "", err
	}
	if err := requireComma(inst.Operands[1], inst.Index); err != nil {
		return "", "", "", err
	}
	ra, err := register(inst.Operands[0], inst.Index)
	if err != nil {
		return "", "", "", err
	}
	br, err := parser.ParseBracket(inst.Operands[2:], symbols, parser.SquareBracket(true), inst.Index)
	if err != nil {
		return "", "", "", err
	}
	return ra.Bits(), "00", parser.ByteBits(br.Address), nil
}

func encodeLOADF(inst *parser.Instruction, symbols *parser.SymbolTable) (string, string, string, error) {
	if err := requireLength(inst, 7); err != nil {
		return "", "", "", err
	}
	if err := requireComma(inst.Operands[1], inst.Index); err != nil {
		return "", "", "", err
	}
	ra, err := register(inst.Operands[0], inst.Index)
	if err != nil {
		return "", "", "", err
	}
	br, err := parser.ParseBracket(inst.Operands[2:], symbols, parser.SquareBracketWithRegister(false), inst.Index)
	if err != nil {
		return "", "", "", err
	}
	return ra.Bits(), br.Register.Bits(), parser.ByteBits(br.Address), nil
}

// commaIndex finds the ',' separating the bracket expression from the
// trailing register operand, matching tokens.index(',') in the
// original: STORE/STOREF never assume a fixed token offset for it.
func commaIndex(tokens []string, lineNumber int) (int, error) {
	for i, tok := range tokens {
		if tok == "," {
			return i, nil
		}
	}
	return 0, parser.NewError(parser.InstructionError, lineNumber, "Token is not a comma.")
}

func encodeSTORE(inst *parser.Instruction, symbols *parser.SymbolTable) (string, string, string, error) {
	if err := requireLength(inst, 5); err != nil {
		return "", "", "", err
	}
	idx, err := commaIndex(inst.Operands, inst.Index)
	if err != nil {
		return "", "", "", err
	}
	br, err := parser.ParseBracket(inst.Operands[:idx], symbols, parser.SquareBracket(true), inst.Index)
	if err != nil {
		return "", "", "", err
	}
	if idx+1 >= len(inst.Operands) {
		return "", "", "", parser.NewError(parser.ArgumentError, inst.Index, "STORE does not have the correct number of arguments ( 5 ).")
	}
	ra, err := register(inst.Operands[idx+1], inst.Index)
	if err != nil {
		return "", "", "", err
	}
	return ra.Bits(), "00", parser.ByteBits(br.Address), nil
}

func encodeSTOREF(inst *parser.Instruction, symbols *parser.SymbolTable) (string, string, string, error) {
	if err := requireLength(inst, 7); err != nil {
		return "", "", "", err
	}
	idx, err := commaIndex(inst.Operands, inst.Index)
	if err != nil {
		return "", "", "", err
	}
	br, err := parser.ParseBracket(inst.Operands[:idx], symbols, parser.SquareBracketWithRegister(true), inst.Index)
	if err != nil {
		return "", "", "", err
	}
	if idx+1 >= len(inst.Operands) {
		return "", "", "", parser.NewError(parser.ArgumentError, inst.Index, "STOREF does not have the correct number of arguments ( 7 ).")
	}
	ra, err := register(inst.Operands[idx+1], inst.Index)
	if err != nil {
		return "", "", "", err
	}
	return ra.Bits(), br.Register.Bits(), parser.ByteBits(br.Address), nil
}

func encodeSHIFT(inst *parser.Instruction, fieldB string) (string, string, string, error) {
	if err := requireLength(inst, 1); err != nil {
		return "", "", "", err
	}
	ra, err := register(inst.Operands[0], inst.Index)
	if err != nil {
		return "", "", "", err
	}
	return ra.Bits(), fieldB, "00000000", nil
}

func encodeBranch(inst *parser.Instruction, branches *parser.BranchTable, fieldB string) (string, string, string, error) {
	if err := requireLength(inst, 1); err != nil {
		return "", "", "", err
	}
	target, ok := branches.Lookup(inst.Operands[0])
	if !ok {
		return "", "", "", parser.NewError(parser.InstructionError, inst.Index, "Jump label in use does not exist.")
	}
	rel := target - (inst.Index + 1)
	return "00", fieldB, parser.ByteBits(rel), nil
}
