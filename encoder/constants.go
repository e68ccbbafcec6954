package encoder

// opcodes maps each mnemonic to its 4-bit opcode nibble. Mnemonics that
// share an opcode (the INPUTC family, the BR family, SHIFTL/SHIFTR) are
// distinguished by the field_a/field_b bits their encode function fills
// in, exactly as the instruction set defines them.
var opcodes = map[string]string{
	"NOOP": "0000",

	"INPUTC": "0001", "INPUTCF": "0001", "INPUTD": "0001", "INPUTDF": "0001",

	"MOVE": "0010",

	"LOADI": "0011", "LOADP": "0011",

	"ADD": "0100",

	"ADDI": "0101",

	"SUB": "0110",

	"SUBI": "0111",

	"LOAD": "1000",

	"LOADF": "1001",

	"STORE": "1010",

	"STOREF": "1011",

	"SHIFTL": "1100", "SHIFTR": "1100",

	"CMP": "1101",

	"JUMP": "1110",

	"BRE": "1111", "BRZ": "1111", "BRNE": "1111", "BRNZ": "1111",
	"BRG": "1111", "BRGE": "1111",
}

// word assembles the 16-bit instruction word from its opcode and the
// three operand fields, underscore-delimited at the same nibble
// boundaries the image emitter's transcript uses.
func word(opcode, fieldA, fieldB, fieldC string) string {
	return opcode + "_" + fieldA + "_" + fieldB + "_" + fieldC
}
