package parser

// DMEMLimit is the number of variables (scalar or array) .data may
// declare; an array counts once, whatever its length.
const DMEMLimit = 16

// IMEMLimit is the number of instructions .code may contain.
const IMEMLimit = 32

// Mnemonics is the set of opcodes the assembler understands. It exists
// independently of the encoder's dispatch table so the label resolver can
// validate an opcode token without importing the encoder package.
var Mnemonics = map[string]bool{
	"NOOP": true, "INPUTC": true, "INPUTCF": true, "INPUTD": true, "INPUTDF": true,
	"MOVE": true, "LOADI": true, "LOADP": true, "ADD": true, "ADDI": true,
	"SUB": true, "SUBI": true, "LOAD": true, "LOADF": true, "STORE": true,
	"STOREF": true, "SHIFTL": true, "SHIFTR": true, "CMP": true,
	"JUMP": true, "BRE": true, "BRZ": true, "BRNE": true, "BRNZ": true,
	"BRG": true, "BRGE": true,
}

// BranchMnemonics is the subset of Mnemonics whose first operand is a
// code label rather than a register or bracket expression.
var BranchMnemonics = map[string]bool{
	"JUMP": true, "BRE": true, "BRZ": true, "BRNE": true, "BRNZ": true,
	"BRG": true, "BRGE": true,
}

// IsValidOpcode reports whether token names a known mnemonic.
func IsValidOpcode(token string) bool {
	return Mnemonics[token]
}

// IsBranchOpcode reports whether token is a jump or conditional branch.
func IsBranchOpcode(token string) bool {
	return BranchMnemonics[token]
}
