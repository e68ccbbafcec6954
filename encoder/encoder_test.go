package encoder

import (
	"testing"

	"github.com/brandtdamman/i281-software/parser"
)

func encodeSource(t *testing.T, source string) []string {
	t.Helper()
	program, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	words := make([]string, len(program.Instructions))
	for i, inst := range program.Instructions {
		w, err := Encode(inst, program.Symbols, program.Branches)
		if err != nil {
			t.Fatalf("unexpected encode error on %q: %v", inst.RawLine, err)
		}
		words[i] = w
	}
	return words
}

func TestEncode_NOOP(t *testing.T) {
	words := encodeSource(t, ".code\nNOOP")
	if words[0] != "0000_00_00_00000000" {
		t.Errorf("expected NOOP word, got %s", words[0])
	}
}

func TestEncode_LOADI(t *testing.T) {
	words := encodeSource(t, ".data\nX BYTE 5\n.code\nLOADI A , 7")
	if words[0] != "0011_00_00_00000111" {
		t.Errorf("expected LOADI word, got %s", words[0])
	}
}

func TestEncode_LOAD(t *testing.T) {
	words := encodeSource(t, ".data\nV BYTE 1 , 2 , 3\n.code\nLOAD B , [ V + 2 ]")
	if words[0] != "1000_01_00_00000010" {
		t.Errorf("expected LOAD word, got %s", words[0])
	}
}

func TestEncode_ForwardBranch(t *testing.T) {
	words := encodeSource(t, ".code\nNOOP\nBRE L\nNOOP\nL: NOOP")
	if words[1] != "1111_00_00_00000001" {
		t.Errorf("expected BRE displacement word, got %s", words[1])
	}
}

func TestEncode_BackwardBranch(t *testing.T) {
	words := encodeSource(t, ".code\nL: NOOP\nJUMP L")
	if words[1] != "1110_00_00_11111110" {
		t.Errorf("expected JUMP displacement word, got %s", words[1])
	}
}

func TestEncode_MOVE(t *testing.T) {
	words := encodeSource(t, ".code\nMOVE A , B")
	if words[0] != "0010_00_01_00000000" {
		t.Errorf("expected MOVE word, got %s", words[0])
	}
}

func TestEncode_STORE(t *testing.T) {
	words := encodeSource(t, ".data\nX BYTE 1\n.code\nSTORE [ X ] , C")
	if words[0] != "1010_10_00_00000000" {
		t.Errorf("expected STORE word, got %s", words[0])
	}
}

func TestEncode_STOREF(t *testing.T) {
	words := encodeSource(t, ".data\nX BYTE 1\n.code\nSTOREF [ X + A ] , C")
	if words[0] != "1011_10_00_00000000" {
		t.Errorf("expected STOREF word, got %s", words[0])
	}
}

func TestEncode_SHIFTLAndSHIFTR(t *testing.T) {
	words := encodeSource(t, ".code\nSHIFTL A\nSHIFTR B")
	if words[0] != "1100_00_00_00000000" {
		t.Errorf("expected SHIFTL word, got %s", words[0])
	}
	if words[1] != "1100_01_01_00000000" {
		t.Errorf("expected SHIFTR word, got %s", words[1])
	}
}

func TestEncode_LOADP_PermissiveOutOfRange(t *testing.T) {
	words := encodeSource(t, ".data\nX BYTE 1\n.code\nLOADP A , { X + 100 }")
	if words[0] != "0011_00_00_01100100" {
		t.Errorf("expected permissive LOADP word, got %s", words[0])
	}
}

func TestEncode_UnknownOpcode(t *testing.T) {
	_, err := parser.Parse(".code\nFROB A")
	if err == nil {
		t.Fatal("expected parse-time failure for unknown opcode")
	}
}

func TestEncode_WrongArgumentCount(t *testing.T) {
	program, err := parser.Parse(".code\nMOVE A")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	_, err = Encode(program.Instructions[0], program.Symbols, program.Branches)
	if err == nil {
		t.Fatal("expected an ArgumentError for missing operand")
	}
	ee, ok := err.(*EncodingError)
	if !ok {
		t.Fatalf("expected *EncodingError, got %T", err)
	}
	pe, ok := ee.Unwrap().(*parser.Error)
	if !ok || pe.Kind != parser.ArgumentError {
		t.Errorf("expected wrapped ArgumentError, got %v", ee.Unwrap())
	}
}

func TestEncode_MissingComma(t *testing.T) {
	program, err := parser.Parse(".code\nMOVE A + B")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	_, err = Encode(program.Instructions[0], program.Symbols, program.Branches)
	if err == nil {
		t.Fatal("expected an InstructionError for missing comma")
	}
	ee, ok := err.(*EncodingError)
	if !ok {
		t.Fatalf("expected *EncodingError, got %T", err)
	}
	pe, ok := ee.Unwrap().(*parser.Error)
	if !ok || pe.Kind != parser.InstructionError {
		t.Errorf("expected wrapped InstructionError, got %v", ee.Unwrap())
	}
}
