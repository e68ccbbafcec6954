package parser

// Register is one of the four general-purpose i281 registers.
type Register int

const (
	RegA Register = iota
	RegB
	RegC
	RegD
)

var registerBits = [4]string{"00", "01", "10", "11"}

// Bits renders the register's two-bit field encoding.
func (r Register) Bits() string {
	return registerBits[r]
}

// RegisterFromToken resolves a register mnemonic (A, B, C, D) to its
// Register value.
func RegisterFromToken(tok string) (Register, bool) {
	switch tok {
	case "A":
		return RegA, true
	case "B":
		return RegB, true
	case "C":
		return RegC, true
	case "D":
		return RegD, true
	default:
		return 0, false
	}
}

// BracketResult is the resolved form of a `[ ... ]` or `{ ... }` operand:
// a data address, whether a numeric offset was present, and the register
// field when the caller requested one. Kept as a dedicated record rather
// than a tuple so each field is self-documenting at call sites.
type BracketResult struct {
	Address   int
	HadOffset bool
	Register  *Register
	Consumed  int
}

// BracketOptions configures ParseBracket for the two grammars the
// instruction encoder needs: square brackets (optionally with a
// register) and curly braces (never with a register, never bounds
// checked).
type BracketOptions struct {
	Open, Close  string
	WithRegister bool
	Strict       bool
}

// ParseBracket interprets `[ name ( + reg ( op k )? )? ]` or
// `{ name ( op k )? }` starting at tokens[0], consuming exactly the
// tokens that make up the bracket expression.
func ParseBracket(tokens []string, symbols *SymbolTable, opts BracketOptions, lineNumber int) (*BracketResult, error) {
	if len(tokens) < 3 {
		return nil, NewError(ArgumentError, lineNumber, "Invalid number of arguments.")
	}
	if tokens[0] != opts.Open {
		return nil, NewError(ArgumentError, lineNumber, "Invalid left bracket found in instruction.")
	}

	sym, ok := symbols.Lookup(tokens[1])
	if !ok {
		return nil, NewError(ArgumentError, lineNumber, "No data allocated with variable name used.")
	}
	base := sym.Offset

	var reg *Register
	tokenOffset := 0
	if opts.WithRegister {
		if len(tokens) < 4 || tokens[2] != "+" {
			return nil, NewError(ArgumentError, lineNumber, "Operator ( + ) is missing from arguments.")
		}
		r, ok := RegisterFromToken(tokens[3])
		if !ok {
			return nil, NewError(ArgumentError, lineNumber, "Register ["+tokens[3]+"] does not exist.")
		}
		reg = &r
		tokenOffset = 2
	}

	current := base
	hadOffset := false
	consumed := 3 + tokenOffset

	if len(tokens) == 5+tokenOffset {
		op := tokens[2+tokenOffset]
		offsetTok := tokens[3+tokenOffset]
		if tokens[4+tokenOffset] != opts.Close {
			return nil, NewError(ValueError, lineNumber, "Right bracket is not valid or missing.")
		}
		if !isDigitToken(offsetTok) {
			return nil, NewError(ValueError, lineNumber, "Offset argument is not a number.")
		}
		hadOffset = true
		offsetVal := parseDigits(offsetTok)
		switch op {
		case "+":
			current += offsetVal
		case "-":
			current -= offsetVal
		default:
			return nil, NewError(ArgumentError, lineNumber, "Invalid operator ( "+op+" ) used.")
		}
		consumed = 5 + tokenOffset
	} else {
		if len(tokens) < consumed || tokens[consumed-1] != opts.Close {
			return nil, NewError(ValueError, lineNumber, "Right bracket is not valid or missing.")
		}
	}

	if current < 0 || current > 63 {
		if opts.Strict {
			return nil, NewError(ValueError, lineNumber, "Address is out of bounds of DMEM.")
		}
	}

	return &BracketResult{Address: current, HadOffset: hadOffset, Register: reg, Consumed: consumed}, nil
}

func parseDigits(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// SquareBracket is the default options for `[ ... ]` without a register.
func SquareBracket(strict bool) BracketOptions {
	return BracketOptions{Open: "[", Close: "]", Strict: strict}
}

// SquareBracketWithRegister is the options for `[ name + reg ]`.
func SquareBracketWithRegister(strict bool) BracketOptions {
	return BracketOptions{Open: "[", Close: "]", WithRegister: true, Strict: strict}
}

// CurlyBracket is the options for `{ name ( op k )? }`, always permissive.
func CurlyBracket() BracketOptions {
	return BracketOptions{Open: "{", Close: "}", Strict: false}
}
