package parser

import (
	"unicode"
)

// DataSymbol is a named byte or byte array declared in .data. Values are
// kept as validated-but-unparsed decimal tokens ("0" for the `?`
// wildcard): a scalar's token is always digit-only and therefore always
// parses, but an array element only has to look alphanumeric at
// declaration time (see isAlnumToken below) and may
// still fail to parse as an integer once its value is actually needed —
// see ResolvedValue.
type DataSymbol struct {
	Name      string
	RawValues []string
	Offset    int
}

// SymbolTable maps data-variable names to their allocated DataSymbol,
// preserving declaration order for the data image builder.
type SymbolTable struct {
	order   []string
	symbols map[string]*DataSymbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*DataSymbol)}
}

func (s *SymbolTable) define(sym *DataSymbol) error {
	if _, exists := s.symbols[sym.Name]; exists {
		return NewError(InstructionError, 0, "Variable \""+sym.Name+"\" is already defined.")
	}
	s.symbols[sym.Name] = sym
	s.order = append(s.order, sym.Name)
	return nil
}

func (s *SymbolTable) Lookup(name string) (*DataSymbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// InOrder returns every declared symbol in declaration order.
func (s *SymbolTable) InOrder() []*DataSymbol {
	out := make([]*DataSymbol, len(s.order))
	for i, name := range s.order {
		out[i] = s.symbols[name]
	}
	return out
}

func (s *SymbolTable) Count() int {
	return len(s.order)
}

func isDigitToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isAlnumToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// AllocateData walks the .data lines, assigning byte offsets to each
// declared scalar or array in textual order and populating a SymbolTable.
func AllocateData(dataLines []string) (*SymbolTable, error) {
	return AllocateDataWithLimits(dataLines, DefaultLimits())
}

// AllocateDataWithLimits is AllocateData with a configurable
// data-memory bound.
func AllocateDataWithLimits(dataLines []string, limits Limits) (*SymbolTable, error) {
	table := NewSymbolTable()
	cursor := 0

	for lineNumber, line := range dataLines {
		tokens := SplitTokens(line)
		if len(tokens) < 3 {
			return nil, NewErrorWithLine(InstructionError, lineNumber, "Data is not properly formatted.", line)
		}
		if tokens[1] != "BYTE" {
			return nil, NewErrorWithLine(InstructionError, lineNumber, "Data is not of type BYTE.", line)
		}

		name := tokens[0]
		var raw []string

		if len(tokens) > 3 {
			valueTokens := tokens[2:]
			if valueTokens[len(valueTokens)-1] == "," {
				return nil, NewErrorWithLine(ValueError, lineNumber, "Trailing comma found in array declaration.", line)
			}
			for _, tok := range valueTokens {
				if tok == "," {
					continue
				}
				if tok == "?" {
					raw = append(raw, "0")
					continue
				}
				if !isAlnumToken(tok) {
					return nil, NewErrorWithLine(ValueError, lineNumber, "ISA does not support non-integer values.", line)
				}
				raw = append(raw, tok)
			}
		} else {
			val := tokens[2]
			switch {
			case val == "?":
				raw = []string{"0"}
			case isDigitToken(val):
				raw = []string{val}
			default:
				return nil, NewErrorWithLine(ValueError, lineNumber, "Data value is neither undefined nor defined.", line)
			}
		}

		sym := &DataSymbol{Name: name, RawValues: raw, Offset: cursor}
		if err := table.define(sym); err != nil {
			return nil, err
		}
		cursor += len(raw)

		if table.Count() > limits.DMEM {
			return nil, NewError(MemoryOverflow, 0, "Data variables exceed DMEM.")
		}
	}

	return table, nil
}

// ResolvedValue parses a DataSymbol's raw token at index i into a byte
// value, returning a ValueError if the token passed the shape check at
// declaration time (isalnum) but isn't actually a valid non-negative
// integer.
func ResolvedValue(sym *DataSymbol, i int) (int, error) {
	tok := sym.RawValues[i]
	if !isDigitToken(tok) {
		return 0, NewError(ValueError, 0, "ISA does not support non-integer values.")
	}
	n := 0
	for _, r := range tok {
		n = n*10 + int(r-'0')
	}
	return n, nil
}
