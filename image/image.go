// Package image assembles the per-word code image and per-byte data
// image the encoder produces into the fixed-size slot arrays the
// hardware-description wrapper renders into Verilog modules.
package image

import (
	"fmt"
	"strings"

	"github.com/brandtdamman/i281-software/encoder"
	"github.com/brandtdamman/i281-software/parser"
)

// CodeSlots and DataSlots are the number of module outputs the
// downstream Verilog wrapper always emits, regardless of how much of
// the program actually used them.
const (
	CodeSlots = 16
	DataSlots = 16
)

// ZeroWord is the 16-bit fill value for unused code slots, rendered the
// same underscore-delimited way as an encoded instruction.
const ZeroWord = "0000_00_00_00000000"

// ZeroByte is the 8-bit fill value for unused data slots.
const ZeroByte = "00000000"

// Image holds the two parallel outputs of assembly: the ordered machine
// words and the ordered data bytes, each already padded to its fixed
// slot count.
type Image struct {
	// Code and Data are padded to CodeSlots/DataSlots with zero fill,
	// ready for the Verilog module wrapper.
	Code []string
	Data []string
	// DataComments names the variable each used data slot belongs to
	// ("X" for a scalar, "V[2]" for an array element, indexed by slot).
	// Fill slots carry an empty annotation. The Verilog wrapper echoes
	// these as trailing // comments in User_Data.v.
	DataComments []string
	// Emitted is the unpadded code image, exactly what the encoder
	// produced, for the diagnostic transcript (the original compiler's
	// bin file never pads the machine-code section).
	Emitted []string
}

// Build encodes every instruction in program, in instruction-index
// order, and lays out the data symbol table in declaration order,
// padding both to their fixed slot counts with zero fill. It stops at
// the first encoding failure, matching the assembler's one-error model.
func Build(program *parser.Program) (*Image, error) {
	emitted := make([]string, 0, len(program.Instructions))
	for _, inst := range program.Instructions {
		word, err := encoder.Encode(inst, program.Symbols, program.Branches)
		if err != nil {
			return nil, err
		}
		emitted = append(emitted, word)
	}
	code := append([]string(nil), emitted...)
	for len(code) < CodeSlots {
		code = append(code, ZeroWord)
	}

	data := make([]string, 0, DataSlots)
	comments := make([]string, 0, DataSlots)
	for _, sym := range program.Symbols.InOrder() {
		for i := range sym.RawValues {
			v, err := parser.ResolvedValue(sym, i)
			if err != nil {
				return nil, err
			}
			if len(sym.RawValues) > 1 {
				comments = append(comments, fmt.Sprintf("%s[%d]", sym.Name, len(data)))
			} else {
				comments = append(comments, sym.Name)
			}
			data = append(data, parser.ByteBits(v))
		}
	}
	for len(data) < DataSlots {
		data = append(data, ZeroByte)
		comments = append(comments, "")
	}

	return &Image{Code: code, Data: data, DataComments: comments, Emitted: emitted}, nil
}

// Transcript renders the diagnostic bundle: the original source text
// followed by the emitted (unpadded) code image, one word per line,
// matching the original compiler's "=======ASSEMBLY CODE======" /
// "=======MACHINE CODE=======" bin-file sections.
func (img *Image) Transcript(source string) string {
	var b strings.Builder
	b.WriteString("=======ASSEMBLY CODE======\n")
	for _, line := range strings.Split(source, "\n") {
		if len(strings.TrimRight(line, "\r")) > 0 {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n=======MACHINE CODE=======\n")
	b.WriteString(strings.Join(img.Emitted, "\n"))
	return b.String()
}
