package parser

import "strings"

// tokenSpacers are the punctuation runes that must be surrounded by
// whitespace so a later whitespace split yields them as standalone
// tokens, matching the original compiler's line.replace(...) chain.
var tokenSpacers = []string{",", "[", "]", "{", "}", "+", "-"}

// CleanedSource is the output of the lexer / section splitter: an
// ordered sequence of instruction-bearing lines plus the indices of the
// .data and .code section markers within that sequence.
type CleanedSource struct {
	Lines      []string
	DataMarker int // -1 if no .data section was declared
	CodeMarker int
}

// DataLines returns the lines strictly between the .data marker and the
// .code marker (empty if there is no .data section).
func (c *CleanedSource) DataLines() []string {
	if c.DataMarker == -1 {
		return nil
	}
	return c.Lines[c.DataMarker+1 : c.CodeMarker]
}

// CodeLines returns the lines strictly after the .code marker.
func (c *CleanedSource) CodeLines() []string {
	return c.Lines[c.CodeMarker+1:]
}

// Clean strips comments and blank lines, normalizes punctuation spacing,
// and locates the .data/.code section markers in the raw source text.
func Clean(source string) (*CleanedSource, error) {
	return CleanWithLimits(source, DefaultLimits())
}

// CleanWithLimits is Clean with a configurable instruction-memory bound.
func CleanWithLimits(source string, limits Limits) (*CleanedSource, error) {
	rawLines := strings.Split(source, "\n")

	var lines []string
	dataMarker, codeMarker := -1, -1

	for _, raw := range rawLines {
		if strings.TrimSpace(raw) == "" || strings.HasPrefix(strings.TrimLeft(raw, " \t"), ";") {
			continue
		}

		line := strings.ReplaceAll(raw, "\t", " ")
		for _, tok := range tokenSpacers {
			line = strings.ReplaceAll(line, tok, " "+tok+" ")
		}

		if idx := strings.Index(line, ";"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		lineIdx := len(lines)
		for _, tok := range tokens {
			switch tok {
			case ".data":
				if dataMarker != -1 {
					return nil, NewError(SectionError, lineIdx, "More than one .data section exists.")
				}
				dataMarker = lineIdx
			case ".code":
				if codeMarker != -1 {
					return nil, NewError(SectionError, lineIdx, "More than one .code section exists.")
				}
				codeMarker = lineIdx
			}
		}

		lines = append(lines, line)
	}

	if codeMarker == -1 {
		return nil, NewError(SectionError, 0, "There does not exist a .code section.")
	}
	if dataMarker != -1 && dataMarker > codeMarker {
		return nil, NewError(SectionError, 0, "The .data section must precede the .code section.")
	}

	codeLineCount := len(lines) - codeMarker - 1
	if codeLineCount > limits.IMEM {
		return nil, NewError(SectionError, 0, "Length of code exceeds size of IMEM.")
	}

	return &CleanedSource{Lines: lines, DataMarker: dataMarker, CodeMarker: codeMarker}, nil
}

// SplitTokens splits a cleaned line on whitespace, matching the original
// compiler's splitLine(line, '') helper.
func SplitTokens(line string) []string {
	return strings.Fields(line)
}
