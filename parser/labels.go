package parser

import (
	"fmt"
	"strings"
)

// BranchTable maps a label name to the zero-based index (within the
// post-strip instruction stream) of the instruction it labels.
type BranchTable struct {
	labels map[string]int
}

func NewBranchTable() *BranchTable {
	return &BranchTable{labels: make(map[string]int)}
}

// Define records a label at instructionIndex, failing if the name was
// already declared.
func (b *BranchTable) Define(name string, instructionIndex int) error {
	if _, exists := b.labels[name]; exists {
		return fmt.Errorf("label %q already defined", name)
	}
	b.labels[name] = instructionIndex
	return nil
}

func (b *BranchTable) Lookup(name string) (int, bool) {
	idx, ok := b.labels[name]
	return idx, ok
}

// pendingLabel is a branch-target reference recorded for post-walk
// verification, in source order.
type pendingLabel struct {
	label string
	index int
}

// ResolveLabels walks the cleaned .code lines, strips "name:" label
// prefixes into the branch table, and validates the branch/jump target
// of every unlabelled line against it once the walk completes. The
// remainder of a labelled line is kept as is: its opcode and any branch
// target on it are not checked here.
func ResolveLabels(codeLines []string) ([]string, *BranchTable, error) {
	branch := NewBranchTable()
	var resultLines []string
	var pending []pendingLabel

	for _, line := range codeLines {
		index := len(resultLines)

		if colon := strings.Index(line, ":"); colon >= 0 {
			label := strings.TrimSpace(line[:colon])
			remainder := strings.TrimSpace(line[colon+1:])
			if err := branch.Define(label, index); err != nil {
				return nil, nil, NewErrorWithLine(InstructionError, index, err.Error(), line)
			}
			resultLines = append(resultLines, remainder)
			continue
		}

		tokens := SplitTokens(line)
		if len(tokens) == 0 || !IsValidOpcode(tokens[0]) {
			return nil, nil, NewErrorWithLine(ValueError, index, "Opcode is not valid", line)
		}

		if IsBranchOpcode(tokens[0]) && len(tokens) > 1 {
			pending = append(pending, pendingLabel{label: tokens[1], index: index})
		}

		resultLines = append(resultLines, line)
	}

	for _, p := range pending {
		if _, ok := branch.Lookup(p.label); !ok {
			return nil, nil, NewError(InstructionError, p.index, "Jump label in use does not exist.")
		}
	}

	return resultLines, branch, nil
}
