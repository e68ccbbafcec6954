// Package report accumulates the outcome of a batch assembly run —
// which sources succeeded and where their output landed, which failed
// and why — and renders it either as the plain succeeded/failed text
// summary the original compiler prints, or as a scrollable tview
// browser for interactive runs.
package report

import (
	"fmt"
	"sort"
	"strings"
)

// Success records where one source file's output bundle was written.
type Success struct {
	Source      string
	Name        string
	OutputPaths []string
}

// Failure records why one source file did not assemble.
type Failure struct {
	Source string
	Err    error
}

// Batch accumulates results across every source processed in one
// invocation, matching the original compiler's succeeded/failed maps.
type Batch struct {
	Succeeded []Success
	Failed    []Failure
}

func (b *Batch) AddSuccess(s Success) {
	b.Succeeded = append(b.Succeeded, s)
}

func (b *Batch) AddFailure(f Failure) {
	b.Failed = append(b.Failed, f)
}

// Summary renders the closing "All files have been processed" report,
// listing every succeeded source with its output paths (only the .bin
// transcript unless verbose is set) and every failed source with its
// diagnostic, matching main()'s text output in the original compiler.
func Summary(b *Batch, verbose bool) string {
	var out strings.Builder
	out.WriteString("\nAll files have been processed.\n")

	if len(b.Succeeded) > 0 {
		fmt.Fprintf(&out, "Files that succeeded (%d):\n", len(b.Succeeded))
		for _, s := range b.Succeeded {
			fmt.Fprintf(&out, "\t -> %s\n", s.Name)
			fmt.Fprintf(&out, "\t  -> Output:\n")
			for _, p := range s.OutputPaths {
				if !verbose && !strings.HasSuffix(p, ".bin") {
					continue
				}
				fmt.Fprintf(&out, "\t   => %s\n", p)
			}
		}
	}

	if len(b.Failed) > 0 {
		fmt.Fprintf(&out, "Files that failed (%d):\n", len(b.Failed))
		for _, f := range b.Failed {
			fmt.Fprintf(&out, "%s:\n%s\n", f.Source, f.Err.Error())
		}
	}

	return out.String()
}

// sortedEntries is a label/detail pair for the interactive list, used
// so both succeeded and failed rows share the same rendering path.
type sortedEntries struct {
	label  string
	detail string
}

func entries(b *Batch) []sortedEntries {
	out := make([]sortedEntries, 0, len(b.Succeeded)+len(b.Failed))
	for _, s := range b.Succeeded {
		out = append(out, sortedEntries{
			label:  "OK  " + s.Name,
			detail: "Source: " + s.Source + "\n\nOutput:\n  " + strings.Join(s.OutputPaths, "\n  "),
		})
	}
	for _, f := range b.Failed {
		out = append(out, sortedEntries{
			label:  "ERR " + f.Source,
			detail: f.Err.Error(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].label < out[j].label })
	return out
}
