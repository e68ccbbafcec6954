package report

import (
	"errors"
	"strings"
	"testing"
)

func TestSummary_ListsSucceededAndFailed(t *testing.T) {
	batch := &Batch{}
	batch.AddSuccess(Success{Source: "a.asm", Name: "a", OutputPaths: []string{"output/a/a.bin"}})
	batch.AddFailure(Failure{Source: "b.asm", Err: errors.New("ln(000): error: bad opcode [ValueError]")})

	out := Summary(batch, true)

	if !strings.Contains(out, "Files that succeeded (1):") {
		t.Errorf("expected succeeded count in summary, got: %s", out)
	}
	if !strings.Contains(out, "a.bin") {
		t.Errorf("expected output path in summary, got: %s", out)
	}
	if !strings.Contains(out, "Files that failed (1):") {
		t.Errorf("expected failed count in summary, got: %s", out)
	}
	if !strings.Contains(out, "bad opcode") {
		t.Errorf("expected failure diagnostic in summary, got: %s", out)
	}
}

func TestSummary_EmptyBatch(t *testing.T) {
	out := Summary(&Batch{}, false)
	if strings.Contains(out, "Files that succeeded") || strings.Contains(out, "Files that failed") {
		t.Errorf("expected no succeeded/failed sections for an empty batch, got: %s", out)
	}
}

func TestEntries_SortedAndLabeled(t *testing.T) {
	batch := &Batch{}
	batch.AddSuccess(Success{Source: "z.asm", Name: "z"})
	batch.AddFailure(Failure{Source: "a.asm", Err: errors.New("boom")})

	rows := entries(batch)
	if len(rows) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(rows))
	}
	if !strings.HasPrefix(rows[0].label, "ERR") {
		t.Errorf("expected ERR-prefixed entry to sort first, got %q", rows[0].label)
	}
}
