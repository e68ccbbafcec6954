package parser

import "testing"

func TestClean_NoDataSection(t *testing.T) {
	cleaned, err := Clean(".code\nNOOP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cleaned.DataMarker != -1 {
		t.Errorf("expected no .data marker, got %d", cleaned.DataMarker)
	}
	if len(cleaned.CodeLines()) != 1 || cleaned.CodeLines()[0] != "NOOP" {
		t.Errorf("unexpected code lines: %v", cleaned.CodeLines())
	}
}

func TestClean_StripsCommentsAndBlankLines(t *testing.T) {
	src := "; a comment\n\n.code\nNOOP ; trailing comment\n"
	cleaned, err := Clean(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	code := cleaned.CodeLines()
	if len(code) != 1 || code[0] != "NOOP" {
		t.Errorf("expected single cleaned NOOP line, got %v", code)
	}
}

func TestClean_SurroundsPunctuation(t *testing.T) {
	cleaned, err := Clean(".code\nLOAD A , [ V + 2 ]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tokens := SplitTokens(cleaned.CodeLines()[0])
	want := []string{"LOAD", "A", ",", "[", "V", "+", "2", "]"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %v, got %v", want, tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], tokens[i])
		}
	}
}

func TestClean_DuplicateDataSection(t *testing.T) {
	_, err := Clean(".data\n.data\n.code\nNOOP")
	assertKind(t, err, SectionError)
}

func TestClean_DuplicateCodeSection(t *testing.T) {
	_, err := Clean(".code\n.code\nNOOP")
	assertKind(t, err, SectionError)
}

func TestClean_DataSectionAfterCodeSection(t *testing.T) {
	_, err := Clean(".code\nNOOP\n.data\nX BYTE 1")
	assertKind(t, err, SectionError)
}

func TestClean_MissingCodeSection(t *testing.T) {
	_, err := Clean(".data\nX BYTE 1")
	assertKind(t, err, SectionError)
}

func TestClean_CodeTooLong(t *testing.T) {
	src := ".code\n"
	for i := 0; i < 33; i++ {
		src += "NOOP\n"
	}
	_, err := Clean(src)
	assertKind(t, err, SectionError)
}

func TestClean_CodeAtLimitSucceeds(t *testing.T) {
	src := ".code\n"
	for i := 0; i < 32; i++ {
		src += "NOOP\n"
	}
	if _, err := Clean(src); err != nil {
		t.Fatalf("expected 32 instructions to fit IMEM, got error: %v", err)
	}
}

func assertKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error of kind %s, got nil", kind)
	}
	pe, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *parser.Error, got %T: %v", err, err)
	}
	if pe.Kind != kind {
		t.Errorf("expected kind %s, got %s", kind, pe.Kind)
	}
}
