package lexer

import (
	"io"
	"strings"
	"testing"
)

func scanAll(t *testing.T, input string) []Atom {
	t.Helper()
	lex := New(strings.NewReader(input))
	var atoms []Atom
	for {
		a, err := lex.Next()
		if err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		if a.Kind == EOF {
			return atoms
		}
		atoms = append(atoms, a)
	}
}

func TestNext_Punctuation(t *testing.T) {
	atoms := scanAll(t, "[ ] ( ) . *")
	want := []Kind{LBracket, RBracket, LParen, RParen, Period, Star}
	if len(atoms) != len(want) {
		t.Fatalf("got %d atoms, want %d", len(atoms), len(want))
	}
	for i, k := range want {
		if atoms[i].Kind != k {
			t.Errorf("atom %d: Kind = %v, want %v", i, atoms[i].Kind, k)
		}
	}
}

func TestNext_StringWithEscape(t *testing.T) {
	atoms := scanAll(t, `"a\"b"`)
	if len(atoms) != 1 || atoms[0].Kind != String {
		t.Fatalf("atoms = %+v, want one STRING atom", atoms)
	}
	if atoms[0].Value != `a"b` {
		t.Errorf("Value = %q, want %q", atoms[0].Value, `a"b`)
	}
}

func TestNext_UnterminatedStringIsError(t *testing.T) {
	lex := New(strings.NewReader(`"unterminated`))
	if _, err := lex.Next(); err == nil {
		t.Fatal("Next() = nil error, want an error for an unterminated string")
	}
}

func TestNext_SymbolReclassifiedAsInteger(t *testing.T) {
	atoms := scanAll(t, "42")
	if len(atoms) != 1 || atoms[0].Kind != Integer || atoms[0].Value != "42" {
		t.Errorf("atoms = %+v, want one INTEGER(42)", atoms)
	}
}

func TestNext_SymbolWithPunctuationStaysSymbol(t *testing.T) {
	for _, text := range []string{"O-O", "O-O-O", "1-0", "0-1", "1/2-1/2", "Nbd2", "Qxe4+"} {
		atoms := scanAll(t, text)
		if len(atoms) != 1 || atoms[0].Kind != Symbol || atoms[0].Value != text {
			t.Errorf("scanAll(%q) = %+v, want one SYMBOL(%q)", text, atoms, text)
		}
	}
}

func TestNext_TerminatedNonconsumedRefeedsTheDelimiter(t *testing.T) {
	// "e4)" must scan as SYMBOL("e4") then RPAREN, not swallow the ')'.
	atoms := scanAll(t, "e4)")
	if len(atoms) != 2 {
		t.Fatalf("atoms = %+v, want 2 atoms", atoms)
	}
	if atoms[0].Kind != Symbol || atoms[0].Value != "e4" {
		t.Errorf("atoms[0] = %+v, want SYMBOL(e4)", atoms[0])
	}
	if atoms[1].Kind != RParen {
		t.Errorf("atoms[1] = %+v, want RPAREN", atoms[1])
	}
}

func TestNext_NumericAnnotationGlyph(t *testing.T) {
	atoms := scanAll(t, "$14 e4")
	if len(atoms) != 2 {
		t.Fatalf("atoms = %+v, want 2 atoms", atoms)
	}
	if atoms[0].Kind != NumericAnnotation {
		t.Errorf("atoms[0].Kind = %v, want NUMERIC-ANNOTATION", atoms[0].Kind)
	}
	if atoms[1].Kind != Symbol || atoms[1].Value != "e4" {
		t.Errorf("atoms[1] = %+v, want SYMBOL(e4)", atoms[1])
	}
}

func TestNext_BraceCommentIsDiscardedButScanned(t *testing.T) {
	atoms := scanAll(t, "{a comment} e5")
	if len(atoms) != 2 || atoms[0].Kind != BraceComment || atoms[1].Value != "e5" {
		t.Errorf("atoms = %+v, want [BRACE-COMMENT, SYMBOL(e5)]", atoms)
	}
}

func TestNext_LineCommentStopsAtNewline(t *testing.T) {
	atoms := scanAll(t, "; trailing comment\ne5")
	if len(atoms) != 2 || atoms[0].Kind != LineComment || atoms[1].Value != "e5" {
		t.Errorf("atoms = %+v, want [LINE-COMMENT, SYMBOL(e5)]", atoms)
	}
}

func TestNext_EscapeLineStopsAtNewline(t *testing.T) {
	atoms := scanAll(t, "%engine output here\ne5")
	if len(atoms) != 2 || atoms[0].Kind != EscapeLine || atoms[1].Value != "e5" {
		t.Errorf("atoms = %+v, want [ESCAPE-LINE, SYMBOL(e5)]", atoms)
	}
}

func TestNext_UnrecognizedCharacterIsError(t *testing.T) {
	lex := New(strings.NewReader("@"))
	if _, err := lex.Next(); err == nil {
		t.Fatal("Next() = nil error, want an error for an unrecognized character")
	}
}

func TestNext_EOFAtStreamEnd(t *testing.T) {
	lex := New(strings.NewReader(""))
	a, err := lex.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if a.Kind != EOF {
		t.Errorf("Kind = %v, want EOF", a.Kind)
	}
	// Next() stays idempotent at EOF.
	a2, err := lex.Next()
	if err != nil && err != io.EOF {
		t.Fatalf("second Next() error: %v", err)
	}
	if a2.Kind != EOF {
		t.Errorf("second Next().Kind = %v, want EOF", a2.Kind)
	}
}
