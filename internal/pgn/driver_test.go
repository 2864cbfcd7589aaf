package pgn

import (
	"io"
	"strings"
	"testing"

	"github.com/mgark/chess-pgn-replay/internal/chess"
	"github.com/mgark/chess-pgn-replay/internal/lexer"
)

func driveAll(t *testing.T, pgnText string) []*chess.Move {
	t.Helper()
	d := NewDriver(lexer.New(strings.NewReader(pgnText)))
	var moves []*chess.Move
	for {
		mv, err := d.Next()
		if err == io.EOF {
			return moves
		}
		if err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		moves = append(moves, mv)
	}
}

func TestDriver_SkipsHeaders(t *testing.T) {
	moves := driveAll(t, `[Event "Test"]
[Result "1-0"]

1. e4 e5 1-0`)

	if len(moves) != 3 {
		t.Fatalf("got %d moves, want 3 (e4, e5, Finish)", len(moves))
	}
	if moves[0].Piece != chess.Pawn || !moves[0].IsWhite {
		t.Errorf("moves[0] = %+v, want white pawn move", moves[0])
	}
	if moves[2].Kind != chess.KindFinish || moves[2].Marker != chess.WhiteWon {
		t.Errorf("moves[2] = %+v, want Finish{WhiteWon}", moves[2])
	}
}

func TestDriver_SuppressesDescriptorsInsideRAV(t *testing.T) {
	moves := driveAll(t, "1. e4 (1. d4 d5) e5 *")

	var texts []string
	for _, mv := range moves {
		texts = append(texts, mv.OrigText)
	}
	want := []string{"e4", "e5", "*"}
	if len(texts) != len(want) {
		t.Fatalf("moves = %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("moves[%d].OrigText = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestDriver_NestedRAVIsFullySkipped(t *testing.T) {
	moves := driveAll(t, "1. e4 e5 2. Nf3 (2. Bc4 (2. Nc3 Nc6) Nc6) Nc6 *")
	if len(moves) != 5 {
		t.Fatalf("got %d moves, want 5 (e4, e5, Nf3, Nc6, Finish)", len(moves))
	}
}

func TestDriver_ColorAlternatesAcrossNextMoves(t *testing.T) {
	moves := driveAll(t, "1. e4 e5 2. Nf3 Nc6 *")
	wantColors := []bool{true, false, true, false}
	for i, want := range wantColors {
		if moves[i].IsWhite != want {
			t.Errorf("moves[%d].IsWhite = %v, want %v", i, moves[i].IsWhite, want)
		}
	}
}

func TestDriver_CastlingDoesNotToggleSideToMove(t *testing.T) {
	// Contract documented in spec section 8: castling descriptors carry a
	// tentative color but never commit it to the driver's white-turn flag.
	// Two castles in a row with no intervening NextMove therefore compute
	// the *same* tentative color instead of alternating — a faithfully
	// preserved quirk, not a bug this port fixes.
	moves := driveAll(t, "1. O-O O-O 2. Nf3 *")

	if moves[0].Kind != chess.KindKingSideCastle || !moves[0].CastleWhite {
		t.Fatalf("moves[0] = %+v, want white kingside castle", moves[0])
	}
	if moves[1].Kind != chess.KindKingSideCastle || !moves[1].CastleWhite {
		t.Fatalf("moves[1] = %+v, want CastleWhite=true (the documented non-toggling quirk)", moves[1])
	}
	if moves[2].Piece != chess.Knight || !moves[2].IsWhite {
		t.Fatalf("moves[2] = %+v, want white knight move", moves[2])
	}
}

func TestDriver_StarTerminatesFromAnyState(t *testing.T) {
	moves := driveAll(t, "[Event \"Test\"] *")
	if len(moves) != 1 || moves[0].Kind != chess.KindFinish {
		t.Fatalf("moves = %+v, want a single Finish descriptor", moves)
	}
}

func TestDriver_UnbalancedRParenIsGrammarError(t *testing.T) {
	d := NewDriver(lexer.New(strings.NewReader("1. e4) e5")))
	_, err := d.Next()
	for err == nil {
		_, err = d.Next()
	}
	if err == io.EOF {
		t.Fatal("Next() reached EOF, want a grammar error for the unbalanced )")
	}
}
