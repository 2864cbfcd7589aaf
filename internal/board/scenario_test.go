package board_test

import (
	"testing"

	"github.com/mgark/chess-pgn-replay/internal/chess"
	"github.com/mgark/chess-pgn-replay/internal/testutil"
)

func TestScenario_PawnDoublePushThenKnight(t *testing.T) {
	b := testutil.MustReplayGame(t, "1. e4 e5 2. Nf3")

	if got := b.Get(4, 4); got.Piece != chess.Pawn || !got.IsWhite {
		t.Errorf("Get(4,4) (e4) = %+v, want white pawn", got)
	}
	if got := b.Get(3, 4); got.Piece != chess.Pawn || got.IsWhite {
		t.Errorf("Get(3,4) (e5) = %+v, want black pawn", got)
	}
	if got := b.Get(5, 5); got.Piece != chess.Knight || !got.IsWhite {
		t.Errorf("Get(5,5) (f3) = %+v, want white knight", got)
	}
	if got := b.Get(6, 4); got.Piece != chess.None {
		t.Errorf("Get(6,4) (e2, vacated) = %+v, want empty", got)
	}
	if got := b.Get(1, 4); got.Piece != chess.None {
		t.Errorf("Get(1,4) (e7, vacated) = %+v, want empty", got)
	}
	if got := b.Get(7, 6); got.Piece != chess.None {
		t.Errorf("Get(7,6) (g1, vacated) = %+v, want empty", got)
	}
}

func TestScenario_RAVAndCommentsDoNotAlterBoard(t *testing.T) {
	withRAV := testutil.MustReplayGame(t, "1. e4 (1. d4 d5) {Ruy Lopez} e5 *")
	without := testutil.MustReplayGame(t, "1. e4 e5 *")

	testutil.AssertEqual(t, withRAV, without, "RAV- and comment-laden PGN should replay to the same board")
}

func TestScenario_NestedRAVSkipped(t *testing.T) {
	nested := testutil.MustReplayGame(t, "1. e4 e5 2. Nf3 (2. Bc4 (2. Nc3 Nc6) Nc6) Nc6 *")
	plain := testutil.MustReplayGame(t, "1. e4 e5 2. Nf3 Nc6 *")

	testutil.AssertEqual(t, nested, plain, "nested RAVs should be skipped in full")
}

func TestScenario_EscapeAndGlyphsDoNotAlterBoard(t *testing.T) {
	noisy := testutil.MustReplayGame(t, "1. e4 $1 e5 $10 %comment line ignored\n2. Nf3 *")
	plain := testutil.MustReplayGame(t, "1. e4 e5 2. Nf3 *")

	testutil.AssertEqual(t, noisy, plain, "numeric glyphs and escape lines should not alter the board")
}
