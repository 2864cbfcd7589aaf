// Package testutil provides shared test utilities for the chess-pgn-replay
// project. These utilities reduce code duplication across test files and
// provide consistent test setup helpers.
package testutil

import (
	"io"
	"strings"
	"testing"

	"github.com/mgark/chess-pgn-replay/internal/board"
	"github.com/mgark/chess-pgn-replay/internal/chess"
	"github.com/mgark/chess-pgn-replay/internal/lexer"
	"github.com/mgark/chess-pgn-replay/internal/pgn"
)

// ReplayTestGame drives the lexer/grammar/board pipeline over a PGN string
// to completion (a Finish descriptor or input exhaustion) and returns the
// resulting board, or an error if any stage fails.
func ReplayTestGame(pgnText string) (*board.Board, error) {
	lex := lexer.New(strings.NewReader(pgnText))
	driver := pgn.NewDriver(lex)
	b := board.New()

	for {
		mv, err := driver.Next()
		if err == io.EOF {
			return b, nil
		}
		if err != nil {
			return nil, err
		}
		if mv.Kind == chess.KindFinish {
			return b, nil
		}
		if err := b.Apply(mv); err != nil {
			return nil, err
		}
	}
}

// MustReplayGame replays a PGN string and returns the resulting board. It
// calls t.Fatal if replay fails.
func MustReplayGame(t *testing.T, pgnText string) *board.Board {
	t.Helper()
	b, err := ReplayTestGame(pgnText)
	if err != nil {
		t.Fatalf("failed to replay test game: %v\npgn:\n%s", err, pgnText)
	}
	return b
}
