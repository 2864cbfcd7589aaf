package pgn

import (
	"github.com/mgark/chess-pgn-replay/internal/apperrors"
	"github.com/mgark/chess-pgn-replay/internal/chess"
)

// interpret turns a half-move's symbol text into a move descriptor (spec
// section 4.3). isWhite is the tentative side-to-move color computed by
// the grammar driver for this symbol.
func interpret(text string, isWhite bool) (*chess.Move, error) {
	switch text {
	case "e", "p":
		return &chess.Move{Kind: chess.KindIgnore, OrigText: text}, nil
	case "O-O":
		return &chess.Move{Kind: chess.KindKingSideCastle, CastleWhite: isWhite, OrigText: text}, nil
	case "O-O-O":
		return &chess.Move{Kind: chess.KindQueenSideCastle, CastleWhite: isWhite, OrigText: text}, nil
	case "1-0":
		return &chess.Move{Kind: chess.KindFinish, Marker: chess.WhiteWon, OrigText: text}, nil
	case "0-1":
		return &chess.Move{Kind: chess.KindFinish, Marker: chess.BlackWon, OrigText: text}, nil
	case "1/2-1/2":
		return &chess.Move{Kind: chess.KindFinish, Marker: chess.Draw, OrigText: text}, nil
	}
	return parseNextMove(text, isWhite)
}

func isRankDigit(b byte) bool  { return b >= '1' && b <= '8' }
func isFileLetter(b byte) bool { return b >= 'a' && b <= 'h' }

// parseSquare reads an optional rank digit then an optional file letter
// ending at index i, scanning right-to-left, and returns the resulting
// hint plus the index of the next unconsumed character.
func parseSquare(s string, i int) (chess.Square, int) {
	var sq chess.Square
	if i >= 0 && isRankDigit(s[i]) {
		sq.Row = chess.Intp(chess.RankToRow(s[i]))
		i--
	}
	if i >= 0 && isFileLetter(s[i]) {
		sq.Col = chess.Intp(chess.FileToCol(s[i]))
		i--
	}
	return sq, i
}

// parseNextMove implements the right-to-left scan of spec section 4.3
// step 4, grounded on original_source/parser.h's MoveFactory.
func parseNextMove(text string, isWhite bool) (*chess.Move, error) {
	s := text
	i := len(s) - 1
	mv := &chess.Move{Kind: chess.KindNextMove, IsWhite: isWhite, OrigText: text}

suffixLoop:
	for n := 0; n < 2 && i >= 0; n++ {
		switch s[i] {
		case '#':
			mv.Checkmate = true
		case '+':
			mv.Check = true
		case ':':
			mv.Capture = true
		default:
			break suffixLoop
		}
		i--
	}

	if i >= 0 && s[i] == ')' {
		i--
	}

	if i >= 0 && chess.IsPiece(s[i]) {
		mv.PromotePiece = chess.Piece(s[i])
		i--
		if i >= 0 && (s[i] == '=' || s[i] == '/' || s[i] == '(') {
			i--
		}
	}

	mv.Dst, i = parseSquare(s, i)
	if mv.Dst.Empty() {
		return nil, interpretErr(text, "move has no destination square")
	}

	if i < 0 {
		mv.Piece = chess.Pawn
		return mv, nil
	}

	if s[i] == 'x' || s[i] == ':' {
		mv.Capture = true
		i--
	}

	mv.Src, i = parseSquare(s, i)

	if i >= 0 && chess.IsPiece(s[i]) {
		mv.Piece = chess.Piece(s[i])
		i--
	} else {
		mv.Piece = chess.Pawn
	}

	if i >= 0 {
		return nil, interpretErr(text, "unexpected leading characters")
	}

	return mv, nil
}

func interpretErr(move, msg string) error {
	return &apperrors.ReplayError{
		Stage: apperrors.StageInterpret,
		Move:  move,
		Err:   apperrors.Wrap(apperrors.ErrInterpret, msg),
	}
}
