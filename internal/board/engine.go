package board

import (
	"github.com/mgark/chess-pgn-replay/internal/apperrors"
	"github.com/mgark/chess-pgn-replay/internal/chess"
)

// Apply resolves mv's ambiguities against the current position and mutates
// the board accordingly. It is the board engine's single entry point
// (spec section 4.4): enumerate source candidates, enumerate destination
// candidates, then require exactly one legal (src, dst) pair.
func (b *Board) Apply(mv *chess.Move) error {
	switch mv.Kind {
	case chess.KindIgnore, chess.KindFinish:
		return nil
	case chess.KindKingSideCastle:
		return b.applyCastle(mv.CastleWhite, true)
	case chess.KindQueenSideCastle:
		return b.applyCastle(mv.CastleWhite, false)
	case chess.KindNextMove:
		return b.applyNextMove(mv)
	default:
		apperrors.Assert(false, "unknown move kind")
		return nil
	}
}

func (b *Board) applyNextMove(mv *chess.Move) error {
	srcs := b.srcCandidates(mv)
	dsts := b.dstCandidates(mv)
	apperrors.Assert(len(srcs) > 0, "no source candidates enumerated")
	apperrors.Assert(len(dsts) > 0, "no destination candidates enumerated")

	matches := 0
	var finalSrc, finalDst position
	for _, src := range srcs {
		for _, dst := range dsts {
			if b.isLocked(src, dst, mv.Capture, mv.IsWhite) {
				continue
			}
			if !b.isLegalFor(mv.Piece, src, dst, mv.Capture, mv.IsWhite) {
				continue
			}
			matches++
			if matches == 1 {
				finalSrc, finalDst = src, dst
			}
		}
	}
	if matches != 1 {
		return &apperrors.ReplayError{
			Stage: apperrors.StageBoard,
			Move:  mv.OrigText,
			Err:   apperrors.Wrapf(apperrors.ErrBoard, "found %d legal resolutions, want exactly 1", matches),
		}
	}

	b.applyMove(mv, finalSrc, finalDst)
	return nil
}

func wrapBoardErr(msg string) error {
	return &apperrors.ReplayError{
		Stage: apperrors.StageBoard,
		Err:   apperrors.Wrap(apperrors.ErrBoard, msg),
	}
}

func (b *Board) isLegalFor(piece chess.Piece, src, dst position, capture, isWhite bool) bool {
	switch piece {
	case chess.Pawn:
		return b.canMovePawn(src, dst, capture, isWhite)
	case chess.Rook:
		return b.canMoveRook(src, dst, capture, isWhite)
	case chess.Bishop:
		return b.canMoveBishop(src, dst, capture, isWhite)
	case chess.Queen:
		return b.canMoveQueen(src, dst, capture, isWhite)
	case chess.Knight:
		return b.canMoveKnight(src, dst, capture, isWhite)
	case chess.King:
		return b.canMoveKing(src, dst, capture, isWhite)
	default:
		apperrors.Assert(false, "unknown piece in legality dispatch")
		return false
	}
}

// srcCandidates enumerates the squares a piece matching mv's hints and
// color could come from.
func (b *Board) srcCandidates(mv *chess.Move) []position {
	var out []position
	match := func(row, col int) {
		c := b.cells[row][col]
		if c.Piece == mv.Piece && c.IsWhite == mv.IsWhite {
			out = append(out, position{row, col})
		}
	}
	switch {
	case mv.Src.Full():
		match(*mv.Src.Row, *mv.Src.Col)
	case mv.Src.Col != nil:
		col := *mv.Src.Col
		for row := 0; row < size; row++ {
			match(row, col)
		}
	case mv.Src.Row != nil:
		row := *mv.Src.Row
		for col := 0; col < size; col++ {
			match(row, col)
		}
	default:
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				match(row, col)
			}
		}
	}
	return out
}

// dstCandidates enumerates the squares mv's destination hints permit: each
// candidate must be empty (non-capture) or, when capture is set, able to
// hold a captured piece (the capture legality itself is checked later).
func (b *Board) dstCandidates(mv *chess.Move) []position {
	var out []position
	consider := func(row, col int) {
		c := b.cells[row][col]
		if c.Piece == chess.None || mv.Capture {
			out = append(out, position{row, col})
		}
	}
	switch {
	case mv.Dst.Full():
		consider(*mv.Dst.Row, *mv.Dst.Col)
	case mv.Dst.Col != nil:
		col := *mv.Dst.Col
		for row := 0; row < size; row++ {
			consider(row, col)
		}
	case mv.Dst.Row != nil:
		row := *mv.Dst.Row
		for col := 0; col < size; col++ {
			consider(row, col)
		}
	default:
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				consider(row, col)
			}
		}
	}
	return out
}

// applyMove mutates the board for the resolved (src, dst) pair. The
// DoubleMove flag is set here and only here, once the move is definitively
// applied — never while testing candidates (REDESIGN FLAG 1).
func (b *Board) applyMove(mv *chess.Move, src, dst position) {
	if mv.Piece == chess.Pawn && mv.Capture && b.cells[dst.row][dst.col].Piece == chess.None {
		// En-passant: remove the pawn beside src, aligned with dst's file.
		b.cells[src.row][dst.col] = Cell{}
	}

	piece := mv.Piece
	if mv.PromotePiece != chess.None {
		piece = mv.PromotePiece
	}

	b.cells[dst.row][dst.col] = Cell{Piece: piece, IsWhite: mv.IsWhite}
	b.cells[src.row][src.col] = Cell{}

	isDoublePush := mv.Piece == chess.Pawn && !mv.Capture && abs(dst.row-src.row) == 2
	if isDoublePush {
		b.cells[dst.row][dst.col].DoubleMove = true
	}
}
