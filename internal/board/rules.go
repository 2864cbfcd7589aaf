package board

import "github.com/mgark/chess-pgn-replay/internal/chess"

// position is a fully resolved board coordinate, used once a candidate
// square (no longer a hint with possibly-unknown components) is in hand.
type position struct {
	row, col int
}

// isValidDest reports whether dst is a legal landing square: empty for a
// non-capture, or occupied by an opposite-color non-king piece for a
// capture. Grounded on original_source/board.h's is_valid_dest.
func (b *Board) isValidDest(dst position, capture, isWhite bool) bool {
	c := b.cells[dst.row][dst.col]
	if capture {
		return c.Piece != chess.None && c.IsWhite != isWhite && c.Piece != chess.King
	}
	return c.Piece == chess.None
}

func (b *Board) isFree(p position) bool {
	return b.cells[p.row][p.col].Piece == chess.None
}

// canMovePawn reports whether a pawn can legally travel src->dst. It is a
// pure predicate: unlike original_source/board.h's can_move_pawn, it never
// mutates DoubleMove as a side effect of being called during candidate
// testing (REDESIGN FLAG 1 in SPEC_FULL.md section 9) — the engine's
// applyMove sets that flag only once the unique legal pair is chosen.
func (b *Board) canMovePawn(src, dst position, capture, isWhite bool) bool {
	dy := abs(dst.col - src.col)
	var dx int
	var startRow int
	if isWhite {
		startRow = 6
		dx = src.row - dst.row
	} else {
		startRow = 1
		dx = dst.row - src.row
	}

	if capture {
		if dx != 1 || dy != 1 {
			return false
		}
		destCell := b.cells[dst.row][dst.col]
		if destCell.Piece == chess.None {
			return b.isEnPassantCapture(src, dst, isWhite)
		}
		return b.isValidDest(dst, true, isWhite)
	}

	switch dx {
	case 1:
		if dy != 0 {
			return false
		}
		return b.isValidDest(dst, false, isWhite)
	case 2:
		if dy != 0 || src.row != startRow {
			return false
		}
		mid := position{row: (src.row + dst.row) / 2, col: src.col}
		return b.isFree(mid) && b.isFree(dst)
	default:
		return false
	}
}

// isEnPassantCapture reports whether the pawn adjacent to src on its rank,
// aligned with dst's file, is an opposing pawn with DoubleMove set.
func (b *Board) isEnPassantCapture(src, dst position, isWhite bool) bool {
	capturedCol := dst.col
	capturedRow := src.row
	if !inRange(capturedCol) || !inRange(capturedRow) {
		return false
	}
	captured := b.cells[capturedRow][capturedCol]
	return captured.Piece == chess.Pawn && captured.IsWhite != isWhite && captured.DoubleMove
}

// canMoveRook reports whether a rook can legally travel src->dst.
func (b *Board) canMoveRook(src, dst position, capture, isWhite bool) bool {
	if src.row == dst.row && src.col != dst.col {
		step := 1
		if dst.col < src.col {
			step = -1
		}
		for c := src.col + step; c != dst.col; c += step {
			if !b.isFree(position{src.row, c}) {
				return false
			}
		}
		return b.isValidDest(dst, capture, isWhite)
	}
	if src.col == dst.col && src.row != dst.row {
		step := 1
		if dst.row < src.row {
			step = -1
		}
		for r := src.row + step; r != dst.row; r += step {
			if !b.isFree(position{r, src.col}) {
				return false
			}
		}
		return b.isValidDest(dst, capture, isWhite)
	}
	return false
}

// canMoveBishop reports whether a bishop can legally travel src->dst.
func (b *Board) canMoveBishop(src, dst position, capture, isWhite bool) bool {
	dx := dst.row - src.row
	dy := dst.col - src.col
	if abs(dx) < 1 || abs(dx) != abs(dy) {
		return false
	}
	rowStep, colStep := sign(dx), sign(dy)
	r, c := src.row+rowStep, src.col+colStep
	for r != dst.row {
		if !b.isFree(position{r, c}) {
			return false
		}
		r += rowStep
		c += colStep
	}
	return b.isValidDest(dst, capture, isWhite)
}

// canMoveQueen reports whether a queen can legally travel src->dst: the
// union of rook-legal and bishop-legal motion.
func (b *Board) canMoveQueen(src, dst position, capture, isWhite bool) bool {
	return b.canMoveRook(src, dst, capture, isWhite) || b.canMoveBishop(src, dst, capture, isWhite)
}

// canMoveKnight reports whether a knight can legally travel src->dst.
func (b *Board) canMoveKnight(src, dst position, capture, isWhite bool) bool {
	dx, dy := abs(dst.row-src.row), abs(dst.col-src.col)
	if !((dx == 1 && dy == 2) || (dx == 2 && dy == 1)) {
		return false
	}
	return b.isValidDest(dst, capture, isWhite)
}

// canMoveKing reports whether a king can legally travel src->dst (one step
// in any direction; the engine never checks that dst is unattacked, per
// spec section 9).
func (b *Board) canMoveKing(src, dst position, capture, isWhite bool) bool {
	dx, dy := abs(dst.row-src.row), abs(dst.col-src.col)
	if dx == 0 && dy == 0 {
		return false
	}
	if dx > 1 || dy > 1 {
		return false
	}
	return b.isValidDest(dst, capture, isWhite)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
