package board

import "github.com/mgark/chess-pgn-replay/internal/chess"

// applyCastle moves the king and rook to their post-castle squares. The
// grammar driver/move interpreter never emit a castle descriptor that isn't
// legal SAN ("O-O"/"O-O-O"), so the failure modes here come from a malformed
// replay (king or rook missing from its expected square, or an occupied
// square between them), which are board errors rather than programming
// errors.
func (b *Board) applyCastle(isWhite, kingSide bool) error {
	row := 0
	if isWhite {
		row = 7
	}

	kingCol := 4
	var rookCol, newKingCol, newRookCol int
	if kingSide {
		rookCol, newKingCol, newRookCol = 7, 6, 5
	} else {
		rookCol, newKingCol, newRookCol = 0, 2, 3
	}

	king := b.cells[row][kingCol]
	rook := b.cells[row][rookCol]
	if king.Piece != chess.King || king.IsWhite != isWhite || rook.Piece != chess.Rook || rook.IsWhite != isWhite {
		return wrapBoardErr("castle: king or rook not on its starting square")
	}

	lo, hi := kingCol, rookCol
	if hi < lo {
		lo, hi = hi, lo
	}
	for col := lo + 1; col < hi; col++ {
		if !b.isFree(position{row, col}) {
			return wrapBoardErr("castle: squares between king and rook are not empty")
		}
	}

	b.set(row, kingCol, Cell{})
	b.set(row, rookCol, Cell{})
	b.set(row, newKingCol, Cell{Piece: chess.King, IsWhite: isWhite})
	b.set(row, newRookCol, Cell{Piece: chess.Rook, IsWhite: isWhite})
	return nil
}
