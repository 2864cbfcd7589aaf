// Package board implements the board engine: an 8x8 grid of cells plus the
// move-resolution and mutation logic described in spec section 4.4. It is
// grounded on _examples/original_source/board.h's ChessBoard rather than the
// teacher's internal/engine package, which tracks castling rights, check
// status, and Zobrist hashing this spec's board has no use for.
package board

import (
	"strings"

	"github.com/mgark/chess-pgn-replay/internal/chess"
)

const size = 8

// Cell is a single board square.
type Cell struct {
	Piece      chess.Piece
	IsWhite    bool // meaningful iff Piece != chess.None
	DoubleMove bool // set on a pawn that just double-advanced
}

// Board is the 8x8 grid of cells, mutated exclusively by Apply.
type Board struct {
	cells [size][size]Cell
}

// New returns a board set to the standard starting position.
func New() *Board {
	b := &Board{}
	backRank := [size]chess.Piece{
		chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
		chess.King, chess.Bishop, chess.Knight, chess.Rook,
	}
	for col := 0; col < size; col++ {
		b.cells[0][col] = Cell{Piece: backRank[col], IsWhite: false}
		b.cells[1][col] = Cell{Piece: chess.Pawn, IsWhite: false}
		b.cells[6][col] = Cell{Piece: chess.Pawn, IsWhite: true}
		b.cells[7][col] = Cell{Piece: backRank[col], IsWhite: true}
	}
	return b
}

// Get returns the cell at (row, col). Both must be in [0, 8).
func (b *Board) Get(row, col int) Cell {
	return b.cells[row][col]
}

// set overwrites the cell at (row, col).
func (b *Board) set(row, col int, c Cell) {
	b.cells[row][col] = c
}

// Equal reports whether b and other hold identical cells. It lets
// go-cmp compare boards without reaching into the unexported grid.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.cells == other.cells
}

func inRange(v int) bool { return v >= 0 && v < size }

// String renders the board per spec section 6: one row per line (rank 8
// down to rank 1), columns separated by '|', each cell either two spaces
// or a lowercase color tag followed by the piece letter. Grounded on
// original_source/board.h's operator<<.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}
			c := b.cells[row][col]
			if c.Piece == chess.None {
				sb.WriteString("  ")
			} else {
				tag := byte('b')
				if c.IsWhite {
					tag = 'w'
				}
				sb.WriteByte(tag)
				sb.WriteByte(byte(c.Piece))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
