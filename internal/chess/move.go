package chess

// MoveKind discriminates the closed set of move descriptors the grammar
// driver can emit, per spec section 3. A single struct with a Kind
// discriminant is used instead of an interface hierarchy, matching the
// teacher's MoveClass-tagged Move struct in internal/chess/types.go.
type MoveKind int

const (
	KindNextMove MoveKind = iota
	KindKingSideCastle
	KindQueenSideCastle
	KindFinish
	KindIgnore
)

// TerminationMarker identifies how a Finish descriptor's game ended.
type TerminationMarker int

const (
	ManualTermination TerminationMarker = iota
	WhiteWon
	BlackWon
	Draw
)

// Move is the tagged move descriptor produced by the move interpreter and
// consumed by the board engine. Only the fields relevant to Kind are
// meaningful; the rest are zero.
type Move struct {
	Kind MoveKind

	// NextMove fields.
	Piece         Piece
	IsWhite       bool
	Capture       bool
	Check         bool
	Checkmate     bool
	Src           Square
	Dst           Square
	PromotePiece  Piece // None if this move is not a promotion
	OrigText      string

	// KingSideCastle / QueenSideCastle field.
	CastleWhite bool

	// Finish field.
	Marker TerminationMarker
}
