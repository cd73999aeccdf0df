// Package chess provides the shared chess value types consumed by the
// chesstp protocol layer: colors, piece kinds, positions, boards and
// game phases. All types are immutable value snapshots; the package has
// no knowledge of move legality, which lives behind the Engine interface.
package chess

// Color represents the color of a piece or player.
type Color int

const (
	White Color = iota
	Black
)

// String returns the string representation of a color.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite color.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the lowercase FEN letter for the piece kind.
func (k PieceKind) Letter() byte {
	letters := []byte{'p', 'n', 'b', 'r', 'q', 'k'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// PieceKindFromLetter maps a FEN piece letter to its kind,
// case-insensitively.
func PieceKindFromLetter(ch byte) (PieceKind, bool) {
	switch ch | 0x20 {
	case 'p':
		return Pawn, true
	case 'n':
		return Knight, true
	case 'b':
		return Bishop, true
	case 'r':
		return Rook, true
	case 'q':
		return Queen, true
	case 'k':
		return King, true
	}
	return 0, false
}

// Piece is a (kind, color) pair.
type Piece struct {
	Kind  PieceKind
	Color Color
}

// Letter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	ch := p.Kind.Letter()
	if p.Color == White {
		return ch &^ 0x20
	}
	return ch
}

// Promotion is an optional promotion piece kind.
type Promotion struct {
	Kind  PieceKind
	Valid bool
}

// PromoteTo returns a Promotion carrying the given kind.
func PromoteTo(k PieceKind) Promotion {
	return Promotion{Kind: k, Valid: true}
}

// GamePhase describes whether a game is ongoing, won, or drawn.
type GamePhase int

const (
	Ongoing GamePhase = iota
	WhiteWin
	BlackWin
	Draw
)

// String returns the string representation of a game phase.
func (g GamePhase) String() string {
	switch g {
	case Ongoing:
		return "Ongoing"
	case WhiteWin:
		return "WhiteWin"
	case BlackWin:
		return "BlackWin"
	case Draw:
		return "Draw"
	}
	return "Unknown"
}

// Win returns the winning phase for the given color.
func Win(c Color) GamePhase {
	if c == White {
		return WhiteWin
	}
	return BlackWin
}

// Winner returns the winning color for a won phase.
func (g GamePhase) Winner() (Color, bool) {
	switch g {
	case WhiteWin:
		return White, true
	case BlackWin:
		return Black, true
	}
	return 0, false
}
