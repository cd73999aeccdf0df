package chess

// square holds an optional piece. The zero value is an empty square.
type square struct {
	piece    Piece
	occupied bool
}

// Board is an 8x8 grid of optional pieces, indexed [row][column] with
// row 0 being rank 1. The zero value is an empty board. Board is a
// comparable value type; copies never alias.
type Board struct {
	squares [BoardSize][BoardSize]square
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// StartingBoard returns the standard chess starting position.
func StartingBoard() Board {
	var b Board
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.squares[0][col] = square{piece: Piece{Kind: backRank[col], Color: White}, occupied: true}
		b.squares[1][col] = square{piece: Piece{Kind: Pawn, Color: White}, occupied: true}
		b.squares[6][col] = square{piece: Piece{Kind: Pawn, Color: Black}, occupied: true}
		b.squares[7][col] = square{piece: Piece{Kind: backRank[col], Color: Black}, occupied: true}
	}
	return b
}

// Tile returns the piece at pos, if any.
func (b Board) Tile(pos Position) (Piece, bool) {
	sq := b.squares[pos.Row()][pos.Column()]
	return sq.piece, sq.occupied
}

// SetTile places a piece at pos.
func (b *Board) SetTile(pos Position, piece Piece) {
	b.squares[pos.Row()][pos.Column()] = square{piece: piece, occupied: true}
}

// Clear empties the square at pos.
func (b *Board) Clear(pos Position) {
	b.squares[pos.Row()][pos.Column()] = square{}
}

// Equal reports whether two boards hold the same pieces.
func (b Board) Equal(o Board) bool {
	return b == o
}
