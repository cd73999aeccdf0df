package chess

// BoardSize is the number of columns and rows on the board.
const BoardSize = 8

// Index is a validated column or row number in [0, BoardSize).
type Index uint8

// NewIndex returns the Index for v, or false when v is off the board.
func NewIndex(v uint8) (Index, bool) {
	if v >= BoardSize {
		return 0, false
	}
	return Index(v), true
}

// Position is an immutable (column, row) board coordinate.
type Position struct {
	col Index
	row Index
}

// NewPosition builds a Position from validated indices.
func NewPosition(col, row Index) Position {
	return Position{col: col, row: row}
}

// PositionAt builds a Position from zero-based column and row numbers,
// returning false when either is off the board.
func PositionAt(col, row int) (Position, bool) {
	if col < 0 || col >= BoardSize || row < 0 || row >= BoardSize {
		return Position{}, false
	}
	return Position{col: Index(col), row: Index(row)}, true
}

// ParsePosition parses two-character algebraic notation such as "e4",
// case-insensitively. The column letter maps a-h to columns 0-7 and the
// rank digit maps 1-8 to rows 0-7.
func ParsePosition(s string) (Position, bool) {
	if len(s) != 2 {
		return Position{}, false
	}
	col := s[0] | 0x20
	if col < 'a' || col > 'h' {
		return Position{}, false
	}
	row := s[1]
	if row < '1' || row > '8' {
		return Position{}, false
	}
	return Position{col: Index(col - 'a'), row: Index(row - '1')}, true
}

// Column returns the zero-based column (file) index.
func (p Position) Column() Index {
	return p.col
}

// Row returns the zero-based row (rank) index.
func (p Position) Row() Index {
	return p.row
}

// String returns the lowercase algebraic notation for p.
func (p Position) String() string {
	return string([]byte{'a' + byte(p.col), '1' + byte(p.row)})
}

// Less orders positions lexicographically by column then row.
func (p Position) Less(o Position) bool {
	if p.col != o.col {
		return p.col < o.col
	}
	return p.row < o.row
}

// Equal reports whether two positions name the same square.
func (p Position) Equal(o Position) bool {
	return p == o
}
