package chesstp

import (
	"strings"

	"github.com/INDA25PlusPlus/rsoderh-gui/internal/chess"
)

// EncodeBoard renders a board as the piece-placement field of FEN
// notation: ranks from 8 down to 1 joined by '/', runs of empty squares
// collapsed to a single digit. The encoding is canonical, so
// EncodeBoard(b) round-trips through DecodeBoard for every board.
func EncodeBoard(b chess.Board) string {
	var sb strings.Builder
	for row := chess.BoardSize - 1; row >= 0; row-- {
		if row != chess.BoardSize-1 {
			sb.WriteByte('/')
		}
		run := 0
		for col := 0; col < chess.BoardSize; col++ {
			pos, _ := chess.PositionAt(col, row)
			piece, occupied := b.Tile(pos)
			if !occupied {
				run++
				continue
			}
			if run > 0 {
				sb.WriteByte('0' + byte(run))
				run = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if run > 0 {
			sb.WriteByte('0' + byte(run))
		}
	}
	return sb.String()
}

// tile is one decoded square: empty unless occupied is set.
type tile struct {
	piece    chess.Piece
	occupied bool
}

// expandRow expands one row of a board string into its tiles. A digit
// contributes that many empty tiles, a piece letter one occupied tile.
// A character outside [pnbrqkPNBRQK1-8] still contributes one tile so
// that column counting can proceed, and is reported as the row's first
// invalid character.
func expandRow(row string) ([]tile, *rune) {
	var tiles []tile
	var invalid *rune
	for _, ch := range row {
		switch {
		case ch >= '1' && ch <= '8':
			for i := 0; i < int(ch-'0'); i++ {
				tiles = append(tiles, tile{})
			}
		default:
			var kind chess.PieceKind
			ok := false
			if ch < 0x80 {
				kind, ok = chess.PieceKindFromLetter(byte(ch))
			}
			if !ok {
				if invalid == nil {
					bad := ch
					invalid = &bad
				}
				tiles = append(tiles, tile{})
				continue
			}
			color := chess.Black
			if ch >= 'A' && ch <= 'Z' {
				color = chess.White
			}
			tiles = append(tiles, tile{
				piece:    chess.Piece{Kind: kind, Color: color},
				occupied: true,
			})
		}
	}
	return tiles, invalid
}

// DecodeBoard parses the piece-placement field of FEN notation. Text
// row 0 is board rank 8. Errors are reported in a fixed precedence:
// wrong row count first, then the first row with a wrong effective
// column count, then the first invalid tile character.
func DecodeBoard(s string) (chess.Board, error) {
	rows := strings.Split(s, "/")
	if len(rows) != chess.BoardSize {
		return chess.Board{}, &RowCountError{Count: len(rows)}
	}

	expanded := make([][]tile, 0, chess.BoardSize)
	var firstInvalid *rune
	for _, row := range rows {
		tiles, invalid := expandRow(row)
		if len(tiles) != chess.BoardSize {
			return chess.Board{}, &ColumnCountError{Count: len(tiles)}
		}
		if invalid != nil && firstInvalid == nil {
			firstInvalid = invalid
		}
		expanded = append(expanded, tiles)
	}
	if firstInvalid != nil {
		return chess.Board{}, &TileCharError{Char: *firstInvalid}
	}

	var board chess.Board
	for i, tiles := range expanded {
		row := chess.BoardSize - 1 - i
		for col, t := range tiles {
			if !t.occupied {
				continue
			}
			pos, _ := chess.PositionAt(col, row)
			board.SetTile(pos, t.piece)
		}
	}
	return board, nil
}
