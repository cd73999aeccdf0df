package chess

// RelocationEngine is the minimal Engine: it relocates pieces and
// alternates the turn without judging chess legality. A move is
// accepted when the side to move lifts one of its own pieces onto any
// other square not already holding one of its pieces; full legality is
// a remote rules engine's concern.
type RelocationEngine struct {
	board Board
	turn  Color
}

var _ Engine = (*RelocationEngine)(nil)

// NewRelocationEngine returns an engine at the starting position with
// White to move.
func NewRelocationEngine() *RelocationEngine {
	return &RelocationEngine{board: StartingBoard(), turn: White}
}

// Snapshot returns the current board state.
func (e *RelocationEngine) Snapshot() Board {
	return e.board
}

// SetSnapshot adopts a board received from the remote peer. A snapshot
// arrives when the remote side completes a half-move, so the turn
// passes back with it.
func (e *RelocationEngine) SetSnapshot(b Board) {
	e.board = b
	e.turn = e.turn.Opposite()
}

// Turn returns the color whose move it is.
func (e *RelocationEngine) Turn() Color {
	return e.turn
}

// LegalDestinations enumerates every square the piece at from may
// relocate to: anything but its own square and squares holding pieces
// of the same color. It returns nil when from holds no piece of the
// side to move.
func (e *RelocationEngine) LegalDestinations(from Position) []Position {
	piece, occupied := e.board.Tile(from)
	if !occupied || piece.Color != e.turn {
		return nil
	}

	var dests []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			to, _ := PositionAt(col, row)
			if to.Equal(from) {
				continue
			}
			if other, occ := e.board.Tile(to); occ && other.Color == piece.Color {
				continue
			}
			dests = append(dests, to)
		}
	}
	return dests
}

// ApplyMove relocates the piece at from to to, promoting it when a
// promotion is given, and passes the turn. The outcome is always
// MoveValid; check detection needs a real rules engine.
func (e *RelocationEngine) ApplyMove(from, to Position, promotion Promotion) (MoveOutcome, error) {
	piece, occupied := e.board.Tile(from)
	if !occupied {
		return 0, &RejectedMoveError{Reason: RejectInvalid}
	}
	if piece.Color != e.turn {
		return 0, &RejectedMoveError{Reason: RejectWrongPlayer}
	}
	if to.Equal(from) {
		return 0, &RejectedMoveError{Reason: RejectInvalid}
	}
	if other, occ := e.board.Tile(to); occ && other.Color == piece.Color {
		return 0, &RejectedMoveError{Reason: RejectInvalid}
	}

	if promotion.Valid {
		piece = Piece{Kind: promotion.Kind, Color: piece.Color}
	}
	e.board.Clear(from)
	e.board.SetTile(to, piece)
	e.turn = e.turn.Opposite()
	return MoveValid, nil
}
