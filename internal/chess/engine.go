package chess

import "fmt"

// MoveOutcome classifies a move the rules engine accepted.
type MoveOutcome int

const (
	MoveValid MoveOutcome = iota
	MoveCheck
	MoveCheckmate
)

// String returns the string representation of a move outcome.
func (o MoveOutcome) String() string {
	switch o {
	case MoveValid:
		return "Valid"
	case MoveCheck:
		return "Check"
	case MoveCheckmate:
		return "Checkmate"
	}
	return "Unknown"
}

// RejectReason classifies a move the rules engine refused.
type RejectReason int

const (
	RejectBadCoordinates RejectReason = iota
	RejectWrongPlayer
	RejectInvalid
	RejectChecked
)

// String returns the string representation of a reject reason.
func (r RejectReason) String() string {
	switch r {
	case RejectBadCoordinates:
		return "BadCoordinates"
	case RejectWrongPlayer:
		return "WrongPlayer"
	case RejectInvalid:
		return "Invalid"
	case RejectChecked:
		return "Checked"
	}
	return "Unknown"
}

// RejectedMoveError is returned by Engine.ApplyMove for refused moves.
type RejectedMoveError struct {
	Reason RejectReason
}

// Error returns a formatted error message naming the reject reason.
func (e *RejectedMoveError) Error() string {
	return fmt.Sprintf("move rejected: %s", e.Reason)
}

// Engine is the opaque move-legality collaborator. The protocol layer
// never inspects its internals: board state crosses the boundary only
// as Board snapshots.
type Engine interface {
	// Snapshot returns the engine's current board state.
	Snapshot() Board
	// SetSnapshot replaces the engine's board state, resynchronizing it
	// with a board received from the remote peer.
	SetSnapshot(Board)
	// Turn returns the color whose move it is.
	Turn() Color
	// LegalDestinations enumerates the legal destination squares for the
	// piece at from.
	LegalDestinations(from Position) []Position
	// ApplyMove applies a move, returning its outcome or a
	// *RejectedMoveError describing why it was refused.
	ApplyMove(from, to Position, promotion Promotion) (MoveOutcome, error)
}
