package chesstp

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 indicates a frame whose bytes are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("frame is not valid UTF-8")

// ErrFrameLength indicates a frame slice that is not exactly FrameSize
// bytes long.
var ErrFrameLength = errors.New("frame is not exactly 128 bytes")

// RowCountError indicates a board string whose row count is not 8.
type RowCountError struct {
	Count int
}

func (e *RowCountError) Error() string {
	return fmt.Sprintf("board has %d rows, want 8", e.Count)
}

// ColumnCountError indicates a board row whose effective column count,
// after expanding empty-square runs, is not 8.
type ColumnCountError struct {
	Count int
}

func (e *ColumnCountError) Error() string {
	return fmt.Sprintf("board row has %d columns, want 8", e.Count)
}

// TileCharError indicates a character outside [pnbrqkPNBRQK1-8] where a
// tile was expected. Char carries the offending character.
type TileCharError struct {
	Char rune
}

func (e *TileCharError) Error() string {
	return fmt.Sprintf("invalid tile character %q", e.Char)
}

// UnknownIdentifierError indicates a frame whose message identifier is
// neither ChessMOVE nor ChessQUIT. ID carries the identifier found.
type UnknownIdentifierError struct {
	ID string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown message identifier %q", e.ID)
}

// PartCountError indicates a frame with too few ':'-separated parts for
// its message type. Found counts the parts present, including the
// identifier as part 1.
type PartCountError struct {
	Found int
}

func (e *PartCountError) Error() string {
	return fmt.Sprintf("message has too few parts, found %d", e.Found)
}

// MoveSyntaxError indicates a move code that does not match the
// five-character move grammar. Raw carries the whole move field.
type MoveSyntaxError struct {
	Raw string
}

func (e *MoveSyntaxError) Error() string {
	return fmt.Sprintf("invalid move code %q", e.Raw)
}

// PhaseSyntaxError indicates a game-phase code outside the four known
// values. Raw carries the whole phase field.
type PhaseSyntaxError struct {
	Raw string
}

func (e *PhaseSyntaxError) Error() string {
	return fmt.Sprintf("invalid game phase %q", e.Raw)
}

// BoardFieldError wraps a board decode failure inside a move message.
// Raw carries the whole board field.
type BoardFieldError struct {
	Raw string
	Err error
}

func (e *BoardFieldError) Error() string {
	return fmt.Sprintf("invalid board %q: %v", e.Raw, e.Err)
}

// Unwrap returns the underlying board decode error.
func (e *BoardFieldError) Unwrap() error {
	return e.Err
}

// CapacityError indicates message content that cannot fit in one frame.
// Size is the content length that was attempted.
type CapacityError struct {
	Size int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("message content is %d bytes, frame capacity is %d", e.Size, FrameSize)
}
