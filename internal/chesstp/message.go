// Package chesstp implements the chesstp wire codec: the fixed
// 128-byte message frames exchanged between two game instances, and
// the FEN-style board encoding embedded in move frames.
package chesstp

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/INDA25PlusPlus/rsoderh-gui/internal/chess"
)

const (
	// FrameSize is the fixed length of every chesstp frame.
	FrameSize = 128
	// FramePrefix marks the start of every frame on the wire.
	FramePrefix = "Chess"

	moveIdentifier = "ChessMOVE"
	quitIdentifier = "ChessQUIT"

	// padByte fills every frame out to FrameSize after its content.
	padByte = '0'

	noPromotionCode = '0'
)

// MaxQuitLen is the largest quit text representable in one frame: the
// identifier, its separator and the trailing separator claim the rest.
const MaxQuitLen = FrameSize - len(quitIdentifier) - 2

// Message is one chesstp protocol message: either a Move or a Quit.
type Message interface {
	isMessage()
}

// Move notifies the peer of one completed half-move. It carries the
// full resulting phase and board, so a single move message is enough to
// resynchronize a peer.
type Move struct {
	Source    chess.Position
	Dest      chess.Position
	Promotion chess.Promotion
	Phase     chess.GamePhase
	Board     chess.Board
}

func (Move) isMessage() {}

// Quit notifies the peer that the sender is leaving the session.
type Quit struct {
	Message string
}

func (Quit) isMessage() {}

// NewQuit builds a Quit, rejecting text that cannot fit in one frame.
func NewQuit(text string) (Quit, error) {
	if len(text) > MaxQuitLen {
		return Quit{}, &CapacityError{Size: len(quitIdentifier) + 2 + len(text)}
	}
	return Quit{Message: text}, nil
}

// phaseCodes maps game phases to their two-digit wire codes.
var phaseCodes = map[chess.GamePhase]string{
	chess.Ongoing:  "0-0",
	chess.WhiteWin: "1-0",
	chess.BlackWin: "0-1",
	chess.Draw:     "1-1",
}

func parsePhase(code string) (chess.GamePhase, bool) {
	for phase, c := range phaseCodes {
		if c == code {
			return phase, true
		}
	}
	return 0, false
}

// encodeMoveCode renders the five-character move field: source square,
// destination square (uppercase file letters) and a promotion code.
func encodeMoveCode(m Move) string {
	code := [5]byte{
		'A' + byte(m.Source.Column()),
		'1' + byte(m.Source.Row()),
		'A' + byte(m.Dest.Column()),
		'1' + byte(m.Dest.Row()),
		noPromotionCode,
	}
	if m.Promotion.Valid {
		code[4] = m.Promotion.Kind.Letter()
	}
	return string(code[:])
}

// parseMoveCode parses the five-character move field. The grammar
// requires uppercase file letters and accepts rank digits 1-9; rank 9
// is then rejected when the position is constructed, so it surfaces as
// a MoveSyntaxError like every other deviation.
func parseMoveCode(code string) (source, dest chess.Position, promotion chess.Promotion, err error) {
	fail := func() (chess.Position, chess.Position, chess.Promotion, error) {
		return chess.Position{}, chess.Position{}, chess.Promotion{}, &MoveSyntaxError{Raw: code}
	}

	if len(code) != 5 {
		return fail()
	}
	for _, i := range []int{0, 2} {
		if code[i] < 'A' || code[i] > 'H' {
			return fail()
		}
		if code[i+1] < '1' || code[i+1] > '9' {
			return fail()
		}
	}

	source, ok := chess.ParsePosition(code[0:2])
	if !ok {
		return fail()
	}
	dest, ok = chess.ParsePosition(code[2:4])
	if !ok {
		return fail()
	}

	if code[4] != noPromotionCode {
		kind, ok := chess.PieceKindFromLetter(code[4])
		if !ok {
			return fail()
		}
		promotion = chess.PromoteTo(kind)
	}

	return source, dest, promotion, nil
}

// Serialize encodes a message into one fixed-size frame, padding the
// content with '0' bytes. Content that exceeds the frame capacity is
// rejected rather than truncated.
func Serialize(m Message) ([]byte, error) {
	var sb strings.Builder
	switch msg := m.(type) {
	case Move:
		sb.WriteString(moveIdentifier)
		sb.WriteByte(':')
		sb.WriteString(encodeMoveCode(msg))
		sb.WriteByte(':')
		sb.WriteString(phaseCodes[msg.Phase])
		sb.WriteByte(':')
		sb.WriteString(EncodeBoard(msg.Board))
		sb.WriteByte(':')
	case Quit:
		sb.WriteString(quitIdentifier)
		sb.WriteByte(':')
		sb.WriteString(msg.Message)
		sb.WriteByte(':')
	default:
		return nil, errors.Errorf("unsupported message type %T", m)
	}

	if sb.Len() > FrameSize {
		return nil, &CapacityError{Size: sb.Len()}
	}

	frame := make([]byte, FrameSize)
	n := copy(frame, sb.String())
	for i := n; i < FrameSize; i++ {
		frame[i] = padByte
	}
	return frame, nil
}

// Parse decodes one full frame into a Message. Every failure is fatal
// for the frame; there is no partial result.
func Parse(frame []byte) (Message, error) {
	if len(frame) != FrameSize {
		return nil, ErrFrameLength
	}
	if !utf8.Valid(frame) {
		return nil, ErrInvalidUTF8
	}

	identifier, rest, found := strings.Cut(string(frame), ":")
	if !found {
		return nil, &PartCountError{Found: 1}
	}

	switch identifier {
	case moveIdentifier:
		return parseMove(rest)
	case quitIdentifier:
		return parseQuit(rest)
	default:
		return nil, &UnknownIdentifierError{ID: identifier}
	}
}

// parseMove parses the move, phase, board and padding fields following
// a ChessMOVE identifier. Part counts are reported 1-based against the
// whole frame, counting the identifier as part 1.
func parseMove(rest string) (Message, error) {
	parts := strings.SplitN(rest, ":", 4)
	if len(parts) < 4 {
		return nil, &PartCountError{Found: len(parts) + 1}
	}

	source, dest, promotion, err := parseMoveCode(parts[0])
	if err != nil {
		return nil, err
	}

	phase, ok := parsePhase(parts[1])
	if !ok {
		return nil, &PhaseSyntaxError{Raw: parts[1]}
	}

	board, err := DecodeBoard(parts[2])
	if err != nil {
		return nil, &BoardFieldError{Raw: parts[2], Err: err}
	}

	// parts[3] is padding; only its presence matters.

	return Move{
		Source:    source,
		Dest:      dest,
		Promotion: promotion,
		Phase:     phase,
		Board:     board,
	}, nil
}

// parseQuit parses the free-text and padding fields following a
// ChessQUIT identifier. The text may be empty and may contain any
// UTF-8.
func parseQuit(rest string) (Message, error) {
	text, _, found := strings.Cut(rest, ":")
	if !found {
		return nil, &PartCountError{Found: 2}
	}
	return Quit{Message: text}, nil
}
