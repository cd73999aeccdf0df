package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/INDA25PlusPlus/rsoderh-gui/internal/chess"
)

func square(t *testing.T, s string) chess.Position {
	t.Helper()
	pos, ok := chess.ParsePosition(s)
	if !ok {
		t.Fatalf("bad test square %q", s)
	}
	return pos
}

func TestParseMoveCommand(t *testing.T) {
	engine := chess.NewRelocationEngine()

	move, err := parseMoveCommand("e2e4", engine)
	if err != nil {
		t.Fatalf("parseMoveCommand failed: %v", err)
	}

	if diff := cmp.Diff(square(t, "e2"), move.Source); diff != "" {
		t.Errorf("source mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(square(t, "e4"), move.Dest); diff != "" {
		t.Errorf("dest mismatch (-want +got):\n%s", diff)
	}
	if move.Phase != chess.Ongoing {
		t.Errorf("phase = %v, want Ongoing", move.Phase)
	}
	if diff := cmp.Diff(engine.Snapshot(), move.Board); diff != "" {
		t.Errorf("board not the engine snapshot (-want +got):\n%s", diff)
	}
	piece, occupied := move.Board.Tile(square(t, "e4"))
	if !occupied || piece != (chess.Piece{Kind: chess.Pawn, Color: chess.White}) {
		t.Errorf("e4 holds %v (occupied=%v), want white pawn", piece, occupied)
	}

	// The turn passed, so Black may answer.
	if _, err := parseMoveCommand("e7e5", engine); err != nil {
		t.Fatalf("second parseMoveCommand failed: %v", err)
	}
}

func TestParseMoveCommandPromotion(t *testing.T) {
	engine := chess.NewRelocationEngine()

	move, err := parseMoveCommand("e2e4q", engine)
	if err != nil {
		t.Fatalf("parseMoveCommand failed: %v", err)
	}
	if !move.Promotion.Valid || move.Promotion.Kind != chess.Queen {
		t.Errorf("promotion = %+v, want queen", move.Promotion)
	}
	piece, _ := move.Board.Tile(square(t, "e4"))
	if piece.Kind != chess.Queen {
		t.Errorf("destination piece = %v, want promoted queen", piece)
	}
}

func TestParseMoveCommandRejected(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "wrong length", line: "e2e"},
		{name: "bad source", line: "z9e4"},
		{name: "bad promotion", line: "e2e4x"},
		{name: "empty source square", line: "e4e5"},
		{name: "not the mover's piece", line: "e7e5"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			engine := chess.NewRelocationEngine()

			if _, err := parseMoveCommand(test.line, engine); err == nil {
				t.Fatalf("parseMoveCommand(%q) succeeded", test.line)
			}
			if diff := cmp.Diff(chess.StartingBoard(), engine.Snapshot()); diff != "" {
				t.Errorf("rejected command changed the board (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseMoveCommandRejectReason(t *testing.T) {
	engine := chess.NewRelocationEngine()

	_, err := parseMoveCommand("e7e5", engine)
	var rejected *chess.RejectedMoveError
	if !errors.As(err, &rejected) {
		t.Fatalf("parseMoveCommand = %v, want *RejectedMoveError", err)
	}
	if rejected.Reason != chess.RejectWrongPlayer {
		t.Errorf("reason = %v, want RejectWrongPlayer", rejected.Reason)
	}
}
