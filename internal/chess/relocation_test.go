package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func position(t *testing.T, s string) Position {
	t.Helper()
	pos, ok := ParsePosition(s)
	if !ok {
		t.Fatalf("bad test square %q", s)
	}
	return pos
}

func TestRelocationEngineStartsFresh(t *testing.T) {
	engine := NewRelocationEngine()

	if got := engine.Turn(); got != White {
		t.Errorf("Turn = %v, want White", got)
	}
	if diff := cmp.Diff(StartingBoard(), engine.Snapshot()); diff != "" {
		t.Errorf("Snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestRelocationEngineApplyMove(t *testing.T) {
	engine := NewRelocationEngine()

	outcome, err := engine.ApplyMove(position(t, "e2"), position(t, "e4"), Promotion{})
	if err != nil {
		t.Fatalf("ApplyMove failed: %v", err)
	}
	if outcome != MoveValid {
		t.Errorf("outcome = %v, want MoveValid", outcome)
	}
	if got := engine.Turn(); got != Black {
		t.Errorf("Turn after move = %v, want Black", got)
	}

	board := engine.Snapshot()
	if _, occupied := board.Tile(position(t, "e2")); occupied {
		t.Error("source square still occupied after move")
	}
	piece, occupied := board.Tile(position(t, "e4"))
	if !occupied || piece != (Piece{Kind: Pawn, Color: White}) {
		t.Errorf("destination holds %v (occupied=%v), want white pawn", piece, occupied)
	}
}

func TestRelocationEngineApplyMovePromotes(t *testing.T) {
	engine := NewRelocationEngine()
	board := NewBoard()
	board.SetTile(position(t, "e7"), Piece{Kind: Pawn, Color: White})
	engine.SetSnapshot(board)
	// SetSnapshot passed the turn; hand it back so White may move.
	engine.SetSnapshot(board)

	if _, err := engine.ApplyMove(position(t, "e7"), position(t, "e8"), PromoteTo(Queen)); err != nil {
		t.Fatalf("ApplyMove failed: %v", err)
	}
	piece, occupied := engine.Snapshot().Tile(position(t, "e8"))
	if !occupied || piece != (Piece{Kind: Queen, Color: White}) {
		t.Errorf("destination holds %v (occupied=%v), want white queen", piece, occupied)
	}
}

func TestRelocationEngineRejections(t *testing.T) {
	tests := []struct {
		name   string
		from   string
		to     string
		reason RejectReason
	}{
		{name: "empty source", from: "e4", to: "e5", reason: RejectInvalid},
		{name: "opponent piece", from: "e7", to: "e5", reason: RejectWrongPlayer},
		{name: "no-op move", from: "e2", to: "e2", reason: RejectInvalid},
		{name: "own piece on destination", from: "a1", to: "a2", reason: RejectInvalid},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			engine := NewRelocationEngine()

			_, err := engine.ApplyMove(position(t, test.from), position(t, test.to), Promotion{})
			var rejected *RejectedMoveError
			if !errors.As(err, &rejected) {
				t.Fatalf("ApplyMove = %v, want *RejectedMoveError", err)
			}
			if rejected.Reason != test.reason {
				t.Errorf("reason = %v, want %v", rejected.Reason, test.reason)
			}
			if got := engine.Turn(); got != White {
				t.Errorf("Turn after rejected move = %v, want White", got)
			}
			if diff := cmp.Diff(StartingBoard(), engine.Snapshot()); diff != "" {
				t.Errorf("board changed by rejected move (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRelocationEngineSetSnapshotPassesTurn(t *testing.T) {
	engine := NewRelocationEngine()

	remote := StartingBoard()
	remote.Clear(position(t, "e7"))
	remote.SetTile(position(t, "e5"), Piece{Kind: Pawn, Color: Black})
	engine.SetSnapshot(remote)

	if got := engine.Turn(); got != Black {
		t.Errorf("Turn after snapshot = %v, want Black", got)
	}
	if diff := cmp.Diff(remote, engine.Snapshot()); diff != "" {
		t.Errorf("Snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestRelocationEngineLegalDestinations(t *testing.T) {
	engine := NewRelocationEngine()

	if dests := engine.LegalDestinations(position(t, "e4")); dests != nil {
		t.Errorf("LegalDestinations from empty square = %v, want nil", dests)
	}
	if dests := engine.LegalDestinations(position(t, "e7")); dests != nil {
		t.Errorf("LegalDestinations for opponent piece = %v, want nil", dests)
	}

	dests := engine.LegalDestinations(position(t, "e2"))
	// 64 squares minus the source and White's 15 other pieces.
	if len(dests) != 48 {
		t.Fatalf("LegalDestinations returned %d squares, want 48", len(dests))
	}
	for _, to := range dests {
		if to.Equal(position(t, "e2")) {
			t.Error("LegalDestinations includes the source square")
		}
		if piece, occupied := engine.Snapshot().Tile(to); occupied && piece.Color == White {
			t.Errorf("LegalDestinations includes own-occupied %s", to)
		}
	}
}
