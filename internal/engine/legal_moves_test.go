package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lgbarn/chessrules/internal/chess"
)

func squareNames(squares []chess.Square) []string {
	names := make([]string, 0, len(squares))
	for _, s := range squares {
		names = append(names, s.String())
	}
	sort.Strings(names)
	return names
}

func TestLegalDestinations(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"pawn on start rank", InitialFEN, "e2", []string{"e3", "e4"}},
		{"knight from corner", InitialFEN, "g1", []string{"f3", "h3"}},
		{"boxed-in rook", InitialFEN, "a1", []string{}},
		{"empty square", InitialFEN, "e4", []string{}},
		{"king with both castles", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1", []string{"c1", "d1", "d2", "e2", "f1", "f2", "g1"}},
		{"pinned bishop", "4r1k1/8/8/8/8/8/4B3/4K3 w - - 0 1", "e2", []string{}},
		{"black pawn capture or push", "4k3/8/8/3p4/4P3/8/8/4K3 b - - 0 1", "d5", []string{"d4", "e4"}},
		{"en passant included", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5", []string{"d6", "e6"}},
		{"promotion listed once", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7", []string{"a8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := mustState(t, tt.fen)
			got := squareNames(LegalDestinations(state, sq(tt.from)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LegalDestinations(%s) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestLegalMoves_Count(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   int
	}{
		{"initial white", InitialFEN, chess.White, 20},
		{"initial black", InitialFEN, chess.Black, 20},
		{"lone kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", chess.White, 5},
		{"stalemated", "8/8/8/8/8/kq6/8/K7 w - - 0 1", chess.White, 0},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", chess.White, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := mustState(t, tt.fen)
			moves := LegalMoves(state, tt.colour)
			if len(moves) != tt.want {
				t.Errorf("LegalMoves() returned %d moves, want %d: %v", len(moves), tt.want, moves)
			}
			if got := HasLegalMoves(state, tt.colour); got != (tt.want > 0) {
				t.Errorf("HasLegalMoves() = %v", got)
			}
		})
	}
}

func TestLegalMoves_NeverLeaveKingInCheck(t *testing.T) {
	state := mustState(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := state.Clone()

	for _, m := range LegalMoves(state, chess.White) {
		scratch := state.Clone()
		ApplyMove(scratch, m.From, m.To, chess.Queen)
		if IsInCheck(&scratch.Board, chess.White) {
			t.Errorf("%s leaves White in check", m)
		}
	}
	if diff := cmp.Diff(before, state); diff != "" {
		t.Errorf("move generation changed the state (-want +got):\n%s", diff)
	}
}

func TestMove_String(t *testing.T) {
	m := Move{From: sq("e2"), To: sq("e4")}
	if got := m.String(); got != "e2e4" {
		t.Errorf("String() = %q, want e2e4", got)
	}
}
