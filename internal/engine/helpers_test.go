package engine

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
)

// sq is shorthand for chess.MustParseSquare in test tables.
func sq(text string) chess.Square {
	return chess.MustParseSquare(text)
}

// mustState loads a FEN position or aborts the test.
func mustState(t testing.TB, fen string) *chess.GameState {
	t.Helper()
	state, err := NewStateFromFEN(fen)
	if err != nil {
		t.Fatalf("NewStateFromFEN(%q) error: %v", fen, err)
	}
	return state
}

// play validates and applies coordinate moves such as "e2e4" or "e7e8q",
// aborting the test on the first illegal one.
func play(t testing.TB, state *chess.GameState, moves ...string) {
	t.Helper()
	for _, m := range moves {
		from, to := sq(m[0:2]), sq(m[2:4])
		promotion := chess.Empty
		if len(m) == 5 {
			promotion = chess.KindFromLetter(m[4])
		}
		if !IsValidMove(state, from, to) {
			t.Fatalf("IsValidMove(%s) = false in %s", m, StateToFEN(state))
		}
		if !ApplyMove(state, from, to, promotion) {
			t.Fatalf("ApplyMove(%s) = false in %s", m, StateToFEN(state))
		}
	}
}

// assertUniquePlacement checks the structural invariant that the board
// holds at most one king per colour and no more than sixteen pieces a side.
func assertUniquePlacement(t testing.TB, state *chess.GameState) {
	t.Helper()
	counts := map[chess.Colour]int{}
	for _, s := range chess.AllSquares() {
		p := state.Board.Get(s)
		if !p.IsEmpty() {
			counts[p.Colour]++
		}
	}
	for colour, n := range counts {
		if n > 16 {
			t.Errorf("%s has %d pieces", colour, n)
		}
		if k := state.Board.Count(chess.MakePiece(colour, chess.King)); k != 1 {
			t.Errorf("%s has %d kings", colour, k)
		}
	}
}
