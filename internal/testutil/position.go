package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
)

// Positions used across package tests.
const (
	FENFoolsMate = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 3"
	FENStalemate = "8/8/8/8/8/kq6/8/K7 w - - 0 1"
	FENCastling  = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"
	FENPromotion = "k7/4P3/8/8/8/8/8/4K3 w - - 0 1"
	FENEnPassant = "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1"
	FENLoneKings = "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	FENBackRank  = "6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1"
	FENKiwipete  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
)

// ParseTestState loads a FEN position, returning nil if it is rejected.
// Use this for tests where rejection is an acceptable outcome.
func ParseTestState(fen string) *chess.GameState {
	state, err := engine.NewStateFromFEN(fen)
	if err != nil {
		return nil
	}
	return state
}

// MustState loads a FEN position.
// It calls t.Fatal if the position is rejected.
func MustState(t testing.TB, fen string) *chess.GameState {
	t.Helper()
	state, err := engine.NewStateFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to load test position %q: %v", fen, err)
	}
	return state
}

// MustSquare parses a square name such as "e4".
// It calls t.Fatal on malformed input.
func MustSquare(t testing.TB, text string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(text)
	if err != nil {
		t.Fatalf("bad test square %q: %v", text, err)
	}
	return sq
}

// PlayMoves validates and applies coordinate moves ("e2e4", "e7e8q") to state.
// It calls t.Fatal on the first move the engine refuses.
func PlayMoves(t testing.TB, state *chess.GameState, moves ...string) {
	t.Helper()
	for i, m := range moves {
		if len(m) != 4 && len(m) != 5 {
			t.Fatalf("move %d: malformed test move %q", i+1, m)
		}
		from, to := MustSquare(t, m[0:2]), MustSquare(t, m[2:4])
		promotion := chess.Empty
		if len(m) == 5 {
			promotion = chess.KindFromLetter(m[4])
		}
		if !engine.IsValidMove(state, from, to) {
			t.Fatalf("move %d: %s is illegal in %s", i+1, m, engine.StateToFEN(state))
		}
		if !engine.ApplyMove(state, from, to, promotion) {
			t.Fatalf("move %d: %s was not applied in %s", i+1, m, engine.StateToFEN(state))
		}
	}
}
