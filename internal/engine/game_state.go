package engine

import "github.com/lgbarn/chessrules/internal/chess"

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(state *chess.GameState, colour chess.Colour) bool {
	return IsInCheck(&state.Board, colour) && !HasLegalMoves(state, colour)
}

// IsStalemate returns true if colour is not in check but has no legal move.
func IsStalemate(state *chess.GameState, colour chess.Colour) bool {
	return !IsInCheck(&state.Board, colour) && !HasLegalMoves(state, colour)
}

// EvaluateStatus derives the status of the side to move.
func EvaluateStatus(state *chess.GameState) chess.Status {
	colour := state.ToMove
	inCheck := IsInCheck(&state.Board, colour)
	hasMoves := HasLegalMoves(state, colour)

	switch {
	case inCheck && !hasMoves:
		return chess.Checkmate
	case !hasMoves:
		return chess.Stalemate
	case inCheck:
		return chess.Check
	default:
		return chess.Ongoing
	}
}

// UpdateStatus recomputes Status and GameOver for the side to move.
func UpdateStatus(state *chess.GameState) {
	state.Status = EvaluateStatus(state)
	state.GameOver = state.Status.IsTerminal()
}

// Winner returns the winning colour if the side to move is checkmated.
func Winner(state *chess.GameState) (chess.Colour, bool) {
	if state.Status != chess.Checkmate {
		return chess.White, false
	}
	return state.ToMove.Opposite(), true
}
