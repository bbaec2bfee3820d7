package engine

import "github.com/lgbarn/chessrules/internal/chess"

// Move is a legal (from, to) pair. Promotion moves appear once; the
// promotion kind is chosen when the move is applied.
type Move struct {
	From chess.Square
	To   chess.Square
}

// String returns the move in coordinate form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// HasLegalMoves returns true if the given colour has at least one legal move.
// Every (from, to) pair for every piece of colour is tried through
// IsValidMove, stopping at the first legal one.
func HasLegalMoves(state *chess.GameState, colour chess.Colour) bool {
	for _, from := range chess.AllSquares() {
		if !state.Board.Get(from).IsColour(colour) {
			continue
		}
		for _, to := range chess.AllSquares() {
			if IsValidMove(state, from, to) {
				return true
			}
		}
	}
	return false
}

// LegalDestinations returns every square the piece on from may legally move to.
func LegalDestinations(state *chess.GameState, from chess.Square) []chess.Square {
	if state.Board.IsEmpty(from) {
		return nil
	}
	var dests []chess.Square
	for _, to := range chess.AllSquares() {
		if IsValidMove(state, from, to) {
			dests = append(dests, to)
		}
	}
	return dests
}

// LegalMoves returns all legal moves for colour, in board order.
func LegalMoves(state *chess.GameState, colour chess.Colour) []Move {
	var moves []Move
	for _, from := range chess.AllSquares() {
		if !state.Board.Get(from).IsColour(colour) {
			continue
		}
		for _, to := range LegalDestinations(state, from) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}
