package engine

import "github.com/lgbarn/chessrules/internal/chess"

// pawnAttacks reports whether a pawn of colour on from attacks to. A pawn
// attacks the two squares diagonally ahead of it whether or not they are occupied.
func pawnAttacks(colour chess.Colour, from, to chess.Square) bool {
	return to.Rank == from.Rank+chess.Forward(colour) && abs(to.File-from.File) == 1
}

// isPawnMovePseudoLegal checks pushes, double pushes and captures for a pawn.
func isPawnMovePseudoLegal(state *chess.GameState, colour chess.Colour, from, to chess.Square) bool {
	board := &state.Board
	dir := chess.Forward(colour)

	// Pushes stay on the file and need an empty destination.
	if from.File == to.File && board.IsEmpty(to) {
		if to.Rank == from.Rank+dir {
			return true
		}
		if from.Rank == chess.PawnStartRank(colour) && to.Rank == from.Rank+2*dir {
			return board.IsEmpty(from.Offset(dir, 0))
		}
		return false
	}

	// Captures: an enemy piece, or the en passant target.
	if pawnAttacks(colour, from, to) {
		target := board.Get(to)
		if target.IsColour(colour.Opposite()) {
			return true
		}
		return target.IsEmpty() && state.IsEnPassantTarget(to)
	}

	return false
}

// isDoublePush returns true for a pawn's initial two-square advance.
func isDoublePush(piece chess.Piece, from, to chess.Square) bool {
	return piece.Is(chess.Pawn) && from.File == to.File && abs(to.Rank-from.Rank) == 2
}

// isEnPassantCapture returns true if a pawn moving to to captures en passant.
func isEnPassantCapture(state *chess.GameState, piece chess.Piece, from, to chess.Square) bool {
	return piece.Is(chess.Pawn) && from.File != to.File && state.IsEnPassantTarget(to) && state.Board.IsEmpty(to)
}

// enPassantVictim returns the square of the pawn removed by an en passant
// capture landing on target: one rank behind the target from the mover's side.
func enPassantVictim(mover chess.Colour, target chess.Square) chess.Square {
	return target.Offset(-chess.Forward(mover), 0)
}

// isPromotion returns true if piece is a pawn arriving on its farthest rank.
func isPromotion(piece chess.Piece, to chess.Square) bool {
	return piece.Is(chess.Pawn) && to.Rank == chess.PromotionRank(piece.Colour)
}
