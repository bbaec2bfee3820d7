package engine

import "github.com/lgbarn/chessrules/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A board without a king of that colour is never in check; positions
// loaded through NewStateFromFEN always have exactly one king per side.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.Find(chess.MakePiece(colour, chess.King))
	if !ok {
		return false // No king found
	}
	return IsSquareAttacked(board, kingSq, colour)
}

// IsSquareAttacked returns true if any piece of the colour opposing
// defending geometrically reaches sq. Raw reachability only: castling,
// en passant and self-check are not considered, so this never recurses
// into move legality.
func IsSquareAttacked(board *chess.Board, sq chess.Square, defending chess.Colour) bool {
	attacker := defending.Opposite()
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board[rank][file]
			if !piece.IsColour(attacker) {
				continue
			}
			from := chess.Sq(rank, file)
			if piece.Is(chess.Pawn) {
				if pawnAttacks(attacker, from, sq) {
					return true
				}
				continue
			}
			if canPieceReach(board, piece.Kind, from, sq) {
				return true
			}
		}
	}
	return false
}

// Attackers returns every square holding a piece of the colour opposing
// defending that attacks sq.
func Attackers(board *chess.Board, sq chess.Square, defending chess.Colour) []chess.Square {
	var found []chess.Square
	attacker := defending.Opposite()
	for _, from := range chess.AllSquares() {
		piece := board.Get(from)
		if !piece.IsColour(attacker) {
			continue
		}
		if piece.Is(chess.Pawn) {
			if pawnAttacks(attacker, from, sq) {
				found = append(found, from)
			}
		} else if canPieceReach(board, piece.Kind, from, sq) {
			found = append(found, from)
		}
	}
	return found
}
