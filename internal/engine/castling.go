package engine

import "github.com/lgbarn/chessrules/internal/chess"

// isCastlingMove returns true for a king moving two files along its rank.
func isCastlingMove(piece chess.Piece, from, to chess.Square) bool {
	return piece.Is(chess.King) && from.Rank == to.Rank && abs(to.File-from.File) == 2
}

// castlingRookSquares returns where the rook starts and ends for a king
// castling onto kingTo.
func castlingRookSquares(kingTo chess.Square) (rookFrom, rookTo chess.Square) {
	if kingTo.File == chess.KingSideDest {
		return chess.Sq(kingTo.Rank, chess.KingSideRook), chess.Sq(kingTo.Rank, chess.KingSideDest-1)
	}
	return chess.Sq(kingTo.Rank, chess.QueenSideRook), chess.Sq(kingTo.Rank, chess.QueenSideDest+1)
}

// canCastle checks the castling preconditions for a king on from moving to to:
// the right is still held (neither king nor rook has moved), the rook is on
// its original square, every square between king and rook is empty, the king
// is not in check, and the square the king passes through is not attacked.
// Safety of the destination is left to the generic self-check filter.
func canCastle(state *chess.GameState, colour chess.Colour, from, to chess.Square) bool {
	home := chess.HomeRank(colour)
	if from != chess.Sq(home, chess.KingFile) || to.Rank != home {
		return false
	}

	var kingSide bool
	switch to.File {
	case chess.KingSideDest:
		kingSide = true
	case chess.QueenSideDest:
		kingSide = false
	default:
		return false
	}

	if !state.Castling.Has(colour, kingSide) {
		return false
	}

	board := &state.Board
	rookFrom, _ := castlingRookSquares(to)
	if board.Get(rookFrom) != chess.MakePiece(colour, chess.Rook) {
		return false
	}
	if !IsPathClear(board, from, rookFrom) {
		return false
	}
	if IsSquareAttacked(board, from, colour) {
		return false
	}

	passThrough := chess.Sq(home, (from.File+to.File)/2)
	return !IsSquareAttacked(board, passThrough, colour)
}

// updateCastlingRights removes rights lost by a move from from to to: all of
// the mover's rights if the king moved, and one side's right whenever a rook
// leaves or is captured on its original square.
func updateCastlingRights(state *chess.GameState, mover chess.Piece, from, to chess.Square) {
	if mover.Is(chess.King) {
		state.Castling[mover.Colour] = chess.SideRights{}
	}
	clearRookRight(state, from)
	clearRookRight(state, to)
}

// clearRookRight drops the right tied to a rook's original square, if sq is one.
func clearRookRight(state *chess.GameState, sq chess.Square) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if sq.Rank != chess.HomeRank(colour) {
			continue
		}
		switch sq.File {
		case chess.KingSideRook:
			state.Castling[colour].KingSide = false
		case chess.QueenSideRook:
			state.Castling[colour].QueenSide = false
		}
	}
}
