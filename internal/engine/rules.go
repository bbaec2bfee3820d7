// Package engine provides chess move validation, move execution and
// game status evaluation.
package engine

import "github.com/lgbarn/chessrules/internal/chess"

// IsValidMove reports whether moving the piece on from to to is legal for
// that piece's colour. It does not check whose turn it is; callers that
// enforce turn order do so before asking.
func IsValidMove(state *chess.GameState, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}

	piece := state.Board.Get(from)
	if piece.IsEmpty() {
		return false
	}
	if state.Board.Get(to).IsColour(piece.Colour) {
		return false
	}

	if !isPseudoLegal(state, piece, from, to) {
		return false
	}

	return !leavesKingInCheck(state, piece, from, to)
}

// isPseudoLegal applies the per-piece movement rules without the self-check filter.
func isPseudoLegal(state *chess.GameState, piece chess.Piece, from, to chess.Square) bool {
	switch piece.Kind {
	case chess.Pawn:
		return isPawnMovePseudoLegal(state, piece.Colour, from, to)
	case chess.King:
		if canPieceReach(&state.Board, chess.King, from, to) {
			return true
		}
		return isCastlingMove(piece, from, to) && canCastle(state, piece.Colour, from, to)
	default:
		return canPieceReach(&state.Board, piece.Kind, from, to)
	}
}

// leavesKingInCheck plays the move on a scratch copy of the board and
// reports whether the mover's king is attacked afterwards. The live state is
// never touched.
func leavesKingInCheck(state *chess.GameState, piece chess.Piece, from, to chess.Square) bool {
	scratch := state.Board
	placePieces(&scratch, state, piece, from, to, chess.Empty)
	return IsInCheck(&scratch, piece.Colour)
}

// placePieces performs the board-level effects of a move: castling rook
// relocation, en passant pawn removal, and placing the mover (or its
// promotion) on the destination. It returns whether a piece was captured.
// board may be state.Board itself or a scratch copy of it.
func placePieces(board *chess.Board, state *chess.GameState, piece chess.Piece, from, to chess.Square, promotion chess.Kind) bool {
	captured := !board.IsEmpty(to)

	if isCastlingMove(piece, from, to) {
		rookFrom, rookTo := castlingRookSquares(to)
		board.Move(rookFrom, rookTo)
	}

	if isEnPassantCapture(state, piece, from, to) {
		board.Clear(enPassantVictim(piece.Colour, to))
		captured = true
	}

	board.Move(from, to)
	if promotion != chess.Empty && isPromotion(piece, to) {
		board.Set(to, chess.MakePiece(piece.Colour, promotion))
	}

	return captured
}
