package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
)

// NeedsPromotion returns true if moving the piece on from to to is a pawn
// reaching its farthest rank, so a promotion choice is required.
func NeedsPromotion(state *chess.GameState, from, to chess.Square) bool {
	return isPromotion(state.Board.Get(from), to)
}

// ApplyMove applies a move that IsValidMove has already accepted and updates
// the derived state: en passant target, castling rights, move log, side to
// move and status. A promotion move without a valid promotion kind is not
// applied. Returns true if the move was applied.
func ApplyMove(state *chess.GameState, from, to chess.Square, promotion chess.Kind) bool {
	piece := state.Board.Get(from)
	if piece.IsEmpty() {
		return false
	}

	if isPromotion(piece, to) {
		if !promotion.IsPromotionChoice() {
			return false
		}
	} else {
		promotion = chess.Empty
	}

	doublePush := isDoublePush(piece, from, to)
	captured := placePieces(&state.Board, state, piece, from, to, promotion)

	// Set en passant square if double pawn push
	state.ClearEnPassant()
	if doublePush {
		state.SetEnPassant(from.Offset(chess.Forward(piece.Colour), 0))
	}

	updateCastlingRights(state, piece, from, to)

	state.History = append(state.History, chess.MoveRecord{
		Mover:     piece.Colour,
		From:      from,
		To:        to,
		Promotion: promotion,
		Capture:   captured,
		Notation:  chess.FormatNotation(from, to, captured, promotion),
	})

	if piece.Colour == chess.Black {
		state.MoveNumber++
	}
	state.ToMove = piece.Colour.Opposite()

	UpdateStatus(state)
	return true
}
