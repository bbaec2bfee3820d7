package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewInitialState creates a state with the standard starting position.
func NewInitialState() *chess.GameState {
	state := chess.NewGameState()
	UpdateStatus(state)
	return state
}

// NewStateFromFEN creates a game state from a FEN string. The halfmove
// clock field is accepted but ignored. The position must be playable: one
// king per side, no pawns on the first or last rank, and the side not to
// move not in check.
func NewStateFromFEN(fen string) (*chess.GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	state := &chess.GameState{ToMove: chess.White, MoveNumber: 1}

	if err := parsePiecePositions(&state.Board, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(state, parts); err != nil {
		return nil, err
	}

	if err := parseCastlingRights(state, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(state, parts); err != nil {
		return nil, err
	}
	parseMoveNumber(state, parts)

	if err := validatePosition(state); err != nil {
		return nil, err
	}

	UpdateStatus(state)
	return state, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank, file := 0, 0

	for _, c := range positions {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-rank, file, errors.ErrInvalidFEN)
			}
			rank++
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize || rank >= chess.BoardSize {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.Set(chess.Sq(rank, file), chess.MakePiece(colour, kind))
			file++
		}
		if file > chess.BoardSize {
			return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
		}
	}

	if rank != chess.BoardSize-1 || file != chess.BoardSize {
		return fmt.Errorf("incomplete piece placement: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(state *chess.GameState, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		state.ToMove = chess.White
	case "b":
		state.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. A right is
// only kept if the king and rook stand on their original squares.
func parseCastlingRights(state *chess.GameState, parts []string) error {
	state.Castling = chess.CastlingRights{}

	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			state.Castling[chess.White].KingSide = true
		case 'Q':
			state.Castling[chess.White].QueenSide = true
		case 'k':
			state.Castling[chess.Black].KingSide = true
		case 'q':
			state.Castling[chess.Black].QueenSide = true
		default:
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := chess.HomeRank(colour)
		if state.Board.Get(chess.Sq(home, chess.KingFile)) != chess.MakePiece(colour, chess.King) {
			state.Castling[colour] = chess.SideRights{}
			continue
		}
		rook := chess.MakePiece(colour, chess.Rook)
		if state.Board.Get(chess.Sq(home, chess.KingSideRook)) != rook {
			state.Castling[colour].KingSide = false
		}
		if state.Board.Get(chess.Sq(home, chess.QueenSideRook)) != rook {
			state.Castling[colour].QueenSide = false
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(state *chess.GameState, parts []string) error {
	state.ClearEnPassant()
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	// The target sits just behind a pawn of the side that is not to move.
	mover := state.ToMove.Opposite()
	if sq.Rank != chess.PawnStartRank(mover)+chess.Forward(mover) {
		return fmt.Errorf("en passant square %s on wrong rank: %w", sq, errors.ErrInvalidFEN)
	}
	state.SetEnPassant(sq)
	return nil
}

// parseMoveNumber parses the fullmove number field.
func parseMoveNumber(state *chess.GameState, parts []string) {
	if len(parts) >= 6 {
		var n uint
		if _, err := fmt.Sscanf(parts[5], "%d", &n); err == nil && n > 0 {
			state.MoveNumber = n
		}
	}
}

// validatePosition rejects positions the engine cannot play from.
func validatePosition(state *chess.GameState) error {
	board := &state.Board
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.Count(chess.MakePiece(colour, chess.King)); n != 1 {
			return fmt.Errorf("%s has %d kings: %w", colour, n, errors.ErrInvalidPosition)
		}
	}
	for file := 0; file < chess.BoardSize; file++ {
		for _, rank := range []int{0, chess.BoardSize - 1} {
			if board.Get(chess.Sq(rank, file)).Is(chess.Pawn) {
				return fmt.Errorf("pawn on %s: %w", chess.Sq(rank, file), errors.ErrInvalidPosition)
			}
		}
	}
	if IsInCheck(board, state.ToMove.Opposite()) {
		return fmt.Errorf("%s is in check but not to move: %w", state.ToMove.Opposite(), errors.ErrInvalidPosition)
	}
	return nil
}

// StateToFEN converts a game state to a FEN string. The halfmove clock is
// not tracked and is always written as 0.
func StateToFEN(state *chess.GameState) string {
	var sb strings.Builder

	writePiecePositions(&sb, &state.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, state)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, state)
	sb.WriteByte(' ')
	writeEnPassant(&sb, state)
	fmt.Fprintf(&sb, " 0 %d", state.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(rank, file))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, state *chess.GameState) {
	if state.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, state *chess.GameState) {
	hasCastling := false
	if state.Castling[chess.White].KingSide {
		sb.WriteByte('K')
		hasCastling = true
	}
	if state.Castling[chess.White].QueenSide {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if state.Castling[chess.Black].KingSide {
		sb.WriteByte('k')
		hasCastling = true
	}
	if state.Castling[chess.Black].QueenSide {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, state *chess.GameState) {
	if state.EnPassant {
		sb.WriteString(state.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}
