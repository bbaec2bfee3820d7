package chess

import "strings"

// MoveRecord is one entry in the append-only move log.
type MoveRecord struct {
	// Colour of the side that made the move.
	Mover Colour

	// Source and destination squares.
	From Square
	To   Square

	// The kind promoted to (Empty if not a promotion).
	Promotion Kind

	// Whether a piece was captured, including en passant.
	Capture bool

	// Long algebraic text, e.g. "e2-e4", "e5xd6", "e7-e8=Q".
	Notation string
}

// FormatNotation renders a move as from-to, using 'x' for captures and
// "=Q" style suffixes for promotions.
func FormatNotation(from, to Square, capture bool, promotion Kind) string {
	var sb strings.Builder
	sb.WriteString(from.String())
	if capture {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(to.String())
	if promotion != Empty {
		sb.WriteByte('=')
		sb.WriteByte(promotion.Letter())
	}
	return sb.String()
}

// Status is the game status for the side to move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}

// IsTerminal returns true for checkmate and stalemate.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}
