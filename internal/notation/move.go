// Package notation turns move text into square pairs: coordinate notation
// typed by a user or read from a script, and phrases produced by a speech
// recogniser.
package notation

import (
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// Move is a parsed move request. Promotion is chess.Empty unless the text
// named a promotion piece.
type Move struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.Kind
}

// String renders the move in compact coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != chess.Empty {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// ParseMove parses coordinate notation. Accepted forms include "e2e4",
// "e2-e4", "e5xd6", "e7e8q", "e7e8=Q" and "E7-E8=q"; surrounding
// whitespace is ignored.
func ParseMove(text string) (Move, error) {
	s := strings.ToLower(strings.TrimSpace(text))

	from, err := squareAt(text, s, 0)
	if err != nil {
		return Move{}, err
	}
	pos := 2
	if pos < len(s) && (s[pos] == '-' || s[pos] == 'x') {
		pos++
	}
	to, err := squareAt(text, s, pos)
	if err != nil {
		return Move{}, err
	}
	pos += 2

	m := Move{From: from, To: to}
	if pos < len(s) && s[pos] == '=' {
		pos++
	}
	if pos < len(s) && chess.KindFromLetter(s[pos]) != chess.Empty {
		kind := chess.KindFromLetter(s[pos])
		if !kind.IsPromotionChoice() {
			return Move{}, &errors.ParseError{
				Err:      errors.ErrInvalidPromotion,
				Input:    text,
				Column:   pos + 1,
				Expected: "one of q, r, b, n",
				Got:      string(s[pos]),
			}
		}
		m.Promotion = kind
		pos++
	}
	if pos != len(s) {
		return Move{}, &errors.ParseError{
			Err:    errors.ErrParseFailure,
			Input:  text,
			Column: pos + 1,
			Got:    "trailing " + s[pos:],
		}
	}
	return m, nil
}

// squareAt reads a two-character square from s at pos.
func squareAt(input, s string, pos int) (chess.Square, error) {
	if pos+2 > len(s) {
		return chess.Square{}, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Input:    input,
			Column:   pos + 1,
			Expected: "square",
			Got:      "end of input",
		}
	}
	sq, err := chess.ParseSquare(s[pos : pos+2])
	if err != nil {
		return chess.Square{}, &errors.ParseError{
			Err:      err,
			Input:    input,
			Column:   pos + 1,
			Expected: "square",
			Got:      s[pos : pos+2],
		}
	}
	return sq, nil
}
