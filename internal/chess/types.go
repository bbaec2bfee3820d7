// Package chess provides core chess types: colours, pieces, squares and the board.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	Empty Kind = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter (either case) to a kind.
// Returns Empty for anything that is not a piece letter.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return Empty
	}
}

// IsPromotionChoice reports whether a pawn may promote to this kind.
func (k Kind) IsPromotionChoice() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// Piece is a (kind, colour) pair. The zero value is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	if kind == Empty {
		return NoPiece
	}
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// IsEmpty returns true if p is the empty square marker.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Is returns true if p is a piece of the given kind.
func (p Piece) Is(kind Kind) bool {
	return p.Kind == kind && kind != Empty
}

// IsColour returns true if p is a piece belonging to colour.
func (p Piece) IsColour(colour Colour) bool {
	return !p.IsEmpty() && p.Colour == colour
}

// FENLetter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) FENLetter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black && !p.IsEmpty() {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight" or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
	LastRank = RankBase + BoardSize - 1
	LastCol  = ColBase + BoardSize - 1
)

// Square is a zero-based (rank, file) pair. Rank 0 is the eighth rank (Black's
// back rank) and file 0 is the a-file, so e2 is {Rank: 6, File: 4}.
type Square struct {
	Rank int
	File int
}

// Sq builds a square from rank and file indices.
func Sq(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// Valid returns true if the square lies on the board.
func (s Square) Valid() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Offset returns the square dr ranks and df files away. The result may be invalid.
func (s Square) Offset(dr, df int) Square {
	return Square{Rank: s.Rank + dr, File: s.File + df}
}

// Col returns the file letter 'a'-'h'.
func (s Square) Col() byte {
	return byte(ColBase + s.File)
}

// RankChar returns the rank digit '1'-'8'.
func (s Square) RankChar() byte {
	return byte(LastRank - s.Rank)
}

// String renders the square as <file-letter><rank-number>, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "??"
	}
	return string([]byte{s.Col(), s.RankChar()})
}

// ParseSquare parses a square in the form "e4" (case-insensitive file letter).
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	col := text[0] | 0x20
	rank := text[1]
	if col < ColBase || col > LastCol || rank < RankBase || rank > LastRank {
		return Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	return Square{Rank: int(LastRank - rank), File: int(col - ColBase)}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// Intended for constants and tests.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// Forward returns the rank step a pawn of colour advances by:
// -1 for White (towards rank index 0), +1 for Black.
func Forward(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// HomeRank returns the rank index of colour's back rank.
func HomeRank(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnStartRank returns the rank index colour's pawns start on.
func PawnStartRank(colour Colour) int {
	return HomeRank(colour) + Forward(colour)
}

// PromotionRank returns the farthest rank for colour's pawns.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}

// Standard file indices for the king and the castling rooks.
const (
	KingFile      = 4
	KingSideRook  = 7
	QueenSideRook = 0
	KingSideDest  = 6
	QueenSideDest = 2
)
