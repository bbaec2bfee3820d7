package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules/internal/errors"
)

func TestSetupInitialPosition(t *testing.T) {
	var b Board
	b.SetupInitialPosition()

	tests := []struct {
		name  string
		sq    string
		piece Piece
	}{
		// White back rank
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white bishop f1", "f1", W(Bishop)},
		{"white knight g1", "g1", W(Knight)},
		{"white rook h1", "h1", W(Rook)},
		// Pawns
		{"white pawn a2", "a2", W(Pawn)},
		{"white pawn e2", "e2", W(Pawn)},
		{"black pawn e7", "e7", B(Pawn)},
		{"black pawn h7", "h7", B(Pawn)},
		// Black back rank
		{"black rook a8", "a8", B(Rook)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black rook h8", "h8", B(Rook)},
		// Empty squares
		{"empty e3", "e3", NoPiece},
		{"empty d4", "d4", NoPiece},
		{"empty c6", "c6", NoPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Get(MustParseSquare(tt.sq))
			if got != tt.piece {
				t.Errorf("Get(%s) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}

	t.Run("piece counts", func(t *testing.T) {
		if got := b.Count(W(Pawn)); got != 8 {
			t.Errorf("Count(white pawn) = %d; want 8", got)
		}
		if got := b.Count(B(King)); got != 1 {
			t.Errorf("Count(black king) = %d; want 1", got)
		}
	})
}

func TestBoardGetSet(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		var b Board
		sq := MustParseSquare("f6")
		b.Set(sq, B(Knight))
		if got := b.Get(sq); got != B(Knight) {
			t.Errorf("Get(f6) = %v; want black knight", got)
		}
	})

	t.Run("off-board access", func(t *testing.T) {
		var b Board
		b.SetupInitialPosition()
		before := b
		b.Set(Sq(8, 0), W(Queen))
		b.Set(Sq(0, -1), W(Queen))
		if b != before {
			t.Error("Set on an off-board square modified the board")
		}
		if got := b.Get(Sq(-1, 3)); got != NoPiece {
			t.Errorf("Get(off board) = %v; want Empty", got)
		}
	})

	t.Run("move returns captured piece", func(t *testing.T) {
		var b Board
		b.Set(MustParseSquare("d1"), W(Queen))
		b.Set(MustParseSquare("d7"), B(Pawn))
		captured := b.Move(MustParseSquare("d1"), MustParseSquare("d7"))
		if captured != B(Pawn) {
			t.Errorf("Move() captured = %v; want black pawn", captured)
		}
		if !b.IsEmpty(MustParseSquare("d1")) {
			t.Error("source square not vacated")
		}
		if got := b.Get(MustParseSquare("d7")); got != W(Queen) {
			t.Errorf("Get(d7) = %v; want white queen", got)
		}
	})
}

func TestBoardFind(t *testing.T) {
	var b Board
	b.SetupInitialPosition()

	sq, ok := b.Find(B(King))
	if !ok || sq.String() != "e8" {
		t.Errorf("Find(black king) = %v, %v; want e8, true", sq, ok)
	}

	b.Clear(sq)
	if _, ok := b.Find(B(King)); ok {
		t.Error("Find(black king) found a king on a board without one")
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		text string
		want Square
	}{
		{"a8", Sq(0, 0)},
		{"h1", Sq(7, 7)},
		{"e2", Sq(6, 4)},
		{"E4", Sq(4, 4)},
		{"d5", Sq(3, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseSquare(tt.text)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.text, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "e", "e9", "i1", "e22", "11"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, err := ParseSquare(bad)
			if !errors.Is(err, chesserrors.ErrInvalidSquare) {
				t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", bad, err)
			}
		})
	}
}

func TestSquareString(t *testing.T) {
	for _, sq := range AllSquares() {
		text := sq.String()
		back, err := ParseSquare(text)
		if err != nil || back != sq {
			t.Errorf("ParseSquare(%q) = %+v, %v; want %+v", text, back, err, sq)
		}
	}
	if got := Sq(9, 9).String(); got != "??" {
		t.Errorf("String() of off-board square = %q; want ??", got)
	}
}

func TestPawnGeometry(t *testing.T) {
	tests := []struct {
		colour    Colour
		forward   int
		start     int
		promotion int
	}{
		{White, -1, 6, 0},
		{Black, 1, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.colour.String(), func(t *testing.T) {
			if got := Forward(tt.colour); got != tt.forward {
				t.Errorf("Forward() = %d; want %d", got, tt.forward)
			}
			if got := PawnStartRank(tt.colour); got != tt.start {
				t.Errorf("PawnStartRank() = %d; want %d", got, tt.start)
			}
			if got := PromotionRank(tt.colour); got != tt.promotion {
				t.Errorf("PromotionRank() = %d; want %d", got, tt.promotion)
			}
		})
	}
}

func TestSaveRestoreState(t *testing.T) {
	s := NewGameState()
	saved := s.SaveState()

	s.Board.Move(MustParseSquare("e2"), MustParseSquare("e4"))
	s.SetEnPassant(MustParseSquare("e3"))
	s.Castling[White].KingSide = false
	s.ToMove = Black
	s.Status = Check

	s.RestoreState(saved)

	fresh := NewGameState()
	if s.Board != fresh.Board {
		t.Error("board not restored")
	}
	if s.EnPassant || s.ToMove != White || s.Status != Ongoing {
		t.Errorf("restored state = %+v; want initial", s.SaveState())
	}
	if !s.Castling.Has(White, true) {
		t.Error("castling right not restored")
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := NewGameState()
	s.History = append(s.History, MoveRecord{Notation: "e2-e4"})

	c := s.Clone()
	c.History[0].Notation = "d2-d4"
	c.Board.Clear(MustParseSquare("e1"))

	if s.History[0].Notation != "e2-e4" {
		t.Error("Clone shares the move log")
	}
	if s.Board.IsEmpty(MustParseSquare("e1")) {
		t.Error("Clone shares the board")
	}
}

func TestFormatNotation(t *testing.T) {
	tests := []struct {
		from, to  string
		capture   bool
		promotion Kind
		want      string
	}{
		{"e2", "e4", false, Empty, "e2-e4"},
		{"e5", "d6", true, Empty, "e5xd6"},
		{"e7", "e8", false, Queen, "e7-e8=Q"},
		{"b2", "a1", true, Knight, "b2xa1=N"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatNotation(MustParseSquare(tt.from), MustParseSquare(tt.to), tt.capture, tt.promotion)
			if got != tt.want {
				t.Errorf("FormatNotation() = %q; want %q", got, tt.want)
			}
		})
	}
}
