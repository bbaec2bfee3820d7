package notation

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/testutil"
)

func mv(from, to string, promotion chess.Kind) Move {
	return Move{From: chess.MustParseSquare(from), To: chess.MustParseSquare(to), Promotion: promotion}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		input string
		want  Move
	}{
		{"e2e4", mv("e2", "e4", chess.Empty)},
		{"e2-e4", mv("e2", "e4", chess.Empty)},
		{"  g1f3\n", mv("g1", "f3", chess.Empty)},
		{"e5xd6", mv("e5", "d6", chess.Empty)},
		{"E7E8Q", mv("e7", "e8", chess.Queen)},
		{"e7-e8=n", mv("e7", "e8", chess.Knight)},
		{"a2a1r", mv("a2", "a1", chess.Rook)},
		{"h7h8=B", mv("h7", "h8", chess.Bishop)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMove(tt.input)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParseMove_Errors(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
		column  int
	}{
		{"", errors.ErrParseFailure, 1},
		{"e2", errors.ErrParseFailure, 3},
		{"e2-", errors.ErrParseFailure, 4},
		{"i2e4", errors.ErrInvalidSquare, 1},
		{"e2e9", errors.ErrInvalidSquare, 3},
		{"e7e8k", errors.ErrInvalidPromotion, 5},
		{"e7e8=p", errors.ErrInvalidPromotion, 6},
		{"e2e4 e7e5", errors.ErrParseFailure, 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseMove(tt.input)
			testutil.AssertErrorIs(t, err, tt.wantErr)

			var perr *errors.ParseError
			if !stderrors.As(err, &perr) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			testutil.AssertEqual(t, perr.Column, tt.column)
			testutil.AssertEqual(t, perr.Input, tt.input)
		})
	}
}

func TestMove_String(t *testing.T) {
	testutil.AssertEqual(t, mv("e2", "e4", chess.Empty).String(), "e2e4")
	testutil.AssertEqual(t, mv("b7", "b8", chess.Knight).String(), "b7b8n")
}

func TestNormalizePhrase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"E two to E four", "e 2 2 e 4"},
		{"Knight G1 to F3.", "knight g1 2 f3"},
		{"delta seven delta five", "d 7 d 5"},
		{"before tomato", "before tomato"},
		{"pawn to eight", "pawn 2 8"},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, NormalizePhrase(tt.input), tt.want, "NormalizePhrase(%q)", tt.input)
	}
}

func TestParsePhrase(t *testing.T) {
	tests := []struct {
		input string
		want  Move
	}{
		{"e2 to e4", mv("e2", "e4", chess.Empty)},
		{"e two to e four", mv("e2", "e4", chess.Empty)},
		{"d2 d4", mv("d2", "d4", chess.Empty)},
		{"D 2 too D for", mv("d2", "d4", chess.Empty)},
		{"knight g one to f three", mv("g1", "f3", chess.Empty)},
		{"e seven e eight queen", mv("e7", "e8", chess.Queen)},
		{"a2 to a1 promote to knight", mv("a2", "a1", chess.Knight)},
		{"queen d1 to h5", mv("d1", "h5", chess.Empty)},
		{"echo two echo four", mv("e2", "e4", chess.Empty)},
		{"bishop see one to hotel six", mv("c1", "h6", chess.Empty)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePhrase(tt.input)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParsePhrase_NoMove(t *testing.T) {
	for _, input := range []string{"", "hello there", "e to e", "castle king side"} {
		_, err := ParsePhrase(input)
		testutil.AssertErrorIs(t, err, errors.ErrParseFailure, "ParsePhrase(%q)", input)
	}
}

func TestParsePromotion(t *testing.T) {
	tests := []struct {
		input string
		want  chess.Kind
	}{
		{"q", chess.Queen},
		{"N", chess.Knight},
		{" rook ", chess.Rook},
		{"Bishop", chess.Bishop},
		{"night", chess.Knight},
		{"castle", chess.Rook},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePromotion(tt.input)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}

	for _, input := range []string{"", "k", "king", "p", "queens"} {
		_, err := ParsePromotion(input)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidPromotion, "ParsePromotion(%q)", input)
	}
}
