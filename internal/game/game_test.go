package game

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/testutil"
)

// move attempts a coordinate move such as "e2e4" and requires it to apply.
func move(t *testing.T, g *Game, m string) MoveResult {
	t.Helper()
	promotion := chess.Empty
	if len(m) == 5 {
		promotion = chess.KindFromLetter(m[4])
	}
	res, err := g.AttemptMove(testutil.MustSquare(t, m[0:2]), testutil.MustSquare(t, m[2:4]), promotion)
	if err != nil {
		t.Fatalf("AttemptMove(%s) error: %v", m, err)
	}
	if !res.Applied {
		t.Fatalf("AttemptMove(%s) = %+v, want applied", m, res)
	}
	return res
}

func mustGame(t *testing.T, fen string, opts ...Option) *Game {
	t.Helper()
	g, err := NewGameFromFEN(fen, opts...)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

func TestNewGame(t *testing.T) {
	g := NewGame()

	testutil.AssertEqual(t, g.Status(), StatusReport{
		Status:     chess.Ongoing,
		ToMove:     chess.White,
		MoveNumber: 1,
		Winner:     chess.White,
	})
	testutil.AssertEqual(t, g.FEN(), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	testutil.AssertTrue(t, len(g.MoveHistory()) == 0, "empty move history")
	testutil.AssertEqual(t, g.State().Castling, chess.AllCastlingRights())
	testutil.AssertFalse(t, g.Undo(), "undo on a new game")
}

func TestNewGameFromFEN_Rejects(t *testing.T) {
	_, err := NewGameFromFEN("8/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidPosition)

	_, err = NewGameFromFEN("rnbqkbnr/pppppppp w")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestLegalDestinations(t *testing.T) {
	g := NewGame()
	sq := func(s string) chess.Square { return testutil.MustSquare(t, s) }

	testutil.AssertSquares(t, g.LegalDestinations(sq("e2")), "e3", "e4")
	testutil.AssertSquares(t, g.LegalDestinations(sq("b1")), "a3", "c3")
	testutil.AssertSquares(t, g.LegalDestinations(sq("e4")))
	testutil.AssertSquares(t, g.LegalDestinations(sq("e7")))

	move(t, g, "e2e4")
	testutil.AssertSquares(t, g.LegalDestinations(sq("e7")), "e6", "e5")
	testutil.AssertSquares(t, g.LegalDestinations(sq("d2")))
}

func TestAttemptMove_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		from    string
		to      string
		promo   chess.Kind
		wantErr error
	}{
		{"empty square", testutil.FENCastling, "e4", "e5", chess.Empty, errors.ErrIllegalMove},
		{"opponent piece", testutil.FENCastling, "e7", "e5", chess.Empty, errors.ErrNotYourTurn},
		{"bad geometry", testutil.FENCastling, "e2", "e5", chess.Empty, errors.ErrIllegalMove},
		{"own piece on target", testutil.FENCastling, "a1", "a2", chess.Empty, errors.ErrIllegalMove},
		{"game over", testutil.FENFoolsMate, "e1", "f2", chess.Empty, errors.ErrGameOver},
		{"pawn promotion choice", testutil.FENPromotion, "e7", "e8", chess.Pawn, errors.ErrInvalidPromotion},
		{"king promotion choice", testutil.FENPromotion, "e7", "e8", chess.King, errors.ErrInvalidPromotion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			before := g.State()

			res, err := g.AttemptMove(testutil.MustSquare(t, tt.from), testutil.MustSquare(t, tt.to), tt.promo)
			testutil.AssertErrorIs(t, err, tt.wantErr)
			testutil.AssertEqual(t, res, MoveResult{})
			testutil.AssertEqual(t, g.State(), before, "position after rejected move")
			testutil.AssertEqual(t, g.UndoDepth(), 0)
		})
	}
}

func TestAttemptMove_TwoPhasePromotion(t *testing.T) {
	g := mustGame(t, testutil.FENPromotion)
	before := g.State()
	e7, e8 := testutil.MustSquare(t, "e7"), testutil.MustSquare(t, "e8")

	res, err := g.AttemptMove(e7, e8, chess.Empty)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res, MoveResult{PendingPromotion: true})
	testutil.AssertEqual(t, g.State(), before, "pending promotion must not change the position")
	testutil.AssertEqual(t, g.UndoDepth(), 0)

	res, err = g.AttemptMove(e7, e8, chess.Queen)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, res.Applied)
	testutil.AssertEqual(t, res.Record.Notation, "e7-e8=Q")
	state := g.State()
	testutil.AssertPieceAt(t, &state.Board, "e8", chess.W(chess.Queen))
	testutil.AssertPieceAt(t, &state.Board, "e7", chess.NoPiece)
}

func TestFoolsMate(t *testing.T) {
	g := NewGame()
	for _, m := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		move(t, g, m)
	}

	testutil.AssertEqual(t, g.Status(), StatusReport{
		Status:     chess.Checkmate,
		ToMove:     chess.White,
		MoveNumber: 3,
		GameOver:   true,
		Winner:     chess.Black,
		HasWinner:  true,
	})
	testutil.AssertSquares(t, g.LegalDestinations(testutil.MustSquare(t, "e1")))

	_, err := g.AttemptMove(testutil.MustSquare(t, "a2"), testutil.MustSquare(t, "a3"), chess.Empty)
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)

	testutil.AssertTrue(t, g.Undo())
	testutil.AssertEqual(t, g.Status().Status, chess.Ongoing)
	testutil.AssertEqual(t, g.Status().ToMove, chess.Black)
	move(t, g, "d8e7")
}

func TestStalemate(t *testing.T) {
	g := mustGame(t, testutil.FENStalemate)
	report := g.Status()

	testutil.AssertEqual(t, report.Status, chess.Stalemate)
	testutil.AssertTrue(t, report.GameOver)
	testutil.AssertFalse(t, report.HasWinner)
}

func TestEnPassantScenario(t *testing.T) {
	g := NewGame()
	for _, m := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		move(t, g, m)
	}
	res := move(t, g, "e5d6")

	testutil.AssertEqual(t, res.Record, chess.MoveRecord{
		Mover:    chess.White,
		From:     testutil.MustSquare(t, "e5"),
		To:       testutil.MustSquare(t, "d6"),
		Capture:  true,
		Notation: "e5xd6",
	})
	state := g.State()
	testutil.AssertPieceAt(t, &state.Board, "d6", chess.W(chess.Pawn))
	testutil.AssertPieceAt(t, &state.Board, "d5", chess.NoPiece)
	testutil.AssertFalse(t, state.EnPassant, "en passant target cleared")
}

func TestCastlingScenario(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		prelude []string
		wantOK  bool
	}{
		{"clear path", "rnbqk2r/pppppppp/8/8/8/8/PPPPPPPP/RNBQK2R w KQkq - 0 1", nil, true},
		{"f1 attacked", "rn1qk2r/pppppppp/8/8/8/7b/PPPPPP1P/RNBQK2R w KQkq - 0 1", nil, false},
		{"g1 attacked", "rnbqk2r/pppppppp/8/8/8/7n/PPPPPPPP/RNBQK2R w KQkq - 0 1", nil, false},
		{"king moved", "rnbqk2r/pppppppp/8/8/8/8/PPPPPPPP/RNBQK2R w KQkq - 0 1", []string{"e1f1", "a7a6", "f1e1", "a6a5"}, false},
		{"rook moved", "rnbqk2r/pppppppp/8/8/8/8/PPPPPPPP/RNBQK2R w KQkq - 0 1", []string{"h1g1", "a7a6", "g1h1", "a6a5"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			for _, m := range tt.prelude {
				move(t, g, m)
			}

			res, err := g.AttemptMove(testutil.MustSquare(t, "e1"), testutil.MustSquare(t, "g1"), chess.Empty)
			if !tt.wantOK {
				testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertTrue(t, res.Applied)
			state := g.State()
			testutil.AssertPieceAt(t, &state.Board, "g1", chess.W(chess.King))
			testutil.AssertPieceAt(t, &state.Board, "f1", chess.W(chess.Rook))
			testutil.AssertPieceAt(t, &state.Board, "h1", chess.NoPiece)
		})
	}
}

func TestUndo_RoundTrip(t *testing.T) {
	g := NewGame()
	moves := []string{"e2e4", "d7d5", "e4d5", "g8f6", "f1b5", "c7c6", "d5c6", "d8d2"}

	positions := []*chess.GameState{g.State()}
	for _, m := range moves {
		move(t, g, m)
		positions = append(positions, g.State())
	}
	testutil.AssertEqual(t, len(g.MoveHistory()), len(moves))

	for i := len(moves) - 1; i >= 0; i-- {
		testutil.AssertTrue(t, g.Undo(), "undo %d", i)
		testutil.AssertEqual(t, g.State(), positions[i], "after undo to ply %d", i)
	}
	testutil.AssertFalse(t, g.Undo())
	testutil.AssertEqual(t, g.State(), positions[0])
}

func TestUndoLimit(t *testing.T) {
	g := NewGame(WithUndoLimit(1))
	move(t, g, "e2e4")
	move(t, g, "e7e5")

	testutil.AssertEqual(t, g.UndoDepth(), 1)
	testutil.AssertTrue(t, g.Undo())
	testutil.AssertFalse(t, g.Undo())
	testutil.AssertEqual(t, len(g.MoveHistory()), 1)
}

func TestMoveHistory_IsACopy(t *testing.T) {
	g := NewGame()
	move(t, g, "e2e4")

	log := g.MoveHistory()
	log[0].Notation = "tampered"
	testutil.AssertEqual(t, g.MoveHistory()[0].Notation, "e2-e4")
}

func TestFromConfig(t *testing.T) {
	cfg := config.NewEngineConfig()
	g, err := FromConfig(cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.FEN(), NewGame().FEN())

	cfg.StartFEN = testutil.FENStalemate
	cfg.MaxUndoDepth = 3
	g, err = FromConfig(cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Status().Status, chess.Stalemate)
	testutil.AssertEqual(t, g.undoCap, 3)

	cfg.StartFEN = "8/8/8/8/8/8/8/8 w - - 0 1"
	_, err = FromConfig(cfg)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidPosition)
}
