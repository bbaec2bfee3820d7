package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/game"
	"github.com/lgbarn/chessrules/internal/replay"
)

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber uint   `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	Notation   string `json:"notation"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Promotion  string `json:"promotion,omitempty"`
	Capture    bool   `json:"capture,omitempty"`
}

// JSONState represents a game in progress.
type JSONState struct {
	FEN        string     `json:"fen"`
	ToMove     string     `json:"toMove"`
	Status     string     `json:"status"`
	MoveNumber uint       `json:"moveNumber"`
	GameOver   bool       `json:"gameOver"`
	Winner     string     `json:"winner,omitempty"`
	UndoDepth  int        `json:"undoDepth"`
	Moves      []JSONMove `json:"moves"`
}

// JSONReport represents the replay of one scripted game.
type JSONReport struct {
	Name      string     `json:"name,omitempty"`
	Line      int        `json:"line,omitempty"`
	StartFEN  string     `json:"startFEN,omitempty"`
	FinalFEN  string     `json:"finalFEN,omitempty"`
	Plies     int        `json:"plies"`
	Status    string     `json:"status"`
	Winner    string     `json:"winner,omitempty"`
	Duplicate bool       `json:"duplicate,omitempty"`
	Moves     []JSONMove `json:"moves,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Games   []*JSONReport   `json:"games"`
	Summary *replay.Summary `json:"summary,omitempty"`
}

// GameToJSON converts a live game to JSON format.
func GameToJSON(g *game.Game) *JSONState {
	status := g.Status()
	js := &JSONState{
		FEN:        g.FEN(),
		ToMove:     colorName(status.ToMove),
		Status:     statusName(status.Status),
		MoveNumber: status.MoveNumber,
		GameOver:   status.GameOver,
		UndoDepth:  g.UndoDepth(),
		Moves:      MovesToJSON(g.MoveHistory(), status.MoveNumber),
	}
	if status.HasWinner {
		js.Winner = colorName(status.Winner)
	}
	return js
}

// ReportToJSON converts a replay report to JSON format.
func ReportToJSON(rep *replay.Report) *JSONReport {
	jr := &JSONReport{
		Name:      rep.Name,
		Line:      rep.Line,
		StartFEN:  rep.StartFEN,
		FinalFEN:  rep.FinalFEN,
		Plies:     rep.Plies,
		Status:    statusName(rep.Status.Status),
		Duplicate: rep.Duplicate,
		Moves:     MovesToJSON(rep.Moves, rep.Status.MoveNumber),
	}
	if rep.Status.HasWinner {
		jr.Winner = colorName(rep.Status.Winner)
	}
	if rep.Err != nil {
		jr.Error = rep.Err.Error()
	}
	return jr
}

// MovesToJSON converts a move log to JSON moves. moveNumber is the full
// move number of the position after the last move; earlier numbers are
// counted back from it.
func MovesToJSON(records []chess.MoveRecord, moveNumber uint) []JSONMove {
	moves := make([]JSONMove, len(records))
	number := moveNumber
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		if rec.Mover == chess.Black {
			number--
		}
		moves[i] = convertMove(rec, number)
	}
	return moves
}

// convertMove converts a single move record.
func convertMove(rec chess.MoveRecord, number uint) JSONMove {
	jm := JSONMove{
		MoveNumber: number,
		Color:      colorName(rec.Mover),
		Notation:   rec.Notation,
		UCI:        uci(rec),
		From:       rec.From.String(),
		To:         rec.To.String(),
		Capture:    rec.Capture,
	}
	if rec.Promotion != chess.Empty {
		jm.Promotion = strings.ToLower(rec.Promotion.String())
	}
	return jm
}

// uci renders a move as e.g. "e7e8q".
func uci(rec chess.MoveRecord) string {
	s := rec.From.String() + rec.To.String()
	if rec.Promotion != chess.Empty {
		s += strings.ToLower(string(rec.Promotion.Letter()))
	}
	return s
}

func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func statusName(s chess.Status) string {
	return strings.ToLower(s.String())
}

// OutputStateJSON writes a live game as indented JSON.
func OutputStateJSON(w io.Writer, g *game.Game) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(g))
}

// OutputReportsJSON writes reports and their summary as a JSON document.
func OutputReportsJSON(w io.Writer, reports []*replay.Report) error {
	out := &JSONOutput{Games: make([]*JSONReport, len(reports))}
	for i, rep := range reports {
		out.Games[i] = ReportToJSON(rep)
	}
	summary := replay.Summarize(reports)
	out.Summary = &summary

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
