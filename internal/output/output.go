// Package output renders games and replay reports as text and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/game"
)

// DefaultLineLength is the wrap width for move lists.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	indent        string
}

// NewOutputWriter creates a new output writer. Continuation lines start
// with indent.
func NewOutputWriter(w io.Writer, maxLineLength int, indent string) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
		indent:        indent,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.lineLength == 0 && len(s) > 0 {
		fmt.Fprint(o.w, o.indent)
		o.lineLength = len(o.indent)
	} else if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line if anything has been written to it.
func (o *OutputWriter) NewLine() {
	if o.lineLength > 0 {
		fmt.Fprintln(o.w)
	}
	o.lineLength = 0
	o.needsSpace = false
}

// WriteMoveList writes a move log as numbered move pairs, e.g.
// "1. e2-e4 e7-e5 2. g1-f3". moveNumber is the full move number of the
// position after the last move.
func WriteMoveList(o *OutputWriter, records []chess.MoveRecord, moveNumber uint) {
	for i, jm := range MovesToJSON(records, moveNumber) {
		switch {
		case jm.Color == "white":
			o.Write(fmt.Sprintf("%d. %s", jm.MoveNumber, jm.Notation))
		case i == 0:
			o.Write(fmt.Sprintf("%d... %s", jm.MoveNumber, jm.Notation))
		default:
			o.Write(jm.Notation)
		}
	}
	o.NewLine()
}

// RenderBoard draws the board from White's side, with rank and file labels.
// Empty squares are shown as '.'.
func RenderBoard(w io.Writer, board *chess.Board) {
	var sb strings.Builder
	for rank := 0; rank < chess.BoardSize; rank++ {
		sq := chess.Sq(rank, 0)
		sb.WriteByte(sq.RankChar())
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			piece := board.Get(chess.Sq(rank, file))
			if piece.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(piece.FENLetter())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" ")
	for file := 0; file < chess.BoardSize; file++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte(chess.ColBase + file))
	}
	sb.WriteByte('\n')
	fmt.Fprint(w, sb.String())
}

// StatusLine describes a game status in words, e.g. "Black to move, in
// check" or "checkmate, White wins".
func StatusLine(s game.StatusReport) string {
	switch s.Status {
	case chess.Checkmate:
		return fmt.Sprintf("checkmate, %s wins", s.Winner)
	case chess.Stalemate:
		return "stalemate, draw"
	case chess.Check:
		return fmt.Sprintf("%s to move, in check", s.ToMove)
	default:
		return fmt.Sprintf("%s to move", s.ToMove)
	}
}

// OutputGame writes a board diagram, the status line and the move list.
func OutputGame(w io.Writer, g *game.Game) {
	state := g.State()
	RenderBoard(w, &state.Board)
	status := g.Status()
	fmt.Fprintf(w, "%s (move %d)\n", StatusLine(status), status.MoveNumber)
	if len(state.History) > 0 {
		WriteMoveList(NewOutputWriter(w, DefaultLineLength, ""), state.History, status.MoveNumber)
	}
}
