// play.go - Interactive game on a text stream
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/game"
	"github.com/lgbarn/chessrules/internal/notation"
	"github.com/lgbarn/chessrules/internal/output"
)

// pendingMove is a promotion waiting for its piece.
type pendingMove struct {
	from, to chess.Square
}

// player runs one interactive game.
type player struct {
	cfg     *config.Config
	g       *game.Game
	out     io.Writer
	pending *pendingMove
}

// runPlay reads commands and moves from in, one per line, and writes the
// board and status to out after every change.
func runPlay(cfg *config.Config, in io.Reader, out io.Writer) error {
	g, err := game.FromConfig(cfg.Engine)
	if err != nil {
		return err
	}
	p := &player{cfg: cfg, g: g, out: out}
	output.OutputGame(out, g)
	p.prompt()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			p.prompt()
			continue
		}
		if !p.handle(line) {
			return nil
		}
		p.prompt()
	}
	return scanner.Err()
}

// handle runs one input line. It returns false when the user quits.
func (p *player) handle(line string) bool {
	if p.pending != nil {
		p.promote(line)
		return true
	}

	fields := strings.Fields(strings.ToLower(line))
	switch fields[0] {
	case "quit", "exit":
		return false
	case "help", "?":
		fmt.Fprintln(p.out, "moves: e2e4, e7e8q, \"e two to e four\"; commands: legal <square>, undo, board, moves, fen, json, quit")
	case "board":
		output.OutputGame(p.out, p.g)
	case "fen":
		fmt.Fprintln(p.out, p.g.FEN())
	case "json":
		if err := output.OutputStateJSON(p.out, p.g); err != nil {
			fmt.Fprintf(p.out, "error: %v\n", err)
		}
	case "moves":
		history := p.g.MoveHistory()
		if len(history) == 0 {
			fmt.Fprintln(p.out, "no moves yet")
			break
		}
		output.WriteMoveList(output.NewOutputWriter(p.out, output.DefaultLineLength, ""), history, p.g.Status().MoveNumber)
	case "undo":
		if !p.g.Undo() {
			fmt.Fprintln(p.out, "nothing to undo")
			break
		}
		output.OutputGame(p.out, p.g)
	case "legal":
		if len(fields) < 2 {
			fmt.Fprintln(p.out, "usage: legal <square>")
			break
		}
		p.legal(fields[1])
	default:
		p.move(line)
	}
	return true
}

func (p *player) legal(text string) {
	from, err := chess.ParseSquare(text)
	if err != nil {
		fmt.Fprintf(p.out, "error: %v\n", err)
		return
	}
	var names []string
	for _, sq := range p.g.LegalDestinations(from) {
		names = append(names, sq.String())
	}
	if len(names) == 0 {
		fmt.Fprintf(p.out, "%s: no legal moves\n", from)
		return
	}
	fmt.Fprintf(p.out, "%s: %s\n", from, strings.Join(names, " "))
}

// move parses line as coordinate notation, falling back to a spoken
// phrase, and plays it.
func (p *player) move(line string) {
	mv, err := notation.ParseMove(line)
	if err != nil {
		if spoken, perr := notation.ParsePhrase(line); perr == nil {
			mv, err = spoken, nil
		}
	}
	if err != nil {
		fmt.Fprintf(p.out, "error: %v\n", err)
		return
	}
	p.attempt(mv.From, mv.To, mv.Promotion)
}

func (p *player) promote(line string) {
	if strings.EqualFold(line, "cancel") {
		p.pending = nil
		fmt.Fprintln(p.out, "promotion cancelled")
		return
	}
	kind, err := notation.ParsePromotion(line)
	if err != nil {
		fmt.Fprintf(p.out, "error: %v\n", err)
		return
	}
	pm := p.pending
	p.pending = nil
	p.attempt(pm.from, pm.to, kind)
}

func (p *player) attempt(from, to chess.Square, promotion chess.Kind) {
	res, err := p.g.AttemptMove(from, to, promotion)
	switch {
	case err != nil:
		fmt.Fprintf(p.out, "error: %v\n", err)
	case res.PendingPromotion:
		p.pending = &pendingMove{from: from, to: to}
	default:
		p.cfg.Logf(2, "played %s\n", res.Record.Notation)
		output.OutputGame(p.out, p.g)
	}
}

func (p *player) prompt() {
	switch {
	case p.pending != nil:
		fmt.Fprint(p.out, "promote to (q, r, b, n)? ")
	case p.g.Status().GameOver:
		fmt.Fprint(p.out, "game over (undo or quit)> ")
	default:
		fmt.Fprintf(p.out, "%s> ", p.g.Status().ToMove)
	}
}
