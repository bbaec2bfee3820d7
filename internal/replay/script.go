package replay

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/worker"
)

// fenTag matches a leading [FEN "..."] tag on a script line.
var fenTag = regexp.MustCompile(`^\[\s*FEN\s+"([^"]*)"\s*\]`)

// moveNumber matches move number tokens such as "1." or "12...".
var moveNumber = regexp.MustCompile(`^\d+\.+$`)

// ParseScript reads scripted games from r, one game per line.
//
// A line holds the moves of one game, optionally preceded by a
// [FEN "..."] tag giving the starting position. Coordinate moves are
// separated by white space; move numbers ("1.", "2...") and a trailing
// result ("1-0", "0-1", "1/2-1/2", "*") are skipped. With phrases set,
// each comma separated part of the line is one spoken phrase. Blank lines
// and lines starting with '#' are ignored.
func ParseScript(r io.Reader, name string, phrases bool) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		item := worker.WorkItem{Index: len(items), Name: name, Line: lineNo}
		if strings.HasPrefix(line, "[") {
			m := fenTag.FindStringSubmatch(line)
			if m == nil {
				return nil, errors.Wrapf(&errors.ParseError{
					Err:      errors.ErrParseFailure,
					Input:    line,
					Column:   1,
					Expected: `[FEN "..."]`,
				}, "%s:%d", name, lineNo)
			}
			item.FEN = strings.TrimSpace(m[1])
			line = strings.TrimSpace(line[len(m[0]):])
		}

		if phrases {
			item.Moves = splitPhrases(line)
		} else {
			item.Moves = splitMoves(line)
		}
		items = append(items, item)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return items, nil
}

// splitMoves splits a line of coordinate moves.
func splitMoves(line string) []string {
	var moves []string
	for _, tok := range strings.Fields(line) {
		if moveNumber.MatchString(tok) || isResult(tok) {
			continue
		}
		// "1.e2e4" style: drop the number prefix
		if i := strings.LastIndexByte(tok, '.'); i >= 0 && moveNumber.MatchString(tok[:i+1]) {
			tok = tok[i+1:]
		}
		moves = append(moves, tok)
	}
	return moves
}

// splitPhrases splits a line of comma separated phrases.
func splitPhrases(line string) []string {
	var phrases []string
	for _, p := range strings.Split(line, ",") {
		if p = strings.TrimSpace(p); p != "" {
			phrases = append(phrases, p)
		}
	}
	return phrases
}

// isResult checks if a token is a game result marker.
func isResult(tok string) bool {
	switch tok {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	default:
		return false
	}
}
