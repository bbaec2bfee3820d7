package notation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// spokenWords maps words a recogniser commonly returns onto file letters and
// rank digits. "to", "too" and "two" all become "2"; the phrase pattern
// decides from position whether a 2 is a rank or the joining word.
var spokenWords = map[string]string{
	"one": "1", "won": "1",
	"two": "2", "to": "2", "too": "2",
	"three": "3", "tree": "3",
	"four": "4", "for": "4", "fore": "4",
	"five": "5",
	"six": "6",
	"seven": "7",
	"eight": "8", "ate": "8",

	"alpha": "a", "bravo": "b", "charlie": "c", "delta": "d",
	"echo": "e", "foxtrot": "f", "golf": "g", "hotel": "h",
	"bee": "b", "be": "b", "see": "c", "sea": "c", "dee": "d",
}

// promotionWords names the pieces a pawn may become.
var promotionWords = map[string]chess.Kind{
	"queen":  chess.Queen,
	"rook":   chess.Rook,
	"castle": chess.Rook,
	"bishop": chess.Bishop,
	"knight": chess.Knight,
	"night":  chess.Knight,
}

// phrasePattern finds "<file><rank> [2...] <file><rank>" in normalised text.
var phrasePattern = regexp.MustCompile(`([a-h])\s*([1-8])\s*(?:2\s+|\s)*([a-h])\s*([1-8])`)

// NormalizePhrase lower-cases text, splits it into words and replaces
// spoken numbers, homophones and phonetic letters with their symbols.
func NormalizePhrase(text string) string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for i, w := range words {
		if sym, ok := spokenWords[w]; ok {
			words[i] = sym
		}
	}
	return strings.Join(words, " ")
}

// ParsePhrase extracts a move from recognised speech such as
// "e two to e four", "knight g1 to f3" or "e7 e8 queen". A promotion piece
// is taken from the words after the destination square.
func ParsePhrase(text string) (Move, error) {
	normal := NormalizePhrase(text)
	loc := phrasePattern.FindStringSubmatchIndex(normal)
	if loc == nil {
		return Move{}, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Input:    text,
			Expected: "<square> to <square>",
			Got:      normal,
		}
	}

	group := func(i int) string { return normal[loc[2*i]:loc[2*i+1]] }
	from, err := chess.ParseSquare(group(1) + group(2))
	if err != nil {
		return Move{}, err
	}
	to, err := chess.ParseSquare(group(3) + group(4))
	if err != nil {
		return Move{}, err
	}

	m := Move{From: from, To: to}
	for _, w := range strings.Fields(normal[loc[1]:]) {
		if kind, ok := promotionWords[w]; ok {
			m.Promotion = kind
			break
		}
	}
	return m, nil
}

// ParsePromotion reads a promotion choice given on its own, either as a
// letter ("q", "N") or a spoken word ("queen", "night").
func ParsePromotion(text string) (chess.Kind, error) {
	word := strings.ToLower(strings.TrimSpace(text))
	if kind, ok := promotionWords[word]; ok {
		return kind, nil
	}
	if len(word) == 1 {
		if kind := chess.KindFromLetter(word[0]); kind.IsPromotionChoice() {
			return kind, nil
		}
	}
	return chess.Empty, &errors.ParseError{
		Err:      errors.ErrInvalidPromotion,
		Input:    text,
		Expected: "queen, rook, bishop or knight",
		Got:      word,
	}
}
