package layout

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// softHyphen is the invisible break opportunity Soften inserts into run-on
// tokens. Wrap honors it when a word does not fit as a whole.
const softHyphen = "\u00ad"

// softRun15 caches the compiled run-length pattern for the default interval.
var softRun15 = regexp.MustCompile(`(\w{15})`)

// Wrap splits text into lines by greedy word accumulation, measured in runes.
// A word is appended to the current line while current + separator + word
// stays within budget, otherwise it starts a new line. A word that does not
// fit is broken at its soft hyphens where it carries any; a fragment longer
// than the budget is emitted unsplit on its own line. Soft hyphens occupy no
// budget. A budget <= 0 disables wrapping.
func Wrap(text string, budget int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	if budget <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curLen = 0
	}

	for _, w := range words {
		for i, part := range strings.Split(w, softHyphen) {
			if part == "" {
				continue
			}
			n := utf8.RuneCountInString(part)
			switch {
			case curLen == 0:
			case i == 0 && curLen+1+n <= budget:
				cur.WriteByte(' ')
				curLen++
			case i > 0 && curLen+n <= budget:
				// Fragments of one word rejoin through the soft hyphen
				// so the rendered text keeps its break opportunities.
				cur.WriteString(softHyphen)
			default:
				flush()
			}
			cur.WriteString(part)
			curLen += n
		}
	}
	flush()
	return lines
}

// LinesNeeded reports how many wrapped lines the text occupies at the given
// budget. Empty text still occupies one line.
func LinesNeeded(text string, budget int) int {
	n := len(Wrap(text, budget))
	if n < 1 {
		return 1
	}
	return n
}

// Soften inserts a soft hyphen (U+00AD) after every interval consecutive
// word characters so a single run-on token cannot silently overflow the
// wrap estimate. An interval <= 0 disables softening.
func Soften(text string, interval int) string {
	if interval <= 0 {
		return text
	}
	re := softRun15
	if interval != 15 {
		re = regexp.MustCompile(`(\w{` + strconv.Itoa(interval) + `})`)
	}
	return re.ReplaceAllString(text, "$1"+softHyphen)
}
