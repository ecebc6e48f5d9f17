package layout

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapBudget(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog and keeps on running far away"
	for _, budget := range []int{10, 20, 55} {
		for _, line := range Wrap(text, budget) {
			assert.LessOrEqual(t, len(line), budget, "budget %d line %q", budget, line)
		}
	}
}

func TestWrapPreservesWords(t *testing.T) {
	text := "alpha bravo charlie delta echo foxtrot golf hotel"
	lines := Wrap(text, 12)
	assert.Equal(t, text, strings.Join(lines, " "))
}

func TestWrapOversizeWord(t *testing.T) {
	long := strings.Repeat("x", 80)
	lines := Wrap("short "+long+" tail", 20)
	// The oversize word is emitted unsplit on its own line.
	assert.Contains(t, lines, long)
	for _, line := range lines {
		if line != long {
			assert.LessOrEqual(t, len(line), 20)
		}
	}
}

func TestWrapEmpty(t *testing.T) {
	assert.Equal(t, []string{""}, Wrap("", 55))
	assert.Equal(t, 1, LinesNeeded("", 55))
}

func TestWrapNonPositiveBudget(t *testing.T) {
	// A degenerate budget disables wrapping instead of panicking.
	assert.Equal(t, []string{"hello world"}, Wrap("hello world", 0))
	assert.Equal(t, []string{"hello world"}, Wrap("hello world", -3))
	assert.Equal(t, 1, LinesNeeded("hello world", 0))
}

func TestWrapCountsRunes(t *testing.T) {
	// 11 runes but 13 bytes; the rune budget decides the fit.
	assert.Equal(t, []string{"héllo wörld"}, Wrap("héllo wörld", 11))
	assert.Equal(t, []string{"héllo", "wörld"}, Wrap("héllo wörld", 10))
}

func TestWrapBreaksAtSoftHyphens(t *testing.T) {
	long := Soften(strings.Repeat("a", 45), 15)
	lines := Wrap(long, 20)
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, strings.Repeat("a", 15), line)
	}
	// The estimate counts every fragment line the token renders as.
	assert.Equal(t, 3, LinesNeeded(long, 20))

	// Fragments that stay on one line keep their soft hyphen.
	assert.Equal(t, []string{long}, Wrap(long, 55))
}

func TestLinesNeededOverflowParagraph(t *testing.T) {
	// 500 words at a 55-char budget needs far more than one 17-line slide.
	words := make([]string, 500)
	for i := range words {
		words[i] = fmt.Sprintf("word%03d", i)
	}
	needed := LinesNeeded(strings.Join(words, " "), 55)
	cfg := DefaultConfig()
	assert.Greater(t, needed, cfg.MaxLines())
}

func TestSoften(t *testing.T) {
	long := strings.Repeat("a", 45)
	out := Soften(long, 15)
	assert.Equal(t, 3, strings.Count(out, "\u00ad"))

	// Short tokens pass through untouched.
	assert.Equal(t, "hello world", Soften("hello world", 15))
	// Disabled softening is the identity.
	assert.Equal(t, long, Soften(long, 0))
}

func TestMaxLines(t *testing.T) {
	cfg := DefaultConfig()
	// 5in * 72pt / (16pt * 1.3) = 17 full lines.
	assert.Equal(t, 17, cfg.MaxLines())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 55, cfg.CharsPerLine)
	require.Equal(t, 15, cfg.SoftenInterval)
}
