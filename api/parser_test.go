package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlocksClassification(t *testing.T) {
	raw := "# Title One\n## Sub Section\n### Detail\n- first point\nplain paragraph"
	blocks := ParseBlocks(raw)
	require.Len(t, blocks, 5)

	assert.Equal(t, Heading1, blocks[0].Kind)
	assert.Equal(t, "Title One", blocks[0].Text)
	assert.Equal(t, Heading2, blocks[1].Kind)
	assert.Equal(t, "Sub Section", blocks[1].Text)
	assert.Equal(t, Heading3, blocks[2].Kind)
	assert.Equal(t, "Detail", blocks[2].Text)
	assert.Equal(t, Bullet, blocks[3].Kind)
	assert.Equal(t, "first point", blocks[3].Text)
	assert.Equal(t, Paragraph, blocks[4].Kind)
	assert.Equal(t, "plain paragraph", blocks[4].Text)
}

func TestParseBlocksPrefixSpecificity(t *testing.T) {
	// "### " must win over "## " and "# ".
	blocks := ParseBlocks("### deep\n## mid\n# top")
	require.Len(t, blocks, 3)
	assert.Equal(t, Heading3, blocks[0].Kind)
	assert.Equal(t, Heading2, blocks[1].Kind)
	assert.Equal(t, Heading1, blocks[2].Kind)
}

func TestParseBlocksDropsBlankLines(t *testing.T) {
	blocks := ParseBlocks("\n\n  \nhello\n\n\nworld\n")
	require.Len(t, blocks, 2)
	assert.Equal(t, "hello", blocks[0].Text)
	assert.Equal(t, "world", blocks[1].Text)
}

func TestParseBlocksEmptyInput(t *testing.T) {
	assert.Empty(t, ParseBlocks(""))
	assert.Empty(t, ParseBlocks("   \n\t\n"))
	// A line that is nothing but markup sanitizes to nothing and is skipped.
	assert.Empty(t, ParseBlocks("***\n"))
}

func TestSanitizeInline(t *testing.T) {
	cases := map[string]string{
		"**bold** text":           "bold text",
		"*italic* and _under_":    "italic and under",
		"`code` span":             "code span",
		"__strong__ words":        "strong words",
		"stray * and ` leftovers": "stray  and  leftovers",
		"plain":                   "plain",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeInline(in), "input %q", in)
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"**bold** *italic* `code` __under__ _x_",
		"nested **outer *inner* text**",
		"no markup at all",
	}
	for _, in := range inputs {
		once := SanitizeInline(in)
		assert.Equal(t, once, SanitizeInline(once), "input %q", in)
	}
}

func TestNoMarkupSurvives(t *testing.T) {
	raw := "# **Heading**\n- `item` one\n*lead* paragraph with __emphasis__"
	for _, b := range ParseBlocks(raw) {
		assert.NotContains(t, b.Text, "*")
		assert.NotContains(t, b.Text, "_")
		assert.NotContains(t, b.Text, "`")
		assert.NotEmpty(t, b.Text)
	}
}

func TestOrderPreservation(t *testing.T) {
	lines := []string{"alpha", "bravo", "charlie", "delta", "echo"}
	blocks := ParseBlocks(strings.Join(lines, "\n"))
	require.Len(t, blocks, len(lines))

	var got []string
	for _, b := range blocks {
		got = append(got, b.Text)
	}
	assert.Equal(t, lines, got)
}
