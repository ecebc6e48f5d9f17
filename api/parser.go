package api

import (
	"regexp"
	"strings"
)

// Inline emphasis markers are unwrapped (content kept, markers removed) in
// descending specificity so that ** is consumed before *.
var (
	codeRe      = regexp.MustCompile("`+(.+?)`+")
	boldRe      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldAltRe   = regexp.MustCompile(`__(.+?)__`)
	italicRe    = regexp.MustCompile(`\*(.+?)\*`)
	italicAltRe = regexp.MustCompile(`_(.+?)_`)
	strayRe     = regexp.MustCompile("[*_`]+")
)

// SanitizeInline removes markdown emphasis markup from a line, keeping the
// enclosed content. Any lone marker characters left over after unwrapping are
// deleted outright, so no emphasis character ever survives into a block.
func SanitizeInline(s string) string {
	if s == "" {
		return s
	}
	s = codeRe.ReplaceAllString(s, "$1")
	s = boldRe.ReplaceAllString(s, "$1")
	s = boldAltRe.ReplaceAllString(s, "$1")
	s = italicRe.ReplaceAllString(s, "$1")
	s = italicAltRe.ReplaceAllString(s, "$1")
	s = strayRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ParseBlocks splits raw body text into typed blocks. Blank lines are
// dropped, prefixes are matched most-specific first, and each line's text is
// sanitized. Lines that sanitize to nothing are skipped.
func ParseBlocks(raw string) []Block {
	var out []Block
	for _, rawLine := range strings.Split(raw, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		var kind BlockKind
		var text string
		switch {
		case strings.HasPrefix(line, "### "):
			kind, text = Heading3, line[4:]
		case strings.HasPrefix(line, "## "):
			kind, text = Heading2, line[3:]
		case strings.HasPrefix(line, "# "):
			kind, text = Heading1, line[2:]
		case strings.HasPrefix(line, "- "):
			kind, text = Bullet, line[2:]
		default:
			kind, text = Paragraph, line
		}

		text = SanitizeInline(text)
		if text == "" {
			continue
		}
		out = append(out, Block{Kind: kind, Text: text})
	}
	return out
}
