package api

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickPaletteDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		title := fmt.Sprintf("title-%d-%d", i, r.Int63())
		first := PickPalette(title)
		for j := 0; j < 5; j++ {
			assert.Equal(t, first, PickPalette(title))
		}
	}
}

func TestPickPaletteKnownTitles(t *testing.T) {
	// sha256("Demo")[:8] = 8a2cc067 -> 2318188647 % 3 = 0
	assert.Equal(t, "deep_sapphire", PickPalette("Demo").Name)
	// sha256("Intro")[:8] = 24601bca -> 610278346 % 3 = 1
	assert.Equal(t, "slate_modern", PickPalette("Intro").Name)
	// sha256("Quarterly Report")[:8] = 54caa3e4 -> 1422566372 % 3 = 2
	assert.Equal(t, "minimal_white", PickPalette("Quarterly Report").Name)
}

func TestPaletteTable(t *testing.T) {
	require.Len(t, Palettes, 3)
	seen := map[string]bool{}
	for _, p := range Palettes {
		assert.NotEmpty(t, p.Name)
		assert.False(t, seen[p.Name], "duplicate palette %s", p.Name)
		seen[p.Name] = true
	}
}

func TestRGBHex(t *testing.T) {
	assert.Equal(t, "060E26", RGB{6, 14, 38}.Hex())
	assert.Equal(t, "FFFFFF", RGB{255, 255, 255}.Hex())
	assert.Equal(t, "000000", RGB{}.Hex())
	assert.Equal(t, "#5291FF", string(RGB{82, 145, 255}.Lipgloss()))
}

func TestNewDocumentBindsPalette(t *testing.T) {
	doc := NewDocument("Demo", "# Intro\nHello world")
	assert.Equal(t, "deep_sapphire", doc.Palette.Name)
	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, Heading1, doc.Blocks[0].Kind)
}
