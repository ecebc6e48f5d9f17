package api

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RGB is a single color channel triple.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the color as an uppercase RRGGBB string without a leading #,
// the form OOXML attributes expect.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Lipgloss returns the color as a lipgloss terminal color.
func (c RGB) Lipgloss() lipgloss.Color {
	return lipgloss.Color("#" + c.Hex())
}

// Palette is a named set of five role-based colors bound to a document.
// Palettes are process-wide immutable constants; exactly one is bound per
// document.
type Palette struct {
	Name       string `json:"name"`
	Background RGB    `json:"background"`
	Accent     RGB    `json:"accent"`
	Accent2    RGB    `json:"accent2"`
	TextMain   RGB    `json:"text_main"`
	TextSoft   RGB    `json:"text_soft"`
}

// Palettes is the fixed palette table, in selection order.
var Palettes = []Palette{
	{
		Name:       "deep_sapphire",
		Background: RGB{6, 14, 38},
		Accent:     RGB{82, 145, 255},
		Accent2:    RGB{255, 188, 66},
		TextMain:   RGB{235, 244, 255},
		TextSoft:   RGB{178, 196, 220},
	},
	{
		Name:       "slate_modern",
		Background: RGB{20, 22, 25},
		Accent:     RGB{255, 131, 46},
		Accent2:    RGB{0, 165, 197},
		TextMain:   RGB{240, 244, 248},
		TextSoft:   RGB{168, 176, 188},
	},
	{
		Name:       "minimal_white",
		Background: RGB{250, 250, 250},
		Accent:     RGB{0, 135, 102},
		Accent2:    RGB{0, 90, 140},
		TextMain:   RGB{20, 28, 34},
		TextSoft:   RGB{108, 118, 128},
	},
}

// PickPalette deterministically maps a title to one of the fixed palettes:
// the first 32 bits of the title's SHA-256 digest reduced modulo the table
// size. The same title always yields the same palette.
func PickPalette(title string) Palette {
	sum := sha256.Sum256([]byte(title))
	idx := binary.BigEndian.Uint32(sum[:4]) % uint32(len(Palettes))
	return Palettes[idx]
}
