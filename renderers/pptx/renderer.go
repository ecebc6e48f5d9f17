package pptx

import (
	"fmt"

	"github.com/flanksource/docforge/api"
	"github.com/flanksource/docforge/layout"
)

// Content region geometry, in inches. The region is deliberately narrower
// than the slide so the wrap estimate stays conservative for real fonts.
const (
	textBoxLeft   = 0.8
	textBoxTop    = 1.0
	textBoxWidth  = 7.5
	accentBarH    = 0.5
	accentStripW  = 0.35
	headingBoxTop = 1.8
)

// Renderer is the slide-deck renderer.
type Renderer struct {
	cfg layout.Config
}

func New(cfg layout.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// renderState tracks the active content slide: the text region paragraphs
// are appended to and how many of its line slots are used. The cover slide
// never enters this state and is excluded from capacity accounting.
type renderState struct {
	deck *Deck
	body *TextBox
	used int
}

// Render builds the deck and writes it to path.
func (r *Renderer) Render(doc *api.Document, path string) error {
	if err := r.build(doc).SaveTo(path); err != nil {
		return fmt.Errorf("failed to render pptx: %w", err)
	}
	return nil
}

// build assembles the deck. A cover slide always comes first; content starts
// on a fresh slide whenever a heading demands one or the next block would
// overflow the region capacity.
func (r *Renderer) build(doc *api.Document) *Deck {
	p := doc.Palette
	maxLines := r.cfg.MaxLines()

	st := &renderState{deck: NewDeck()}

	// Cover: background fill, top accent bar, large title.
	cover := st.deck.AddSlide(p.Background.Hex())
	cover.AddRect(0, 0, slideWidthIn, accentBarH, p.Accent.Hex())
	title := cover.AddTextBox(textBoxLeft, 1.3, 9, 2)
	title.AddParagraph(doc.Title, 40, p.TextMain.Hex(), true)

	newContent := func() {
		slide := st.deck.AddSlide(p.Background.Hex())
		slide.AddRect(0, 0, accentStripW, slideHeightIn, p.Accent.Hex())
		st.body = slide.AddTextBox(textBoxLeft, textBoxTop, textBoxWidth, r.cfg.RegionHeightIn)
		st.used = 0
	}
	newContent()

	for _, b := range doc.Blocks {
		text := layout.Soften(b.Text, r.cfg.SoftenInterval)
		lines := layout.Wrap(text, r.cfg.CharsPerLine)
		needed := len(lines)

		switch b.Kind {
		case api.Heading1:
			// A major heading gets its own slide, then a fresh canvas.
			slide := st.deck.AddSlide(p.Background.Hex())
			slide.AddRect(0, 0, accentStripW, slideHeightIn, p.Accent.Hex())
			box := slide.AddTextBox(1, 2, 8, 2)
			box.AddParagraph(text, 32, p.Accent.Hex(), true)
			newContent()

		case api.Heading2:
			slide := st.deck.AddSlide(p.Background.Hex())
			slide.AddRect(0, 0, accentStripW, slideHeightIn, p.Accent.Hex())
			box := slide.AddTextBox(1, 1, 8, 1)
			box.AddParagraph(text, 26, p.TextMain.Hex(), true)
			st.body = slide.AddTextBox(textBoxLeft, headingBoxTop, textBoxWidth, r.cfg.RegionHeightIn)
			st.used = 0

		default:
			if st.used+needed > maxLines && st.used > 0 {
				newContent()
			}
			size := r.cfg.FontPt
			color := p.TextSoft.Hex()
			if b.Kind == api.Heading3 {
				color = p.TextMain.Hex()
			}
			for i, line := range lines {
				// A block longer than a whole slide keeps flowing onto
				// fresh slides rather than overflowing the region.
				if st.used == maxLines {
					newContent()
				}
				if b.Kind == api.Bullet && i == 0 {
					line = "• " + line
				}
				st.body.AddParagraph(line, size, color, b.Kind == api.Heading3)
				st.used++
			}
		}
	}

	return st.deck
}
