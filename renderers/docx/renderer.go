package docx

import (
	"fmt"

	"github.com/flanksource/docforge/api"
	"github.com/flanksource/docforge/layout"
)

// Renderer is the flowing-document renderer. Pagination is flow-driven:
// only Heading1 forces a hard page break, everything else flows.
type Renderer struct {
	cfg layout.Config
}

func New(cfg layout.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Render builds the document body and writes it to path.
func (r *Renderer) Render(doc *api.Document, path string) error {
	if err := r.build(doc).SaveTo(path); err != nil {
		return fmt.Errorf("failed to render docx: %w", err)
	}
	return nil
}

func (r *Renderer) build(doc *api.Document) *Document {
	p := doc.Palette
	d := NewDocument()

	d.AddParagraph(doc.Title, RunStyle{SizePt: 32, Bold: true, ColorHex: p.TextMain.Hex(), SpaceAfterTwips: 240})

	for _, b := range doc.Blocks {
		switch b.Kind {
		case api.Heading1:
			d.AddPageBreak()
			d.AddParagraph(b.Text, RunStyle{SizePt: 22, Bold: true, ColorHex: p.Accent.Hex(), SpaceAfterTwips: 120})
		case api.Heading2:
			d.AddParagraph(b.Text, RunStyle{SizePt: 17, Bold: true, ColorHex: p.Accent2.Hex(), SpaceAfterTwips: 80})
		case api.Heading3:
			d.AddParagraph(b.Text, RunStyle{SizePt: 14, Bold: true, ColorHex: p.TextMain.Hex(), SpaceAfterTwips: 60})
		case api.Bullet:
			d.AddParagraph("• "+b.Text, RunStyle{SizePt: 12, ColorHex: p.TextSoft.Hex(), IndentTwips: 720})
		default:
			d.AddParagraph(b.Text, RunStyle{SizePt: 12, ColorHex: p.TextSoft.Hex(), SpaceAfterTwips: 80})
		}
	}

	return d
}
