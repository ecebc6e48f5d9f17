// Package pdf renders a block stream into a paginated A4 document using
// Maroto. Heading1 blocks force a page break; consecutive bullets are
// buffered and flushed as one grouped list.
package pdf

import (
	"fmt"
	"os"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/flanksource/docforge/api"
	"github.com/flanksource/docforge/layout"
)

// bodyWrapBudget approximates how many characters fit on one body line of
// the A4 text column; only used to estimate row heights.
const bodyWrapBudget = 95

// Renderer is the fixed-page renderer.
type Renderer struct {
	cfg layout.Config
}

func New(cfg layout.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// renderState accumulates the rows of the page being built plus the pending
// bullet group. Pages are finalized in order; a closed page is never touched
// again.
type renderState struct {
	styles  *styleSheet
	rows    []core.Row
	pages   []core.Page
	bullets []string
}

// flush emits the buffered bullets as one grouped list and clears the
// buffer. Called before any non-bullet block and at end of document.
func (st *renderState) flush() {
	if len(st.bullets) == 0 {
		return
	}
	bulletProps := st.styles.bullet()
	for _, b := range st.bullets {
		item := "• " + b
		st.rows = append(st.rows, textRow(item, bulletProps, bodyHeight(item)))
	}
	st.rows = append(st.rows, row.New(2))
	st.bullets = nil
}

// closePage seals the current row run into a page. Empty runs produce no
// page.
func (st *renderState) closePage() {
	if len(st.rows) == 0 {
		return
	}
	st.pages = append(st.pages, page.New().Add(st.rows...))
	st.rows = nil
}

func (st *renderState) add(content string, p props.Text, height float64) {
	st.rows = append(st.rows, textRow(content, p, height))
}

func textRow(content string, p props.Text, height float64) core.Row {
	return row.New(height).Add(col.New(12).Add(text.New(content, p)))
}

// bodyHeight estimates the row height in mm for wrapped body text.
func bodyHeight(content string) float64 {
	return float64(layout.LinesNeeded(content, bodyWrapBudget))*5 + 2
}

// Render writes the document to path. Any maroto or filesystem failure
// propagates unwrapped to the caller.
func (r *Renderer) Render(doc *api.Document, path string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithRightMargin(12).
		WithTopMargin(16).
		WithBottomMargin(12).
		Build()

	m := maroto.New(cfg)
	st := &renderState{styles: newStyleSheet(doc.Palette)}

	// Title block with an accent divider, on the first page.
	st.add(doc.Title, st.styles.title(), 16)
	st.rows = append(st.rows, row.New(1).Add(col.New(12).Add(line.New(props.Line{
		Thickness:   1,
		SizePercent: 100,
		Color:       colorProps(doc.Palette.Accent),
	}))))
	st.rows = append(st.rows, row.New(4))

	for _, b := range doc.Blocks {
		switch b.Kind {
		case api.Heading1:
			st.flush()
			st.closePage()
			st.add(b.Text, st.styles.heading1(), 12)
		case api.Heading2:
			st.flush()
			st.add(b.Text, st.styles.heading2(), 9)
		case api.Heading3:
			st.flush()
			st.add(b.Text, st.styles.heading3(), 7)
		case api.Bullet:
			st.bullets = append(st.bullets, b.Text)
		default:
			st.flush()
			st.add(b.Text, st.styles.body(), bodyHeight(b.Text))
			st.rows = append(st.rows, row.New(2))
		}
	}
	st.flush()
	st.closePage()

	m.AddPages(st.pages...)

	document, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate PDF: %w", err)
	}
	if err := os.WriteFile(path, document.GetBytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
