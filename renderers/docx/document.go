// Package docx renders a block stream into a flowing WordprocessingML
// document. The OOXML parts are built with etree and assembled into the
// .docx zip container directly; no external Office toolkit is involved.
package docx

import (
	"strconv"

	"github.com/beevik/etree"
)

const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// RunStyle is the character formatting applied to a paragraph's single run.
type RunStyle struct {
	SizePt float64
	Bold   bool
	// ColorHex is an RRGGBB value without the leading #.
	ColorHex string
	// IndentTwips indents the paragraph from the left margin.
	IndentTwips int
	// SpaceAfterTwips adds space below the paragraph.
	SpaceAfterTwips int
}

// Document accumulates body paragraphs in order.
type Document struct {
	xml  *etree.Document
	body *etree.Element
}

// NewDocument creates an empty document body.
func NewDocument() *Document {
	xml := etree.NewDocument()
	xml.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	root := xml.CreateElement("w:document")
	root.CreateAttr("xmlns:w", wordNS)
	body := root.CreateElement("w:body")
	return &Document{xml: xml, body: body}
}

// AddParagraph appends one styled paragraph containing a single text run.
func (d *Document) AddParagraph(text string, style RunStyle) {
	p := d.body.CreateElement("w:p")

	if style.IndentTwips > 0 || style.SpaceAfterTwips > 0 {
		pPr := p.CreateElement("w:pPr")
		if style.IndentTwips > 0 {
			ind := pPr.CreateElement("w:ind")
			ind.CreateAttr("w:left", strconv.Itoa(style.IndentTwips))
		}
		if style.SpaceAfterTwips > 0 {
			spacing := pPr.CreateElement("w:spacing")
			spacing.CreateAttr("w:after", strconv.Itoa(style.SpaceAfterTwips))
		}
	}

	r := p.CreateElement("w:r")
	rPr := r.CreateElement("w:rPr")
	fonts := rPr.CreateElement("w:rFonts")
	fonts.CreateAttr("w:ascii", "Calibri")
	fonts.CreateAttr("w:hAnsi", "Calibri")
	if style.Bold {
		rPr.CreateElement("w:b")
	}
	if style.SizePt > 0 {
		sz := rPr.CreateElement("w:sz")
		// w:sz is expressed in half-points.
		sz.CreateAttr("w:val", strconv.Itoa(int(style.SizePt*2)))
	}
	if style.ColorHex != "" {
		color := rPr.CreateElement("w:color")
		color.CreateAttr("w:val", style.ColorHex)
	}

	t := r.CreateElement("w:t")
	t.CreateAttr("xml:space", "preserve")
	t.SetText(text)
}

// AddPageBreak appends a paragraph holding a hard page break.
func (d *Document) AddPageBreak() {
	p := d.body.CreateElement("w:p")
	r := p.CreateElement("w:r")
	br := r.CreateElement("w:br")
	br.CreateAttr("w:type", "page")
}

// finalize appends the section properties (A4 portrait, default margins) and
// serializes the main document part.
func (d *Document) finalize() ([]byte, error) {
	sectPr := d.body.CreateElement("w:sectPr")
	pgSz := sectPr.CreateElement("w:pgSz")
	pgSz.CreateAttr("w:w", "11906")
	pgSz.CreateAttr("w:h", "16838")
	pgMar := sectPr.CreateElement("w:pgMar")
	pgMar.CreateAttr("w:top", "1440")
	pgMar.CreateAttr("w:right", "1080")
	pgMar.CreateAttr("w:bottom", "1440")
	pgMar.CreateAttr("w:left", "1080")

	return d.xml.WriteToBytes()
}
