package docx

import (
	"archive/zip"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flanksource/docforge/api"
	"github.com/flanksource/docforge/layout"
)

func buildTest(t *testing.T, title, raw string) *etree.Document {
	t.Helper()
	r := New(layout.DefaultConfig())
	path := filepath.Join(t.TempDir(), "out.docx")
	require.NoError(t, r.Render(api.NewDocument(title, raw), path))

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	rc, err := zr.Open("word/document.xml")
	require.NoError(t, err)
	defer rc.Close()

	doc := etree.NewDocument()
	_, err = doc.ReadFrom(rc)
	require.NoError(t, err)
	return doc
}

func paragraphTexts(doc *etree.Document) []string {
	var out []string
	for _, p := range doc.FindElements("//w:p") {
		text := ""
		for _, tEl := range p.FindElements(".//w:t") {
			text += tEl.Text()
		}
		out = append(out, text)
	}
	return out
}

func TestTitleParagraphFirst(t *testing.T) {
	doc := buildTest(t, "Demo", "Hello world")
	texts := paragraphTexts(doc)
	require.NotEmpty(t, texts)
	assert.Equal(t, "Demo", texts[0])
}

func TestHeading1EmitsPageBreak(t *testing.T) {
	doc := buildTest(t, "Demo", "# Intro\nHello world")

	breaks := doc.FindElements("//w:br")
	require.Len(t, breaks, 1)
	assert.Equal(t, "page", breaks[0].SelectAttrValue("w:type", ""))

	// Heading2/3 do not break.
	doc = buildTest(t, "Demo", "## Section\n### Detail\nbody")
	assert.Empty(t, doc.FindElements("//w:br"))
}

func TestBulletsAreIndividualParagraphs(t *testing.T) {
	doc := buildTest(t, "Demo", "- point one\n- point two")
	texts := paragraphTexts(doc)
	assert.Contains(t, texts, "• point one")
	assert.Contains(t, texts, "• point two")

	// Bullets carry a left indent.
	indents := doc.FindElements("//w:ind")
	require.Len(t, indents, 2)
	assert.Equal(t, "720", indents[0].SelectAttrValue("w:left", ""))
}

func TestPaletteColorsApplied(t *testing.T) {
	doc := buildTest(t, "Demo", "# Intro\nbody text")
	p := api.PickPalette("Demo")

	var colors []string
	for _, c := range doc.FindElements("//w:color") {
		colors = append(colors, c.SelectAttrValue("w:val", ""))
	}
	assert.Contains(t, colors, p.TextMain.Hex()) // title
	assert.Contains(t, colors, p.Accent.Hex())   // h1
	assert.Contains(t, colors, p.TextSoft.Hex()) // body
}

func TestOrderPreserved(t *testing.T) {
	doc := buildTest(t, "Demo", "first\nsecond\nthird")
	texts := paragraphTexts(doc)
	// Title then body paragraphs in source order.
	require.GreaterOrEqual(t, len(texts), 4)
	assert.Equal(t, []string{"Demo", "first", "second", "third"}, texts[:4])
}

func TestEmptyInputMinimalDocument(t *testing.T) {
	doc := buildTest(t, "Demo", "")
	texts := paragraphTexts(doc)
	require.Len(t, texts, 1)
	assert.Equal(t, "Demo", texts[0])
}

func TestSectionPropertiesPresent(t *testing.T) {
	doc := buildTest(t, "Demo", "body")
	sect := doc.FindElement("//w:sectPr")
	require.NotNil(t, sect)
	pgSz := sect.FindElement("w:pgSz")
	require.NotNil(t, pgSz)
	assert.Equal(t, "11906", pgSz.SelectAttrValue("w:w", ""))
}
