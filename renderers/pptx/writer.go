package pptx

import (
	"archive/zip"
	"fmt"
	"os"
	"strconv"

	"github.com/beevik/etree"
)

const (
	drawingNS      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	relNS          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	presentationNS = "http://schemas.openxmlformats.org/presentationml/2006/main"
	packageRelNS   = "http://schemas.openxmlformats.org/package/2006/relationships"
	contentTypesNS = "http://schemas.openxmlformats.org/package/2006/content-types"

	officeDocRelType   = relNS + "/officeDocument"
	slideRelType       = relNS + "/slide"
	slideMasterRelType = relNS + "/slideMaster"
	slideLayoutRelType = relNS + "/slideLayout"
)

// SaveTo assembles the deck into a .pptx container and writes it in one
// pass.
func (d *Deck) SaveTo(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	write := func(name string, data []byte) error {
		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", name, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		return nil
	}

	static := []struct {
		name string
		data string
	}{
		{"ppt/slideMasters/slideMaster1.xml", slideMasterPart},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsPart},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutPart},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsPart},
		{"ppt/theme/theme1.xml", themePart},
	}

	if err := write("[Content_Types].xml", d.contentTypesPart()); err != nil {
		return err
	}
	if err := write("_rels/.rels", packageRelsPart()); err != nil {
		return err
	}
	if err := write("ppt/presentation.xml", d.presentationPart()); err != nil {
		return err
	}
	if err := write("ppt/_rels/presentation.xml.rels", d.presentationRelsPart()); err != nil {
		return err
	}
	for _, part := range static {
		if err := write(part.name, []byte(part.data)); err != nil {
			return err
		}
	}
	for i, slide := range d.Slides {
		n := strconv.Itoa(i + 1)
		if err := write("ppt/slides/slide"+n+".xml", slidePart(slide)); err != nil {
			return err
		}
		if err := write("ppt/slides/_rels/slide"+n+".xml.rels", slideRelsPart()); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	return nil
}

func (d *Deck) contentTypesPart() []byte {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", contentTypesNS)

	addDefault := func(ext, ct string) {
		e := types.CreateElement("Default")
		e.CreateAttr("Extension", ext)
		e.CreateAttr("ContentType", ct)
	}
	addOverride := func(part, ct string) {
		e := types.CreateElement("Override")
		e.CreateAttr("PartName", part)
		e.CreateAttr("ContentType", ct)
	}

	addDefault("rels", "application/vnd.openxmlformats-package.relationships+xml")
	addDefault("xml", "application/xml")
	addOverride("/ppt/presentation.xml", "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml")
	addOverride("/ppt/slideMasters/slideMaster1.xml", "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml")
	addOverride("/ppt/slideLayouts/slideLayout1.xml", "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml")
	addOverride("/ppt/theme/theme1.xml", "application/vnd.openxmlformats-officedocument.theme+xml")
	for i := range d.Slides {
		addOverride("/ppt/slides/slide"+strconv.Itoa(i+1)+".xml",
			"application/vnd.openxmlformats-officedocument.presentationml.slide+xml")
	}

	data, _ := doc.WriteToBytes()
	return data
}

func packageRelsPart() []byte {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", packageRelNS)
	rel := rels.CreateElement("Relationship")
	rel.CreateAttr("Id", "rId1")
	rel.CreateAttr("Type", officeDocRelType)
	rel.CreateAttr("Target", "ppt/presentation.xml")
	data, _ := doc.WriteToBytes()
	return data
}

func (d *Deck) presentationPart() []byte {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	pres := doc.CreateElement("p:presentation")
	pres.CreateAttr("xmlns:a", drawingNS)
	pres.CreateAttr("xmlns:r", relNS)
	pres.CreateAttr("xmlns:p", presentationNS)

	masters := pres.CreateElement("p:sldMasterIdLst")
	master := masters.CreateElement("p:sldMasterId")
	master.CreateAttr("id", "2147483648")
	master.CreateAttr("r:id", "rId1")

	slides := pres.CreateElement("p:sldIdLst")
	for i := range d.Slides {
		slide := slides.CreateElement("p:sldId")
		slide.CreateAttr("id", strconv.Itoa(256+i))
		// rId1 is the master; slides start at rId2.
		slide.CreateAttr("r:id", "rId"+strconv.Itoa(i+2))
	}

	size := pres.CreateElement("p:sldSz")
	size.CreateAttr("cx", strconv.FormatInt(int64(emu(slideWidthIn)), 10))
	size.CreateAttr("cy", strconv.FormatInt(int64(emu(slideHeightIn)), 10))
	notes := pres.CreateElement("p:notesSz")
	notes.CreateAttr("cx", strconv.FormatInt(int64(emu(slideHeightIn)), 10))
	notes.CreateAttr("cy", strconv.FormatInt(int64(emu(slideWidthIn)), 10))

	data, _ := doc.WriteToBytes()
	return data
}

func (d *Deck) presentationRelsPart() []byte {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", packageRelNS)

	master := rels.CreateElement("Relationship")
	master.CreateAttr("Id", "rId1")
	master.CreateAttr("Type", slideMasterRelType)
	master.CreateAttr("Target", "slideMasters/slideMaster1.xml")

	for i := range d.Slides {
		n := strconv.Itoa(i + 1)
		rel := rels.CreateElement("Relationship")
		rel.CreateAttr("Id", "rId"+strconv.Itoa(i+2))
		rel.CreateAttr("Type", slideRelType)
		rel.CreateAttr("Target", "slides/slide"+n+".xml")
	}

	data, _ := doc.WriteToBytes()
	return data
}

func slideRelsPart() []byte {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", packageRelNS)
	rel := rels.CreateElement("Relationship")
	rel.CreateAttr("Id", "rId1")
	rel.CreateAttr("Type", slideLayoutRelType)
	rel.CreateAttr("Target", "../slideLayouts/slideLayout1.xml")
	data, _ := doc.WriteToBytes()
	return data
}

func slidePart(s *Slide) []byte {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	sld := doc.CreateElement("p:sld")
	sld.CreateAttr("xmlns:a", drawingNS)
	sld.CreateAttr("xmlns:r", relNS)
	sld.CreateAttr("xmlns:p", presentationNS)

	cSld := sld.CreateElement("p:cSld")

	if s.BackgroundHex != "" {
		bg := cSld.CreateElement("p:bg")
		bgPr := bg.CreateElement("p:bgPr")
		fill := bgPr.CreateElement("a:solidFill")
		clr := fill.CreateElement("a:srgbClr")
		clr.CreateAttr("val", s.BackgroundHex)
		bgPr.CreateElement("a:effectLst")
	}

	spTree := cSld.CreateElement("p:spTree")
	nvGrp := spTree.CreateElement("p:nvGrpSpPr")
	cNvPr := nvGrp.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", "1")
	cNvPr.CreateAttr("name", "")
	nvGrp.CreateElement("p:cNvGrpSpPr")
	nvGrp.CreateElement("p:nvPr")
	spTree.CreateElement("p:grpSpPr")

	id := 2
	for _, rect := range s.Rects {
		addRectShape(spTree, rect, id)
		id++
	}
	for _, box := range s.Boxes {
		addTextBoxShape(spTree, box, id)
		id++
	}

	clrMapOvr := sld.CreateElement("p:clrMapOvr")
	clrMapOvr.CreateElement("a:masterClrMapping")

	data, _ := doc.WriteToBytes()
	return data
}

func addTransform(spPr *etree.Element, x, y, w, h EMU) {
	xfrm := spPr.CreateElement("a:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", strconv.FormatInt(int64(x), 10))
	off.CreateAttr("y", strconv.FormatInt(int64(y), 10))
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", strconv.FormatInt(int64(w), 10))
	ext.CreateAttr("cy", strconv.FormatInt(int64(h), 10))

	geom := spPr.CreateElement("a:prstGeom")
	geom.CreateAttr("prst", "rect")
	geom.CreateElement("a:avLst")
}

func addRectShape(spTree *etree.Element, r Rect, id int) {
	sp := spTree.CreateElement("p:sp")
	nv := sp.CreateElement("p:nvSpPr")
	cNvPr := nv.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", strconv.Itoa(id))
	cNvPr.CreateAttr("name", "Accent "+strconv.Itoa(id))
	nv.CreateElement("p:cNvSpPr")
	nv.CreateElement("p:nvPr")

	spPr := sp.CreateElement("p:spPr")
	addTransform(spPr, r.X, r.Y, r.W, r.H)
	fill := spPr.CreateElement("a:solidFill")
	clr := fill.CreateElement("a:srgbClr")
	clr.CreateAttr("val", r.FillHex)
	ln := spPr.CreateElement("a:ln")
	ln.CreateElement("a:noFill")

	txBody := sp.CreateElement("p:txBody")
	txBody.CreateElement("a:bodyPr")
	txBody.CreateElement("a:lstStyle")
	txBody.CreateElement("a:p")
}

func addTextBoxShape(spTree *etree.Element, tb *TextBox, id int) {
	sp := spTree.CreateElement("p:sp")
	nv := sp.CreateElement("p:nvSpPr")
	cNvPr := nv.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", strconv.Itoa(id))
	cNvPr.CreateAttr("name", "TextBox "+strconv.Itoa(id))
	cNvSpPr := nv.CreateElement("p:cNvSpPr")
	cNvSpPr.CreateAttr("txBox", "1")
	nv.CreateElement("p:nvPr")

	spPr := sp.CreateElement("p:spPr")
	addTransform(spPr, tb.X, tb.Y, tb.W, tb.H)
	spPr.CreateElement("a:noFill")

	txBody := sp.CreateElement("p:txBody")
	bodyPr := txBody.CreateElement("a:bodyPr")
	bodyPr.CreateAttr("wrap", "square")
	txBody.CreateElement("a:lstStyle")

	if len(tb.Paragraphs) == 0 {
		txBody.CreateElement("a:p")
		return
	}
	for _, para := range tb.Paragraphs {
		p := txBody.CreateElement("a:p")
		r := p.CreateElement("a:r")
		rPr := r.CreateElement("a:rPr")
		rPr.CreateAttr("lang", "en-US")
		// Run sizes are expressed in hundredths of a point.
		rPr.CreateAttr("sz", strconv.Itoa(int(para.SizePt*100)))
		if para.Bold {
			rPr.CreateAttr("b", "1")
		}
		fill := rPr.CreateElement("a:solidFill")
		clr := fill.CreateElement("a:srgbClr")
		clr.CreateAttr("val", para.ColorHex)
		latin := rPr.CreateElement("a:latin")
		latin.CreateAttr("typeface", "Calibri")
		t := r.CreateElement("a:t")
		t.SetText(para.Text)
	}
}
