package docx

import (
	"archive/zip"
	"fmt"
	"os"

	"github.com/beevik/etree"
)

const (
	contentTypesNS = "http://schemas.openxmlformats.org/package/2006/content-types"
	relationshipNS = "http://schemas.openxmlformats.org/package/2006/relationships"
	officeDocRel   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	mainPartType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
)

// SaveTo assembles the OOXML container and writes it to path in one pass.
func (d *Document) SaveTo(path string) error {
	main, err := d.finalize()
	if err != nil {
		return fmt.Errorf("failed to serialize document part: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", contentTypesPart()},
		{"_rels/.rels", packageRelsPart()},
		{"word/document.xml", main},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", part.name, err)
		}
		if _, err := w.Write(part.data); err != nil {
			return fmt.Errorf("failed to write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	return nil
}

func contentTypesPart() []byte {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", contentTypesNS)

	rels := types.CreateElement("Default")
	rels.CreateAttr("Extension", "rels")
	rels.CreateAttr("ContentType", "application/vnd.openxmlformats-package.relationships+xml")

	xmlDefault := types.CreateElement("Default")
	xmlDefault.CreateAttr("Extension", "xml")
	xmlDefault.CreateAttr("ContentType", "application/xml")

	override := types.CreateElement("Override")
	override.CreateAttr("PartName", "/word/document.xml")
	override.CreateAttr("ContentType", mainPartType)

	data, _ := doc.WriteToBytes()
	return data
}

func packageRelsPart() []byte {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", relationshipNS)

	rel := rels.CreateElement("Relationship")
	rel.CreateAttr("Id", "rId1")
	rel.CreateAttr("Type", officeDocRel)
	rel.CreateAttr("Target", "word/document.xml")

	data, _ := doc.WriteToBytes()
	return data
}
