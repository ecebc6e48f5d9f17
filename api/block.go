package api

// BlockKind identifies the semantic type of a parsed content block.
type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading1
	Heading2
	Heading3
	Bullet
)

// String returns a human-readable name for the block kind.
func (k BlockKind) String() string {
	switch k {
	case Heading1:
		return "h1"
	case Heading2:
		return "h2"
	case Heading3:
		return "h3"
	case Bullet:
		return "bullet"
	default:
		return "p"
	}
}

// Block is one semantically-typed unit of parsed text. Blocks are produced
// in source order and that order is preserved through every renderer.
type Block struct {
	Kind BlockKind `json:"kind"`
	Text string    `json:"text"`
}

// Document owns everything a renderer needs: the title, the parsed block
// sequence and the palette bound to the title.
type Document struct {
	Title   string  `json:"title"`
	Blocks  []Block `json:"blocks"`
	Palette Palette `json:"palette"`
}

// NewDocument parses raw body text into blocks and binds the palette
// deterministically selected for the title.
func NewDocument(title, raw string) *Document {
	return &Document{
		Title:   title,
		Blocks:  ParseBlocks(raw),
		Palette: PickPalette(title),
	}
}
