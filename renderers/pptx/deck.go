// Package pptx renders a block stream into a PresentationML slide deck with
// write-time line-capacity pagination. Slides are modeled as a small shape
// tree and serialized into the .pptx zip container with etree.
package pptx

// EMU is the English Metric Unit used by OOXML drawing coordinates.
type EMU int64

const (
	emuPerInch = 914400

	// Slide canvas, 4:3.
	slideWidthIn  = 10.0
	slideHeightIn = 7.5
)

func emu(inches float64) EMU {
	return EMU(inches * emuPerInch)
}

// Paragraph is one line of styled text inside a text box.
type Paragraph struct {
	Text     string
	SizePt   float64
	Bold     bool
	ColorHex string
}

// TextBox is a positioned text frame holding paragraphs in order.
type TextBox struct {
	X, Y, W, H EMU
	Paragraphs []Paragraph
}

// AddParagraph appends one paragraph to the box.
func (tb *TextBox) AddParagraph(text string, sizePt float64, colorHex string, bold bool) {
	tb.Paragraphs = append(tb.Paragraphs, Paragraph{
		Text:     text,
		SizePt:   sizePt,
		Bold:     bold,
		ColorHex: colorHex,
	})
}

// Rect is a solid-filled rectangle decoration (accent bars and strips).
type Rect struct {
	X, Y, W, H EMU
	FillHex    string
}

// Slide is one slide: an optional solid background plus shapes in z-order.
type Slide struct {
	BackgroundHex string
	Rects         []Rect
	Boxes         []*TextBox
}

// AddRect appends a filled rectangle. Coordinates are in inches.
func (s *Slide) AddRect(x, y, w, h float64, fillHex string) {
	s.Rects = append(s.Rects, Rect{X: emu(x), Y: emu(y), W: emu(w), H: emu(h), FillHex: fillHex})
}

// AddTextBox appends an empty text box. Coordinates are in inches.
func (s *Slide) AddTextBox(x, y, w, h float64) *TextBox {
	tb := &TextBox{X: emu(x), Y: emu(y), W: emu(w), H: emu(h)}
	s.Boxes = append(s.Boxes, tb)
	return tb
}

// Deck owns the ordered slide list.
type Deck struct {
	Slides []*Slide
}

func NewDeck() *Deck {
	return &Deck{}
}

// AddSlide appends a slide with a solid background fill.
func (d *Deck) AddSlide(backgroundHex string) *Slide {
	s := &Slide{BackgroundHex: backgroundHex}
	d.Slides = append(d.Slides, s)
	return s
}
