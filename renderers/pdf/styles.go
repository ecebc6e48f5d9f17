package pdf

import (
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/flanksource/docforge/api"
)

// styleSheet maps palette roles onto maroto text properties for each block
// style. Sizes and spacing follow the fixed-page style ladder: 28pt title,
// 20/16/13pt headings, 11pt body.
type styleSheet struct {
	palette api.Palette
}

func newStyleSheet(p api.Palette) *styleSheet {
	return &styleSheet{palette: p}
}

func colorProps(c api.RGB) *props.Color {
	return &props.Color{Red: int(c.R), Green: int(c.G), Blue: int(c.B)}
}

func (s *styleSheet) title() props.Text {
	return props.Text{
		Size:  28,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: colorProps(s.palette.TextMain),
	}
}

func (s *styleSheet) heading1() props.Text {
	return props.Text{
		Size:  20,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: colorProps(s.palette.Accent),
	}
}

func (s *styleSheet) heading2() props.Text {
	return props.Text{
		Size:  16,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: colorProps(s.palette.Accent2),
	}
}

func (s *styleSheet) heading3() props.Text {
	return props.Text{
		Size:  13,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: colorProps(s.palette.TextMain),
	}
}

func (s *styleSheet) body() props.Text {
	return props.Text{
		Size:  11,
		Align: align.Left,
		Color: colorProps(s.palette.TextSoft),
	}
}

func (s *styleSheet) bullet() props.Text {
	p := s.body()
	p.Left = 5
	return p
}
