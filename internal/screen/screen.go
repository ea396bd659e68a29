// Package screen paints fragments onto a simulated terminal so that two
// renderings can be compared by what they display rather than by bytes.
package screen

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/badele/ansirun/internal/render"
	"github.com/badele/ansirun/internal/types"
)

const tabWidth = 8

// Screen is a painted simulation screen. Hidden text and hyperlinks have no
// tcell attribute and are tracked beside the cells.
type Screen struct {
	sim    tcell.SimulationScreen
	width  int
	height int
	hidden []bool
	links  []string

	Title string

	cursorX int
	cursorY int
}

// Cell is what one screen position displays.
type Cell struct {
	Rune       rune
	Foreground tcell.Color
	Background tcell.Color
	Attrs      tcell.AttrMask
	Hidden     bool
	Link       string
}

func (c Cell) String() string {
	s := fmt.Sprintf("%q fg=%v bg=%v attrs=%d", c.Rune, c.Foreground, c.Background, c.Attrs)
	if c.Hidden {
		s += " hidden"
	}
	if c.Link != "" {
		s += " link=" + c.Link
	}
	return s
}

// Paint lays fragments out from the top left corner. Text wraps at width;
// lines past height overwrite the last row.
func Paint(fragments []render.Fragment, width, height int) (*Screen, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid screen size %dx%d", width, height)
	}

	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	sim.SetSize(width, height)

	s := &Screen{
		sim:    sim,
		width:  width,
		height: height,
		hidden: make([]bool, width*height),
		links:  make([]string, width*height),
	}

	for _, f := range fragments {
		if f.Annotation.Kind == render.AnnotationTitle {
			s.Title = f.Content.String()
			continue
		}
		url, _ := f.URL()
		s.write(f.Content.String(), f.Style, url.String())
	}

	sim.Show()
	return s, nil
}

func (s *Screen) Close() {
	s.sim.Fini()
}

func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

func (s *Screen) Cell(x, y int) Cell {
	r, _, style, _ := s.sim.GetContent(x, y)
	fg, bg, attrs := style.Decompose()

	i := y*s.width + x
	return Cell{
		Rune:       r,
		Foreground: fg,
		Background: bg,
		Attrs:      attrs,
		Hidden:     s.hidden[i],
		Link:       s.links[i],
	}
}

// Text returns the displayed characters row by row, without styles. Hidden
// cells show as spaces; trailing blanks and empty last rows are dropped.
func (s *Screen) Text() string {
	rows := make([]string, 0, s.height)
	for y := 0; y < s.height; y++ {
		var sb strings.Builder
		for x := 0; x < s.width; {
			r, _, _, w := s.sim.GetContent(x, y)
			if s.hidden[y*s.width+x] {
				r = ' '
			}
			sb.WriteRune(r)
			x += max(w, 1)
		}
		rows = append(rows, strings.TrimRight(sb.String(), " "))
	}

	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return ""
	}
	return strings.Join(rows, "\n") + "\n"
}

func (s *Screen) write(text string, style types.Style, link string) {
	tstyle := Style(style)
	hidden := style.Formats.Has(types.FormatHidden)

	for _, r := range text {
		switch r {
		case '\n':
			s.newline()
			continue
		case '\r':
			s.cursorX = 0
			continue
		case '\t':
			s.cursorX = (s.cursorX/tabWidth + 1) * tabWidth
			if s.cursorX >= s.width {
				s.newline()
			}
			continue
		case '\b':
			if s.cursorX > 0 {
				s.cursorX--
			}
			continue
		}
		if r < 0x20 {
			continue
		}

		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if s.cursorX+w > s.width {
			s.newline()
		}

		s.sim.SetContent(s.cursorX, s.cursorY, r, nil, tstyle)
		for dx := 0; dx < w && s.cursorX+dx < s.width; dx++ {
			i := s.cursorY*s.width + s.cursorX + dx
			s.hidden[i] = hidden
			s.links[i] = link
		}
		s.cursorX += w
	}
}

func (s *Screen) newline() {
	s.cursorX = 0
	s.cursorY++
	if s.cursorY >= s.height {
		s.cursorY = s.height - 1
	}
}

// Style converts a style to its tcell equivalent. Hidden has no tcell
// attribute and is ignored.
func Style(style types.Style) tcell.Style {
	ts := tcell.StyleDefault.
		Foreground(Color(style.Foreground)).
		Background(Color(style.Background))

	f := style.Formats
	if f.Has(types.FormatBold) {
		ts = ts.Bold(true)
	}
	if f.Has(types.FormatDim) {
		ts = ts.Dim(true)
	}
	if f.Has(types.FormatItalic) {
		ts = ts.Italic(true)
	}
	if f.Has(types.FormatUnderline) {
		ts = ts.Underline(true)
	}
	if f.Has(types.FormatBlink) {
		ts = ts.Blink(true)
	}
	if f.Has(types.FormatReverse) {
		ts = ts.Reverse(true)
	}
	if f.Has(types.FormatStrikethrough) {
		ts = ts.StrikeThrough(true)
	}
	return ts
}

// Color maps standard and indexed colors onto the xterm palette.
func Color(c types.ColorValue) tcell.Color {
	switch c.Type {
	case types.ColorStandard, types.ColorIndexed:
		return tcell.PaletteColor(int(c.Index))
	case types.ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.ColorDefault
}

/////////////////////////////////////////////////////////////////////////////
// COMPARISON
/////////////////////////////////////////////////////////////////////////////

type Mismatch struct {
	X, Y int
	Want Cell
	Got  Cell
}

func (m Mismatch) String() string {
	return fmt.Sprintf("(%d,%d): want %s, got %s", m.X, m.Y, m.Want, m.Got)
}

// Diff lists the cells where got displays something other than want,
// including the title. Screens of different sizes are compared over the
// common area.
func Diff(want, got *Screen) []Mismatch {
	var mismatches []Mismatch

	width := min(want.width, got.width)
	height := min(want.height, got.height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			w, g := want.Cell(x, y), got.Cell(x, y)
			if w != g {
				mismatches = append(mismatches, Mismatch{X: x, Y: y, Want: w, Got: g})
			}
		}
	}

	if want.Title != got.Title {
		mismatches = append(mismatches, Mismatch{
			X: -1, Y: -1,
			Want: Cell{Link: "title:" + want.Title},
			Got:  Cell{Link: "title:" + got.Title},
		})
	}

	return mismatches
}

// Lines returns the number of rows text needs when wrapped at width.
func Lines(fragments []render.Fragment, width int) int {
	lines, x := 1, 0
	for _, f := range fragments {
		if f.Annotation.Kind == render.AnnotationTitle {
			continue
		}
		for _, r := range f.Content.String() {
			switch {
			case r == '\n':
				lines++
				x = 0
			case r == '\r':
				x = 0
			case r == '\t':
				x = (x/tabWidth + 1) * tabWidth
				if x >= width {
					lines++
					x = 0
				}
			case r >= 0x20:
				w := runewidth.RuneWidth(r)
				if x+w > width {
					lines++
					x = 0
				}
				x += w
			}
		}
	}
	return lines
}
