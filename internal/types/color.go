package types

import (
	"fmt"
	"strconv"
)

/////////////////////////////////////////////////////////////////////////////
// COLOR
/////////////////////////////////////////////////////////////////////////////

type ColorType int

const (
	ColorDefault  ColorType = iota // no color set
	ColorStandard                  // 0-15 (codes 30-37, 90-97, etc.)
	ColorIndexed                   // 0-255 (ESC[38;5;n)
	ColorRGB                       // RGB (ESC[38;2;r;g;b)
)

// ColorValue is a foreground or background color. The zero value is the
// absence of a color.
type ColorValue struct {
	Type    ColorType
	R, G, B uint8
	Index   uint8
}

// Named colors, in SGR order.
var (
	Black   = Standard(0)
	Red     = Standard(1)
	Green   = Standard(2)
	Yellow  = Standard(3)
	Blue    = Standard(4)
	Magenta = Standard(5)
	Cyan    = Standard(6)
	White   = Standard(7)

	BrightBlack   = Standard(8)
	BrightRed     = Standard(9)
	BrightGreen   = Standard(10)
	BrightYellow  = Standard(11)
	BrightBlue    = Standard(12)
	BrightMagenta = Standard(13)
	BrightCyan    = Standard(14)
	BrightWhite   = Standard(15)
)

// Standard returns one of the 16 standard colors. Indexes above 15 wrap.
func Standard(index uint8) ColorValue {
	return ColorValue{Type: ColorStandard, Index: index % 16}
}

func Indexed(index uint8) ColorValue {
	return ColorValue{Type: ColorIndexed, Index: index}
}

func RGB(r, g, b uint8) ColorValue {
	return ColorValue{Type: ColorRGB, R: r, G: g, B: b}
}

func (c ColorValue) IsDefault() bool {
	return c.Type == ColorDefault
}

func (c ColorValue) String() string {
	switch c.Type {
	case ColorDefault:
		return "default"
	case ColorStandard:
		return fmt.Sprintf("std:%d", c.Index)
	case ColorIndexed:
		return fmt.Sprintf("idx:%d", c.Index)
	case ColorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	return "unknown"
}

// Normal returns a style using c as foreground and nothing else.
func (c ColorValue) Normal() Style {
	return Style{Foreground: c}
}

// Bold returns a bold style using c as foreground.
func (c ColorValue) Bold() Style {
	return c.Normal().Bold()
}

func (c ColorValue) Underline() Style {
	return c.Normal().Underline()
}

func (c ColorValue) Italic() Style {
	return c.Normal().Italic()
}

// On returns a style using c as foreground and bg as background.
func (c ColorValue) On(bg ColorValue) Style {
	return c.Normal().On(bg)
}

// fgCodes returns the SGR parameters selecting c as the foreground color.
func (c ColorValue) fgCodes() []string {
	return c.codes(30, 90, "38")
}

// bgCodes returns the SGR parameters selecting c as the background color.
func (c ColorValue) bgCodes() []string {
	return c.codes(40, 100, "48")
}

func (c ColorValue) codes(base, bright int, extended string) []string {
	switch c.Type {
	case ColorStandard:
		if c.Index < 8 {
			return []string{strconv.Itoa(base + int(c.Index))}
		}
		return []string{strconv.Itoa(bright + int(c.Index) - 8)}
	case ColorIndexed:
		return []string{extended, "5", strconv.Itoa(int(c.Index))}
	case ColorRGB:
		return []string{extended, "2", strconv.Itoa(int(c.R)), strconv.Itoa(int(c.G)), strconv.Itoa(int(c.B))}
	}
	return nil
}
