package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Reset is the SGR sequence returning the terminal to its default state.
	Reset = "\x1b[0m"

	csi = "\x1b["
)

var ErrUnknownCodeOrder = errors.New("unknown code order")

/////////////////////////////////////////////////////////////////////////////
// DIALECT
/////////////////////////////////////////////////////////////////////////////

// CodeOrder selects where attribute codes go relative to color codes.
type CodeOrder int

const (
	AttributesFirst CodeOrder = iota // ESC[1;4;34m
	ColorsFirst                      // ESC[34;1;4m
)

func (o CodeOrder) String() string {
	switch o {
	case AttributesFirst:
		return "attributes-first"
	case ColorsFirst:
		return "colors-first"
	default:
		return fmt.Sprintf("CodeOrder(%d)", o)
	}
}

func ParseCodeOrder(s string) (CodeOrder, error) {
	switch s {
	case "", "attributes-first":
		return AttributesFirst, nil
	case "colors-first":
		return ColorsFirst, nil
	}
	return AttributesFirst, fmt.Errorf("%w: %q", ErrUnknownCodeOrder, s)
}

// Dialect controls how a style is spelled as SGR parameters. It never
// changes which parameters are emitted.
type Dialect struct {
	Order CodeOrder
	// LegacyCodes zero-pads attribute codes (01, 04) like GNU ls colors.
	LegacyCodes bool
}

var DefaultDialect = Dialect{}

/////////////////////////////////////////////////////////////////////////////
// SGR ENCODING
/////////////////////////////////////////////////////////////////////////////

// Codes returns the SGR parameters turning on everything s sets, without
// the reset code.
func (s Style) Codes(d Dialect) []string {
	var attrs []string
	for _, fc := range formatCodes {
		if !s.Formats.Has(fc.flag) {
			continue
		}
		if d.LegacyCodes {
			attrs = append(attrs, fmt.Sprintf("%02d", fc.code))
		} else {
			attrs = append(attrs, strconv.Itoa(fc.code))
		}
	}

	var colors []string
	colors = append(colors, s.Foreground.fgCodes()...)
	colors = append(colors, s.Background.bgCodes()...)

	if d.Order == ColorsFirst {
		return append(colors, attrs...)
	}
	return append(attrs, colors...)
}

// Prefix returns the escape sequence switching the terminal into s. It is
// empty for a plain style without ResetBefore.
func (s Style) Prefix(d Dialect) string {
	var sb strings.Builder
	if s.ResetBefore {
		sb.WriteString(Reset)
	}
	if codes := s.Codes(d); len(codes) > 0 {
		sb.WriteString(csi)
		sb.WriteString(strings.Join(codes, ";"))
		sb.WriteByte('m')
	}
	return sb.String()
}

// Suffix returns the sequence undoing s: a reset, or nothing for a plain
// style.
func (s Style) Suffix() string {
	if s.IsPlain() {
		return ""
	}
	return Reset
}

/////////////////////////////////////////////////////////////////////////////
// SGR DECODING
/////////////////////////////////////////////////////////////////////////////

// ApplyParams returns s updated by the SGR parameters. An empty parameter
// list means reset. Unknown codes are ignored.
func (s Style) ApplyParams(params []int) Style {
	if len(params) == 0 {
		return Plain
	}

	s = s.WithoutResetBefore()
	for i := 0; i < len(params); i++ {
		code := params[i]

		switch code {
		case 0:
			s = Plain

		case 1:
			s = s.Bold()
		case 2:
			s = s.Dimmed()
		case 3:
			s = s.Italic()
		case 4:
			s = s.Underline()
		case 5, 6:
			s = s.Blink()
		case 7:
			s = s.Reverse()
		case 8:
			s = s.Hidden()
		case 9:
			s = s.Strikethrough()

		case 21:
			s = s.Without(FormatBold)
		case 22:
			s = s.Without(FormatBold | FormatDim)
		case 23:
			s = s.Without(FormatItalic)
		case 24:
			s = s.Without(FormatUnderline)
		case 25:
			s = s.Without(FormatBlink)
		case 27:
			s = s.Without(FormatReverse)
		case 28:
			s = s.Without(FormatHidden)
		case 29:
			s = s.Without(FormatStrikethrough)

		case 30, 31, 32, 33, 34, 35, 36, 37:
			s.Foreground = Standard(uint8(code - 30))
		case 38:
			var n int
			s.Foreground, n = extendedColor(s.Foreground, params, i+1)
			i += n
		case 39:
			s.Foreground = ColorValue{}

		case 40, 41, 42, 43, 44, 45, 46, 47:
			s.Background = Standard(uint8(code - 40))
		case 48:
			var n int
			s.Background, n = extendedColor(s.Background, params, i+1)
			i += n
		case 49:
			s.Background = ColorValue{}

		case 90, 91, 92, 93, 94, 95, 96, 97:
			s.Foreground = Standard(uint8(code - 90 + 8))
		case 100, 101, 102, 103, 104, 105, 106, 107:
			s.Background = Standard(uint8(code - 100 + 8))
		}
	}
	return s
}

// extendedColor decodes the parameters following 38 or 48 and returns the
// color together with the number of parameters consumed. A color with a
// component outside 0-255 is consumed and ignored.
func extendedColor(current ColorValue, params []int, start int) (ColorValue, int) {
	if start >= len(params) {
		return current, 0
	}

	// a truncated color swallows the remaining parameters
	rest := len(params) - start

	switch params[start] {
	case 5: // ESC[38;5;n
		if start+1 < len(params) {
			n := params[start+1]
			if !inByteRange(n) {
				return current, 2
			}
			return Indexed(uint8(n)), 2
		}
		return current, rest
	case 2: // ESC[38;2;r;g;b
		if start+3 < len(params) {
			r, g, b := params[start+1], params[start+2], params[start+3]
			if !inByteRange(r) || !inByteRange(g) || !inByteRange(b) {
				return current, 4
			}
			return RGB(uint8(r), uint8(g), uint8(b)), 4
		}
		return current, rest
	}
	return current, 1
}

func inByteRange(n int) bool {
	return n >= 0 && n <= 255
}
