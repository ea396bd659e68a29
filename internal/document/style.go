package document

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/badele/ansirun/internal/types"
)

var (
	ErrBadStyle = errors.New("bad style")
	ErrBadColor = errors.New("bad color")
)

var formatNames = map[string]types.Format{
	"bold":          types.FormatBold,
	"dim":           types.FormatDim,
	"dimmed":        types.FormatDim,
	"italic":        types.FormatItalic,
	"underline":     types.FormatUnderline,
	"blink":         types.FormatBlink,
	"reverse":       types.FormatReverse,
	"hidden":        types.FormatHidden,
	"strikethrough": types.FormatStrikethrough,
}

var colorNames = map[string]types.ColorValue{
	"black":          types.Black,
	"red":            types.Red,
	"green":          types.Green,
	"yellow":         types.Yellow,
	"blue":           types.Blue,
	"magenta":        types.Magenta,
	"purple":         types.Magenta,
	"cyan":           types.Cyan,
	"white":          types.White,
	"bright-black":   types.BrightBlack,
	"gray":           types.BrightBlack,
	"bright-red":     types.BrightRed,
	"bright-green":   types.BrightGreen,
	"bright-yellow":  types.BrightYellow,
	"bright-blue":    types.BrightBlue,
	"bright-magenta": types.BrightMagenta,
	"bright-cyan":    types.BrightCyan,
	"bright-white":   types.BrightWhite,
}

// ParseStyle reads a comma separated style such as
// "bold,underline,fg=blue,bg=#102030". "reset" sets ResetBefore; an empty
// string or "plain" is the plain style.
func ParseStyle(s string) (types.Style, error) {
	style := types.Plain

	for _, item := range strings.Split(s, ",") {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" || item == "plain" {
			continue
		}

		if key, value, ok := strings.Cut(item, "="); ok {
			c, err := ParseColor(value)
			if err != nil {
				return types.Plain, err
			}
			switch key {
			case "fg":
				style = style.Fg(c)
			case "bg":
				style = style.On(c)
			default:
				return types.Plain, fmt.Errorf("%w: unknown key %q", ErrBadStyle, key)
			}
			continue
		}

		if item == "reset" {
			style = style.WithResetBefore()
			continue
		}

		flag, ok := formatNames[item]
		if !ok {
			return types.Plain, fmt.Errorf("%w: unknown attribute %q", ErrBadStyle, item)
		}
		style = style.With(flag)
	}

	return style, nil
}

// ParseColor reads a color name, a palette index (0-255) or a #rrggbb (or
// #rgb) hex triplet.
func ParseColor(s string) (types.ColorValue, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if c, ok := colorNames[s]; ok {
		return c, nil
	}

	if strings.HasPrefix(s, "#") {
		if len(s) != 4 && len(s) != 7 {
			return types.ColorValue{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return types.ColorValue{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
		}
		r, g, b := c.RGB255()
		return types.RGB(r, g, b), nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return types.ColorValue{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return types.Indexed(uint8(n)), nil
}
