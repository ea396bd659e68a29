package types

import (
	"strings"
)

/////////////////////////////////////////////////////////////////////////////
// FORMAT FLAGS
/////////////////////////////////////////////////////////////////////////////

// Format is a set of independent text attributes.
type Format uint16

const (
	FormatBold Format = 1 << iota
	FormatDim
	FormatItalic
	FormatUnderline
	FormatBlink
	FormatReverse
	FormatHidden
	FormatStrikethrough

	FormatNone Format = 0
	FormatAll         = FormatBold | FormatDim | FormatItalic | FormatUnderline |
		FormatBlink | FormatReverse | FormatHidden | FormatStrikethrough
)

// formatCodes lists every flag with its SGR "on" code, in emission order.
var formatCodes = []struct {
	flag Format
	code int
	name string
}{
	{FormatBold, 1, "bold"},
	{FormatDim, 2, "dim"},
	{FormatItalic, 3, "italic"},
	{FormatUnderline, 4, "underline"},
	{FormatBlink, 5, "blink"},
	{FormatReverse, 7, "reverse"},
	{FormatHidden, 8, "hidden"},
	{FormatStrikethrough, 9, "strikethrough"},
}

func (f Format) Has(flag Format) bool {
	return f&flag == flag
}

func (f Format) IsEmpty() bool {
	return f&FormatAll == 0
}

func (f Format) String() string {
	if f.IsEmpty() {
		return "none"
	}

	var names []string
	for _, fc := range formatCodes {
		if f.Has(fc.flag) {
			names = append(names, fc.name)
		}
	}
	return strings.Join(names, "|")
}

/////////////////////////////////////////////////////////////////////////////
// STYLE
/////////////////////////////////////////////////////////////////////////////

// Style describes a terminal rendering state. It is a value type: every
// builder method returns a modified copy.
//
// ResetBefore forces a full reset in front of the style's own codes whenever
// a transition into it is emitted.
type Style struct {
	Formats     Format
	Foreground  ColorValue
	Background  ColorValue
	ResetBefore bool
}

// Plain is the style with no attributes and no colors.
var Plain = Style{}

// IsPlain reports whether s sets no attribute and no color. ResetBefore is
// not taken into account.
func (s Style) IsPlain() bool {
	return s.Formats.IsEmpty() && s.Foreground.IsDefault() && s.Background.IsDefault()
}

func (s Style) Bold() Style          { return s.With(FormatBold) }
func (s Style) Dimmed() Style        { return s.With(FormatDim) }
func (s Style) Italic() Style        { return s.With(FormatItalic) }
func (s Style) Underline() Style     { return s.With(FormatUnderline) }
func (s Style) Blink() Style         { return s.With(FormatBlink) }
func (s Style) Reverse() Style       { return s.With(FormatReverse) }
func (s Style) Hidden() Style        { return s.With(FormatHidden) }
func (s Style) Strikethrough() Style { return s.With(FormatStrikethrough) }

// With returns s with the given flags added.
func (s Style) With(flags Format) Style {
	s.Formats |= flags & FormatAll
	return s
}

// Without returns s with the given flags removed.
func (s Style) Without(flags Format) Style {
	s.Formats &^= flags
	return s
}

func (s Style) Fg(c ColorValue) Style {
	s.Foreground = c
	return s
}

// On sets the background color.
func (s Style) On(c ColorValue) Style {
	s.Background = c
	return s
}

func (s Style) ClearFg() Style {
	s.Foreground = ColorValue{}
	return s
}

func (s Style) ClearBg() Style {
	s.Background = ColorValue{}
	return s
}

// WithResetBefore returns s with ResetBefore set.
func (s Style) WithResetBefore() Style {
	s.ResetBefore = true
	return s
}

// WithoutResetBefore returns s with ResetBefore cleared.
func (s Style) WithoutResetBefore() Style {
	s.ResetBefore = false
	return s
}

func (s Style) String() string {
	parts := []string{
		"formats:" + s.Formats.String(),
		"fg:" + s.Foreground.String(),
		"bg:" + s.Background.String(),
	}
	if s.ResetBefore {
		parts = append(parts, "reset")
	}
	return strings.Join(parts, ", ")
}
