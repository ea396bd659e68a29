// Package ansirun provides a public API for building styled terminal output
// with a minimal number of escape sequences.
//
// This package provides functions to:
//   - Describe text as fragments carrying a style, a title or a hyperlink
//   - Join fragments into a run that writes only the SGR changes needed
//   - Compute the delta between two styles
//   - Import existing ANSI streams back into fragments
//
// Example usage:
//
//	import "github.com/badele/ansirun/pkg/ansirun"
//
//	run := ansirun.Join(
//		ansirun.Paint(ansirun.Green.Normal(), ansirun.Text("Before link. ")),
//		ansirun.Paint(ansirun.Blue.Underline(), ansirun.Text("example")).
//			Hyperlink(ansirun.Text("https://example.com")),
//	)
//	fmt.Print(run)
package ansirun

import (
	"io"

	"go.uber.org/zap"

	"github.com/badele/ansirun/internal/charset"
	"github.com/badele/ansirun/internal/document"
	"github.com/badele/ansirun/internal/importer/ansi"
	"github.com/badele/ansirun/internal/render"
	"github.com/badele/ansirun/internal/sink"
	"github.com/badele/ansirun/internal/types"
)

// Type aliases for public API
type (
	// Style is a set of formats plus foreground and background colors
	Style = types.Style

	// Format is a bit set of text attributes (bold, underline, ...)
	Format = types.Format

	// ColorValue represents a color (standard, indexed, or RGB)
	ColorValue = types.ColorValue

	// StyleDelta moves the terminal from one style to another
	StyleDelta = types.StyleDelta

	// UpdateCommand is an entry of a run table
	UpdateCommand = types.UpdateCommand

	// Dialect controls how SGR parameters are spelled
	Dialect = types.Dialect

	// Content is the text of a fragment
	Content = render.Content

	// Fragment is a piece of content with its style and annotation
	Fragment = render.Fragment

	// Fragments is a run of fragments with its style update table
	Fragments = render.Fragments

	// Sink receives rendered output
	Sink = sink.Sink

	// Token represents a parsed ANSI token
	Token = types.Token

	// TokenStats contains statistics about parsed tokens
	TokenStats = types.TokenStats

	// ImportResult holds the tokens, stats and fragments of an import
	ImportResult = ansi.Result
)

// Format constants
const (
	FormatBold          = types.FormatBold
	FormatDim           = types.FormatDim
	FormatItalic        = types.FormatItalic
	FormatUnderline     = types.FormatUnderline
	FormatBlink         = types.FormatBlink
	FormatReverse       = types.FormatReverse
	FormatHidden        = types.FormatHidden
	FormatStrikethrough = types.FormatStrikethrough
)

// Code order constants
const (
	AttributesFirst = types.AttributesFirst
	ColorsFirst     = types.ColorsFirst
)

// Reset is the SGR sequence returning the terminal to its default state.
const Reset = types.Reset

// Standard colors
var (
	Black   = types.Black
	Red     = types.Red
	Green   = types.Green
	Yellow  = types.Yellow
	Blue    = types.Blue
	Magenta = types.Magenta
	Cyan    = types.Cyan
	White   = types.White
)

// Plain is the style with nothing set.
var Plain = types.Plain

// DefaultDialect spells attributes before colors without padding.
var DefaultDialect = types.DefaultDialect

// Standard returns one of the 16 standard colors.
func Standard(index uint8) ColorValue {
	return types.Standard(index)
}

// Indexed returns a color of the 256 color palette.
func Indexed(index uint8) ColorValue {
	return types.Indexed(index)
}

// RGB returns a true color.
func RGB(r, g, b uint8) ColorValue {
	return types.RGB(r, g, b)
}

// Text wraps a string as fragment content.
func Text(s string) Content {
	return render.Text(s)
}

// Bytes wraps raw bytes without copying them.
func Bytes(b []byte) Content {
	return render.Bytes(b)
}

// Formatted defers formatting until the content is rendered.
func Formatted(format string, args ...any) Content {
	return render.Formatted(format, args...)
}

// Paint creates a fragment of content in style.
func Paint(style Style, content Content) Fragment {
	return render.Paint(style, content)
}

// Unstyled creates a fragment without style.
func Unstyled(content Content) Fragment {
	return render.Plain(content)
}

// Title creates a fragment setting the terminal title.
func Title(content Content) Fragment {
	return render.NewTitle(content)
}

// Join builds a run from fragments, recording only the style changes.
func Join(fragments ...Fragment) *Fragments {
	return render.Join(fragments...)
}

// ComputeDelta returns the minimal instruction moving the terminal from
// before to after.
func ComputeDelta(before, after Style) StyleDelta {
	return types.ComputeDelta(before, after)
}

// DeltaNext chains deltas from the state established by previous.
func DeltaNext(previous StyleDelta, next Style) StyleDelta {
	return types.DeltaNext(previous, next)
}

// ParseStyle parses a style description such as "bold,fg=green,bg=#102030".
func ParseStyle(s string) (Style, error) {
	return document.ParseStyle(s)
}

// Import decodes an ANSI stream in sourceEncoding ("utf8", "cp437", "cp850",
// "iso-8859-1") and rebuilds its fragments.
func Import(data []byte, sourceEncoding string) (ImportResult, error) {
	return ansi.Import(data, sourceEncoding, zap.NewNop())
}

// Optimize imports an ANSI stream and writes it back with the minimal set of
// style changes, in the same encoding.
func Optimize(w io.Writer, data []byte, encoding string, d Dialect) error {
	result, err := Import(data, encoding)
	if err != nil {
		return err
	}

	out, err := sink.NewEncodedSink(w, encoding)
	if err != nil {
		return err
	}

	fs := Join(result.Fragments...)
	fs.SetDialect(d)
	return fs.Render(out)
}

// Encodings returns the supported character encodings.
func Encodings() []string {
	return append([]string(nil), charset.Names...)
}
