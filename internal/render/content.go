// Package render writes styled fragments with the fewest escape sequences
// needed to reproduce their styles.
package render

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/badele/ansirun/internal/sink"
)

type ContentKind int

const (
	ContentText      ContentKind = iota // borrowed string
	ContentBytes                        // borrowed or owned byte buffer
	ContentFormatted                    // resolved at write time
)

// Content is the payload of a fragment. Formatted content is never
// materialized before it reaches a sink.
type Content struct {
	kind   ContentKind
	text   string
	bytes  []byte
	format string
	args   []any
}

func Text(s string) Content {
	return Content{kind: ContentText, text: s}
}

// Bytes borrows b: later changes to b show up in the output.
func Bytes(b []byte) Content {
	return Content{kind: ContentBytes, bytes: b}
}

// OwnedBytes copies b.
func OwnedBytes(b []byte) Content {
	owned := make([]byte, len(b))
	copy(owned, b)
	return Content{kind: ContentBytes, bytes: owned}
}

// Formatted defers fmt.Sprintf(format, args...) to write time.
func Formatted(format string, args ...any) Content {
	return Content{kind: ContentFormatted, format: format, args: args}
}

func (c Content) Kind() ContentKind {
	return c.kind
}

func (c Content) IsEmpty() bool {
	switch c.kind {
	case ContentText:
		return c.text == ""
	case ContentBytes:
		return len(c.bytes) == 0
	}
	return c.format == ""
}

// Equal reports whether c and o hold the same content of the same kind.
// Formatted content compares its format and arguments without formatting.
func (c Content) Equal(o Content) bool {
	if c.kind != o.kind {
		return false
	}
	switch c.kind {
	case ContentBytes:
		return bytes.Equal(c.bytes, o.bytes)
	case ContentFormatted:
		return c.format == o.format && reflect.DeepEqual(c.args, o.args)
	}
	return c.text == o.text
}

// Render writes c to s.
func (c Content) Render(s sink.Sink) error {
	switch c.kind {
	case ContentBytes:
		return s.WriteBytes(c.bytes)
	case ContentFormatted:
		return s.Printf(c.format, c.args...)
	}
	return s.WriteString(c.text)
}

func (c Content) String() string {
	switch c.kind {
	case ContentBytes:
		return string(c.bytes)
	case ContentFormatted:
		return fmt.Sprintf(c.format, c.args...)
	}
	return c.text
}
