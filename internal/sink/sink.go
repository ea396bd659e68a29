// Package sink abstracts the destination of rendered text so the same
// rendering code can target a character stream or a byte stream.
package sink

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"

	"github.com/badele/ansirun/internal/charset"
)

// Sink accepts literal text and deferred formatted values. Errors come
// straight from the underlying writer.
type Sink interface {
	WriteString(s string) error
	WriteBytes(b []byte) error
	Printf(format string, args ...any) error
}

/////////////////////////////////////////////////////////////////////////////
// CHARACTER STREAM
/////////////////////////////////////////////////////////////////////////////

// TextSink writes to a character stream such as a strings.Builder.
type TextSink struct {
	w io.StringWriter
}

func NewTextSink(w io.StringWriter) *TextSink {
	return &TextSink{w: w}
}

func (s *TextSink) WriteString(str string) error {
	_, err := s.w.WriteString(str)
	return err
}

func (s *TextSink) WriteBytes(b []byte) error {
	_, err := s.w.WriteString(string(b))
	return err
}

func (s *TextSink) Printf(format string, args ...any) error {
	_, err := s.w.WriteString(fmt.Sprintf(format, args...))
	return err
}

/////////////////////////////////////////////////////////////////////////////
// BYTE STREAM
/////////////////////////////////////////////////////////////////////////////

// ByteSink writes to a byte stream. With an encoder set, every write is
// transcoded first; escape sequences are ASCII and pass through unchanged.
type ByteSink struct {
	w   io.Writer
	enc *encoding.Encoder
}

func NewByteSink(w io.Writer) *ByteSink {
	return &ByteSink{w: w}
}

// NewEncodedSink returns a byte sink producing the named encoding.
func NewEncodedSink(w io.Writer, encodingName string) (*ByteSink, error) {
	enc, err := charset.Encoder(encodingName)
	if err != nil {
		return nil, err
	}
	return &ByteSink{w: w, enc: enc}, nil
}

func (s *ByteSink) WriteString(str string) error {
	if s.enc != nil {
		encoded, err := s.enc.String(str)
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		str = encoded
	}
	_, err := io.WriteString(s.w, str)
	return err
}

func (s *ByteSink) WriteBytes(b []byte) error {
	if s.enc != nil {
		encoded, err := s.enc.Bytes(b)
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		b = encoded
	}
	_, err := s.w.Write(b)
	return err
}

func (s *ByteSink) Printf(format string, args ...any) error {
	if s.enc != nil {
		return s.WriteString(fmt.Sprintf(format, args...))
	}
	_, err := fmt.Fprintf(s.w, format, args...)
	return err
}
