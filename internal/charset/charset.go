// Package charset converts between UTF-8 and the legacy code pages ANSI
// files are commonly stored in.
package charset

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// Names lists the accepted encoding names.
var Names = []string{"utf8", "cp437", "cp850", "iso-8859-1"}

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Lookup returns the encoding registered under name. "utf8" returns nil:
// data is already in the expected form.
func Lookup(name string) (encoding.Encoding, error) {
	switch name {
	case "utf8", "utf-8", "":
		return nil, nil
	case "cp437":
		return charmap.CodePage437, nil
	case "cp850":
		return charmap.CodePage850, nil
	case "iso-8859-1":
		return charmap.ISO8859_1, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, name)
}

// stripUTF8BOM removes the UTF-8 BOM if present at the beginning of the data
func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

// ToUTF8 converts data from the source encoding to UTF-8, stripping a
// leading BOM.
func ToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	enc, err := Lookup(sourceEncoding)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return stripUTF8BOM(data), nil
	}

	reader := transform.NewReader(bytes.NewReader(data), enc.NewDecoder())
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	return stripUTF8BOM(utf8Data), nil
}

// Encoder returns an encoder for the target encoding that replaces runes
// the code page cannot represent. It returns nil for UTF-8.
func Encoder(targetEncoding string) (*encoding.Encoder, error) {
	enc, err := Lookup(targetEncoding)
	if err != nil || enc == nil {
		return nil, err
	}
	return encoding.ReplaceUnsupported(enc.NewEncoder()), nil
}
