package charset

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestToUTF8StripsBOM(t *testing.T) {
	got, err := ToUTF8([]byte("\xEF\xBB\xBFhello"), "utf8")
	be.Err(t, err, nil)
	be.Equal(t, string(got), "hello")
}

func TestToUTF8FromCP437(t *testing.T) {
	// 0xDB is the full block in CP437
	got, err := ToUTF8([]byte{'a', 0xDB, 'b'}, "cp437")
	be.Err(t, err, nil)
	be.Equal(t, string(got), "a█b")
}

func TestToUTF8FromLatin1(t *testing.T) {
	got, err := ToUTF8([]byte{'c', 'a', 'f', 0xE9}, "iso-8859-1")
	be.Err(t, err, nil)
	be.Equal(t, string(got), "café")
}

func TestEncoderRoundTrip(t *testing.T) {
	enc, err := Encoder("cp437")
	be.Err(t, err, nil)
	be.True(t, enc != nil)

	out, err := enc.String("a█b")
	be.Err(t, err, nil)
	be.Equal(t, out, "a\xDBb")
}

func TestEncoderUTF8IsNil(t *testing.T) {
	enc, err := Encoder("utf8")
	be.Err(t, err, nil)
	be.True(t, enc == nil)
}

func TestUnsupportedEncoding(t *testing.T) {
	_, err := ToUTF8([]byte("x"), "ebcdic")
	be.Err(t, err, ErrUnsupportedEncoding)

	_, err = Encoder("ebcdic")
	be.Err(t, err, ErrUnsupportedEncoding)

	_, err = Lookup("ebcdic")
	be.Err(t, err, ErrUnsupportedEncoding)
}

func TestNames(t *testing.T) {
	for _, name := range Names {
		_, err := Lookup(name)
		be.Err(t, err, nil)
	}
}
