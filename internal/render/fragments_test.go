package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/badele/ansirun/internal/types"
)

func TestNoControlCodesForPlain(t *testing.T) {
	fs := Join(Plain(Text("one")), Plain(Text("two")))
	assert.Equal(t, "onetwo", fs.String())
}

func TestEmptySequence(t *testing.T) {
	fs := NewFragments(0)
	assert.Equal(t, "", fs.String())
	assert.Empty(t, fs.Updates())
}

func assertIdempotent(t *testing.T, unstyled Fragment) {
	t.Helper()

	beforeGreen := Paint(types.Green.Normal(), Text("Before is Green. "))
	before := Plain(Text("Before is Plain. "))
	afterGreen := Paint(types.Green.Normal(), Text(" After is Green."))
	after := Plain(Text(" After is Plain."))
	unstyledText := unstyled.String()

	joined := Join(beforeGreen, unstyled).String()
	assert.True(t, strings.HasPrefix(joined, "\x1b[32mBefore is Green. \x1b[0m"), "%q", joined)
	assert.True(t, strings.HasSuffix(joined, unstyledText), "%q", joined)

	joined = Join(unstyled, afterGreen).String()
	assert.True(t, strings.HasPrefix(joined, unstyledText), "%q", joined)
	assert.True(t, strings.HasSuffix(joined, "\x1b[32m After is Green.\x1b[0m"), "%q", joined)

	for _, fs := range []*Fragments{
		Join(unstyled),
		Join(before, unstyled),
		Join(before, unstyled, after),
		Join(unstyled, after),
	} {
		assert.NotContains(t, fs.String(), "\x1b[")
	}
}

func TestTitleIsIdempotent(t *testing.T) {
	assertIdempotent(t, NewTitle(Text("Test Title")))
}

func TestPlainIsIdempotent(t *testing.T) {
	assertIdempotent(t, Plain(Text("unstyled")))
}

func TestHyperlinks(t *testing.T) {
	before := Paint(types.Green.Normal(), Text("Before link. "))
	link := Paint(types.Blue.Normal().Underline(), Text("Link to example.com.")).
		Hyperlink(Text("https://example.com"))
	after := Paint(types.Green.Normal(), Text(" After link."))

	const anchor = "\x1b]8;;https://example.com\x1b\\Link to example.com.\x1b]8;;\x1b\\"

	tests := []struct {
		name      string
		fragments []Fragment
		want      string
		legacy    string
	}{
		{
			"alone",
			[]Fragment{link},
			"\x1b[4;34m" + anchor + "\x1b[0m",
			"\x1b[04;34m" + anchor + "\x1b[0m",
		},
		{
			"middle",
			[]Fragment{before, link, after},
			"\x1b[32mBefore link. \x1b[4;34m" + anchor + "\x1b[0m\x1b[32m After link.\x1b[0m",
			"\x1b[32mBefore link. \x1b[04;34m" + anchor + "\x1b[0m\x1b[32m After link.\x1b[0m",
		},
		{
			"first",
			[]Fragment{link, after},
			"\x1b[4;34m" + anchor + "\x1b[0m\x1b[32m After link.\x1b[0m",
			"\x1b[04;34m" + anchor + "\x1b[0m\x1b[32m After link.\x1b[0m",
		},
		{
			"last",
			[]Fragment{before, link},
			"\x1b[32mBefore link. \x1b[4;34m" + anchor + "\x1b[0m",
			"\x1b[32mBefore link. \x1b[04;34m" + anchor + "\x1b[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := Join(tt.fragments...)
			assert.Equal(t, tt.want, fs.String())

			fs.SetDialect(types.Dialect{LegacyCodes: true})
			assert.Equal(t, tt.legacy, fs.String())
		})
	}
}

func TestColorsFirstDialect(t *testing.T) {
	fs := Join(Paint(types.Blue.Normal().Underline(), Text("x")))
	fs.SetDialect(types.Dialect{Order: types.ColorsFirst})
	assert.Equal(t, "\x1b[34;4mx\x1b[0m", fs.String())
}

func TestNoLeakageAcrossPlain(t *testing.T) {
	fs := Join(
		Paint(types.Green.Normal(), Text("A")),
		Plain(Text("B")),
		Paint(types.Green.Normal(), Text("C")),
	)

	out := fs.String()
	assert.Equal(t, "\x1b[32mA\x1b[0mB\x1b[32mC\x1b[0m", out)
	assert.NotContains(t, out, types.Reset+types.Reset)
}

func TestRunTableSkipsRepeatedStyles(t *testing.T) {
	fs := Join(
		Paint(types.Green.Normal(), Text("a")),
		Paint(types.Green.Normal(), Text("b")),
		Paint(types.Green.Bold(), Text("c")),
		Paint(types.Green.Bold(), Text("d")),
	)

	assert.Equal(t, []StyleUpdate{
		{Index: 0, Command: types.Prefix(types.Green.Normal())},
		{Index: 2, Command: types.Prefix(types.Plain.Bold())},
	}, fs.Updates())
	assert.Equal(t, "\x1b[32mab\x1b[1mcd\x1b[0m", fs.String())
}

func TestRunTableFirstPlainRecordsDoNothing(t *testing.T) {
	fs := Join(Plain(Text("a")), Paint(types.Red.Normal(), Text("b")))

	assert.Equal(t, []StyleUpdate{
		{Index: 0, Command: types.DoNothing()},
		{Index: 1, Command: types.Prefix(types.Red.Normal())},
	}, fs.Updates())
}

func TestRunTableTracksEstablishedStyle(t *testing.T) {
	// only bold is emitted for the second fragment, but the terminal is
	// green too, so plain bold needs a reset
	fs := Join(
		Paint(types.Green.Normal(), Text("A")),
		Paint(types.Green.Bold(), Text("B")),
		Paint(types.Plain.Bold(), Text("C")),
	)

	assert.Equal(t, "\x1b[32mA\x1b[1mB\x1b[0m\x1b[1mC\x1b[0m", fs.String())
	assert.Equal(t, types.Plain.Bold(), fs.Established())
}

func TestRunTableResetBeforeOnce(t *testing.T) {
	forced := types.Red.Normal().WithResetBefore()
	fs := Join(
		Paint(forced, Text("a")),
		Paint(forced, Text("b")),
		Paint(types.Red.Normal(), Text("c")),
	)

	assert.Equal(t, "\x1b[0m\x1b[31mabc\x1b[0m", fs.String())
	assert.Equal(t, types.DoNothing(), fs.Updates()[1].Command)
}

func TestWriteBytesMatchesString(t *testing.T) {
	fs := Join(
		Paint(types.Yellow.On(types.Black), Bytes([]byte("warn"))),
		Plain(Formatted(" %d", 42)),
	)

	var buf bytes.Buffer
	require.NoError(t, fs.WriteBytes(&buf))
	assert.Equal(t, fs.String(), buf.String())
	assert.Equal(t, "\x1b[33;40mwarn\x1b[0m 42", buf.String())
}

func TestRenderPropagatesSinkError(t *testing.T) {
	boom := errors.New("disk full")
	s := &failingSink{budget: 1, err: boom}
	fs := Join(Paint(types.Red.Normal(), Text("a")), Plain(Text("b")))

	assert.Same(t, boom, fs.Render(s))
	assert.Equal(t, 1, s.writes)
}

func TestRunCursor(t *testing.T) {
	c := newRunCursor([]StyleUpdate{
		{Index: 0, Command: types.Prefix(types.Plain.Bold())},
		{Index: 3, Command: types.Prefix(types.Red.Normal())},
	})

	assert.Equal(t, types.Prefix(types.Plain.Bold()), c.at(0))
	assert.Equal(t, types.DoNothing(), c.at(1))
	assert.Equal(t, types.DoNothing(), c.at(2))
	assert.Equal(t, types.Prefix(types.Red.Normal()), c.at(3))
	assert.Equal(t, types.DoNothing(), c.at(4))
}

/////////////////////////////////////////////////////////////////////////////
// PROPERTIES
/////////////////////////////////////////////////////////////////////////////

func styleGen() *rapid.Generator[types.Style] {
	return rapid.Custom(func(t *rapid.T) types.Style {
		s := types.Style{
			Formats: types.Format(rapid.Uint16Range(0, uint16(types.FormatAll)).Draw(t, "formats")),
		}
		if rapid.Bool().Draw(t, "fg") {
			s.Foreground = types.Standard(rapid.Uint8Range(0, 15).Draw(t, "fgIndex"))
		}
		if rapid.Bool().Draw(t, "bg") {
			s.Background = types.Indexed(rapid.Uint8().Draw(t, "bgIndex"))
		}
		s.ResetBefore = rapid.IntRange(0, 9).Draw(t, "reset") == 0
		return s
	})
}

func TestPropertyPlainConcatenation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		texts := rapid.SliceOf(rapid.StringMatching(`[a-z ]{0,8}`)).Draw(t, "texts")

		fs := NewFragments(len(texts))
		for _, s := range texts {
			fs.Push(Plain(Text(s)))
		}

		assert.Equal(t, strings.Join(texts, ""), fs.String())
	})
}

func TestPropertyTrailingReset(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		styles := rapid.SliceOfN(styleGen(), 1, 8).Draw(t, "styles")

		fs := NewFragments(len(styles))
		for _, s := range styles {
			fs.Push(Paint(s, Text("x")))
		}

		out := fs.String()
		if styles[len(styles)-1].IsPlain() {
			assert.True(t, strings.HasSuffix(out, "x"), "%q", out)
		} else {
			assert.True(t, strings.HasSuffix(out, "x"+types.Reset), "%q", out)
		}
	})
}

func TestPropertyNoDoubleReset(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		styles := rapid.SliceOfN(styleGen(), 1, 8).Draw(t, "styles")

		fs := NewFragments(len(styles))
		for _, s := range styles {
			fs.Push(Paint(s.WithoutResetBefore(), Text("x")))
		}

		assert.NotContains(t, fs.String(), types.Reset+types.Reset)
	})
}
