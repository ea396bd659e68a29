package ansi

import (
	"strings"

	"go.uber.org/zap"

	"github.com/badele/ansirun/internal/charset"
	"github.com/badele/ansirun/internal/render"
	"github.com/badele/ansirun/internal/types"
)

// Result is the outcome of importing an ANSI stream.
type Result struct {
	Tokens    []types.Token
	Stats     types.TokenStats
	Fragments []render.Fragment
}

// Import decodes data from sourceEncoding, tokenizes it and rebuilds the
// styled fragments it displays.
func Import(data []byte, sourceEncoding string, logger *zap.Logger) (Result, error) {
	utf8Data, err := charset.ToUTF8(data, sourceEncoding)
	if err != nil {
		return Result{}, err
	}

	var tokenizer types.TokenizerWithStats = NewTokenizer(utf8Data)
	tokens := tokenizer.Tokenize()
	fragments := ToFragments(tokens)

	logger.Debug("imported ansi stream",
		zap.String("encoding", sourceEncoding),
		zap.Int("bytes", len(data)),
		zap.Int("tokens", len(tokens)),
		zap.Int("fragments", len(fragments)),
	)

	return Result{Tokens: tokens, Stats: tokenizer.Stats(), Fragments: fragments}, nil
}

// ToFragments replays SGR and OSC tokens over the text tokens. Adjacent text
// sharing a style and a link becomes one fragment. C0 controls stay in the
// text; other control sequences are dropped.
func ToFragments(tokens []types.Token) []render.Fragment {
	b := &fragmentBuilder{}

	for _, token := range tokens {
		switch token.Type {
		case types.TokenText, types.TokenC0:
			b.text(token.Raw)

		case types.TokenSGR:
			b.style = b.style.ApplyParams(token.IntParameters())

		case types.TokenOSC:
			b.osc(token)
		}
	}

	b.flush()
	return b.fragments
}

type fragmentBuilder struct {
	fragments []render.Fragment

	style types.Style
	link  string

	pending      strings.Builder
	pendingStyle types.Style
	pendingLink  string
}

func (b *fragmentBuilder) text(s string) {
	if b.pending.Len() > 0 && (b.pendingStyle != b.style || b.pendingLink != b.link) {
		b.flush()
	}
	if b.pending.Len() == 0 {
		b.pendingStyle = b.style
		b.pendingLink = b.link
	}
	b.pending.WriteString(s)
}

func (b *fragmentBuilder) flush() {
	if b.pending.Len() == 0 {
		return
	}

	f := render.Paint(b.pendingStyle, render.Text(b.pending.String()))
	if b.pendingLink != "" {
		f = f.Hyperlink(render.Text(b.pendingLink))
	}
	b.fragments = append(b.fragments, f)
	b.pending.Reset()
}

func (b *fragmentBuilder) osc(token types.Token) {
	if len(token.Parameters) < 2 {
		return
	}

	switch token.Parameters[0] {
	case OSCIconAndTitle, OSCTitle:
		b.flush()
		// the title keeps the current style so it does not break a run
		title := render.NewTitle(render.Text(token.Parameters[1]))
		title.Style = b.style
		b.fragments = append(b.fragments, title)

	case OSCHyperlink:
		// OSC 8 ; params ; url
		_, url, found := strings.Cut(token.Parameters[1], ";")
		if !found {
			return
		}
		b.link = url
	}
}
