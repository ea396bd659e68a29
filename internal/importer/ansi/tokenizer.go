// Package ansi reads ANSI byte streams back into styled fragments.
package ansi

// Sources :
// - https://vt100.net/docs/vt510-rm/chapter4.html
// - https://invisible-island.net/xterm/ctlseqs/ctlseqs.html
// - https://ecma-international.org/wp-content/uploads/ECMA-48_5th_edition_june_1991.pdf

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"github.com/badele/ansirun/internal/types"
)

var _ types.TokenizerWithStats = (*Tokenizer)(nil)

type Tokenizer struct {
	input  []byte
	pos    int
	tokens []types.Token
	stats  types.TokenStats
}

func NewTokenizer(input []byte) *Tokenizer {
	return &Tokenizer{
		input:  input,
		tokens: make([]types.Token, 0),
		stats: types.TokenStats{
			TokensByType: make(map[types.TokenType]int),
			SGRCodes:     make(map[string]int),
			OSCCommands:  make(map[string]int),
			FileSize:     int64(len(input)),
		},
	}
}

func (t *Tokenizer) Tokenize() []types.Token {
	for t.pos < len(t.input) {
		t.nextToken()
	}

	t.calculateStats()

	return t.tokens
}

func (t *Tokenizer) Stats() types.TokenStats {
	return t.stats
}

func (t *Tokenizer) emit(token types.Token) {
	t.tokens = append(t.tokens, token)
}

func (t *Tokenizer) nextToken() {
	c := t.input[t.pos]

	// C0 (0x00-0x1F)
	if c < 0x20 {
		if c == 0x1B {
			t.parseEscape(t.pos)
		} else {
			t.parseC0(t.pos, c)
		}
		return
	}

	t.parseText(t.pos)
}

func (t *Tokenizer) parseC0(start int, code byte) {
	t.pos++
	t.emit(types.Token{
		Type:   types.TokenC0,
		Pos:    start,
		Raw:    string(code),
		C0Code: code,
	})
}

func (t *Tokenizer) parseEscape(start int) {
	t.pos++

	if t.pos >= len(t.input) {
		t.emit(types.Token{Type: types.TokenEscape, Pos: start, Raw: string(t.input[start:t.pos])})
		return
	}

	name, ok := C1Sequences[t.input[t.pos]]
	if !ok {
		t.parseOtherEscape(start)
		return
	}
	t.pos++

	switch name {
	case "CSI":
		t.parseCSI(start)
	case "DCS":
		t.parseDCS(start)
	case "OSC":
		t.parseOSC(start)
	default:
		t.emit(types.Token{
			Type:   types.TokenC1,
			Pos:    start,
			Raw:    string(t.input[start:t.pos]),
			C1Code: name,
		})
	}
}

func (t *Tokenizer) parseCSI(start int) {
	params := t.collectParams()

	// a C0 control or the end of input interrupts the sequence; the control
	// is left for the next token
	if t.pos >= len(t.input) || t.input[t.pos] < 0x20 {
		t.emit(types.Token{
			Type:       types.TokenEscape,
			Pos:        start,
			Raw:        string(t.input[start:t.pos]),
			Parameters: params,
		})
		return
	}

	final := t.input[t.pos]
	t.pos++

	token := types.Token{
		Type:       types.TokenCSI,
		Pos:        start,
		Raw:        string(t.input[start:t.pos]),
		Parameters: params,
		Final:      final,
	}
	if final == 'm' {
		token.Type = types.TokenSGR
	}

	t.emit(token)
}

// readString consumes a control string up to its terminator: ST (ESC \ or
// 0x9C), or BEL when allowed.
func (t *Tokenizer) readString(allowBEL bool) []byte {
	data := make([]byte, 0)
	for t.pos < len(t.input) {
		b := t.input[t.pos]
		if allowBEL && b == 0x07 {
			t.pos++
			break
		}
		if b == 0x1B && t.pos+1 < len(t.input) && t.input[t.pos+1] == '\\' {
			t.pos += 2
			break
		}
		if b == 0x9C {
			t.pos++
			break
		}
		data = append(data, b)
		t.pos++
	}
	return data
}

func (t *Tokenizer) parseDCS(start int) {
	data := t.readString(false)

	t.emit(types.Token{
		Type:  types.TokenDCS,
		Pos:   start,
		Raw:   string(t.input[start:t.pos]),
		Value: string(data),
	})
}

func (t *Tokenizer) parseOSC(start int) {
	data := t.readString(true)

	params := make([]string, 0, 2)
	if i := bytes.IndexByte(data, ';'); i >= 0 {
		params = append(params, string(data[:i]), string(data[i+1:]))
	} else {
		params = append(params, string(data))
	}

	t.emit(types.Token{
		Type:       types.TokenOSC,
		Pos:        start,
		Raw:        string(t.input[start:t.pos]),
		Value:      string(data),
		Parameters: params,
	})
}

func (t *Tokenizer) parseOtherEscape(start int) {
	// ESC c, ESC 7, ESC 8, ESC =, ESC >, ESC (0, ESC (B, ESC #8
	next := t.input[t.pos]
	t.pos++

	if next == '(' || next == ')' || next == '#' {
		if t.pos < len(t.input) {
			t.pos++
		}
	}

	t.emit(types.Token{Type: types.TokenEscape, Pos: start, Raw: string(t.input[start:t.pos])})
}

func (t *Tokenizer) collectParams() []string {
	params := make([]string, 0)
	var current bytes.Buffer

	for t.pos < len(t.input) {
		b := t.input[t.pos]

		switch {
		case b >= '0' && b <= '9':
			current.WriteByte(b)
		case b == ';' || b == ':':
			params = append(params, current.String())
			current.Reset()
		case b == '?' || b == '>' || b == '!' || b == '$' || b == '\'' || b == '"' || b == ' ':
			// intermediate bytes are ignored
		default:
			if current.Len() > 0 || len(params) > 0 {
				params = append(params, current.String())
			}
			return params
		}
		t.pos++
	}

	if current.Len() > 0 || len(params) > 0 {
		params = append(params, current.String())
	}
	return params
}

func (t *Tokenizer) parseText(start int) {
	for t.pos < len(t.input) {
		if t.input[t.pos] < 0x20 {
			break
		}
		_, size := utf8.DecodeRune(t.input[t.pos:])
		t.pos += size
	}

	text := string(t.input[start:t.pos])
	t.emit(types.Token{
		Type:  types.TokenText,
		Pos:   start,
		Raw:   text,
		Value: text,
	})
}

func (t *Tokenizer) calculateStats() {
	t.stats.TotalTokens = len(t.tokens)

	for _, token := range t.tokens {
		t.stats.TokensByType[token.Type]++

		switch token.Type {
		case types.TokenText:
			t.stats.TextBytes += len(token.Value)
			continue

		case types.TokenSGR:
			if len(token.Parameters) == 0 {
				t.stats.SGRCodes["0"]++
			}
			for _, param := range token.Parameters {
				t.stats.SGRCodes[param]++
			}

		case types.TokenOSC:
			t.stats.OSCCommands[token.Parameters[0]]++
		}

		if token.Type != types.TokenC0 {
			t.stats.ControlBytes += len(token.Raw)
		}
	}
}

// DescribeSGR names each SGR parameter, folding extended colors into one
// entry.
func DescribeSGR(params []string) []string {
	result := make([]string, 0, len(params))

	for i := 0; i < len(params); i++ {
		if params[i] == "" {
			result = append(result, SGRCodes[0])
			continue
		}

		code, err := strconv.Atoi(params[i])
		if err != nil {
			result = append(result, "Invalid: "+params[i])
			continue
		}

		if (code == 38 || code == 48) && i+2 < len(params) {
			prefix := "Foreground"
			if code == 48 {
				prefix = "Background"
			}
			switch params[i+1] {
			case "5":
				result = append(result, prefix+" Palette Index: "+params[i+2])
				i += 2
				continue
			case "2":
				if i+4 < len(params) {
					result = append(result, prefix+" RGB: "+params[i+2]+","+params[i+3]+","+params[i+4])
					i += 4
					continue
				}
			}
		}

		if name, ok := SGRCodes[code]; ok {
			result = append(result, name)
		} else {
			result = append(result, "Unknown: "+strconv.Itoa(code))
		}
	}

	return result
}
