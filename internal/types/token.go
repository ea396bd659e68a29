package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

/////////////////////////////////////////////////////////////////////////////
// TOKEN TYPE
/////////////////////////////////////////////////////////////////////////////

type TokenType int

const (
	TokenText TokenType = iota
	TokenC0
	TokenC1
	TokenCSI
	TokenSGR
	TokenOSC
	TokenDCS
	TokenEscape
)

var tokenTypeNames = map[TokenType]string{
	TokenText:   "TokenText",
	TokenC0:     "TokenC0",
	TokenC1:     "TokenC1",
	TokenCSI:    "TokenCSI",
	TokenSGR:    "TokenSGR",
	TokenOSC:    "TokenOSC",
	TokenDCS:    "TokenDCS",
	TokenEscape: "TokenEscape",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

func (t TokenType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

/////////////////////////////////////////////////////////////////////////////
// TOKEN
/////////////////////////////////////////////////////////////////////////////

type Token struct {
	Type       TokenType `json:"type"`
	Pos        int       `json:"pos"`
	Raw        string    `json:"raw"`
	Value      string    `json:"value,omitempty"`
	Parameters []string  `json:"parameters,omitempty"`
	Final      byte      `json:"final,omitempty"`
	C0Code     byte      `json:"c0_code,omitempty"`
	C1Code     string    `json:"c1_code,omitempty"`
}

// IntParameters converts the parameters of a CSI or SGR token. Empty or
// malformed parameters count as 0.
func (t Token) IntParameters() []int {
	ints := make([]int, 0, len(t.Parameters))
	for _, p := range t.Parameters {
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		ints = append(ints, n)
	}
	return ints
}

// C0 control codes names
var C0Names = map[byte]string{
	0x00: "NUL",
	0x07: "BEL",
	0x08: "BS",
	0x09: "HT",
	0x0A: "LF",
	0x0B: "VT",
	0x0C: "FF",
	0x0D: "CR",
	0x1B: "ESC",
}

func (t Token) String() string {
	switch t.Type {
	case TokenText:
		return "TEXT: " + t.Value
	case TokenC0:
		if name, ok := C0Names[t.C0Code]; ok {
			return "C0: " + name
		}
		return fmt.Sprintf("C0: 0x%02X", t.C0Code)
	case TokenC1:
		return "C1: " + t.C1Code
	case TokenCSI:
		return fmt.Sprintf("CSI: %v %c", t.Parameters, t.Final)
	case TokenSGR:
		return fmt.Sprintf("SGR: %v", t.Parameters)
	case TokenDCS:
		return "DCS: " + t.Value
	case TokenOSC:
		return "OSC: " + t.Value
	case TokenEscape:
		return fmt.Sprintf("ESC: %q", t.Raw)
	default:
		return "UNKNOWN"
	}
}

/////////////////////////////////////////////////////////////////////////////
// TOKEN STATS
/////////////////////////////////////////////////////////////////////////////

type TokenStats struct {
	TotalTokens  int               `json:"total_tokens"`
	TokensByType map[TokenType]int `json:"tokens_by_type"`
	SGRCodes     map[string]int    `json:"sgr_codes"`
	OSCCommands  map[string]int    `json:"osc_commands"`
	TextBytes    int               `json:"text_bytes"`
	ControlBytes int               `json:"control_bytes"`
	FileSize     int64             `json:"file_size"`
}

// JSON renders the stats indented for display.
func (s TokenStats) JSON() (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding stats: %w", err)
	}
	return string(data), nil
}
