package ansirun

import (
	"bytes"
	"testing"
)

func TestJoin_HyperlinkBetweenText(t *testing.T) {
	run := Join(
		Paint(Green.Normal(), Text("Before link. ")),
		Paint(Blue.Underline(), Text("Link")).Hyperlink(Text("https://example.com")),
		Paint(Green.Normal(), Text(" After.")),
	)

	want := "\x1b[32mBefore link. \x1b[4;34m\x1b]8;;https://example.com\x1b\\Link\x1b]8;;\x1b\\\x1b[0m\x1b[32m After.\x1b[0m"
	if got := run.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestComputeDelta_RemovalResets(t *testing.T) {
	d := ComputeDelta(Green.Bold(), Green.Normal())
	got := d.Style.Prefix(DefaultDialect)

	if got != "\x1b[0m\x1b[32m" {
		t.Fatalf("expected reset then green, got %q", got)
	}
}

func TestOptimize_MergesRedundantCodes(t *testing.T) {
	var out bytes.Buffer
	input := []byte("\x1b[31mA\x1b[0m\x1b[31mB\x1b[0m")

	if err := Optimize(&out, input, "utf8", DefaultDialect); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := out.String(); got != "\x1b[31mAB\x1b[0m" {
		t.Fatalf("expected %q, got %q", "\x1b[31mAB\x1b[0m", got)
	}
}

func TestOptimize_UnknownEncoding(t *testing.T) {
	var out bytes.Buffer
	if err := Optimize(&out, []byte("x"), "ebcdic", DefaultDialect); err == nil {
		t.Fatal("expected an error for an unknown encoding")
	}
}

func TestParseStyle(t *testing.T) {
	style, err := ParseStyle("bold,fg=red")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if style != Red.Bold() {
		t.Fatalf("expected %s, got %s", Red.Bold(), style)
	}
}
