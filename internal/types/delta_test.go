package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestComputeDelta(t *testing.T) {
	tests := []struct {
		name   string
		before Style
		after  Style
		want   UpdateCommand
	}{
		{"nothing", Green.Normal(), Green.Normal(), DoNothing()},
		{"bold", Green.Normal(), Green.Bold(), Prefix(Plain.Bold())},
		{"unbold", Green.Bold(), Green.Normal(), Prefix(Plain.Fg(Green).WithResetBefore())},
		{"nothing2", Green.Bold(), Green.Bold(), DoNothing()},
		{"color_change", Red.Normal(), Blue.Normal(), Prefix(Plain.Fg(Blue))},
		{"background_added", Red.Normal(), Red.On(Black), Prefix(Plain.On(Black))},

		{"addition_of_blink", Plain, Plain.Blink(), Prefix(Plain.Blink())},
		{"addition_of_dimmed", Plain, Plain.Dimmed(), Prefix(Plain.Dimmed())},
		{"addition_of_hidden", Plain, Plain.Hidden(), Prefix(Plain.Hidden())},
		{"addition_of_reverse", Plain, Plain.Reverse(), Prefix(Plain.Reverse())},
		{"addition_of_strikethrough", Plain, Plain.Strikethrough(), Prefix(Plain.Strikethrough())},

		{"removal_of_strikethrough", Plain.Strikethrough(), Plain, Prefix(Plain.WithResetBefore())},
		{"removal_of_reverse", Plain.Reverse(), Plain, Prefix(Plain.WithResetBefore())},
		{"removal_of_hidden", Plain.Hidden(), Plain, Prefix(Plain.WithResetBefore())},
		{"removal_of_dimmed", Plain.Dimmed(), Plain, Prefix(Plain.WithResetBefore())},
		{"removal_of_blink", Plain.Blink(), Plain, Prefix(Plain.WithResetBefore())},

		{"removal_of_background", Red.On(Blue), Red.Normal(), Prefix(Red.Normal().WithResetBefore())},
		{"forced_reset", Red.Normal(), Red.Bold().WithResetBefore(), Prefix(Red.Bold().WithResetBefore())},
		{"reset_flag_dropped", Plain.Bold().WithResetBefore(), Plain.Bold(), DoNothing()},
		{"reset_flag_dropped_plain", Plain.WithResetBefore(), Plain, DoNothing()},
		{"reset_flag_dropped_then_bold", Red.Normal().WithResetBefore(), Red.Bold(), Prefix(Plain.Bold())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDelta(tt.before, tt.after)
			assert.Equal(t, tt.want, got.Command(), "delta %s -> %s", tt.before, tt.after)
		})
	}
}

func TestComputeDeltaEstablishesTarget(t *testing.T) {
	d := ComputeDelta(Green.Normal(), Green.Bold().Underline())
	assert.Equal(t, Plain.Bold().Underline(), d.Style)
	assert.Equal(t, Green.Bold().Underline(), d.Established())

	d = ComputeDelta(Green.Bold(), Plain.WithResetBefore())
	assert.Equal(t, Plain, d.Established())
}

func TestDeltaNextFromEmpty(t *testing.T) {
	var start StyleDelta

	assert.True(t, DeltaNext(start, Plain).IsEmpty())
	assert.Equal(t, Prefix(Red.Bold()), DeltaNext(start, Red.Bold()).Command())
}

func TestDeltaNextTracksTerminalState(t *testing.T) {
	// Green -> Green bold only emits bold, but the terminal is still green:
	// dropping back to plain bold must reset rather than be a no-op.
	first := DeltaNext(StyleDelta{}, Green.Normal())
	second := DeltaNext(first, Green.Bold())
	assert.Equal(t, Prefix(Plain.Bold()), second.Command())

	third := DeltaNext(second, Plain.Bold())
	assert.Equal(t, Prefix(Plain.Bold().WithResetBefore()), third.Command())
	assert.Equal(t, Plain.Bold(), third.Established())
}

func TestDeltaNextAfterEmptyKeepsState(t *testing.T) {
	first := DeltaNext(StyleDelta{}, Red.Normal())
	same := DeltaNext(first, Red.Normal())
	assert.True(t, same.IsEmpty())

	back := DeltaNext(same, Plain)
	assert.Equal(t, Prefix(Plain.WithResetBefore()), back.Command())
}

func TestPrefixUsing(t *testing.T) {
	d := PrefixUsing(Blue.Underline())
	assert.False(t, d.IsEmpty())
	assert.Equal(t, Blue.Underline(), d.Established())
	assert.Equal(t, Prefix(Blue.Underline()), d.Command())
}

func TestRenderedDeltas(t *testing.T) {
	d := ComputeDelta(Red.Bold(), Plain)
	assert.Equal(t, "\x1b[0m", d.Style.Prefix(DefaultDialect))

	d = ComputeDelta(Green.Bold(), Green.Normal())
	assert.Equal(t, "\x1b[0m\x1b[32m", d.Style.Prefix(DefaultDialect))

	d = ComputeDelta(Red.Normal(), Red.Bold().Underline())
	assert.Equal(t, "\x1b[1;4m", d.Style.Prefix(DefaultDialect))
}

func TestUpdateCommandString(t *testing.T) {
	assert.Equal(t, "DoNothing", DoNothing().String())
	assert.Equal(t, "Prefix(formats:bold, fg:default, bg:default)", Prefix(Plain.Bold()).String())
}

/////////////////////////////////////////////////////////////////////////////
// PROPERTIES
/////////////////////////////////////////////////////////////////////////////

func colorGen() *rapid.Generator[ColorValue] {
	return rapid.Custom(func(t *rapid.T) ColorValue {
		switch rapid.IntRange(0, 3).Draw(t, "kind") {
		case 1:
			return Standard(rapid.Uint8Range(0, 15).Draw(t, "std"))
		case 2:
			return Indexed(rapid.Uint8().Draw(t, "idx"))
		case 3:
			return RGB(rapid.Uint8().Draw(t, "r"), rapid.Uint8().Draw(t, "g"), rapid.Uint8().Draw(t, "b"))
		}
		return ColorValue{}
	})
}

func styleGen() *rapid.Generator[Style] {
	return rapid.Custom(func(t *rapid.T) Style {
		return Style{
			Formats:     Format(rapid.Uint16Range(0, uint16(FormatAll)).Draw(t, "formats")),
			Foreground:  colorGen().Draw(t, "fg"),
			Background:  colorGen().Draw(t, "bg"),
			ResetBefore: rapid.Float64Range(0, 1).Draw(t, "reset") < 0.1,
		}
	})
}

func TestPropertyDeltaToSelfIsEmpty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := styleGen().Draw(t, "style")
		assert.True(t, ComputeDelta(s, s).IsEmpty())
	})
}

func TestPropertyDroppingResetFlagIsEmpty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := styleGen().Draw(t, "style").WithoutResetBefore()
		d := ComputeDelta(s.WithResetBefore(), s)
		assert.True(t, d.IsEmpty())
		assert.Equal(t, DoNothing(), d.Command())
		assert.Equal(t, s, d.Established())
	})
}

func TestPropertyReturnToPlainResets(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		before := styleGen().Draw(t, "before")
		if before.IsPlain() {
			t.Skip("plain before")
		}
		d := ComputeDelta(before, Plain)
		assert.Equal(t, Prefix(Plain.WithResetBefore()), d.Command())
		assert.Equal(t, Reset, d.Style.Prefix(DefaultDialect))
	})
}

func TestPropertyAdditiveDeltaNeverResets(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		before := styleGen().Draw(t, "before").WithoutResetBefore()
		extra := Format(rapid.Uint16Range(0, uint16(FormatAll)).Draw(t, "extra"))
		after := before.With(extra)
		if !before.Background.IsDefault() && rapid.Bool().Draw(t, "recolor") {
			after = after.On(colorGen().Draw(t, "bg"))
			if after.Background.IsDefault() {
				after = after.On(Red)
			}
		}

		d := ComputeDelta(before, after)
		if before == after {
			assert.True(t, d.IsEmpty())
			return
		}
		assert.False(t, d.Style.ResetBefore)
		assert.Equal(t, extra&^before.Formats, d.Style.Formats)
		assert.NotContains(t, d.Style.Prefix(DefaultDialect), Reset)
	})
}

func TestPropertyRemovalFallsBackToReset(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		after := styleGen().Draw(t, "after").WithoutResetBefore()
		removed := Format(rapid.Uint16Range(1, uint16(FormatAll)).Draw(t, "removed"))
		before := after.With(removed)
		after = after.Without(removed)

		d := ComputeDelta(before, after)
		assert.Equal(t, Prefix(after.WithResetBefore()), d.Command())
	})
}

func TestPropertyEstablishedEqualsTarget(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		before := styleGen().Draw(t, "before")
		after := styleGen().Draw(t, "after")
		d := ComputeDelta(before, after)
		assert.Equal(t, after.WithoutResetBefore(), d.Established())
	})
}
