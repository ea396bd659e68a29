package types

/////////////////////////////////////////////////////////////////////////////
// BOOLEAN ALGEBRA
/////////////////////////////////////////////////////////////////////////////

// Difference is implemented by types forming a boolean algebra, so that the
// attributes turned on and off between two values can be computed the same
// way for flags, color presence and whole styles.
type Difference[T any] interface {
	Complement() T
	Conjunction(other T) T
}

// TurnedOn returns what is absent in before but present in after.
func TurnedOn[T Difference[T]](before, after T) T {
	return before.Complement().Conjunction(after)
}

// TurnedOff returns what is present in before but absent in after.
func TurnedOff[T Difference[T]](before, after T) T {
	return before.Conjunction(after.Complement())
}

// Bool lifts a plain boolean into the algebra.
type Bool bool

func (b Bool) Complement() Bool {
	return !b
}

func (b Bool) Conjunction(other Bool) Bool {
	return b && other
}

func (f Format) Complement() Format {
	return ^f & FormatAll
}

func (f Format) Conjunction(other Format) Format {
	return f & other
}

// BoolColoring records which of the two colors are present.
type BoolColoring struct {
	Foreground Bool
	Background Bool
}

func (c BoolColoring) IsEmpty() bool {
	return !bool(c.Foreground || c.Background)
}

func (c BoolColoring) Complement() BoolColoring {
	return BoolColoring{
		Foreground: c.Foreground.Complement(),
		Background: c.Background.Complement(),
	}
}

func (c BoolColoring) Conjunction(other BoolColoring) BoolColoring {
	return BoolColoring{
		Foreground: c.Foreground.Conjunction(other.Foreground),
		Background: c.Background.Conjunction(other.Background),
	}
}

// BoolStyle is the projection of a Style onto "is this attribute present".
type BoolStyle struct {
	ResetBefore Bool
	Formats     Format
	Coloring    BoolColoring
}

func (s Style) Bools() BoolStyle {
	return BoolStyle{
		ResetBefore: Bool(s.ResetBefore),
		Formats:     s.Formats & FormatAll,
		Coloring: BoolColoring{
			Foreground: Bool(!s.Foreground.IsDefault()),
			Background: Bool(!s.Background.IsDefault()),
		},
	}
}

func (b BoolStyle) Complement() BoolStyle {
	return BoolStyle{
		ResetBefore: b.ResetBefore.Complement(),
		Formats:     b.Formats.Complement(),
		Coloring:    b.Coloring.Complement(),
	}
}

func (b BoolStyle) Conjunction(other BoolStyle) BoolStyle {
	return BoolStyle{
		ResetBefore: b.ResetBefore.Conjunction(other.ResetBefore),
		Formats:     b.Formats.Conjunction(other.Formats),
		Coloring:    b.Coloring.Conjunction(other.Coloring),
	}
}
