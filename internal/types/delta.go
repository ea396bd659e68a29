package types

/////////////////////////////////////////////////////////////////////////////
// STYLE DELTA
/////////////////////////////////////////////////////////////////////////////

type DeltaKind int

const (
	DeltaEmpty  DeltaKind = iota // terminal already in the wanted state
	DeltaPrefix                  // emit the prefix of Style
)

// StyleDelta is the escape instruction moving the terminal from one style to
// another. The zero value is an empty delta leaving the terminal plain.
type StyleDelta struct {
	Kind  DeltaKind
	Style Style

	// established is the terminal state once the delta is applied.
	established Style
}

// PrefixUsing returns a delta emitting the prefix of s from a plain
// terminal.
func PrefixUsing(s Style) StyleDelta {
	return StyleDelta{Kind: DeltaPrefix, Style: s, established: settle(Plain, s)}
}

func (d StyleDelta) IsEmpty() bool {
	return d.Kind == DeltaEmpty
}

// Established returns the style the terminal is in once d has been written.
func (d StyleDelta) Established() Style {
	return d.established
}

// Command converts d to the instruction stored in a run table.
func (d StyleDelta) Command() UpdateCommand {
	if d.IsEmpty() {
		return DoNothing()
	}
	return Prefix(d.Style)
}

// ComputeDelta returns the minimal instruction moving the terminal from
// before to after. Turning an attribute off always falls back to a full
// reset followed by the complete target style.
func ComputeDelta(before, after Style) StyleDelta {
	// a reset flag on before alone does not change what the terminal shows
	if before == after || before.WithoutResetBefore() == after {
		return StyleDelta{established: after.WithoutResetBefore()}
	}

	if (after.IsPlain() && !before.IsPlain()) || after.ResetBefore {
		return resetTo(after)
	}

	off := TurnedOff(before.Bools(), after.Bools())
	if !off.Formats.IsEmpty() || !off.Coloring.IsEmpty() {
		return resetTo(after)
	}

	on := TurnedOn(before.Bools(), after.Bools())
	minimal := Style{Formats: on.Formats}
	// color codes replace the previous color, so a changed color is additive
	if before.Foreground != after.Foreground {
		minimal.Foreground = after.Foreground
	}
	if before.Background != after.Background {
		minimal.Background = after.Background
	}

	return StyleDelta{Kind: DeltaPrefix, Style: minimal, established: after.WithoutResetBefore()}
}

func resetTo(after Style) StyleDelta {
	return StyleDelta{
		Kind:        DeltaPrefix,
		Style:       after.WithResetBefore(),
		established: after.WithoutResetBefore(),
	}
}

// DeltaNext chains deltas: it computes the transition to next from the state
// established by previous. An empty zero delta stands for a plain terminal.
func DeltaNext(previous StyleDelta, next Style) StyleDelta {
	return ComputeDelta(previous.Established(), next)
}

// settle returns the terminal state reached by writing the prefix of p while
// in state current.
func settle(current, p Style) Style {
	if p.ResetBefore {
		return p.WithoutResetBefore()
	}

	current.Formats |= p.Formats
	if !p.Foreground.IsDefault() {
		current.Foreground = p.Foreground
	}
	if !p.Background.IsDefault() {
		current.Background = p.Background
	}
	return current.WithoutResetBefore()
}

/////////////////////////////////////////////////////////////////////////////
// UPDATE COMMAND
/////////////////////////////////////////////////////////////////////////////

type CommandKind int

const (
	CommandDoNothing CommandKind = iota
	CommandPrefix
)

// UpdateCommand is the instruction attached to a fragment index in a run
// table.
type UpdateCommand struct {
	Kind  CommandKind
	Style Style
}

func DoNothing() UpdateCommand {
	return UpdateCommand{}
}

func Prefix(s Style) UpdateCommand {
	return UpdateCommand{Kind: CommandPrefix, Style: s}
}

// Prefix returns the style to write, if any.
func (c UpdateCommand) Prefix() (Style, bool) {
	return c.Style, c.Kind == CommandPrefix
}

func (c UpdateCommand) String() string {
	if c.Kind == CommandDoNothing {
		return "DoNothing"
	}
	return "Prefix(" + c.Style.String() + ")"
}
