package render

import (
	"io"
	"strings"

	"github.com/badele/ansirun/internal/sink"
	"github.com/badele/ansirun/internal/types"
)

// StyleUpdate attaches a command to the fragment it applies to.
type StyleUpdate struct {
	Index   int
	Command types.UpdateCommand
}

// Fragments is an append-only sequence of fragments written with the
// minimum of escape sequences. The run table is built while pushing: a
// fragment whose style equals the previous fragment's style gets no entry
// rather than a DoNothing one. A missing entry and DoNothing render the
// same; DoNothing is only recorded where the requested style changes but
// the terminal state does not.
type Fragments struct {
	items   []Fragment
	updates []StyleUpdate
	cursor  types.StyleDelta
	dialect types.Dialect
}

func NewFragments(capacity int) *Fragments {
	return &Fragments{
		items:   make([]Fragment, 0, capacity),
		updates: make([]StyleUpdate, 0, capacity),
	}
}

// Join collects fragments into a sequence.
func Join(fragments ...Fragment) *Fragments {
	fs := NewFragments(len(fragments))
	for _, f := range fragments {
		fs.Push(f)
	}
	return fs
}

// SetDialect changes how prefixes are spelled. It does not change the run
// table.
func (fs *Fragments) SetDialect(d types.Dialect) {
	fs.dialect = d
}

func (fs *Fragments) Dialect() types.Dialect {
	return fs.dialect
}

func (fs *Fragments) Push(f Fragment) {
	index := len(fs.items)
	fs.items = append(fs.items, f)

	if index > 0 && fs.items[index-1].Style == f.Style {
		return
	}

	delta := types.DeltaNext(fs.cursor, f.Style)
	fs.cursor = delta
	fs.updates = append(fs.updates, StyleUpdate{Index: index, Command: delta.Command()})
}

func (fs *Fragments) Len() int {
	return len(fs.items)
}

func (fs *Fragments) Items() []Fragment {
	return fs.items
}

// Updates returns the run table.
func (fs *Fragments) Updates() []StyleUpdate {
	return fs.updates
}

// Established returns the terminal style once every fragment is written,
// before the trailing reset.
func (fs *Fragments) Established() types.Style {
	return fs.cursor.Established()
}

// Render writes the fragments to s, followed by a reset when the terminal
// is left styled. The first sink error stops the pass and is returned as is.
func (fs *Fragments) Render(s sink.Sink) error {
	table := newRunCursor(fs.updates)

	for i, f := range fs.items {
		if style, ok := table.at(i).Prefix(); ok {
			if err := s.WriteString(style.Prefix(fs.dialect)); err != nil {
				return err
			}
		}
		if err := f.Annotation.wrap(s, f.Content); err != nil {
			return err
		}
	}

	if !fs.Established().IsPlain() {
		return s.WriteString(types.Reset)
	}
	return nil
}

func (fs *Fragments) String() string {
	var sb strings.Builder
	_ = fs.Render(sink.NewTextSink(&sb))
	return sb.String()
}

// WriteBytes renders the fragments to a byte stream.
func (fs *Fragments) WriteBytes(w io.Writer) error {
	return fs.Render(sink.NewByteSink(w))
}

/////////////////////////////////////////////////////////////////////////////
// RUN TABLE SCAN
/////////////////////////////////////////////////////////////////////////////

// runCursor walks the sparse run table alongside the fragment indexes.
// Indexes must be visited in increasing order.
type runCursor struct {
	updates []StyleUpdate
	next    int
}

func newRunCursor(updates []StyleUpdate) *runCursor {
	return &runCursor{updates: updates}
}

// at returns the command to execute before fragment index, or DoNothing
// when the fragment continues the current run.
func (c *runCursor) at(index int) types.UpdateCommand {
	for c.next < len(c.updates) && c.updates[c.next].Index < index {
		c.next++
	}
	if c.next < len(c.updates) && c.updates[c.next].Index == index {
		cmd := c.updates[c.next].Command
		c.next++
		return cmd
	}
	return types.DoNothing()
}
