package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/badele/ansirun/internal/document"
	"github.com/badele/ansirun/internal/importer/ansi"
	"github.com/badele/ansirun/internal/render"
	"github.com/badele/ansirun/internal/screen"
	"github.com/badele/ansirun/internal/sink"
	"github.com/badele/ansirun/internal/types"
)

/////////////////////////////////////////////////////////////////////////////
// RENDER
/////////////////////////////////////////////////////////////////////////////

type RenderCmd struct {
	Document string `arg:"" help:"Fragment document." type:"path"`
	Table    bool   `help:"Display the run table instead of the output." short:"t"`
}

func (c *RenderCmd) Run(app *App) error {
	doc, err := document.Load(c.Document, app.Logger)
	if err != nil {
		return err
	}
	fragments, err := doc.Build()
	if err != nil {
		return fmt.Errorf("building %s: %w", c.Document, err)
	}

	return app.output(fragments, c.Table)
}

/////////////////////////////////////////////////////////////////////////////
// OPTIMIZE
/////////////////////////////////////////////////////////////////////////////

type OptimizeCmd struct {
	File  string `arg:"" optional:"" help:"ANSI file, stdin when absent." type:"path"`
	Table bool   `help:"Display the run table instead of the output." short:"t"`
}

func (c *OptimizeCmd) Run(app *App) error {
	data, name, err := readInput(c.File, app.Stdin)
	if err != nil {
		return err
	}

	result, err := ansi.Import(data, app.Config.Render.Encoding, app.Logger)
	if err != nil {
		return fmt.Errorf("importing %s: %w", name, err)
	}

	return app.output(result.Fragments, c.Table)
}

func (app *App) output(fragments []render.Fragment, table bool) error {
	fs := app.join(fragments)

	if table {
		return writeRunTable(app.Stdout, fs)
	}

	out, err := sink.NewEncodedSink(app.Stdout, app.Config.Render.Encoding)
	if err != nil {
		return err
	}
	return fs.Render(out)
}

func (app *App) join(fragments []render.Fragment) *render.Fragments {
	fs := render.Join(fragments...)
	fs.SetDialect(app.Dialect)
	return fs
}

/////////////////////////////////////////////////////////////////////////////
// VERIFY
/////////////////////////////////////////////////////////////////////////////

type VerifyCmd struct {
	File  string `arg:"" optional:"" help:"ANSI file, stdin when absent." type:"path"`
	Width int    `help:"Screen width, the configured width when 0." short:"w"`
}

func (c *VerifyCmd) Run(app *App) error {
	data, name, err := readInput(c.File, app.Stdin)
	if err != nil {
		return err
	}

	input, err := ansi.Import(data, app.Config.Render.Encoding, app.Logger)
	if err != nil {
		return fmt.Errorf("importing %s: %w", name, err)
	}

	optimized := app.join(input.Fragments).String()
	output, err := ansi.Import([]byte(optimized), "utf8", app.Logger)
	if err != nil {
		return fmt.Errorf("importing optimized output: %w", err)
	}

	width := c.Width
	if width <= 0 {
		width = app.Config.Screen.Width
	}
	height := max(screen.Lines(input.Fragments, width), screen.Lines(output.Fragments, width))

	want, err := screen.Paint(input.Fragments, width, height)
	if err != nil {
		return err
	}
	defer want.Close()

	got, err := screen.Paint(output.Fragments, width, height)
	if err != nil {
		return err
	}
	defer got.Close()

	mismatches := screen.Diff(want, got)
	app.Logger.Info("verified",
		zap.String("input", name),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("mismatches", len(mismatches)),
	)

	if len(mismatches) == 0 {
		fmt.Fprintf(app.Stdout, "OK: %s displays the same on %dx%d (%d -> %d bytes)\n",
			name, width, height, len(data), len(optimized))
		return nil
	}

	for i, m := range mismatches {
		if i >= 10 {
			fmt.Fprintf(app.Stdout, "... %d more\n", len(mismatches)-i)
			break
		}
		fmt.Fprintln(app.Stdout, m.String())
	}
	return fmt.Errorf("%w: %d cells", ErrMismatch, len(mismatches))
}

/////////////////////////////////////////////////////////////////////////////
// TEXT
/////////////////////////////////////////////////////////////////////////////

type TextCmd struct {
	File  string `arg:"" optional:"" help:"ANSI file, stdin when absent." type:"path"`
	Width int    `help:"Screen width, the configured width when 0." short:"w"`
}

func (c *TextCmd) Run(app *App) error {
	data, name, err := readInput(c.File, app.Stdin)
	if err != nil {
		return err
	}

	result, err := ansi.Import(data, app.Config.Render.Encoding, app.Logger)
	if err != nil {
		return fmt.Errorf("importing %s: %w", name, err)
	}

	width := c.Width
	if width <= 0 {
		width = app.Config.Screen.Width
	}

	s, err := screen.Paint(result.Fragments, width, screen.Lines(result.Fragments, width))
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = io.WriteString(app.Stdout, s.Text())
	return err
}

/////////////////////////////////////////////////////////////////////////////
// DELTA
/////////////////////////////////////////////////////////////////////////////

type DeltaCmd struct {
	From string `arg:"" help:"Current style, e.g. \"bold,fg=green\"."`
	To   string `arg:"" help:"Wanted style."`
}

func (c *DeltaCmd) Run(app *App) error {
	from, err := document.ParseStyle(c.From)
	if err != nil {
		return err
	}
	to, err := document.ParseStyle(c.To)
	if err != nil {
		return err
	}

	delta := types.ComputeDelta(from, to)

	fmt.Fprintf(app.Stdout, "from:     %s\n", from)
	fmt.Fprintf(app.Stdout, "to:       %s\n", to)
	fmt.Fprintf(app.Stdout, "command:  %s\n", delta.Command())
	if style, ok := delta.Command().Prefix(); ok {
		codes := style.Codes(app.Dialect)
		if style.ResetBefore {
			codes = append([]string{"0"}, codes...)
		}
		fmt.Fprintf(app.Stdout, "codes:    %s\n", strings.Join(ansi.DescribeSGR(codes), ", "))
		fmt.Fprintf(app.Stdout, "sequence: %s\n", quote(style.Prefix(app.Dialect)))
	} else {
		fmt.Fprintln(app.Stdout, "sequence: (none)")
	}
	return nil
}

/////////////////////////////////////////////////////////////////////////////
// STATS
/////////////////////////////////////////////////////////////////////////////

type StatsCmd struct {
	File string `arg:"" optional:"" help:"ANSI file, stdin when absent." type:"path"`
	JSON bool   `help:"Display statistics as JSON." short:"j"`
}

func (c *StatsCmd) Run(app *App) error {
	data, name, err := readInput(c.File, app.Stdin)
	if err != nil {
		return err
	}

	result, err := ansi.Import(data, app.Config.Render.Encoding, app.Logger)
	if err != nil {
		return fmt.Errorf("importing %s: %w", name, err)
	}

	if c.JSON {
		out, err := result.Stats.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(app.Stdout, out)
		return nil
	}

	fs := app.join(result.Fragments)
	var optimized bytes.Buffer
	out, err := sink.NewEncodedSink(&optimized, app.Config.Render.Encoding)
	if err != nil {
		return err
	}
	if err := fs.Render(out); err != nil {
		return err
	}

	displayStats(app.Stdout, result.Stats, optimizedStats{
		Fragments: fs.Len(),
		Updates:   len(fs.Updates()),
		Bytes:     optimized.Len(),
	})
	return nil
}

// quote shows escape sequences with a readable ESC.
func quote(s string) string {
	q := fmt.Sprintf("%q", s)
	return strings.ReplaceAll(q, `\x1b`, "ESC")
}
