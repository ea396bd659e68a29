// Package cli implements the ansirun command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/badele/ansirun/internal/config"
	"github.com/badele/ansirun/internal/observability"
	"github.com/badele/ansirun/internal/types"
)

// ErrMismatch is returned by verify when the optimized output displays
// differently from the input.
var ErrMismatch = errors.New("optimized output differs from input")

// CLI is the kong grammar. Global flags override the configuration file.
type CLI struct {
	Config      string `help:"Configuration file (yaml, toml or json)." short:"c" type:"path"`
	LogLevel    string `help:"Log level: debug, info, warn, error." name:"log-level"`
	LogFormat   string `help:"Log format: json or console." name:"log-format"`
	Order       string `help:"SGR code order: attributes-first or colors-first."`
	LegacyCodes bool   `help:"Zero-pad attribute codes (01;04)." name:"legacy-codes"`
	Encoding    string `help:"Input and output character set: utf8, cp437, cp850, iso-8859-1." short:"e"`

	Render   RenderCmd   `cmd:"" help:"Render a YAML, TOML or JSON fragment document."`
	Optimize OptimizeCmd `cmd:"" help:"Re-encode ANSI input with the minimal escape sequences."`
	Verify   VerifyCmd   `cmd:"" help:"Check that optimized output displays like its input."`
	Delta    DeltaCmd    `cmd:"" help:"Print the escape sequence between two styles."`
	Stats    StatsCmd    `cmd:"" help:"Display token statistics and the savings of optimizing."`
	Text     TextCmd     `cmd:"" help:"Display ANSI input as plain text, as a terminal shows it."`
}

// App is what every command runs against.
type App struct {
	Config  config.Config
	Dialect types.Dialect
	Logger  *zap.Logger
	Stdin   io.Reader
	Stdout  io.Writer
}

// Streams are the process standard streams.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func StdStreams() Streams {
	return Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run parses args and runs the selected command.
func Run(args []string, streams Streams, options ...kong.Option) error {
	var grammar CLI

	options = append([]kong.Option{
		kong.Name("ansirun"),
		kong.Description("Render styled text with the fewest ANSI escape sequences."),
		kong.Writers(streams.Stdout, streams.Stderr),
		kong.UsageOnError(),
	}, options...)

	parser, err := kong.New(&grammar, options...)
	if err != nil {
		return fmt.Errorf("building command line: %w", err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	app, err := grammar.app(streams)
	if err != nil {
		return err
	}
	defer func() { _ = app.Logger.Sync() }()

	app.Logger.Debug("running command",
		zap.String("command", ctx.Command()),
		zap.String("order", app.Config.Render.Order),
		zap.String("encoding", app.Config.Render.Encoding),
	)

	return ctx.Run(app)
}

func (c *CLI) app(streams Streams) (*App, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}

	if c.LogLevel != "" {
		cfg.Logging.Level = c.LogLevel
	}
	if c.LogFormat != "" {
		cfg.Logging.Format = c.LogFormat
	}
	if c.Order != "" {
		cfg.Render.Order = c.Order
	}
	if c.LegacyCodes {
		cfg.Render.LegacyCodes = true
	}
	if c.Encoding != "" {
		cfg.Render.Encoding = c.Encoding
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dialect, err := cfg.Render.Dialect()
	if err != nil {
		return nil, err
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:  cfg,
		Dialect: dialect,
		Logger:  logger,
		Stdin:   streams.Stdin,
		Stdout:  streams.Stdout,
	}, nil
}
