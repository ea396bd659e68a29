// Package document loads fragment lists described in YAML, TOML or JSON.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/badele/ansirun/internal/render"
)

var ErrUnknownFormat = errors.New("unknown document format")

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Document is a list of fragment entries.
type Document struct {
	Fragments []Entry `yaml:"fragments" toml:"fragments" json:"fragments"`
}

// Entry is one fragment. Title entries set the terminal title and ignore
// Text and Link.
type Entry struct {
	Text  string `yaml:"text" toml:"text" json:"text"`
	Style string `yaml:"style" toml:"style" json:"style"`
	Link  string `yaml:"link" toml:"link" json:"link"`
	Title string `yaml:"title" toml:"title" json:"title"`
}

// Load reads and parses the document at path.
//
// Precondition: path has a .yaml, .yml, .toml or .json extension.
// Postcondition: Returns the parsed document or a non-nil error.
func Load(path string, logger *zap.Logger) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	logger.Debug("document loaded",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Int("fragments", len(doc.Fragments)),
	)

	return doc, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &doc, nil
}

// Build converts the entries to fragments.
func (d *Document) Build() ([]render.Fragment, error) {
	fragments := make([]render.Fragment, 0, len(d.Fragments))

	for i, e := range d.Fragments {
		style, err := ParseStyle(e.Style)
		if err != nil {
			return nil, fmt.Errorf("fragment %d: %w", i+1, err)
		}

		if e.Title != "" {
			title := render.NewTitle(render.Text(e.Title))
			title.Style = style
			fragments = append(fragments, title)
			continue
		}

		f := render.Paint(style, render.Text(e.Text))
		if e.Link != "" {
			f = f.Hyperlink(render.Text(e.Link))
		}
		fragments = append(fragments, f)
	}

	return fragments, nil
}
