// Package report renders tabular results as markdown, json or yaml, prints
// them to the terminal and saves summaries to files.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fjacquet/expense-tracker/internal/fileutils"
	"fjacquet/expense-tracker/internal/logging"

	md "github.com/nao1215/markdown"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the accepted values of report.format and --format.
var Formats = []string{FormatTable, FormatJSON, FormatYAML}

// Generator renders tables and writes them to the terminal or to files in its
// output directory.
type Generator struct {
	dir      string
	format   string
	terminal *Terminal
	logger   logging.Logger
}

// NewGenerator creates a Generator. format is the default used by Print and
// Save; a nil terminal prints markdown as is.
func NewGenerator(dir, format string, terminal *Terminal, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("warn", "text")
	}
	if format == "" {
		format = FormatTable
	}
	if terminal == nil {
		terminal = NewTerminal(StylePlain)
	}
	return &Generator{
		dir:      dir,
		format:   format,
		terminal: terminal,
		logger:   logger.WithField("component", "report"),
	}
}

// Format returns the default output format.
func (g *Generator) Format() string {
	return g.format
}

// Render renders the table in the given format.
func (g *Generator) Render(t Table, format string) ([]byte, error) {
	switch format {
	case FormatTable:
		return g.renderMarkdown(t)
	case FormatJSON:
		return g.renderJSON(t)
	case FormatYAML:
		return g.renderYAML(t)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Print renders the table and writes it to w. An empty format means the
// default one. Markdown goes through the terminal styling.
func (g *Generator) Print(w io.Writer, t Table, format string) error {
	if format == "" {
		format = g.format
	}
	out, err := g.Render(t, format)
	if err != nil {
		return err
	}
	if format == FormatTable {
		return g.terminal.Print(w, string(out))
	}
	_, err = w.Write(out)
	return err
}

// Save writes the table, in the default format, to filename inside the output
// directory and returns the path written.
func (g *Generator) Save(t Table, filename string) (string, error) {
	out, err := g.Render(t, g.format)
	if err != nil {
		return "", err
	}

	path := filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(g.dir, filename)
	}
	if err := fileutils.WriteFile(path, out, fileutils.PermissionReportFile); err != nil {
		g.logger.WithError(err).Error("Failed to save report", logging.F(logging.FieldFile, path))
		return "", fmt.Errorf("failed to save report: %w", err)
	}

	g.logger.Info("Saved report",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldFormat, g.format),
		logging.F(logging.FieldCount, len(t.Rows)))
	return path, nil
}

func (g *Generator) renderMarkdown(t Table) ([]byte, error) {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cellEscaper.Replace(cell)
		}
		rows = append(rows, cells)
	}
	doc.Table(md.TableSet{
		Header:    t.Headers,
		Rows:      rows,
		Alignment: t.Alignment,
	})
	return []byte(doc.String()), nil
}

// cellEscaper keeps user text inside its table cell: a pipe would split the
// cell and a line break would end the row.
var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

func (g *Generator) renderJSON(t Table) ([]byte, error) {
	out, err := json.MarshalIndent(t.Records(), "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func (g *Generator) renderYAML(t Table) ([]byte, error) {
	out, err := yaml.Marshal(t.Records())
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}
