package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Terminal styles.
const (
	StylePlain  = "plain"
	StylePretty = "pretty"
)

// Styles lists the accepted values of terminal.style.
var Styles = []string{StylePlain, StylePretty}

// Terminal writes markdown to a console, optionally rendered with glamour.
type Terminal struct {
	style        string
	glamourStyle string
	wordWrap     int
}

// TerminalOption customises a Terminal.
type TerminalOption func(*Terminal)

// WithGlamourStyle selects a named glamour style ("dark", "light", "notty", ...)
// instead of detecting one from the terminal.
func WithGlamourStyle(name string) TerminalOption {
	return func(t *Terminal) {
		t.glamourStyle = name
	}
}

// WithWordWrap sets the wrap width of pretty output.
func WithWordWrap(width int) TerminalOption {
	return func(t *Terminal) {
		t.wordWrap = width
	}
}

// NewTerminal creates a Terminal for the given style. Unknown styles print plain.
func NewTerminal(style string, opts ...TerminalOption) *Terminal {
	t := &Terminal{style: style, wordWrap: 100}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Print writes markdown to w.
func (t *Terminal) Print(w io.Writer, markdown string) error {
	if t.style != StylePretty {
		if !strings.HasSuffix(markdown, "\n") {
			markdown += "\n"
		}
		_, err := io.WriteString(w, markdown)
		return err
	}

	styleOpt := glamour.WithAutoStyle()
	if t.glamourStyle != "" {
		styleOpt = glamour.WithStandardStyle(t.glamourStyle)
	}
	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(t.wordWrap))
	if err != nil {
		return fmt.Errorf("failed to create terminal renderer: %w", err)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
