package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTerminal(StylePlain).Print(&buf, "| a |"))
	assert.Equal(t, "| a |\n", buf.String())
}

func TestTerminal_Pretty(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(StylePretty, WithGlamourStyle("notty"), WithWordWrap(80))

	require.NoError(t, term.Print(&buf, "| Category | Total Expense |\n|---|---:|\n| groceries | 30 |\n"))
	assert.Contains(t, buf.String(), "groceries")
	assert.Contains(t, buf.String(), "Total Expense")
}
