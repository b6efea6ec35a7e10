package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockLogger_SharedSink(t *testing.T) {
	m := NewMockLogger()
	child := m.WithField(FieldCategory, "food").WithError(errors.New("boom"))

	m.Info("parent")
	child.Warn("child", F(FieldCount, 2))

	entries := m.Entries()
	assert.Len(t, entries, 2)
	assert.True(t, m.HasEntry("INFO", "parent"))
	assert.True(t, m.HasEntry("WARN", "child"))

	warn := m.EntriesByLevel("WARN")
	assert.Len(t, warn, 1)
	assert.EqualError(t, warn[0].Error, "boom")
	assert.Equal(t, []Field{{Key: FieldCategory, Value: "food"}, {Key: FieldCount, Value: 2}}, warn[0].Fields)
}

func TestMockLogger_ZeroValueUsable(t *testing.T) {
	var m MockLogger
	m.Error("still recorded")
	assert.True(t, m.HasEntry("ERROR", "still recorded"))
}
