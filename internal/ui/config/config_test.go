package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempDir(t *testing.T) string {
	d := t.TempDir()
	old := DirPath()
	configDir.path = d
	t.Cleanup(func() { configDir.path = old })
	return d
}

func resetSections(t *testing.T) {
	sections.Lock()
	old := sections.entries
	sections.entries = [sectionLen][]Entry{}
	sections.Unlock()

	t.Cleanup(func() {
		sections.Lock()
		sections.entries = old
		sections.Unlock()
	})
}

func TestSaveRestore(t *testing.T) {
	useTempDir(t)
	resetSections(t)

	var (
		colour  = "#4962FF"
		compact = true
		style   = "monokai"
	)

	AppearanceAdd("Own Bubble Colour", InputEntry(&colour, nil))
	AppearanceAdd("Code Highlight Style", Combo(&style, []string{"monokai", "vim"}, nil))
	LayoutAdd("Compact", Switch(&compact, nil))

	require.NoError(t, Save())

	colour, compact, style = "", false, ""

	require.NoError(t, Restore())
	assert.Equal(t, "#4962FF", colour)
	assert.Equal(t, true, compact)
	assert.Equal(t, "monokai", style)
}

func TestRestoreAppliesChange(t *testing.T) {
	dir := useTempDir(t)
	resetSections(t)

	const file = `{"Layout": {"Compact": true, "Unknown": 1}, "Nope": {}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(file), 0644))

	var applied []bool
	var compact bool
	LayoutAdd("Compact", Switch(&compact, func(v bool) { applied = append(applied, v) }))

	require.NoError(t, Restore())
	assert.True(t, compact)
	assert.Equal(t, []bool{true}, applied)
}

func TestRestoreMissingFile(t *testing.T) {
	useTempDir(t)
	resetSections(t)

	var compact bool
	LayoutAdd("Compact", Switch(&compact, nil))

	assert.NoError(t, Restore())
	assert.False(t, compact)
}

func TestRestoreInvalidValue(t *testing.T) {
	dir := useTempDir(t)
	resetSections(t)

	const file = `{"Layout": {"Compact": "yes"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(file), 0644))

	var compact bool
	LayoutAdd("Compact", Switch(&compact, nil))

	assert.Error(t, Restore())
}

func TestAddReplacesDuplicate(t *testing.T) {
	resetSections(t)

	var a, b bool
	LayoutAdd("Compact", Switch(&a, nil))
	LayoutAdd("Compact", Switch(&b, nil))

	entries := Sections()[Layout]
	require.Len(t, entries, 1)
	assert.Equal(t, "Compact", entries[0].Name)
}

func TestRestoreContinuesPastRejectedValue(t *testing.T) {
	dir := useTempDir(t)
	resetSections(t)

	const file = `{
		"Appearance": {"Own Bubble Colour": "not a colour", "Other Bubble Colour": "#EBEDF0"},
		"Layout": {"Compact": false}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(file), 0644))

	validate := func(v string) error {
		if !strings.HasPrefix(v, "#") {
			return errors.New("not a colour")
		}
		return nil
	}

	var (
		own     = "#4962FF"
		other   = ""
		compact = true
	)
	AppearanceAdd("Own Bubble Colour", InputEntry(&own, validate))
	AppearanceAdd("Other Bubble Colour", InputEntry(&other, validate))
	LayoutAdd("Compact", Switch(&compact, nil))

	err := Restore()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Own Bubble Colour")

	// The rejected value is rolled back; everything after it is restored.
	assert.Equal(t, "#4962FF", own)
	assert.Equal(t, "#EBEDF0", other)
	assert.False(t, compact)
}
