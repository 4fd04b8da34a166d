package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalToFileReplaces(t *testing.T) {
	d := useTempDir(t)

	require.NoError(t, MarshalToFile("test.json", map[string]int{"a": 1}))
	require.NoError(t, MarshalToFile("test.json", map[string]int{"b": 2}))

	var got map[string]int
	require.NoError(t, UnmarshalFromFile("test.json", &got))
	assert.Equal(t, map[string]int{"b": 2}, got)

	files, err := ioutil.ReadDir(d)
	require.NoError(t, err)
	require.Len(t, files, 1, "temp file left behind")
	assert.Equal(t, "test.json", files[0].Name())
}

func TestUnmarshalFromEmptyFile(t *testing.T) {
	d := useTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(d, "empty.json"), []byte("\n"), 0644))

	got := map[string]int{"kept": 1}
	assert.NoError(t, UnmarshalFromFile("empty.json", &got))
	assert.Equal(t, map[string]int{"kept": 1}, got)
}

func TestUnmarshalFromBrokenFile(t *testing.T) {
	d := useTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(d, "broken.json"), []byte("{"), 0644))

	var got map[string]int
	assert.Error(t, UnmarshalFromFile("broken.json", &got))
}
