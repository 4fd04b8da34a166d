package hl

import (
	"testing"

	"github.com/diamondburned/cchat-bubble/internal/ui/rich/markup/attrmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeStyle(t *testing.T) {
	t.Cleanup(func() { ChangeStyle(DefaultStyle) })

	assert.NoError(t, ChangeStyle("monokai"))
	assert.Error(t, ChangeStyle("definitely not a style"))
	assert.NoError(t, ChangeStyle(""))
}

func TestSegmentsMonospace(t *testing.T) {
	src := "see: fmt.Println(1)"
	a := attrmap.NewAppendedMap()
	Segments(&a, src, 5, len(src), "go")

	indices := a.Finalize(len(src))
	require.NotEmpty(t, indices)
	assert.Equal(t, 5, indices[0])
	assert.Contains(t, a.Get(5), `font_family="monospace"`)
}

func TestStyleNames(t *testing.T) {
	assert.Contains(t, StyleNames(), DefaultStyle)
}
