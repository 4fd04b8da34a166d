package avatar

import (
	"testing"

	"github.com/diamondburned/cchat-bubble/internal/bubble"
	"github.com/gotk3/gotk3/gdk"
	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	assert.Equal(t, "Astolfo", Text(bubble.User{ID: "1", Name: "Astolfo"}))
	assert.Equal(t, "1", Text(bubble.User{ID: "1"}))
}

func TestRendererLoad(t *testing.T) {
	type call struct {
		url  string
		size int
	}
	var calls []call

	r := NewRenderer(Size, LoaderFunc(func(url string, size int) *gdk.Pixbuf {
		calls = append(calls, call{url, size})
		return nil
	}))

	assert.Nil(t, r.load(bubble.User{ID: "1"}))
	assert.Empty(t, calls, "loader called without an avatar URL")

	assert.Nil(t, r.load(bubble.User{ID: "2", AvatarURL: "file:///tmp/a.png"}))
	assert.Equal(t, []call{{"file:///tmp/a.png", Size}}, calls)
}

func TestRendererLoadWithoutLoader(t *testing.T) {
	r := NewRenderer(Size, nil)
	assert.Nil(t, r.load(bubble.User{ID: "1", AvatarURL: "file:///tmp/a.png"}))
}
