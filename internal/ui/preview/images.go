package preview

import (
	"fmt"

	"github.com/diamondburned/cchat-bubble/internal/bubble"
	"github.com/diamondburned/cchat-bubble/internal/gts"
	"github.com/diamondburned/cchat-bubble/internal/log"
	"github.com/diamondburned/cchat-bubble/internal/ui/bubbleview/attachgrid"
	"github.com/diamondburned/cchat-bubble/internal/ui/bubbleview/avatar"
	"github.com/diamondburned/cchat-bubble/internal/ui/preview/fixture"
	"github.com/gotk3/gotk3/gdk"
	"github.com/pkg/errors"
)

// imageLoader draws thumbnails and avatars from local files. Thumbnails
// without a URL get a generated placeholder. Remote images are never fetched.
// It is only used on the main thread.
type imageLoader struct {
	cache map[string]*gdk.Pixbuf
}

var (
	_ attachgrid.Thumbnailer = (*imageLoader)(nil)
	_ avatar.Loader          = (*imageLoader)(nil)
)

func newImageLoader() *imageLoader {
	return &imageLoader{
		cache: map[string]*gdk.Pixbuf{},
	}
}

func (l *imageLoader) Thumbnail(att bubble.Attachment, w, h int) *gdk.Pixbuf {
	key := fmt.Sprintf("thumb\x00%s\x00%s\x00%dx%d", att.AttachmentID(), att.ThumbnailURL(), w, h)
	if p, ok := l.cache[key]; ok {
		return p
	}

	var p *gdk.Pixbuf
	if att.ThumbnailURL() == "" {
		p = gts.RenderPixbuf(fixture.Placeholder(att, w, h))
	} else {
		p = l.file(att.ThumbnailURL(), w, h)
	}

	// Remote URLs are cached as nil so the grid draws its icon.
	l.cache[key] = p
	return p
}

func (l *imageLoader) LoadAvatar(url string, size int) *gdk.Pixbuf {
	key := fmt.Sprintf("avatar\x00%s\x00%d", url, size)
	if p, ok := l.cache[key]; ok {
		return p
	}

	// Remote avatars are cached as nil so the initials stay.
	p := l.file(url, size, size)
	l.cache[key] = p
	return p
}

// file loads the local file behind uri scaled to fit w by h. It returns nil
// for remote or unreadable files.
func (l *imageLoader) file(uri string, w, h int) *gdk.Pixbuf {
	path, ok := fixture.LocalPath(uri)
	if !ok {
		return nil
	}

	p, err := gdk.PixbufNewFromFileAtScale(path, w, h, true)
	if err != nil {
		log.Error(errors.Wrapf(err, "failed to load image %q", path))
		return nil
	}

	return p
}
