// Package avatar draws message author avatars as HdyAvatars. Initials are
// drawn until a Loader provides an image, and whenever it provides none.
package avatar

import (
	"github.com/diamondburned/cchat-bubble/internal/bubble"
	"github.com/diamondburned/cchat-bubble/internal/ui/primitives"
	"github.com/diamondburned/handy"
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"
)

// Size is the default avatar size in pixels.
const Size = 32

// Loader loads avatar images. A nil pixbuf keeps the initials.
type Loader interface {
	LoadAvatar(url string, size int) *gdk.Pixbuf
}

// LoaderFunc is a function Loader.
type LoaderFunc func(url string, size int) *gdk.Pixbuf

func (fn LoaderFunc) LoadAvatar(url string, size int) *gdk.Pixbuf { return fn(url, size) }

// Avatar is a static HdyAvatar container.
type Avatar struct {
	handy.Avatar
	pixbuf *gdk.Pixbuf
	size   int
}

func NewAvatar(size int, text string) *Avatar {
	avatar := Avatar{
		Avatar: *handy.AvatarNew(size, text, true),
		size:   size,
	}
	avatar.Show()

	return &avatar
}

func (a *Avatar) GetSizeRequest() (int, int) {
	return a.size, a.size
}

// SetSizeRequest sets the avatar size. The actual size is min(w, h).
func (a *Avatar) SetSizeRequest(w, h int) {
	var min = w
	if w > h {
		min = h
	}

	a.Avatar.SetSize(min)
	a.Avatar.SetSizeRequest(w, h)
}

// SetFromPixbuf replaces the initials with pb.
func (a *Avatar) SetFromPixbuf(pb *gdk.Pixbuf) {
	a.pixbuf = pb
	a.Avatar.SetImageLoadFunc(a.loadFunc)
}

func (a *Avatar) loadFunc(size int) *gdk.Pixbuf {
	if a.pixbuf == nil {
		a.size = size
		return nil
	}

	if a.pixbuf.GetWidth() != size || a.pixbuf.GetHeight() != size {
		a.size = size

		p, err := a.pixbuf.ScaleSimple(size, size, gdk.INTERP_HYPER)
		if err != nil {
			return a.pixbuf
		}

		a.pixbuf = p
	}

	return a.pixbuf
}

// Text returns the string the initials and the colour are derived from.
func Text(user bubble.User) string {
	if user.Name != "" {
		return user.Name
	}
	return string(user.ID)
}

// Renderer renders avatars of a fixed size.
type Renderer struct {
	Size int
	// Loader may be nil, in which case only initials are drawn.
	Loader Loader
}

func NewRenderer(size int, loader Loader) Renderer {
	return Renderer{Size: size, Loader: loader}
}

// RenderAvatar returns the avatar of user, or a blank box of the same size if
// hidden is true.
func (r Renderer) RenderAvatar(user bubble.User, hidden bool) gtk.IWidget {
	if hidden {
		return Blank(r.Size)
	}

	a := NewAvatar(r.Size, Text(user))
	a.SetVAlign(gtk.ALIGN_END)
	if user.Name != "" {
		a.SetTooltipText(user.Name)
	}
	if p := r.load(user); p != nil {
		a.SetFromPixbuf(p)
	}
	primitives.AddClass(a, "message-avatar")

	return a
}

// load asks the loader for the avatar image of user. Users without an avatar
// URL are never looked up.
func (r Renderer) load(user bubble.User) *gdk.Pixbuf {
	if r.Loader == nil || user.AvatarURL == "" {
		return nil
	}
	return r.Loader.LoadAvatar(user.AvatarURL, r.Size)
}

// Blank returns an empty box taking up the space of an avatar.
func Blank(size int) *gtk.Box {
	b, _ := gtk.BoxNew(gtk.ORIENTATION_HORIZONTAL, 0)
	b.SetSizeRequest(size, size)
	b.Show()
	primitives.AddClass(b, "message-avatar-blank")
	return b
}
