// Package bubbleview renders a single chat message bubble in GTK. The layout
// is decided by package bubble; this package only turns its visual tree into
// widgets and wires the callbacks.
package bubbleview

import (
	"time"

	"github.com/diamondburned/cchat-bubble/internal/bubble"
	"github.com/diamondburned/cchat-bubble/internal/humanize"
	"github.com/diamondburned/cchat-bubble/internal/ui/bubbleview/attachgrid"
	"github.com/diamondburned/cchat-bubble/internal/ui/bubbleview/avatar"
	"github.com/diamondburned/cchat-bubble/internal/ui/bubbleview/measure"
	"github.com/diamondburned/cchat-bubble/internal/ui/bubbleview/status"
	"github.com/diamondburned/cchat-bubble/internal/ui/primitives"
	"github.com/gotk3/gotk3/gtk"
)

// AvatarRenderer draws the avatar of a message author. A hidden avatar must
// take up the same space as a visible one.
type AvatarRenderer interface {
	RenderAvatar(user bubble.User, hidden bool) gtk.IWidget
}

// GridRenderer draws the attachments of a message. onTap is called with the
// attachment that was activated.
type GridRenderer interface {
	RenderGrid(atts []bubble.Attachment, onTap func(bubble.Attachment)) gtk.IWidget
}

// StatusRenderer draws the delivery status of an own message.
type StatusRenderer interface {
	RenderStatus(s bubble.Status, onRetry func()) gtk.IWidget
}

// Renderers are the collaborators a View delegates to.
type Renderers struct {
	Avatar   AvatarRenderer
	Grid     GridRenderer
	Status   StatusRenderer
	Measurer bubble.Measurer
	// FormatTime formats the timestamp label.
	FormatTime func(time.Time) string
}

// DefaultRenderers returns the stock collaborators. Attachment thumbnails are
// drawn by thumbs and avatar images by avatars. Either may be nil, leaving
// placeholders and initials.
func DefaultRenderers(thumbs attachgrid.Thumbnailer, avatars avatar.Loader) Renderers {
	return Renderers{
		Avatar:     avatar.NewRenderer(avatar.Size, avatars),
		Grid:       attachgrid.NewRenderer(thumbs),
		Status:     status.NewRenderer(),
		Measurer:   measure.NewLabelMeasurer(),
		FormatTime: humanize.TimeAgoShort,
	}
}

// withDefaults fills the missing collaborators of r with the stock ones.
func (r Renderers) withDefaults() Renderers {
	def := DefaultRenderers(nil, nil)

	if r.Avatar == nil {
		r.Avatar = def.Avatar
	}
	if r.Grid == nil {
		r.Grid = def.Grid
	}
	if r.Status == nil {
		r.Status = def.Status
	}
	if r.Measurer == nil {
		r.Measurer = def.Measurer
	}
	if r.FormatTime == nil {
		r.FormatTime = def.FormatTime
	}

	return r
}

// Props are the inputs of a single render.
type Props struct {
	Message    bubble.Message
	HideAvatar bool

	OnTapAttachment func(bubble.Attachment)
	OnRetry         func()
}

// View is a message bubble. It holds no state besides its children, which
// are rebuilt on every Render.
type View struct {
	*gtk.Box
	renderers Renderers
}

// NewView creates an empty view. Nil collaborators in r are replaced with the
// stock ones.
func NewView(r Renderers) *View {
	b, _ := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 0)
	b.Show()
	primitives.AddClass(b, "message-row")

	return &View{
		Box:       b,
		renderers: r.withDefaults(),
	}
}

// Render lays out the props under the given context and replaces the
// children of the view.
func (v *View) Render(ctx bubble.Context, p Props) {
	tree := bubble.Render(p.Message, p.HideAvatar, ctx, v.renderers.Measurer)

	if p.OnTapAttachment == nil {
		p.OnTapAttachment = func(bubble.Attachment) {}
	}
	if p.OnRetry == nil {
		p.OnRetry = func() {}
	}

	b := builder{Renderers: v.renderers, props: p}
	primitives.ReplaceChildren(v.Box, b.build(tree))
}
