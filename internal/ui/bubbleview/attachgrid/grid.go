// Package attachgrid draws the attachments of a message in a grid of
// tappable thumbnails.
package attachgrid

import (
	"fmt"
	"time"

	"github.com/diamondburned/cchat-bubble/internal/bubble"
	"github.com/diamondburned/cchat-bubble/internal/ui/primitives"
	"github.com/diamondburned/imgutil"
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"
)

const (
	placeholderIcon = "image-x-generic-symbolic"
	playIcon        = "media-playback-start-symbolic"
	iconSize        = 32
)

// Thumbnailer provides thumbnails for attachments. A nil pixbuf means there
// is no thumbnail and a placeholder icon is drawn instead.
type Thumbnailer interface {
	Thumbnail(att bubble.Attachment, w, h int) *gdk.Pixbuf
}

// ThumbnailerFunc is a function Thumbnailer.
type ThumbnailerFunc func(att bubble.Attachment, w, h int) *gdk.Pixbuf

func (fn ThumbnailerFunc) Thumbnail(att bubble.Attachment, w, h int) *gdk.Pixbuf {
	return fn(att, w, h)
}

var gridCSS = primitives.PrepareClassCSS("message-attachments", `
	.message-attachments .attachment-more {
		color: white;
		font-weight: bold;
		font-size: 1.4em;
		background-color: rgba(0, 0, 0, 0.45);
		border-radius: 12px;
	}
	.message-attachments .attachment-play {
		color: white;
	}
	.message-attachments .attachment-duration {
		color: white;
		font-size: 0.8em;
		padding: 0 4px;
		margin: 4px;
		background-color: rgba(0, 0, 0, 0.6);
		border-radius: 4px;
	}
`)

// Renderer draws attachment grids.
type Renderer struct {
	thumbs Thumbnailer
}

// NewRenderer creates a grid renderer. thumbs may be nil.
func NewRenderer(thumbs Thumbnailer) Renderer {
	return Renderer{thumbs: thumbs}
}

// RenderGrid draws atts. onTap is called with the tapped attachment and may
// be nil.
func (r Renderer) RenderGrid(atts []bubble.Attachment, onTap func(bubble.Attachment)) gtk.IWidget {
	grid, _ := gtk.GridNew()
	grid.SetRowSpacing(Spacing)
	grid.SetColumnSpacing(Spacing)
	grid.SetColumnHomogeneous(true)
	grid.SetSizeRequest(Width, -1)
	grid.Show()
	gridCSS(grid)

	for _, cell := range Arrange(len(atts)) {
		grid.Attach(r.cell(cell, atts[cell.Index], onTap), cell.Col, cell.Row, cell.Span, 1)
	}

	return grid
}

func (r Renderer) cell(c Cell, att bubble.Attachment, onTap func(bubble.Attachment)) gtk.IWidget {
	aw, ah := att.Size()
	w, h := CellSizeOf(c, aw, ah)

	o, _ := gtk.OverlayNew()
	o.Add(r.thumbnail(att, w, h))
	o.Show()

	if d, ok := videoDuration(att); ok {
		play := primitives.NewImageIconPx(playIcon, iconSize)
		play.SetHAlign(gtk.ALIGN_CENTER)
		play.SetVAlign(gtk.ALIGN_CENTER)
		play.Show()
		primitives.AddClass(play, "attachment-play")
		o.AddOverlay(play)

		if s := FormatDuration(d); s != "" && c.More == 0 {
			badge, _ := gtk.LabelNew(s)
			badge.SetHAlign(gtk.ALIGN_END)
			badge.SetVAlign(gtk.ALIGN_END)
			badge.Show()
			primitives.AddClass(badge, "attachment-duration")
			o.AddOverlay(badge)
		}
	}

	if c.More > 0 {
		more, _ := gtk.LabelNew(fmt.Sprintf("+%d", c.More))
		more.SetHExpand(true)
		more.SetVExpand(true)
		more.Show()
		primitives.AddClass(more, "attachment-more")
		o.AddOverlay(more)
	}

	b, _ := gtk.ButtonNew()
	b.SetRelief(gtk.RELIEF_NONE)
	b.SetSizeRequest(w, h)
	b.SetTooltipText(att.FullURL())
	b.Add(o)
	b.Show()

	if onTap != nil {
		b.Connect("clicked", func() { onTap(att) })
	}

	return b
}

func (r Renderer) thumbnail(att bubble.Attachment, w, h int) gtk.IWidget {
	if r.thumbs != nil {
		if p := r.thumbs.Thumbnail(att, w, h); p != nil {
			// Fit the thumbnail into the cell without stretching it.
			pw, ph := imgutil.MaxSize(p.GetWidth(), p.GetHeight(), w, h)
			if pw != p.GetWidth() || ph != p.GetHeight() {
				if scaled, err := p.ScaleSimple(pw, ph, gdk.INTERP_BILINEAR); err == nil {
					p = scaled
				}
			}

			img, _ := gtk.ImageNewFromPixbuf(p)
			img.SetSizeRequest(w, h)
			img.Show()
			return img
		}
	}

	img := primitives.NewImageIconPx(placeholderIcon, iconSize)
	img.SetSizeRequest(w, h)
	img.Show()
	return img
}

// videoDuration returns the duration of a video attachment and whether att is
// a video at all.
func videoDuration(att bubble.Attachment) (time.Duration, bool) {
	switch att := att.(type) {
	case bubble.VideoAttachment:
		return att.Duration, true
	case *bubble.VideoAttachment:
		return att.Duration, true
	default:
		return 0, false
	}
}
