// Package status draws the delivery status of own messages.
package status

import (
	"github.com/diamondburned/cchat-bubble/internal/bubble"
	"github.com/diamondburned/cchat-bubble/internal/ui/primitives"
	"github.com/gotk3/gotk3/gtk"
)

// IconSize is the size of status icons in pixels.
const IconSize = 16

// IconName returns the icon drawn for a status, or an empty string if none.
func IconName(s bubble.Status) string {
	switch s {
	case bubble.StatusSending:
		return "content-loading-symbolic"
	case bubble.StatusSent:
		return "object-select-symbolic"
	case bubble.StatusRead:
		return "emblem-ok-symbolic"
	case bubble.StatusFailed:
		return "view-refresh-symbolic"
	default:
		return ""
	}
}

// Tooltip returns the human-readable description of a status.
func Tooltip(s bubble.Status) string {
	switch s {
	case bubble.StatusSending:
		return "Sending"
	case bubble.StatusSent:
		return "Sent"
	case bubble.StatusRead:
		return "Read"
	case bubble.StatusFailed:
		return "Failed to send. Click to retry."
	default:
		return ""
	}
}

var statusCSS = primitives.PrepareClassCSS("message-status", `
	.message-status {
		margin: 0 4px 8px 4px;
		min-width: 0;
		min-height: 0;
		padding: 2px;
	}
	.message-status.failed {
		color: #E01B24;
	}
`)

// Renderer draws status indicators.
type Renderer struct{}

func NewRenderer() Renderer { return Renderer{} }

// RenderStatus draws s. A failed status is a button invoking onRetry.
func (Renderer) RenderStatus(s bubble.Status, onRetry func()) gtk.IWidget {
	switch s {
	case bubble.StatusSending:
		return sending()
	case bubble.StatusFailed:
		return failed(onRetry)
	}

	img := primitives.NewImageIconPx(IconName(s), IconSize)
	img.SetVAlign(gtk.ALIGN_END)
	img.SetTooltipText(Tooltip(s))
	img.Show()
	statusCSS(img)
	primitives.AddClass(img, s.String())

	return img
}

func sending() gtk.IWidget {
	spin, _ := gtk.SpinnerNew()
	spin.SetSizeRequest(IconSize, IconSize)
	spin.SetVAlign(gtk.ALIGN_END)
	spin.SetTooltipText(Tooltip(bubble.StatusSending))
	spin.Start()
	spin.Show()
	statusCSS(spin)
	primitives.AddClass(spin, "sending")

	return spin
}

func failed(onRetry func()) gtk.IWidget {
	img := primitives.NewImageIconPx(IconName(bubble.StatusFailed), IconSize)
	img.Show()

	b, _ := gtk.ButtonNew()
	b.SetRelief(gtk.RELIEF_NONE)
	b.SetVAlign(gtk.ALIGN_END)
	b.SetTooltipText(Tooltip(bubble.StatusFailed))
	b.Add(img)
	b.Show()
	statusCSS(b)
	primitives.AddClass(b, "failed")

	if onRetry != nil {
		b.Connect("clicked", func() { onRetry() })
	}

	return b
}
