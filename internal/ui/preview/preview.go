// Package preview is a window showing a conversation of message bubbles. It
// re-lays out every bubble when it is resized.
package preview

import (
	"time"

	"github.com/diamondburned/cchat-bubble/internal/bubble"
	"github.com/diamondburned/cchat-bubble/internal/gts"
	"github.com/diamondburned/cchat-bubble/internal/log"
	"github.com/diamondburned/cchat-bubble/internal/ui/bubbleview"
	"github.com/diamondburned/cchat-bubble/internal/ui/config"
	"github.com/diamondburned/cchat-bubble/internal/ui/preview/fixture"
	"github.com/diamondburned/cchat-bubble/internal/ui/primitives"
	"github.com/diamondburned/cchat-bubble/internal/ui/primitives/autoscroll"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
	"github.com/pkg/errors"
	"github.com/skratchdot/open-golang/open"
)

const (
	// DefaultWidth is the viewport width assumed before the first allocation.
	DefaultWidth = 420
	// RetryDelay is how long a retried message stays in the sending state.
	RetryDelay = 1500 * time.Millisecond
)

var layout struct {
	compact  bool
	onChange func()
}

func init() {
	layout.compact = true

	gts.LoadCSS("preview", `
		.message-row:hover {
			background-color: alpha(@theme_fg_color, 0.03);
		}
	`)

	config.LayoutAdd("Compact Consecutive Messages", config.Switch(
		&layout.compact,
		func(bool) {
			if layout.onChange != nil {
				layout.onChange()
			}
		},
	))
}

type Window struct {
	*autoscroll.ScrolledWindow
	list   *gtk.Box
	header *gtk.MenuButton

	renderers bubbleview.Renderers
	width     int

	messages []bubble.Message
	views    []*bubbleview.View
}

var (
	_ gts.WindowHeaderer = (*Window)(nil)
	_ gts.Resizer        = (*Window)(nil)
)

// New creates the window with the fixture messages.
func New() *Window {
	msgs, err := fixture.Load(time.Now())
	if err != nil {
		log.Warn(errors.Wrap(err, "using the builtin conversation"))
		msgs = fixture.Builtin(time.Now())
	}

	list, _ := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 0)
	list.SetVAlign(gtk.ALIGN_END)
	primitives.SetMargins(list, 0, 8, 0, 0)
	list.Show()

	sw := autoscroll.New()
	sw.Add(list)
	sw.Show()

	images := newImageLoader()

	w := &Window{
		ScrolledWindow: sw,
		list:           list,
		header:         newHeader(),
		renderers:      bubbleview.DefaultRenderers(images, images),
		messages:       msgs,
	}

	w.views = make([]*bubbleview.View, len(msgs))
	for i := range msgs {
		w.views[i] = bubbleview.NewView(w.renderers)
		list.PackStart(w.views[i], false, false, 0)
	}

	layout.onChange = w.renderAll

	w.renderAll()

	return w
}

func (w *Window) Window() gtk.IWidget { return w.ScrolledWindow }
func (w *Window) Header() gtk.IWidget { return w.header }

// Resize lays out every bubble again for the new width.
func (w *Window) Resize(width int) {
	w.width = width
	w.renderAll()
}

// Close saves the config.
func (w *Window) Close() {
	if err := config.Save(); err != nil {
		log.Error(err)
	}
}

func (w *Window) context() bubble.Context {
	width := w.width
	if width <= 0 {
		width = DefaultWidth
	}
	return bubble.Context{ViewportWidth: float64(width)}
}

func (w *Window) hidden() []bool {
	if layout.compact {
		return bubble.HideAvatars(w.messages)
	}
	return make([]bool, len(w.messages))
}

func (w *Window) renderAll() {
	ctx := w.context()
	hidden := w.hidden()

	for i := range w.views {
		w.views[i].Render(ctx, w.props(i, hidden[i]))
	}
}

func (w *Window) render(i int) {
	w.views[i].Render(w.context(), w.props(i, w.hidden()[i]))
}

func (w *Window) props(i int, hide bool) bubbleview.Props {
	return bubbleview.Props{
		Message:         w.messages[i],
		HideAvatar:      hide,
		OnTapAttachment: openAttachment,
		OnRetry:         func() { w.retry(i) },
	}
}

// retry pretends to resend the message at i.
func (w *Window) retry(i int) {
	if w.messages[i].Status != bubble.StatusFailed {
		return
	}

	log.Printlnf("Retrying message %s", w.messages[i].ID)

	w.messages[i].Status = bubble.StatusSending
	w.render(i)

	glib.TimeoutAdd(uint(RetryDelay/time.Millisecond), func() bool {
		w.messages[i].Status = bubble.StatusSent
		w.render(i)
		return false
	})
}

func openAttachment(att bubble.Attachment) {
	u := att.FullURL()
	if u == "" {
		log.Printlnf("Attachment %s has no URL", att.AttachmentID())
		return
	}

	gts.Async(func() (func(), error) {
		return nil, errors.Wrap(open.Start(u), "failed to open attachment")
	})
}
