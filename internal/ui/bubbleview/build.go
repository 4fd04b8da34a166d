package bubbleview

import (
	"github.com/diamondburned/cchat-bubble/internal/bubble"
	"github.com/diamondburned/cchat-bubble/internal/humanize"
	"github.com/diamondburned/cchat-bubble/internal/ui/primitives"
	"github.com/diamondburned/cchat-bubble/internal/ui/rich/markup"
	"github.com/gotk3/gotk3/gtk"
	"github.com/gotk3/gotk3/pango"
)

// builder turns a bubble.Node tree into widgets for one render.
type builder struct {
	Renderers
	props Props
	// width is the fixed width of the enclosing bubble, or 0.
	width int
	// budget is the room left for the body text in a fixed-width bubble.
	budget int
}

func (b builder) build(n bubble.Node) gtk.IWidget {
	var w gtk.IWidget

	switch n.Kind {
	case bubble.KindRow, bubble.KindHStack:
		w = b.box(gtk.ORIENTATION_HORIZONTAL, n)
	case bubble.KindVStack:
		w = b.box(gtk.ORIENTATION_VERTICAL, n)
	case bubble.KindSpacer:
		w = spacer()
	case bubble.KindAvatar:
		w = b.avatar(n)
	case bubble.KindBubble:
		w = b.bubble(n)
	case bubble.KindGrid:
		w = b.grid(n)
	case bubble.KindText:
		w = b.text(n)
	case bubble.KindTimestamp:
		w = b.timestamp(n)
	case bubble.KindStatus:
		w = b.status(n)
	default:
		w = spacer()
	}

	return w
}

func (b builder) box(o gtk.Orientation, n bubble.Node) *gtk.Box {
	box, _ := gtk.BoxNew(o, 0)
	box.Show()
	setPadding(box, n.Padding)

	for _, child := range n.Children {
		w := b.build(child)
		align(w.ToWidget(), o, n.Align)

		expand := child.Kind == bubble.KindSpacer
		box.PackStart(w, expand, expand, 0)
	}

	return box
}

// align applies the cross-axis alignment of a stack to one of its children.
func align(w *gtk.Widget, o gtk.Orientation, a bubble.Alignment) {
	switch a {
	case bubble.AlignBottom:
		if o == gtk.ORIENTATION_HORIZONTAL {
			w.SetVAlign(gtk.ALIGN_END)
		}
	case bubble.AlignLeading:
		if o == gtk.ORIENTATION_VERTICAL {
			w.SetHAlign(gtk.ALIGN_START)
		}
	case bubble.AlignTrailing:
		if o == gtk.ORIENTATION_VERTICAL {
			w.SetHAlign(gtk.ALIGN_END)
		}
	case bubble.AlignBottomTrailing:
		w.SetHAlign(gtk.ALIGN_END)
		w.SetVAlign(gtk.ALIGN_END)
	}
}

func spacer() *gtk.Box {
	box, _ := gtk.BoxNew(gtk.ORIENTATION_HORIZONTAL, 0)
	box.SetHExpand(true)
	box.Show()
	return box
}

func (b builder) avatar(n bubble.Node) gtk.IWidget {
	w := b.Avatar.RenderAvatar(b.props.Message.User, n.Hidden)

	// Wrap so the collaborator's own margins are left alone.
	box, _ := gtk.BoxNew(gtk.ORIENTATION_HORIZONTAL, 0)
	box.PackStart(w, false, false, 0)
	box.Show()
	setPadding(box, n.Padding)

	return box
}

func (b builder) bubble(n bubble.Node) gtk.IWidget {
	b.width = n.Width

	if n.Width > 0 {
		// Children fill the fixed width so the text wraps inside it.
		n.Align = bubble.AlignDefault
		if stacked(n) {
			b.budget = bubble.TextBudget(n)
		}
	}

	box := b.box(gtk.ORIENTATION_VERTICAL, n)
	box.SetSizeRequest(sizeRequest(n.Width), -1)

	loadTheme()
	primitives.AddClass(box, "message-bubble", schemeClass(n.Scheme))
	if n.Fill {
		primitives.AddClass(box, "filled")
	}

	return box
}

// stacked returns true if the text of a bubble node sits above its timestamp.
// Such text is aligned within its stack and needs an explicit width.
func stacked(n bubble.Node) bool {
	for _, child := range n.Children {
		if child.Kind == bubble.KindVStack {
			return true
		}
	}
	return false
}

func (b builder) grid(n bubble.Node) gtk.IWidget {
	grid := b.Grid.RenderGrid(b.props.Message.Attachments, b.props.OnTapAttachment)
	if n.Priority > 0 {
		// Boxes never shrink a child below its size request.
		grid.ToWidget().SetSizeRequest(bubble.AttachmentsWidth, -1)
	}

	if n.Overlay == nil {
		return grid
	}

	ts := b.build(*n.Overlay)
	align(ts.ToWidget(), gtk.ORIENTATION_VERTICAL, n.Overlay.Align)

	o, _ := gtk.OverlayNew()
	o.Add(grid)
	o.AddOverlay(ts)
	o.Show()

	return o
}

func (b builder) text(n bubble.Node) gtk.IWidget {
	l, _ := gtk.LabelNew("")
	l.SetMarkup(markup.Render(b.props.Message.Text))
	l.SetLineWrap(true)
	l.SetLineWrapMode(pango.WRAP_WORD_CHAR)
	l.SetXAlign(0)
	l.SetSelectable(true)
	l.Show()

	if b.width > 0 {
		// A wrapping label asks for no more than one character, so it fills
		// whatever the bubble has left instead of growing it.
		l.SetMaxWidthChars(1)
		l.SetHExpand(true)
		if b.budget > 0 {
			l.SetSizeRequest(b.budget, -1)
		}
	}

	setPadding(l, n.Padding)
	primitives.AddClass(l, "message-text")

	return l
}

func (b builder) timestamp(n bubble.Node) gtk.IWidget {
	t := b.props.Message.CreatedAt

	l, _ := gtk.LabelNew(b.FormatTime(t))
	l.SetOpacity(n.Opacity)
	l.SetHAlign(gtk.ALIGN_END)
	l.SetVAlign(gtk.ALIGN_END)
	if !t.IsZero() {
		l.SetTooltipText(humanize.TimeAgoLong(t))
	}
	l.Show()

	setPadding(l, n.Padding)
	primitives.AddClass(l, "message-time")

	return l
}

func (b builder) status(n bubble.Node) gtk.IWidget {
	return b.Status.RenderStatus(n.Status, b.props.OnRetry)
}

func schemeClass(s bubble.Scheme) string {
	if s == bubble.SchemeOwn {
		return "own"
	}
	return "other"
}

func sizeRequest(width int) int {
	if width <= 0 {
		return -1
	}
	return width
}

func setPadding(w primitives.Margin4, in bubble.Insets) {
	primitives.SetMargins(w, in.Top, in.Bottom, in.Start, in.End)
}
