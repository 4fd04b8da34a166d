// Package preferences shows every config section in a modal dialog. The
// Appearance page ends with sample bubbles that restyle as colours are typed.
package preferences

import (
	"time"

	"github.com/diamondburned/cchat-bubble/internal/bubble"
	"github.com/diamondburned/cchat-bubble/internal/gts"
	"github.com/diamondburned/cchat-bubble/internal/log"
	"github.com/diamondburned/cchat-bubble/internal/ui/bubbleview"
	"github.com/diamondburned/cchat-bubble/internal/ui/config"
	"github.com/diamondburned/cchat-bubble/internal/ui/primitives"
	"github.com/diamondburned/cchat/text"
	"github.com/gotk3/gotk3/gtk"
	"github.com/pkg/errors"
)

// SampleWidth is the viewport width the sample bubbles are laid out for.
const SampleWidth = 360

type Dialog struct {
	*gtk.Dialog
	stack *gtk.Stack
}

func NewDialog() (*Dialog, error) {
	stack, _ := gtk.StackNew()
	stack.SetTransitionType(gtk.STACK_TRANSITION_TYPE_SLIDE_LEFT_RIGHT)
	stack.Show()

	switcher, _ := gtk.StackSwitcherNew()
	switcher.SetStack(stack)
	switcher.Show()

	h, _ := gtk.HeaderBarNew()
	h.SetShowCloseButton(true)
	h.SetCustomTitle(switcher)
	h.Show()

	d, err := gts.NewModalDialog()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dialog")
	}
	d.SetDefaultSize(SampleWidth+40, 480)
	d.SetTitle("Preferences")
	d.SetTitlebar(h)

	b, _ := d.GetContentArea()
	b.PackStart(stack, true, true, 0)
	b.Show()

	return &Dialog{Dialog: d, stack: stack}, nil
}

// AddPage adds a scrollable page under the switcher.
func (d *Dialog) AddPage(name string, page gtk.IWidget) {
	sw, _ := gtk.ScrolledWindowNew(nil, nil)
	sw.SetPolicy(gtk.POLICY_NEVER, gtk.POLICY_AUTOMATIC)
	sw.Add(page)
	sw.Show()

	d.stack.AddTitled(sw, name, name)
}

// Section lays out the entries as rows of a boxed list, each with the entry
// name on the left and its widget on the right.
func Section(entries []config.Entry) *gtk.ListBox {
	list, _ := gtk.ListBoxNew()
	list.SetSelectionMode(gtk.SELECTION_NONE)
	list.Show()
	primitives.AddClass(list, "frame")

	for _, entry := range entries {
		l, _ := gtk.LabelNew(entry.Name)
		l.SetHExpand(true)
		l.SetXAlign(0)
		l.Show()

		row, _ := gtk.BoxNew(gtk.ORIENTATION_HORIZONTAL, 12)
		row.PackStart(l, true, true, 0)
		row.PackEnd(entry.Value.Construct(), false, false, 0)
		row.Show()
		primitives.SetMargins(row, 6, 6, 12, 12)

		list.Add(row)
	}

	return list
}

// Samples returns a short exchange showing both bubble colours.
func Samples(now time.Time) []bubble.Message {
	me := bubble.User{ID: "me", Name: "You", IsCurrentUser: true}
	them := bubble.User{ID: "them", Name: "Sample"}

	return []bubble.Message{{
		ID:        "sample-1",
		User:      them,
		Text:      text.Rich{Content: "Bubbles change colour as you type."},
		CreatedAt: now.Add(-time.Minute),
	}, {
		ID:        "sample-2",
		User:      me,
		Status:    bubble.StatusRead,
		Text:      text.Rich{Content: "Looks good!"},
		CreatedAt: now,
	}}
}

// samples renders Samples. The bubbles follow the theme stylesheet, so they
// never need to be rendered again.
func samples() gtk.IWidget {
	box, _ := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 0)
	box.Show()

	ctx := bubble.Context{ViewportWidth: SampleWidth}
	msgs := Samples(time.Now())
	hidden := bubble.HideAvatars(msgs)
	renderers := bubbleview.DefaultRenderers(nil, nil)

	for i, msg := range msgs {
		v := bubbleview.NewView(renderers)
		v.Render(ctx, bubbleview.Props{Message: msg, HideAvatar: hidden[i]})
		box.PackStart(v, false, false, 0)
	}

	frame, _ := gtk.FrameNew("Preview")
	frame.Add(box)
	frame.Show()

	return frame
}

func NewPreferenceDialog() (*Dialog, error) {
	dialog, err := NewDialog()
	if err != nil {
		return nil, err
	}

	for i, entries := range config.Sections() {
		if len(entries) == 0 {
			continue
		}

		page, _ := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 12)
		page.PackStart(Section(entries), false, false, 0)
		page.Show()
		primitives.SetMargins(page, 12, 12, 16, 16)

		if config.Section(i) == config.Appearance {
			page.PackStart(samples(), false, false, 0)
		}

		dialog.AddPage(config.Section(i).String(), page)
	}

	return dialog, nil
}

// SpawnPreferenceDialog shows the dialog and saves the config once it closes.
func SpawnPreferenceDialog() {
	p, err := NewPreferenceDialog()
	if err != nil {
		log.Error(err)
		return
	}

	p.Connect("destroy", func() {
		if err := config.Save(); err != nil {
			log.Error(errors.Wrap(err, "failed to save settings"))
		}
	})
	p.Show()
}
