package preview

import (
	"strings"

	"github.com/diamondburned/cchat-bubble/internal/gts"
	"github.com/diamondburned/cchat-bubble/internal/log"
	"github.com/diamondburned/cchat-bubble/internal/ui/config/preferences"
	"github.com/diamondburned/cchat-bubble/internal/ui/primitives"
	"github.com/gotk3/gotk3/gtk"
)

func newHeader() *gtk.MenuButton {
	gts.AddAppAction("preferences", preferences.SpawnPreferenceDialog, "<Control>comma")
	gts.AddAppAction("logs", spawnLogDialog, "<Control>l")

	b := primitives.NewMenuButton("open-menu-symbolic",
		primitives.MenuItem{Label: "Preferences", Action: "app.preferences"},
		primitives.MenuItem{Label: "Logs", Action: "app.logs"},
		primitives.MenuItem{Label: "Quit", Action: "app.quit"},
	)
	b.Show()

	return b
}

func spawnLogDialog() {
	entries := log.Entries()
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = entry.String()
	}

	buf, _ := gtk.TextBufferNew(nil)
	buf.SetText(strings.Join(lines, "\n"))

	view, _ := gtk.TextViewNewWithBuffer(buf)
	view.SetEditable(false)
	view.SetCursorVisible(false)
	view.SetMonospace(true)
	view.SetWrapMode(gtk.WRAP_WORD_CHAR)
	view.Show()

	sw, _ := gtk.ScrolledWindowNew(nil, nil)
	sw.SetVExpand(true)
	sw.Add(view)
	sw.Show()

	d, err := gts.NewModalDialog()
	if err != nil {
		log.Error(err)
		return
	}
	d.SetTitle("Logs")
	d.SetDefaultSize(500, 400)

	c, _ := d.GetContentArea()
	c.Add(sw)

	d.Show()
}
