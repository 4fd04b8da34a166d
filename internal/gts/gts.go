// Package gts holds the application singleton and runs the Gtk main loop.
package gts

import (
	"os"

	"github.com/diamondburned/cchat-bubble/internal/gts/throttler"
	"github.com/diamondburned/cchat-bubble/internal/log"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
)

const AppID = "com.github.diamondburned.cchat-bubble"

// Default window size.
const (
	WindowWidth  = 420
	WindowHeight = 640
)

var Args = append([]string{}, os.Args...)

var App struct {
	*gtk.Application
	Window *gtk.ApplicationWindow
	Header *gtk.HeaderBar
}

func init() {
	gtk.Init(&Args)
	App.Application, _ = gtk.ApplicationNew(AppID, 0)
}

// NewModalDialog returns a new modal dialog that's transient for the main
// window.
func NewModalDialog() (*gtk.Dialog, error) {
	d, err := gtk.DialogNew()
	if err != nil {
		return nil, err
	}
	d.SetModal(true)
	d.SetTransientFor(App.Window)

	return d, nil
}

// AddAppAction adds the action "app.<name>" with optional keyboard
// accelerators, such as "<Control>q".
func AddAppAction(name string, call func(), accels ...string) {
	action := glib.SimpleActionNew(name, nil)
	action.Connect("activate", call)
	App.AddAction(action)

	if len(accels) > 0 {
		App.SetAccelsForAction("app."+name, accels)
	}
}

// WindowHeaderer is the content of the main window.
type WindowHeaderer interface {
	Window() gtk.IWidget
	Header() gtk.IWidget
	Close()
}

// Resizer is implemented by a WindowHeaderer that lays out its content by
// width. Resize is called with the allocated width of Window whenever it
// changes, at most throttler.TPS times a second.
type Resizer interface {
	Resize(width int)
}

// Main creates the main window with the content returned by wfn once the
// application activates, then blocks until it quits.
func Main(title string, wfn func() WindowHeaderer) {
	App.Application.Connect("activate", func() {
		loadStylesheets()

		App.Header, _ = gtk.HeaderBarNew()
		App.Header.SetShowCloseButton(true)
		App.Header.SetTitle(title)
		App.Header.Show()

		App.Window, _ = gtk.ApplicationWindowNew(App.Application)
		App.Window.SetDefaultSize(WindowWidth, WindowHeight)
		App.Window.SetTitle(title)
		App.Window.SetTitlebar(App.Header)
		App.Window.Show()

		// wfn may depend on the window and the screen stylesheets.
		w := wfn()
		App.Window.Add(w.Window())
		App.Header.PackEnd(w.Header())

		if r, ok := w.(Resizer); ok {
			onResize(w.Window().ToWidget(), r)
		}

		AddAppAction("quit", App.Window.Destroy, "<Control>q")

		App.Window.Connect("destroy", func() {
			App.Window.Hide()

			// Let the main loop run once so the window is hidden before the
			// closer runs.
			ExecAsync(func() {
				App.Application.Quit()
				w.Close()
			})
		})
	})

	if code := App.Run(Args); code > 0 {
		os.Exit(code)
	}
}

func onResize(content *gtk.Widget, r Resizer) {
	var width int

	t := throttler.New(0, func() { r.Resize(width) })

	content.Connect("size-allocate", func() {
		if w := content.GetAllocatedWidth(); w != width {
			width = w
			t.Trigger()
		}
	})
}

// Async runs fn outside the Gtk main thread, then runs the function it
// returns, if any, in the main thread. The error is logged.
func Async(fn func() (func(), error)) {
	go func() {
		f, err := fn()
		if err != nil {
			log.Error(err)
		}

		if f != nil {
			ExecAsync(f)
		}
	}()
}

// ExecAsync executes function asynchronously in the Gtk main thread.
func ExecAsync(fn func()) {
	glib.IdleAdd(fn)
}
