package gts

import (
	"github.com/diamondburned/cchat-bubble/internal/log"
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"
	"github.com/pkg/errors"
)

type stylesheet struct {
	name string
	css  string
}

var stylesheets struct {
	queue  []stylesheet
	screen *gdk.Screen
}

// LoadCSS adds a global stylesheet to the default screen. Stylesheets loaded
// before the application activates are queued and added in order.
func LoadCSS(name, css string) {
	s := stylesheet{name, css}

	if stylesheets.screen == nil {
		stylesheets.queue = append(stylesheets.queue, s)
		return
	}

	s.add(stylesheets.screen)
}

func loadStylesheets() {
	screen, err := gdk.ScreenGetDefault()
	if err != nil {
		log.Error(errors.Wrap(err, "failed to get default screen"))
		return
	}

	stylesheets.screen = screen

	for _, s := range stylesheets.queue {
		s.add(screen)
	}
	stylesheets.queue = nil
}

func (s stylesheet) add(screen *gdk.Screen) {
	prov, _ := gtk.CssProviderNew()
	if err := prov.LoadFromData(s.css); err != nil {
		log.Error(errors.Wrapf(err, "failed to parse CSS in %s", s.name))
		return
	}

	gtk.AddProviderForScreen(screen, prov, uint(gtk.STYLE_PROVIDER_PRIORITY_APPLICATION))
}
