// Package primitives has the small widget helpers shared by the views.
package primitives

import (
	"path/filepath"
	"runtime"

	"github.com/diamondburned/cchat-bubble/internal/log"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
	"github.com/pkg/errors"
)

// ReplaceChildren destroys every child of box and packs w in their place.
func ReplaceChildren(box *gtk.Box, w gtk.IWidget) {
	box.GetChildren().Foreach(func(child interface{}) {
		child.(gtk.IWidget).ToWidget().Destroy()
	})
	box.PackStart(w, false, false, 0)
}

type StyleContexter interface {
	GetStyleContext() (*gtk.StyleContext, error)
}

func AddClass(styleCtx StyleContexter, classes ...string) {
	var style, _ = styleCtx.GetStyleContext()
	for _, class := range classes {
		style.AddClass(class)
	}
}

// Margin4 sets the margins of all four sides.
type Margin4 interface {
	SetMarginTop(int)
	SetMarginBottom(int)
	SetMarginStart(int)
	SetMarginEnd(int)
}

var _ Margin4 = (*gtk.Widget)(nil)

func SetMargins(w Margin4, top, bottom, start, end int) {
	w.SetMarginTop(top)
	w.SetMarginBottom(bottom)
	w.SetMarginStart(start)
	w.SetMarginEnd(end)
}

// NewImageIconPx returns a square image of the named icon at a pixel size.
func NewImageIconPx(icon string, sizepx int) *gtk.Image {
	img, _ := gtk.ImageNewFromIconName(icon, gtk.ICON_SIZE_BUTTON)
	img.SetPixelSize(sizepx)
	img.SetSizeRequest(sizepx, sizepx)
	return img
}

// MenuItem is an entry of a menu button: a label and the detailed action it
// activates, such as "app.quit".
type MenuItem struct {
	Label  string
	Action string
}

// NewMenuButton creates an icon button that pops up a menu of items.
func NewMenuButton(icon string, items ...MenuItem) *gtk.MenuButton {
	menu := glib.MenuNew()
	for _, item := range items {
		menu.Append(item.Label, item.Action)
	}

	img, _ := gtk.ImageNewFromIconName(icon, gtk.ICON_SIZE_SMALL_TOOLBAR)
	img.Show()

	b, _ := gtk.MenuButtonNew()
	b.SetMenuModel(&menu.MenuModel)
	b.Add(img)

	return b
}

// PrepareClassCSS returns a function that attaches the stylesheet and adds the
// class to a widget. The stylesheet is parsed on first use, which must be on
// the main thread.
func PrepareClassCSS(class, css string) (attach func(StyleContexter)) {
	var prov *gtk.CssProvider

	return func(ctx StyleContexter) {
		if prov == nil {
			prov = parseCSS(css, 2)
		}

		s, _ := ctx.GetStyleContext()
		s.AddProvider(prov, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
		s.AddClass(class)
	}
}

// parseCSS parses css, logging errors against the caller skip frames up.
func parseCSS(css string, skip int) *gtk.CssProvider {
	p, _ := gtk.CssProviderNew()
	if err := p.LoadFromData(css); err != nil {
		_, fn, line, _ := runtime.Caller(skip)
		log.Error(errors.Wrapf(err, "CSS fail at %s:%d", filepath.Base(fn), line))
	}
	return p
}
