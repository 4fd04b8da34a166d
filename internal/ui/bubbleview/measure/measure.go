// Package measure measures the single-line width of body text.
package measure

import (
	"github.com/diamondburned/cchat-bubble/internal/ui/primitives"
	"github.com/diamondburned/cchat-bubble/internal/ui/rich/markup"
	"github.com/diamondburned/cchat/text"
	"github.com/gotk3/gotk3/gtk"
)

// MaxCached is the number of measurements kept before the cache is reset.
const MaxCached = 1024

// LabelMeasurer measures text with an unwrapped label styled like the body
// text. It must only be used on the main thread.
type LabelMeasurer struct {
	probe *gtk.Label
	cache map[string]float64
}

// NewLabelMeasurer creates a measurer. The probe label is created lazily.
func NewLabelMeasurer() *LabelMeasurer {
	return &LabelMeasurer{
		cache: make(map[string]float64),
	}
}

// MeasureWidth returns the natural width of rich on a single line. The text is
// measured as the same markup the body label shows, so bold or monospace runs
// count at their real width.
func (m *LabelMeasurer) MeasureWidth(rich text.Rich) float64 {
	if rich.Content == "" {
		return 0
	}

	mk := markup.Render(rich)
	if w, ok := m.cache[mk]; ok {
		return w
	}

	if m.probe == nil {
		m.probe, _ = gtk.LabelNew("")
		m.probe.SetSingleLineMode(true)
		m.probe.SetLineWrap(false)
		primitives.AddClass(m.probe, "message-text")
	}

	m.probe.SetMarkup(mk)
	_, natural := m.probe.GetPreferredWidth()

	if len(m.cache) >= MaxCached {
		m.cache = make(map[string]float64, len(m.cache))
	}

	w := float64(natural)
	m.cache[mk] = w

	return w
}
