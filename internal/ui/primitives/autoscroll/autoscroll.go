// Package autoscroll keeps a scrolled window pinned to its bottom edge while
// its content grows, like a chat log, unless the user has scrolled away.
package autoscroll

import "github.com/gotk3/gotk3/gtk"

// Tolerance is how far from the bottom, in pixels, still counts as bottomed.
const Tolerance = 1

type ScrolledWindow struct {
	*gtk.ScrolledWindow
	vadj   *gtk.Adjustment
	pinned bool
}

func New() *ScrolledWindow {
	sw, _ := gtk.ScrolledWindowNew(nil, nil)
	sw.SetPolicy(gtk.POLICY_NEVER, gtk.POLICY_AUTOMATIC)

	s := &ScrolledWindow{
		ScrolledWindow: sw,
		vadj:           sw.GetVAdjustment(),
		pinned:         true,
	}

	// changed is emitted when either the content or the viewport is resized.
	s.vadj.Connect("changed", func() {
		if s.pinned {
			s.ScrollToBottom()
		}
	})
	s.vadj.Connect("value-changed", func() {
		s.pinned = AtBottom(s.vadj.GetValue(), s.vadj.GetUpper(), s.vadj.GetPageSize())
	})

	return s
}

// Pinned returns true if the window follows the bottom edge.
func (s *ScrolledWindow) Pinned() bool {
	return s.pinned
}

func (s *ScrolledWindow) ScrollToBottom() {
	s.vadj.SetValue(s.vadj.GetUpper() - s.vadj.GetPageSize())
}

// AtBottom returns true if a view of height page scrolled to value shows the
// end of content of height upper.
func AtBottom(value, upper, page float64) bool {
	return upper-page-value <= Tolerance
}
