package humanize

import (
	"time"

	"github.com/goodsign/monday"
)

const (
	Day  = 24 * time.Hour
	Week = 7 * Day
	Year = 365 * Day
)

// now is swapped in tests.
var now = time.Now

type truncator struct {
	d time.Duration
	s string
}

var longTruncators = []truncator{
	{d: Day, s: "Today at 15:04"},
	{d: Week, s: "Monday at 15:04"},
	{d: -1, s: "15:04 02/01/2006"},
}

// TimeAgoLong formats t relative to now, growing more precise the older t is.
func TimeAgoLong(t time.Time) string {
	return timeAgo(t, longTruncators)
}

// TimeAgoShort formats only the wall clock of t. A zero time formats as
// "--:--".
func TimeAgoShort(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}

	ensureLocale()
	return monday.Format(t.Local(), "15:04", Locale)
}

func timeAgo(t time.Time, truncs []truncator) string {
	t = t.Local()
	ensureLocale()

	trunc := t
	now := now().Local()

	for _, truncator := range truncs {
		trunc = trunc.Truncate(truncator.d)
		now = now.Truncate(truncator.d)

		if trunc.Equal(now) || truncator.d == -1 {
			return monday.Format(t, truncator.s, Locale)
		}
	}

	return ""
}
