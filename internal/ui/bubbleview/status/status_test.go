package status

import (
	"testing"

	"github.com/diamondburned/cchat-bubble/internal/bubble"
	"github.com/stretchr/testify/assert"
)

func TestIconName(t *testing.T) {
	seen := map[string]bubble.Status{}

	for _, s := range []bubble.Status{
		bubble.StatusSending,
		bubble.StatusSent,
		bubble.StatusRead,
		bubble.StatusFailed,
	} {
		icon := IconName(s)
		assert.NotEmpty(t, icon, s)
		assert.NotEmpty(t, Tooltip(s), s)

		if other, ok := seen[icon]; ok {
			t.Errorf("%v and %v share icon %q", s, other, icon)
		}
		seen[icon] = s
	}

	assert.Empty(t, IconName(bubble.StatusNone))
	assert.Empty(t, Tooltip(bubble.Status(200)))
}
