package autoscroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtBottom(t *testing.T) {
	assert.True(t, AtBottom(600, 1000, 400))
	assert.True(t, AtBottom(599.5, 1000, 400))
	assert.False(t, AtBottom(500, 1000, 400))

	// Content shorter than the view is always at the bottom.
	assert.True(t, AtBottom(0, 300, 400))
}
