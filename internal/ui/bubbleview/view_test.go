package bubbleview

import (
	"testing"
	"time"

	"github.com/diamondburned/cchat-bubble/internal/bubble"
	"github.com/diamondburned/cchat/text"
	"github.com/stretchr/testify/assert"
)

func TestRenderersWithDefaults(t *testing.T) {
	r := Renderers{}.withDefaults()

	assert.NotNil(t, r.Avatar)
	assert.NotNil(t, r.Grid)
	assert.NotNil(t, r.Status)
	assert.NotNil(t, r.Measurer)
	if assert.NotNil(t, r.FormatTime) {
		assert.Equal(t, "--:--", r.FormatTime(time.Time{}))
	}
}

func TestRenderersWithDefaultsKeepsGiven(t *testing.T) {
	measurer := bubble.MeasurerFunc(func(text.Rich) float64 { return 1 })
	format := func(time.Time) string { return "now" }

	r := Renderers{Measurer: measurer, FormatTime: format}.withDefaults()

	assert.Equal(t, 1.0, r.Measurer.MeasureWidth(text.Rich{Content: "x"}))
	assert.Equal(t, "now", r.FormatTime(time.Now()))
}
