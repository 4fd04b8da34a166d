package attachgrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArrange(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []Cell
	}{
		{"none", 0, nil},
		{"single", 1, []Cell{
			{Index: 0, Row: 0, Col: 0, Span: 2},
		}},
		{"pair", 2, []Cell{
			{Index: 0, Row: 0, Col: 0, Span: 1},
			{Index: 1, Row: 0, Col: 1, Span: 1},
		}},
		{"lone last", 3, []Cell{
			{Index: 0, Row: 0, Col: 0, Span: 1},
			{Index: 1, Row: 0, Col: 1, Span: 1},
			{Index: 2, Row: 1, Col: 0, Span: 2},
		}},
		{"full", 4, []Cell{
			{Index: 0, Row: 0, Col: 0, Span: 1},
			{Index: 1, Row: 0, Col: 1, Span: 1},
			{Index: 2, Row: 1, Col: 0, Span: 1},
			{Index: 3, Row: 1, Col: 1, Span: 1},
		}},
		{"overflow", 7, []Cell{
			{Index: 0, Row: 0, Col: 0, Span: 1},
			{Index: 1, Row: 0, Col: 1, Span: 1},
			{Index: 2, Row: 1, Col: 0, Span: 1},
			{Index: 3, Row: 1, Col: 1, Span: 1, More: 3},
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Arrange(test.n))
		})
	}
}

func TestCellSizeOf(t *testing.T) {
	pair := Cell{Span: 1}
	w, h := CellSizeOf(pair, 1920, 1080)
	assert.Equal(t, CellSize, w)
	assert.Equal(t, CellSize, h)

	wide := Cell{Span: 2}
	w, h = CellSizeOf(wide, 0, 0)
	assert.Equal(t, Width, w)
	assert.Equal(t, WideHeight, h)

	w, h = CellSizeOf(wide, 800, 800)
	assert.Equal(t, Width, w)
	assert.Equal(t, Width, h)

	w, h = CellSizeOf(wide, 1920, 1080)
	assert.Equal(t, Width, w)
	assert.Less(t, h, Width)
	assert.Greater(t, h, 0)

	// Small images keep their height but still fill the row.
	w, h = CellSizeOf(wide, 50, 40)
	assert.Equal(t, Width, w)
	assert.LessOrEqual(t, h, Width)
}

func TestFormatDuration(t *testing.T) {
	tests := map[time.Duration]string{
		0:                               "",
		-time.Second:                    "",
		400 * time.Millisecond:          "0:00",
		9 * time.Second:                 "0:09",
		83 * time.Second:                "1:23",
		59*time.Minute + 59*time.Second: "59:59",
		time.Hour + 2*time.Minute + 3*time.Second: "1:02:03",
	}

	for d, want := range tests {
		assert.Equal(t, want, FormatDuration(d), d.String())
	}
}
