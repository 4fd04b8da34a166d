package attachgrid

import (
	"fmt"
	"time"

	"github.com/diamondburned/cchat-bubble/internal/bubble"
	"github.com/diamondburned/imgutil"
)

const (
	// MaxCells is the most attachments drawn; the last cell carries a badge
	// counting the rest.
	MaxCells = 4
	// Columns is the number of cells per row.
	Columns = 2
	// Spacing is the gap between cells.
	Spacing = 4

	// Width is the total width of the grid.
	Width = bubble.AttachmentsWidth
	// CellSize is the side of a square cell in a pair.
	CellSize = (Width - Spacing) / Columns
	// WideHeight is the height of a cell spanning the whole row when the
	// attachment has no known size.
	WideHeight = Width * 2 / 3
)

// Cell is the position of one attachment in the grid.
type Cell struct {
	Index int
	Row   int
	Col   int
	// Span is the number of columns taken, either 1 or 2.
	Span int
	// More is the number of attachments not shown, set only on the last
	// cell.
	More int
}

// Wide returns true if the cell spans the whole row.
func (c Cell) Wide() bool { return c.Span == Columns }

// Arrange lays out n attachments: pairs per row, a lone last attachment
// spanning the row. Past MaxCells, the rest are folded into the last cell's
// badge.
func Arrange(n int) []Cell {
	if n <= 0 {
		return nil
	}

	shown := n
	if shown > MaxCells {
		shown = MaxCells
	}

	cells := make([]Cell, shown)
	for i := range cells {
		cells[i] = Cell{
			Index: i,
			Row:   i / Columns,
			Col:   i % Columns,
			Span:  1,
		}
	}

	if shown%Columns == 1 {
		cells[shown-1].Span = Columns
	}

	cells[shown-1].More = n - shown

	return cells
}

// CellSizeOf returns the pixel size of a cell holding an attachment of the
// given intrinsic size. Pairs are square; a wide cell keeps the attachment's
// aspect ratio within the grid width.
func CellSizeOf(c Cell, w, h int) (int, int) {
	if !c.Wide() {
		return CellSize, CellSize
	}
	if w <= 0 || h <= 0 {
		return Width, WideHeight
	}

	w, h = imgutil.MaxSize(w, h, Width, Width)
	if w < Width {
		// Stretch to the grid width; the thumbnail is centered inside.
		return Width, h
	}
	return w, h
}

// FormatDuration formats a video length as m:ss, or h:mm:ss past an hour.
// Unknown lengths format as an empty string.
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return ""
	}

	secs := int(d.Round(time.Second) / time.Second)
	h, m, s := secs/3600, secs/60%60, secs%60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
