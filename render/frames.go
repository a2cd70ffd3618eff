package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FrameCache wraps a Sheet and lazily converts its frames to GPU-side
// images for drawing. Conversion happens at most once per frame slot.
type FrameCache struct {
	sheet *Sheet
	imgs  [SheetRows][SheetCols]*ebiten.Image
}

func NewFrameCache(sheet *Sheet) *FrameCache {
	return &FrameCache{sheet: sheet}
}

func (c *FrameCache) Sheet() *Sheet {
	return c.sheet
}

// Image returns the drawable image for the given direction row and frame
// column, converting from the sliced source frame on first use.
func (c *FrameCache) Image(row, col int) *ebiten.Image {
	row = wrap(row, SheetRows)
	col = wrap(col, SheetCols)
	if c.imgs[row][col] == nil {
		c.imgs[row][col] = ebiten.NewImageFromImage(c.sheet.Frame(row, col))
	}
	return c.imgs[row][col]
}
