package render

import (
	"image"
	"image/draw"
)

// Sprite sheets are a 4-direction x 4-frame grid. Row order is
// north, east, south, west.
const (
	SheetRows = 4
	SheetCols = 4
)

// Sheet holds the sliced frames of a character sprite sheet along with the
// tight alpha bounds of every frame. The bounds table is computed once at
// construction; actors look bounds up per (direction, frame) instead of
// re-scanning pixels every tick.
type Sheet struct {
	FrameWidth  int
	FrameHeight int

	frames [SheetRows][SheetCols]*image.NRGBA
	bounds [SheetRows][SheetCols]Bounds
}

// NewSheet slices src into a 4x4 frame grid and precomputes per-frame alpha
// bounds. A nil or degenerate src produces fully transparent 64x64 frames
// whose bounds fall back to the full frame.
func NewSheet(src image.Image) *Sheet {
	s := &Sheet{FrameWidth: 64, FrameHeight: 64}
	if src != nil {
		b := src.Bounds()
		if fw := b.Dx() / SheetCols; fw > 0 {
			s.FrameWidth = fw
		}
		if fh := b.Dy() / SheetRows; fh > 0 {
			s.FrameHeight = fh
		}
	}

	for row := 0; row < SheetRows; row++ {
		for col := 0; col < SheetCols; col++ {
			frame := image.NewNRGBA(image.Rect(0, 0, s.FrameWidth, s.FrameHeight))
			if src != nil {
				origin := src.Bounds().Min.Add(image.Pt(col*s.FrameWidth, row*s.FrameHeight))
				draw.Draw(frame, frame.Bounds(), src, origin, draw.Src)
			}
			s.frames[row][col] = frame
			s.bounds[row][col] = AlphaBounds(frame, DefaultAlphaThreshold, 0)
		}
	}
	return s
}

// Frame returns the sliced frame image for the given direction row and
// frame column. Indices wrap so callers can't run off the grid.
func (s *Sheet) Frame(row, col int) image.Image {
	return s.frames[wrap(row, SheetRows)][wrap(col, SheetCols)]
}

// FrameBounds returns the cached tight bounds for the given direction row
// and frame column.
func (s *Sheet) FrameBounds(row, col int) Bounds {
	return s.bounds[wrap(row, SheetRows)][wrap(col, SheetCols)]
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
