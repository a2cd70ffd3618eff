package render

import "image"

// DefaultAlphaThreshold is the alpha value a pixel must exceed to count as
// solid when computing tight bounds.
const DefaultAlphaThreshold = 25

// Bounds is a tight pixel bounding box relative to a frame's top-left corner.
// MaxX and MaxY are exclusive.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

func (b Bounds) Width() int {
	return b.MaxX - b.MinX
}

func (b Bounds) Height() int {
	return b.MaxY - b.MinY
}

// AlphaBounds scans img and returns the smallest box enclosing every pixel
// whose alpha exceeds threshold. The result is padded symmetrically by
// padding pixels and clamped to the image extents. It is a pure function:
// the same image always yields the same bounds, so results can be cached
// per animation frame.
//
// A zero-sized image, or one with no solid pixels, yields the full-frame
// default (0, 0, max(1, w), max(1, h)) so callers never see a zero-area box.
func AlphaBounds(img image.Image, threshold uint8, padding int) Bounds {
	if img == nil {
		return Bounds{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	}

	r := img.Bounds()
	w := r.Dx()
	h := r.Dy()
	if w <= 0 || h <= 0 {
		return Bounds{MinX: 0, MinY: 0, MaxX: max(1, w), MaxY: max(1, h)}
	}

	minX, minY := w, h
	maxX, maxY := 0, 0
	found := false
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(r.Min.X+x, r.Min.Y+y).RGBA()
			if uint8(a>>8) > threshold {
				if x < minX {
					minX = x
				}
				if y < minY {
					minY = y
				}
				if x+1 > maxX {
					maxX = x + 1
				}
				if y+1 > maxY {
					maxY = y + 1
				}
				found = true
			}
		}
	}

	if !found {
		return Bounds{MinX: 0, MinY: 0, MaxX: w, MaxY: h}
	}

	if padding > 0 {
		minX = max(0, minX-padding)
		minY = max(0, minY-padding)
		maxX = min(w, maxX+padding)
		maxY = min(h, maxY+padding)
	}

	// widen degenerate boxes so downstream rects never collapse
	if minX == maxX {
		maxX = minX + 1
	}
	if minY == maxY {
		maxY = minY + 1
	}

	return Bounds{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}
