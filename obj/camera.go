package obj

import (
	"math"

	"github.com/milk9111/parallax/common"
)

// Camera tracks a target horizontally, clamped to the level, and owns the
// world-to-screen transform and the parallax math for tiled layers.
// Vertical position is fixed; the engine scrolls horizontally only.
type Camera struct {
	X float64
	Y float64

	ViewportWidth  float64
	ViewportHeight float64
	LevelWidth     float64
	LevelHeight    float64

	// parallax factors; the background scrolls slower than the camera
	FgScrollRate float64
	BgScrollRate float64
}

func NewCamera(viewportW, viewportH, levelW, levelH float64) *Camera {
	return &Camera{
		ViewportWidth:  viewportW,
		ViewportHeight: viewportH,
		LevelWidth:     levelW,
		LevelHeight:    levelH,
		FgScrollRate:   1.0,
		BgScrollRate:   0.4,
	}
}

// Follow centers the viewport on the target's X, clamped to the level. A
// level narrower than the viewport pins the camera to 0 so it never
// scrolls.
func (c *Camera) Follow(targetX, targetY float64) {
	if c.ViewportWidth >= c.LevelWidth {
		c.X = 0
	} else {
		want := targetX - c.ViewportWidth/2
		c.X = common.Clamp(want, 0, c.LevelWidth-c.ViewportWidth)
	}
	c.Y = 0
}

// Apply converts world coordinates to screen coordinates.
func (c *Camera) Apply(x, y float64) (float64, float64) {
	return x - c.X, y - c.Y
}

// ApplyRect converts a world rect to a screen rect.
func (c *Camera) ApplyRect(r Rect) Rect {
	r.X -= c.X
	r.Y -= c.Y
	return r
}

// ParallaxBackgroundOffset returns the screen X offset of the background
// layer: opposite to the camera at a fraction of its speed.
func (c *Camera) ParallaxBackgroundOffset() float64 {
	return -c.X * c.BgScrollRate
}

// TileSpan computes the first tile index and its pixel offset for a
// repeating layer at the given (possibly negative) scroll offset. It uses
// floored division so negative offsets wrap without seams.
func TileSpan(offset, tileWidth float64) (int, float64) {
	if tileWidth <= 0 {
		return 0, 0
	}
	idx := int(math.Floor(offset / tileWidth))
	return idx, offset - float64(idx)*tileWidth
}

// TilePositions emits the screen X positions for a tiled layer: starting
// one tile before the wrapped offset for a left safety margin, up to the
// viewport width, but never past maxScreenX (the level's right edge in
// screen space, which keeps the layer from bleeding past a clamped
// camera).
func (c *Camera) TilePositions(offset, tileWidth, maxScreenX float64) []float64 {
	if tileWidth <= 0 {
		return nil
	}
	_, pix := TileSpan(offset, tileWidth)

	var out []float64
	for x := pix - tileWidth; x < c.ViewportWidth && x < maxScreenX; x += tileWidth {
		out = append(out, x)
	}
	return out
}

// BackgroundTiles returns the screen X positions for the parallax
// background layer. The cutoff scales the level's screen-space end by the
// background rate, since the background's own extent scrolls slower than
// the world.
func (c *Camera) BackgroundTiles(tileWidth float64) []float64 {
	levelEndX, _ := c.Apply(c.LevelWidth, 0)
	maxX := c.ViewportWidth
	if c.BgScrollRate > 0 {
		maxX = levelEndX / c.BgScrollRate
	}
	return c.TilePositions(c.ParallaxBackgroundOffset(), tileWidth, maxX)
}

// ForegroundTiles returns the screen X positions for the full-rate
// foreground layer, cut at the level's right edge.
func (c *Camera) ForegroundTiles(tileWidth float64) []float64 {
	offset, _ := c.Apply(0, 0)
	levelEndX, _ := c.Apply(c.LevelWidth, 0)
	return c.TilePositions(offset, tileWidth, levelEndX)
}
