package obj

// Rect is an axis-aligned box in world pixels. Y grows downward.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.Width }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.Height }
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

func (r *Rect) SetLeft(x float64)    { r.X = x }
func (r *Rect) SetRight(x float64)   { r.X = x - r.Width }
func (r *Rect) SetTop(y float64)     { r.Y = y }
func (r *Rect) SetBottom(y float64)  { r.Y = y - r.Height }
func (r *Rect) SetCenterX(x float64) { r.X = x - r.Width/2 }
func (r *Rect) SetCenterY(y float64) { r.Y = y - r.Height/2 }

// SetMidBottom anchors the rect by its bottom-center point, the anchor
// convention all actors use.
func (r *Rect) SetMidBottom(x, y float64) {
	r.SetCenterX(x)
	r.SetBottom(y)
}

// Intersects reports whether the rects overlap. Edges that merely touch do
// not count, so a body resting exactly on a surface is not colliding with it.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height && r.Y+r.Height > o.Y
}
