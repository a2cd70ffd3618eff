package obj

import (
	"github.com/milk9111/parallax/render"
)

const (
	defaultAnimSpeed = 0.15

	// the foot rect spans the middle half of the collision rect
	footWidthFraction = 0.5
	footHeight        = 6
)

// Actor is anything with a sprite sheet and a body in the world. The
// collision rect is authoritative for position; the visual and foot rects
// are derived from it after every move. The collision rect's size comes
// from the sheet's cached alpha bounds for the current facing and frame, so
// it changes as the animation plays.
type Actor struct {
	Sheet *render.Sheet

	VisualRect    Rect
	CollisionRect Rect
	FootRect      Rect

	VelocityX float64
	VelocityY float64

	OnGround bool
	// GroundBuffer counts down ticks of jump eligibility after leaving the
	// ground.
	GroundBuffer int
	// NoGravity exempts the actor from the gravity pass.
	NoGravity bool

	Direction Direction
	Frame     int
	AnimSpeed float64

	animTime float64
}

// NewActor creates an actor facing east on frame 0, with its bottom-center
// at (x, y).
func NewActor(sheet *render.Sheet, x, y float64) *Actor {
	a := &Actor{
		Sheet:     sheet,
		Direction: East,
		AnimSpeed: defaultAnimSpeed,
	}

	b := sheet.FrameBounds(a.Direction.Row(), a.Frame)
	a.CollisionRect = NewRect(0, 0, float64(b.Width()), float64(b.Height()))
	a.CollisionRect.SetMidBottom(x, y)
	a.UpdateVisualRect()
	a.UpdateFootRect()
	return a
}

// UpdateCollisionRect resizes the collision rect to the cached alpha bounds
// of the current frame, preserving the bottom-center anchor, then rederives
// the visual and foot rects.
func (a *Actor) UpdateCollisionRect() {
	cx := a.CollisionRect.CenterX()
	bottom := a.CollisionRect.Bottom()

	b := a.Sheet.FrameBounds(a.Direction.Row(), a.Frame)
	a.CollisionRect.Width = float64(b.Width())
	a.CollisionRect.Height = float64(b.Height())
	a.CollisionRect.SetMidBottom(cx, bottom)

	a.UpdateVisualRect()
	a.UpdateFootRect()
}

// UpdateVisualRect anchors the full-frame draw rect to the collision rect's
// bottom-center.
func (a *Actor) UpdateVisualRect() {
	a.VisualRect.Width = float64(a.Sheet.FrameWidth)
	a.VisualRect.Height = float64(a.Sheet.FrameHeight)
	a.VisualRect.SetMidBottom(a.CollisionRect.CenterX(), a.CollisionRect.Bottom())
}

// UpdateFootRect places the thin ground-sensing rect under the collision
// rect's bottom-center.
func (a *Actor) UpdateFootRect() {
	a.FootRect.Width = a.CollisionRect.Width * footWidthFraction
	a.FootRect.Height = footHeight
	a.FootRect.SetMidBottom(a.CollisionRect.CenterX(), a.CollisionRect.Bottom())
}

// SetDirection changes the facing and rebuilds the collision rect in the
// same call, so the hitbox and the sprite never disagree for a tick.
func (a *Actor) SetDirection(d Direction) {
	if d == a.Direction {
		return
	}
	a.Direction = d
	a.UpdateCollisionRect()
}

// SetFrame jumps to a specific animation frame, wrapping out-of-range
// indices.
func (a *Actor) SetFrame(i int) {
	i %= render.SheetCols
	if i < 0 {
		i += render.SheetCols
	}
	if i == a.Frame {
		return
	}
	a.Frame = i
	a.UpdateCollisionRect()
}

// AdvanceAnimation accumulates dt and steps to the next frame each time the
// accumulator fills.
func (a *Actor) AdvanceAnimation(dt float64) {
	speed := a.AnimSpeed
	if speed <= 0 {
		speed = defaultAnimSpeed
	}

	a.animTime += dt
	if a.animTime >= speed {
		a.animTime = 0
		a.Frame = (a.Frame + 1) % render.SheetCols
		a.UpdateCollisionRect()
	}
}

// EffectiveOnGround reports jump eligibility: physical ground contact, or a
// live coyote buffer while not moving upward.
func (a *Actor) EffectiveOnGround() bool {
	return a.OnGround || (a.GroundBuffer > 0 && a.VelocityY >= 0)
}
