package obj

import (
	"github.com/milk9111/parallax/render"
)

// BehaviorKind tags the enemy update variant. Dispatch is a switch on the
// tag; behaviors are never rebound after construction.
type BehaviorKind int

const (
	Patrol BehaviorKind = iota
	Flying
	Jumping
)

func (k BehaviorKind) String() string {
	switch k {
	case Patrol:
		return "patrol"
	case Flying:
		return "flying"
	case Jumping:
		return "jumping"
	}
	return "unknown"
}

// BehaviorKindFromString maps a level-file enemy type to a behavior. The
// second return is false for unknown types; callers default those to
// Patrol.
func BehaviorKindFromString(s string) (BehaviorKind, bool) {
	switch s {
	case "basic", "patrol":
		return Patrol, true
	case "flying":
		return Flying, true
	case "jumping":
		return Jumping, true
	}
	return Patrol, false
}

// forward edge sensor dimensions (px)
const (
	edgeSensorWidth  = 10
	edgeSensorHeight = 20
)

// EnemyTuning holds per-kind behavior parameters, in pixels and seconds.
type EnemyTuning struct {
	Speed          float64
	PatrolDistance float64
	FlightHeight   float64
	JumpInterval   float64
	JumpStrength   float64
}

// DefaultEnemyTuning returns the behavior parameters for a kind with
// distances derived from the level cell size.
func DefaultEnemyTuning(kind BehaviorKind, cellSize int) EnemyTuning {
	t := EnemyTuning{
		Speed:          2,
		PatrolDistance: float64(4 * cellSize),
	}
	switch kind {
	case Flying:
		t.FlightHeight = float64(2 * cellSize)
	case Jumping:
		t.JumpInterval = 2.0
		t.JumpStrength = -10
	}
	return t
}

// Enemy is an autonomous actor. All kinds run the shared physics resolver;
// Flying is exempt from gravity and always counts as grounded.
type Enemy struct {
	Actor

	Kind   BehaviorKind
	Tuning EnemyTuning

	// spawn anchor for patrol and flight limits
	StartX float64
	StartY float64

	flightDir float64
	jumpTimer float64
}

// NewEnemy creates an enemy at the given grid cell, facing east and already
// moving.
func NewEnemy(sheet *render.Sheet, cellX, cellY int, kind BehaviorKind, cellSize int, tuning EnemyTuning) *Enemy {
	x := float64(cellX * cellSize)
	y := float64(cellY * cellSize)

	e := &Enemy{
		Actor:     *NewActor(sheet, x, y),
		Kind:      kind,
		Tuning:    tuning,
		StartX:    x,
		StartY:    y,
		flightDir: 1,
	}
	e.VelocityX = tuning.Speed
	if kind == Flying {
		e.NoGravity = true
		e.OnGround = true
	}
	return e
}

// Update runs one simulation tick: gravity and the vertical pass through
// the shared resolver (except Flying), then the kind-specific behavior,
// then animation.
func (e *Enemy) Update(dt float64, ctx *Context) {
	if e.Kind != Flying && !e.OnGround {
		e.ApplyGravity(ctx.Physics)
		e.StepVertical(ctx)
	}

	switch e.Kind {
	case Patrol:
		e.updatePatrol(ctx)
	case Flying:
		e.updateFlying(ctx)
	case Jumping:
		e.updateJumping(dt, ctx)
	}

	e.UpdateVisualRect()
	e.UpdateFootRect()
	e.AdvanceAnimation(dt)
}

// CheckEdge reports whether there is ground ahead of the enemy's leading
// bottom corner. Patrol-style movement reverses when it returns false so
// the enemy doesn't walk off a ledge.
func (e *Enemy) CheckEdge(ctx *Context) bool {
	sensor := NewRect(0, 0, edgeSensorWidth, edgeSensorHeight)
	if e.Direction == East {
		sensor.SetCenterX(e.CollisionRect.Right())
	} else {
		sensor.SetCenterX(e.CollisionRect.Left())
	}
	sensor.SetTop(e.CollisionRect.Bottom())

	for _, c := range ctx.Colliders() {
		if sensor.Intersects(c) {
			return true
		}
	}
	return false
}

// reverse flips the facing between east and west. SetDirection rebuilds the
// collision bounds synchronously so the hitbox never points the wrong way
// for a tick.
func (e *Enemy) reverse() {
	if e.Direction == East {
		e.SetDirection(West)
	} else {
		e.SetDirection(East)
	}
}

// clearWall pushes the body out of any collider it still overlaps after a
// reversal, on the side the new facing is walking toward. The facing flip
// rebuilds the collision rect from the new direction's bounds, which can be
// wider than the old one and re-enter the wall that was just resolved;
// without this pass the next horizontal step would resolve that overlap by
// velocity sign and throw the body to the far side of the wall.
func (e *Enemy) clearWall(ctx *Context) {
	for _, c := range ctx.Colliders() {
		if !e.CollisionRect.Intersects(c) {
			continue
		}
		if e.Direction == West {
			e.CollisionRect.SetRight(c.Left())
		} else {
			e.CollisionRect.SetLeft(c.Right())
		}
	}
	e.UpdateVisualRect()
	e.UpdateFootRect()
}

// patrolStep moves horizontally through the resolver and reverses on walls
// and patrol limits. Shared by the Patrol and Jumping kinds while grounded,
// and by Flying (which skips the edge check).
func (e *Enemy) patrolStep(ctx *Context, checkEdge bool) {
	if checkEdge && !e.CheckEdge(ctx) {
		e.reverse()
	}

	if e.Direction == East {
		e.VelocityX = e.Tuning.Speed
	} else {
		e.VelocityX = -e.Tuning.Speed
	}

	if hit := e.StepHorizontal(ctx); hit {
		e.reverse()
		e.clearWall(ctx)
	}

	if e.Direction == East && e.CollisionRect.CenterX() > e.StartX+e.Tuning.PatrolDistance {
		e.SetDirection(West)
	} else if e.Direction == West && e.CollisionRect.CenterX() < e.StartX-e.Tuning.PatrolDistance {
		e.SetDirection(East)
	}
}

func (e *Enemy) updatePatrol(ctx *Context) {
	if !e.OnGround {
		return
	}
	e.patrolStep(ctx, true)
}

func (e *Enemy) updateFlying(ctx *Context) {
	// vertical oscillation between spawn height and spawn - flight height
	e.CollisionRect.Y += e.Tuning.Speed * e.flightDir
	e.UpdateFootRect()

	if e.flightDir > 0 && e.CollisionRect.Bottom() > e.StartY {
		e.flightDir = -1
	} else if e.flightDir < 0 && e.CollisionRect.Bottom() < e.StartY-e.Tuning.FlightHeight {
		e.flightDir = 1
	}

	e.patrolStep(ctx, false)
}

func (e *Enemy) updateJumping(dt float64, ctx *Context) {
	if !e.OnGround {
		return
	}

	e.jumpTimer += dt
	if e.jumpTimer >= e.Tuning.JumpInterval {
		e.jumpTimer = 0
		e.VelocityY = e.Tuning.JumpStrength
		e.OnGround = false
		e.UpdateFootRect()
		return
	}

	e.patrolStep(ctx, true)
}
