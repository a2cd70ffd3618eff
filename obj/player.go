package obj

import (
	"github.com/milk9111/parallax/render"
)

// AnimationState selects which frames the player cycles through.
type AnimationState int

const (
	AnimIdle AnimationState = iota
	AnimWalking
	AnimJumping
)

// idle shows the 4th frame of the facing row instead of cycling
const idleFrame = 3

// Player is the controllable actor. Jump state is a small machine: a jump
// needs effective ground contact, an elapsed cooldown, and a released jump
// key since the last jump.
type Player struct {
	Actor

	Input *Input
	State AnimationState

	// Jumping is true from jump trigger until the apex.
	Jumping bool
	// CanJump is false while the jump cooldown runs.
	CanJump bool
	// JumpReleased arms the next jump once the key comes up.
	JumpReleased bool

	jumpCooldown float64
}

// NewPlayer creates the player with its visual bottom-center at (x, y).
func NewPlayer(sheet *render.Sheet, x, y float64, input *Input) *Player {
	return &Player{
		Actor:        *NewActor(sheet, x, y),
		Input:        input,
		CanJump:      true,
		JumpReleased: true,
	}
}

// Update runs one simulation tick: cooldown bookkeeping, gravity, the
// horizontal then vertical collision passes, ground-buffer refresh, jump
// input, and animation.
func (p *Player) Update(dt float64, ctx *Context) {
	if p.jumpCooldown > 0 {
		p.jumpCooldown -= dt
		if p.jumpCooldown <= 0 {
			p.jumpCooldown = 0
			p.CanJump = true
		}
	}

	p.ApplyGravity(ctx.Physics)
	if p.Jumping && p.VelocityY > 0 {
		p.Jumping = false
	}

	switch {
	case p.Input.Left && !p.Input.Right:
		p.VelocityX = -ctx.Physics.MoveSpeed
	case p.Input.Right && !p.Input.Left:
		p.VelocityX = ctx.Physics.MoveSpeed
	default:
		p.VelocityX = 0
	}

	p.StepHorizontal(ctx)
	p.StepVertical(ctx)

	if p.OnGround {
		p.Jumping = false
	}
	p.UpdateGroundBuffer(ctx.Physics.GroundBufferTicks)

	if p.Input.JumpReleased {
		p.JumpReleased = true
	}
	if p.Input.JumpPressed {
		p.TryJump(ctx)
	}

	if d, ok := DirectionFromMovement(p.VelocityX, 0); ok {
		p.SetDirection(d)
	}

	switch {
	case p.Jumping || !p.EffectiveOnGround():
		p.State = AnimJumping
	case p.VelocityX != 0:
		p.State = AnimWalking
	default:
		p.State = AnimIdle
	}

	if p.State == AnimIdle {
		p.SetFrame(idleFrame)
	} else {
		p.AdvanceAnimation(dt)
	}
}

// TryJump triggers a jump if the player is eligible. On success the actor
// leaves the ground on the same tick: upward velocity is set, the coyote
// buffer is cleared, the cooldown starts, and the body is nudged up a few
// pixels so the same-tick foot sensor can't immediately re-ground it.
func (p *Player) TryJump(ctx *Context) bool {
	if !p.EffectiveOnGround() || !p.CanJump || !p.JumpReleased {
		return false
	}

	p.jumpCooldown = ctx.Physics.JumpCooldown
	p.CanJump = false
	p.JumpReleased = false
	p.Jumping = true

	p.VelocityY = ctx.Physics.JumpStrength
	p.OnGround = false
	p.GroundBuffer = 0
	p.State = AnimJumping

	p.CollisionRect.Y -= ctx.Physics.JumpNudge
	p.UpdateVisualRect()
	p.UpdateFootRect()
	return true
}
