package obj

import "testing"

func groundedPlayer(t *testing.T, ctx *Context) *Player {
	t.Helper()
	p := NewPlayer(testSheet(), 100, 444, &Input{})
	p.VelocityY = 6
	p.Update(1.0/60.0, ctx)
	if !p.OnGround {
		t.Fatalf("setup: player did not land on the ground block")
	}
	return p
}

func groundCtx() *Context {
	return testContext(nil, []GroundBlock{NewGroundBlock(0, 7, 60, 64)}) // top at y=448
}

func TestJumpSameTickEffects(t *testing.T) {
	ctx := groundCtx()
	p := groundedPlayer(t, ctx)

	if !p.TryJump(ctx) {
		t.Fatalf("grounded player with armed jump should be able to jump")
	}
	if p.VelocityY != ctx.Physics.JumpStrength {
		t.Fatalf("VelocityY = %v, want %v on the trigger tick", p.VelocityY, ctx.Physics.JumpStrength)
	}
	if p.OnGround {
		t.Fatalf("OnGround must clear on the trigger tick")
	}
	if p.GroundBuffer != 0 {
		t.Fatalf("GroundBuffer = %d, want 0 after jump", p.GroundBuffer)
	}
	if p.JumpReleased {
		t.Fatalf("jump must disarm until the key is released")
	}
}

func TestJumpEligibility(t *testing.T) {
	ctx := groundCtx()

	cases := []struct {
		name  string
		setup func(p *Player)
		want  bool
	}{
		{"grounded_armed", func(p *Player) {}, true},
		{
			"airborne_no_buffer",
			func(p *Player) { p.OnGround = false; p.GroundBuffer = 0 },
			false,
		},
		{
			"coyote_buffer_active",
			func(p *Player) { p.OnGround = false; p.GroundBuffer = 3; p.VelocityY = 2 },
			true,
		},
		{
			"coyote_buffer_while_rising",
			func(p *Player) { p.OnGround = false; p.GroundBuffer = 3; p.VelocityY = -4 },
			false,
		},
		{
			"cooldown_running",
			func(p *Player) { p.CanJump = false },
			false,
		},
		{
			"jump_key_not_released",
			func(p *Player) { p.JumpReleased = false },
			false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := groundedPlayer(t, ctx)
			c.setup(p)
			if got := p.TryJump(ctx); got != c.want {
				t.Fatalf("TryJump = %v, want %v", got, c.want)
			}
		})
	}
}

func TestJumpCooldownBlocksRetrigger(t *testing.T) {
	ctx := groundCtx()
	p := groundedPlayer(t, ctx)

	if !p.TryJump(ctx) {
		t.Fatalf("first jump should succeed")
	}

	// land again immediately and re-arm the key; the cooldown alone must
	// block the second attempt
	p.OnGround = true
	p.VelocityY = 0
	p.JumpReleased = true
	if p.TryJump(ctx) {
		t.Fatalf("second jump within the cooldown window must fail")
	}

	// run the cooldown out through ticks on the ground
	p.Input.Left = false
	p.Input.Right = false
	for i := 0; i < 15; i++ { // 15 ticks at 1/60s > 0.2s cooldown
		p.Update(1.0/60.0, ctx)
	}
	if !p.CanJump {
		t.Fatalf("cooldown should have expired and re-armed the jump")
	}
	if !p.TryJump(ctx) {
		t.Fatalf("jump should succeed after the cooldown")
	}
}

func TestJumpDebounceRequiresRelease(t *testing.T) {
	ctx := groundCtx()
	p := groundedPlayer(t, ctx)

	if !p.TryJump(ctx) {
		t.Fatalf("first jump should succeed")
	}

	// land, expire the cooldown, but keep the key held
	p.OnGround = true
	p.VelocityY = 0
	p.CanJump = true
	if p.TryJump(ctx) {
		t.Fatalf("held jump key must not re-trigger")
	}

	// the release edge re-arms it; run enough ticks to land again after
	// the jump nudge and to let the cooldown finish
	p.Input.JumpReleased = true
	p.Update(1.0/60.0, ctx)
	p.Input.JumpReleased = false
	for i := 0; i < 15; i++ {
		p.Update(1.0/60.0, ctx)
	}
	if !p.JumpReleased {
		t.Fatalf("release edge should have re-armed the jump")
	}
	if !p.EffectiveOnGround() {
		t.Fatalf("setup: player should have landed again")
	}
	if !p.TryJump(ctx) {
		t.Fatalf("jump should succeed after the key release")
	}
}

func TestCoyoteJumpAfterLeavingLedge(t *testing.T) {
	// ground only under the first 3 cells; the player walks off the edge
	ctx := testContext(nil, []GroundBlock{NewGroundBlock(0, 7, 3, 64)})

	p := NewPlayer(testSheet(), 100, 444, &Input{Right: true})
	p.VelocityY = 6
	p.Update(1.0/60.0, ctx)
	if !p.OnGround {
		t.Fatalf("setup: player did not land")
	}

	// walk right until physical ground contact is lost
	ticks := 0
	for p.OnGround && ticks < 120 {
		p.Update(1.0/60.0, ctx)
		ticks++
	}
	if p.OnGround {
		t.Fatalf("player never walked off the ledge")
	}
	if p.GroundBuffer == 0 {
		t.Fatalf("ground buffer should still be counting down just after the edge")
	}
	if !p.EffectiveOnGround() {
		t.Fatalf("coyote time should keep the player jump-eligible")
	}
	if !p.TryJump(ctx) {
		t.Fatalf("jump within the coyote window should succeed")
	}

	// once airborne past the buffer, jumping is impossible
	p2 := NewPlayer(testSheet(), 100, 100, &Input{})
	p2.GroundBuffer = 0
	if p2.TryJump(ctx) {
		t.Fatalf("jump with no ground contact and no buffer must fail")
	}
}

func TestPlayerAnimationStates(t *testing.T) {
	ctx := groundCtx()

	p := groundedPlayer(t, ctx)
	for i := 0; i < 3; i++ {
		p.Update(1.0/60.0, ctx)
	}
	if p.State != AnimIdle {
		t.Fatalf("state = %v, want idle while grounded and still", p.State)
	}
	if p.Frame != idleFrame {
		t.Fatalf("idle shows frame %d, got %d", idleFrame, p.Frame)
	}

	p.Input.Right = true
	p.Update(1.0/60.0, ctx)
	if p.State != AnimWalking {
		t.Fatalf("state = %v, want walking while moving on ground", p.State)
	}
	if p.Direction != East {
		t.Fatalf("direction = %v, want east while moving right", p.Direction)
	}

	p.Input.Right = false
	p.Input.Left = true
	p.Update(1.0/60.0, ctx)
	if p.Direction != West {
		t.Fatalf("direction = %v, want west while moving left", p.Direction)
	}
}
