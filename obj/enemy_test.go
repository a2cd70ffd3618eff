package obj

import "testing"

func patrolTuning(speed, patrol float64) EnemyTuning {
	return EnemyTuning{Speed: speed, PatrolDistance: patrol}
}

func TestBehaviorKindFromString(t *testing.T) {
	cases := []struct {
		in     string
		want   BehaviorKind
		wantOK bool
	}{
		{"basic", Patrol, true},
		{"patrol", Patrol, true},
		{"flying", Flying, true},
		{"jumping", Jumping, true},
		{"walker", Patrol, false},
		{"", Patrol, false},
	}
	for _, c := range cases {
		got, ok := BehaviorKindFromString(c.in)
		if got != c.want || ok != c.wantOK {
			t.Fatalf("BehaviorKindFromString(%q) = (%v, %v), want (%v, %v)",
				c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestEnemyLandsAndPatrols(t *testing.T) {
	ctx := testContext(nil, []GroundBlock{NewGroundBlock(0, 7, 60, 64)})
	e := NewEnemy(testSheet(), 2, 7, Patrol, 64, patrolTuning(2, 10000))

	e.Update(1.0/60.0, ctx)
	if !e.OnGround {
		t.Fatalf("enemy spawned on the ground should be grounded after one tick")
	}
	if e.CollisionRect.Bottom() != 448 {
		t.Fatalf("bottom = %v, want 448", e.CollisionRect.Bottom())
	}

	startX := e.CollisionRect.CenterX()
	for i := 0; i < 10; i++ {
		e.Update(1.0/60.0, ctx)
	}
	if e.CollisionRect.CenterX() <= startX {
		t.Fatalf("patrol enemy did not advance east: %v -> %v", startX, e.CollisionRect.CenterX())
	}
	if e.Direction != East {
		t.Fatalf("direction = %v, want east before any limit", e.Direction)
	}
}

func TestPatrolLimitReversal(t *testing.T) {
	ctx := testContext(nil, []GroundBlock{NewGroundBlock(0, 7, 60, 64)})
	e := NewEnemy(testSheet(), 2, 7, Patrol, 64, patrolTuning(2, 40))

	sawWest, sawEastAgain := false, false
	for i := 0; i < 200; i++ {
		e.Update(1.0/60.0, ctx)

		cx := e.CollisionRect.CenterX()
		if cx < e.StartX-e.Tuning.PatrolDistance-8 || cx > e.StartX+e.Tuning.PatrolDistance+8 {
			t.Fatalf("tick %d: center %v escaped the patrol band around %v", i, cx, e.StartX)
		}
		if e.Direction == West {
			sawWest = true
		}
		if sawWest && e.Direction == East {
			sawEastAgain = true
		}
	}
	if !sawWest || !sawEastAgain {
		t.Fatalf("patrol never completed a full reversal cycle (west=%v, east again=%v)",
			sawWest, sawEastAgain)
	}
}

func TestPatrolWallReversal(t *testing.T) {
	ground := NewGroundBlock(0, 7, 60, 64)
	wall := NewGroundBlock(5, 6, 1, 64) // x 320..384, sitting on the ground
	ctx := testContext(nil, []GroundBlock{ground, wall})

	e := NewEnemy(testSheet(), 4, 7, Patrol, 64, patrolTuning(2, 10000))

	reversedAt := -1
	for i := 0; i < 120; i++ {
		e.Update(1.0/60.0, ctx)
		if e.CollisionRect.Left() >= 384 {
			t.Fatalf("tick %d: enemy tunneled to the far side of the wall, left = %v", i, e.CollisionRect.Left())
		}
		if e.Direction == West {
			reversedAt = i
			break
		}
		// allow a little slop for per-frame hitbox width changes
		if e.CollisionRect.Right() > 324 {
			t.Fatalf("tick %d: enemy passed through the wall, right = %v", i, e.CollisionRect.Right())
		}
	}
	if reversedAt < 0 {
		t.Fatalf("enemy never reversed off the wall")
	}

	// the rebuilt west-facing rect must sit clear of the wall, not inside it
	if r := e.CollisionRect.Right(); r > 321 {
		t.Fatalf("post-reversal right = %v, want pushed clear of the wall at 320", r)
	}

	// after the reversal it walks away from the wall and never crosses it
	before := e.CollisionRect.CenterX()
	for i := 0; i < 10; i++ {
		e.Update(1.0/60.0, ctx)
		if e.CollisionRect.Left() >= 320 {
			t.Fatalf("tick %d after reversal: enemy re-entered the wall, left = %v", i, e.CollisionRect.Left())
		}
	}
	if e.CollisionRect.CenterX() >= before {
		t.Fatalf("enemy did not walk away after the wall reversal")
	}
}

func TestPatrolEdgeReversal(t *testing.T) {
	// ground only under the first five cells; the ledge ends at x=320
	ctx := testContext(nil, []GroundBlock{NewGroundBlock(0, 7, 5, 64)})
	e := NewEnemy(testSheet(), 4, 7, Patrol, 64, patrolTuning(2, 10000))

	reversed := false
	for i := 0; i < 120; i++ {
		e.Update(1.0/60.0, ctx)
		if e.CollisionRect.Right() > 336 {
			t.Fatalf("tick %d: enemy overran the ledge, right = %v", i, e.CollisionRect.Right())
		}
		if e.Direction == West {
			reversed = true
			break
		}
	}
	if !reversed {
		t.Fatalf("enemy never reversed at the ledge")
	}
}

func TestFlyingEnemyOscillation(t *testing.T) {
	ctx := testContext(nil, nil)
	tuning := patrolTuning(2, 10000)
	tuning.FlightHeight = 128

	e := NewEnemy(testSheet(), 5, 5, Flying, 64, tuning)
	if !e.NoGravity || !e.OnGround {
		t.Fatalf("flying enemy must be gravity exempt and always grounded")
	}

	low, high := e.StartY, e.StartY
	for i := 0; i < 400; i++ {
		e.Update(1.0/60.0, ctx)

		b := e.CollisionRect.Bottom()
		if b > low {
			low = b
		}
		if b < high {
			high = b
		}
		if e.VelocityY != 0 {
			t.Fatalf("tick %d: flying enemy gained vertical velocity %v", i, e.VelocityY)
		}
		if !e.OnGround {
			t.Fatalf("tick %d: flying enemy lost grounded status", i)
		}
	}

	if low > e.StartY+tuning.Speed || low < e.StartY {
		t.Fatalf("lowest point %v, want just past spawn height %v", low, e.StartY)
	}
	top := e.StartY - tuning.FlightHeight
	if high > top || high < top-tuning.Speed {
		t.Fatalf("highest point %v, want just past flight ceiling %v", high, top)
	}
}

func TestJumpingEnemyInterval(t *testing.T) {
	ctx := testContext(nil, []GroundBlock{NewGroundBlock(0, 7, 60, 64)})
	tuning := patrolTuning(2, 10000)
	tuning.JumpInterval = 0.5
	tuning.JumpStrength = -10

	e := NewEnemy(testSheet(), 2, 7, Jumping, 64, tuning)

	e.Update(1.0/60.0, ctx)
	if !e.OnGround {
		t.Fatalf("setup: jumping enemy did not land")
	}

	launched := -1
	for i := 0; i < 60; i++ {
		e.Update(1.0/60.0, ctx)
		if !e.OnGround {
			launched = i
			break
		}
	}
	if launched < 0 {
		t.Fatalf("jumping enemy never launched")
	}
	if e.VelocityY != tuning.JumpStrength {
		t.Fatalf("launch VelocityY = %v, want %v", e.VelocityY, tuning.JumpStrength)
	}

	// it comes back down through the shared resolver and jumps again
	landed := false
	for i := 0; i < 120; i++ {
		e.Update(1.0/60.0, ctx)
		if e.OnGround {
			landed = true
			if e.CollisionRect.Bottom() != 448 {
				t.Fatalf("relanded at bottom %v, want 448", e.CollisionRect.Bottom())
			}
			break
		}
	}
	if !landed {
		t.Fatalf("jumping enemy never came back down")
	}
}

func TestDefaultEnemyTuning(t *testing.T) {
	p := DefaultEnemyTuning(Patrol, 64)
	if p.Speed != 2 || p.PatrolDistance != 256 {
		t.Fatalf("patrol tuning = %+v", p)
	}
	f := DefaultEnemyTuning(Flying, 64)
	if f.FlightHeight != 128 {
		t.Fatalf("flying flight height = %v, want 128", f.FlightHeight)
	}
	j := DefaultEnemyTuning(Jumping, 64)
	if j.JumpInterval != 2.0 || j.JumpStrength != -10 {
		t.Fatalf("jumping tuning = %+v", j)
	}
}
