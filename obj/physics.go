package obj

// ApplyGravity accelerates the actor downward, clamped at terminal
// velocity. Grounded and gravity-exempt actors are unaffected.
func (a *Actor) ApplyGravity(p Physics) {
	if a.OnGround || a.NoGravity {
		return
	}
	a.VelocityY += p.Gravity
	if a.VelocityY > p.TerminalVelocity {
		a.VelocityY = p.TerminalVelocity
	}
}

// StepHorizontal applies the horizontal velocity, clamps to the level
// extents, and pushes the body out of any collider it entered, against the
// direction of travel. It reports whether a collider was hit. VelocityX is
// left untouched so held input stays responsive against walls.
func (a *Actor) StepHorizontal(ctx *Context) bool {
	a.CollisionRect.X += a.VelocityX

	if a.CollisionRect.Left() < 0 {
		a.CollisionRect.SetLeft(0)
	}
	if a.CollisionRect.Right() > ctx.Width {
		a.CollisionRect.SetRight(ctx.Width)
	}

	hit := false
	for _, c := range ctx.Colliders() {
		if !a.CollisionRect.Intersects(c) {
			continue
		}
		switch {
		case a.VelocityX > 0:
			a.CollisionRect.SetRight(c.Left())
			hit = true
		case a.VelocityX < 0:
			a.CollisionRect.SetLeft(c.Right())
			hit = true
		}
	}

	a.UpdateVisualRect()
	a.UpdateFootRect()
	return hit
}

// GroundSensor returns the rect used to detect ground under the body: the
// foot rect's span, extended below the collision bottom by the sensor
// depth.
func (a *Actor) GroundSensor(p Physics) Rect {
	s := NewRect(0, 0, a.CollisionRect.Width*footWidthFraction, p.FootSensorHeight)
	s.SetMidBottom(a.CollisionRect.CenterX(), a.CollisionRect.Bottom()+p.FootSensorDepth)
	return s
}

// StepVertical applies the vertical velocity and resolves against the
// colliders. A falling or resting body whose ground sensor overlaps a
// collider snaps to its top and grounds; otherwise body overlaps resolve
// as ceiling hits when rising, or snap to the top within the penetration
// tolerance when falling. Vertical resolution zeroes VelocityY.
func (a *Actor) StepVertical(ctx *Context) {
	a.CollisionRect.Y += a.VelocityY
	a.OnGround = false

	if a.VelocityY >= 0 {
		sensor := a.GroundSensor(ctx.Physics)
		for _, c := range ctx.Colliders() {
			if sensor.Intersects(c) {
				a.CollisionRect.SetBottom(c.Top())
				a.VelocityY = 0
				a.OnGround = true
				break
			}
		}
	}

	if !a.OnGround {
		for _, c := range ctx.Colliders() {
			if !a.CollisionRect.Intersects(c) {
				continue
			}
			if a.VelocityY < 0 {
				a.CollisionRect.SetTop(c.Bottom())
				a.VelocityY = 0
			} else if pen := a.CollisionRect.Bottom() - c.Top(); pen > 0 && pen < ctx.Physics.GroundSnapTolerance {
				a.CollisionRect.SetBottom(c.Top())
				a.VelocityY = 0
				a.OnGround = true
			}
		}
	}

	a.UpdateVisualRect()
	a.UpdateFootRect()
}

// UpdateGroundBuffer refreshes the coyote window while grounded and counts
// it down toward zero while airborne.
func (a *Actor) UpdateGroundBuffer(maxTicks int) {
	if a.OnGround {
		a.GroundBuffer = maxTicks
		return
	}
	if a.GroundBuffer > 0 {
		a.GroundBuffer--
	}
}
