package sim

import "github.com/chewxy/math32"

// minSeparation floors the center distance of overlapping balls so the
// contact normal never divides by zero when centers coincide.
const minSeparation = 1e-6

// Collide resolves contact between a and b. The outcome is symmetric in the
// argument order: Collide(a, b, dt) and Collide(b, a, dt) leave both bodies
// in the same state. Returns the impact magnitude (speed change of the
// loudest side) and whether a contact was resolved.
//
// Platform-platform pairs never touch (nothing moves) and resolve to no-op.
func Collide(a, b *Body, dt float32) (float32, bool) {
	switch {
	case a.Kind == KindBall && b.Kind == KindBall:
		return collideBalls(a, b)
	case a.Kind == KindBall && b.Kind == KindPlatform:
		return collideBallPlatform(a, b)
	case a.Kind == KindPlatform && b.Kind == KindBall:
		return collideBallPlatform(b, a)
	}
	return 0, false
}

// collideBalls exchanges momentum along the line of centers and pushes both
// balls apart to exact tangency.
//
// Each ball's velocity change is scaled by its own elasticity, as in the
// original model. This does not conserve momentum when the two elasticities
// differ; it is kept for behavioral parity rather than replaced with a single
// coefficient of restitution.
func collideBalls(a, b *Body) (float32, bool) {
	d := a.Pos.DistanceTo(b.Pos)
	if d >= a.Radius+b.Radius {
		return 0, false
	}

	n := b.Pos.Sub(a.Pos)
	if d < minSeparation {
		d = minSeparation
		if n.X == 0 && n.Y == 0 {
			n = Vec2{X: 1} // coincident centers: separation direction is arbitrary
		}
	}
	n = n.Scale(1 / n.Length())

	p := 2 * (a.Vel.Dot(n) - b.Vel.Dot(n)) / (a.Mass + b.Mass)
	deltaA := n.Scale(-p * b.Mass * a.Elasticity)
	deltaB := n.Scale(p * a.Mass * b.Elasticity)
	a.Vel = a.Vel.Add(deltaA)
	b.Vel = b.Vel.Add(deltaB)

	// De-penetrate so the balls end the step externally tangent. Each center
	// moves by the other body's mass share of the overlap.
	overlap := a.Radius + b.Radius - d
	total := a.Mass + b.Mass
	a.Pos = a.Pos.Sub(n.Scale(overlap * b.Mass / total))
	b.Pos = b.Pos.Add(n.Scale(overlap * a.Mass / total))

	impact := deltaA.Length()
	if ib := deltaB.Length(); ib > impact {
		impact = ib
	}
	return impact, true
}

// collideBallPlatform tests the ball center against the platform rectangle
// expanded by the ball radius on every side, then corrects the vertical axis
// only: the ball snaps to just above or below the platform depending on the
// sign of its vertical velocity, and vy reflects through the ball's
// elasticity.
//
// The expanded-box test treats corners as square and side approach is not
// resolved; a ball arriving horizontally passes through unless the vertical
// branch happens to trigger. Known limitation carried over from the original.
func collideBallPlatform(ball, plat *Body) (float32, bool) {
	if ball.Pos.X <= plat.Pos.X-ball.Radius || ball.Pos.X >= plat.Pos.X+plat.Width+ball.Radius {
		return 0, false
	}
	if ball.Pos.Y <= plat.Pos.Y-ball.Radius || ball.Pos.Y >= plat.Pos.Y+plat.Height+ball.Radius {
		return 0, false
	}

	before := ball.Vel.Y
	if ball.Vel.Y > 0 {
		ball.Pos.Y = plat.Pos.Y - ball.Radius
	} else {
		ball.Pos.Y = plat.Pos.Y + plat.Height + ball.Radius
	}
	ball.Vel.Y *= -ball.Elasticity

	return math32.Abs(ball.Vel.Y - before), true
}
