package sim

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clone(b *Body) *Body {
	c := *b
	return &c
}

func TestCollideSymmetry(t *testing.T) {
	a := NewBall(Vec2{X: 1, Y: 1}, Vec2{X: 2, Y: -0.5}, 3, 0.6)
	b := NewBall(Vec2{X: 1.8, Y: 1.3}, Vec2{X: -1, Y: 0.25}, 7, 0.5)
	a.Elasticity = 0.9
	b.Elasticity = 0.7

	a2, b2 := clone(a), clone(b)

	_, hitAB := Collide(a, b, 1.0/600)
	_, hitBA := Collide(b2, a2, 1.0/600)

	require.True(t, hitAB)
	require.True(t, hitBA)
	assert.InDelta(t, float64(a.Pos.X), float64(a2.Pos.X), 1e-5)
	assert.InDelta(t, float64(a.Pos.Y), float64(a2.Pos.Y), 1e-5)
	assert.InDelta(t, float64(b.Pos.X), float64(b2.Pos.X), 1e-5)
	assert.InDelta(t, float64(b.Pos.Y), float64(b2.Pos.Y), 1e-5)
	assert.InDelta(t, float64(a.Vel.X), float64(a2.Vel.X), 1e-5)
	assert.InDelta(t, float64(a.Vel.Y), float64(a2.Vel.Y), 1e-5)
	assert.InDelta(t, float64(b.Vel.X), float64(b2.Vel.X), 1e-5)
	assert.InDelta(t, float64(b.Vel.Y), float64(b2.Vel.Y), 1e-5)
}

func TestEqualMassHeadOnSwap(t *testing.T) {
	// Elastic head-on collision of equal masses swaps the velocities.
	a := NewBall(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0}, 2, 0.5)
	b := NewBall(Vec2{X: 0.9, Y: 0}, Vec2{X: -1, Y: 0}, 2, 0.5)

	_, hit := Collide(a, b, 1.0/600)

	require.True(t, hit)
	assert.InDelta(t, -1, float64(a.Vel.X), 1e-5)
	assert.InDelta(t, 1, float64(b.Vel.X), 1e-5)
	assert.InDelta(t, 0, float64(a.Vel.Y), 1e-6)
	assert.InDelta(t, 0, float64(b.Vel.Y), 1e-6)
}

func TestZeroElasticityDampsOwnResponse(t *testing.T) {
	// Elasticity scales each body's own velocity change: at zero the body's
	// collision response is fully damped and its velocity is untouched (the
	// pair is still de-penetrated).
	a := NewBall(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0}, 2, 0.5)
	b := NewBall(Vec2{X: 0.9, Y: 0}, Vec2{X: -1, Y: 0}, 2, 0.5)
	a.Elasticity = 0
	b.Elasticity = 0

	_, hit := Collide(a, b, 1.0/600)

	require.True(t, hit)
	assert.Equal(t, float32(1), a.Vel.X)
	assert.Equal(t, float32(-1), b.Vel.X)
	assert.InDelta(t, 1, float64(a.Pos.DistanceTo(b.Pos)), 1e-5)
}

func TestHalfElasticityCancelsRelativeNormalVelocity(t *testing.T) {
	// With the per-body scaling and a hardcoded factor of 2 in the impulse,
	// an equal pair at elasticity 0.5 ends with zero relative normal
	// velocity: the fully inelastic outcome of this model.
	a := NewBall(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0}, 2, 0.5)
	b := NewBall(Vec2{X: 0.9, Y: 0}, Vec2{X: -1, Y: 0}, 2, 0.5)
	a.Elasticity = 0.5
	b.Elasticity = 0.5

	_, hit := Collide(a, b, 1.0/600)

	require.True(t, hit)
	rel := a.Vel.Sub(b.Vel)
	assert.InDelta(t, 0, float64(rel.X), 1e-5)
	assert.InDelta(t, 0, float64(rel.Y), 1e-6)
}

func TestNoContactBeyondTouching(t *testing.T) {
	a := NewBall(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0}, 1, 0.5)
	b := NewBall(Vec2{X: 1.1, Y: 0}, Vec2{}, 1, 0.5)

	impact, hit := Collide(a, b, 1.0/600)

	assert.False(t, hit)
	assert.Zero(t, impact)
	assert.Equal(t, float32(1), a.Vel.X)
}

func TestNonPenetrationAfterResolve(t *testing.T) {
	a := NewBall(Vec2{X: 2, Y: 2}, Vec2{X: 0.5, Y: -0.3}, 1, 0.4)
	b := NewBall(Vec2{X: 2.5, Y: 2.2}, Vec2{X: -0.2, Y: 0}, 5, 0.3)

	_, hit := Collide(a, b, 1.0/600)

	require.True(t, hit)
	assert.InDelta(t, 0.7, float64(a.Pos.DistanceTo(b.Pos)), 1e-4,
		"balls must end exactly tangent")
}

func TestCoincidentCentersStaySeparable(t *testing.T) {
	// Two balls at the exact same point: no division by zero, and the pair
	// still comes out finite and tangent in some direction.
	a := NewBall(Vec2{X: 3, Y: 3}, Vec2{}, 1, 0.5)
	b := NewBall(Vec2{X: 3, Y: 3}, Vec2{}, 1, 0.5)

	_, hit := Collide(a, b, 1.0/600)

	require.True(t, hit)
	assert.False(t, math32.IsNaN(a.Pos.X) || math32.IsNaN(a.Pos.Y))
	assert.False(t, math32.IsNaN(b.Pos.X) || math32.IsNaN(b.Pos.Y))
	assert.False(t, math32.IsNaN(a.Vel.X) || math32.IsNaN(b.Vel.X))
	assert.InDelta(t, 1, float64(a.Pos.DistanceTo(b.Pos)), 1e-4)
}

func TestBallPlatformLandOnTop(t *testing.T) {
	plat := NewPlatform(Vec2{X: 1, Y: 1}, 2, 0.5)
	ball := NewBall(Vec2{X: 2, Y: 1.8}, Vec2{X: 0, Y: -2}, 1, 0.4)
	ball.Elasticity = 0.8

	impact, hit := Collide(ball, plat, 1.0/600)

	require.True(t, hit)
	assert.InDelta(t, 1.9, float64(ball.Pos.Y), 1e-5) // platform top + radius
	assert.InDelta(t, 1.6, float64(ball.Vel.Y), 1e-5)
	assert.InDelta(t, 3.6, float64(impact), 1e-5)
	assert.Equal(t, Vec2{X: 1, Y: 1}, plat.Pos, "platform never moves")
}

func TestBallPlatformBounceOffBottom(t *testing.T) {
	plat := NewPlatform(Vec2{X: 1, Y: 2}, 2, 0.5)
	ball := NewBall(Vec2{X: 2, Y: 1.8}, Vec2{X: 0, Y: 3}, 1, 0.4)

	_, hit := Collide(ball, plat, 1.0/600)

	require.True(t, hit)
	assert.InDelta(t, 1.6, float64(ball.Pos.Y), 1e-5) // platform bottom - radius
	assert.InDelta(t, -3, float64(ball.Vel.Y), 1e-5)
}

func TestBallPlatformOrderIndependent(t *testing.T) {
	plat := NewPlatform(Vec2{X: 1, Y: 1}, 2, 0.5)
	ball := NewBall(Vec2{X: 2, Y: 1.8}, Vec2{X: 0, Y: -2}, 1, 0.4)
	plat2, ball2 := clone(plat), clone(ball)

	_, hit := Collide(ball, plat, 1.0/600)
	_, hit2 := Collide(plat2, ball2, 1.0/600)

	require.True(t, hit)
	require.True(t, hit2)
	assert.Equal(t, ball.Pos, ball2.Pos)
	assert.Equal(t, ball.Vel, ball2.Vel)
}

func TestBallPlatformSidePassThrough(t *testing.T) {
	// Horizontal-side contact is not resolved; a ball outside the expanded
	// box in x passes by untouched.
	plat := NewPlatform(Vec2{X: 4, Y: 1}, 2, 0.5)
	ball := NewBall(Vec2{X: 3.5, Y: 1.25}, Vec2{X: 5, Y: 0}, 1, 0.1)

	_, hit := Collide(ball, plat, 1.0/600)

	assert.False(t, hit)
	assert.Equal(t, float32(5), ball.Vel.X)
}

func TestPlatformPlatformNoop(t *testing.T) {
	a := NewPlatform(Vec2{X: 1, Y: 1}, 2, 0.5)
	b := NewPlatform(Vec2{X: 1.5, Y: 1.2}, 2, 0.5)

	impact, hit := Collide(a, b, 1.0/600)

	assert.False(t, hit)
	assert.Zero(t, impact)
}
