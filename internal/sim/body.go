package sim

import (
	"math/rand"

	"github.com/chewxy/math32"
)

// Kind discriminates the two body variants.
type Kind uint8

const (
	// KindBall is a movable circle.
	KindBall Kind = iota
	// KindPlatform is a static axis-aligned rectangle.
	KindPlatform
)

// Color is a cosmetic per-body RGB tint. It has no effect on physics.
type Color struct {
	R, G, B uint8
}

// RandomColor returns an arbitrary color, used when a body is created without
// an explicit one.
func RandomColor() Color {
	return Color{
		R: uint8(rand.Intn(256)),
		G: uint8(rand.Intn(256)),
		B: uint8(rand.Intn(256)),
	}
}

// Body is a simulated object: a movable ball or a static platform.
// Position and velocity are in world units (meters, meters/second), y up.
// Fixed bodies (platforms) are excluded from integration, gravity and wall
// contact; their mass is never read by any formula.
//
// For platforms Pos is the bottom-left corner; for balls it is the center.
type Body struct {
	Kind       Kind
	Pos        Vec2
	Vel        Vec2
	Mass       float32
	Elasticity float32 // velocity fraction kept on bounce; 1 = lossless
	Fixed      bool
	Color      Color

	Radius        float32 // ball only
	Width, Height float32 // platform only
}

// NewBall returns a movable ball. Elasticity defaults to 1 (perfectly
// elastic) and color to a random tint; both fields can be overwritten before
// the first Step.
func NewBall(pos, vel Vec2, mass, radius float32) *Body {
	return &Body{
		Kind:       KindBall,
		Pos:        pos,
		Vel:        vel,
		Mass:       mass,
		Elasticity: 1,
		Color:      RandomColor(),
		Radius:     radius,
	}
}

// NewPlatform returns a static platform with its bottom-left corner at pos.
func NewPlatform(pos Vec2, width, height float32) *Body {
	return &Body{
		Kind:       KindPlatform,
		Pos:        pos,
		Elasticity: 1,
		Fixed:      true,
		Color:      RandomColor(),
		Width:      width,
		Height:     height,
	}
}

// ApplyVelocity advances position by one step of the current velocity.
// Callers skip fixed bodies.
func (b *Body) ApplyVelocity(dt float32) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// ApplyGravity accelerates the body downward. A ball resting on the floor
// (center at or below its radius) is left alone, which stands in for the
// normal force and stops infinitesimal re-bouncing.
func (b *Body) ApplyGravity(g, dt float32) {
	if b.Fixed {
		return
	}
	if b.Pos.Y <= b.Radius {
		return
	}
	b.Vel.Y -= g * dt
}

// CollideWalls reflects the ball off the left wall, right wall and floor and
// clamps it back inside the room. The room is open at the top; balls may
// leave through the ceiling.
//
// On floor contact the vertical speed is first reconstructed to what it was
// at the true moment of contact (ke = vy² − 2g·(r − y)), undoing the
// overshoot a discrete step introduces under constant gravity, and only then
// reflected through the ball's elasticity.
//
// Returns the magnitude of the velocity change and whether any wall was hit.
func (b *Body) CollideWalls(roomWidth, roomHeight, g float32) (float32, bool) {
	if b.Kind != KindBall {
		return 0, false
	}

	before := b.Vel
	hit := false

	if b.Pos.X < b.Radius {
		b.Vel.X *= -b.Elasticity
		b.Pos.X = b.Radius
		hit = true
	} else if b.Pos.X > roomWidth-b.Radius {
		b.Vel.X *= -b.Elasticity
		b.Pos.X = roomWidth - b.Radius
		hit = true
	}

	if b.Pos.Y < b.Radius && b.Vel.Y < 0 {
		// ke can go slightly negative from discretization; |ke| keeps the
		// square root real.
		ke := b.Vel.Y*b.Vel.Y - 2*g*(b.Radius-b.Pos.Y)
		b.Vel.Y = -math32.Sqrt(math32.Abs(ke))
		b.Vel.Y *= -b.Elasticity
		b.Pos.Y = b.Radius
		hit = true
	}

	if !hit {
		return 0, false
	}
	return b.Vel.Sub(before).Length(), true
}
