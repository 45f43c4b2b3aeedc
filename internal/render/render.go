// Package render is the display driver: it owns the window, the frame loop
// and the world-to-pixel mapping. The physics engine never imports it; the
// loop calls sim.World.Step at a fixed cadence and reads body state back for
// drawing.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"ball-sim/internal/debug"
	"ball-sim/internal/sim"
)

const (
	windowWidth  = 800
	windowHeight = 600
	drawFPS      = 60
)

// Options controls the loop pacing. PhysicsHz is the fixed step rate;
// TimeScale multiplies the step dt, speeding the simulation up or down
// without changing the frame rate.
type Options struct {
	Title     string
	PhysicsHz float32
	TimeScale float32
}

// Run opens the window and drives the loop until the window is closed.
// Physics runs at Options.PhysicsHz through an accumulator, decoupled from
// the draw rate; several steps (or none) may run per frame.
func Run(world *sim.World, dbg *debug.Debug, opts Options) {
	if opts.PhysicsHz <= 0 {
		opts.PhysicsHz = 600
	}
	if opts.TimeScale <= 0 {
		opts.TimeScale = 1
	}

	rl.InitWindow(windowWidth, windowHeight, opts.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(drawFPS)

	dt := 1 / opts.PhysicsHz
	var accumulator float32

	for !rl.WindowShouldClose() {
		accumulator += rl.GetFrameTime()
		// Cap catch-up after a stall so the loop cannot spiral.
		if accumulator > 0.25 {
			accumulator = 0.25
		}
		for accumulator >= dt {
			world.Step(dt * opts.TimeScale)
			accumulator -= dt
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		Draw(world)
		dbg.Draw(world.Collisions)
		rl.EndDrawing()
	}
}

// Draw renders every body in screen space. Pixels-per-meter comes from the
// window width over the room width; the y axis is flipped so world y-up
// becomes screen y-down.
func Draw(world *sim.World) {
	ppm := float32(rl.GetScreenWidth()) / world.RoomWidth
	screenH := float32(rl.GetScreenHeight())

	for _, b := range world.Bodies {
		col := rl.NewColor(b.Color.R, b.Color.G, b.Color.B, 255)
		switch b.Kind {
		case sim.KindBall:
			center := rl.NewVector2(b.Pos.X*ppm, screenH-b.Pos.Y*ppm)
			rl.DrawCircleV(center, b.Radius*ppm, col)
		case sim.KindPlatform:
			rl.DrawRectangle(
				int32(b.Pos.X*ppm),
				int32(screenH-(b.Pos.Y+b.Height)*ppm),
				int32(b.Width*ppm),
				int32(b.Height*ppm),
				col,
			)
		}
	}
}
