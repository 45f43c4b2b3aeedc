package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 5
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime overlays (FPS, heap, collision counter). All overlays
// are off by default.
type Debug struct {
	ShowFPS        bool
	ShowMemAlloc   bool
	ShowCollisions bool

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastCollText string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders any enabled overlays at the top-left. Call after the world in
// the draw loop. collisions is the world's running contact counter.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(collisions int) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.lastFpsText == "" {
		update = true
	}

	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("fps: %d", rl.GetFPS())
		}
		rl.DrawText(d.lastFpsText, padding, y, fontSize, rl.Black)
		y += lineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("mem: %.2f MiB", mb)
		}
		rl.DrawText(d.lastMemText, padding, y, fontSize, rl.Black)
		y += lineHeight
	}

	if d.ShowCollisions {
		if update {
			d.lastCollText = fmt.Sprintf("collisions: %d", collisions)
		}
		rl.DrawText(d.lastCollText, padding, y, fontSize, rl.Black)
	}
}
