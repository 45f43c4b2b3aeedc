// Package sound turns collision notifications into short procedural thumps.
// It is the only audio surface; the physics engine knows it solely through
// the sim.Observer interface.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/chewxy/math32"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// thumpDuration is how long one collision thump plays.
	thumpDuration = 120 * time.Millisecond

	// loudnessSlope controls how fast Loudness saturates. Chosen so a gentle
	// tap (~0.5 m/s) is clearly audible and hard impacts max out.
	loudnessSlope = 0.8
)

// Player implements sim.Observer by queueing a thump per collision, with
// volume derived from the impact magnitude. Safe to call from the physics
// goroutine while the speaker streams.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer returns a player. Call Initialize before use; until then
// notifications are dropped silently.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts streaming the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences and detaches all queued thumps. The speaker itself has no
// close; clearing the mixer is enough to stop output.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// OnCollision queues one thump at Loudness(impact). An impact of zero maps
// to zero volume and produces no sound at all.
func (p *Player) OnCollision(impact float32) {
	vol := Loudness(impact)
	if vol <= 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(thumpDuration), newThump(sampleRate, float64(vol)))
	// The speaker goroutine streams from the mixer concurrently.
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Loudness maps an impact magnitude (m/s of velocity change) to a playback
// volume. Sigmoid saturating in [0, 1): zero stays exactly zero, small
// impacts rise steeply, large ones approach but never reach full scale.
func Loudness(impact float32) float32 {
	if impact <= 0 {
		return 0
	}
	return 2/(1+math32.Exp(-impact*loudnessSlope)) - 1
}

// thump generates a decaying low sine with a touch of noise, like a ball
// hitting a hard floor.
type thump struct {
	sr   beep.SampleRate
	vol  float64
	pos  int
	seed int64
}

func newThump(sr beep.SampleRate, vol float64) *thump {
	return &thump{sr: sr, vol: vol, seed: time.Now().UnixNano()}
}

func (g *thump) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, exponential decay.
		envelope := math.Exp(-t * 24)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		sample := g.vol * envelope * (0.7*math.Sin(2*math.Pi*150*t) + 0.1*noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *thump) Err() error {
	return nil
}
