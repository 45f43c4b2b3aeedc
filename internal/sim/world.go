package sim

// Observer receives one notification per resolved contact (wall or
// body-body) with the non-negative speed-change magnitude of the loudest
// participant. Implementations must not mutate the world's bodies.
type Observer interface {
	OnCollision(impact float32)
}

// World owns the room bounds and the body list and advances the whole
// simulation one fixed increment at a time. Bodies are created once at setup
// and live for the world's lifetime; the body order is stable and defines
// the pairing order for collisions.
//
// A World is single-threaded: Step performs no I/O, never blocks, and must
// only be called from one goroutine.
type World struct {
	RoomWidth  float32
	RoomHeight float32
	Gravity    float32 // m/s², downward; may be changed between steps
	Bodies     []*Body

	// Collisions counts resolved contacts since construction. Observability
	// only; physics never reads it.
	Collisions int

	observer Observer
}

// NewWorld returns a world with the given room (meters) and body roster.
// Gravity defaults to 9.8 m/s².
func NewWorld(roomWidth, roomHeight float32, bodies []*Body) *World {
	return &World{
		RoomWidth:  roomWidth,
		RoomHeight: roomHeight,
		Gravity:    9.8,
		Bodies:     bodies,
	}
}

// SetObserver registers the collision observer. Pass nil to detach.
func (w *World) SetObserver(o Observer) {
	w.observer = o
}

// Step advances the world by dt seconds:
//
//  1. integrate positions from the velocities carried over from the previous
//     step (semi-implicit ordering),
//  2. per movable body, apply gravity and resolve wall contact,
//  3. resolve every unordered body pair (all pairs, no broad phase).
//
// Each resolved contact increments Collisions and notifies the observer.
func (w *World) Step(dt float32) {
	for _, b := range w.Bodies {
		if b.Fixed {
			continue
		}
		b.ApplyVelocity(dt)
	}

	for _, b := range w.Bodies {
		if b.Fixed {
			continue
		}
		b.ApplyGravity(w.Gravity, dt)
		if impact, hit := b.CollideWalls(w.RoomWidth, w.RoomHeight, w.Gravity); hit {
			w.contact(impact)
		}
	}

	for i := 0; i < len(w.Bodies); i++ {
		for j := i + 1; j < len(w.Bodies); j++ {
			if impact, hit := Collide(w.Bodies[i], w.Bodies[j], dt); hit {
				w.contact(impact)
			}
		}
	}
}

func (w *World) contact(impact float32) {
	w.Collisions++
	if w.observer != nil {
		w.observer.OnCollision(impact)
	}
}
