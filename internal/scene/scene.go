package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ball-sim/internal/sim"
)

// Config is the YAML scene file: room dimensions, gravity and the body
// roster. See Load for defaults.
type Config struct {
	Room    RoomConfig   `yaml:"room"`
	Gravity *float32     `yaml:"gravity,omitempty"` // m/s²; nil = 9.8
	Bodies  []BodyConfig `yaml:"bodies"`
}

// RoomConfig is the room size in meters.
type RoomConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// VecConfig is a 2D vector in a scene file.
type VecConfig struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// ColorConfig is an explicit body color. Omitted = random.
type ColorConfig struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// BodyConfig describes one body. Kind is "ball" (position = center, radius
// required) or "platform" (position = bottom-left corner, width/height
// required). Elasticity defaults to 1.0.
type BodyConfig struct {
	Kind       string       `yaml:"kind"`
	Position   VecConfig    `yaml:"position"`
	Velocity   VecConfig    `yaml:"velocity,omitempty"`
	Mass       float32      `yaml:"mass,omitempty"`
	Radius     float32      `yaml:"radius,omitempty"`
	Width      float32      `yaml:"width,omitempty"`
	Height     float32      `yaml:"height,omitempty"`
	Elasticity *float32     `yaml:"elasticity,omitempty"`
	Color      *ColorConfig `yaml:"color,omitempty"`
}

// Load reads a YAML scene file and builds the world from it.
func Load(path string) (*sim.World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	return Build(&cfg)
}

// Build validates a scene config and constructs the world. The body list
// keeps the file order, which is also the collision pairing order.
func Build(cfg *Config) (*sim.World, error) {
	if cfg.Room.Width <= 0 || cfg.Room.Height <= 0 {
		return nil, fmt.Errorf("room dimensions must be positive, got %gx%g", cfg.Room.Width, cfg.Room.Height)
	}

	bodies := make([]*sim.Body, 0, len(cfg.Bodies))
	for i, bc := range cfg.Bodies {
		b, err := buildBody(&bc)
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		bodies = append(bodies, b)
	}

	world := sim.NewWorld(cfg.Room.Width, cfg.Room.Height, bodies)
	if cfg.Gravity != nil {
		world.Gravity = *cfg.Gravity
	}
	return world, nil
}

func buildBody(bc *BodyConfig) (*sim.Body, error) {
	var b *sim.Body
	switch bc.Kind {
	case "ball":
		if bc.Radius <= 0 {
			return nil, fmt.Errorf("ball radius must be positive, got %g", bc.Radius)
		}
		if bc.Mass <= 0 {
			return nil, fmt.Errorf("ball mass must be positive, got %g", bc.Mass)
		}
		b = sim.NewBall(
			sim.Vec2{X: bc.Position.X, Y: bc.Position.Y},
			sim.Vec2{X: bc.Velocity.X, Y: bc.Velocity.Y},
			bc.Mass, bc.Radius,
		)
	case "platform":
		if bc.Width <= 0 || bc.Height <= 0 {
			return nil, fmt.Errorf("platform dimensions must be positive, got %gx%g", bc.Width, bc.Height)
		}
		b = sim.NewPlatform(sim.Vec2{X: bc.Position.X, Y: bc.Position.Y}, bc.Width, bc.Height)
	default:
		return nil, fmt.Errorf("unknown body kind %q", bc.Kind)
	}

	if bc.Elasticity != nil {
		b.Elasticity = *bc.Elasticity
	}
	if bc.Color != nil {
		b.Color = sim.Color{R: bc.Color.R, G: bc.Color.G, B: bc.Color.B}
	}
	return b, nil
}

// Default returns the built-in scene: a vertical column of ten equal balls
// in an 8×6 m room, dropped from evenly spaced heights.
func Default() *sim.World {
	const (
		roomWidth  float32 = 8
		roomHeight float32 = 6
		count              = 10
	)
	bodies := make([]*sim.Body, 0, count)
	for i := 0; i < count; i++ {
		bodies = append(bodies, sim.NewBall(
			sim.Vec2{X: roomWidth / 2, Y: float32(i) * roomHeight / count},
			sim.Vec2{},
			50,
			roomHeight/(4*count),
		))
	}
	return sim.NewWorld(roomWidth, roomHeight, bodies)
}
