package main

import (
	"flag"
	"log"

	"ball-sim/internal/debug"
	"ball-sim/internal/render"
	"ball-sim/internal/scene"
	"ball-sim/internal/sim"
	"ball-sim/internal/sound"
)

func main() {
	scenePath := flag.String("scene", "", "YAML scene file (empty = built-in ball column)")
	mute := flag.Bool("mute", false, "disable collision sounds")
	timeScale := flag.Float64("time-scale", 1.0, "simulation speed multiplier (does not affect frame rate)")
	physicsHz := flag.Float64("physics-hz", 600, "physics steps per second")
	showFPS := flag.Bool("fps", true, "show the fps overlay")
	showCollisions := flag.Bool("collisions", false, "show the collision counter overlay")
	flag.Parse()

	var world *sim.World
	if *scenePath != "" {
		w, err := scene.Load(*scenePath)
		if err != nil {
			log.Fatalf("load scene: %v", err)
		}
		world = w
	} else {
		world = scene.Default()
	}

	if !*mute {
		player := sound.NewPlayer()
		if err := player.Initialize(); err != nil {
			log.Printf("audio unavailable, continuing silent: %v", err)
		} else {
			defer player.Cleanup()
			world.SetObserver(player)
		}
	}

	dbg := debug.New()
	dbg.ShowFPS = *showFPS
	dbg.ShowCollisions = *showCollisions

	render.Run(world, dbg, render.Options{
		Title:     "ball-sim",
		PhysicsHz: float32(*physicsHz),
		TimeScale: float32(*timeScale),
	})
}
