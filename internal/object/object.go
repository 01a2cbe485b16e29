// Package object defines the game entities (craft, projectiles, obstacles,
// background stars) and their per-tick mutation rules.
package object

import (
	"math/rand/v2"

	"github.com/tomz197/asteroid-shooter/internal/config"
	"github.com/tomz197/asteroid-shooter/internal/physics"
)

// Controls are the held input flags applied to the craft each tick.
type Controls struct {
	ForwardThrust bool
	ReverseThrust bool
	RotateLeft    bool
	RotateRight   bool
}

// BlinkVisible reports whether an object with remaining invulnerability
// ticks should be drawn this tick (flicker effect).
// Returns true always if remaining <= 0.
func BlinkVisible(remaining int) bool {
	if remaining <= 0 {
		return true
	}
	return remaining%config.BlinkPeriodTicks < config.BlinkPeriodTicks/2
}

// uniform returns a value in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// randomPosition returns a uniform position inside the world.
func randomPosition(rng *rand.Rand) physics.Vec2 {
	return physics.Vec2{
		X: uniform(rng, physics.WorldMin, physics.WorldMax),
		Y: uniform(rng, physics.WorldMin, physics.WorldMax),
	}
}

// randomVelocity returns a velocity with each axis in [-limit, limit).
func randomVelocity(rng *rand.Rand, limit float64) physics.Vec2 {
	return physics.Vec2{
		X: uniform(rng, -limit, limit),
		Y: uniform(rng, -limit, limit),
	}
}
