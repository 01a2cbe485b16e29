package object

import (
	"math/rand/v2"

	"github.com/tomz197/asteroid-shooter/internal/config"
)

// NewObstacleField spawns count obstacles at random positions at least
// excludeRadius away from the origin, where the craft respawns.
func NewObstacleField(rng *rand.Rand, count int, excludeRadius float64) []*Obstacle {
	if count < 0 {
		count = 0
	}

	field := make([]*Obstacle, 0, count)
	for i := 0; i < count; i++ {
		pos := randomPosition(rng)
		for pos.Len() < excludeRadius {
			pos = randomPosition(rng)
		}

		radius := uniform(rng, config.ObstacleMinSize, config.ObstacleMaxSize)
		field = append(field, NewObstacle(rng, pos, radius, config.ObstacleSpawnSpeed))
	}
	return field
}

// NewStarField scatters n background stars over the world.
func NewStarField(rng *rand.Rand, n int) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			Position:   randomPosition(rng),
			Brightness: uniform(rng, config.StarMinBrightness, 1.0),
		}
	}
	return stars
}

// ObstacleCountForLevel returns how many obstacles a level starts with.
func ObstacleCountForLevel(initial, level int) int {
	return initial + level - 1
}
