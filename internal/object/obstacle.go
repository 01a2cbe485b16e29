package object

import (
	"math/rand/v2"

	"github.com/tomz197/asteroid-shooter/internal/config"
	"github.com/tomz197/asteroid-shooter/internal/physics"
)

// SizeClass represents the size tier of an obstacle.
type SizeClass int

const (
	SizeSmall  SizeClass = 1
	SizeMedium SizeClass = 2
	SizeLarge  SizeClass = 3
)

// String returns the tier name.
func (s SizeClass) String() string {
	switch s {
	case SizeLarge:
		return "large"
	case SizeMedium:
		return "medium"
	case SizeSmall:
		return "small"
	default:
		return "unknown"
	}
}

// Classify maps a radius to its size tier.
func Classify(radius float64) SizeClass {
	switch {
	case radius > config.LargeThreshold:
		return SizeLarge
	case radius > config.MediumThreshold:
		return SizeMedium
	default:
		return SizeSmall
	}
}

// Obstacle is a drifting rock that splits when shot.
type Obstacle struct {
	Position physics.Vec2
	Velocity physics.Vec2
	Radius   float64 // Collision radius, also drives the size tier
	Rotation float64 // Radians, cosmetic
	Edges    int     // Polygon edge count, cosmetic
}

// NewObstacle creates an obstacle at pos with a random velocity bounded by
// speed per axis, a random edge count and zero rotation.
func NewObstacle(rng *rand.Rand, pos physics.Vec2, radius, speed float64) *Obstacle {
	return &Obstacle{
		Position: pos,
		Velocity: randomVelocity(rng, speed),
		Radius:   radius,
		Edges:    config.ObstacleMinEdges + rng.IntN(config.ObstacleMaxEdges-config.ObstacleMinEdges+1),
	}
}

// Class returns the obstacle's size tier.
func (o *Obstacle) Class() SizeClass {
	return Classify(o.Radius)
}

// Splits reports whether destroying the obstacle yields fragments.
func (o *Obstacle) Splits() bool {
	return o.Radius > config.MediumThreshold
}

// Fragment returns the pieces left behind when the obstacle is destroyed:
// two smaller, faster obstacles at the same position, or none when the
// obstacle is too small to split.
func (o *Obstacle) Fragment(rng *rand.Rand) []*Obstacle {
	if !o.Splits() {
		return nil
	}

	pieces := make([]*Obstacle, 0, config.ObstacleFragments)
	for i := 0; i < config.ObstacleFragments; i++ {
		pieces = append(pieces, NewObstacle(rng, o.Position,
			o.Radius*config.ObstacleFragmentScale, config.ObstacleFragmentSpeed))
	}
	return pieces
}

// Update moves and spins the obstacle for one tick.
func (o *Obstacle) Update() {
	o.Position = physics.Wrap(o.Position.Add(o.Velocity))
	o.Rotation += config.ObstacleSpinPerTick
}
