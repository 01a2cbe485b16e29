// Package config centralizes all tunable game parameters and the rules that
// select between game variants.
package config

import (
	"math"
	"time"
)

// Tick timing. The simulation advances in fixed steps; front-ends call
// Tick once per TickInterval.
const (
	TickInterval = 16 * time.Millisecond
	TicksPerSec  = 60
)

// Craft
const (
	CraftRadius         = 0.02
	CraftThrust         = 0.0005 // Velocity added per tick of thrust
	CraftFriction       = 0.99   // Velocity multiplier per tick
	CraftRotationStep   = 0.15   // Radians per tick of rotation input
	CraftReverseDamping = 0.9    // Velocity multiplier per tick when reverse thrust is disabled
)

// Projectiles
const (
	ProjectileSpeed  = 0.01
	ProjectileLife   = 100 // Ticks
	ProjectileRadius = 0.01
	MaxProjectiles   = 10
)

// Obstacles
const (
	ObstacleMinSize       = 0.03
	ObstacleMaxSize       = 0.08
	ObstacleMinEdges      = 6
	ObstacleMaxEdges      = 9
	ObstacleSpawnSpeed    = 0.005   // Max per-axis speed at level start
	ObstacleFragmentSpeed = 0.00625 // Max per-axis speed of fragments
	ObstacleFragmentScale = 0.6
	ObstacleFragments     = 2
	ObstacleSpinPerTick   = math.Pi / 180 // One degree
	SpawnExcludeRadius    = 0.3
	InitialObstacles      = 5
)

// Size tier thresholds, derived from the obstacle size range.
const (
	LargeThreshold  = ObstacleMaxSize * 0.8
	MediumThreshold = ObstacleMinSize * 1.5
)

// Background stars
const (
	StarCount         = 100
	StarMinBrightness = 0.3
	StarPhaseStep     = 0.1
	StarPulse         = 0.4
)

// Scoring
const (
	ScoreLargeObstacle  = 20
	ScoreMediumObstacle = 15
	ScoreSmallObstacle  = 10
	ScoreFlat           = 10
)

// Player
const (
	InitialLives         = 3
	InvulnerabilityTicks = 120
	BlinkPeriodTicks     = 10
)
