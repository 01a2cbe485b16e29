package game

import (
	"github.com/tomz197/asteroid-shooter/internal/config"
	"github.com/tomz197/asteroid-shooter/internal/object"
	"github.com/tomz197/asteroid-shooter/internal/physics"
)

// gridCellSize is the widest interaction distance (craft vs largest
// obstacle), so every overlap is found in the 3x3 neighbourhood.
const gridCellSize = config.CraftRadius + config.ObstacleMaxSize

// resolveCollisions handles projectile hits, then the craft.
// Obstacles destroyed this tick are only marked until the end so grid
// indices stay valid.
func (s *Session) resolveCollisions() {
	s.populateGrid()

	s.resolveProjectileHits()
	s.resolveCraftHit()

	s.compactObstacles()
}

func (s *Session) populateGrid() {
	s.grid.Clear()
	s.destroyed = s.destroyed[:0]
	for i, o := range s.obstacles {
		s.grid.Insert(o.Position, i)
		s.destroyed = append(s.destroyed, false)
	}
}

// resolveProjectileHits walks projectiles in storage order. Each one
// destroys at most one obstacle, the lowest-indexed it overlaps.
func (s *Session) resolveProjectileHits() {
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		hit := s.firstObstacleHit(p.Position, config.ProjectileRadius)
		if hit < 0 {
			kept = append(kept, p)
			continue
		}
		s.destroyObstacle(hit)
	}
	clear(s.projectiles[len(kept):])
	s.projectiles = kept
}

// firstObstacleHit returns the lowest index of a live obstacle overlapping
// the circle, or -1.
func (s *Session) firstObstacleHit(pos physics.Vec2, radius float64) int {
	first := -1
	s.grid.QueryAround(pos, func(i int) bool {
		if s.destroyed[i] || (first >= 0 && i > first) {
			return false
		}
		o := s.obstacles[i]
		if physics.CirclesOverlap(pos, radius, o.Position, o.Radius) {
			first = i
		}
		return false
	})
	return first
}

// destroyObstacle scores the obstacle and appends its fragments, which
// later projectiles in the same tick can already hit.
func (s *Session) destroyObstacle(i int) {
	o := s.obstacles[i]
	s.destroyed[i] = true

	class := o.Class()
	s.stats.RecordDestroyed(class)
	s.score += s.scoreFor(class)

	for _, f := range o.Fragment(s.rng) {
		s.grid.Insert(f.Position, len(s.obstacles))
		s.obstacles = append(s.obstacles, f)
		s.destroyed = append(s.destroyed, false)
	}
}

// resolveCraftHit costs a life on the first overlap unless the craft is
// still invulnerable, in which case the timer runs down instead.
func (s *Session) resolveCraftHit() {
	if s.invulnerable > 0 {
		s.invulnerable--
		return
	}
	if s.firstObstacleHit(s.craft.Position, s.craft.Radius()) < 0 {
		return
	}

	s.lives--
	s.stats.RecordLifeLost()
	s.invulnerable = config.InvulnerabilityTicks
	s.log.Debug("craft hit", "lives", s.lives, "level", s.level)

	if s.lives <= 0 {
		s.stats.Finish(s.now())
		s.setMode(ModeGameOver)
	}
}

func (s *Session) compactObstacles() {
	kept := s.obstacles[:0]
	for i, o := range s.obstacles {
		if !s.destroyed[i] {
			kept = append(kept, o)
		}
	}
	clear(s.obstacles[len(kept):])
	s.obstacles = kept
}

// scoreFor returns the points for destroying an obstacle of the given tier.
func (s *Session) scoreFor(class object.SizeClass) int {
	if !s.rules.SizeTieredScoring {
		return config.ScoreFlat
	}
	switch class {
	case object.SizeLarge:
		return config.ScoreLargeObstacle
	case object.SizeMedium:
		return config.ScoreMediumObstacle
	default:
		return config.ScoreSmallObstacle
	}
}
