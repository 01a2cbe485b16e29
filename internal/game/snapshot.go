package game

import (
	"github.com/tomz197/asteroid-shooter/internal/object"
	"github.com/tomz197/asteroid-shooter/internal/physics"
	"github.com/tomz197/asteroid-shooter/internal/stats"
)

// CraftView is the render-facing copy of the craft.
type CraftView struct {
	Position      physics.Vec2
	Heading       float64
	Radius        float64
	ForwardThrust bool
	ReverseThrust bool
	Visible       bool // False on the off-phase of the invulnerability blink

	Outline []physics.Vec2
	Flame   []physics.Vec2 // Nil while coasting
}

// Snapshot is a read-only copy of a session taken between ticks.
// Entities are copied by value so the session can keep mutating.
type Snapshot struct {
	Mode            Mode
	Level           int
	Score           int
	Lives           int
	Invulnerability int

	Craft       CraftView
	Obstacles   []object.Obstacle
	Projectiles []object.Projectile
	Stars       []object.Star

	Report *stats.Report // Set only in ModeReport
}

// Snapshot returns a fresh copy of the session state.
func (s *Session) Snapshot() Snapshot {
	var snap Snapshot
	s.SnapshotInto(&snap)
	return snap
}

// SnapshotInto fills dst, reusing its slices to avoid per-frame allocations.
func (s *Session) SnapshotInto(dst *Snapshot) {
	dst.Mode = s.mode
	dst.Level = s.level
	dst.Score = s.score
	dst.Lives = s.lives
	dst.Invulnerability = s.invulnerable

	c := s.craft
	dst.Craft = CraftView{
		Position:      c.Position,
		Heading:       c.Heading,
		Radius:        c.Radius(),
		ForwardThrust: c.ForwardThrustActive,
		ReverseThrust: c.ReverseThrustActive,
		Visible:       object.BlinkVisible(s.invulnerable),
		Outline:       c.Outline(),
		Flame:         c.Flame(),
	}

	dst.Obstacles = dst.Obstacles[:0]
	for _, o := range s.obstacles {
		dst.Obstacles = append(dst.Obstacles, *o)
	}

	dst.Projectiles = dst.Projectiles[:0]
	for _, p := range s.projectiles {
		dst.Projectiles = append(dst.Projectiles, *p)
	}

	dst.Stars = append(dst.Stars[:0], s.stars...)

	dst.Report = nil
	if s.mode == ModeReport {
		r := s.Report()
		dst.Report = &r
	}
}
