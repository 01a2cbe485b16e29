package object

import (
	"github.com/tomz197/asteroid-shooter/internal/config"
	"github.com/tomz197/asteroid-shooter/internal/physics"
)

// Projectile is a shot fired by the craft.
type Projectile struct {
	Position physics.Vec2
	Velocity physics.Vec2
	Life     int // Ticks remaining before removal
}

// NewProjectile creates a projectile at origin traveling along heading.
// Unlike the ship, it does not inherit the shooter's velocity.
func NewProjectile(origin physics.Vec2, heading float64) *Projectile {
	return &Projectile{
		Position: origin,
		Velocity: physics.FromAngle(heading).Scale(config.ProjectileSpeed),
		Life:     config.ProjectileLife,
	}
}

// Update moves the projectile and ages it. Returns true once it has expired.
func (p *Projectile) Update() (remove bool) {
	p.Position = physics.Wrap(p.Position.Add(p.Velocity))
	p.Life--
	return p.Life <= 0
}
