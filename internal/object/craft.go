package object

import (
	"github.com/tomz197/asteroid-shooter/internal/config"
	"github.com/tomz197/asteroid-shooter/internal/physics"
)

// Craft is the player-controlled ship.
type Craft struct {
	Position physics.Vec2
	Velocity physics.Vec2
	Heading  float64 // Radians, 0 = pointing right, increases counter-clockwise

	// Set every tick from input; read by renderers for the thrust flames.
	ForwardThrustActive bool
	ReverseThrustActive bool

	radius float64
}

// NewCraft creates a craft at the origin pointing right.
func NewCraft() *Craft {
	return &Craft{radius: config.CraftRadius}
}

// Radius returns the constant collision radius.
func (c *Craft) Radius() float64 {
	return c.radius
}

// Reset moves the craft back to the origin, stops it and clears the thrust
// flags. Heading is kept.
func (c *Craft) Reset() {
	c.Position = physics.Vec2{}
	c.Velocity = physics.Vec2{}
	c.ForwardThrustActive = false
	c.ReverseThrustActive = false
}

// Update applies input, friction and motion for one tick.
// reverseEnabled selects the control law for reverse input: true pushes
// backwards along the heading, false damps the current velocity.
func (c *Craft) Update(in Controls, reverseEnabled bool) {
	if in.ForwardThrust {
		c.ForwardThrustActive = true
		c.ReverseThrustActive = false
		c.Velocity = c.Velocity.Add(c.thrust())
	} else {
		c.ForwardThrustActive = false
	}

	if in.RotateLeft {
		c.Heading += config.CraftRotationStep
	}
	if in.RotateRight {
		c.Heading -= config.CraftRotationStep
	}

	if in.ReverseThrust {
		if reverseEnabled {
			c.ReverseThrustActive = true
			c.ForwardThrustActive = false
			// Uses the heading after this tick's rotation.
			c.Velocity = c.Velocity.Sub(c.thrust())
		} else {
			c.Velocity = c.Velocity.Scale(config.CraftReverseDamping)
		}
	} else if !in.ForwardThrust {
		c.ReverseThrustActive = false
	}

	c.Velocity = c.Velocity.Scale(config.CraftFriction)
	c.Position = physics.Wrap(c.Position.Add(c.Velocity))
}

func (c *Craft) thrust() physics.Vec2 {
	return physics.FromAngle(c.Heading).Scale(config.CraftThrust)
}
