package object

import (
	"math"

	"github.com/tomz197/asteroid-shooter/internal/physics"
)

// Outline returns the craft hull in world coordinates: nose, left wing,
// tail notch, right wing.
func (c *Craft) Outline() []physics.Vec2 {
	s := c.radius
	return c.transform([]physics.Vec2{
		{X: s, Y: 0},
		{X: -s, Y: s * 0.7},
		{X: -s * 0.5, Y: 0},
		{X: -s, Y: -s * 0.7},
	})
}

// Flame returns the thrust flame triangle for the active thrust direction,
// or nil when the craft is coasting.
func (c *Craft) Flame() []physics.Vec2 {
	s := c.radius
	switch {
	case c.ReverseThrustActive:
		return c.transform([]physics.Vec2{
			{X: s, Y: 0},
			{X: s * 1.5, Y: s * 0.3},
			{X: s * 1.5, Y: -s * 0.3},
		})
	case c.ForwardThrustActive:
		return c.transform([]physics.Vec2{
			{X: -s * 0.5, Y: 0},
			{X: -s * 1.5, Y: s * 0.3},
			{X: -s * 1.5, Y: -s * 0.3},
		})
	default:
		return nil
	}
}

// transform rotates local points by the heading and moves them to the
// craft position, in place.
func (c *Craft) transform(local []physics.Vec2) []physics.Vec2 {
	sin, cos := math.Sincos(c.Heading)
	for i, p := range local {
		local[i] = physics.Vec2{
			X: c.Position.X + p.X*cos - p.Y*sin,
			Y: c.Position.Y + p.X*sin + p.Y*cos,
		}
	}
	return local
}

// Outline appends the obstacle's irregular polygon, in world coordinates,
// to dst and returns the extended slice.
func (o *Obstacle) Outline(dst []physics.Vec2) []physics.Vec2 {
	for i := 0; i < o.Edges; i++ {
		angle := 2 * math.Pi * float64(i) / float64(o.Edges)
		r := o.Radius * (0.8 + 0.4*math.Sin(angle*3))
		a := angle + o.Rotation
		dst = append(dst, physics.Vec2{
			X: o.Position.X + r*math.Cos(a),
			Y: o.Position.Y + r*math.Sin(a),
		})
	}
	return dst
}
