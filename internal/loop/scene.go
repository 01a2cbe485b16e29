package loop

import (
	"github.com/tomz197/asteroid-shooter/internal/draw"
	"github.com/tomz197/asteroid-shooter/internal/game"
	"github.com/tomz197/asteroid-shooter/internal/physics"
)

// starVisible is the brightness above which a star is plotted. Stars pulse
// across it, which gives the twinkle on a one-bit canvas.
const starVisible = 0.5

// drawScene rasterises the world: stars, obstacles, projectiles, then the
// craft on top. outline is scratch space and is returned for reuse.
func drawScene(c *draw.Canvas, snap *game.Snapshot, outline []physics.Vec2) []physics.Vec2 {
	for _, s := range snap.Stars {
		if s.Brightness > starVisible {
			c.Plot(s.Position)
		}
	}

	for i := range snap.Obstacles {
		outline = snap.Obstacles[i].Outline(outline[:0])
		c.Polygon(outline, false)
	}

	for _, p := range snap.Projectiles {
		c.Plot(p.Position)
	}

	if snap.Craft.Visible {
		c.Polygon(snap.Craft.Outline, true)
		if snap.Craft.Flame != nil {
			c.Polygon(snap.Craft.Flame, false)
		}
	}
	return outline
}
