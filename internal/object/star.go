package object

import (
	"math"

	"github.com/tomz197/asteroid-shooter/internal/config"
	"github.com/tomz197/asteroid-shooter/internal/physics"
)

// Star is a purely cosmetic background point that twinkles.
type Star struct {
	Position   physics.Vec2
	Brightness float64 // 0..1
	Phase      float64
}

// Update advances the twinkle. Brightness stays within
// [StarMinBrightness, StarMinBrightness+StarPulse].
func (s *Star) Update() {
	s.Phase += config.StarPhaseStep
	s.Brightness = config.StarMinBrightness + config.StarPulse*(0.5+0.5*math.Sin(s.Phase))
}
