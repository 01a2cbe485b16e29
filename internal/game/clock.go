package game

// advanceEntities moves everything by one tick: craft (input, friction,
// motion, wrap), then projectiles (expired ones removed), obstacles and
// stars.
func (s *Session) advanceEntities() {
	s.craft.Update(s.controls, s.rules.ReverseThrustEnabled)

	kept := s.projectiles[:0] // reuse backing array
	for _, p := range s.projectiles {
		if !p.Update() {
			kept = append(kept, p)
		}
	}
	clear(s.projectiles[len(kept):])
	s.projectiles = kept

	for _, o := range s.obstacles {
		o.Update()
	}

	for i := range s.stars {
		s.stars[i].Update()
	}
}
