// Package game owns one play session: the fixed-tick clock, collision
// resolution and the playing / level-won / game-over / report state machine.
//
// A Session has a single writer. The driver calls Apply and Tick from one
// goroutine and reads a Snapshot between ticks.
package game

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroid-shooter/internal/config"
	"github.com/tomz197/asteroid-shooter/internal/object"
	"github.com/tomz197/asteroid-shooter/internal/physics"
	"github.com/tomz197/asteroid-shooter/internal/stats"
)

// Options are the collaborators injected into a session. Zero values are
// replaced with defaults.
type Options struct {
	Logger *log.Logger      // Defaults to a discarding logger
	Rand   *rand.Rand       // Defaults to a PCG source seeded from Rules.SeedValue
	Now    func() time.Time // Defaults to time.Now
}

// Session is the game aggregate.
type Session struct {
	rules config.Rules
	log   *log.Logger
	rng   *rand.Rand
	now   func() time.Time

	mode         Mode
	level        int
	score        int
	lives        int
	invulnerable int // Ticks left in which the craft cannot be hit

	craft       *object.Craft
	controls    object.Controls
	projectiles []*object.Projectile
	obstacles   []*object.Obstacle
	stars       []object.Star
	stats       *stats.Tracker

	// Collision scratch space, reused between ticks.
	grid      *physics.SpatialGrid
	destroyed []bool
}

// NewSession validates rules and starts the first game.
func NewSession(rules config.Rules, opts Options) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Rand == nil {
		seed := rules.SeedValue()
		opts.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Session{
		rules: rules,
		log:   opts.Logger,
		rng:   opts.Rand,
		now:   opts.Now,
		grid:  physics.NewSpatialGrid(gridCellSize),
	}
	s.StartNewGame()
	return s, nil
}

// Apply feeds one frame of input into the session. Held controls take
// effect on the next Tick; commands are executed immediately in the order
// fire, report, new game, next level. While the report is shown any key
// only dismisses it.
func (s *Session) Apply(in Input) {
	if s.mode == ModeReport {
		s.controls = object.Controls{}
		if in.Any || in.commanded() {
			s.DismissReport()
		}
		return
	}

	s.controls = in.Controls
	if in.Fire {
		s.Fire()
	}
	if in.ShowReport {
		s.ShowReport()
	}
	if in.StartNewGame {
		s.StartNewGame()
	}
	if in.AdvanceLevel {
		s.AdvanceLevel()
	}
}

// StartNewGame resets everything to level 1. Available in every mode.
// The random generator is not reseeded.
func (s *Session) StartNewGame() {
	s.level = 1
	s.score = 0
	s.lives = s.rules.InitialLives
	s.invulnerable = 0

	s.craft = object.NewCraft()
	s.controls = object.Controls{}
	s.clearProjectiles()
	s.stars = object.NewStarField(s.rng, config.StarCount)
	s.spawnLevel()
	s.stats = stats.New(s.now())

	s.log.Debug("new game", "obstacles", len(s.obstacles), "lives", s.lives)
	s.setMode(ModePlaying)
}

// AdvanceLevel moves to the next level. Only valid in ModeLevelWon.
// Score, lives and heading carry over.
func (s *Session) AdvanceLevel() {
	if s.mode != ModeLevelWon {
		return
	}

	s.level++
	s.clearProjectiles()
	s.spawnLevel()
	s.craft.Reset()

	s.setMode(ModePlaying)
}

// Fire launches a projectile from the craft along its heading while
// playing and under the live projectile cap.
func (s *Session) Fire() {
	if s.mode != ModePlaying || len(s.projectiles) >= config.MaxProjectiles {
		return
	}
	s.projectiles = append(s.projectiles, object.NewProjectile(s.craft.Position, s.craft.Heading))
}

// ShowReport switches from game over to the statistics report when the
// rules enable it.
func (s *Session) ShowReport() {
	if s.mode != ModeGameOver || !s.rules.StatisticsReportEnabled {
		return
	}
	s.setMode(ModeReport)
}

// DismissReport returns from the report to game over.
func (s *Session) DismissReport() {
	if s.mode != ModeReport {
		return
	}
	s.setMode(ModeGameOver)
}

// Tick advances the simulation by one fixed step. Outside ModePlaying it
// does nothing.
func (s *Session) Tick() {
	if !s.mode.Running() {
		return
	}

	s.advanceEntities()
	s.resolveCollisions()

	if s.mode == ModePlaying && len(s.obstacles) == 0 {
		s.setMode(ModeLevelWon)
	}
}

// Advance runs n ticks. A negative n is a programming error.
func (s *Session) Advance(n int) {
	if n < 0 {
		panic(fmt.Sprintf("game: negative tick count %d", n))
	}
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

// Mode returns the current game mode.
func (s *Session) Mode() Mode { return s.mode }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// Score returns the points earned in this run.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Rules returns the rules the session was created with.
func (s *Session) Rules() config.Rules { return s.rules }

// Invulnerability returns the ticks left before the craft can be hit again.
func (s *Session) Invulnerability() int { return s.invulnerable }

// Stats returns a copy of the running statistics.
func (s *Session) Stats() stats.Tracker {
	return *s.stats
}

// Report builds the statistics report for the current run.
func (s *Session) Report() stats.Report {
	return s.stats.Report(s.score, s.level, s.now())
}

func (s *Session) spawnLevel() {
	count := object.ObstacleCountForLevel(s.rules.InitialObstacles, s.level)
	s.obstacles = object.NewObstacleField(s.rng, count, config.SpawnExcludeRadius)
}

func (s *Session) clearProjectiles() {
	clear(s.projectiles)
	s.projectiles = s.projectiles[:0]
}

func (s *Session) setMode(m Mode) {
	if m != s.mode {
		s.log.Debug("mode change", "from", s.mode, "to", m, "level", s.level, "score", s.score, "lives", s.lives)
	}
	s.mode = m
}
