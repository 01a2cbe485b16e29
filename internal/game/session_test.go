package game

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/asteroid-shooter/internal/config"
	"github.com/tomz197/asteroid-shooter/internal/object"
	"github.com/tomz197/asteroid-shooter/internal/physics"
)

var testStart = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

// testClock is a manually advanced clock.
type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

func newTestSession(t *testing.T, rules config.Rules) (*Session, *testClock) {
	t.Helper()
	clock := &testClock{t: testStart}
	s, err := NewSession(rules, Options{
		Rand: rand.New(rand.NewPCG(7, 11)),
		Now:  clock.Now,
	})
	require.NoError(t, err)
	return s, clock
}

// stationary replaces the field with motionless obstacles.
func stationary(s *Session, radius float64, positions ...physics.Vec2) {
	s.obstacles = s.obstacles[:0]
	for _, p := range positions {
		s.obstacles = append(s.obstacles, &object.Obstacle{Position: p, Radius: radius, Edges: 6})
	}
}

func TestNewSessionStartsFirstGame(t *testing.T) {
	s, _ := newTestSession(t, config.DefaultRules())

	assert.Equal(t, ModePlaying, s.Mode())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, config.InitialLives, s.Lives())
	assert.Zero(t, s.Invulnerability())

	snap := s.Snapshot()
	assert.Len(t, snap.Obstacles, config.InitialObstacles)
	assert.Len(t, snap.Stars, config.StarCount)
	assert.Empty(t, snap.Projectiles)
	assert.Equal(t, physics.Vec2{}, snap.Craft.Position)
	assert.Zero(t, snap.Craft.Heading)
	assert.True(t, snap.Craft.Visible)
	assert.Nil(t, snap.Report)
	assert.Equal(t, testStart, s.Stats().Start)
}

func TestNewSessionRejectsInvalidRules(t *testing.T) {
	rules := config.DefaultRules()
	rules.InitialLives = 0

	_, err := NewSession(rules, Options{})
	require.ErrorIs(t, err, config.ErrInvalidRules)
}

func TestFireCap(t *testing.T) {
	s, _ := newTestSession(t, config.DefaultRules())
	stationary(s, 0.03)

	for i := 0; i < config.MaxProjectiles+5; i++ {
		s.Apply(Input{Fire: true})
	}
	assert.Len(t, s.projectiles, config.MaxProjectiles)

	p := s.projectiles[0]
	assert.Equal(t, config.ProjectileLife, p.Life)
	assert.InDelta(t, config.ProjectileSpeed, p.Velocity.X, 1e-12)
}

func TestFireIgnoredOutsidePlaying(t *testing.T) {
	s, _ := newTestSession(t, config.DefaultRules())
	s.mode = ModeLevelWon

	s.Fire()
	assert.Empty(t, s.projectiles)
}

func TestAdvanceNegativePanics(t *testing.T) {
	s, _ := newTestSession(t, config.DefaultRules())
	assert.Panics(t, func() { s.Advance(-1) })
	assert.NotPanics(t, func() { s.Advance(0) })
}

func TestInvalidCommandsAreNoOps(t *testing.T) {
	s, _ := newTestSession(t, config.DefaultRules())
	level := s.Level()

	s.AdvanceLevel()
	s.ShowReport()
	s.DismissReport()

	assert.Equal(t, ModePlaying, s.Mode())
	assert.Equal(t, level, s.Level())
}

func TestPositionsStayInWorld(t *testing.T) {
	s, _ := newTestSession(t, config.DefaultRules())
	rng := rand.New(rand.NewPCG(3, 4))

	var snap Snapshot
	lastScore := 0
	for i := 0; i < 3000; i++ {
		s.Apply(Input{
			Controls: object.Controls{
				ForwardThrust: rng.IntN(2) == 0,
				ReverseThrust: rng.IntN(4) == 0,
				RotateLeft:    rng.IntN(3) == 0,
				RotateRight:   rng.IntN(3) == 0,
			},
			Fire:         rng.IntN(5) == 0,
			AdvanceLevel: true,
		})
		s.Tick()

		s.SnapshotInto(&snap)
		require.True(t, physics.InBounds(snap.Craft.Position), "craft at tick %d", i)
		for _, o := range snap.Obstacles {
			require.True(t, physics.InBounds(o.Position), "obstacle at tick %d", i)
		}
		for _, p := range snap.Projectiles {
			require.True(t, physics.InBounds(p.Position), "projectile at tick %d", i)
		}
		require.LessOrEqual(t, len(snap.Projectiles), config.MaxProjectiles)
		require.GreaterOrEqual(t, snap.Score, lastScore, "score decreased at tick %d", i)
		lastScore = snap.Score
	}
}

func TestClearFieldWithoutBeingHit(t *testing.T) {
	s, _ := newTestSession(t, config.DefaultRules())
	target := physics.Vec2{X: 0.5}
	stationary(s, 0.03, target, target, target, target, target)

	transitions := 0
	for i := 0; i < 400 && s.Mode() == ModePlaying; i++ {
		s.Apply(Input{Fire: i%5 == 0})
		s.Tick()
		if s.Mode() == ModeLevelWon {
			transitions++
		}
	}
	require.Equal(t, ModeLevelWon, s.Mode())

	st := s.Stats()
	assert.Equal(t, 5, st.TotalDestroyed)
	assert.Equal(t, 5, st.SmallDestroyed)
	assert.Zero(t, st.LivesLost)
	assert.Equal(t, 5*config.ScoreSmallObstacle, s.Score())
	assert.Equal(t, config.InitialLives, s.Lives())

	// Level won fires once and freezes the clock.
	s.Advance(50)
	assert.Equal(t, 1, transitions)
	assert.Equal(t, ModeLevelWon, s.Mode())

	heading := s.craft.Heading
	score := s.Score()
	s.Apply(Input{AdvanceLevel: true})
	assert.Equal(t, ModePlaying, s.Mode())
	assert.Equal(t, 2, s.Level())
	assert.Len(t, s.obstacles, config.InitialObstacles+1)
	assert.Empty(t, s.projectiles)
	assert.Equal(t, score, s.Score())
	assert.Equal(t, heading, s.craft.Heading)
	assert.Equal(t, physics.Vec2{}, s.craft.Position)
}

func TestLoseAllLivesAndShowReport(t *testing.T) {
	s, clock := newTestSession(t, config.DefaultRules())
	stationary(s, 0.05, physics.Vec2{})

	// One hit, then 120 protected ticks, per life.
	s.Tick()
	require.Equal(t, 2, s.Lives())
	s.Advance(config.InvulnerabilityTicks)
	require.Equal(t, 2, s.Lives())
	s.Tick()
	require.Equal(t, 1, s.Lives())

	clock.t = testStart.Add(90 * time.Second)
	s.Advance(config.InvulnerabilityTicks + 1)
	require.Equal(t, 0, s.Lives())
	require.Equal(t, ModeGameOver, s.Mode())

	st := s.Stats()
	assert.Equal(t, 3, st.LivesLost)
	assert.Equal(t, testStart.Add(90*time.Second), st.End)

	// Frozen after game over.
	s.Advance(500)
	assert.Equal(t, 0, s.Lives())

	s.Apply(Input{ShowReport: true})
	require.Equal(t, ModeReport, s.Mode())

	clock.t = testStart.Add(time.Hour)
	snap := s.Snapshot()
	require.NotNil(t, snap.Report)
	assert.Equal(t, 90*time.Second, snap.Report.Survival)
	assert.Equal(t, 3, snap.Report.LivesLost)
	assert.Equal(t, 5, snap.Report.Rating)
	assert.Equal(t, "Cadet", snap.Report.Rank)

	// Any command only dismisses the report.
	s.Apply(Input{StartNewGame: true})
	assert.Equal(t, ModeGameOver, s.Mode())
	assert.Equal(t, 0, s.Lives())

	s.Apply(Input{StartNewGame: true})
	assert.Equal(t, ModePlaying, s.Mode())
	assert.Equal(t, config.InitialLives, s.Lives())
	assert.Zero(t, s.Stats().LivesLost)
	assert.False(t, s.Stats().Ended())
}

func TestReportDisabledInSimpleRules(t *testing.T) {
	s, _ := newTestSession(t, config.SimpleRules())
	s.mode = ModeGameOver

	s.Apply(Input{ShowReport: true})
	assert.Equal(t, ModeGameOver, s.Mode())
}

func TestAnyKeyDismissesReport(t *testing.T) {
	s, _ := newTestSession(t, config.DefaultRules())
	s.mode = ModeReport

	s.Apply(Input{Controls: object.Controls{ForwardThrust: true}})
	assert.Equal(t, ModeReport, s.Mode())

	s.Apply(Input{Any: true})
	assert.Equal(t, ModeGameOver, s.Mode())
}

func TestInvulnerabilityBlink(t *testing.T) {
	s, _ := newTestSession(t, config.DefaultRules())
	stationary(s, 0.05, physics.Vec2{})

	s.Tick()
	require.Equal(t, config.InvulnerabilityTicks, s.Invulnerability())
	assert.True(t, s.Snapshot().Craft.Visible)

	s.Tick()
	assert.Equal(t, config.InvulnerabilityTicks-1, s.Invulnerability())
	assert.False(t, s.Snapshot().Craft.Visible)
}

func TestModeChangesAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	s, err := NewSession(config.DefaultRules(), Options{
		Logger: logger,
		Rand:   rand.New(rand.NewPCG(1, 1)),
	})
	require.NoError(t, err)
	stationary(s, 0.03)
	s.Tick()

	assert.Contains(t, buf.String(), "new game")
	assert.Contains(t, buf.String(), "mode change")
	assert.Contains(t, buf.String(), "level-won")
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "playing", ModePlaying.String())
	assert.Equal(t, "report", ModeReport.String())
	assert.Equal(t, "unknown", Mode(42).String())
}
