package object

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/asteroid-shooter/internal/config"
	"github.com/tomz197/asteroid-shooter/internal/physics"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestObstacleFieldKeepsClearOfOrigin(t *testing.T) {
	field := NewObstacleField(newRand(), 200, config.SpawnExcludeRadius)
	require.Len(t, field, 200)

	for _, o := range field {
		assert.GreaterOrEqual(t, o.Position.Len(), config.SpawnExcludeRadius)
		assert.True(t, physics.InBounds(o.Position))
		assert.GreaterOrEqual(t, o.Radius, config.ObstacleMinSize)
		assert.Less(t, o.Radius, config.ObstacleMaxSize)
		assert.GreaterOrEqual(t, o.Edges, config.ObstacleMinEdges)
		assert.LessOrEqual(t, o.Edges, config.ObstacleMaxEdges)
		assert.LessOrEqual(t, math.Abs(o.Velocity.X), config.ObstacleSpawnSpeed)
		assert.LessOrEqual(t, math.Abs(o.Velocity.Y), config.ObstacleSpawnSpeed)
		assert.Zero(t, o.Rotation)
	}
}

func TestObstacleFieldNegativeCount(t *testing.T) {
	field := NewObstacleField(newRand(), -3, config.SpawnExcludeRadius)
	assert.NotNil(t, field)
	assert.Empty(t, field)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, SizeLarge, Classify(0.07))
	assert.Equal(t, SizeMedium, Classify(config.LargeThreshold))
	assert.Equal(t, SizeMedium, Classify(0.05))
	assert.Equal(t, SizeSmall, Classify(config.MediumThreshold))
	assert.Equal(t, SizeSmall, Classify(0.03))
	assert.Equal(t, "medium", SizeMedium.String())
}

func TestFragment(t *testing.T) {
	rng := newRand()

	big := &Obstacle{Position: physics.Vec2{X: 0.4, Y: -0.2}, Radius: 0.07, Rotation: 1.2}
	pieces := big.Fragment(rng)
	require.Len(t, pieces, 2)
	for _, p := range pieces {
		assert.Equal(t, big.Position, p.Position)
		assert.InDelta(t, 0.07*0.6, p.Radius, 1e-12)
		assert.Zero(t, p.Rotation)
		assert.LessOrEqual(t, math.Abs(p.Velocity.X), config.ObstacleFragmentSpeed)
	}

	small := &Obstacle{Radius: config.MediumThreshold}
	assert.Empty(t, small.Fragment(rng))
}

func TestCraftForwardThrustAndFriction(t *testing.T) {
	c := NewCraft()
	c.Update(Controls{ForwardThrust: true}, true)

	want := config.CraftThrust * config.CraftFriction
	assert.InDelta(t, want, c.Velocity.X, 1e-12)
	assert.InDelta(t, 0, c.Velocity.Y, 1e-12)
	assert.InDelta(t, want, c.Position.X, 1e-12)
	assert.True(t, c.ForwardThrustActive)
	assert.False(t, c.ReverseThrustActive)

	c.Update(Controls{}, true)
	assert.False(t, c.ForwardThrustActive)
	assert.InDelta(t, want*config.CraftFriction, c.Velocity.X, 1e-12)
}

func TestCraftReverseControlLaws(t *testing.T) {
	rich := NewCraft()
	rich.Update(Controls{ReverseThrust: true}, true)
	assert.Less(t, rich.Velocity.X, 0.0)
	assert.True(t, rich.ReverseThrustActive)

	simple := NewCraft()
	simple.Velocity = physics.Vec2{X: 0.01}
	simple.Update(Controls{ReverseThrust: true}, false)
	assert.InDelta(t, 0.01*config.CraftReverseDamping*config.CraftFriction, simple.Velocity.X, 1e-12)
	assert.False(t, simple.ReverseThrustActive)

	both := NewCraft()
	both.Update(Controls{ForwardThrust: true, ReverseThrust: true}, true)
	assert.InDelta(t, 0, both.Velocity.X, 1e-12)
	assert.True(t, both.ReverseThrustActive)
	assert.False(t, both.ForwardThrustActive)
}

func TestCraftRotationIsInstant(t *testing.T) {
	c := NewCraft()
	c.Update(Controls{RotateLeft: true}, true)
	assert.InDelta(t, config.CraftRotationStep, c.Heading, 1e-12)
	c.Update(Controls{RotateRight: true}, true)
	c.Update(Controls{RotateRight: true}, true)
	assert.InDelta(t, -config.CraftRotationStep, c.Heading, 1e-12)
}

func TestCraftWrapsAndResets(t *testing.T) {
	c := NewCraft()
	c.Position = physics.Vec2{X: 0.999}
	c.Velocity = physics.Vec2{X: 0.01}
	c.Heading = 1
	c.Update(Controls{}, true)
	assert.Equal(t, physics.WorldMin, c.Position.X)

	c.Reset()
	assert.Equal(t, physics.Vec2{}, c.Position)
	assert.Equal(t, physics.Vec2{}, c.Velocity)
	assert.Equal(t, 1.0, c.Heading)
	assert.Equal(t, config.CraftRadius, c.Radius())
}

func TestProjectileExpires(t *testing.T) {
	p := NewProjectile(physics.Vec2{}, math.Pi/2)
	assert.InDelta(t, config.ProjectileSpeed, p.Velocity.Y, 1e-12)

	ticks := 0
	for !p.Update() {
		ticks++
		require.True(t, physics.InBounds(p.Position))
	}
	assert.Equal(t, config.ProjectileLife-1, ticks)
}

func TestObstacleUpdateSpins(t *testing.T) {
	o := &Obstacle{Position: physics.Vec2{X: -0.999}, Velocity: physics.Vec2{X: -0.005}}
	o.Update()
	assert.Equal(t, physics.WorldMax, o.Position.X)
	assert.InDelta(t, config.ObstacleSpinPerTick, o.Rotation, 1e-12)
}

func TestStarTwinkleStaysBounded(t *testing.T) {
	stars := NewStarField(newRand(), config.StarCount)
	require.Len(t, stars, config.StarCount)

	for i := 0; i < 200; i++ {
		for j := range stars {
			stars[j].Update()
			b := stars[j].Brightness
			require.GreaterOrEqual(t, b, config.StarMinBrightness)
			require.LessOrEqual(t, b, config.StarMinBrightness+config.StarPulse+1e-12)
		}
	}
}

func TestBlinkVisible(t *testing.T) {
	assert.True(t, BlinkVisible(0))
	assert.True(t, BlinkVisible(-4))
	assert.True(t, BlinkVisible(120)) // 120 % 10 == 0
	assert.False(t, BlinkVisible(119))
}

func TestShapes(t *testing.T) {
	c := NewCraft()
	assert.Len(t, c.Outline(), 4)
	assert.Nil(t, c.Flame())
	c.ForwardThrustActive = true
	assert.Len(t, c.Flame(), 3)

	o := &Obstacle{Radius: 0.05, Edges: 7}
	pts := o.Outline(nil)
	require.Len(t, pts, 7)
	for _, p := range pts {
		assert.LessOrEqual(t, p.Len(), 0.05*1.2+1e-12)
	}
}
