package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/asteroid-shooter/internal/config"
	"github.com/tomz197/asteroid-shooter/internal/game"
	"github.com/tomz197/asteroid-shooter/internal/loop"
	"github.com/tomz197/asteroid-shooter/internal/object"
	"github.com/tomz197/asteroid-shooter/internal/physics"
)

const (
	screenSize = 720
	lineHeight = 16
)

var (
	colBackground = color.RGBA{0, 0, 25, 255}
	colObstacle   = color.RGBA{170, 170, 170, 255}
	colProjectile = color.RGBA{255, 230, 60, 255}
	colCraft      = color.RGBA{255, 255, 255, 255}
	colFlame      = color.RGBA{255, 140, 0, 255}
	colReverse    = color.RGBA{80, 160, 255, 255}
)

// Game adapts a session to ebiten's Update/Draw cycle. ebiten calls
// Update at config.TicksPerSec, so one Update is one tick.
type Game struct {
	session *game.Session
	log     *log.Logger
	snap    game.Snapshot
	outline []physics.Vec2
}

func main() {
	logger := config.NewLogger(os.Stderr, "window")
	if err := run(logger); err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	rules, err := config.RulesFromEnv()
	if err != nil {
		return err
	}
	session, err := game.NewSession(rules, game.Options{Logger: logger})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("Asteroids")
	ebiten.SetTPS(config.TicksPerSec)

	logger.Info("starting", "seed", rules.Seed)
	if err := ebiten.RunGame(&Game{session: session, log: logger}); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		g.log.Info("quit", "score", g.session.Score(), "level", g.session.Level())
		return ebiten.Termination
	}

	g.session.Apply(game.Input{
		Controls: object.Controls{
			ForwardThrust: ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
			ReverseThrust: ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyX),
			RotateLeft:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
			RotateRight:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		},
		Fire:         inpututil.IsKeyJustPressed(ebiten.KeySpace),
		ShowReport:   inpututil.IsKeyJustPressed(ebiten.KeyR),
		StartNewGame: inpututil.IsKeyJustPressed(ebiten.KeyS),
		AdvanceLevel: inpututil.IsKeyJustPressed(ebiten.KeyN),
		Any:          len(inpututil.AppendJustPressedKeys(nil)) > 0,
	})
	g.session.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	g.session.SnapshotInto(&g.snap)
	snap := &g.snap

	for _, s := range snap.Stars {
		x, y := toScreen(s.Position)
		v := uint8(60 + 195*s.Brightness)
		vector.DrawFilledCircle(screen, x, y, 1, color.RGBA{v, v, v, 255}, false)
	}

	for i := range snap.Obstacles {
		g.outline = snap.Obstacles[i].Outline(g.outline[:0])
		strokePolygon(screen, g.outline, colObstacle)
	}

	for _, p := range snap.Projectiles {
		x, y := toScreen(p.Position)
		vector.DrawFilledCircle(screen, x, y, 2, colProjectile, false)
	}

	if snap.Craft.Visible {
		strokePolygon(screen, snap.Craft.Outline, colCraft)
		if snap.Craft.Flame != nil {
			flame := colFlame
			if snap.Craft.ReverseThrust && !snap.Craft.ForwardThrust {
				flame = colReverse
			}
			strokePolygon(screen, snap.Craft.Flame, flame)
		}
	}

	for i, line := range loop.HUDLines(snap) {
		ebitenutil.DebugPrintAt(screen, line, 8, 8+i*lineHeight)
	}
	lines := loop.BannerLines(snap, g.session.Rules().StatisticsReportEnabled)
	top := screenSize/2 - len(lines)*lineHeight/2
	for i, line := range lines {
		// The debug font is 6px wide.
		ebitenutil.DebugPrintAt(screen, line, screenSize/2-len(line)*3, top+i*lineHeight)
	}
	ebitenutil.DebugPrintAt(screen, loop.ControlsHelp, 8, screenSize-lineHeight-4)
}

func (g *Game) Layout(_, _ int) (int, int) { return screenSize, screenSize }

// toScreen maps world coordinates to pixels with y pointing down.
func toScreen(v physics.Vec2) (float32, float32) {
	return float32((v.X + 1) / 2 * screenSize), float32((1 - v.Y) / 2 * screenSize)
}

func strokePolygon(dst *ebiten.Image, points []physics.Vec2, clr color.Color) {
	for i := range points {
		x0, y0 := toScreen(points[i])
		x1, y1 := toScreen(points[(i+1)%len(points)])
		vector.StrokeLine(dst, x0, y0, x1, y1, 1, clr, true)
	}
}
