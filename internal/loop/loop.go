// Package loop drives a game session in a terminal: it polls keys, ticks
// the session at a fixed interval and renders each frame as ANSI output.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroid-shooter/internal/config"
	"github.com/tomz197/asteroid-shooter/internal/draw"
	"github.com/tomz197/asteroid-shooter/internal/game"
	"github.com/tomz197/asteroid-shooter/internal/input"
	"github.com/tomz197/asteroid-shooter/internal/object"
	"github.com/tomz197/asteroid-shooter/internal/physics"
)

// Max render area. Larger terminals get a centred, bordered playfield.
// The world is square and a cell is about twice as tall as it is wide,
// so the area keeps a 2:1 column/row ratio.
const (
	maxTermCols = 120
	maxTermRows = 60
)

// ErrIdle is returned by Run when no key was pressed for
// Options.IdleTimeout.
var ErrIdle = errors.New("idle timeout")

// Options configures a terminal client.
type Options struct {
	Rules  config.Rules
	Logger *log.Logger
	Rand   *rand.Rand

	// TermSizeFunc reports the terminal size every frame. Defaults to the
	// size of os.Stdout.
	TermSizeFunc draw.TermSizeFunc

	// IdleTimeout ends Run with ErrIdle after this long without input.
	// Zero disables it.
	IdleTimeout time.Duration
}

// Client renders one session to one terminal.
type Client struct {
	session  *game.Session
	stream   *input.Stream
	canvas   *draw.Canvas
	cw       *draw.ChunkWriter
	writer   io.Writer
	termSize draw.TermSizeFunc
	log      *log.Logger

	idleTimeout time.Duration
	lastInput   time.Time
	idleWarned  bool

	prevMode game.Mode
	snap     game.Snapshot
	outline  []physics.Vec2
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r io.ByteReader, w io.Writer, opts Options) (*Client, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}

	session, err := game.NewSession(opts.Rules, game.Options{
		Logger: opts.Logger,
		Rand:   opts.Rand,
	})
	if err != nil {
		return nil, fmt.Errorf("client: %w", err)
	}

	termWidth, termHeight, err := opts.TermSizeFunc()
	if err != nil {
		return nil, fmt.Errorf("client: terminal size: %w", err)
	}
	cols, rows, offCol, offRow := fitTerm(termWidth, termHeight)

	return &Client{
		session:     session,
		stream:      input.StartStream(r),
		canvas:      draw.NewCanvas(cols, rows),
		cw:          draw.NewChunkWriter(w, offCol, offRow),
		writer:      w,
		termSize:    opts.TermSizeFunc,
		log:         opts.Logger,
		idleTimeout: opts.IdleTimeout,
		lastInput:   time.Now(),
		prevMode:    session.Mode(),
	}, nil
}

// Run creates a client and runs it until the player quits, the input
// closes or ctx is cancelled.
func Run(ctx context.Context, r io.ByteReader, w io.Writer, opts Options) error {
	c, err := NewClient(r, w, opts)
	if err != nil {
		return err
	}
	return c.Run(ctx)
}

// Session exposes the underlying game session.
func (c *Client) Session() *game.Session {
	return c.session
}

// Run is the Input -> Tick -> Draw cycle, once per config.TickInterval.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	draw.ClearScreen(c.writer)
	defer func() {
		c.stream.Stop()
		draw.ClearScreen(c.writer)
		draw.ShowCursor(c.writer)
	}()

	ticker := time.NewTicker(config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			done, err := c.frame(now)
			if err != nil || done {
				return err
			}
		}
	}
}

// frame runs one tick. done reports that the client should stop.
func (c *Client) frame(now time.Time) (done bool, err error) {
	in := input.ReadInput(c.stream)
	if in.Quit || in.Closed {
		c.log.Debug("input ended", "quit", in.Quit, "closed", in.Closed)
		return true, nil
	}

	idle := time.Duration(0)
	if in.Any() {
		c.lastInput = now
	} else {
		idle = now.Sub(c.lastInput)
		if c.idleTimeout > 0 && idle > c.idleTimeout {
			return true, ErrIdle
		}
	}

	c.session.Apply(toGameInput(in))
	c.session.Tick()

	c.updateScreen()
	if err := c.drawFrame(idle); err != nil {
		return true, fmt.Errorf("draw: %w", err)
	}
	return false, nil
}

// toGameInput maps terminal keys to session input.
func toGameInput(in input.Input) game.Input {
	return game.Input{
		Controls: object.Controls{
			ForwardThrust: in.Up,
			ReverseThrust: in.Down,
			RotateLeft:    in.Left,
			RotateRight:   in.Right,
		},
		Fire:         in.Fire,
		ShowReport:   in.Report,
		StartNewGame: in.NewGame,
		AdvanceLevel: in.NextLevel,
		Any:          in.Any(),
	}
}

// updateScreen follows terminal resizes. On a change the terminal is
// cleared so nothing from the old layout survives.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSize()
	if err != nil {
		return
	}
	cols, rows, offCol, offRow := fitTerm(termWidth, termHeight)

	curCol, curRow := c.cw.Offset()
	if cols == c.canvas.Cols() && rows == c.canvas.Rows() && offCol == curCol && offRow == curRow {
		return
	}

	c.cw.ClearScreen()
	c.canvas.Resize(cols, rows)
	c.canvas.ForceRedraw()
	c.cw.SetOffset(offCol, offRow)
}

// fitTerm clamps the terminal to the max render area with a 2:1
// column/row ratio and computes the centring offset.
func fitTerm(termWidth, termHeight int) (cols, rows, offCol, offRow int) {
	rows = min(termHeight, maxTermRows)
	cols = min(termWidth, 2*rows, maxTermCols)
	rows = min(rows, (cols+1)/2)
	cols = max(cols, 1)
	rows = max(rows, 1)

	offCol = max((termWidth-cols)/2, 0)
	offRow = max((termHeight-rows)/2, 0)
	return cols, rows, offCol, offRow
}

// drawFrame renders the current snapshot. A mode change triggers a full
// clear so banners from the previous mode do not linger.
func (c *Client) drawFrame(idle time.Duration) error {
	c.session.SnapshotInto(&c.snap)
	snap := &c.snap

	warn := c.idleTimeout > 0 && idle > c.idleTimeout*3/4

	if snap.Mode != c.prevMode {
		c.cw.ClearScreen()
		c.canvas.ForceRedraw()
		c.stream.Reset()
		c.prevMode = snap.Mode
	} else if c.idleWarned && !warn {
		c.cw.ClearScreen()
		c.canvas.ForceRedraw()
	}
	c.idleWarned = warn

	cols, rows := c.canvas.Cols(), c.canvas.Rows()

	c.canvas.Clear()
	c.outline = drawScene(c.canvas, snap, c.outline)
	c.canvas.Render(c.cw)
	c.canvas.RenderBorder(c.cw)

	drawHUD(c.cw, cols, snap)
	if lines := BannerLines(snap, c.session.Rules().StatisticsReportEnabled); lines != nil {
		drawCentered(c.cw, cols, rows, lines)
	}
	drawFooter(c.cw, cols, rows)

	if warn {
		drawIdleWarning(c.cw, cols, rows, c.idleTimeout-idle)
	}

	return c.cw.Flush()
}
