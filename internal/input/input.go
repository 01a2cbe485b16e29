// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"io"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last
// press. Terminals only report repeats, never releases.
const keyHoldDuration = 60 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	// Held keys, from recent presses.
	Up    bool
	Down  bool
	Left  bool
	Right bool

	// Pressed during this frame.
	Fire      bool
	Report    bool
	NewGame   bool
	NextLevel bool
	Quit      bool

	Closed  bool   // The underlying reader failed or hit EOF
	Pressed []byte // Raw bytes received this frame
}

// Any reports whether any byte arrived this frame.
func (in Input) Any() bool {
	return len(in.Pressed) > 0
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	up    time.Time
	down  time.Time
	left  time.Time
	right time.Time
}

// Stream delivers input bytes via a channel and tracks key state for
// combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool

	done     chan struct{}
	stopOnce sync.Once
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The goroutine exits when r returns an error or, after Stop, with
// the next byte it reads.
func StartStream(r io.ByteReader) *Stream {
	s := newStream()
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128), done: make(chan struct{})}
}

// Stop tells the reader goroutine that nobody consumes the stream any more.
// It is safe to call more than once.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// ReadInput drains all available bytes from the stream without blocking.
func ReadInput(s *Stream) Input {
	return s.read(time.Now())
}

// Reset forgets held keys, e.g. when the screen changes.
func (s *Stream) Reset() {
	s.state = keyState{}
}

func (s *Stream) read(now time.Time) Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := Input{Closed: s.closed, Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if applyArrow(&s.state, buf[i+2], now) {
				i += 2
				continue
			}
		}

		applyByte(&s.state, &in, b, now)
	}

	in.Up = now.Sub(s.state.up) < keyHoldDuration
	in.Down = now.Sub(s.state.down) < keyHoldDuration
	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	return in
}

func applyArrow(state *keyState, code byte, now time.Time) bool {
	switch code {
	case 'A':
		state.up = now
	case 'B':
		state.down = now
	case 'C':
		state.right = now
	case 'D':
		state.left = now
	default:
		return false
	}
	return true
}

// applyByte handles single-byte keys. 's' starts a new game, so reverse
// thrust has no letter on the WASD cluster and uses 'x' instead.
func applyByte(state *keyState, in *Input, b byte, now time.Time) {
	switch b {
	case 'w', 'W':
		state.up = now
	case 'x', 'X':
		state.down = now
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case ' ':
		in.Fire = true
	case 'r', 'R':
		in.Report = true
	case 's', 'S':
		in.NewGame = true
	case 'n', 'N':
		in.NextLevel = true
	case 'q', 'Q', 0x03: // Ctrl+C arrives as a byte in raw mode
		in.Quit = true
	}
}
