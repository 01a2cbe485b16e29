package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/asteroid-shooter/internal/config"
	"github.com/tomz197/asteroid-shooter/internal/draw"
	"github.com/tomz197/asteroid-shooter/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	defaultIdleSeconds = 120
	defaultMaxSessions = 64
	shutdownTimeout    = 5 * time.Second
)

// gameServer hosts one independent game per SSH connection.
type gameServer struct {
	rules       config.Rules
	baseSeed    uint64
	idleTimeout time.Duration
	maxSessions int64
	active      atomic.Int64
	log         *log.Logger
}

func main() {
	logger := config.NewLogger(os.Stderr, "ssh")
	if err := run(logger); err != nil {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)

	rules, err := config.RulesFromEnv()
	if err != nil {
		return err
	}

	gs := &gameServer{
		rules:       rules,
		baseSeed:    rules.SeedValue(),
		idleTimeout: time.Duration(config.GetEnvInt("SSH_IDLE_TIMEOUT", defaultIdleSeconds)) * time.Second,
		maxSessions: int64(config.GetEnvInt("SSH_MAX_SESSIONS", defaultMaxSessions)),
		log:         logger,
	}
	logger.Info("ssh config", "host", host, "port", port, "hostKeyPath", hostKeyPath,
		"idleTimeout", gs.idleTimeout, "maxSessions", gs.maxSessions)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gs.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting ssh server", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down", "activeSessions", gs.active.Load())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// middleware runs a game for the session, then hands over to next.
func (gs *gameServer) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		defer next(sess)

		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		if n := gs.active.Add(1); n > gs.maxSessions {
			gs.active.Add(-1)
			fmt.Fprintln(sess, "Server is full, please try again later.")
			gs.log.Warn("session rejected", "user", sess.User(), "active", n-1)
			return
		}
		defer gs.active.Add(-1)

		id := uuid.New()
		logger := gs.log.With("session", id.String(), "user", sess.User())
		logger.Info("session started", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		seed := config.DeriveSeed(gs.baseSeed, id.String())
		err := loop.Run(sess.Context(), bufio.NewReader(sess), sess, loop.Options{
			Rules:        gs.rules,
			Logger:       logger,
			Rand:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
			TermSizeFunc: sizeTracker.getSize,
			IdleTimeout:  gs.idleTimeout,
		})
		switch {
		case errors.Is(err, loop.ErrIdle):
			fmt.Fprintln(sess, "Disconnected after being idle.")
			logger.Info("session idle")
		case err != nil:
			logger.Error("game error", "err", err)
		}
		logger.Info("session ended")
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
