package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vango-dev/vrec/pkg/surface"
	"github.com/vango-dev/vrec/pkg/vrec"
)

// ErrNoTarget is returned when an event names an element id that is not
// in the tree.
var ErrNoTarget = errors.New("no element with id")

// Session is a mounted demo app on a memory surface.
type Session struct {
	App    *App
	Memory *surface.Memory
	Body   *surface.MemNode
	Root   *vrec.Root
	Loop   *vrec.Loop
}

type sessionConfig struct {
	logger   *slog.Logger
	tick     time.Duration
	wrap     func(surface.Surface) surface.Surface
	rootOpts []vrec.Option
}

// Option configures a Session.
type Option func(*sessionConfig)

// WithLogger sets the logger for the app, the root and the loop.
func WithLogger(logger *slog.Logger) Option {
	return func(c *sessionConfig) {
		c.logger = logger
	}
}

// WithTick sets the clock interval. Zero disables the timer.
func WithTick(d time.Duration) Option {
	return func(c *sessionConfig) {
		c.tick = d
	}
}

// WithSurface wraps the memory surface before the root uses it.
func WithSurface(wrap func(surface.Surface) surface.Surface) Option {
	return func(c *sessionConfig) {
		c.wrap = wrap
	}
}

// WithKeyedChildren enables keyed child matching.
func WithKeyedChildren() Option {
	return WithRootOptions(vrec.WithKeyedChildren())
}

// WithRootOptions passes options through to vrec.Render.
func WithRootOptions(opts ...vrec.Option) Option {
	return func(c *sessionConfig) {
		c.rootOpts = append(c.rootOpts, opts...)
	}
}

// NewSession mounts the demo and runs its initial effects.
func NewSession(opts ...Option) *Session {
	cfg := sessionConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	mem := surface.NewMemory()
	body := mem.NewContainer("body")
	var target surface.Surface = mem
	if cfg.wrap != nil {
		target = cfg.wrap(mem)
	}

	loop := vrec.NewLoop(cfg.logger.With("component", "vrec.loop"))
	app := NewApp(loop, cfg.tick, cfg.logger)

	rootOpts := append([]vrec.Option{
		vrec.WithLogger(cfg.logger),
		vrec.WithLoop(loop),
	}, cfg.rootOpts...)

	s := &Session{
		App:    app,
		Memory: mem,
		Body:   body,
		Root:   vrec.Render(app.Element(), body, target, rootOpts...),
		Loop:   loop,
	}
	s.Settle()
	return s
}

// Find returns the element with the given id attribute.
func (s *Session) Find(id string) *surface.MemNode {
	return s.Body.FindAttr("id", id)
}

// Dispatch fires event at the element with the given id. Effects it
// schedules run on the next Settle.
func (s *Session) Dispatch(id, event string) (*vrec.Event, error) {
	return s.DispatchPayload(id, event, nil)
}

// DispatchPayload is Dispatch with an event payload.
func (s *Session) DispatchPayload(id, event string, payload any) (*vrec.Event, error) {
	target := s.Find(id)
	if target == nil {
		return nil, fmt.Errorf("%w %q", ErrNoTarget, id)
	}
	return s.Root.DispatchEvent(target, event, payload), nil
}

// Settle runs queued effects and due timers.
func (s *Session) Settle() {
	s.Loop.RunUntilIdle()
}

// Run drives the loop until ctx is done. While Run is active, the
// session must only be touched through Do.
func (s *Session) Run(ctx context.Context) error {
	return s.Loop.Run(ctx)
}

// Do runs fn on the loop goroutine and waits for it to finish.
func (s *Session) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	s.Loop.Submit(func() {
		defer close(done)
		fn()
	})
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HTML returns the rendered markup of the body.
func (s *Session) HTML() string {
	return surface.InnerHTML(s.Body)
}

// Tree returns a serializable snapshot of the body.
func (s *Session) Tree() *surface.Tree {
	return surface.Snapshot(s.Body)
}

// Close unmounts the app and runs the remaining cleanups.
func (s *Session) Close() {
	s.Root.Unmount()
	s.Settle()
}
