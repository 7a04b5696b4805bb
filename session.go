package termtrack

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

// ErrNoKey is returned by a KeyReader when no key is available
var ErrNoKey = errors.New("termtrack: no key available")

// KeyReader reads single keys without blocking
type KeyReader interface {
	// ReadKey returns the next key, or ErrNoKey if none is pending
	ReadKey() (Key, error)
}

// Terminal is the curses-like capability layer a Session configures
type Terminal interface {
	KeyReader
	// UseDefaultColors lets color pairs use the terminal default colors,
	// addressed as -1
	UseDefaultColors() error
	// Colors is the number of colors the terminal supports
	Colors() int
	// InitPair defines color pair pair as foreground fg over background bg
	InitPair(pair int, fg int, bg int) error
	SetCursorVisible(visible bool) error
	// SetReadTimeout sets how long ReadKey waits for input. Zero makes
	// reads return immediately
	SetReadTimeout(d time.Duration) error
}

// Session holds the state shared between a driver and input capture: the
// terminal lock, the event queue and the cancellation token
type Session struct {
	term   Terminal
	mu     sync.Mutex
	events *queue[Event]

	ctx    context.Context
	cancel context.CancelFunc

	interval time.Duration
	log      *slog.Logger
}

// Setup configures t for rendering and returns the Session shared with input
// capture. Every color the terminal supports becomes a color pair over the
// default background: pair n shows color n-1. The cursor is hidden and key
// reads are made non-blocking.
//
// Setup mutates global terminal state: call it once per process
func Setup(t Terminal, opts Options) (*Session, error) {
	l := log
	if opts.Logger != nil {
		l = opts.Logger
	}
	if err := t.UseDefaultColors(); err != nil {
		return nil, fmt.Errorf("termtrack: use default colors: %w", err)
	}
	colors := t.Colors()
	for i := 0; i < colors; i += 1 {
		if err := t.InitPair(i+1, i, -1); err != nil {
			return nil, fmt.Errorf("termtrack: init color pair %d: %w", i+1, err)
		}
	}
	if err := t.SetCursorVisible(false); err != nil {
		return nil, fmt.Errorf("termtrack: hide cursor: %w", err)
	}
	if err := t.SetReadTimeout(0); err != nil {
		return nil, fmt.Errorf("termtrack: set read timeout: %w", err)
	}
	l.Debug("terminal configured", "colors", colors)

	interval := opts.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		term:     t,
		events:   newQueue[Event](),
		ctx:      ctx,
		cancel:   cancel,
		interval: interval,
		log:      l,
	}, nil
}

// Locker returns the lock guarding terminal access. Hold it around every call
// into the Terminal made outside of input capture
func (s *Session) Locker() sync.Locker {
	return &s.mu
}

// WaitEvent blocks until an event is queued or ctx is done. Events come out
// in the order keys were read
func (s *Session) WaitEvent(ctx context.Context) (Event, error) {
	return s.events.wait(ctx)
}

// PollEvent returns the next queued event without blocking. An event posted
// before the call is always returned
func (s *Session) PollEvent() (Event, bool) {
	return s.events.poll()
}

// Pending reports how many events are queued
func (s *Session) Pending() int {
	return s.events.len()
}

// PostEvent queues ev as if it had been read from the keyboard
func (s *Session) PostEvent(ev Event) {
	s.events.push(ev)
}

// Context is cancelled once Cancel is called
func (s *Session) Context() context.Context {
	return s.ctx
}

// Cancel requests cooperative shutdown of input capture. It is safe to call
// more than once; the session can not be resumed
func (s *Session) Cancel() {
	s.cancel()
}

func (s *Session) Done() <-chan struct{} {
	return s.ctx.Done()
}
