package termtrack

import (
	"context"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

// Classify maps a key to the event it triggers. q and Q quit, i toggles the
// info overlay. Every other key is ignored
func Classify(k Key) (Event, bool) {
	if k.Modifiers != 0 {
		return 0, false
	}
	switch k.Codepoint {
	case 'q', 'Q':
		return Exit, true
	case 'i':
		return ToggleInfo, true
	}
	return 0, false
}

// Capture polls a KeyReader and posts the events its keys map to
type Capture struct {
	reader   KeyReader
	mu       sync.Locker
	events   *queue[Event]
	interval time.Duration
	log      *slog.Logger

	once sync.Once
	done chan struct{}
}

// Capture returns a Capture reading from r, or from the session terminal
// when r is nil. The Capture shares the session lock and event queue
func (s *Session) Capture(r KeyReader) *Capture {
	if r == nil {
		r = s.term
	}
	return &Capture{
		reader:   r,
		mu:       &s.mu,
		events:   s.events,
		interval: s.interval,
		log:      s.log,
		done:     make(chan struct{}),
	}
}

// StartCapture runs a Capture of r on a new goroutine until the session is
// cancelled
func (s *Session) StartCapture(r KeyReader) *Capture {
	c := s.Capture(r)
	go c.Run(s.ctx)
	return c
}

// Run polls for keys until ctx is done. The lock is held only while reading,
// never while classifying or sleeping. Cancellation is observed between
// reads: a read in progress is allowed to finish. Run returns immediately if
// the Capture has already been run
func (c *Capture) Run(ctx context.Context) {
	first := false
	c.once.Do(func() { first = true })
	if !first {
		return
	}
	defer close(c.done)

	c.log.Debug("input capture started", "interval", c.interval)
	defer c.log.Debug("input capture stopped")

	timer := time.NewTimer(c.interval)
	defer timer.Stop()
	for {
		if ctx.Err() != nil {
			return
		}
		c.Step()
		timer.Reset(c.interval)
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
	}
}

// Step performs a single read and posts the resulting event, if any
func (c *Capture) Step() (Event, bool) {
	key, ok := c.read()
	if !ok {
		return 0, false
	}
	ev, ok := Classify(key)
	c.log.Debug("key", "key", key.String(), "event", ev)
	if ok {
		c.events.push(ev)
	}
	return ev, ok
}

// Wait blocks until Run has returned
func (c *Capture) Wait() {
	<-c.done
}

// read attempts one key read under the lock. Errors and panics from the
// reader count as no key
func (c *Capture) read() (key Key, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer func() {
		if recover() != nil {
			key, ok = Key{}, false
		}
	}()
	key, err := c.reader.ReadKey()
	if err != nil {
		return Key{}, false
	}
	return key, true
}
