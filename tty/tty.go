//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package tty

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"git.sr.ht/~rockorager/termtrack"
)

// TTY is a termtrack.Terminal talking ANSI to a unix terminal in cbreak
// mode: keys are delivered as typed, without echo, while Ctrl+C still raises
// SIGINT.
//
// A TTY is not safe for concurrent use. Share it through the lock of a
// termtrack.Session
type TTY struct {
	in    *os.File
	out   *os.File
	fd    int
	owned *os.File
	state *term.State
	w     *bufio.Writer
	log   *slog.Logger

	colors        int
	defaultColors bool
	pairs         map[int]pair
	civis         string
	cnorm         string

	pending []byte
	buf     [256]byte
	closed  bool
}

var _ termtrack.Terminal = (*TTY)(nil)

type pair struct {
	fg termtrack.Color
	bg termtrack.Color
}

// Open prepares the terminal and enters cbreak mode. Close restores it
func Open(opts Options) (*TTY, error) {
	t := &TTY{
		in:    opts.In,
		out:   opts.Out,
		pairs: make(map[int]pair),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		civis: hideCursor,
		cnorm: showCursor,
	}
	if opts.Logger != nil {
		t.log = opts.Logger
	}
	if t.in == nil || t.out == nil {
		f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
		if err != nil {
			return nil, fmt.Errorf("tty: open /dev/tty: %w", err)
		}
		t.owned = f
		if t.in == nil {
			t.in = f
		}
		if t.out == nil {
			t.out = f
		}
	}
	t.fd = int(t.in.Fd())
	if !term.IsTerminal(t.fd) {
		t.closeOwned()
		return nil, ErrNotTerminal
	}
	t.w = bufio.NewWriter(t.out)

	name := opts.term()
	info, err := infocmp(name)
	if err != nil {
		t.log.Debug("terminfo unavailable", "term", name, "error", err)
	} else {
		if s := info.Strings["civis"]; s != "" {
			t.civis = s
		}
		if s := info.Strings["cnorm"]; s != "" {
			t.cnorm = s
		}
	}
	switch {
	case opts.Colors > 0:
		t.colors = opts.Colors
	case info != nil && info.Numerics["colors"] > 0:
		t.colors = info.Numerics["colors"]
	default:
		t.colors = detectColors(name, os.Getenv("COLORTERM"))
	}
	// Direct color terminals still address the 256 color palette through
	// pairs
	t.colors = min(t.colors, 256)
	t.log.Debug("terminal opened", "term", name, "colors", t.colors)

	state, err := term.GetState(t.fd)
	if err != nil {
		t.closeOwned()
		return nil, fmt.Errorf("tty: get state: %w", err)
	}
	t.state = state
	err = t.updateTermios(func(tios *unix.Termios) {
		tios.Lflag &^= unix.ECHO | unix.ICANON
		tios.Cc[unix.VMIN] = 1
		tios.Cc[unix.VTIME] = 0
	})
	if err != nil {
		t.closeOwned()
		return nil, fmt.Errorf("tty: enter cbreak mode: %w", err)
	}
	return t, nil
}

func (t *TTY) updateTermios(fn func(*unix.Termios)) error {
	tios, err := unix.IoctlGetTermios(t.fd, ioctlGetTermios)
	if err != nil {
		return err
	}
	fn(tios)
	return unix.IoctlSetTermios(t.fd, ioctlSetTermios, tios)
}

// UseDefaultColors resets the terminal to its default colors and allows -1
// in InitPair
func (t *TTY) UseDefaultColors() error {
	t.defaultColors = true
	_, err := t.w.WriteString(setfDefault + setbDefault)
	return err
}

func (t *TTY) Colors() int {
	return t.colors
}

// InitPair defines a color pair. Pair numbers start at 1; colors range over
// [0, Colors()), or -1 for the default color once UseDefaultColors has been
// called
func (t *TTY) InitPair(n int, fg int, bg int) error {
	if n < 1 {
		return fmt.Errorf("%w: pair %d", ErrInvalidPair, n)
	}
	var colors [2]termtrack.Color
	for i, c := range []int{fg, bg} {
		if c == -1 && !t.defaultColors {
			return fmt.Errorf("%w: default color without UseDefaultColors", ErrInvalidPair)
		}
		color, ok := termtrack.PairColor(c)
		if !ok || c >= t.colors {
			return fmt.Errorf("%w: color %d out of range", ErrInvalidPair, c)
		}
		colors[i] = color
	}
	t.pairs[n] = pair{fg: colors[0], bg: colors[1]}
	return nil
}

// Pair returns the colors of pair n
func (t *TTY) Pair(n int) (fg termtrack.Color, bg termtrack.Color, ok bool) {
	p, ok := t.pairs[n]
	return p.fg, p.bg, ok
}

// SetPair selects pair n for the following text
func (t *TTY) SetPair(n int) error {
	p, ok := t.pairs[n]
	if !ok {
		return fmt.Errorf("%w: pair %d not initialized", ErrInvalidPair, n)
	}
	_, err := t.w.WriteString(sgrColors(p.fg, p.bg))
	return err
}

func (t *TTY) SetCursorVisible(visible bool) error {
	seq := t.civis
	if visible {
		seq = t.cnorm
	}
	if _, err := t.w.WriteString(seq); err != nil {
		return err
	}
	return t.w.Flush()
}

// SetReadTimeout sets how long ReadKey waits for input, in steps of 100ms.
// Zero returns immediately, a negative duration blocks until a key arrives
func (t *TTY) SetReadTimeout(d time.Duration) error {
	return t.updateTermios(func(tios *unix.Termios) {
		if d < 0 {
			tios.Cc[unix.VMIN] = 1
			tios.Cc[unix.VTIME] = 0
			return
		}
		tenths := (d + 100*time.Millisecond - 1) / (100 * time.Millisecond)
		if tenths > 255 {
			tenths = 255
		}
		tios.Cc[unix.VMIN] = 0
		tios.Cc[unix.VTIME] = uint8(tenths)
	})
}

// ReadKey returns the next key. Bytes of a single read holding several keys
// are kept for the following calls
func (t *TTY) ReadKey() (termtrack.Key, error) {
	if len(t.pending) == 0 {
		n, err := unix.Read(t.fd, t.buf[:])
		switch {
		case errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR):
			return termtrack.Key{}, termtrack.ErrNoKey
		case err != nil:
			return termtrack.Key{}, fmt.Errorf("tty: read: %w", err)
		case n <= 0:
			return termtrack.Key{}, termtrack.ErrNoKey
		}
		t.pending = append(t.pending, t.buf[:n]...)
	}
	key, n := termtrack.DecodeKey(t.pending)
	t.pending = t.pending[n:]
	return key, nil
}

// Size returns the terminal size in cells
func (t *TTY) Size() (cols int, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// MoveTo positions the cursor, zero based
func (t *TTY) MoveTo(row int, col int) {
	fmt.Fprintf(t.w, cup, row+1, col+1)
}

func (t *TTY) WriteString(s string) (int, error) {
	return t.w.WriteString(s)
}

func (t *TTY) Clear() {
	_, _ = t.w.WriteString(clearScreen)
}

// Flush sends buffered output to the terminal
func (t *TTY) Flush() error {
	return t.w.Flush()
}

// Close shows the cursor, resets colors and restores the terminal mode
func (t *TTY) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	_, _ = t.w.WriteString(sgrReset)
	_, _ = t.w.WriteString(t.cnorm)
	err := t.w.Flush()
	if rerr := term.Restore(t.fd, t.state); rerr != nil && err == nil {
		err = rerr
	}
	t.closeOwned()
	return err
}

func (t *TTY) closeOwned() {
	if t.owned != nil {
		_ = t.owned.Close()
		t.owned = nil
	}
}
