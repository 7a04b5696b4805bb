//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd)

package tty

import (
	"errors"
	"time"

	"git.sr.ht/~rockorager/termtrack"
)

// ErrUnsupported is returned by Open on platforms without termios
var ErrUnsupported = errors.New("tty: unsupported platform")

// TTY is unavailable on this platform. Use the tcellterm backend instead
type TTY struct{}

func Open(Options) (*TTY, error) {
	return nil, ErrUnsupported
}

func (t *TTY) UseDefaultColors() error { return ErrUnsupported }
func (t *TTY) Colors() int { return 0 }
func (t *TTY) InitPair(int, int, int) error { return ErrUnsupported }
func (t *TTY) SetPair(int) error { return ErrUnsupported }
func (t *TTY) SetCursorVisible(bool) error { return ErrUnsupported }
func (t *TTY) SetReadTimeout(time.Duration) error { return ErrUnsupported }
func (t *TTY) ReadKey() (termtrack.Key, error) { return termtrack.Key{}, ErrUnsupported }
func (t *TTY) Size() (int, int, error) { return 0, 0, ErrUnsupported }
func (t *TTY) MoveTo(int, int) {}
func (t *TTY) WriteString(string) (int, error) { return 0, ErrUnsupported }
func (t *TTY) Clear() {}
func (t *TTY) Flush() error { return ErrUnsupported }
func (t *TTY) Close() error { return nil }
