// Package tty implements termtrack.Terminal directly on a unix terminal
// device, using ANSI sequences and terminfo where available.
package tty

import (
	"errors"
	"os"

	"golang.org/x/exp/slog"
)

var (
	// ErrNotTerminal is returned by Open when the input is not a terminal
	ErrNotTerminal = errors.New("tty: not a terminal")
	// ErrInvalidPair is returned for color pairs curses would refuse
	ErrInvalidPair = errors.New("tty: invalid color pair")
)

type Options struct {
	// In and Out are the terminal files. Either defaults to /dev/tty
	In  *os.File
	Out *os.File
	// Term is the terminfo name. Default is $TERM
	Term string
	// Colors overrides the color count from terminfo
	Colors int
	// Logger is an optional slog.Logger for diagnostics
	Logger *slog.Logger
}

func (o Options) term() string {
	if o.Term != "" {
		return o.Term
	}
	return os.Getenv("TERM")
}
