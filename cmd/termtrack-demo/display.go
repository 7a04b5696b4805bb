package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"golang.org/x/exp/slog"

	"git.sr.ht/~rockorager/termtrack"
	"git.sr.ht/~rockorager/termtrack/tcellterm"
	"git.sr.ht/~rockorager/termtrack/tty"
)

// display is a Terminal the demo can paint on
type display interface {
	termtrack.Terminal
	Size() (cols int, rows int, err error)
	// Put draws s at the given cell with a color pair
	Put(col int, row int, s string, pair int)
	Show() error
	Close() error
}

func openDisplay(backend string, log *slog.Logger) (display, error) {
	switch backend {
	case "", "tty":
		t, err := tty.Open(tty.Options{Logger: log})
		if err != nil {
			return nil, err
		}
		return &ttyDisplay{TTY: t, pair: -1}, nil
	case "tcell":
		s, err := tcellterm.Open()
		if err != nil {
			return nil, err
		}
		return &tcellDisplay{Screen: s}, nil
	}
	return nil, fmt.Errorf("unknown backend %q", backend)
}

type ttyDisplay struct {
	*tty.TTY
	// pair is the last pair selected, to skip redundant SGR
	pair int
	// next cell the terminal cursor will write to
	row int
	col int
}

func (d *ttyDisplay) Put(col int, row int, s string, pair int) {
	if row != d.row || col != d.col {
		d.MoveTo(row, col)
	}
	if pair != d.pair {
		if err := d.SetPair(pair); err != nil {
			return
		}
		d.pair = pair
	}
	_, _ = d.WriteString(s)
	d.row = row
	d.col = col + runewidth.StringWidth(s)
}

func (d *ttyDisplay) Show() error {
	// Force a reposition at the start of each frame
	d.row = -1
	return d.Flush()
}

type tcellDisplay struct {
	*tcellterm.Screen
}

func (d *tcellDisplay) Put(col int, row int, s string, pair int) {
	d.Screen.Put(col, row, s, pair)
}

func (d *tcellDisplay) Show() error {
	d.Screen.Show()
	return nil
}
