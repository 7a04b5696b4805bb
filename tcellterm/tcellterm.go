// Package tcellterm implements termtrack.Terminal on a tcell.Screen
package tcellterm

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"git.sr.ht/~rockorager/termtrack"
)

// ErrInvalidPair is returned for color pairs curses would refuse
var ErrInvalidPair = errors.New("tcellterm: invalid color pair")

// Screen adapts a tcell.Screen. Color pairs are kept as tcell styles.
//
// A Screen is not safe for concurrent use. Share it through the lock of a
// termtrack.Session
type Screen struct {
	screen        tcell.Screen
	styles        map[int]tcell.Style
	defaultColors bool
	timeout       time.Duration
	// interrupt is called for Ctrl+C, which tcell delivers as a key
	interrupt func() error
}

var _ termtrack.Terminal = (*Screen)(nil)

// Open creates and initializes a tcell screen for the controlling terminal
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcellterm: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("tcellterm: %w", err)
	}
	return New(s), nil
}

// New wraps an initialized screen
func New(s tcell.Screen) *Screen {
	return &Screen{
		screen:    s,
		styles:    make(map[int]tcell.Style),
		timeout:   -1,
		interrupt: raiseInterrupt,
	}
}

// raiseInterrupt sends os.Interrupt to the current process, as the terminal
// driver would outside raw mode
func raiseInterrupt() error {
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		return err
	}
	return p.Signal(os.Interrupt)
}

func (s *Screen) UseDefaultColors() error {
	s.defaultColors = true
	s.screen.SetStyle(tcell.StyleDefault.
		Foreground(tcell.ColorReset).
		Background(tcell.ColorReset))
	return nil
}

// Colors is the number of palette colors, at most 256. Direct color
// terminals still address the 256 color palette through pairs
func (s *Screen) Colors() int {
	return min(s.screen.Colors(), 256)
}

func (s *Screen) color(c int) (tcell.Color, error) {
	switch {
	case c == -1 && s.defaultColors:
		return tcell.ColorReset, nil
	case c == -1:
		return 0, fmt.Errorf("%w: default color without UseDefaultColors", ErrInvalidPair)
	}
	color, ok := termtrack.PairColor(c)
	if !ok || c >= s.Colors() {
		return 0, fmt.Errorf("%w: color %d out of range", ErrInvalidPair, c)
	}
	return tcellColor(color), nil
}

func tcellColor(c termtrack.Color) tcell.Color {
	idx, ok := c.Index()
	if !ok {
		return tcell.ColorReset
	}
	return tcell.PaletteColor(int(idx))
}

func (s *Screen) InitPair(pair int, fg int, bg int) error {
	if pair < 1 {
		return fmt.Errorf("%w: pair %d", ErrInvalidPair, pair)
	}
	fgc, err := s.color(fg)
	if err != nil {
		return err
	}
	bgc, err := s.color(bg)
	if err != nil {
		return err
	}
	s.styles[pair] = tcell.StyleDefault.Foreground(fgc).Background(bgc)
	return nil
}

// Style returns the style of a color pair
func (s *Screen) Style(pair int) (tcell.Style, bool) {
	style, ok := s.styles[pair]
	return style, ok
}

func (s *Screen) SetCursorVisible(visible bool) error {
	if visible {
		s.screen.ShowCursor(0, 0)
		return nil
	}
	s.screen.HideCursor()
	return nil
}

// SetReadTimeout sets how long ReadKey waits for an event. Zero returns
// immediately, a negative duration blocks
func (s *Screen) SetReadTimeout(d time.Duration) error {
	s.timeout = d
	return nil
}

// ReadKey returns the next key event. Other events are consumed and reported
// as ErrNoKey. Ctrl+C raises os.Interrupt instead of being returned, so that
// it behaves as under a cooked terminal
func (s *Screen) ReadKey() (termtrack.Key, error) {
	if s.timeout >= 0 {
		deadline := time.Now().Add(s.timeout)
		for !s.screen.HasPendingEvent() {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				return termtrack.Key{}, termtrack.ErrNoKey
			}
			time.Sleep(min(remaining, 5*time.Millisecond))
		}
	}
	switch ev := s.screen.PollEvent().(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC && s.interrupt() == nil {
			return termtrack.Key{}, termtrack.ErrNoKey
		}
		if key, ok := convertKey(ev); ok {
			return key, nil
		}
	case nil:
		return termtrack.Key{}, errors.New("tcellterm: screen finalized")
	}
	return termtrack.Key{}, termtrack.ErrNoKey
}

// Put draws s at column x of row y using a color pair. It returns the number
// of columns used
func (s *Screen) Put(x int, y int, str string, pair int) int {
	style, ok := s.styles[pair]
	if !ok {
		style = tcell.StyleDefault
	}
	col := x
	state := -1
	rest := str
	for len(rest) > 0 {
		var (
			cluster string
			width   int
		)
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		runes := []rune(cluster)
		s.screen.SetContent(col, y, runes[0], runes[1:], style)
		col += width
	}
	return col - x
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) Size() (cols int, rows int, err error) {
	cols, rows = s.screen.Size()
	return cols, rows, nil
}

// Close restores the terminal
func (s *Screen) Close() error {
	s.screen.Fini()
	return nil
}
