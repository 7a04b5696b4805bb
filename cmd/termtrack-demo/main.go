// Command termtrack-demo paints an animated gradient through the reduced
// palette. Press i to toggle the info overlay and q to quit.
//
// TERMTRACK_BACKEND selects "tty" (default) or "tcell". TERMTRACK_LOG names a
// file to write debug logs to.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-runewidth"
	"golang.org/x/exp/slog"

	"git.sr.ht/~rockorager/termtrack"
)

const framerate = 30

func newLogger() (*slog.Logger, func()) {
	path := os.Getenv("TERMTRACK_LOG")
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termtrack-demo: %v\n", err)
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	handler := tint.NewHandler(f, &tint.Options{
		AddSource:  true,
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05.000",
		NoColor:    true,
	})
	return slog.New(handler), func() { _ = f.Close() }
}

func main() {
	log, closeLog := newLogger()
	err := termtrack.Graceful(func(ctx context.Context) error {
		return run(ctx, log)
	})
	if err != nil {
		log.Error("exiting", "error", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "termtrack-demo: %v\n", err)
		os.Exit(1)
	}
	closeLog()
}

func run(ctx context.Context, log *slog.Logger) error {
	d, err := openDisplay(os.Getenv("TERMTRACK_BACKEND"), log)
	if err != nil {
		return err
	}
	defer d.Close()

	s, err := termtrack.Setup(d, termtrack.Options{Logger: log})
	if err != nil {
		return err
	}
	capture := s.StartCapture(nil)
	defer func() {
		s.Cancel()
		capture.Wait()
	}()

	// Only pairs Setup initialized can be drawn with
	colors := d.Colors()
	m := &model{
		quant:  termtrack.NewQuantizer(termtrack.DefaultPalette.Limit(colors)),
		colors: colors,
	}
	tick := time.NewTicker(time.Second / framerate)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		}
		for {
			ev, ok := s.PollEvent()
			if !ok {
				break
			}
			log.Debug("event", "event", ev)
			switch ev {
			case termtrack.Exit:
				return nil
			case termtrack.ToggleInfo:
				m.info = !m.info
			}
		}

		lock := s.Locker()
		lock.Lock()
		err := m.draw(d)
		lock.Unlock()
		if err != nil {
			return err
		}
		m.frame += 1
	}
}

type model struct {
	quant  *termtrack.Quantizer
	colors int
	frame  int
	info   bool
}

// infoPair is bright white over the default background, or plain white on
// terminals with 8 colors
func infoPair(colors int) int {
	return min(colors, 16)
}

func (m *model) draw(d display) error {
	cols, rows, err := d.Size()
	if err != nil {
		return err
	}
	if cols == 0 || rows == 0 {
		return nil
	}
	for row := 0; row < rows; row += 1 {
		for col := 0; col < cols; col += 1 {
			r := (col*255/cols + m.frame*3) % 256
			g := row * 255 / rows
			b := 255 - (col*255/cols+m.frame)%256
			d.Put(col, row, "█", m.quant.Closest(r, g, b))
		}
	}
	if m.info {
		stats := m.quant.Stats()
		lines := []string{
			"termtrack",
			fmt.Sprintf("colors: %d, palette: %d entries", m.colors, len(m.quant.Palette())),
			fmt.Sprintf("cache: %d colors, %d hits, %d misses", stats.Size, stats.Hits, stats.Misses),
			"i: toggle info  q: quit",
		}
		for i, line := range lines {
			if i >= rows {
				break
			}
			line = runewidth.Truncate(line, cols, "…")
			d.Put(0, i, runewidth.FillRight(line, cols), infoPair(m.colors))
		}
	}
	return d.Show()
}
