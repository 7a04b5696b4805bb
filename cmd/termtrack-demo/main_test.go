package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~rockorager/termtrack"
)

// recorder is a display remembering the pairs drawn with
type recorder struct {
	colors int
	pairs  map[int]bool
	used   map[int]int
}

func newRecorder(colors int) *recorder {
	return &recorder{
		colors: colors,
		pairs:  make(map[int]bool),
		used:   make(map[int]int),
	}
}

func (r *recorder) ReadKey() (termtrack.Key, error)    { return termtrack.Key{}, termtrack.ErrNoKey }
func (r *recorder) UseDefaultColors() error            { return nil }
func (r *recorder) Colors() int                        { return r.colors }
func (r *recorder) SetCursorVisible(bool) error        { return nil }
func (r *recorder) SetReadTimeout(time.Duration) error { return nil }
func (r *recorder) Size() (int, int, error)            { return 40, 12, nil }
func (r *recorder) Show() error                        { return nil }
func (r *recorder) Close() error                       { return nil }

func (r *recorder) InitPair(pair int, fg int, bg int) error {
	r.pairs[pair] = true
	return nil
}

func (r *recorder) Put(col int, row int, s string, pair int) {
	r.used[pair] += 1
}

func TestDrawUsesInitializedPairs(t *testing.T) {
	for _, colors := range []int{8, 16, 256} {
		d := newRecorder(colors)
		s, err := termtrack.Setup(d, termtrack.Options{})
		require.NoError(t, err)
		s.Cancel()

		m := &model{
			quant:  termtrack.NewQuantizer(termtrack.DefaultPalette.Limit(colors)),
			colors: colors,
			info:   true,
		}
		for frame := 0; frame < 10; frame += 1 {
			require.NoError(t, m.draw(d))
			m.frame += 1
		}
		require.NotEmpty(t, d.used)
		for pair := range d.used {
			assert.True(t, d.pairs[pair], "%d colors: pair %d not initialized", colors, pair)
		}
	}
}
