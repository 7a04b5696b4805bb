package termtrack

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bruteForce(p Palette, r int, g int, b int) int {
	best := -1
	bestDistance := 0
	for _, e := range p {
		d := abs(r-e.R) + abs(g-e.G) + abs(b-e.B)
		if best == -1 || d < bestDistance {
			best = e.Index
			bestDistance = d
		}
	}
	return best
}

func TestClosestMemoizes(t *testing.T) {
	q := NewQuantizer(nil)
	first := q.Closest(12, 200, 99)
	assert.Equal(t, QuantizerStats{Hits: 0, Misses: 1, Size: 1}, q.Stats())

	second := q.Closest(12, 200, 99)
	assert.Equal(t, first, second)
	assert.Equal(t, QuantizerStats{Hits: 1, Misses: 1, Size: 1}, q.Stats())
}

func TestClosestExactMatch(t *testing.T) {
	q := NewQuantizer(nil)
	seen := map[[3]int]int{}
	for _, e := range DefaultPalette {
		rgb := [3]int{e.R, e.G, e.B}
		// Duplicate colors resolve to their first entry
		expected, ok := seen[rgb]
		if !ok {
			expected = e.Index
			seen[rgb] = e.Index
		}
		assert.Equal(t, expected, q.Closest(e.R, e.G, e.B), "entry %v", e)
	}
}

func TestClosestDuplicates(t *testing.T) {
	q := NewQuantizer(nil)
	assert.Equal(t, 1, q.Closest(0, 0, 0))
	assert.Equal(t, 16, q.Closest(255, 255, 255))
}

func TestClosestTieBreak(t *testing.T) {
	tests := []struct {
		name     string
		palette  Palette
		expected int
	}{
		{
			name: "red first",
			palette: Palette{
				{R: 10, G: 0, B: 0, Index: 5},
				{R: 0, G: 10, B: 0, Index: 3},
			},
			expected: 5,
		},
		{
			name: "green first",
			palette: Palette{
				{R: 0, G: 10, B: 0, Index: 3},
				{R: 10, G: 0, B: 0, Index: 5},
			},
			expected: 3,
		},
		{
			name: "later closer entry wins",
			palette: Palette{
				{R: 0, G: 10, B: 0, Index: 3},
				{R: 10, G: 0, B: 0, Index: 5},
				{R: 1, G: 0, B: 0, Index: 9},
			},
			expected: 9,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q := NewQuantizer(test.palette)
			assert.Equal(t, test.expected, q.Closest(0, 0, 0))
		})
	}
}

func TestClosestMatchesBruteForce(t *testing.T) {
	q := NewQuantizer(nil)
	assert.Equal(t, bruteForce(DefaultPalette, 255, 0, 0), q.Closest(255, 0, 0))

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 64; i += 1 {
		r, g, b := rng.Intn(256), rng.Intn(256), rng.Intn(256)
		assert.Equal(t, bruteForce(DefaultPalette, r, g, b), q.Closest(r, g, b), "rgb(%d, %d, %d)", r, g, b)
	}
}

func TestClosestOutOfRange(t *testing.T) {
	q := NewQuantizer(nil)
	idx := q.Closest(-40, 400, 1000)
	assert.True(t, DefaultPalette.Contains(idx))
	assert.Equal(t, bruteForce(DefaultPalette, -40, 400, 1000), idx)
}

func TestClosestEmptyPalette(t *testing.T) {
	q := NewQuantizer(Palette{})
	assert.Equal(t, 0, q.Closest(1, 2, 3))
}

func TestNewQuantizerCopiesPalette(t *testing.T) {
	p := Palette{{R: 0, G: 0, B: 0, Index: 1}}
	q := NewQuantizer(p)
	p[0].Index = 42
	assert.Equal(t, 1, q.Closest(0, 0, 0))
	assert.Equal(t, 1, q.Palette()[0].Index)
}

func TestPaletteLimit(t *testing.T) {
	limited := DefaultPalette.Limit(8)
	require.NotEmpty(t, limited)
	for _, e := range limited {
		assert.LessOrEqual(t, e.Index, 8)
	}
	assert.Len(t, DefaultPalette.Limit(255), len(DefaultPalette))
	assert.Empty(t, DefaultPalette.Limit(0))

	// Order is kept, so ties still go to the earlier entry
	assert.Equal(t, DefaultPalette[0], limited[0])

	q := NewQuantizer(limited)
	for _, rgb := range [][3]int{{255, 255, 255}, {12, 200, 40}, {0, 0, 255}, {128, 128, 128}} {
		idx := q.Closest(rgb[0], rgb[1], rgb[2])
		assert.True(t, limited.Contains(idx))
		assert.Equal(t, bruteForce(limited, rgb[0], rgb[1], rgb[2]), idx)
	}
}

func TestQuantizerConcurrent(t *testing.T) {
	q := NewQuantizer(nil)
	var wg sync.WaitGroup
	results := make([][]int, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for v := 0; v < 256; v += 1 {
				results[i] = append(results[i], q.Closest(v, 255-v, v/2))
			}
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(results); i += 1 {
		require.Equal(t, results[0], results[i])
	}
	assert.Equal(t, 256, q.Stats().Size)
}

func TestPaletteContains(t *testing.T) {
	assert.True(t, DefaultPalette.Contains(254))
	assert.False(t, DefaultPalette.Contains(80))
	assert.False(t, DefaultPalette.Contains(0))
}
