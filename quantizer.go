package termtrack

import (
	"math"
	"sync"
	"sync/atomic"
)

type rgbKey struct {
	r int
	g int
	b int
}

// Quantizer maps true colors onto the nearest entry of a Palette. Results are
// memoized for the lifetime of the Quantizer; the cache is never evicted.
//
// A Quantizer is safe for concurrent use.
type Quantizer struct {
	palette Palette

	mu    sync.RWMutex
	cache map[rgbKey]int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// QuantizerStats reports cache activity of a Quantizer
type QuantizerStats struct {
	Hits   uint64
	Misses uint64
	// Size is the number of memoized colors
	Size int
}

// NewQuantizer returns a Quantizer over p. A nil palette selects
// DefaultPalette. The palette is copied, later changes to p have no effect
func NewQuantizer(p Palette) *Quantizer {
	if p == nil {
		p = DefaultPalette
	}
	palette := make(Palette, len(p))
	copy(palette, p)
	return &Quantizer{
		palette: palette,
		cache:   make(map[rgbKey]int),
	}
}

// Palette returns a copy of the palette the Quantizer searches
func (q *Quantizer) Palette() Palette {
	p := make(Palette, len(q.palette))
	copy(p, q.palette)
	return p
}

// Closest returns the Index of the palette entry nearest to the color by
// Manhattan distance. Ties go to the entry appearing first in the palette.
// Channels are used as given, values outside 0-255 are not clamped. An empty
// palette always yields 0
func (q *Quantizer) Closest(r int, g int, b int) int {
	key := rgbKey{r, g, b}
	q.mu.RLock()
	idx, ok := q.cache[key]
	q.mu.RUnlock()
	if ok {
		q.hits.Add(1)
		return idx
	}
	q.misses.Add(1)

	idx = q.palette.nearest(r, g, b)

	q.mu.Lock()
	q.cache[key] = idx
	q.mu.Unlock()
	return idx
}

// Stats returns a snapshot of the cache counters
func (q *Quantizer) Stats() QuantizerStats {
	q.mu.RLock()
	size := len(q.cache)
	q.mu.RUnlock()
	return QuantizerStats{
		Hits:   q.hits.Load(),
		Misses: q.misses.Load(),
		Size:   size,
	}
}

// nearest scans the whole palette. The strict comparison keeps the earliest
// entry among equals
func (p Palette) nearest(r int, g int, b int) int {
	best := 0
	bestDistance := math.MaxInt
	for _, e := range p {
		d := abs(r-e.R) + abs(g-e.G) + abs(b-e.B)
		if d < bestDistance {
			best = e.Index
			bestDistance = d
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
