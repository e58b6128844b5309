package life

import (
	"context"
	"iter"

	"lifewall/internal/core"
	"lifewall/internal/grid"
	"lifewall/internal/rule"

	"golang.org/x/sync/errgroup"
)

// State is the lifecycle position of a Life stepper.
type State int

const (
	// Uninitialized is a freshly allocated, never seeded grid.
	Uninitialized State = iota
	// Seeded holds an initial pattern and no completed generation.
	Seeded
	// Stepped has completed at least one generation.
	Stepped
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Seeded:
		return "seeded"
	case Stepped:
		return "stepped"
	}
	return "unknown"
}

// Life runs a life-like rule over a padded, double-buffered grid with no
// wraparound. A single Life must not be ticked from two goroutines at once.
type Life struct {
	buf     *grid.Buffer
	rule    rule.Rule
	table   [2][rule.MaxCount + 1]uint8
	workers int

	state State
	gen   int
}

// New returns a Life stepper with a zeroed w*h interior. With workers > 1 each
// generation is split into row bands evaluated concurrently.
func New(w, h int, r rule.Rule, workers int) *Life {
	if workers < 1 {
		workers = 1
	}
	return &Life{
		buf:     grid.New(w, h),
		rule:    r,
		table:   r.Table(),
		workers: workers,
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the interior dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.buf.Width(), H: l.buf.Height()} }

// Rows yields the current generation for renderers.
func (l *Life) Rows() iter.Seq[iter.Seq[uint8]] { return l.buf.Rows() }

// Buffer exposes the underlying grid.
func (l *Life) Buffer() *grid.Buffer { return l.buf }

// Rule returns the compiled rule.
func (l *Life) Rule() rule.Rule { return l.rule }

// Workers returns the number of row bands evaluated per generation.
func (l *Life) Workers() int { return l.workers }

// State returns the lifecycle state.
func (l *Life) State() State { return l.state }

// Generation returns the number of ticks since the last seeding.
func (l *Life) Generation() int { return l.gen }

// Population counts live cells in the current generation.
func (l *Life) Population() int { return l.buf.Population() }

// Reset reseeds the grid: seed 0 stamps the glider tiling, any other seed
// fills the grid randomly.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		l.SeedGliders()
		return
	}
	l.Randomize(seed)
}

// SeedGliders stamps the repeating glider tiling as generation 0.
func (l *Life) SeedGliders() {
	l.buf.SeedGliders()
	l.seeded()
}

// Randomize fills the grid with cells that are live with probability 1/2.
func (l *Life) Randomize(seed int64) {
	rng := core.NewRNG(seed)
	l.buf.Clear()
	l.buf.Fill(func(int, int) uint8 { return rng.Cell(0.5) })
	l.seeded()
}

// Clear empties the grid.
func (l *Life) Clear() {
	l.buf.Clear()
	l.seeded()
}

func (l *Life) seeded() {
	l.state = Seeded
	l.gen = 0
}

// Paint writes a block into the generation the next tick reads. It does not
// advance the generation.
func (l *Life) Paint(x, y, w, h int, values []uint8) error {
	if err := l.buf.Paint(x, y, w, h, values); err != nil {
		return err
	}
	if l.state == Uninitialized {
		l.state = Seeded
	}
	return nil
}

// Step advances one generation; it satisfies core.Sim.
func (l *Life) Step() { l.Tick() }

// Tick computes the next generation from the current one and swaps buffers.
// The result depends only on the current generation and the rule.
func (l *Life) Tick() {
	h := l.buf.Height()
	if l.workers > 1 && h > 1 {
		l.tickBands(min(l.workers, h))
	} else {
		l.stepRows(1, h)
	}
	l.buf.Swap()
	l.gen++
	l.state = Stepped
}

// Run ticks up to n times, stopping early between generations when ctx is
// done. It returns the number of completed ticks.
func (l *Life) Run(ctx context.Context, n int) (int, error) {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		l.Tick()
	}
	return n, nil
}

// tickBands evaluates contiguous row bands concurrently. Bands read only the
// current buffer and write disjoint rows of the next one; Wait is the barrier
// before Tick swaps.
func (l *Life) tickBands(workers int) {
	h := l.buf.Height()
	band := (h + workers - 1) / workers
	var eg errgroup.Group
	for start := 1; start <= h; start += band {
		end := min(start+band-1, h)
		eg.Go(func() error {
			l.stepRows(start, end)
			return nil
		})
	}
	_ = eg.Wait()
}

// stepRows writes the next state of padded rows from..to inclusive.
func (l *Life) stepRows(from, to int) {
	l.buf.CheckRows(from, to)
	cur, nxt := l.buf.Current(), l.buf.Next()
	s := l.buf.Stride()
	w := l.buf.Width()
	for r := from; r <= to; r++ {
		up, mid, down := (r-1)*s, r*s, (r+1)*s
		for c := 1; c <= w; c++ {
			sum := cur[up+c-1] + cur[up+c] + cur[up+c+1] +
				cur[mid+c-1] + cur[mid+c+1] +
				cur[down+c-1] + cur[down+c] + cur[down+c+1]
			nxt[mid+c] = l.table[cur[mid+c]][sum]
		}
	}
}
