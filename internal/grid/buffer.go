package grid

import (
	"crypto/md5"
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// ErrBlockSize reports a paint block whose value count does not match its extent.
var ErrBlockSize = errors.New("grid: block size mismatch")

// Buffer stores two padded generations of a binary grid in row-major order.
//
// The interior spans rows 1..H and columns 1..W. Row 0, row H+1, column 0 and
// column W+1 form a ring that is never written and always reads 0, so the eight
// neighbors of every interior cell are in range without per-access checks.
type Buffer struct {
	w, h   int
	stride int
	cur    []uint8
	nxt    []uint8
}

// New allocates a zero-filled buffer pair for a w*h interior.
func New(w, h int) *Buffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	stride := w + 2
	n := stride * (h + 2)
	return &Buffer{w: w, h: h, stride: stride, cur: make([]uint8, n), nxt: make([]uint8, n)}
}

// Width returns the interior width.
func (b *Buffer) Width() int { return b.w }

// Height returns the interior height.
func (b *Buffer) Height() int { return b.h }

// Stride returns the padded row length.
func (b *Buffer) Stride() int { return b.stride }

// Get reads the current generation at padded coordinates.
func (b *Buffer) Get(row, col int) uint8 {
	if checkBounds {
		b.check(row, col)
	}
	return b.cur[row*b.stride+col]
}

// Set writes the next generation at padded coordinates. The current generation
// is never touched, so a generation is always computed from one frozen snapshot.
// Any non-zero val is stored as 1.
func (b *Buffer) Set(row, col int, val uint8) {
	if checkBounds {
		b.check(row, col)
	}
	if val != 0 {
		val = 1
	}
	b.nxt[row*b.stride+col] = val
}

// Swap exchanges the current and next roles.
func (b *Buffer) Swap() { b.cur, b.nxt = b.nxt, b.cur }

// Current exposes the padded readable generation.
func (b *Buffer) Current() []uint8 { return b.cur }

// Next exposes the padded write target.
func (b *Buffer) Next() []uint8 { return b.nxt }

// SeedGliders stamps a glider at every interior origin whose row and column are
// both 1 mod 5, then swaps so the pattern becomes the current generation. Tile
// cells that would land outside the interior are skipped.
func (b *Buffer) SeedGliders() {
	clear(b.cur)
	clear(b.nxt)
	for r := 1; r <= b.h; r += 5 {
		for c := 1; c <= b.w; c += 5 {
			for _, off := range gliderOffsets {
				row, col := r+off[0], c+off[1]
				if row > b.h || col > b.w {
					continue
				}
				b.Set(row, col, 1)
			}
		}
	}
	b.Swap()
}

// gliderOffsets are the live cells of the canonical south-east glider,
// as (row, col) offsets from the tile origin.
var gliderOffsets = [5][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}

// Rows yields the interior of the current generation top to bottom. Each row is
// read lazily from whatever generation is current when it is traversed, and the
// sequence may be re-traversed between generations.
func (b *Buffer) Rows() iter.Seq[iter.Seq[uint8]] {
	return func(yield func(iter.Seq[uint8]) bool) {
		for r := 1; r <= b.h; r++ {
			if !yield(b.row(r)) {
				return
			}
		}
	}
}

func (b *Buffer) row(r int) iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		start := r*b.stride + 1
		for _, v := range b.cur[start : start+b.w] {
			if !yield(v) {
				return
			}
		}
	}
}

// Paint writes a w*h block of values at visible coordinates (x, y) into the
// current generation, which the next tick reads. Non-zero values are stored as 1
// and cells outside the interior are dropped. No swap happens.
func (b *Buffer) Paint(x, y, w, h int, values []uint8) error {
	if w < 0 || h < 0 || len(values) != w*h {
		return errors.Wrapf(ErrBlockSize, "[Paint] %dx%d block with %d values", w, h, len(values))
	}
	for dy := 0; dy < h; dy++ {
		row := y + dy
		if row < 0 || row >= b.h {
			continue
		}
		base := (row+1)*b.stride + 1
		for dx := 0; dx < w; dx++ {
			col := x + dx
			if col < 0 || col >= b.w {
				continue
			}
			v := values[dy*w+dx]
			if v != 0 {
				v = 1
			}
			b.cur[base+col] = v
		}
	}
	return nil
}

// Fill sets every interior cell of the current generation from fn, called with
// visible coordinates.
func (b *Buffer) Fill(fn func(x, y int) uint8) {
	for y := 0; y < b.h; y++ {
		base := (y+1)*b.stride + 1
		for x := 0; x < b.w; x++ {
			v := fn(x, y)
			if v != 0 {
				v = 1
			}
			b.cur[base+x] = v
		}
	}
}

// Clear zeroes both generations.
func (b *Buffer) Clear() {
	clear(b.cur)
	clear(b.nxt)
}

// Population counts live cells in the current generation.
func (b *Buffer) Population() (count int) {
	for _, v := range b.cur {
		count += int(v)
	}
	return
}

// Snapshot copies the current interior into a new row-major w*h slice.
func (b *Buffer) Snapshot() []uint8 {
	out := make([]uint8, 0, b.w*b.h)
	for r := 1; r <= b.h; r++ {
		start := r*b.stride + 1
		out = append(out, b.cur[start:start+b.w]...)
	}
	return out
}

// Digest returns an MD5 hash of the current interior.
func (b *Buffer) Digest() string {
	h := md5.New()
	for r := 1; r <= b.h; r++ {
		start := r*b.stride + 1
		h.Write(b.cur[start : start+b.w])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
