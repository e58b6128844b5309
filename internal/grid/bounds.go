package grid

import "fmt"

// IndexOutOfRangeError is the panic value raised by bounds-checked builds when a
// padded coordinate falls outside the buffer.
type IndexOutOfRangeError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("grid: index (%d,%d) out of range [0,%d)x[0,%d)", e.Row, e.Col, e.Rows, e.Cols)
}

// CheckRows verifies that padded rows from..to are interior rows. It compiles to
// nothing unless built with -tags lifedebug.
func (b *Buffer) CheckRows(from, to int) {
	if !checkBounds {
		return
	}
	if from < 1 || from > b.h {
		panic(&IndexOutOfRangeError{Row: from, Col: 1, Rows: b.h + 2, Cols: b.stride})
	}
	if to < from || to > b.h {
		panic(&IndexOutOfRangeError{Row: to, Col: 1, Rows: b.h + 2, Cols: b.stride})
	}
}

func (b *Buffer) check(row, col int) {
	if row < 0 || row >= b.h+2 || col < 0 || col >= b.stride {
		panic(&IndexOutOfRangeError{Row: row, Col: col, Rows: b.h + 2, Cols: b.stride})
	}
}
