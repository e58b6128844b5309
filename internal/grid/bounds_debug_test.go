//go:build lifedebug

package grid

import (
	"errors"
	"testing"
)

func TestGetOutOfRangePanics(t *testing.T) {
	b := New(3, 3)
	defer func() {
		r := recover()
		err, ok := r.(error)
		var oob *IndexOutOfRangeError
		if !ok || !errors.As(err, &oob) {
			t.Fatalf("recovered %v, want *IndexOutOfRangeError", r)
		}
		if oob.Row != 0 || oob.Col != 5 {
			t.Fatalf("reported (%d,%d), want (0,5)", oob.Row, oob.Col)
		}
	}()
	b.Get(0, 5)
}

func TestSetOutOfRangePanics(t *testing.T) {
	b := New(3, 3)
	defer func() {
		if _, ok := recover().(*IndexOutOfRangeError); !ok {
			t.Fatal("expected *IndexOutOfRangeError panic")
		}
	}()
	b.Set(-1, 1, 1)
}

func TestBorderAccessIsInRange(t *testing.T) {
	b := New(3, 3)
	for _, rc := range [][2]int{{0, 0}, {4, 4}, {0, 4}, {4, 0}} {
		if b.Get(rc[0], rc[1]) != 0 {
			t.Fatalf("border (%d,%d) not zero", rc[0], rc[1])
		}
	}
}

func TestCheckRowsRejectsBorderRows(t *testing.T) {
	b := New(4, 4)
	b.CheckRows(1, 4)
	for _, band := range [][2]int{{0, 2}, {3, 5}, {3, 2}} {
		func() {
			defer func() {
				if _, ok := recover().(*IndexOutOfRangeError); !ok {
					t.Fatalf("band %d..%d: expected *IndexOutOfRangeError panic", band[0], band[1])
				}
			}()
			b.CheckRows(band[0], band[1])
		}()
	}
}
