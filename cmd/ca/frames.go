package main

import (
	"context"
	"fmt"
	"io"

	"lifewall/internal/render"
	"lifewall/internal/sims/life"
)

// printFrames writes n generations as text, starting with the current one,
// each under a header line.
func printFrames(ctx context.Context, w io.Writer, l *life.Life, n int) error {
	for i := 0; i < n; i++ {
		if i > 0 {
			if _, err := l.Run(ctx, 1); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "generation %d population %d\n", l.Generation(), l.Population()); err != nil {
			return err
		}
		if err := render.WriteText(w, l.Rows()); err != nil {
			return err
		}
	}
	return nil
}
