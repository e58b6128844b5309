package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lifewall/internal/rule"
	"lifewall/internal/sims/life"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		paint  func(*life.Life)
		steps  int
		want   Outcome
		period int
		gen    int
	}{
		{"empty", func(l *life.Life) { l.Paint(3, 3, 1, 1, []uint8{1}) }, 10, Extinct, 0, 1},
		{"block", func(l *life.Life) { l.Paint(3, 3, 2, 2, []uint8{1, 1, 1, 1}) }, 10, Still, 1, 1},
		{"blinker", func(l *life.Life) { l.Paint(3, 2, 1, 3, []uint8{1, 1, 1}) }, 10, Oscillating, 2, 2},
		{"glider", func(l *life.Life) { l.Paint(1, 1, 3, 3, []uint8{0, 1, 0, 0, 0, 1, 1, 1, 1}) }, 8, Active, 0, 8},
	}
	for _, tc := range cases {
		l := life.New(20, 20, rule.Conway, 1)
		tc.paint(l)
		got, period := classify(l, tc.steps)
		if got != tc.want || period != tc.period || l.Generation() != tc.gen {
			t.Fatalf("%s: %v period %d at gen %d, want %v period %d at gen %d",
				tc.name, got, period, l.Generation(), tc.want, tc.period, tc.gen)
		}
	}
}

func TestSweep(t *testing.T) {
	sc := scenario{width: 16, height: 16, steps: 20, seed: 3}
	results, err := sweep(context.Background(), []string{"B/S", "life", "B3/S012345678"}, sc, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 || results[0].name != "B/S" || results[2].name != "B3/S012345678" {
		t.Fatalf("results out of order: %v", results)
	}
	if results[0].outcome != Extinct || results[0].generation != 1 {
		t.Fatalf("B/S should die out in one generation: %v", results[0])
	}
	if results[2].population == 0 {
		t.Fatal("cells never die under S012345678")
	}
	if !strings.Contains(results[0].String(), "extinct") {
		t.Fatalf("String = %q", results[0])
	}

	if _, err := sweep(context.Background(), []string{"life", "nope"}, sc, 2); !errors.Is(err, rule.ErrInvalidRuleFormat) {
		t.Fatalf("bad rule err = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := sweep(ctx, []string{"life"}, sc, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled sweep err = %v", err)
	}
}

func TestRuleListFlag(t *testing.T) {
	var r ruleList
	r.Set("life")
	r.Set("B36/S23")
	if r.String() != "life,B36/S23" {
		t.Fatalf("ruleList = %q", r.String())
	}
}
