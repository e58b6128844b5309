package bench

import (
	"strings"
	"testing"
	"time"
)

type countingTarget struct {
	seeded int
	ticks  int
}

func (c *countingTarget) SeedGliders() { c.seeded++ }
func (c *countingTarget) Tick()        { c.ticks++ }

func TestBenchSeedsOnceAndTicks(t *testing.T) {
	target := &countingTarget{}
	report := Bench(target, 25)
	if target.seeded != 1 || target.ticks != 25 {
		t.Fatalf("seeded %d times, ticked %d times", target.seeded, target.ticks)
	}
	if report.Iterations != 25 || report.Total < 0 {
		t.Fatalf("report = %+v", report)
	}
}

func TestReportFormatting(t *testing.T) {
	r := Report{Iterations: 4, Total: 10 * time.Millisecond}
	if r.PerIteration() != 2500*time.Microsecond {
		t.Fatalf("per iteration = %v", r.PerIteration())
	}
	if got := r.String(); got != "Total: 10.000000 ms (2.500000 ms / iter)" {
		t.Fatalf("String() = %q", got)
	}
	if r.GenerationsPerSecond() != 400 {
		t.Fatalf("gen/s = %v", r.GenerationsPerSecond())
	}

	empty := Report{}
	if empty.PerIteration() != 0 || empty.GenerationsPerSecond() != 0 {
		t.Fatal("empty report should be zero")
	}
	if !strings.HasPrefix(empty.String(), "Total: 0.000000 ms") {
		t.Fatalf("empty String() = %q", empty.String())
	}
}

func TestStatsMovingAverage(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 10*time.Millisecond)
	if s.AveragePopulation != 100 || s.GenerationsPerSecond != 100 {
		t.Fatalf("first update: %+v", s)
	}
	s.Update(2, 200, 0)
	if s.AveragePopulation != 110 || s.TotalGenerations != 2 {
		t.Fatalf("second update: %+v", s)
	}
	if s.GenerationsPerSecond != 100 {
		t.Fatal("zero duration should keep the previous rate")
	}
}

func TestHistoryPeriods(t *testing.T) {
	h := NewHistory(4)
	for _, d := range []string{"a", "b", "c"} {
		if p := h.Observe(d); p != 0 {
			t.Fatalf("fresh digest %s reported period %d", d, p)
		}
	}
	if p := h.Observe("c"); p != 1 {
		t.Fatalf("still grid period = %d, want 1", p)
	}
	if p := h.Observe("b"); p != 3 {
		t.Fatalf("period = %d, want 3", p)
	}

	h = NewHistory(2)
	h.Observe("x")
	h.Observe("y")
	h.Observe("z")
	if p := h.Observe("x"); p != 0 {
		t.Fatalf("evicted digest matched with period %d", p)
	}
}
