package main

import (
	"context"
	"fmt"
	"strings"

	"lifewall/internal/bench"
	"lifewall/internal/rule"
	"lifewall/internal/sims/life"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// historyLimit bounds the oscillator periods the sweep can recognise.
const historyLimit = 64

type Outcome int

const (
	Active Outcome = iota
	Extinct
	Still
	Oscillating
)

func (o Outcome) String() string {
	switch o {
	case Extinct:
		return "extinct"
	case Still:
		return "still"
	case Oscillating:
		return "oscillating"
	}
	return "active"
}

type ruleList []string

func (r *ruleList) String() string { return strings.Join(*r, ",") }

func (r *ruleList) Set(s string) error {
	*r = append(*r, s)
	return nil
}

type scenario struct {
	width, height int
	steps         int
	seed          int64
}

type result struct {
	name       string
	rule       rule.Rule
	outcome    Outcome
	period     int
	generation int
	population int
}

func (r result) String() string {
	detail := ""
	if r.outcome == Oscillating {
		detail = fmt.Sprintf(" period %d", r.period)
	}
	return fmt.Sprintf("%-18s %-14s %-11s%s at gen %d, population %d",
		r.name, r.rule, r.outcome, detail, r.generation, r.population)
}

// classify ticks l up to steps times and stops at the first generation that
// is empty or repeats an earlier one.
func classify(l *life.Life, steps int) (Outcome, int) {
	hist := bench.NewHistory(historyLimit)
	hist.Observe(l.Buffer().Digest())
	for i := 0; i < steps; i++ {
		l.Tick()
		if l.Population() == 0 {
			return Extinct, 0
		}
		switch p := hist.Observe(l.Buffer().Digest()); {
		case p == 1:
			return Still, 1
		case p > 1:
			return Oscillating, p
		}
	}
	return Active, 0
}

func runScenario(name string, r rule.Rule, sc scenario) result {
	l := life.New(sc.width, sc.height, r, 1)
	l.Randomize(sc.seed)
	outcome, period := classify(l, sc.steps)
	return result{
		name:       name,
		rule:       r,
		outcome:    outcome,
		period:     period,
		generation: l.Generation(),
		population: l.Population(),
	}
}

// sweep runs every named rule with at most workers scenarios in flight.
// Results keep the order of names.
func sweep(ctx context.Context, names []string, sc scenario, workers int) ([]result, error) {
	rules := make([]rule.Rule, len(names))
	for i, name := range names {
		r, err := rule.Resolve(name)
		if err != nil {
			return nil, errors.Wrapf(err, "[sweep] rule %q", name)
		}
		rules[i] = r
	}

	results := make([]result, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = runScenario(names[i], rules[i], sc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
