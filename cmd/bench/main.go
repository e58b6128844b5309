package main

import (
	"flag"
	"fmt"
	"log"

	"lifewall/internal/bench"
	"lifewall/internal/sims/life"
)

func main() {
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 1024, 1024
	flag.IntVar(&cfg.Width, "width", cfg.Width, "grid width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "grid height in cells")
	flag.StringVar(&cfg.Rule, "rule", cfg.Rule, "rule string or preset name")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "row bands evaluated in parallel")
	iterations := flag.Int("iterations", 1000, "generations to time")
	flag.Parse()

	l, err := life.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("rule %q: %v", cfg.Rule, err)
	}

	fmt.Printf("%s on %dx%d, %d workers\n", l.Rule(), cfg.Width, cfg.Height, l.Workers())
	report := bench.Bench(l, *iterations)
	fmt.Println(report)
	fmt.Printf("%.1f generations/s, final population %d\n", report.GenerationsPerSecond(), l.Population())
}
