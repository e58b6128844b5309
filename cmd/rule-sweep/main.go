package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"lifewall/internal/rule"
)

func main() {
	var names ruleList
	sc := scenario{}
	flag.Var(&names, "rule", "rule string or preset to sweep (repeatable, default all presets)")
	flag.IntVar(&sc.steps, "steps", 500, "generations to simulate per rule")
	flag.IntVar(&sc.width, "width", 128, "grid width in cells")
	flag.IntVar(&sc.height, "height", 128, "grid height in cells")
	flag.Int64Var(&sc.seed, "seed", 1, "seed for the random starting grid")
	workers := flag.Int("workers", runtime.NumCPU(), "number of rules simulated concurrently")
	flag.Parse()

	if len(names) == 0 {
		names = rule.PresetNames()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d rules (%d workers, %d steps, %dx%d)\n", len(names), *workers, sc.steps, sc.width, sc.height)
	start := time.Now()
	results, err := sweep(ctx, names, sc, *workers)
	if err != nil {
		log.Fatal(err)
	}
	for _, res := range results {
		fmt.Println(res)
	}
	fmt.Printf("Sweep finished in %s\n", time.Since(start).Round(time.Millisecond))
}
