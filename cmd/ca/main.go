//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifewall/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}

	l, err := cfg.NewLife()
	if err != nil {
		log.Fatalf("rule %q: %v", cfg.Rule, err)
	}

	game, err := app.New(l, cfg)
	if err != nil {
		log.Fatalf("gpu: %v", err)
	}
	size := l.Size()

	ebiten.SetWindowTitle("lifewall - " + l.Rule().String())
	ebiten.SetWindowSize(size.W*cfg.Pixels, size.H*cfg.Pixels)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
