//go:build !ebiten

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lifewall/internal/app"
	"lifewall/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	frames := flag.Int("frames", 0, "print this many generations as text and exit")
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.GPU {
		log.Printf("-gpu needs the ebiten build tag, stepping on the CPU")
	}

	l, err := cfg.NewLife()
	if err != nil {
		log.Fatalf("rule %q: %v", cfg.Rule, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *frames > 0 {
		if err := printFrames(ctx, os.Stdout, l, *frames); err != nil && ctx.Err() == nil {
			log.Fatal(err)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	err = term.New(screen, l, cfg).Run(ctx)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
