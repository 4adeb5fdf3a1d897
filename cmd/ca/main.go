//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"ca-engine/internal/app"
	"ca-engine/pkg/core"
	_ "ca-engine/pkg/engine"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stderr, "[ca] ", log.LstdFlags)

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %v)", cfg.Sim, core.Names())
	}
	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Load != "" {
		if err := app.LoadDump(sim, cfg.Load); err != nil {
			log.Fatal(err)
		}
	} else {
		sim.Reset(cfg.Seed)
	}

	palette, err := cfg.Palette()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg, palette, logger)
	size := sim.Size()

	ebiten.SetWindowTitle("ca-engine: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+200, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	if cfg.Dump != "" {
		if err := app.SaveDump(sim, cfg.Dump); err != nil {
			log.Fatal(err)
		}
		logger.Printf("wrote %s", cfg.Dump)
	}
}
