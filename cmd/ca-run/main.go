package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"ca-engine/internal/app"
	"ca-engine/pkg/core"
	"ca-engine/pkg/dump"
	"ca-engine/pkg/engine"
)

func main() {
	cfg := app.NewConfig()
	cfg.Generations = 100
	quiet := flag.Bool("quiet", false, "do not print the final grid")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stderr, "[ca-run] ", log.LstdFlags)

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
		logger.Printf("loaded %s (%dx%d)", cfg.Load, sim.Size().W, sim.Size().H)
	} else {
		sim.Reset(cfg.Seed)
	}

	steps := 0
	for cfg.Generations <= 0 || steps < cfg.Generations {
		sim.Step()
		steps++
		if sim.Unchanged() {
			logger.Printf("%s unchanged after %d generations", sim.Name(), steps)
			break
		}
	}
	if e, ok := sim.(*engine.Engine); ok {
		logger.Printf("%s: %d generations, %d alive", sim.Name(), steps, e.Grid().CountValue(core.Alive))
	}

	if cfg.Dump != "" {
		if err := app.SaveDump(sim, cfg.Dump); err != nil {
			log.Fatal(err)
		}
		logger.Printf("wrote %s", cfg.Dump)
	}
	if !*quiet {
		if e, ok := sim.(*engine.Engine); ok {
			if err := dump.Write(os.Stdout, e.Grid()); err != nil {
				log.Fatal(err)
			}
		} else {
			fmt.Println(sim.Name())
		}
	}
}
