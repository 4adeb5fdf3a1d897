package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"ca-engine/internal/app"
	"ca-engine/internal/term"
	"ca-engine/pkg/core"
	_ "ca-engine/pkg/engine"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 40, 20
	quiet := flag.Bool("quiet", false, "disable sound")
	logPath := flag.String("log", "ca-term.log", "log file (the terminal is busy drawing)")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	logger := log.New(f, "[ca-term] ", log.LstdFlags)

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

	var sound *term.Sound
	if !*quiet {
		sound, err = term.NewSound()
		if err != nil {
			// Non-fatal, the viewer runs without sound.
			logger.Printf("audio initialization failed: %v", err)
		}
		defer sound.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	view := term.NewView(screen, app.NewController(sim, cfg, logger), palette, sound, cfg.TPS)
	runErr := view.Run(ctx)
	screen.Fini()
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Fatal(runErr)
	}

	if cfg.Dump != "" {
		if err := app.SaveDump(sim, cfg.Dump); err != nil {
			log.Fatal(err)
		}
		logger.Printf("wrote %s", cfg.Dump)
	}
}
