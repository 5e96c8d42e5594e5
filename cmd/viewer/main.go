//go:build ebiten

package main

import (
	"errors"
	"flag"
	"strings"

	log "github.com/sirupsen/logrus"

	"forestfire/internal/app"
	"forestfire/internal/core"
	_ "forestfire/internal/sims/forestfire"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	sim := factory(cfg.SimParams())
	game := app.New(sim, cfg)
	game.Reset(cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("forest fire — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
