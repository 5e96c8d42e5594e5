package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"forestfire/internal/core"
	"forestfire/internal/export"
	"forestfire/internal/sims/forestfire"
)

type options struct {
	cfg     forestfire.Config
	out     string
	chart   string
	scale   int
	fps     int
	verbose bool
}

func parseFlags(args []string) (options, error) {
	def := forestfire.DefaultConfig()
	opts := options{cfg: def}
	fs := flag.NewFlagSet("forestfire", flag.ContinueOnError)
	fs.IntVar(&opts.cfg.Size, "n", def.Size, "lattice size N (N×N cells)")
	fs.Float64Var(&opts.cfg.Density, "p", def.Density, "tree density in [0,1]")
	fs.IntVar(&opts.cfg.Steps, "t", def.Steps, "step budget")
	fs.Int64Var(&opts.cfg.Seed, "seed", def.Seed, "seed for the forest draw")
	fs.StringVar(&opts.out, "out", "", "write the snapshot sequence as an MJPEG AVI to this path")
	fs.StringVar(&opts.chart, "chart", "", "write the burn curve as a PNG to this path")
	fs.IntVar(&opts.scale, "scale", 8, "pixels per cell in the animation")
	fs.IntVar(&opts.fps, "fps", 1, "animation frames per second")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if err := opts.cfg.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func run(opts options) error {
	cfg := opts.cfg
	sim, err := forestfire.New(cfg.Size, cfg.Density, core.NewRNG(cfg.Seed).Source())
	if err != nil {
		return err
	}
	frames := sim.Run(cfg.Steps)
	final := frames[len(frames)-1]
	census := final.Census()

	log.WithFields(log.Fields{
		"n":          cfg.Size,
		"p":          cfg.Density,
		"budget":     cfg.Steps,
		"seed":       cfg.Seed,
		"steps":      sim.Steps(),
		"frames":     len(frames),
		"percolated": forestfire.Percolated(final),
		"burned":     fmt.Sprintf("%.3f", census.BurnedFraction()),
	}).Info("simulation finished")

	for i, c := range forestfire.History(frames) {
		log.WithFields(log.Fields{
			"frame":     i,
			"unignited": c.Unignited,
			"burning":   c.Burning,
			"burned":    c.Burned,
		}).Debug("census")
	}

	if opts.out != "" {
		if err := export.WriteAnimation(opts.out, frames, export.AnimationOptions{Scale: opts.scale, FPS: opts.fps}); err != nil {
			return err
		}
		log.WithField("path", opts.out).Info("animation written")
	}
	if opts.chart != "" {
		if err := writeChart(opts.chart, frames); err != nil {
			return err
		}
		log.WithField("path", opts.chart).Info("burn chart written")
	}

	fmt.Println(sim.Steps())
	return nil
}

func writeChart(path string, frames []*forestfire.Lattice) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return export.WriteBurnChart(f, frames)
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}
	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}
