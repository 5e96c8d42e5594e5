//go:build ebiten

package app

import (
	"image/color"
	"time"

	log "github.com/sirupsen/logrus"

	"forestfire/internal/core"
	"forestfire/internal/render"
	"forestfire/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

type errProvider interface {
	Err() error
}

// Game adapts a core simulation to the ebiten.Game interface. The sim is
// advanced on the pacer's schedule rather than every tick.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep
	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	g := &Game{
		sim:   sim,
		hud:   ui.NewHUD(sim, cfg.HUDWidth),
		pacer: core.NewFixedStep(cfg.FPS),
		scale: max(cfg.Scale, 1),
		seed:  cfg.Seed,
	}
	if p, ok := sim.(paletteProvider); ok {
		g.palette = p.Palette()
	} else {
		g.palette = []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}
	}
	g.syncPainter()
	return g
}

// Reset reruns the simulation with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.reportErr()
	log.WithField("seed", seed).Debug("simulation reset")
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	size := g.sim.Size()
	g.hud.Update(size.W * g.scale)
	g.syncPainter()

	due := g.pacer.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// syncPainter reallocates the painter when the HUD resized the lattice.
func (g *Game) syncPainter() {
	size := g.sim.Size()
	if g.painter != nil {
		if w, h := g.painter.Size(); w == size.W && h == size.H {
			return
		}
	}
	g.painter = render.NewGridPainter(size.W, size.H)
	g.reportErr()
}

func (g *Game) reportErr() {
	if p, ok := g.sim.(errProvider); ok && p.Err() != nil {
		log.WithError(p.Err()).Warn("simulation run failed")
	}
}

// Draw renders the current frame and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	size := g.sim.Size()
	g.hud.Draw(screen, size.W*g.scale, max(size.H*g.scale, minPanelHeight))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), max(s.H*g.scale, minPanelHeight)
}

const minPanelHeight = 320
