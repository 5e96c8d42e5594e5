package export

import (
	"fmt"
	"image"
	"image/color"

	"forestfire/internal/render"
	"forestfire/internal/sims/forestfire"
)

func renderFrame(l *forestfire.Lattice, index int, palette []color.RGBA, opts AnimationOptions) *image.RGBA {
	return render.FrameImage(l.Bytes(), l.N(), palette, render.FrameOptions{
		Scale: opts.Scale,
		Label: fmt.Sprintf("Frame %d", index),
	})
}
