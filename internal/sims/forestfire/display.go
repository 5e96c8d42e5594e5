package forestfire

import "image/color"

var firePalette = []color.RGBA{
	Empty:     {R: 255, G: 255, B: 255, A: 255},
	Unignited: {R: 0, G: 255, B: 0, A: 255},
	Burning:   {R: 255, G: 0, B: 0, A: 255},
	Burned:    {R: 0, G: 0, B: 0, A: 255},
}

// Palette maps cell states to colors: white ground, green trees, red fire,
// black ash. Callers must not modify the returned slice.
func Palette() []color.RGBA { return firePalette }

// Palette exposes the color palette used for rendering.
func (r *Replay) Palette() []color.RGBA { return firePalette }
