package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const labelBand = 20

// FrameOptions controls how a lattice is rasterised.
type FrameOptions struct {
	// Scale is the pixel size of one cell.
	Scale int
	// Label is drawn in a band above the grid; empty omits the band.
	Label string
}

// FrameImage rasterises an n×n grid of palette indices, each cell drawn as a
// Scale×Scale block, optionally topped with a text label.
func FrameImage(cells []uint8, n int, palette []color.RGBA, opts FrameOptions) *image.RGBA {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	top := 0
	if opts.Label != "" {
		top = labelBand
	}
	img := image.NewRGBA(image.Rect(0, 0, n*scale, n*scale+top))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	if n > 0 && len(cells) == n*n {
		cellPix := make([]byte, 4*len(cells))
		FillPaletteRGBA(cellPix, cells, palette)
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				base := (y*n + x) * 4
				c := color.RGBA{R: cellPix[base], G: cellPix[base+1], B: cellPix[base+2], A: cellPix[base+3]}
				rect := image.Rect(x*scale, top+y*scale, (x+1)*scale, top+(y+1)*scale)
				draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
			}
		}
	}

	if opts.Label != "" {
		drawLabel(img, 4, labelBand-5, opts.Label, color.Black)
	}
	return img
}

func drawLabel(img *image.RGBA, x, y int, label string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(label)
}
