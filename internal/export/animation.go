package export

import (
	"bytes"
	"errors"
	"fmt"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"forestfire/internal/sims/forestfire"
)

// ErrTooFewFrames reports a sequence too short for the requested output.
var ErrTooFewFrames = errors.New("export: too few frames")

// AnimationOptions configures WriteAnimation.
type AnimationOptions struct {
	// Scale is the pixel size of one cell. Defaults to 8.
	Scale int
	// FPS is the playback rate. Defaults to 1, one snapshot per second.
	FPS int
	// Quality is the JPEG quality, 1-100. Defaults to 90.
	Quality int
}

func (o AnimationOptions) withDefaults() AnimationOptions {
	if o.Scale <= 0 {
		o.Scale = 8
	}
	if o.FPS <= 0 {
		o.FPS = 1
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = 90
	}
	return o
}

// WriteAnimation encodes every snapshot as one labelled frame of an MJPEG AVI
// at path.
func WriteAnimation(path string, frames []*forestfire.Lattice, opts AnimationOptions) (err error) {
	if len(frames) == 0 {
		return fmt.Errorf("%w: animation needs at least one frame", ErrTooFewFrames)
	}
	opts = opts.withDefaults()
	palette := forestfire.Palette()

	first := renderFrame(frames[0], 0, palette, opts)
	bounds := first.Bounds()
	aw, err := mjpeg.New(path, int32(bounds.Dx()), int32(bounds.Dy()), int32(opts.FPS))
	if err != nil {
		return fmt.Errorf("create animation %s: %w", path, err)
	}
	defer func() {
		if cerr := aw.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close animation %s: %w", path, cerr)
		}
	}()

	var buf bytes.Buffer
	jpegOpts := &jpeg.Options{Quality: opts.Quality}
	for i, f := range frames {
		img := first
		if i > 0 {
			img = renderFrame(f, i, palette, opts)
		}
		buf.Reset()
		if err := jpeg.Encode(&buf, img, jpegOpts); err != nil {
			return fmt.Errorf("encode frame %d: %w", i, err)
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			return fmt.Errorf("add frame %d: %w", i, err)
		}
	}
	return nil
}
