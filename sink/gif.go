package sink

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"

	"gonum.org/v1/gonum/floats"
)

// GIF accumulates frames in memory and encodes them as an animated GIF on
// Finalize: frames stacked along the animation axis with a 256-level
// grayscale palette, cell values normalized over the global min/max of the
// whole run.
type GIF struct {
	State
	w io.Writer
}

// NewGIF returns a GIF sink that encodes into w when the run finalizes.
// Panics on a nil writer.
func NewGIF(w io.Writer) *GIF {
	if w == nil {
		panic("sink: NewGIF(nil)")
	}

	return &GIF{w: w}
}

// grayPalette is the default 256-level grayscale palette.
func grayPalette() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}

	return p
}

// Finalize encodes the stored frames.
// Returns ErrNoFrames when nothing was pushed, otherwise any encoder error.
// Complexity: O(frames × W×H).
func (s *GIF) Finalize() error {
	n := s.Len()
	if n == 0 {
		return ErrNoFrames
	}

	// 1) Global value range across the run, so brightness is comparable
	//    between frames.
	first, _ := s.At(0)
	lo, hi := floats.Min(first.Data()), floats.Max(first.Data())
	var i int
	for i = 1; i < n; i++ {
		f, _ := s.At(i)
		if m := floats.Min(f.Data()); m < lo {
			lo = m
		}
		if m := floats.Max(f.Data()); m > hi {
			hi = m
		}
	}
	scale := 0.0
	if hi > lo {
		scale = 255 / (hi - lo)
	}

	// 2) Frame delay in GIF centiseconds from the recorded FPS target.
	delay := 4 // 25 fps fallback
	if fps := s.FPS(); fps > 0 {
		delay = int(100 / fps)
		if delay < 1 {
			delay = 1
		}
	}

	// 3) Quantize every frame onto the grayscale palette.
	pal := grayPalette()
	anim := &gif.GIF{}
	w, h := first.Width(), first.Height()
	var x, y int
	for i = 0; i < n; i++ {
		f, _ := s.At(i)
		img := image.NewPaletted(image.Rect(0, 0, w, h), pal)
		for y = 0; y < h; y++ {
			row := f.Row(y)
			for x = 0; x < w; x++ {
				img.SetColorIndex(x, y, uint8((row[x]-lo)*scale))
			}
		}
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, delay)
	}

	// 4) Encode the stacked frames.
	if err := gif.EncodeAll(s.w, anim); err != nil {
		return fmt.Errorf("sink: GIF encode: %w", err)
	}

	return nil
}

// Compile-time assertion: *GIF satisfies the Sink contract.
var _ Sink = (*GIF)(nil)
