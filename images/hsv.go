package images

import "math"

// HSVGrid is the hue/saturation/value counterpart of a PixelGrid. Hue uses
// the 0-179 scale and saturation/value the 0-255 scale, matching the domain
// the segmentation threshold bands were calibrated against.
type HSVGrid struct {
	// Pix holds interleaved H, S, V bytes, row-major.
	Pix []uint8
	// Width of the grid in pixels.
	Width int
	// Height of the grid in pixels.
	Height int
}

// HSV returns the channel values at (x, y). Coordinates must be in bounds.
func (g *HSVGrid) HSV(x, y int) (h, s, v uint8) {
	i := (y*g.Width + x) * Channels
	return g.Pix[i], g.Pix[i+1], g.Pix[i+2]
}

// ConvertToHSV maps an RGB grid to an HSV grid of identical dimensions.
// The transform is pure and per-pixel; an empty input yields an empty
// output of matching dimensions.
//
// Arguments:
//   - src: The RGB grid to convert.
//
// Returns:
//   - *HSVGrid: Hue 0-179, saturation and value 0-255.
func ConvertToHSV(src *PixelGrid) *HSVGrid {
	dst := &HSVGrid{
		Pix:    make([]uint8, len(src.Pix)),
		Width:  src.Width,
		Height: src.Height,
	}
	if src.Empty() {
		return dst
	}
	Parallel(src.Height, func(partStart, partEnd int) {
		for y := partStart; y < partEnd; y++ {
			for x := 0; x < src.Width; x++ {
				r, g, b := src.RGB(x, y)
				h, s, v := rgbToHSV(r, g, b)
				i := (y*src.Width + x) * Channels
				dst.Pix[i] = h
				dst.Pix[i+1] = s
				dst.Pix[i+2] = v
			}
		}
	})
	return dst
}

// rgbToHSV converts one pixel. Hue comes from the dominant channel and the
// max-min spread, saturation from spread over max, value from max.
func rgbToHSV(r, g, b uint8) (h, s, v uint8) {
	maxC := r
	if g > maxC {
		maxC = g
	}
	if b > maxC {
		maxC = b
	}
	minC := r
	if g < minC {
		minC = g
	}
	if b < minC {
		minC = b
	}

	v = maxC
	if maxC == 0 || maxC == minC {
		return 0, saturation(maxC, minC), v
	}

	spread := float64(maxC - minC)
	var deg float64
	switch maxC {
	case r:
		deg = 60 * float64(int(g)-int(b)) / spread
	case g:
		deg = 120 + 60*float64(int(b)-int(r))/spread
	default:
		deg = 240 + 60*float64(int(r)-int(g))/spread
	}
	if deg < 0 {
		deg += 360
	}
	// Halve into the 0-179 byte range.
	hh := int(math.Round(deg / 2))
	if hh >= 180 {
		hh -= 180
	}
	return uint8(hh), saturation(maxC, minC), v
}

func saturation(maxC, minC uint8) uint8 {
	if maxC == 0 {
		return 0
	}
	return uint8(math.Round(255 * float64(maxC-minC) / float64(maxC)))
}
