package blight

import (
	"github.com/agrovis-ai/go-blight/images"
	"github.com/agrovis-ai/go-blight/segmentation"
)

// Overlay paint colors, RGB order.
var (
	leafColor      = [3]uint8{0, 255, 0}
	infectionColor = [3]uint8{255, 0, 0}
)

// RenderOverlay paints leaf tissue green and combined-infection pixels red
// on a copy of the original grid. Infection paint is applied strictly after
// leaf paint so lesions inside the leaf end up red. Pixels outside both
// masks keep their original color; src is never mutated.
func RenderOverlay(src *images.PixelGrid, leaf, infection *segmentation.Mask) *images.PixelGrid {
	out := src.Clone()
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			if leaf.At(x, y) {
				out.SetRGB(x, y, leafColor[0], leafColor[1], leafColor[2])
			}
		}
	}
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			if infection.At(x, y) {
				out.SetRGB(x, y, infectionColor[0], infectionColor[1], infectionColor[2])
			}
		}
	}
	return out
}
