// Package images - pixel grid definitions and color-space conversion for the
// blight detection pipeline.
package images

import (
	"image"

	"github.com/pkg/errors"
)

// Channels is the number of color channels in a PixelGrid.
const Channels = 3

// PixelGrid represents an RGB image as a flat, row-major buffer of
// interleaved 8-bit R, G, B values. The pipeline treats it as immutable
// input; operations that need to paint return a fresh grid.
type PixelGrid struct {
	// Pix holds the interleaved channel bytes, length Width*Height*Channels.
	Pix []uint8
	// Width of the grid in pixels.
	Width int
	// Height of the grid in pixels.
	Height int
}

// NewPixelGrid wraps a raw RGB buffer after validating its shape.
//
// Arguments:
//   - pix: Interleaved RGB bytes, row-major.
//   - width: Grid width in pixels.
//   - height: Grid height in pixels.
//
// Returns:
//   - *PixelGrid: The validated grid.
//   - error: Non-nil if the buffer does not describe a rectangular RGB grid.
func NewPixelGrid(pix []uint8, width, height int) (*PixelGrid, error) {
	if width < 0 || height < 0 {
		return nil, errors.Errorf("images: negative dimensions %dx%d", width, height)
	}
	if len(pix) != width*height*Channels {
		return nil, errors.Errorf(
			"images: buffer holds %d bytes, a %dx%d RGB grid needs %d",
			len(pix), width, height, width*height*Channels)
	}
	return &PixelGrid{Pix: pix, Width: width, Height: height}, nil
}

// NewEmptyPixelGrid allocates a zeroed grid of the given dimensions.
func NewEmptyPixelGrid(width, height int) (*PixelGrid, error) {
	if width < 0 || height < 0 {
		return nil, errors.Errorf("images: negative dimensions %dx%d", width, height)
	}
	return &PixelGrid{
		Pix:    make([]uint8, width*height*Channels),
		Width:  width,
		Height: height,
	}, nil
}

// Empty reports whether the grid holds zero pixels.
func (p *PixelGrid) Empty() bool {
	return p.Width == 0 || p.Height == 0
}

// RGB returns the channel values at (x, y). Coordinates must be in bounds.
func (p *PixelGrid) RGB(x, y int) (r, g, b uint8) {
	i := (y*p.Width + x) * Channels
	return p.Pix[i], p.Pix[i+1], p.Pix[i+2]
}

// SetRGB writes the channel values at (x, y). Coordinates must be in bounds.
func (p *PixelGrid) SetRGB(x, y int, r, g, b uint8) {
	i := (y*p.Width + x) * Channels
	p.Pix[i] = r
	p.Pix[i+1] = g
	p.Pix[i+2] = b
}

// Clone returns a deep copy of the grid.
func (p *PixelGrid) Clone() *PixelGrid {
	pix := make([]uint8, len(p.Pix))
	copy(pix, p.Pix)
	return &PixelGrid{Pix: pix, Width: p.Width, Height: p.Height}
}

// FromImage converts a decoded image.Image into a PixelGrid, dropping alpha.
// This is the boundary with collaborators that own decoding.
func FromImage(img image.Image) *PixelGrid {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	grid := &PixelGrid{
		Pix:    make([]uint8, width*height*Channels),
		Width:  width,
		Height: height,
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			grid.SetRGB(x, y, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	return grid
}

// ToImage converts the grid into an opaque *image.RGBA for collaborators
// that encode or resize through the standard image interfaces.
func (p *PixelGrid) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			r, g, b := p.RGB(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 0xff
		}
	}
	return img
}
