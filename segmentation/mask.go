// Package segmentation implements calibrated HSV thresholding and
// morphological cleanup that turn a leaf photograph into boolean region
// masks for healthy tissue and suspected lesions.
package segmentation

// Mask is a 2D boolean grid aligned with a source pixel grid. A set bit
// means the pixel belongs to the segmented region.
type Mask struct {
	// Bits holds the grid row-major, length Width*Height.
	Bits []bool
	// Width of the mask in pixels.
	Width int
	// Height of the mask in pixels.
	Height int
}

// NewMask allocates an all-false mask of the given dimensions.
func NewMask(width, height int) *Mask {
	return &Mask{
		Bits:   make([]bool, width*height),
		Width:  width,
		Height: height,
	}
}

// At reports the bit at (x, y). Coordinates must be in bounds.
func (m *Mask) At(x, y int) bool {
	return m.Bits[y*m.Width+x]
}

// Set writes the bit at (x, y). Coordinates must be in bounds.
func (m *Mask) Set(x, y int, v bool) {
	m.Bits[y*m.Width+x] = v
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	bits := make([]bool, len(m.Bits))
	copy(bits, m.Bits)
	return &Mask{Bits: bits, Width: m.Width, Height: m.Height}
}

// And returns the pixel-wise intersection of two masks with identical
// dimensions.
func (m *Mask) And(other *Mask) *Mask {
	out := NewMask(m.Width, m.Height)
	for i := range m.Bits {
		out.Bits[i] = m.Bits[i] && other.Bits[i]
	}
	return out
}
