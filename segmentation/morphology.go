package segmentation

// Binary morphology over Mask. Border semantics follow OpenCV's defaults:
// erosion ignores neighbors outside the image (treats them as foreground)
// and dilation treats them as background, so a full-frame mask is a fixed
// point of both Open and Close.

// Erode clears every pixel that has a cleared in-bounds neighbor within the
// element. Returns a new mask.
func Erode(m *Mask, e StructuringElement) *Mask {
	out := NewMask(m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.At(x, y) {
				continue
			}
			keep := true
			for _, off := range e.offsets {
				nx, ny := x+off[0], y+off[1]
				if nx < 0 || nx >= m.Width || ny < 0 || ny >= m.Height {
					continue
				}
				if !m.At(nx, ny) {
					keep = false
					break
				}
			}
			out.Set(x, y, keep)
		}
	}
	return out
}

// Dilate sets every pixel that has a set in-bounds neighbor within the
// element. Returns a new mask.
func Dilate(m *Mask, e StructuringElement) *Mask {
	out := NewMask(m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			hit := false
			for _, off := range e.offsets {
				nx, ny := x+off[0], y+off[1]
				if nx < 0 || nx >= m.Width || ny < 0 || ny >= m.Height {
					continue
				}
				if m.At(nx, ny) {
					hit = true
					break
				}
			}
			out.Set(x, y, hit)
		}
	}
	return out
}

// Open removes small isolated regions (erosion then dilation).
func Open(m *Mask, e StructuringElement) *Mask {
	return Dilate(Erode(m, e), e)
}

// Close fills small holes (dilation then erosion).
func Close(m *Mask, e StructuringElement) *Mask {
	return Erode(Dilate(m, e), e)
}
