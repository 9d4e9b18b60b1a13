package segmentation

// StructuringElement is the symmetric neighborhood shape the morphological
// operators sample. Offsets are relative (dx, dy) pairs including the
// center.
type StructuringElement struct {
	offsets [][2]int
	size    int
}

// Ellipse builds an elliptical element of the given odd size (3 means 3x3).
// Cells are included by a radius test, which reproduces the qualitative
// shape of OpenCV's MORPH_ELLIPSE kernels.
func Ellipse(size int) StructuringElement {
	if size < 1 {
		size = 1
	}
	r := size / 2
	var offsets [][2]int
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				offsets = append(offsets, [2]int{dx, dy})
			}
		}
	}
	return StructuringElement{offsets: offsets, size: size}
}

// Size returns the element's nominal side length.
func (e StructuringElement) Size() int {
	return e.size
}
