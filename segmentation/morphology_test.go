package segmentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullMask(width, height int) *Mask {
	m := NewMask(width, height)
	for i := range m.Bits {
		m.Bits[i] = true
	}
	return m
}

func TestEllipseShapes(t *testing.T) {
	// 3x3 radius test yields the cross, 5x5 the 13-cell disc.
	assert.Len(t, Ellipse(3).offsets, 5)
	assert.Len(t, Ellipse(5).offsets, 13)
	assert.Equal(t, 5, Ellipse(5).Size())
}

func TestOpenRemovesIsolatedPixel(t *testing.T) {
	m := NewMask(9, 9)
	m.Set(4, 4, true)

	out := Open(m, Ellipse(3))
	assert.Equal(t, 0, out.Count())
}

func TestCloseFillsSmallHole(t *testing.T) {
	m := fullMask(9, 9)
	m.Set(4, 4, false)

	out := Close(m, Ellipse(3))
	assert.Equal(t, 9*9, out.Count())
}

func TestOpenThenCloseRestoresHoledMask(t *testing.T) {
	m := fullMask(11, 11)
	m.Set(5, 5, false)

	out := Close(Open(m, Ellipse(3)), Ellipse(3))
	assert.Equal(t, 11*11, out.Count())
}

func TestFullMaskIsFixedPointOfOpenAndClose(t *testing.T) {
	m := fullMask(10, 10)
	e := Ellipse(5)

	assert.Equal(t, 100, Open(m, e).Count())
	assert.Equal(t, 100, Close(m, e).Count())
}

func TestDilateDoesNotGrowPastBounds(t *testing.T) {
	m := NewMask(5, 5)
	m.Set(0, 0, true)

	out := Dilate(m, Ellipse(3))
	assert.True(t, out.At(0, 0))
	assert.True(t, out.At(1, 0))
	assert.True(t, out.At(0, 1))
	assert.False(t, out.At(2, 2))
}
