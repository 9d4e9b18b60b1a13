package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformGrid(t *testing.T, width, height int, r, g, b uint8) *PixelGrid {
	t.Helper()
	grid, err := NewEmptyPixelGrid(width, height)
	require.NoError(t, err)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			grid.SetRGB(x, y, r, g, b)
		}
	}
	return grid
}

func TestConvertToHSVKnownColors(t *testing.T) {
	cases := []struct {
		name    string
		r, g, b uint8
		h, s, v uint8
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 255, 255, 255, 0, 0, 255},
		{"red", 255, 0, 0, 0, 255, 255},
		{"green", 0, 255, 0, 60, 255, 255},
		{"blue", 0, 0, 255, 120, 255, 255},
		{"leaf tone", 43, 200, 43, 60, 200, 200},
		{"lesion tone", 100, 100, 22, 30, 199, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hsv := ConvertToHSV(uniformGrid(t, 2, 2, tc.r, tc.g, tc.b))
			h, s, v := hsv.HSV(1, 1)
			assert.Equal(t, tc.h, h, "hue")
			assert.Equal(t, tc.s, s, "saturation")
			assert.Equal(t, tc.v, v, "value")
		})
	}
}

func TestConvertToHSVDimensions(t *testing.T) {
	grid := uniformGrid(t, 7, 3, 12, 34, 56)
	hsv := ConvertToHSV(grid)
	assert.Equal(t, grid.Width, hsv.Width)
	assert.Equal(t, grid.Height, hsv.Height)
	assert.Len(t, hsv.Pix, len(grid.Pix))
}

func TestConvertToHSVEmptyGrid(t *testing.T) {
	grid, err := NewPixelGrid([]uint8{}, 0, 0)
	require.NoError(t, err)
	hsv := ConvertToHSV(grid)
	assert.Equal(t, 0, hsv.Width)
	assert.Equal(t, 0, hsv.Height)
	assert.Empty(t, hsv.Pix)
}

func TestConvertToHSVDeterministic(t *testing.T) {
	grid, err := NewEmptyPixelGrid(31, 17)
	require.NoError(t, err)
	for i := range grid.Pix {
		grid.Pix[i] = uint8(i * 7)
	}
	first := ConvertToHSV(grid)
	second := ConvertToHSV(grid)
	assert.Equal(t, first.Pix, second.Pix)
}
