package segmentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrovis-ai/go-blight/images"
)

func uniformHSVGrid(width, height int, h, s, v uint8) *images.HSVGrid {
	grid := &images.HSVGrid{
		Pix:    make([]uint8, width*height*images.Channels),
		Width:  width,
		Height: height,
	}
	for i := 0; i < width*height; i++ {
		grid.Pix[i*images.Channels] = h
		grid.Pix[i*images.Channels+1] = s
		grid.Pix[i*images.Channels+2] = v
	}
	return grid
}

func TestSegmentMaskMatchesGridDimensions(t *testing.T) {
	hsv := uniformHSVGrid(7, 5, 60, 200, 200)
	mask := NewLeafSegmenter().Segment(hsv)
	assert.Equal(t, 7, mask.Width)
	assert.Equal(t, 5, mask.Height)
}

func TestSegmentEmptyGrid(t *testing.T) {
	mask := NewLeafSegmenter().Segment(uniformHSVGrid(0, 0, 0, 0, 0))
	assert.Equal(t, 0, mask.Width)
	assert.Equal(t, 0, mask.Height)
	assert.Empty(t, mask.Bits)
}

func TestLeafSegmenterSelectsLeafTones(t *testing.T) {
	inBand := NewLeafSegmenter().Segment(uniformHSVGrid(12, 12, 60, 200, 200))
	assert.Equal(t, 12*12, inBand.Count())

	outOfBand := NewLeafSegmenter().Segment(uniformHSVGrid(12, 12, 140, 200, 200))
	assert.Equal(t, 0, outOfBand.Count())
}

func TestInfectionSegmenterDropsIsolatedNoise(t *testing.T) {
	hsv := uniformHSVGrid(15, 15, 0, 0, 0)
	// Single lesion-toned pixel surrounded by background.
	i := (7*15 + 7) * images.Channels
	hsv.Pix[i] = 30
	hsv.Pix[i+1] = 200
	hsv.Pix[i+2] = 100

	mask := NewInfectionSegmenter().Segment(hsv)
	assert.Equal(t, 0, mask.Count())
}

func TestCombineIsSubsetOfLeaf(t *testing.T) {
	infection := NewMask(8, 8)
	leaf := NewMask(8, 8)
	for i := range infection.Bits {
		infection.Bits[i] = i%2 == 0
		leaf.Bits[i] = i%3 == 0
	}

	combined, err := Combine(infection, leaf)
	require.NoError(t, err)
	for i := range combined.Bits {
		if combined.Bits[i] && !leaf.Bits[i] {
			t.Fatalf("combined bit %d set outside leaf", i)
		}
	}
}

func TestCombineDimensionMismatch(t *testing.T) {
	_, err := Combine(NewMask(4, 4), NewMask(5, 4))
	require.Error(t, err)
}
