package blight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrovis-ai/go-blight/images"
	"github.com/agrovis-ai/go-blight/segmentation"
)

func TestRenderOverlayColorLaw(t *testing.T) {
	src, err := images.NewEmptyPixelGrid(6, 6)
	require.NoError(t, err)
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 13)
	}
	original := src.Clone()

	leaf := segmentation.NewMask(6, 6)
	infection := segmentation.NewMask(6, 6)
	for y := 1; y < 5; y++ {
		for x := 1; x < 5; x++ {
			leaf.Set(x, y, true)
		}
	}
	infection.Set(2, 2, true)
	infection.Set(3, 3, true)

	out := RenderOverlay(src, leaf, infection)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			r, g, b := out.RGB(x, y)
			switch {
			case infection.At(x, y):
				assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b}, "infected pixel (%d,%d)", x, y)
			case leaf.At(x, y):
				assert.Equal(t, [3]uint8{0, 255, 0}, [3]uint8{r, g, b}, "leaf pixel (%d,%d)", x, y)
			default:
				or, og, ob := original.RGB(x, y)
				assert.Equal(t, [3]uint8{or, og, ob}, [3]uint8{r, g, b}, "background pixel (%d,%d)", x, y)
			}
		}
	}

	// The input grid must be untouched.
	assert.Equal(t, original.Pix, src.Pix)
}
