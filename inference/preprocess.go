// Package inference loads the exported blight classification model and
// turns pixel grids into scalar infection probabilities.
package inference

import (
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/agrovis-ai/go-blight/images"
)

// Model input geometry. The exported EfficientNet classifier expects a
// single 224x224 RGB image with channel values scaled to [0, 1].
const (
	InputSize     = 224
	inputChannels = 3
)

// PrepareInput scales a pixel grid to the model input geometry and stages
// it as a 1x224x224x3 float32 tensor, NHWC, normalized to [0, 1].
//
// Arguments:
//   - grid: The RGB grid to prepare.
//
// Returns:
//   - *tensor.Dense: The staged input tensor.
//   - error: Non-nil for a nil or zero-dimension grid.
func PrepareInput(grid *images.PixelGrid) (*tensor.Dense, error) {
	if grid == nil || grid.Empty() {
		return nil, errors.New("inference: empty pixel grid")
	}

	// Resize to the model geometry using Lanczos3.
	img := resize.Resize(InputSize, InputSize, grid.ToImage(), resize.Lanczos3)

	data := make([]float32, InputSize*InputSize*inputChannels)
	i := 0
	for y := 0; y < InputSize; y++ {
		for x := 0; x < InputSize; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			data[i] = float32(r>>8) / 255.0
			data[i+1] = float32(g>>8) / 255.0
			data[i+2] = float32(b>>8) / 255.0
			i += inputChannels
		}
	}

	return tensor.New(
		tensor.WithShape(1, InputSize, InputSize, inputChannels),
		tensor.WithBacking(data),
	), nil
}
