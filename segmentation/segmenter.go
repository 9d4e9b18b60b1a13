package segmentation

import (
	"github.com/pkg/errors"

	"github.com/agrovis-ai/go-blight/images"
)

// RegionSegmenter applies a threshold band to an HSV grid and denoises the
// raw mask with morphological opening followed by closing.
type RegionSegmenter struct {
	// Band is the inclusive per-channel HSV range selecting the region.
	Band ThresholdBand
	// Element is the structuring element used for opening and closing.
	Element StructuringElement
}

// NewLeafSegmenter returns the segmenter calibrated for green leaf tissue.
// The 5x5 element denoises aggressively since leaves are large regions.
func NewLeafSegmenter() *RegionSegmenter {
	return &RegionSegmenter{Band: LeafBand, Element: Ellipse(5)}
}

// NewInfectionSegmenter returns the segmenter calibrated for lesion tones.
// The 3x3 element denoises gently so small lesions survive.
func NewInfectionSegmenter() *RegionSegmenter {
	return &RegionSegmenter{Band: InfectionBand, Element: Ellipse(3)}
}

// Segment produces the denoised region mask for hsv. The result always has
// the grid's dimensions.
//
// Arguments:
//   - hsv: The HSV grid to threshold.
//
// Returns:
//   - *Mask: The opened-then-closed region mask.
func (s *RegionSegmenter) Segment(hsv *images.HSVGrid) *Mask {
	mask := NewMask(hsv.Width, hsv.Height)
	if hsv.Width == 0 || hsv.Height == 0 {
		return mask
	}
	images.Parallel(hsv.Height, func(partStart, partEnd int) {
		for y := partStart; y < partEnd; y++ {
			for x := 0; x < hsv.Width; x++ {
				h, sat, v := hsv.HSV(x, y)
				if s.Band.Contains(h, sat, v) {
					mask.Set(x, y, true)
				}
			}
		}
	})
	return Close(Open(mask, s.Element), s.Element)
}

// Combine intersects the raw infection mask with the leaf mask so lesions
// are only counted inside leaf tissue. The result is always a pixel-wise
// subset of leaf.
func Combine(infection, leaf *Mask) (*Mask, error) {
	if infection.Width != leaf.Width || infection.Height != leaf.Height {
		return nil, errors.Errorf(
			"segmentation: mask dimensions differ, infection %dx%d vs leaf %dx%d",
			infection.Width, infection.Height, leaf.Width, leaf.Height)
	}
	return infection.And(leaf), nil
}
