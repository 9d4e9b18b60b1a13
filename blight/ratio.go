package blight

import "github.com/agrovis-ai/go-blight/segmentation"

// InfectedRatio returns the infected pixel count over the leaf pixel count.
// A leaf count of zero is floored to one, so an image with no detectable
// leaf reports a near-zero ratio instead of dividing by zero; callers that
// need to tell "no leaf" from "no infection" should inspect the leaf count
// (DetectionResult.LeafPixels).
func InfectedRatio(infected, leaf *segmentation.Mask) float64 {
	denom := leaf.Count()
	if denom < 1 {
		denom = 1
	}
	return float64(infected.Count()) / float64(denom)
}
