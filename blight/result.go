package blight

import "github.com/agrovis-ai/go-blight/images"

// DetectionResult aggregates the pipeline output for one leaf photograph.
type DetectionResult struct {
	// Ratio is the infected share of the detected leaf area, in [0, 1].
	Ratio float64
	// Severity is the ordinal tier derived from Ratio.
	Severity Severity
	// ModelScore is the raw probability supplied by the scoring model.
	ModelScore float64
	// FusedProbability blends ModelScore with Ratio. Nominal inputs keep it
	// in [0, 1]; it is not clamped.
	FusedProbability float64
	// Label is the binary classification outcome.
	Label Label
	// LeafPixels is the detected leaf area in pixels. Zero means no leaf
	// was found, in which case Ratio defaults toward zero.
	LeafPixels int
	// Overlay is the colorized visualization, same dimensions as the input.
	Overlay *images.PixelGrid
}
