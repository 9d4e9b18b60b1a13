package blight

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/agrovis-ai/go-blight/images"
	"github.com/agrovis-ai/go-blight/segmentation"
)

// Scorer supplies the learned infection probability for a pixel grid. The
// detector treats it as an opaque collaborator: any resizing or
// normalization the model needs happens behind this interface, and tests
// can inject a stub.
type Scorer interface {
	// Score returns the model's infection probability, nominally in [0, 1].
	Score(ctx context.Context, grid *images.PixelGrid) (float64, error)
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(ctx context.Context, grid *images.PixelGrid) (float64, error)

// Score implements Scorer.
func (f ScorerFunc) Score(ctx context.Context, grid *images.PixelGrid) (float64, error) {
	return f(ctx, grid)
}

// Detector runs the full assessment pipeline for single leaf photographs.
// It is stateless across invocations; concurrent Detect calls are
// independent as long as the Scorer tolerates concurrency.
type Detector struct {
	leaf      *segmentation.RegionSegmenter
	infection *segmentation.RegionSegmenter
	scorer    Scorer
	fusion    FusionConfig
}

// NewDetector wires the calibrated segmenters to the given scorer and
// fusion constants.
func NewDetector(scorer Scorer, fusion FusionConfig) *Detector {
	return &Detector{
		leaf:      segmentation.NewLeafSegmenter(),
		infection: segmentation.NewInfectionSegmenter(),
		scorer:    scorer,
		fusion:    fusion,
	}
}

// Detect converts the grid to HSV, segments leaf and lesion regions,
// measures the infected-area ratio and fuses it with the model score.
//
// Arguments:
//   - ctx: Passed through to the scorer.
//   - grid: The RGB pixel grid to assess. Not mutated.
//
// Returns:
//   - *DetectionResult: The full assessment, or nil on error.
//   - error: Scorer failure or nil input; segmentation itself is total.
func (d *Detector) Detect(ctx context.Context, grid *images.PixelGrid) (*DetectionResult, error) {
	if grid == nil {
		return nil, errors.New("blight: nil pixel grid")
	}

	score, err := d.scorer.Score(ctx, grid)
	if err != nil {
		return nil, errors.Wrap(err, "blight: scoring model failed")
	}

	hsv := images.ConvertToHSV(grid)

	// The two segmenters share no state; run them side by side and join
	// before combining the masks.
	var leafMask, infectionMask *segmentation.Mask
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		leafMask = d.leaf.Segment(hsv)
	}()
	go func() {
		defer wg.Done()
		infectionMask = d.infection.Segment(hsv)
	}()
	wg.Wait()

	combined, err := segmentation.Combine(infectionMask, leafMask)
	if err != nil {
		return nil, err
	}

	ratio := InfectedRatio(combined, leafMask)
	severity := ClassifySeverity(ratio)
	fused := d.fusion.Fuse(score, ratio)

	return &DetectionResult{
		Ratio:            ratio,
		Severity:         severity,
		ModelScore:       score,
		FusedProbability: fused,
		Label:            d.fusion.DecideLabel(severity, fused),
		LeafPixels:       leafMask.Count(),
		Overlay:          RenderOverlay(grid, leafMask, combined),
	}, nil
}
