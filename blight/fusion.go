package blight

// Label is the binary classification outcome.
type Label int

const (
	// LabelHealthy means no infection was concluded.
	LabelHealthy Label = iota
	// LabelInfected means the leaf is considered infected.
	LabelInfected
)

// String returns the label name.
func (l Label) String() string {
	if l == LabelInfected {
		return "Infected"
	}
	return "Healthy"
}

// FusionConfig holds the tunable constants of the probability fuser. Both
// values are empirical calibrations, kept as configuration so they can be
// adjusted without touching pipeline logic.
type FusionConfig struct {
	// ModelWeight scales the model score; the measured ratio receives the
	// complementary 1 - ModelWeight.
	ModelWeight float64
	// InfectedThreshold is the fused probability at or above which a leaf
	// is labeled infected. It sits below 0.5 to favor early detection over
	// model conservatism.
	InfectedThreshold float64
}

// DefaultFusionConfig returns the calibrated fusion constants.
func DefaultFusionConfig() FusionConfig {
	return FusionConfig{
		ModelWeight:       0.5,
		InfectedThreshold: 0.30,
	}
}

// Fuse blends the model score with the measured infected-area ratio using
// the configured weight.
func (c FusionConfig) Fuse(modelScore, ratio float64) float64 {
	return c.ModelWeight*modelScore + (1-c.ModelWeight)*ratio
}

// DecideLabel derives the final label. Moderate or severe segmentation
// evidence forces an infected label even when the fused probability stays
// below the threshold, so a strong geometric signal overrides a
// conservative model.
func (c FusionConfig) DecideLabel(severity Severity, fused float64) Label {
	if severity == SeverityModerate || severity == SeveritySevere {
		return LabelInfected
	}
	if fused >= c.InfectedThreshold {
		return LabelInfected
	}
	return LabelHealthy
}
