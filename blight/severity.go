// Package blight assembles the cassava leaf blight assessment pipeline:
// color-space segmentation, infected-area measurement, severity tiers and
// the fusion of a learned model score with the geometric measurement.
package blight

// Severity is the ordinal infection tier derived from the infected-area
// ratio.
type Severity int

const (
	// SeverityMild covers ratios below ModerateRatio.
	SeverityMild Severity = iota
	// SeverityModerate covers ratios in [ModerateRatio, SevereRatio).
	SeverityModerate
	// SeveritySevere covers ratios at or above SevereRatio.
	SeveritySevere
)

// Ratio thresholds separating the severity tiers.
const (
	ModerateRatio = 0.10
	SevereRatio   = 0.25
)

// String returns the tier name.
func (s Severity) String() string {
	switch s {
	case SeverityModerate:
		return "Moderate"
	case SeveritySevere:
		return "Severe"
	default:
		return "Mild"
	}
}

// ClassifySeverity maps an infected-area ratio to a severity tier. The
// mapping is total over [0, 1] and monotonic in the ratio.
func ClassifySeverity(ratio float64) Severity {
	switch {
	case ratio < ModerateRatio:
		return SeverityMild
	case ratio < SevereRatio:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}
