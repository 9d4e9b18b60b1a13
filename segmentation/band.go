package segmentation

// HSV is a hue/saturation/value triplet on the converter's byte scale
// (hue 0-179, saturation and value 0-255).
type HSV struct {
	H uint8
	S uint8
	V uint8
}

// ThresholdBand is an inclusive per-channel HSV range. A pixel is inside
// the band iff every channel falls between Lower and Upper.
type ThresholdBand struct {
	Lower HSV
	Upper HSV
}

// Contains reports whether the pixel falls inside the band on all channels.
func (b ThresholdBand) Contains(h, s, v uint8) bool {
	return h >= b.Lower.H && h <= b.Upper.H &&
		s >= b.Lower.S && s <= b.Upper.S &&
		v >= b.Lower.V && v <= b.Upper.V
}

// Calibrated bands. LeafBand selects green leaf tissue against soil and sky
// backgrounds. InfectionBand selects the saturated yellow-to-brown tones of
// bacterial lesions; the raised saturation and value floors reject dim soil
// and shadow that a naive yellow range would pick up.
var (
	LeafBand = ThresholdBand{
		Lower: HSV{H: 20, S: 40, V: 40},
		Upper: HSV{H: 100, S: 255, V: 255},
	}
	InfectionBand = ThresholdBand{
		Lower: HSV{H: 10, S: 120, V: 50},
		Upper: HSV{H: 50, S: 255, V: 255},
	}
)
