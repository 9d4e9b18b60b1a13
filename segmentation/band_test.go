package segmentation

import "testing"

func TestLeafBandInclusiveEdges(t *testing.T) {
	cases := []struct {
		h, s, v uint8
		want    bool
	}{
		{20, 40, 40, true},
		{100, 255, 255, true},
		{60, 200, 200, true},
		{19, 200, 200, false},
		{101, 200, 200, false},
		{60, 39, 200, false},
		{60, 200, 39, false},
	}
	for _, tc := range cases {
		if got := LeafBand.Contains(tc.h, tc.s, tc.v); got != tc.want {
			t.Errorf("LeafBand.Contains(%d,%d,%d) = %v, want %v", tc.h, tc.s, tc.v, got, tc.want)
		}
	}
}

func TestInfectionBandRejectsDimAndPaleTones(t *testing.T) {
	cases := []struct {
		h, s, v uint8
		want    bool
	}{
		{10, 120, 50, true},
		{50, 255, 255, true},
		{30, 199, 100, true},
		{9, 200, 100, false},
		{51, 200, 100, false},
		{30, 119, 100, false}, // too pale for a lesion
		{30, 200, 49, false},  // too dim, likely shadow or soil
	}
	for _, tc := range cases {
		if got := InfectionBand.Contains(tc.h, tc.s, tc.v); got != tc.want {
			t.Errorf("InfectionBand.Contains(%d,%d,%d) = %v, want %v", tc.h, tc.s, tc.v, got, tc.want)
		}
	}
}
