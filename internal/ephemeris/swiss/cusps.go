package swiss

import "fmt"

// normalizeCusps flattens the two cusp array shapes swe_houses is known to
// return into a fixed [12]float64 indexed house-1:
//
//   - 12 elements: cusps are at indices 0..11
//   - 13+ elements: index 0 is an unused placeholder, cusps at 1..12
//
// Anything shorter than 12 is a provider bug and rejected.
func normalizeCusps(raw []float64) ([12]float64, error) {
	var out [12]float64

	switch {
	case len(raw) >= 13:
		copy(out[:], raw[1:13])
	case len(raw) == 12:
		copy(out[:], raw)
	default:
		return out, fmt.Errorf("cusp array has %d elements, want 12 or 13", len(raw))
	}

	return out, nil
}
