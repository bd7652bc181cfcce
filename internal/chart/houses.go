package chart

import (
	"math"

	"github.com/sofiastro/astroscan/internal/astro"
)

// HouseOf returns the house (1..12) containing the given longitude.
//
// Cusps are walked in house order, not longitude order: Placidus cusps are
// not monotonic once the wheel wraps past 0°. A point belongs to house i when
// cusp(i) <= point < cusp(i+1), where the 12->1 pair and any pair straddling
// 0°/360° are handled with wraparound.
func HouseOf(longitude float64, cusps [12]float64) int {
	point := astro.Normalize(longitude)

	for i := 0; i < 12; i++ {
		cur := astro.Normalize(cusps[i])
		next := astro.Normalize(cusps[(i+1)%12])

		if next < cur {
			// Pair straddles 0°: house spans cur..360 plus 0..next.
			if point >= cur || point < next {
				return i + 1
			}
		} else if point >= cur && point < next {
			return i + 1
		}
	}

	// Unreachable with valid cusp data; guarantee a definite house anyway
	// by picking the angularly closest cusp.
	return closestHouse(point, cusps)
}

func closestHouse(point float64, cusps [12]float64) int {
	best, bestDist := 1, math.MaxFloat64
	for i := 0; i < 12; i++ {
		d := wrapDistance(astro.Normalize(cusps[i]), point)
		if d < bestDist {
			best, bestDist = i+1, d
		}
	}
	return best
}

// wrapDistance is the angular distance between two normalized longitudes,
// never exceeding 180°.
func wrapDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 360.0-d)
}
