package aspect

import "github.com/sofiastro/astroscan/internal/astro"

// outerPoints get tighter orbs: their slow relative motion would otherwise
// produce spuriously long-lived aspects.
var outerPoints = map[string]bool{
	string(astro.Uranus):  true,
	string(astro.Neptune): true,
	string(astro.Pluto):   true,
}

// Bands holds the four orb limits for one tolerance mode.
type Bands struct {
	Major      float64 `yaml:"major"`       // conjunction/square/opposition
	Minor      float64 `yaml:"minor"`       // sextile/trine
	OuterMajor float64 `yaml:"outer_major"` // pair involves Uranus/Neptune/Pluto
	OuterMinor float64 `yaml:"outer_minor"`
}

// Policy selects orb limits per (pair, kind). Exact is the tight mode used
// by the day-stepped scanner; Wide loosens every band for coarse synastry.
type Policy struct {
	Exact Bands `yaml:"exact"`
	Wide  Bands `yaml:"wide"`
}

// DefaultPolicy returns the built-in orb table.
func DefaultPolicy() Policy {
	return Policy{
		Exact: Bands{Major: 8, Minor: 5, OuterMajor: 5, OuterMinor: 4},
		Wide:  Bands{Major: 10, Minor: 6, OuterMajor: 6, OuterMinor: 5},
	}
}

// MaxOrb returns the widest admissible orb for a point pair and kind.
func (p Policy) MaxOrb(point1, point2 string, kind Kind, wide bool) float64 {
	bands := p.Exact
	if wide {
		bands = p.Wide
	}

	outer := outerPoints[point1] || outerPoints[point2]
	if kind.IsMajor() {
		if outer {
			return bands.OuterMajor
		}
		return bands.Major
	}
	if outer {
		return bands.OuterMinor
	}
	return bands.Minor
}

// Match classifies the relationship between two longitudes under the policy.
// When several kinds fall inside tolerance near a band boundary, the
// smallest orb wins; equal orbs resolve by declared kind order.
func (p Policy) Match(point1 string, lon1 float64, point2 string, lon2 float64, wide bool) (Aspect, bool) {
	sep := Separation(lon1, lon2)

	var best Aspect
	found := false
	for _, kind := range kindsInOrder {
		orb := absf(sep - kind.Angle())
		if orb > p.MaxOrb(point1, point2, kind, wide) {
			continue
		}
		if !found || orb < best.Orb {
			best = Aspect{
				Point1: point1,
				Point2: point2,
				Kind:   kind,
				Angle:  sep,
				Orb:    orb,
			}
			found = true
		}
	}
	return best, found
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
