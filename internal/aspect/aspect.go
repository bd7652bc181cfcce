// Package aspect classifies angular relationships between chart points under
// context-dependent orb tolerances. Three call patterns share the same core:
// natal (within one chart), synastry (across two charts) and transit (moving
// point against a fixed natal point).
package aspect

import "math"

// Kind is one of the five supported aspect types.
type Kind string

const (
	Conjunction Kind = "conjunction"
	Sextile     Kind = "sextile"
	Square      Kind = "square"
	Trine       Kind = "trine"
	Opposition  Kind = "opposition"
)

// kindsInOrder fixes tie-break precedence when two kinds land on the same
// orb at a tolerance boundary.
var kindsInOrder = []Kind{Conjunction, Sextile, Square, Trine, Opposition}

var idealAngles = map[Kind]float64{
	Conjunction: 0,
	Sextile:     60,
	Square:      90,
	Trine:       120,
	Opposition:  180,
}

// Angle returns the ideal separation for a kind.
func (k Kind) Angle() float64 { return idealAngles[k] }

// IsMajor reports whether the kind uses the major orb band. Conjunction,
// square and opposition are major; sextile and trine are minor.
func (k Kind) IsMajor() bool {
	return k == Conjunction || k == Square || k == Opposition
}

// Separation returns the minor arc between two longitudes, always <= 180°.
func Separation(lon1, lon2 float64) float64 {
	diff := math.Mod(math.Abs(lon1-lon2), 360.0)
	return math.Min(diff, 360.0-diff)
}

// Aspect is a classified relationship between two named points. Orb is the
// unsigned deviation from the kind's ideal angle and is always within the
// tolerance that admitted the aspect.
type Aspect struct {
	Point1 string
	Point2 string
	Kind   Kind
	Angle  float64 // actual separation, minor arc
	Orb    float64
}
