package astro

import "fmt"

// Position is the canonical sign/degree/minute decomposition of an ecliptic
// longitude. Every formatted longitude in the engine goes through
// PositionAt so rounding stays consistent across packages.
type Position struct {
	Longitude float64 // normalized, [0,360)
	Sign      Sign
	Degree    int // within sign, 0-29
	Minute    int // 0-59
}

// PositionAt converts a decimal longitude into its Position. Minute rounding
// that reaches 60 rolls into the next degree, which rolls into the next sign
// when it reaches 30.
func PositionAt(longitude float64) Position {
	l := Normalize(longitude)

	signIdx := int(l / 30.0)
	inSign := l - float64(signIdx)*30.0

	deg := int(inSign)
	min := int((inSign-float64(deg))*60.0 + 0.5)

	if min >= 60 {
		min = 0
		deg++
		if deg >= 30 {
			deg = 0
			signIdx = (signIdx + 1) % 12
		}
	}

	return Position{
		Longitude: l,
		Sign:      Sign(signIdx),
		Degree:    deg,
		Minute:    min,
	}
}

// String renders the position as e.g. `Aries 15°04'`.
func (p Position) String() string {
	return fmt.Sprintf("%s %d°%02d'", p.Sign, p.Degree, p.Minute)
}
