package astro

import "math"

// Sign is one of the twelve 30° zodiac segments, in ecliptic order.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer",
	"Leo", "Virgo", "Libra", "Scorpio",
	"Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	if s < 0 || s > 11 {
		return "Unknown"
	}
	return signNames[s]
}

// Normalize maps any longitude onto [0, 360). Idempotent.
func Normalize(longitude float64) float64 {
	l := math.Mod(longitude, 360.0)
	if l < 0 {
		l += 360.0
	}
	return l
}

// SignAt returns the sign containing the given ecliptic longitude.
func SignAt(longitude float64) Sign {
	return Sign(int(Normalize(longitude)/30.0) % 12)
}

// SignIndex returns the 0-based sign slot for a longitude. Used by the
// scanner's ingress detection, which compares slots across days.
func SignIndex(longitude float64) int {
	return int(Normalize(longitude) / 30.0)
}
