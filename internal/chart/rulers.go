package chart

import "github.com/sofiastro/astroscan/internal/astro"

// signRulers maps each sign to its governing body. Modern rulers are used
// for Scorpio (Pluto, traditional Mars), Aquarius (Uranus, traditional
// Saturn) and Pisces (Neptune, traditional Jupiter).
var signRulers = map[astro.Sign]astro.Body{
	astro.Aries:       astro.Mars,
	astro.Taurus:      astro.Venus,
	astro.Gemini:      astro.Mercury,
	astro.Cancer:      astro.Moon,
	astro.Leo:         astro.Sun,
	astro.Virgo:       astro.Mercury,
	astro.Libra:       astro.Venus,
	astro.Scorpio:     astro.Pluto,
	astro.Sagittarius: astro.Jupiter,
	astro.Capricorn:   astro.Saturn,
	astro.Aquarius:    astro.Uranus,
	astro.Pisces:      astro.Neptune,
}

// Ruler pairs the sign on a cusp with that sign's governing body.
type Ruler struct {
	Sign astro.Sign
	Body astro.Body
}

// RulerOfSign returns the governing body for a sign.
func RulerOfSign(sign astro.Sign) astro.Body {
	return signRulers[sign]
}

// RulerOfCusp classifies a cusp longitude through the canonical formatter
// and returns the resulting sign and its ruler. Total over valid longitudes.
func RulerOfCusp(cuspLongitude float64) Ruler {
	sign := astro.PositionAt(cuspLongitude).Sign
	return Ruler{Sign: sign, Body: signRulers[sign]}
}

// HouseRulers resolves all 12 house rulers of a chart, keyed by house number.
func HouseRulers(c *Chart) map[int]Ruler {
	out := make(map[int]Ruler, 12)
	for house := 1; house <= 12; house++ {
		out[house] = RulerOfCusp(c.Cusp(house))
	}
	return out
}

// DomainRulers names the four house rulers the interpretation layer keys on.
type DomainRulers struct {
	Money  Ruler // 2nd house
	Health Ruler // 6th house
	Love   Ruler // 7th house
	Career Ruler // 10th house
}

// Domains resolves the money/health/love/career rulers for a chart.
func Domains(c *Chart) DomainRulers {
	return DomainRulers{
		Money:  RulerOfCusp(c.Cusp(2)),
		Health: RulerOfCusp(c.Cusp(6)),
		Love:   RulerOfCusp(c.Cusp(7)),
		Career: RulerOfCusp(c.Cusp(10)),
	}
}
