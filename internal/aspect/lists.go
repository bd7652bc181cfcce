package aspect

import (
	"sort"

	"github.com/sofiastro/astroscan/internal/astro"
	"github.com/sofiastro/astroscan/internal/chart"
)

// chartPoints flattens a chart into named longitudes: every valid planet
// plus the Ascendant and MC when withAngles is set.
func chartPoints(c *chart.Chart, withAngles bool) (names []string, lons map[string]float64) {
	lons = make(map[string]float64, len(c.Planets)+2)
	for _, body := range astro.ChartBodies {
		p, ok := c.Planets[body]
		if !ok || !p.Valid() {
			continue
		}
		names = append(names, string(body))
		lons[string(body)] = p.Longitude
	}
	if withAngles {
		names = append(names, astro.PointASC, astro.PointMC)
		lons[astro.PointASC] = c.Angles.Ascendant.Longitude
		lons[astro.PointMC] = c.Angles.MC.Longitude
	}
	return names, lons
}

// Natal returns every aspect between point pairs within one chart, tightest
// orb first. The angles participate alongside the planets.
func (p Policy) Natal(c *chart.Chart, wide bool) []Aspect {
	names, lons := chartPoints(c, true)

	var out []Aspect
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if a, ok := p.Match(names[i], lons[names[i]], names[j], lons[names[j]], wide); ok {
				out = append(out, a)
			}
		}
	}
	sortByOrb(out)
	return out
}

// Synastry returns aspects across two charts, tightest first. Point1 always
// belongs to the user chart and Point2 to the partner chart; the user's
// angles participate, the partner's do not (relational convention carried
// over from the chart interpretation layer).
func (p Policy) Synastry(user, partner *chart.Chart, wide bool) []Aspect {
	userNames, userLons := chartPoints(user, true)
	partnerNames, partnerLons := chartPoints(partner, false)

	var out []Aspect
	for _, un := range userNames {
		for _, pn := range partnerNames {
			if a, ok := p.Match(un, userLons[un], pn, partnerLons[pn], wide); ok {
				out = append(out, a)
			}
		}
	}
	sortByOrb(out)
	return out
}

// TransitList returns aspects between a set of moving positions and a natal
// chart's planets, tightest first. Point1 is the transiting body.
func (p Policy) TransitList(natal *chart.Chart, transiting map[astro.Body]float64, wide bool) []Aspect {
	natalNames, natalLons := chartPoints(natal, false)

	var out []Aspect
	for _, body := range astro.ChartBodies {
		tlon, ok := transiting[body]
		if !ok {
			continue
		}
		for _, nn := range natalNames {
			if a, ok := p.Match(string(body), tlon, nn, natalLons[nn], wide); ok {
				out = append(out, a)
			}
		}
	}
	sortByOrb(out)
	return out
}

func sortByOrb(aspects []Aspect) {
	sort.SliceStable(aspects, func(i, j int) bool {
		return aspects[i].Orb < aspects[j].Orb
	})
}
