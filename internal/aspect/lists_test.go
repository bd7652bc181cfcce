package aspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofiastro/astroscan/internal/astro"
	"github.com/sofiastro/astroscan/internal/chart"
)

func chartWith(planets map[astro.Body]float64, asc, mc float64) *chart.Chart {
	c := &chart.Chart{
		Planets: map[astro.Body]chart.PlanetPosition{},
		Angles: chart.Angles{
			Ascendant: astro.PositionAt(asc),
			MC:        astro.PositionAt(mc),
		},
	}
	for body, lon := range planets {
		c.Planets[body] = chart.PlanetPosition{
			Body:      body,
			Longitude: lon,
			Position:  astro.PositionAt(lon),
			House:     1,
		}
	}
	return c
}

func TestNatal_SortedByOrbAndAnglesIncluded(t *testing.T) {
	p := DefaultPolicy()

	c := chartWith(map[astro.Body]float64{
		astro.Sun:  0,
		astro.Moon: 92,    // square Sun, orb 2
		astro.Mars: 120.5, // trine Sun, orb 0.5
	}, 181, 270) // ASC opposes Sun with orb 1, MC square Sun

	aspects := p.Natal(c, false)
	require.NotEmpty(t, aspects)

	for i := 1; i < len(aspects); i++ {
		assert.LessOrEqual(t, aspects[i-1].Orb, aspects[i].Orb, "sorted tightest first")
	}

	var sawASC bool
	for _, a := range aspects {
		if a.Point1 == astro.PointASC || a.Point2 == astro.PointASC {
			sawASC = true
		}
	}
	assert.True(t, sawASC, "ASC participates in natal aspects")
}

func TestNatal_SkipsFailedBodies(t *testing.T) {
	p := DefaultPolicy()
	c := chartWith(map[astro.Body]float64{astro.Sun: 0, astro.Moon: 90}, 200, 290)
	c.Planets[astro.Mars] = chart.PlanetPosition{Body: astro.Mars, Err: assert.AnError}

	for _, a := range p.Natal(c, false) {
		assert.NotEqual(t, string(astro.Mars), a.Point1)
		assert.NotEqual(t, string(astro.Mars), a.Point2)
	}
}

func TestSynastry_SidesAreStable(t *testing.T) {
	p := DefaultPolicy()

	user := chartWith(map[astro.Body]float64{astro.Sun: 10}, 100, 190)
	partner := chartWith(map[astro.Body]float64{astro.Moon: 130.5}, 0, 90)

	aspects := p.Synastry(user, partner, false)
	require.NotEmpty(t, aspects)

	// Point1 is always from the user chart, Point2 from the partner.
	found := false
	for _, a := range aspects {
		if a.Point1 == string(astro.Sun) && a.Point2 == string(astro.Moon) {
			found = true
			assert.Equal(t, Trine, a.Kind)
			assert.InDelta(t, 0.5, a.Orb, 1e-9)
		}
	}
	assert.True(t, found)
}

func TestSynastry_WideSupersetOfExact(t *testing.T) {
	p := DefaultPolicy()

	user := chartWith(map[astro.Body]float64{astro.Sun: 0, astro.Venus: 45}, 300, 30)
	partner := chartWith(map[astro.Body]float64{astro.Moon: 95.5, astro.Saturn: 184}, 0, 90)

	exact := p.Synastry(user, partner, false)
	wide := p.Synastry(user, partner, true)

	assert.GreaterOrEqual(t, len(wide), len(exact))
	for _, e := range exact {
		matched := false
		for _, w := range wide {
			if w.Point1 == e.Point1 && w.Point2 == e.Point2 && w.Kind == e.Kind {
				matched = true
				assert.InDelta(t, e.Orb, w.Orb, 1e-9)
			}
		}
		assert.True(t, matched, "exact aspect %v missing from wide result", e)
	}
}

func TestTransitList(t *testing.T) {
	p := DefaultPolicy()
	natal := chartWith(map[astro.Body]float64{astro.Sun: 15, astro.Moon: 250}, 0, 270)

	transiting := map[astro.Body]float64{
		astro.Saturn: 105.2, // square natal Sun, orb 0.2
	}

	aspects := p.TransitList(natal, transiting, false)
	require.Len(t, aspects, 1)
	assert.Equal(t, string(astro.Saturn), aspects[0].Point1)
	assert.Equal(t, string(astro.Sun), aspects[0].Point2)
	assert.Equal(t, Square, aspects[0].Kind)
}
