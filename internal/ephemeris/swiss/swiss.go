// Package swiss adapts the Swiss Ephemeris (via the swephgo bindings) to the
// engine's Provider interface. All library quirks, including the 12-vs-13
// element cusp array, stay behind this package.
package swiss

import (
	"fmt"
	"os"

	"github.com/mshafiee/swephgo"

	"github.com/sofiastro/astroscan/internal/astro"
	"github.com/sofiastro/astroscan/internal/ephemeris"
)

// Swiss Ephemeris body identifiers.
const (
	seSun      = 0
	seMoon     = 1
	seMercury  = 2
	seVenus    = 3
	seMars     = 4
	seJupiter  = 5
	seSaturn   = 6
	seUranus   = 7
	seNeptune  = 8
	sePluto    = 9
	seTrueNode = 11
	seChiron   = 15
)

// Calculation flags: Swiss Ephemeris files plus speed output.
const (
	seflgSwieph = 2
	seflgSpeed  = 256
	calcFlags   = seflgSwieph | seflgSpeed
)

// Placidus house system selector for swe_houses.
const hsysPlacidus = 'P'

var bodyIDs = map[astro.Body]int{
	astro.Sun:     seSun,
	astro.Moon:    seMoon,
	astro.Mercury: seMercury,
	astro.Venus:   seVenus,
	astro.Mars:    seMars,
	astro.Jupiter: seJupiter,
	astro.Saturn:  seSaturn,
	astro.Uranus:  seUranus,
	astro.Neptune: seNeptune,
	astro.Pluto:   sePluto,
	astro.Node:    seTrueNode,
	astro.Chiron:  seChiron,
}

// Provider implements ephemeris.Provider on top of the Swiss Ephemeris.
// Safe to share between goroutines only to the extent the underlying C
// library is; the engine itself never queries one provider concurrently.
type Provider struct {
	ephePath string
}

// New configures the Swiss Ephemeris with the coefficient tables at path.
// A missing directory is fatal for the whole engine.
func New(path string) (*Provider, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("ephemeris path %q: %w", path, ephemeris.ErrNotConfigured)
	}

	swephgo.SetEphePath([]byte(path))
	return &Provider{ephePath: path}, nil
}

// Close releases Swiss Ephemeris file handles.
func (p *Provider) Close() {
	swephgo.Close()
}

// Position queries swe_calc_ut for one body. A library error is wrapped in
// *ephemeris.BodyError so the caller can degrade per body.
func (p *Provider) Position(jd float64, body astro.Body) (ephemeris.BodyPosition, error) {
	id, ok := bodyIDs[body]
	if !ok {
		return ephemeris.BodyPosition{}, &ephemeris.BodyError{
			Body: body,
			Err:  fmt.Errorf("unknown body"),
		}
	}

	// xx: [longitude, latitude, distance, speed_long, speed_lat, speed_dist]
	xx := make([]float64, 6)
	serr := make([]byte, 256)
	if ret := swephgo.CalcUt(jd, id, calcFlags, xx, serr); ret < 0 {
		return ephemeris.BodyPosition{}, &ephemeris.BodyError{
			Body: body,
			Err:  fmt.Errorf("swe_calc_ut flag %d: %s", ret, cstring(serr)),
		}
	}

	return ephemeris.BodyPosition{
		Longitude: xx[0],
		Speed:     xx[3],
		Distance:  xx[2],
	}, nil
}

// PlacidusHouses queries swe_houses and normalizes the cusp array shape.
func (p *Provider) PlacidusHouses(jd, lat, lon float64) (ephemeris.Houses, error) {
	// The library may hand back 13 cusp slots (index 0 unused) or 12
	// depending on build; size for the larger shape.
	cusps := make([]float64, 13)
	ascmc := make([]float64, 10)
	if ret := swephgo.Houses(jd, lat, lon, hsysPlacidus, cusps, ascmc); ret < 0 {
		return ephemeris.Houses{}, fmt.Errorf("swe_houses failed (flag %d)", ret)
	}

	fixed, err := normalizeCusps(cusps)
	if err != nil {
		return ephemeris.Houses{}, err
	}

	return ephemeris.Houses{
		Cusps:     fixed,
		Ascendant: ascmc[0],
		MC:        ascmc[1],
	}, nil
}

// NextSolarEclipse searches forward from jd via swe_sol_eclipse_when_loc.
func (p *Provider) NextSolarEclipse(jd, lat, lon float64) (float64, error) {
	geopos := []float64{lon, lat, 0} // lon, lat, altitude
	tret := make([]float64, 10)
	attr := make([]float64, 20)
	serr := make([]byte, 256)

	ret := swephgo.SolEclipseWhenLoc(jd, seflgSwieph, geopos, tret, attr, 0, serr)
	if ret < 0 {
		return 0, fmt.Errorf("swe_sol_eclipse_when_loc: %s: %w", cstring(serr), ephemeris.ErrNoEclipse)
	}
	return tret[0], nil
}

// NextLunarEclipse searches forward from jd via swe_lun_eclipse_when.
func (p *Provider) NextLunarEclipse(jd float64) (float64, error) {
	tret := make([]float64, 10)
	serr := make([]byte, 256)

	ret := swephgo.LunEclipseWhen(jd, seflgSwieph, 0, tret, 0, serr)
	if ret < 0 {
		return 0, fmt.Errorf("swe_lun_eclipse_when: %s: %w", cstring(serr), ephemeris.ErrNoEclipse)
	}
	return tret[0], nil
}

func cstring(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
