// Package ephetest provides a scripted in-memory ephemeris for tests. It
// lets chart and scan tests declare synthetic positions without the Swiss
// Ephemeris data files.
package ephetest

import (
	"fmt"

	"github.com/sofiastro/astroscan/internal/astro"
	"github.com/sofiastro/astroscan/internal/ephemeris"
)

// Provider is a configurable fake. Fixed maps serve simple cases; the Func
// hooks win when set, which lets scan tests compute positions from the
// queried Julian day.
type Provider struct {
	// Positions keyed by body, used when PositionFunc is nil.
	Positions map[astro.Body]ephemeris.BodyPosition

	// Bodies listed here fail with a BodyError.
	Failing map[astro.Body]bool

	PositionFunc func(jd float64, body astro.Body) (ephemeris.BodyPosition, error)

	HouseSet  ephemeris.Houses
	HousesErr error

	// Eclipse results; zero means "no eclipse in range".
	SolarEclipseJD float64
	LunarEclipseJD float64
}

// New returns a provider with an evenly spaced Placidus-shaped house set so
// chart tests work out of the box.
func New() *Provider {
	p := &Provider{
		Positions: map[astro.Body]ephemeris.BodyPosition{},
		Failing:   map[astro.Body]bool{},
	}
	for i := 0; i < 12; i++ {
		p.HouseSet.Cusps[i] = float64(i) * 30.0
	}
	p.HouseSet.Ascendant = 0
	p.HouseSet.MC = 270
	return p
}

func (p *Provider) Position(jd float64, body astro.Body) (ephemeris.BodyPosition, error) {
	if p.PositionFunc != nil {
		return p.PositionFunc(jd, body)
	}
	if p.Failing[body] {
		return ephemeris.BodyPosition{}, &ephemeris.BodyError{
			Body: body,
			Err:  fmt.Errorf("scripted failure"),
		}
	}
	pos, ok := p.Positions[body]
	if !ok {
		return ephemeris.BodyPosition{}, &ephemeris.BodyError{
			Body: body,
			Err:  fmt.Errorf("no scripted position"),
		}
	}
	return pos, nil
}

func (p *Provider) PlacidusHouses(jd, lat, lon float64) (ephemeris.Houses, error) {
	if p.HousesErr != nil {
		return ephemeris.Houses{}, p.HousesErr
	}
	return p.HouseSet, nil
}

func (p *Provider) NextSolarEclipse(jd, lat, lon float64) (float64, error) {
	if p.SolarEclipseJD == 0 {
		return 0, ephemeris.ErrNoEclipse
	}
	return p.SolarEclipseJD, nil
}

func (p *Provider) NextLunarEclipse(jd float64) (float64, error) {
	if p.LunarEclipseJD == 0 {
		return 0, ephemeris.ErrNoEclipse
	}
	return p.LunarEclipseJD, nil
}
