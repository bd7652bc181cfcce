// Package chart builds the computed snapshot for one subject at one moment
// and place: planetary positions, Placidus house cusps, and the two angles.
package chart

import (
	"github.com/sofiastro/astroscan/internal/astro"
	"github.com/sofiastro/astroscan/internal/timeref"
)

// PlanetPosition is one body's computed state. A per-body provider failure
// sets Err and leaves the numeric fields zero; callers must check Valid()
// before using them. One failed body never invalidates the rest of the chart.
type PlanetPosition struct {
	Body      astro.Body
	Longitude float64 // normalized [0,360)
	Speed     float64 // degrees/day, negative while retrograde
	Distance  float64 // AU
	Position  astro.Position
	House     int // 1..12, 0 only when Err is set
	Err       error
}

// Valid reports whether the position was computed.
func (p PlanetPosition) Valid() bool { return p.Err == nil }

// Angles holds the Ascendant and Midheaven.
type Angles struct {
	Ascendant astro.Position
	MC        astro.Position
}

// Chart is the full computed snapshot.
type Chart struct {
	Planets map[astro.Body]PlanetPosition
	// Houses holds cusp longitudes indexed house-1. Ascending house order,
	// not ascending longitude order: a chart can wrap past 0°.
	Houses [12]float64
	Angles Angles
	Ref    timeref.Ref
	Lat    float64
	Lon    float64
}

// Cusp returns the cusp longitude for a house in 1..12.
func (c *Chart) Cusp(house int) float64 {
	return c.Houses[house-1]
}

// PlanetLongitudes returns the valid planet longitudes keyed by body.
func (c *Chart) PlanetLongitudes() map[astro.Body]float64 {
	out := make(map[astro.Body]float64, len(c.Planets))
	for body, p := range c.Planets {
		if p.Valid() {
			out[body] = p.Longitude
		}
	}
	return out
}
