// Package ephemeris defines the numeric provider contract the engine
// computes against. Implementations are in-process and synchronous; the
// production adapter wraps the Swiss Ephemeris (see the swiss subpackage)
// and a scripted provider for tests lives in ephetest.
package ephemeris

import (
	"errors"
	"fmt"

	"github.com/sofiastro/astroscan/internal/astro"
)

// ErrNotConfigured reports a missing ephemeris data set. This is fatal at
// startup: no computation is possible without the coefficient tables.
var ErrNotConfigured = errors.New("ephemeris data set not configured")

// ErrNoEclipse reports that an eclipse search found nothing in range.
var ErrNoEclipse = errors.New("no eclipse found")

// BodyError wraps a single body's position failure. The chart builder
// downgrades it to an absent position; it never aborts the chart.
type BodyError struct {
	Body astro.Body
	Err  error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("ephemeris query for %s: %v", e.Body, e.Err)
}

func (e *BodyError) Unwrap() error { return e.Err }

// BodyPosition is the raw ephemeris result for one body at one instant.
type BodyPosition struct {
	Longitude float64 // ecliptic, degrees
	Speed     float64 // degrees/day, negative while retrograde
	Distance  float64 // AU
}

// Houses carries the Placidus cusp set and the two chart angles. Cusps are
// indexed house-1, so Cusps[0] is the 1st house cusp. Cusp longitudes are in
// ascending house order, not ascending longitude order.
type Houses struct {
	Cusps     [12]float64
	Ascendant float64
	MC        float64
}

// Provider is the engine's window onto the ephemeris. All queries take an
// astronomical time reference (Julian day, UT).
type Provider interface {
	// Position returns longitude, speed and distance for a body. Failures
	// are per-body and wrapped in *BodyError.
	Position(jd float64, body astro.Body) (BodyPosition, error)

	// PlacidusHouses returns the 12 cusps plus Ascendant and MC for a
	// geographic position.
	PlacidusHouses(jd, lat, lon float64) (Houses, error)

	// NextSolarEclipse searches forward from jd for the next solar eclipse
	// as seen from the given location, returning its time reference.
	// ErrNoEclipse when the search yields nothing.
	NextSolarEclipse(jd, lat, lon float64) (float64, error)

	// NextLunarEclipse searches forward from jd for the next lunar eclipse.
	NextLunarEclipse(jd float64) (float64, error)
}
