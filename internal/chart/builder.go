package chart

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/sofiastro/astroscan/internal/astro"
	"github.com/sofiastro/astroscan/internal/ephemeris"
	"github.com/sofiastro/astroscan/internal/telemetry"
	"github.com/sofiastro/astroscan/internal/timeref"
)

// Build computes a full chart for the resolved time reference at the given
// coordinates. A failed house computation aborts the build; a failed planet
// query only marks that one body unavailable.
func Build(provider ephemeris.Provider, ref timeref.Ref, lat, lon float64) (*Chart, error) {
	houses, err := provider.PlacidusHouses(ref.JulianDay, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("house computation: %w", err)
	}

	c := &Chart{
		Planets: make(map[astro.Body]PlanetPosition, len(astro.ChartBodies)),
		Houses:  houses.Cusps,
		Angles: Angles{
			Ascendant: astro.PositionAt(houses.Ascendant),
			MC:        astro.PositionAt(houses.MC),
		},
		Ref: ref,
		Lat: lat,
		Lon: lon,
	}

	for _, body := range astro.ChartBodies {
		raw, err := provider.Position(ref.JulianDay, body)
		if err != nil {
			log.Warn().Err(err).Str("body", string(body)).
				Msg("planet position unavailable, chart degrades")
			telemetry.ProviderErrors.WithLabelValues(string(body)).Inc()
			c.Planets[body] = PlanetPosition{Body: body, Err: err}
			continue
		}

		lonNorm := astro.Normalize(raw.Longitude)
		c.Planets[body] = PlanetPosition{
			Body:      body,
			Longitude: lonNorm,
			Speed:     raw.Speed,
			Distance:  raw.Distance,
			Position:  astro.PositionAt(lonNorm),
			House:     HouseOf(lonNorm, c.Houses),
		}
	}

	telemetry.ChartsBuilt.Inc()
	return c, nil
}
