package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sofiastro/astroscan/internal/chart"
	"github.com/sofiastro/astroscan/internal/config"
	"github.com/sofiastro/astroscan/internal/ephemeris"
	"github.com/sofiastro/astroscan/internal/ephemeris/swiss"
	"github.com/sofiastro/astroscan/internal/timeref"
)

// engineDeps bundles the provider and resolver a command needs.
type engineDeps struct {
	cfg      config.Config
	provider *swiss.Provider
	resolver *timeref.GeoResolver
}

func (d *engineDeps) close() {
	if d.provider != nil {
		d.provider.Close()
	}
}

func buildDeps() (*engineDeps, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	provider, err := swiss.New(cfg.Ephemeris.Path)
	if err != nil {
		return nil, fmt.Errorf("ephemeris startup: %w", err)
	}

	resolver, err := timeref.NewGeoResolver()
	if err != nil {
		provider.Close()
		return nil, err
	}

	return &engineDeps{cfg: cfg, provider: provider, resolver: resolver}, nil
}

// buildChartFromFlags resolves one subject's birth flags into a chart.
func buildChartFromFlags(cmd *cobra.Command, prefix string, deps *engineDeps) (*chart.Chart, error) {
	date, _ := cmd.Flags().GetString(prefix + "date")
	clock, _ := cmd.Flags().GetString(prefix + "time")
	lat, _ := cmd.Flags().GetFloat64(prefix + "lat")
	lon, _ := cmd.Flags().GetFloat64(prefix + "lon")

	if date == "" {
		return nil, fmt.Errorf("--%sdate is required", prefix)
	}

	ref, err := timeref.Normalize(date, clock, lat, lon, deps.resolver)
	if err != nil {
		return nil, err
	}
	if ref.ZoneFallback {
		log.Warn().Float64("lat", lat).Float64("lon", lon).
			Msg("timezone resolution failed, assuming UTC")
	}

	return chart.Build(deps.provider, ref, lat, lon)
}

// hasPartnerFlags reports whether the partner birth flags were supplied.
func hasPartnerFlags(cmd *cobra.Command) bool {
	date, _ := cmd.Flags().GetString("partner-date")
	return date != ""
}

func runChart(cmd *cobra.Command, args []string) error {
	deps, err := buildDeps()
	if err != nil {
		return err
	}
	defer deps.close()

	c, err := buildChartFromFlags(cmd, "", deps)
	if err != nil {
		return err
	}

	return printJSON(chartOutput(c))
}

// chartOutput shapes a chart for JSON output, flattening per-body errors
// into explicit unavailable markers.
func chartOutput(c *chart.Chart) map[string]any {
	planets := map[string]any{}
	for body, p := range c.Planets {
		if !p.Valid() {
			planets[string(body)] = map[string]any{"available": false}
			continue
		}
		planets[string(body)] = map[string]any{
			"available": true,
			"longitude": p.Longitude,
			"speed":     p.Speed,
			"distance":  p.Distance,
			"sign":      p.Position.Sign.String(),
			"position":  p.Position.String(),
			"house":     p.House,
		}
	}

	houses := map[string]any{}
	for i, cusp := range c.Houses {
		houses[fmt.Sprintf("house_%d", i+1)] = cusp
	}

	rulers := map[string]any{}
	for house, r := range chart.HouseRulers(c) {
		rulers[fmt.Sprintf("house_%d", house)] = map[string]string{
			"sign":  r.Sign.String(),
			"ruler": string(r.Body),
		}
	}

	return map[string]any{
		"planets": planets,
		"houses":  houses,
		"rulers":  rulers,
		"angles": map[string]any{
			"ascendant":           c.Angles.Ascendant.Longitude,
			"ascendant_formatted": c.Angles.Ascendant.String(),
			"mc":                  c.Angles.MC.Longitude,
			"mc_formatted":        c.Angles.MC.String(),
		},
		"julian_day":     c.Ref.JulianDay,
		"datetime_utc":   c.Ref.UTC,
		"timezone":       c.Ref.Zone,
		"datetime_local": c.Ref.Local,
		"zone_fallback":  c.Ref.ZoneFallback,
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ensure the interface is satisfied at compile time
var _ ephemeris.Provider = (*swiss.Provider)(nil)
