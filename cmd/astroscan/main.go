package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sofiastro/astroscan/internal/config"
)

const (
	appName = "astroscan"
	version = "v1.0.0"
)

var configPath string

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Astrological chart geometry and event-scanning engine",
		Version: version,
		Long: `astroscan computes natal charts from birth data and scans calendar
intervals for retrograde stations, lunations, eclipses, sign ingresses and
transits to one or two natal charts.`,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config (built-in defaults when empty)")

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Compute a natal chart",
		Long:  "Compute planetary positions, Placidus houses, angles and house rulers for one birth",
		RunE:  runChart,
	}
	addBirthFlags(chartCmd, "")

	aspectsCmd := &cobra.Command{
		Use:   "aspects",
		Short: "Compute natal aspects for one chart",
		RunE:  runAspects,
	}
	addBirthFlags(aspectsCmd, "")
	aspectsCmd.Flags().Bool("wide", false, "Use the loosened orb bands")

	synastryCmd := &cobra.Command{
		Use:   "synastry",
		Short: "Compare two charts: cross-chart aspects and house overlays",
		RunE:  runSynastry,
	}
	addBirthFlags(synastryCmd, "")
	addBirthFlags(synastryCmd, "partner-")
	synastryCmd.Flags().Bool("wide", false, "Use the loosened orb bands")

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a date range for astrological events",
		Long:  "Day-stepped sweep emitting retrograde stations, lunations/eclipses, ingresses and transits to the natal chart(s)",
		RunE:  runScan,
	}
	addBirthFlags(scanCmd, "")
	addBirthFlags(scanCmd, "partner-")
	scanCmd.Flags().String("start", "", "Scan start date (YYYY-MM-DD)")
	scanCmd.Flags().String("end", "", "Scan end date (YYYY-MM-DD)")
	scanCmd.Flags().Int("max-events", 0, "Cap the event list, keeping the most significant (0 = no cap)")

	rootCmd.AddCommand(chartCmd, aspectsCmd, synastryCmd, scanCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// addBirthFlags registers one subject's birth data flags, optionally
// prefixed (partner-date, partner-time, ...) for two-chart commands.
func addBirthFlags(cmd *cobra.Command, prefix string) {
	cmd.Flags().String(prefix+"date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().String(prefix+"time", "12:00:00", "Birth time (HH:MM or HH:MM:SS, local)")
	cmd.Flags().Float64(prefix+"lat", 0, "Birth latitude, degrees")
	cmd.Flags().Float64(prefix+"lon", 0, "Birth longitude, degrees (east positive)")
}

// loadConfig resolves the engine config from --config or defaults.
func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("config %s: %w", configPath, err)
	}
	return cfg, nil
}
