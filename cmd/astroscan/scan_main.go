package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sofiastro/astroscan/internal/chart"
	"github.com/sofiastro/astroscan/internal/scan"
)

func runScan(cmd *cobra.Command, args []string) error {
	deps, err := buildDeps()
	if err != nil {
		return err
	}
	defer deps.close()

	natal, err := buildChartFromFlags(cmd, "", deps)
	if err != nil {
		return err
	}

	var partner *chart.Chart
	if hasPartnerFlags(cmd) {
		partner, err = buildChartFromFlags(cmd, "partner-", deps)
		if err != nil {
			return err
		}
	}

	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")
	start, err := time.Parse(time.DateOnly, startStr)
	if err != nil {
		return fmt.Errorf("--start: %w", err)
	}
	end, err := time.Parse(time.DateOnly, endStr)
	if err != nil {
		return fmt.Errorf("--end: %w", err)
	}

	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")

	scanner := scan.New(deps.provider, deps.cfg.Scan)
	events, err := scanner.Period(natal, start, end, lat, lon, partner)
	if err != nil {
		return err
	}

	if maxEvents, _ := cmd.Flags().GetInt("max-events"); maxEvents > 0 {
		events = scan.Prioritize(events, maxEvents)
	}

	return printJSON(map[string]any{
		"start":  start.Format(time.DateOnly),
		"end":    end.Format(time.DateOnly),
		"count":  len(events),
		"events": eventsOutput(events),
	})
}

func eventsOutput(events []scan.Event) []map[string]any {
	out := make([]map[string]any, 0, len(events))
	for _, e := range events {
		entry := map[string]any{
			"date": e.Date.Format(time.DateOnly),
			"type": string(e.Kind),
		}
		if e.Body != "" {
			entry["body"] = string(e.Body)
		}
		if e.Position != "" {
			entry["position"] = e.Position
		}
		if e.Description != "" {
			entry["description"] = e.Description
		}

		switch e.Kind {
		case scan.KindRetrograde:
			entry["direction"] = e.Direction
		case scan.KindIngress:
			entry["sign"] = e.Sign.String()
		case scan.KindLunation, scan.KindEclipse:
			entry["phase"] = e.Phase
		case scan.KindTransit:
			entry["target"] = string(e.Target)
			entry["natal_body"] = string(e.NatalBody)
			entry["aspect"] = string(e.Aspect)
			entry["angle_deg"] = e.AspectAngle
			entry["orb"] = e.Orb
			entry["is_applying"] = e.Applying
			entry["natal_position"] = e.NatalPosition
			entry["house_impact"] = e.House
		}
		out = append(out, entry)
	}
	return out
}
