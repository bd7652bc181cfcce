package main

import (
	"github.com/spf13/cobra"

	"github.com/sofiastro/astroscan/internal/aspect"
	"github.com/sofiastro/astroscan/internal/astro"
	"github.com/sofiastro/astroscan/internal/chart"
)

func runAspects(cmd *cobra.Command, args []string) error {
	deps, err := buildDeps()
	if err != nil {
		return err
	}
	defer deps.close()

	c, err := buildChartFromFlags(cmd, "", deps)
	if err != nil {
		return err
	}

	wide, _ := cmd.Flags().GetBool("wide")
	aspects := deps.cfg.Orbs.Natal(c, wide)

	return printJSON(map[string]any{
		"aspects": aspectsOutput(aspects),
		"domains": domainsOutput(chart.Domains(c)),
	})
}

func runSynastry(cmd *cobra.Command, args []string) error {
	deps, err := buildDeps()
	if err != nil {
		return err
	}
	defer deps.close()

	user, err := buildChartFromFlags(cmd, "", deps)
	if err != nil {
		return err
	}
	partner, err := buildChartFromFlags(cmd, "partner-", deps)
	if err != nil {
		return err
	}

	wide, _ := cmd.Flags().GetBool("wide")
	aspects := deps.cfg.Orbs.Synastry(user, partner, wide)

	// Both overlay directions: partner planets in the user's houses and
	// user planets in the partner's houses.
	partnerInUser := chart.Overlay(user, partner.Planets)
	userInPartner := chart.Overlay(partner, user.Planets)

	return printJSON(map[string]any{
		"aspects":                 aspectsOutput(aspects),
		"partner_in_user_houses":  overlayOutput(partnerInUser),
		"user_in_partner_houses":  overlayOutput(userInPartner),
		"user_domains":            domainsOutput(chart.Domains(user)),
		"partner_domains":         domainsOutput(chart.Domains(partner)),
	})
}

func aspectsOutput(aspects []aspect.Aspect) []map[string]any {
	out := make([]map[string]any, 0, len(aspects))
	for _, a := range aspects {
		out = append(out, map[string]any{
			"point1": a.Point1,
			"point2": a.Point2,
			"aspect": string(a.Kind),
			"angle":  a.Angle,
			"orb":    a.Orb,
		})
	}
	return out
}

func overlayOutput(overlay map[astro.Body]int) map[string]int {
	out := make(map[string]int, len(overlay))
	for body, house := range overlay {
		out[string(body)] = house
	}
	return out
}

func domainsOutput(d chart.DomainRulers) map[string]any {
	entry := func(r chart.Ruler) map[string]string {
		return map[string]string{"sign": r.Sign.String(), "ruler": string(r.Body)}
	}
	return map[string]any{
		"money":  entry(d.Money),
		"health": entry(d.Health),
		"love":   entry(d.Love),
		"career": entry(d.Career),
	}
}
