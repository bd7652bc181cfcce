package chart

import "github.com/sofiastro/astroscan/internal/astro"

// Overlay places another chart's planets into the target chart's house
// system and returns body -> house number. Bodies with failed positions are
// skipped. Used both for synastry (partner planets into user houses) and for
// transit interpretation (current positions into natal houses).
func Overlay(target *Chart, planets map[astro.Body]PlanetPosition) map[astro.Body]int {
	out := make(map[astro.Body]int, len(planets))
	for body, p := range planets {
		if !p.Valid() {
			continue
		}
		out[body] = HouseOf(p.Longitude, target.Houses)
	}
	return out
}
