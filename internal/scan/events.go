// Package scan sweeps a calendar interval day by day and emits discrete
// astrological events relative to one or two natal charts.
package scan

import (
	"sort"
	"time"

	"github.com/sofiastro/astroscan/internal/aspect"
	"github.com/sofiastro/astroscan/internal/astro"
)

// Kind classifies a detected event.
type Kind string

const (
	KindRetrograde Kind = "RETROGRADE"
	KindLunation   Kind = "LUNATION"
	KindEclipse    Kind = "ECLIPSE"
	KindIngress    Kind = "INGRESS"
	KindTransit    Kind = "TRANSIT"
)

// Target names which subject a transit event belongs to when two charts are
// scanned in one pass.
type Target string

const (
	TargetUser    Target = "User"
	TargetPartner Target = "Partner"
)

// Event is one detected occurrence on one calendar day. Events are values:
// created once, never mutated, sorted before being returned.
type Event struct {
	Date time.Time // midnight UTC of the scan day
	Kind Kind

	// Body is the moving body for retrograde/ingress/transit events and
	// the luminary anchoring a lunation (Sun for new moons and solar
	// eclipses, Moon for full moons and lunar eclipses).
	Body     astro.Body
	Position string // canonical formatted position of Body

	// Retrograde stations.
	Direction string // "retrograde" or "direct"

	// Ingresses.
	Sign astro.Sign

	// Lunations and eclipses.
	Phase string // "New Moon", "Full Moon", "Solar Eclipse", "Lunar Eclipse"

	// Transits to natal.
	Target        Target
	NatalBody     astro.Body
	Aspect        aspect.Kind
	AspectAngle   float64
	Orb           float64
	Applying      bool
	NatalPosition string
	House         int // natal house the transiting body occupies

	Description string
}

// sortEvents orders events by date, then kind, keeping insertion order for
// full ties (stable).
func sortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].Kind < events[j].Kind
	})
}

// Event priorities for Prioritize. Higher keeps the event longer.
var kindPriority = map[Kind]int{
	KindEclipse:    5,
	KindRetrograde: 4,
	KindLunation:   3,
	KindIngress:    2,
	KindTransit:    1,
}

var personalTargets = map[astro.Body]bool{
	astro.Sun: true, astro.Moon: true, astro.Mercury: true,
	astro.Venus: true, astro.Mars: true,
}

var majorTransitBodies = map[astro.Body]bool{
	astro.Jupiter: true, astro.Saturn: true, astro.Uranus: true,
	astro.Neptune: true, astro.Pluto: true,
}

func priority(e Event) int {
	p := kindPriority[e.Kind]
	if e.Kind != KindTransit {
		return p
	}
	if personalTargets[e.NatalBody] {
		if majorTransitBodies[e.Body] {
			return p + 2
		}
		if e.Body == astro.Mars {
			return p + 1
		}
	}
	return p
}

// Prioritize caps an event list at max entries, keeping the most significant
// ones: eclipses over stations over lunations over ingresses over transits,
// with slow-mover transits to personal natal points boosted. The surviving
// events come back in date order.
func Prioritize(events []Event, max int) []Event {
	if len(events) <= max {
		return events
	}

	ranked := make([]Event, len(events))
	copy(ranked, events)
	sort.SliceStable(ranked, func(i, j int) bool {
		pi, pj := priority(ranked[i]), priority(ranked[j])
		if pi != pj {
			return pi > pj
		}
		return ranked[i].Date.Before(ranked[j].Date)
	})

	kept := ranked[:max]
	sortEvents(kept)
	return kept
}
