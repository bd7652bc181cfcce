package scan

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sofiastro/astroscan/internal/aspect"
	"github.com/sofiastro/astroscan/internal/astro"
	"github.com/sofiastro/astroscan/internal/chart"
	"github.com/sofiastro/astroscan/internal/ephemeris"
	"github.com/sofiastro/astroscan/internal/telemetry"
	"github.com/sofiastro/astroscan/internal/timeref"
)

// Config tunes the scanner's detection windows.
type Config struct {
	// LunationWindowDeg is the Sun-Moon separation threshold: below it is a
	// New Moon window, above 180-it a Full Moon window.
	LunationWindowDeg float64 `yaml:"lunation_window_deg"`
	// EclipseSlopDays is how far an eclipse search result may sit from the
	// scan day (in whole civil days) and still claim it.
	EclipseSlopDays int `yaml:"eclipse_slop_days"`
}

// DefaultConfig returns the built-in detection windows.
func DefaultConfig() Config {
	return Config{LunationWindowDeg: 13.0, EclipseSlopDays: 1}
}

// Scanner runs day-stepped sweeps against an ephemeris provider. It holds no
// per-scan state: every invocation threads its own State through the fold,
// so one Scanner is safe to share across concurrent scans.
type Scanner struct {
	provider ephemeris.Provider
	cfg      Config
}

// New builds a Scanner.
func New(provider ephemeris.Provider, cfg Config) *Scanner {
	return &Scanner{provider: provider, cfg: cfg}
}

// State is the cross-day detection memory: previous-day signed speeds for
// station detection and previous-day sign slots for ingress detection. It
// belongs to exactly one scan; callers chunking a long range into sub-ranges
// pass the same State to consecutive PeriodWithState calls.
type State struct {
	PrevSpeeds map[astro.Body]float64
	PrevSigns  map[astro.Body]int
	// PrevLunation remembers whether the previous day already sat inside a
	// lunation window ("new", "full" or empty). A window emits exactly one
	// event, on the day it is entered; without this memory the daily sweep
	// would fire on every day the Sun-Moon separation stays inside it.
	PrevLunation string
}

// SeedState initializes detection memory from the day before a scan's start
// date, so the first scanned day can still detect a transition. Bodies whose
// seed query fails are left unseeded and settle on their first scanned day.
func (s *Scanner) SeedState(dayBefore time.Time) *State {
	jd := timeref.JulianDay(midnightUTC(dayBefore))
	st := &State{
		PrevSpeeds: make(map[astro.Body]float64, len(astro.RetrogradeBodies)),
		PrevSigns:  make(map[astro.Body]int, len(astro.IngressBodies)),
	}

	for _, body := range astro.RetrogradeBodies {
		pos, err := s.provider.Position(jd, body)
		if err != nil {
			log.Warn().Err(err).Str("body", string(body)).Msg("station seed query failed")
			continue
		}
		st.PrevSpeeds[body] = pos.Speed
	}
	for _, body := range astro.IngressBodies {
		pos, err := s.provider.Position(jd, body)
		if err != nil {
			log.Warn().Err(err).Str("body", string(body)).Msg("ingress seed query failed")
			continue
		}
		st.PrevSigns[body] = astro.SignIndex(pos.Longitude)
	}

	sun, errSun := s.provider.Position(jd, astro.Sun)
	moon, errMoon := s.provider.Position(jd, astro.Moon)
	if errSun == nil && errMoon == nil {
		st.PrevLunation = s.lunationWindow(aspect.Separation(sun.Longitude, moon.Longitude))
	}
	return st
}

// lunationWindow classifies a Sun-Moon separation: "new" below the window
// threshold, "full" above its mirror, empty otherwise.
func (s *Scanner) lunationWindow(separation float64) string {
	switch {
	case separation < s.cfg.LunationWindowDeg:
		return "new"
	case separation > 180.0-s.cfg.LunationWindowDeg:
		return "full"
	}
	return ""
}

// Period scans every calendar day from start to end inclusive and returns
// the detected events sorted by date then kind. partner may be nil; when
// supplied, the transit pass runs once more against the partner chart.
func (s *Scanner) Period(natal *chart.Chart, start, end time.Time, lat, lon float64, partner *chart.Chart) ([]Event, error) {
	state := s.SeedState(start.AddDate(0, 0, -1))
	return s.PeriodWithState(state, natal, start, end, lat, lon, partner)
}

// PeriodWithState is Period with caller-owned detection memory, for scans
// chunked into sub-ranges.
func (s *Scanner) PeriodWithState(state *State, natal *chart.Chart, start, end time.Time, lat, lon float64, partner *chart.Chart) ([]Event, error) {
	if natal == nil {
		return nil, fmt.Errorf("natal chart required")
	}
	start = midnightUTC(start)
	end = midnightUTC(end)
	if end.Before(start) {
		return nil, fmt.Errorf("scan range ends %s before it starts %s",
			end.Format(time.DateOnly), start.Format(time.DateOnly))
	}

	runID := uuid.NewString()
	log.Info().Str("run_id", runID).
		Str("start", start.Format(time.DateOnly)).
		Str("end", end.Format(time.DateOnly)).
		Bool("partner", partner != nil).
		Msg("period scan started")

	var events []Event
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		jd := timeref.JulianDay(day)

		events = append(events, s.detectStations(jd, day, state)...)
		events = append(events, s.detectLunation(jd, day, lat, lon, state)...)
		events = append(events, s.detectIngresses(jd, day, state)...)
		events = append(events, s.detectTransits(jd, day, natal, TargetUser)...)
		if partner != nil {
			events = append(events, s.detectTransits(jd, day, partner, TargetPartner)...)
		}
	}

	sortEvents(events)
	for _, e := range events {
		telemetry.EventsEmitted.WithLabelValues(string(e.Kind)).Inc()
	}
	telemetry.ScansCompleted.Inc()

	log.Info().Str("run_id", runID).Int("events", len(events)).Msg("period scan finished")
	return events, nil
}

// detectStations emits a RETROGRADE event for every body whose speed changed
// sign since the previous day. Stored speeds update whether or not a
// transition fired.
func (s *Scanner) detectStations(jd float64, day time.Time, state *State) []Event {
	var events []Event
	for _, body := range astro.RetrogradeBodies {
		pos, err := s.provider.Position(jd, body)
		if err != nil {
			log.Warn().Err(err).Str("body", string(body)).Msg("station query failed")
			continue
		}

		prev, seeded := state.PrevSpeeds[body]
		state.PrevSpeeds[body] = pos.Speed
		if !seeded {
			continue
		}

		var direction string
		switch {
		case prev > 0 && pos.Speed < 0:
			direction = "retrograde"
		case prev < 0 && pos.Speed > 0:
			direction = "direct"
		default:
			continue
		}

		p := astro.PositionAt(pos.Longitude)
		events = append(events, Event{
			Date:      day,
			Kind:      KindRetrograde,
			Body:      body,
			Direction: direction,
			Sign:      p.Sign,
			Position:  p.String(),
			Description: fmt.Sprintf("%s turns %s in %s",
				body, titleDirection(direction), p.Sign),
		})
	}
	return events
}

// detectLunation emits at most one LUNATION or ECLIPSE event per lunation
// window, on the day the window is entered. Inside a New or Full Moon window
// an eclipse search anchored one day back upgrades the event when its result
// lands within the configured slop of the scan day; the plain lunation is
// then suppressed.
func (s *Scanner) detectLunation(jd float64, day time.Time, lat, lon float64, state *State) []Event {
	sun, err := s.provider.Position(jd, astro.Sun)
	if err != nil {
		log.Warn().Err(err).Msg("lunation sun query failed")
		return nil
	}
	moon, err := s.provider.Position(jd, astro.Moon)
	if err != nil {
		log.Warn().Err(err).Msg("lunation moon query failed")
		return nil
	}

	window := s.lunationWindow(aspect.Separation(sun.Longitude, moon.Longitude))
	entered := window != "" && window != state.PrevLunation
	state.PrevLunation = window
	if !entered {
		return nil
	}

	switch window {
	case "new":
		// New Moon window: check for a solar eclipse.
		if eclipseJD, err := s.provider.NextSolarEclipse(jd-1, lat, lon); err == nil {
			if s.eclipseMatchesDay(eclipseJD, day) {
				p := astro.PositionAt(sun.Longitude)
				return []Event{{
					Date:        day,
					Kind:        KindEclipse,
					Body:        astro.Sun,
					Phase:       "Solar Eclipse",
					Sign:        p.Sign,
					Position:    p.String(),
					Description: fmt.Sprintf("Solar Eclipse in %s", p.Sign),
				}}
			}
		}
		p := astro.PositionAt(sun.Longitude)
		return []Event{{
			Date:        day,
			Kind:        KindLunation,
			Body:        astro.Sun,
			Phase:       "New Moon",
			Sign:        p.Sign,
			Position:    p.String(),
			Description: fmt.Sprintf("New Moon in %s", p.Sign),
		}}

	case "full":
		// Full Moon window: check for a lunar eclipse.
		if eclipseJD, err := s.provider.NextLunarEclipse(jd - 1); err == nil {
			if s.eclipseMatchesDay(eclipseJD, day) {
				p := astro.PositionAt(moon.Longitude)
				return []Event{{
					Date:        day,
					Kind:        KindEclipse,
					Body:        astro.Moon,
					Phase:       "Lunar Eclipse",
					Sign:        p.Sign,
					Position:    p.String(),
					Description: fmt.Sprintf("Lunar Eclipse in %s", p.Sign),
				}}
			}
		}
		p := astro.PositionAt(moon.Longitude)
		return []Event{{
			Date:        day,
			Kind:        KindLunation,
			Body:        astro.Moon,
			Phase:       "Full Moon",
			Sign:        p.Sign,
			Position:    p.String(),
			Description: fmt.Sprintf("Full Moon in %s", p.Sign),
		}}
	}
	return nil
}

// eclipseMatchesDay compares the eclipse search result against the scan day
// on whole civil dates in UTC.
func (s *Scanner) eclipseMatchesDay(eclipseJD float64, day time.Time) bool {
	eclipseDay := midnightUTC(timeref.FromJulianDay(eclipseJD))
	diffDays := int(eclipseDay.Sub(day).Hours() / 24)
	if diffDays < 0 {
		diffDays = -diffDays
	}
	return diffDays <= s.cfg.EclipseSlopDays
}

// detectIngresses emits an INGRESS event for every watched body whose sign
// slot differs from the previous day's. Stored slots always update.
func (s *Scanner) detectIngresses(jd float64, day time.Time, state *State) []Event {
	var events []Event
	for _, body := range astro.IngressBodies {
		pos, err := s.provider.Position(jd, body)
		if err != nil {
			log.Warn().Err(err).Str("body", string(body)).Msg("ingress query failed")
			continue
		}

		idx := astro.SignIndex(pos.Longitude)
		prev, seeded := state.PrevSigns[body]
		state.PrevSigns[body] = idx
		if !seeded || idx == prev {
			continue
		}

		p := astro.PositionAt(pos.Longitude)
		events = append(events, Event{
			Date:        day,
			Kind:        KindIngress,
			Body:        body,
			Sign:        p.Sign,
			Position:    p.String(),
			Description: fmt.Sprintf("%s enters %s", body, p.Sign),
		})
	}
	return events
}

// detectTransits tests each slow mover's position today and yesterday
// against the natal target points under the scanner's tight orb rules.
func (s *Scanner) detectTransits(jd float64, day time.Time, natal *chart.Chart, target Target) []Event {
	var events []Event
	for _, body := range astro.TransitBodies {
		now, err := s.provider.Position(jd, body)
		if err != nil {
			log.Warn().Err(err).Str("body", string(body)).Msg("transit query failed")
			continue
		}

		var prevLon *float64
		if prev, err := s.provider.Position(jd-1.0, body); err == nil {
			l := prev.Longitude
			prevLon = &l
		}

		for _, natalBody := range astro.NatalTargets {
			np, ok := natal.Planets[natalBody]
			if !ok || !np.Valid() {
				continue
			}

			m, ok := aspect.ExactMatch(now.Longitude, np.Longitude, prevLon)
			if !ok {
				continue
			}

			transitPos := astro.PositionAt(now.Longitude)
			house := chart.HouseOf(now.Longitude, natal.Houses)
			events = append(events, Event{
				Date:          day,
				Kind:          KindTransit,
				Target:        target,
				Body:          body,
				NatalBody:     natalBody,
				Aspect:        m.Kind,
				AspectAngle:   m.Angle,
				Orb:           m.Orb,
				Applying:      m.Applying,
				Position:      transitPos.String(),
				NatalPosition: np.Position.String(),
				House:         house,
				Description: fmt.Sprintf("Transit %s %s natal %s (house %d)",
					body, m.Kind, natalBody, house),
			})
		}
	}
	return events
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func titleDirection(direction string) string {
	if direction == "retrograde" {
		return "Retrograde"
	}
	return "Direct"
}
