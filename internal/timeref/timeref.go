// Package timeref converts civil birth data into the continuous astronomical
// time reference (Julian day, UT) the ephemeris computes against.
package timeref

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Bulgaria introduced daylight saving on 1979-04-01. Before that the country
// kept fixed EET (UTC+2) year-round, which some zone databases retroactively
// "correct". Dates before the cutover are localized with the fixed offset.
const (
	sofiaZone       = "Europe/Sofia"
	sofiaDSTCutover = 1979
)

var fixedEET = time.FixedZone("EET", 2*3600)

// ParseError reports malformed civil date/time input. Field order is never
// guessed; the input is rejected instead.
type ParseError struct {
	Field string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s %q", e.Field, e.Value)
}

// Resolver maps geographic coordinates to an IANA timezone identifier.
type Resolver interface {
	// TimezoneName returns the zone ID for the coordinates, or ok=false
	// when the point cannot be resolved (open ocean, bad data).
	TimezoneName(lat, lon float64) (string, bool)
}

// Ref is the resolved time reference for one chart.
type Ref struct {
	JulianDay float64
	UTC       time.Time
	Zone      string // resolved IANA zone, "UTC" after fallback
	Local     string // original civil datetime as given
	// ZoneFallback records that timezone resolution failed and UTC was
	// assumed. Recorded explicitly, never silent.
	ZoneFallback bool
}

// Normalize resolves local civil date and time at the given coordinates into
// a Ref. Dates accept "YYYY-MM-DD" or "YYYY/MM/DD"; times accept "HH:MM" or
// "HH:MM:SS".
func Normalize(date, clock string, lat, lon float64, resolver Resolver) (Ref, error) {
	year, month, day, err := parseDate(date)
	if err != nil {
		return Ref{}, err
	}
	hour, minute, second, err := parseClock(clock)
	if err != nil {
		return Ref{}, err
	}

	ref := Ref{Local: date + " " + clock}

	zone, ok := resolver.TimezoneName(lat, lon)
	var loc *time.Location
	if !ok {
		ref.Zone = "UTC"
		ref.ZoneFallback = true
		loc = time.UTC
	} else {
		ref.Zone = zone
		loc, err = time.LoadLocation(zone)
		if err != nil {
			ref.Zone = "UTC"
			ref.ZoneFallback = true
			loc = time.UTC
		}
	}

	if ref.Zone == sofiaZone && year < sofiaDSTCutover {
		loc = fixedEET
	}

	local := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
	ref.UTC = local.UTC()
	ref.JulianDay = JulianDay(ref.UTC)

	return ref, nil
}

// JulianDay converts a UTC instant to a Julian day. The conversion keeps the
// day-of-month as an integer and folds the clock into a fractional hour
// (hour + minute/60 + second/3600); feeding a fractional day into the
// underlying ephemeris misbehaves.
func JulianDay(t time.Time) float64 {
	t = t.UTC()
	year, month, day := t.Date()

	decimalHour := float64(t.Hour()) +
		float64(t.Minute())/60.0 +
		float64(t.Second())/3600.0

	a := (14 - int(month)) / 12
	y := year + 4800 - a
	m := int(month) + 12*a - 3
	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045

	return float64(jdn) + (decimalHour-12.0)/24.0
}

// FromJulianDay converts a Julian day back to a UTC instant.
// JD 2440587.5 is the Unix epoch.
func FromJulianDay(jd float64) time.Time {
	seconds := (jd - 2440587.5) * 86400.0
	sec, frac := math.Modf(seconds)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC()
}

func parseDate(date string) (year, month, day int, err error) {
	clean := strings.ReplaceAll(date, "/", "-")
	parts := strings.Split(clean, "-")
	if len(parts) != 3 {
		return 0, 0, 0, &ParseError{Field: "date", Value: date}
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, &ParseError{Field: "date", Value: date}
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, 0, &ParseError{Field: "date", Value: date}
	}
	day, err = strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return 0, 0, 0, &ParseError{Field: "date", Value: date}
	}
	// time.Date normalizes out-of-range days into the next month (Feb 30
	// becomes Mar 2). Reject any date that does not round-trip.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return 0, 0, 0, &ParseError{Field: "date", Value: date}
	}
	return year, month, day, nil
}

func parseClock(clock string) (hour, minute, second int, err error) {
	parts := strings.Split(clock, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, &ParseError{Field: "time", Value: clock}
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, 0, &ParseError{Field: "time", Value: clock}
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, 0, &ParseError{Field: "time", Value: clock}
	}
	if len(parts) == 3 {
		second, err = strconv.Atoi(parts[2])
		if err != nil || second < 0 || second > 59 {
			return 0, 0, 0, &ParseError{Field: "time", Value: clock}
		}
	}
	return hour, minute, second, nil
}
