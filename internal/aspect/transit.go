package aspect

// Scanner-context orb limits. An approaching exact hit stays event-worthy
// for a longer lead time than a fading one, so applying aspects get the
// looser limit.
const (
	MaxOrbApplying   = 1.5
	MaxOrbSeparating = 1.0
)

// Match is a scanner-context classification of one moving/fixed pair.
type Match struct {
	Kind     Kind
	Angle    float64 // ideal angle of the kind
	Orb      float64
	Applying bool
}

// ExactMatch classifies a transit position against a natal longitude under
// the scanner's tight orb rules. prevTransitLon is the moving point's
// longitude one sampling step (1 day) earlier; when available it decides
// applying (orb shrinking) versus separating (orb growing). Without it the
// conservative separating limit applies and the match reports separating.
// Returns ok=false when no kind is inside its limit.
func ExactMatch(transitLon, natalLon float64, prevTransitLon *float64) (Match, bool) {
	sep := Separation(transitLon, natalLon)

	var best Match
	found := false
	for _, kind := range kindsInOrder {
		orb := absf(sep - kind.Angle())

		applying := false
		maxOrb := MaxOrbSeparating
		if prevTransitLon != nil {
			prevSep := Separation(*prevTransitLon, natalLon)
			prevOrb := absf(prevSep - kind.Angle())
			applying = prevOrb > orb
			if applying {
				maxOrb = MaxOrbApplying
			}
		}

		if orb > maxOrb {
			continue
		}
		if !found || orb < best.Orb {
			best = Match{
				Kind:     kind,
				Angle:    kind.Angle(),
				Orb:      orb,
				Applying: applying,
			}
			found = true
		}
	}
	return best, found
}
