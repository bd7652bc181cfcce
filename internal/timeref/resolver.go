package timeref

import (
	"fmt"

	"github.com/ringsaturn/tzf"
)

// GeoResolver resolves IANA timezones from coordinates using the embedded
// tzf polygon data. The finder is heavyweight; construct once and share.
type GeoResolver struct {
	finder tzf.F
}

// NewGeoResolver builds the default tzf finder.
func NewGeoResolver() (*GeoResolver, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("timezone finder init: %w", err)
	}
	return &GeoResolver{finder: finder}, nil
}

// TimezoneName implements Resolver. tzf takes (lng, lat) order.
func (r *GeoResolver) TimezoneName(lat, lon float64) (string, bool) {
	name := r.finder.GetTimezoneName(lon, lat)
	if name == "" {
		return "", false
	}
	return name, true
}
