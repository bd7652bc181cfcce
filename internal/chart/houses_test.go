package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func evenCusps() [12]float64 {
	var cusps [12]float64
	for i := 0; i < 12; i++ {
		cusps[i] = float64(i) * 30.0
	}
	return cusps
}

// Placidus-shaped cusps wrapping past 0° between houses 12 and 2.
func wrappedCusps() [12]float64 {
	return [12]float64{10, 38, 64, 95, 128, 160, 190, 218, 244, 275, 308, 350}
}

func TestHouseOf_EvenWheel(t *testing.T) {
	cusps := evenCusps()

	assert.Equal(t, 1, HouseOf(0, cusps))
	assert.Equal(t, 1, HouseOf(29.999, cusps))
	assert.Equal(t, 2, HouseOf(30, cusps), "cusp boundary belongs to the starting house")
	assert.Equal(t, 7, HouseOf(185, cusps))
	assert.Equal(t, 12, HouseOf(359.999, cusps))
}

func TestHouseOf_Wraparound(t *testing.T) {
	cusps := wrappedCusps() // House12=350, House1=10

	assert.Equal(t, 12, HouseOf(5, cusps), "5° falls after 350° across 0°")
	assert.Equal(t, 12, HouseOf(355, cusps))
	assert.Equal(t, 1, HouseOf(15, cusps))
	assert.Equal(t, 1, HouseOf(10, cusps), "point on cusp 1 is in house 1")
	assert.Equal(t, 12, HouseOf(350, cusps), "point on cusp 12 is in house 12")
}

func TestHouseOf_EveryLongitudeGetsExactlyOneHouse(t *testing.T) {
	cusps := wrappedCusps()

	for lon := 0.0; lon < 360.0; lon += 0.25 {
		h := HouseOf(lon, cusps)
		assert.GreaterOrEqual(t, h, 1, "longitude %v", lon)
		assert.LessOrEqual(t, h, 12, "longitude %v", lon)
	}
}

func TestHouseOf_ClosestCuspFallback(t *testing.T) {
	// Degenerate cusp data (all zeros) never matches a pair; the fallback
	// must still return a definite house.
	var degenerate [12]float64
	h := HouseOf(123.4, degenerate)
	assert.GreaterOrEqual(t, h, 1)
	assert.LessOrEqual(t, h, 12)
}

func TestWrapDistance(t *testing.T) {
	assert.InDelta(t, 10.0, wrapDistance(355, 5), 1e-9)
	assert.InDelta(t, 180.0, wrapDistance(0, 180), 1e-9)
	assert.InDelta(t, 0.0, wrapDistance(42, 42), 1e-9)
}
