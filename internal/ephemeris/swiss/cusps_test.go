package swiss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCusps_TwelveElements(t *testing.T) {
	raw := []float64{10, 40, 70, 100, 130, 160, 190, 220, 250, 280, 310, 340}

	out, err := normalizeCusps(raw)
	require.NoError(t, err)

	assert.Equal(t, 10.0, out[0], "house 1 cusp")
	assert.Equal(t, 340.0, out[11], "house 12 cusp")
}

func TestNormalizeCusps_ThirteenElements(t *testing.T) {
	// Index 0 is the library's unused placeholder and must be skipped.
	raw := []float64{0, 10, 40, 70, 100, 130, 160, 190, 220, 250, 280, 310, 340}

	out, err := normalizeCusps(raw)
	require.NoError(t, err)

	assert.Equal(t, 10.0, out[0], "house 1 cusp")
	assert.Equal(t, 340.0, out[11], "house 12 cusp")
}

func TestNormalizeCusps_BothShapesAgree(t *testing.T) {
	twelve := []float64{5, 35, 65, 95, 125, 155, 185, 215, 245, 275, 305, 335}
	thirteen := append([]float64{0}, twelve...)

	a, err := normalizeCusps(twelve)
	require.NoError(t, err)
	b, err := normalizeCusps(thirteen)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestNormalizeCusps_TooShort(t *testing.T) {
	_, err := normalizeCusps([]float64{1, 2, 3})
	assert.Error(t, err)
}
