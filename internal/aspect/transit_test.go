package aspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestExactMatch_ApplyingGetsLooserOrb(t *testing.T) {
	// Transit at 91.2°, natal at 0°: square orb 1.2. Yesterday 92.5° (orb
	// 2.5), so the orb is shrinking: applying, admitted under 1.5°.
	m, ok := ExactMatch(91.2, 0, fptr(92.5))
	require.True(t, ok)
	assert.Equal(t, Square, m.Kind)
	assert.True(t, m.Applying)
	assert.InDelta(t, 1.2, m.Orb, 1e-9)
}

func TestExactMatch_SeparatingRejectedPastOneDegree(t *testing.T) {
	// Same 1.2° orb but growing (yesterday 0.5°): separating, limit 1.0°.
	_, ok := ExactMatch(91.2, 0, fptr(90.5))
	assert.False(t, ok)
}

func TestExactMatch_SeparatingWithinLimit(t *testing.T) {
	m, ok := ExactMatch(90.8, 0, fptr(90.2))
	require.True(t, ok)
	assert.Equal(t, Square, m.Kind)
	assert.False(t, m.Applying)
	assert.InDelta(t, 0.8, m.Orb, 1e-9)
}

func TestExactMatch_NoPreviousUsesConservativeLimit(t *testing.T) {
	// Without a previous position, 1.2° must be rejected (separating limit).
	_, ok := ExactMatch(91.2, 0, nil)
	assert.False(t, ok)

	m, ok := ExactMatch(90.9, 0, nil)
	require.True(t, ok)
	assert.False(t, m.Applying)
}

func TestExactMatch_WraparoundConjunction(t *testing.T) {
	m, ok := ExactMatch(359.6, 0.2, fptr(358.9))
	require.True(t, ok)
	assert.Equal(t, Conjunction, m.Kind)
	assert.InDelta(t, 0.6, m.Orb, 1e-9)
	assert.True(t, m.Applying)
}

func TestExactMatch_NoAspect(t *testing.T) {
	_, ok := ExactMatch(45, 0, fptr(44))
	assert.False(t, ok)
}
