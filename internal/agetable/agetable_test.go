package agetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/households/internal/identity"
)

func TestNewValidatesAges(t *testing.T) {
	_, err := New([]int{0, 5, 5, 100}, []float64{0, 0, 0}, []float64{0, 0, 0})
	require.ErrorIs(t, err, ErrAgesNotIncreasing)
}

func TestNewValidatesRateLength(t *testing.T) {
	_, err := New([]int{0, 5, 100}, []float64{0, 0, 0}, []float64{0, 0})
	require.ErrorIs(t, err, ErrRateLengthMismatch)
}

func TestNewValidatesRateRange(t *testing.T) {
	_, err := New([]int{0, 100}, []float64{1.5}, []float64{0})
	require.ErrorIs(t, err, ErrRateOutOfUnitRange)
}

// TestScenarioFBoundary implements spec scenario F verbatim.
func TestScenarioFBoundary(t *testing.T) {
	table, err := New([]int{0, 1, 5, 100}, []float64{0, 0, 0}, []float64{0.4, 0.07, 0.01})
	require.NoError(t, err)

	rate, err := table.Rate(identity.Female, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.4, rate)

	rate, err = table.Rate(identity.Female, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.07, rate)

	rate, err = table.Rate(identity.Female, 99)
	require.NoError(t, err)
	assert.Equal(t, 0.01, rate)

	_, err = table.Rate(identity.Female, 100)
	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)
}

func TestNullTableAlwaysZero(t *testing.T) {
	table := Null()
	for _, age := range []int{0, 1, 50, 1000} {
		rate, err := table.Rate(identity.Male, age)
		require.NoError(t, err)
		assert.Zero(t, rate)
	}
}
