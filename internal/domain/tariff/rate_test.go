//go:build unit

package tariff_test

import (
	"testing"

	"venue-pricing/internal/domain/tariff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateBasisScale(t *testing.T) {
	cases := []struct {
		basis         tariff.RateBasis
		wantScale     float64
		wantHeadcount float64
	}{
		{tariff.RateBasisFlatOnce, 10, 10},
		{tariff.RateBasisPerDay, 10, 10},
		{tariff.RateBasisPerHour, 30, 30},
		{tariff.RateBasisPerPerson, 120, 40},
		{tariff.RateBasisFree, 0, 0},
		{tariff.RateBasisConsumption, 0, 0},
		{tariff.RateBasisNone, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.basis.String(), func(t *testing.T) {
			assert.InDelta(t, c.wantScale, c.basis.Scale(10, 3, 4), eps)
			assert.InDelta(t, c.wantHeadcount, c.basis.ScaleHeadcount(10, 3, 4), eps)
		})
	}
}

func TestParseRateBasis(t *testing.T) {
	got, err := tariff.ParseRateBasis("per_person")
	require.NoError(t, err)
	assert.Equal(t, tariff.RateBasisPerPerson, got)

	_, err = tariff.ParseRateBasis("per_minute")
	require.ErrorIs(t, err, tariff.ErrUnknownRateBasis)

	_, err = tariff.ParseRateBasis("")
	require.ErrorIs(t, err, tariff.ErrUnknownRateBasis)
}

func TestRateBasisKinds(t *testing.T) {
	assert.True(t, tariff.RateBasisFlatOnce.IsFlat())
	assert.True(t, tariff.RateBasisPerDay.IsFlat())
	assert.False(t, tariff.RateBasisPerHour.IsFlat())

	assert.True(t, tariff.RateBasisFree.ChargesNothing())
	assert.True(t, tariff.RateBasisConsumption.ChargesNothing())
	assert.False(t, tariff.RateBasisPerPerson.ChargesNothing())
}

func TestParseExclusivityTier(t *testing.T) {
	got, err := tariff.ParseExclusivityTier("")
	require.NoError(t, err)
	assert.Equal(t, tariff.ExclusivityNone, got)

	got, err = tariff.ParseExclusivityTier("mandatory")
	require.NoError(t, err)
	assert.Equal(t, tariff.ExclusivityMandatory, got)

	_, err = tariff.ParseExclusivityTier("sometimes")
	require.ErrorIs(t, err, tariff.ErrUnknownExclusivityTier)
}

func TestContributionsIncludes(t *testing.T) {
	var all tariff.Contributions
	assert.True(t, all.Includes(tariff.ContributionRate))
	assert.True(t, all.Includes(tariff.ContributionExclusive))

	onlyRate := tariff.Contributions{tariff.ContributionRate}
	assert.True(t, onlyRate.Includes(tariff.ContributionRate))
	assert.False(t, onlyRate.Includes(tariff.ContributionExclusive))
}
