//go:build unit

package tariff_test

import (
	"testing"

	"venue-pricing/internal/domain/tariff"
	"venue-pricing/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindApplicableRules(t *testing.T) {
	mondayMorning := builder.NewRuleBuilder().OnDay(tariff.Monday).WithTimes("09:00:00", "11:00:00").Build()
	tuesdayMorning := builder.NewRuleBuilder().OnDay(tariff.Tuesday).WithTimes("09:00:00", "11:00:00").Build()
	mondayNoon := builder.NewRuleBuilder().OnDay(tariff.Monday).WithTimes("12:00:00", "13:00:00").Build()
	mondayAfternoon := builder.NewRuleBuilder().OnDay(tariff.Monday).WithTimes("13:00:00", "14:00:00").Build()

	t.Run("matches by day and time of day, inclusive at the boundary", func(t *testing.T) {
		interval := tariff.NewSpan(builder.June2025(2, 10, 0), builder.June2025(2, 12, 0))
		rules := []tariff.RecurringRateRule{mondayAfternoon, tuesdayMorning, mondayNoon, mondayMorning}

		got, err := tariff.FindApplicableRules(interval, rules)
		require.NoError(t, err)
		assert.Equal(t, []tariff.RecurringRateRule{mondayNoon, mondayMorning}, got)
	})

	t.Run("a rule matching many days is returned once", func(t *testing.T) {
		daily := builder.NewRuleBuilder().Build()
		interval := tariff.NewSpan(builder.June2025(2, 8, 0), builder.June2025(6, 20, 0))

		got, err := tariff.FindApplicableRules(interval, []tariff.RecurringRateRule{daily, daily})
		require.NoError(t, err)
		assert.Equal(t, []tariff.RecurringRateRule{daily}, got)
	})

	t.Run("an overnight window applies on the day it opens", func(t *testing.T) {
		overnight := builder.NewRuleBuilder().OnDay(tariff.Monday).WithTimes("22:00:00", "02:00:00").Build()
		interval := tariff.NewSpan(builder.June2025(3, 1, 0), builder.June2025(3, 3, 0))

		got, err := tariff.FindApplicableRules(interval, []tariff.RecurringRateRule{overnight})
		require.NoError(t, err)
		assert.Empty(t, got, "tuesday booking does not touch monday")

		interval = tariff.NewSpan(builder.June2025(2, 23, 0), builder.June2025(3, 1, 0))
		got, err = tariff.FindApplicableRules(interval, []tariff.RecurringRateRule{overnight})
		require.NoError(t, err)
		assert.Equal(t, []tariff.RecurringRateRule{overnight}, got)
	})

	t.Run("equal start and end reads as a full day", func(t *testing.T) {
		allDay := builder.NewRuleBuilder().OnDay(tariff.Monday).WithTimes("10:00:00", "10:00:00").WithRate(7, tariff.RateBasisFlatOnce).Build()
		interval := tariff.NewSpan(builder.June2025(2, 11, 0), builder.June2025(2, 12, 0))

		got, err := tariff.FindApplicableRules(interval, []tariff.RecurringRateRule{allDay})
		require.NoError(t, err)
		assert.Equal(t, []tariff.RecurringRateRule{allDay}, got)

		price, err := tariff.ComputeRoomPrice(tariff.BookingRequest{Start: interval.Start, End: interval.End, Persons: 1},
			builder.NewTariffBuilder().WithRules(allDay).Build())
		require.NoError(t, err)
		assert.InDelta(t, 10.0, price, 1e-9, "calculator treats the same window as empty")
	})

	t.Run("a booking on another day matches nothing", func(t *testing.T) {
		interval := tariff.NewSpan(builder.June2025(4, 9, 0), builder.June2025(4, 11, 0))

		got, err := tariff.FindApplicableRules(interval, []tariff.RecurringRateRule{mondayMorning, tuesdayMorning})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("week-long bookings see every rule", func(t *testing.T) {
		interval := tariff.NewSpan(builder.June2025(2, 0, 0), builder.June2025(9, 0, 0))
		rules := []tariff.RecurringRateRule{mondayMorning, tuesdayMorning, mondayNoon}

		got, err := tariff.FindApplicableRules(interval, rules)
		require.NoError(t, err)
		assert.Equal(t, rules, got)
	})

	t.Run("rejects an empty interval", func(t *testing.T) {
		at := builder.June2025(2, 10, 0)
		_, err := tariff.FindApplicableRules(tariff.NewSpan(at, at), []tariff.RecurringRateRule{mondayMorning})
		require.ErrorIs(t, err, tariff.ErrInvalidBookingInterval)
	})
}
