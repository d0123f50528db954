//go:build unit || e2e

package builder

import (
	"time"

	"venue-pricing/internal/domain/tariff"

	"github.com/google/uuid"
)

// June2025 returns an instant in the week starting Monday 2 June 2025 (UTC).
// day 2 is Monday, day 8 is Sunday.
func June2025(day, hour, minute int) time.Time {
	return time.Date(2025, time.June, day, hour, minute, 0, 0, time.UTC)
}

// ------------------------------------------------------------
// RuleBuilder
// ------------------------------------------------------------

type RuleBuilder struct {
	rule tariff.RecurringRateRule
}

// NewRuleBuilder starts from a free basic rule covering 09:00-17:00 every day.
func NewRuleBuilder() *RuleBuilder {
	return &RuleBuilder{
		rule: tariff.RecurringRateRule{
			ID:              uuid.New(),
			Category:        tariff.CategoryBasic,
			StartDay:        tariff.Monday,
			EndDay:          tariff.Sunday,
			StartTime:       tariff.MustTimeOfDay("09:00:00"),
			EndTime:         tariff.MustTimeOfDay("17:00:00"),
			Rate:            0,
			RateBasis:       tariff.RateBasisFree,
			ExclusivityTier: tariff.ExclusivityNone,
		},
	}
}

func (b *RuleBuilder) With(mutate func(*tariff.RecurringRateRule)) *RuleBuilder {
	mutate(&b.rule)
	return b
}

func (b *RuleBuilder) WithID(id uuid.UUID) *RuleBuilder {
	b.rule.ID = id
	return b
}

func (b *RuleBuilder) WithDays(start, end tariff.WeekDay) *RuleBuilder {
	b.rule.StartDay = start
	b.rule.EndDay = end
	return b
}

func (b *RuleBuilder) OnDay(day tariff.WeekDay) *RuleBuilder {
	return b.WithDays(day, day)
}

func (b *RuleBuilder) WithTimes(start, end string) *RuleBuilder {
	b.rule.StartTime = tariff.MustTimeOfDay(start)
	b.rule.EndTime = tariff.MustTimeOfDay(end)
	return b
}

func (b *RuleBuilder) WithRate(rate float64, basis tariff.RateBasis) *RuleBuilder {
	b.rule.Rate = rate
	b.rule.RateBasis = basis
	return b
}

func (b *RuleBuilder) WithExclusive(tier tariff.ExclusivityTier, rate float64, basis tariff.RateBasis) *RuleBuilder {
	b.rule.ExclusivityTier = tier
	b.rule.ExclusiveRate = &rate
	b.rule.ExclusiveRateBasis = basis
	return b
}

func (b *RuleBuilder) AsExtra() *RuleBuilder {
	b.rule.Category = tariff.CategoryExtra
	return b
}

func (b *RuleBuilder) Build() tariff.RecurringRateRule {
	return b.rule
}

// ------------------------------------------------------------
// SeatingBuilder
// ------------------------------------------------------------

type SeatingBuilder struct {
	seating tariff.SeatingOption
}

// NewSeatingBuilder starts from a free absolute seating keyed "banquet".
func NewSeatingBuilder() *SeatingBuilder {
	return &SeatingBuilder{
		seating: tariff.SeatingOption{
			Key:        "banquet",
			RateBasis:  tariff.RateBasisFree,
			IsAbsolute: true,
		},
	}
}

func (b *SeatingBuilder) WithKey(key string) *SeatingBuilder {
	b.seating.Key = key
	return b
}

func (b *SeatingBuilder) Absolute(rate float64, basis tariff.RateBasis) *SeatingBuilder {
	b.seating.IsAbsolute = true
	b.seating.Rate = rate
	b.seating.RateBasis = basis
	return b
}

func (b *SeatingBuilder) Percent(rate float64, basis tariff.RateBasis) *SeatingBuilder {
	b.seating.IsAbsolute = false
	b.seating.Rate = rate
	b.seating.RateBasis = basis
	return b
}

func (b *SeatingBuilder) WithReconfig(rate float64, basis tariff.RateBasis, absolute bool) *SeatingBuilder {
	b.seating.ReconfigRate = &rate
	b.seating.ReconfigRateBasis = basis
	b.seating.ReconfigIsAbsolute = absolute
	return b
}

func (b *SeatingBuilder) AsDefault() *SeatingBuilder {
	b.seating.IsDefault = true
	return b
}

func (b *SeatingBuilder) Build() tariff.SeatingOption {
	return b.seating
}

// ------------------------------------------------------------
// TariffBuilder
// ------------------------------------------------------------

type TariffBuilder struct {
	tariff tariff.RoomTariff
}

// NewTariffBuilder starts from a 10/hour room without rules or seatings.
func NewTariffBuilder() *TariffBuilder {
	return &TariffBuilder{
		tariff: tariff.RoomTariff{
			BaseRate:      10,
			BaseRateBasis: tariff.RateBasisPerHour,
		},
	}
}

func (b *TariffBuilder) WithBase(rate float64, basis tariff.RateBasis) *TariffBuilder {
	b.tariff.BaseRate = rate
	b.tariff.BaseRateBasis = basis
	return b
}

func (b *TariffBuilder) WithRules(rules ...tariff.RecurringRateRule) *TariffBuilder {
	b.tariff.Schedules = append(b.tariff.Schedules, rules...)
	return b
}

func (b *TariffBuilder) WithSeatings(seatings ...tariff.SeatingOption) *TariffBuilder {
	b.tariff.Seatings = append(b.tariff.Seatings, seatings...)
	return b
}

func (b *TariffBuilder) Build() tariff.RoomTariff {
	return b.tariff
}

// ------------------------------------------------------------
// BookingRequestBuilder
// ------------------------------------------------------------

type BookingRequestBuilder struct {
	req tariff.BookingRequest
}

// NewBookingRequestBuilder starts from a single person on Monday 08:00-20:00.
func NewBookingRequestBuilder() *BookingRequestBuilder {
	return &BookingRequestBuilder{
		req: tariff.BookingRequest{
			Start:   June2025(2, 8, 0),
			End:     June2025(2, 20, 0),
			Persons: 1,
		},
	}
}

func (b *BookingRequestBuilder) WithInterval(start, end time.Time) *BookingRequestBuilder {
	b.req.Start = start
	b.req.End = end
	return b
}

func (b *BookingRequestBuilder) WithPersons(persons int) *BookingRequestBuilder {
	b.req.Persons = persons
	return b
}

func (b *BookingRequestBuilder) Exclusive() *BookingRequestBuilder {
	b.req.IsExclusive = true
	return b
}

func (b *BookingRequestBuilder) WithSeating(key string) *BookingRequestBuilder {
	b.req.SelectedSeatingKey = key
	return b
}

func (b *BookingRequestBuilder) WithContributions(cs ...tariff.Contribution) *BookingRequestBuilder {
	b.req.Contributions = cs
	return b
}

func (b *BookingRequestBuilder) Build() tariff.BookingRequest {
	return b.req
}
