package tariff

import (
	"math"
	"time"

	"venue-pricing/internal/pkg/errs"

	"github.com/google/uuid"
)

// anchorMonday is the reference week every recurring rule is laid onto
// when two rules are compared. UTC keeps the anchor free of DST shifts.
var anchorMonday = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// RecurringRateRule is a weekly pricing slot. The window opens at StartTime on
// every day from StartDay to EndDay (wrapping past Sunday) and closes at
// EndTime, on the following day when EndTime is earlier than StartTime.
type RecurringRateRule struct {
	ID        uuid.UUID
	Category  RuleCategory
	StartDay  WeekDay
	EndDay    WeekDay
	StartTime TimeOfDay
	EndTime   TimeOfDay
	Rate      float64
	RateBasis RateBasis

	ExclusivityTier    ExclusivityTier
	ExclusiveRate      *float64
	ExclusiveRateBasis RateBasis
}

func (r RecurringRateRule) Validate() error {
	if !r.StartDay.Valid() || !r.EndDay.Valid() {
		return errs.Wrapf(ErrInvalidWeekDay, "rule %s: days %d-%d", r.ID, r.StartDay, r.EndDay)
	}
	if !r.StartTime.Valid() || !r.EndTime.Valid() {
		return errs.Wrapf(ErrInvalidTimeOfDay, "rule %s", r.ID)
	}
	if r.Category != "" {
		if _, err := ParseRuleCategory(string(r.Category)); err != nil {
			return errs.Wrapf(err, "rule %s", r.ID)
		}
	}
	if _, err := ParseExclusivityTier(string(r.ExclusivityTier)); err != nil {
		return errs.Wrapf(err, "rule %s", r.ID)
	}
	if err := validateRate(r.Rate); err != nil {
		return errs.Wrapf(err, "rule %s", r.ID)
	}
	if !r.RateBasis.Valid() {
		return errs.Wrapf(ErrUnknownRateBasis, "rule %s: %q", r.ID, r.RateBasis)
	}
	if r.ExclusiveRate != nil {
		if err := validateRate(*r.ExclusiveRate); err != nil {
			return errs.Wrapf(err, "rule %s: exclusive rate", r.ID)
		}
	}
	if r.ExclusiveRateBasis != "" && !r.ExclusiveRateBasis.Valid() {
		return errs.Wrapf(ErrUnknownRateBasis, "rule %s: exclusive %q", r.ID, r.ExclusiveRateBasis)
	}
	return nil
}

// IsBasic reports whether the rule takes part in the no-overlap invariant.
// Rules without a category are treated as basic.
func (r RecurringRateRule) IsBasic() bool {
	return r.Category == "" || r.Category == CategoryBasic
}

func (r RecurringRateRule) days() daySet {
	return cyclicRange(r.StartDay, r.EndDay)
}

// windowOn builds the concrete window opening on day's calendar date.
// With wrapOnEqual a window whose end equals its start lasts a full day.
func (r RecurringRateRule) windowOn(day time.Time, wrapOnEqual bool) Span {
	start := r.StartTime.On(day)
	endDay := day
	if r.EndTime < r.StartTime || (wrapOnEqual && r.EndTime == r.StartTime) {
		endDay = day.AddDate(0, 0, 1)
	}
	return Span{Start: start, End: r.EndTime.On(endDay)}
}

// weeklySpan lays the rule onto the anchor week as one continuous window.
func (r RecurringRateRule) weeklySpan() Span {
	start := r.StartTime.On(anchorMonday.AddDate(0, 0, int(r.StartDay)))
	end := r.EndTime.On(anchorMonday.AddDate(0, 0, int(r.EndDay)))
	if !end.After(start) {
		end = end.AddDate(0, 0, daysPerWeek)
	}
	return Span{Start: start, End: end}
}

func (r RecurringRateRule) exclusiveApplies(bookingIsExclusive bool) bool {
	return bookingIsExclusive &&
		r.ExclusivityTier != "" && r.ExclusivityTier != ExclusivityNone &&
		r.ExclusiveRate != nil && r.ExclusiveRateBasis != ""
}

// SeatingOption is a furniture layout with its own surcharge and an optional
// fee for reconfiguring the room into it.
type SeatingOption struct {
	Key        string
	RateBasis  RateBasis
	IsAbsolute bool
	Rate       float64
	IsDefault  bool

	ReconfigRateBasis  RateBasis
	ReconfigIsAbsolute bool
	ReconfigRate       *float64
}

func (s SeatingOption) Validate() error {
	if err := validateRate(s.Rate); err != nil {
		return errs.Wrapf(err, "seating %q", s.Key)
	}
	if !s.RateBasis.Valid() {
		return errs.Wrapf(ErrUnknownRateBasis, "seating %q: %q", s.Key, s.RateBasis)
	}
	if s.ReconfigRate != nil {
		if err := validateRate(*s.ReconfigRate); err != nil {
			return errs.Wrapf(err, "seating %q: reconfiguration", s.Key)
		}
	}
	if s.ReconfigRateBasis != "" && !s.ReconfigRateBasis.Valid() {
		return errs.Wrapf(ErrUnknownRateBasis, "seating %q: reconfiguration %q", s.Key, s.ReconfigRateBasis)
	}
	return nil
}

func (s SeatingOption) hasReconfiguration() bool {
	return s.ReconfigRateBasis != "" && s.ReconfigRateBasis != RateBasisNone && s.ReconfigRate != nil
}

// RoomTariff is everything needed to price one room.
type RoomTariff struct {
	BaseRate      float64
	BaseRateBasis RateBasis
	Schedules     []RecurringRateRule
	Seatings      []SeatingOption
}

func (t RoomTariff) Validate() error {
	if err := validateRate(t.BaseRate); err != nil {
		return errs.Wrap(err, "base rate")
	}
	if !t.BaseRateBasis.Valid() {
		return errs.Wrapf(ErrUnknownRateBasis, "base rate basis %q", t.BaseRateBasis)
	}
	for _, r := range t.Schedules {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	for _, s := range t.Seatings {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// BookingRequest is one room booking to be priced.
type BookingRequest struct {
	Start              time.Time
	End                time.Time
	Persons            int
	IsExclusive        bool
	SelectedSeatingKey string
	Contributions      Contributions
}

func (b BookingRequest) Validate() error {
	if err := validateInterval(b.Start, b.End); err != nil {
		return err
	}
	if b.Persons < 1 {
		return errs.Wrapf(ErrInvalidHeadcount, "got %d", b.Persons)
	}
	for _, c := range b.Contributions {
		if _, err := ParseContribution(string(c)); err != nil {
			return err
		}
	}
	return nil
}

// Span returns the booking interval expressed in the start instant's location.
func (b BookingRequest) Span() Span {
	return Span{Start: b.Start, End: b.End.In(b.Start.Location())}
}

func validateRate(v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return errs.Wrapf(ErrInvalidRateValue, "got %v", v)
	}
	return nil
}

func validateInterval(start, end time.Time) error {
	if !end.After(start) {
		return errs.Wrapf(ErrInvalidBookingInterval, "%s - %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return nil
}
