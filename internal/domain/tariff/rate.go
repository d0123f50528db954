package tariff

import (
	"slices"

	"venue-pricing/internal/pkg/errs"
)

// RateBasis decides how a rate is multiplied into a charge.
type RateBasis string

const (
	RateBasisFlatOnce  RateBasis = "once"
	RateBasisPerHour   RateBasis = "per_hour"
	RateBasisPerPerson RateBasis = "per_person"
	RateBasisFree      RateBasis = "free"
	// RateBasisPerDay is legacy data; priced exactly like RateBasisFlatOnce.
	RateBasisPerDay RateBasis = "per_day"
	// RateBasisConsumption marks rooms paid through catering spend; never charged here.
	RateBasisConsumption RateBasis = "consumption"
	// RateBasisNone only appears on optional reconfiguration fees.
	RateBasisNone RateBasis = "none"
)

func ParseRateBasis(s string) (RateBasis, error) {
	b := RateBasis(s)
	if !b.Valid() {
		return "", errs.Wrapf(ErrUnknownRateBasis, "%q", s)
	}
	return b, nil
}

func (b RateBasis) Valid() bool {
	switch b {
	case RateBasisFlatOnce, RateBasisPerHour, RateBasisPerPerson, RateBasisFree,
		RateBasisPerDay, RateBasisConsumption, RateBasisNone:
		return true
	default:
		return false
	}
}

func (b RateBasis) String() string {
	return string(b)
}

// IsFlat reports whether the basis charges a fixed amount regardless of duration.
func (b RateBasis) IsFlat() bool {
	return b == RateBasisFlatOnce || b == RateBasisPerDay
}

// ChargesNothing reports whether the basis never yields an amount.
func (b RateBasis) ChargesNothing() bool {
	switch b {
	case RateBasisFree, RateBasisConsumption, RateBasisNone:
		return true
	default:
		return false
	}
}

// Scale multiplies amount for a span of hours and a party of persons.
// per_person multiplies by both the duration and the headcount.
func (b RateBasis) Scale(amount, hours float64, persons int) float64 {
	switch b {
	case RateBasisFlatOnce, RateBasisPerDay:
		return amount
	case RateBasisPerHour:
		return amount * hours
	case RateBasisPerPerson:
		return amount * hours * float64(persons)
	case RateBasisFree, RateBasisConsumption, RateBasisNone:
		return 0
	default:
		return 0
	}
}

// ScaleHeadcount is Scale except that per_person ignores the duration.
func (b RateBasis) ScaleHeadcount(amount, hours float64, persons int) float64 {
	if b == RateBasisPerPerson {
		return amount * float64(persons)
	}
	return b.Scale(amount, hours, persons)
}

// ExclusivityTier states whether a rule's window may be booked exclusively.
type ExclusivityTier string

const (
	ExclusivityNone      ExclusivityTier = "none"
	ExclusivityOptional  ExclusivityTier = "optional"
	ExclusivityMandatory ExclusivityTier = "mandatory"
)

func ParseExclusivityTier(s string) (ExclusivityTier, error) {
	t := ExclusivityTier(s)
	switch t {
	case ExclusivityNone, ExclusivityOptional, ExclusivityMandatory:
		return t, nil
	case "":
		return ExclusivityNone, nil
	default:
		return "", errs.Wrapf(ErrUnknownExclusivityTier, "%q", s)
	}
}

// RuleCategory separates basic rules, which must never overlap, from stackable extras.
type RuleCategory string

const (
	CategoryBasic RuleCategory = "basic"
	CategoryExtra RuleCategory = "extra"
)

func ParseRuleCategory(s string) (RuleCategory, error) {
	c := RuleCategory(s)
	switch c {
	case CategoryBasic, CategoryExtra:
		return c, nil
	default:
		return "", errs.Wrapf(ErrUnknownRuleCategory, "%q", s)
	}
}

// Contribution names a part of a rule's charge a caller wants summed.
type Contribution string

const (
	ContributionRate      Contribution = "rate"
	ContributionExclusive Contribution = "exclusive"
)

func ParseContribution(s string) (Contribution, error) {
	c := Contribution(s)
	switch c {
	case ContributionRate, ContributionExclusive:
		return c, nil
	default:
		return "", errs.Wrapf(ErrUnknownContribution, "%q", s)
	}
}

// Contributions is a filter over rule charges; the empty filter selects all.
type Contributions []Contribution

func (cs Contributions) Includes(c Contribution) bool {
	return len(cs) == 0 || slices.Contains(cs, c)
}
