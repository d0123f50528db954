package tariff

import "errors"

var (
	ErrInvalidBookingInterval = errors.New("booking end must be after start")
	ErrInvalidRateValue       = errors.New("rate cannot be negative")
	ErrInvalidHeadcount       = errors.New("persons must be at least one")
	ErrInvalidWeekDay         = errors.New("week day out of range")
	ErrInvalidTimeOfDay       = errors.New("invalid time of day")
	ErrUnknownRateBasis       = errors.New("unknown rate basis")
	ErrUnknownExclusivityTier = errors.New("unknown exclusivity tier")
	ErrUnknownRuleCategory    = errors.New("unknown rule category")
	ErrUnknownContribution    = errors.New("unknown contribution")
)
