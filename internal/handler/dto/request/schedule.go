package request

import (
	"venue-pricing/internal/domain/tariff"
	"venue-pricing/internal/pkg/patch"

	"github.com/google/uuid"
)

// ScheduleRuleRequest carries a recurring rule. Days run 0 (Monday) to 6 (Sunday).
type ScheduleRuleRequest struct {
	ID                 *uuid.UUID `json:"id"`
	Category           string     `json:"category" binding:"omitempty,oneof=basic extra"`
	StartDay           *int       `json:"start_day" binding:"required,min=0,max=6"`
	EndDay             *int       `json:"end_day" binding:"required,min=0,max=6"`
	StartTime          string     `json:"start_time" binding:"required"`
	EndTime            string     `json:"end_time" binding:"required"`
	Rate               *float64   `json:"rate" binding:"required,min=0"`
	RateBasis          string     `json:"rate_basis" binding:"required"`
	ExclusivityTier    string     `json:"exclusivity_tier" binding:"omitempty,oneof=none optional mandatory"`
	ExclusiveRate      *float64   `json:"exclusive_rate" binding:"omitempty,min=0"`
	ExclusiveRateBasis string     `json:"exclusive_rate_basis"`
}

func (r *ScheduleRuleRequest) ToDomain() (tariff.RecurringRateRule, error) {
	start, err := tariff.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return tariff.RecurringRateRule{}, err
	}
	end, err := tariff.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return tariff.RecurringRateRule{}, err
	}
	basis, err := tariff.ParseRateBasis(r.RateBasis)
	if err != nil {
		return tariff.RecurringRateRule{}, err
	}
	tier, err := tariff.ParseExclusivityTier(r.ExclusivityTier)
	if err != nil {
		return tariff.RecurringRateRule{}, err
	}
	var exclusiveBasis tariff.RateBasis
	if r.ExclusiveRateBasis != "" {
		if exclusiveBasis, err = tariff.ParseRateBasis(r.ExclusiveRateBasis); err != nil {
			return tariff.RecurringRateRule{}, err
		}
	}
	category := tariff.CategoryBasic
	if r.Category != "" {
		category = tariff.RuleCategory(r.Category)
	}

	rule := tariff.RecurringRateRule{
		ID:                 patch.Coalesce(r.ID, uuid.Nil),
		Category:           category,
		StartDay:           tariff.WeekDay(*r.StartDay),
		EndDay:             tariff.WeekDay(*r.EndDay),
		StartTime:          start,
		EndTime:            end,
		Rate:               *r.Rate,
		RateBasis:          basis,
		ExclusivityTier:    tier,
		ExclusiveRate:      r.ExclusiveRate,
		ExclusiveRateBasis: exclusiveBasis,
	}
	if err := rule.Validate(); err != nil {
		return tariff.RecurringRateRule{}, err
	}
	return rule, nil
}

type OverlapRequest struct {
	First  ScheduleRuleRequest `json:"first"`
	Second ScheduleRuleRequest `json:"second"`
}
