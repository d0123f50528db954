package tariff

import "github.com/google/uuid"

// FindApplicableRules returns the rules whose weekly window meets the
// interval on at least one of the calendar days it touches. The boundary
// test is inclusive: a window ending exactly when the booking starts still
// counts. Input order is kept and every rule appears at most once.
func FindApplicableRules(interval Span, rules []RecurringRateRule) ([]RecurringRateRule, error) {
	if err := validateInterval(interval.Start, interval.End); err != nil {
		return nil, err
	}
	interval = Span{Start: interval.Start, End: interval.End.In(interval.Start.Location())}

	var (
		found []RecurringRateRule
		seen  = make(map[ruleKey]struct{}, len(rules))
	)
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		key := keyOf(r)
		if _, dup := seen[key]; dup {
			continue
		}
		if !ruleMeets(r, interval) {
			continue
		}
		seen[key] = struct{}{}
		found = append(found, r)
	}
	return found, nil
}

func ruleMeets(r RecurringRateRule, interval Span) bool {
	ruleDays := r.days()
	if !ruleDays.intersects(touchedDays(interval)) {
		return false
	}
	for _, day := range calendarDays(interval) {
		if !ruleDays.has(WeekDayOf(day)) {
			continue
		}
		if r.windowOn(day, true).Touches(interval) {
			return true
		}
	}
	return false
}

// ruleKey identifies a rule for de-duplication: by ID when it has one,
// by value otherwise.
type ruleKey struct {
	rule RecurringRateRule
}

func keyOf(r RecurringRateRule) ruleKey {
	if r.ID != uuid.Nil {
		return ruleKey{rule: RecurringRateRule{ID: r.ID}}
	}
	return ruleKey{rule: r}
}
