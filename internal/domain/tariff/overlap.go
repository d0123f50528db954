package tariff

import "github.com/google/uuid"

// RulesOverlap reports whether two weekly rules ever cover the same moment.
//
// Both rules are laid onto the same anchor week as continuous windows. A
// window that ends before it starts runs into the next week, so the pair is
// compared as-is and with each side shifted one week forward; any of the
// three comparisons overlapping means the rules collide. Windows that only
// touch at an endpoint do not overlap.
func RulesOverlap(a, b RecurringRateRule) (bool, error) {
	if err := a.Validate(); err != nil {
		return false, err
	}
	if err := b.Validate(); err != nil {
		return false, err
	}

	sa, sb := a.weeklySpan(), b.weeklySpan()
	return sa.Overlaps(sb) ||
		sa.Overlaps(sb.shift(daysPerWeek)) ||
		sa.shift(daysPerWeek).Overlaps(sb), nil
}

// FindOverlappingRules returns the existing basic rules that collide with
// candidate. Extra rules may stack freely, so a non-basic candidate never
// conflicts. An existing rule with the candidate's ID is the candidate
// itself being edited and is skipped.
func FindOverlappingRules(candidate RecurringRateRule, existing []RecurringRateRule) ([]RecurringRateRule, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}
	if !candidate.IsBasic() {
		return nil, nil
	}

	var conflicts []RecurringRateRule
	for _, r := range existing {
		if !r.IsBasic() {
			continue
		}
		if candidate.ID != uuid.Nil && r.ID == candidate.ID {
			continue
		}
		overlap, err := RulesOverlap(candidate, r)
		if err != nil {
			return nil, err
		}
		if overlap {
			conflicts = append(conflicts, r)
		}
	}
	return conflicts, nil
}
