package tariff

// RoomBreakdown itemises a room price.
type RoomBreakdown struct {
	// RuleCharges sums the rate contributions of every covering rule.
	RuleCharges float64
	// ExclusiveCharges sums the exclusivity upcharges.
	ExclusiveCharges float64
	// BaseCharge is the base rate for time no rule covered, or the flat
	// base rate when nothing was covered at all.
	BaseCharge    float64
	SeatingCharge float64
	// Covered is the merged, time-ordered coverage of all rules.
	Covered []Span
	Total   float64
}

func (b RoomBreakdown) Subtotal() float64 {
	return b.RuleCharges + b.ExclusiveCharges + b.BaseCharge
}

// ComputeRoomPrice prices one room for one booking.
func ComputeRoomPrice(req BookingRequest, t RoomTariff) (float64, error) {
	b, err := ComputeRoomBreakdown(req, t)
	if err != nil {
		return 0, err
	}
	return b.Total, nil
}

// ComputeRoomBreakdown walks the booking day by day against every recurring
// rule, charges each rule for the part of the booking its window covers,
// charges the base rate for whatever time is left uncovered and adds the
// seating surcharge on top. Inputs are read only.
func ComputeRoomBreakdown(req BookingRequest, t RoomTariff) (RoomBreakdown, error) {
	if err := req.Validate(); err != nil {
		return RoomBreakdown{}, err
	}
	if err := t.Validate(); err != nil {
		return RoomBreakdown{}, err
	}

	interval := req.Span()
	var (
		b       RoomBreakdown
		covered []Span
	)
	for _, r := range t.Schedules {
		segments := coveredSegments(r, interval)
		for _, seg := range segments {
			hours := seg.Hours()
			if req.Contributions.Includes(ContributionRate) {
				b.RuleCharges += r.RateBasis.Scale(r.Rate, hours, req.Persons)
			}
			if req.Contributions.Includes(ContributionExclusive) && r.exclusiveApplies(req.IsExclusive) {
				b.ExclusiveCharges += r.ExclusiveRateBasis.ScaleHeadcount(*r.ExclusiveRate, hours, req.Persons)
			}
		}
		covered = append(covered, segments...)
	}

	if len(covered) == 0 {
		switch {
		case t.BaseRateBasis.IsFlat():
			b.BaseCharge = t.BaseRate
			b.SeatingCharge = SeatingSurcharge(b.Subtotal(), interval, req.Persons, t.Seatings, req.SelectedSeatingKey)
			b.Total = b.Subtotal() + b.SeatingCharge
			return b, nil
		case t.BaseRateBasis.ChargesNothing():
			return b, nil
		}
	}

	b.Covered = MergeSpans(covered)
	b.BaseCharge = leftoverCharge(interval, b.Covered, t, req.Persons)
	b.SeatingCharge = SeatingSurcharge(b.Subtotal(), interval, req.Persons, t.Seatings, req.SelectedSeatingKey)
	b.Total = b.Subtotal() + b.SeatingCharge
	return b, nil
}

// coveredSegments returns the non-empty intersections of the rule's daily
// windows with the interval, one per calendar day the window opens on.
func coveredSegments(r RecurringRateRule, interval Span) []Span {
	ruleDays := r.days()
	if !ruleDays.intersects(touchedDays(interval)) {
		return nil
	}

	var segments []Span
	for _, day := range calendarDays(interval) {
		if !ruleDays.has(WeekDayOf(day)) {
			continue
		}
		if seg, ok := r.windowOn(day, false).Intersect(interval); ok {
			segments = append(segments, seg)
		}
	}
	return segments
}

// leftoverCharge bills the base rate for the gaps between merged coverage.
func leftoverCharge(interval Span, merged []Span, t RoomTariff, persons int) float64 {
	if t.BaseRateBasis.ChargesNothing() {
		return 0
	}
	gapCharge := func(gap Span) float64 {
		amount := t.BaseRate * gap.Hours()
		if t.BaseRateBasis == RateBasisPerPerson {
			amount *= float64(persons)
		}
		return amount
	}

	var total float64
	cursor := interval.Start
	for _, m := range merged {
		if m.Start.After(cursor) {
			total += gapCharge(Span{Start: cursor, End: m.Start})
		}
		if m.End.After(cursor) {
			cursor = m.End
		}
	}
	if interval.End.After(cursor) {
		total += gapCharge(Span{Start: cursor, End: interval.End})
	}
	return total
}
