package tariff

// SeatingSurcharge prices the selected seating, or the default one when no
// key is given or the key matches nothing. Percentage rates apply to
// subtotal; every amount is then scaled by its basis over the whole interval.
func SeatingSurcharge(subtotal float64, interval Span, persons int, seatings []SeatingOption, key string) float64 {
	opt, ok := selectSeating(seatings, key)
	if !ok {
		return 0
	}

	hours := interval.Hours()
	amount := opt.RateBasis.Scale(seatingBase(subtotal, opt.Rate, opt.IsAbsolute), hours, persons)
	if opt.hasReconfiguration() {
		amount += opt.ReconfigRateBasis.Scale(seatingBase(subtotal, *opt.ReconfigRate, opt.ReconfigIsAbsolute), hours, persons)
	}
	return amount
}

func selectSeating(seatings []SeatingOption, key string) (SeatingOption, bool) {
	if key != "" {
		for _, s := range seatings {
			if s.Key == key {
				return s, true
			}
		}
	}
	for _, s := range seatings {
		if s.IsDefault {
			return s, true
		}
	}
	return SeatingOption{}, false
}

func seatingBase(subtotal, rate float64, absolute bool) float64 {
	if absolute {
		return rate
	}
	return subtotal * rate / 100
}
