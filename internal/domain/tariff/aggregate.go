package tariff

import (
	"slices"
	"time"

	"venue-pricing/internal/pkg/errs"

	"github.com/google/uuid"
)

// Package is an add-on (catering, equipment) sold with a booking.
type Package struct {
	ID    uuid.UUID
	Name  string
	Rate  float64
	Basis RateBasis
}

func (p Package) Validate() error {
	if err := validateRate(p.Rate); err != nil {
		return errs.Wrapf(err, "package %s", p.ID)
	}
	if !p.Basis.Valid() {
		return errs.Wrapf(ErrUnknownRateBasis, "package %s: %q", p.ID, p.Basis)
	}
	return nil
}

// Charge prices the package: per_hour by duration, per_person by headcount only.
func (p Package) Charge(hours float64, persons int) float64 {
	return p.Basis.ScaleHeadcount(p.Rate, hours, persons)
}

type RoomBooking struct {
	RoomID uuid.UUID
	Tariff RoomTariff
}

// Booking spans one or more rooms plus packages over a single interval.
// Exclusivity and seating are chosen per room.
type Booking struct {
	Start          time.Time
	End            time.Time
	Persons        int
	Rooms          []RoomBooking
	ExclusiveRooms []uuid.UUID
	SeatingKeys    map[uuid.UUID]string
	Packages       []Package
	Contributions  Contributions
}

func (b Booking) requestFor(roomID uuid.UUID) BookingRequest {
	return BookingRequest{
		Start:              b.Start,
		End:                b.End,
		Persons:            b.Persons,
		IsExclusive:        slices.Contains(b.ExclusiveRooms, roomID),
		SelectedSeatingKey: b.SeatingKeys[roomID],
		Contributions:      b.Contributions,
	}
}

type RoomLine struct {
	RoomID    uuid.UUID
	Breakdown RoomBreakdown
}

type PackageLine struct {
	PackageID uuid.UUID
	Amount    float64
}

type BookingBreakdown struct {
	Rooms    []RoomLine
	Packages []PackageLine
	Total    float64
}

// ComputeBookingTotal sums every room price and package fee of a booking.
func ComputeBookingTotal(b Booking) (float64, error) {
	bd, err := ComputeBookingBreakdown(b)
	if err != nil {
		return 0, err
	}
	return bd.Total, nil
}

func ComputeBookingBreakdown(b Booking) (BookingBreakdown, error) {
	if err := validateInterval(b.Start, b.End); err != nil {
		return BookingBreakdown{}, err
	}
	if b.Persons < 1 {
		return BookingBreakdown{}, errs.Wrapf(ErrInvalidHeadcount, "got %d", b.Persons)
	}

	var out BookingBreakdown
	for _, room := range b.Rooms {
		rb, err := ComputeRoomBreakdown(b.requestFor(room.RoomID), room.Tariff)
		if err != nil {
			return BookingBreakdown{}, errs.Wrapf(err, "room %s", room.RoomID)
		}
		out.Rooms = append(out.Rooms, RoomLine{RoomID: room.RoomID, Breakdown: rb})
		out.Total += rb.Total
	}

	hours := Span{Start: b.Start, End: b.End}.Hours()
	for _, p := range b.Packages {
		if err := p.Validate(); err != nil {
			return BookingBreakdown{}, err
		}
		amount := p.Charge(hours, b.Persons)
		out.Packages = append(out.Packages, PackageLine{PackageID: p.ID, Amount: amount})
		out.Total += amount
	}
	return out, nil
}
