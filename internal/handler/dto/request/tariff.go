package request

import (
	"time"

	"venue-pricing/internal/domain/tariff"
	"venue-pricing/internal/pkg/patch"
	"venue-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomQuoteRequest struct {
	Start         time.Time `json:"start" binding:"required"`
	End           time.Time `json:"end" binding:"required,gtfield=Start"`
	Persons       int       `json:"persons" binding:"required,min=1"`
	Exclusive     *bool     `json:"exclusive"`
	SeatingKey    string    `json:"seating_key" binding:"max=64"`
	Contributions []string  `json:"contributions" binding:"omitempty,dive,oneof=rate exclusive"`
}

func (r *RoomQuoteRequest) ToParams(roomID uuid.UUID) queries.QuoteRoomParams {
	return queries.QuoteRoomParams{
		RoomID:        roomID,
		Start:         r.Start,
		End:           r.End,
		Persons:       r.Persons,
		Exclusive:     patch.Coalesce(r.Exclusive, false),
		SeatingKey:    r.SeatingKey,
		Contributions: toContributions(r.Contributions),
	}
}

type BookingRoomRequest struct {
	RoomID     uuid.UUID `json:"room_id" binding:"required"`
	Exclusive  *bool     `json:"exclusive"`
	SeatingKey string    `json:"seating_key" binding:"max=64"`
}

type BookingQuoteRequest struct {
	Start         time.Time            `json:"start" binding:"required"`
	End           time.Time            `json:"end" binding:"required,gtfield=Start"`
	Persons       int                  `json:"persons" binding:"required,min=1"`
	Rooms         []BookingRoomRequest `json:"rooms" binding:"omitempty,dive"`
	PackageIDs    []uuid.UUID          `json:"package_ids"`
	Contributions []string             `json:"contributions" binding:"omitempty,dive,oneof=rate exclusive"`
}

func (r *BookingQuoteRequest) ToParams() queries.QuoteBookingParams {
	rooms := make([]queries.BookingRoomParams, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		rooms = append(rooms, queries.BookingRoomParams{
			RoomID:     room.RoomID,
			Exclusive:  patch.Coalesce(room.Exclusive, false),
			SeatingKey: room.SeatingKey,
		})
	}
	return queries.QuoteBookingParams{
		Start:         r.Start,
		End:           r.End,
		Persons:       r.Persons,
		Rooms:         rooms,
		PackageIDs:    r.PackageIDs,
		Contributions: toContributions(r.Contributions),
	}
}

// binding has already restricted the values to known contributions
func toContributions(values []string) tariff.Contributions {
	if len(values) == 0 {
		return nil
	}
	cs := make(tariff.Contributions, len(values))
	for i, v := range values {
		cs[i] = tariff.Contribution(v)
	}
	return cs
}
