package shared

import (
	"context"

	"venue-pricing/internal/domain/tariff"

	"github.com/google/uuid"
)

// RoomSnapshot is a room with everything needed to price it.
type RoomSnapshot struct {
	ID     uuid.UUID
	Name   string
	Tariff tariff.RoomTariff
}

type TariffReadStore interface {
	// FindRoomTariff loads the room, its schedules and seatings from one snapshot.
	FindRoomTariff(ctx context.Context, roomID uuid.UUID) (*RoomSnapshot, error)
	// FindPackages returns the packages found among ids, in no particular order.
	FindPackages(ctx context.Context, ids []uuid.UUID) ([]tariff.Package, error)
}
