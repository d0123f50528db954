package queries

import (
	"context"
	"log/slog"
	"time"

	"venue-pricing/internal/domain/tariff"
	"venue-pricing/internal/infra"
	"venue-pricing/internal/pkg/clock"
	"venue-pricing/internal/pkg/config"
	"venue-pricing/internal/pkg/errs"
	"venue-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuoteRoomParams struct {
	RoomID        uuid.UUID
	Start         time.Time
	End           time.Time
	Persons       int
	Exclusive     bool
	SeatingKey    string
	Contributions tariff.Contributions
}

type RoomQuote struct {
	RoomID    uuid.UUID
	RoomName  string
	Start     time.Time
	End       time.Time
	Persons   int
	Breakdown tariff.RoomBreakdown
	QuotedAt  time.Time
}

type BookingRoomParams struct {
	RoomID     uuid.UUID
	Exclusive  bool
	SeatingKey string
}

type QuoteBookingParams struct {
	Start         time.Time
	End           time.Time
	Persons       int
	Rooms         []BookingRoomParams
	PackageIDs    []uuid.UUID
	Contributions tariff.Contributions
}

type BookingQuote struct {
	Start    time.Time
	End      time.Time
	Persons  int
	Rooms    []RoomQuote
	Packages []PackageQuote
	Total    float64
	QuotedAt time.Time
}

type PackageQuote struct {
	PackageID uuid.UUID
	Name      string
	Basis     tariff.RateBasis
	Amount    float64
}

type TariffQueries interface {
	QuoteRoom(ctx context.Context, params QuoteRoomParams) (*RoomQuote, error)
	QuoteBooking(ctx context.Context, params QuoteBookingParams) (*BookingQuote, error)
	ApplicableRules(ctx context.Context, roomID uuid.UUID, start, end time.Time) ([]tariff.RecurringRateRule, error)
}

type tariffQueriesImpl struct {
	store  shared.TariffReadStore
	clock  clock.Clock
	loc    *time.Location
	logger *slog.Logger
}

func NewTariffQueries(store shared.TariffReadStore, clk clock.Clock, cfg config.Config, logger *slog.Logger) (TariffQueries, error) {
	loc, err := cfg.Pricing.Location()
	if err != nil {
		return nil, err
	}
	return &tariffQueriesImpl{store: store, clock: clk, loc: loc, logger: logger}, nil
}

func (q *tariffQueriesImpl) QuoteRoom(ctx context.Context, params QuoteRoomParams) (*RoomQuote, error) {
	room, err := q.loadRoom(ctx, params.RoomID)
	if err != nil {
		return nil, err
	}

	start, end := q.venueTime(params.Start, params.End)
	req := tariff.BookingRequest{
		Start:              start,
		End:                end,
		Persons:            params.Persons,
		IsExclusive:        params.Exclusive,
		SelectedSeatingKey: params.SeatingKey,
		Contributions:      params.Contributions,
	}
	breakdown, err := tariff.ComputeRoomBreakdown(req, room.Tariff)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidQuoteRequest)
	}

	q.logger.Debug("room quoted",
		"room_id", room.ID.String(),
		"rules", len(room.Tariff.Schedules),
		"total", breakdown.Total)

	return &RoomQuote{
		RoomID:    room.ID,
		RoomName:  room.Name,
		Start:     start,
		End:       end,
		Persons:   params.Persons,
		Breakdown: breakdown,
		QuotedAt:  q.clock.Now(),
	}, nil
}

func (q *tariffQueriesImpl) QuoteBooking(ctx context.Context, params QuoteBookingParams) (*BookingQuote, error) {
	start, end := q.venueTime(params.Start, params.End)
	booking := tariff.Booking{
		Start:         start,
		End:           end,
		Persons:       params.Persons,
		SeatingKeys:   make(map[uuid.UUID]string, len(params.Rooms)),
		Contributions: params.Contributions,
	}

	names := make(map[uuid.UUID]string, len(params.Rooms))
	for _, rp := range params.Rooms {
		if _, dup := names[rp.RoomID]; dup {
			return nil, errs.Wrapf(errs.ErrInvalidQuoteRequest, "room %s listed twice", rp.RoomID)
		}
		room, err := q.loadRoom(ctx, rp.RoomID)
		if err != nil {
			return nil, err
		}
		names[room.ID] = room.Name
		booking.Rooms = append(booking.Rooms, tariff.RoomBooking{RoomID: room.ID, Tariff: room.Tariff})
		if rp.Exclusive {
			booking.ExclusiveRooms = append(booking.ExclusiveRooms, room.ID)
		}
		if rp.SeatingKey != "" {
			booking.SeatingKeys[room.ID] = rp.SeatingKey
		}
	}

	packages, err := q.loadPackages(ctx, params.PackageIDs)
	if err != nil {
		return nil, err
	}
	booking.Packages = packages

	breakdown, err := tariff.ComputeBookingBreakdown(booking)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidQuoteRequest)
	}

	now := q.clock.Now()
	quote := &BookingQuote{
		Start:    start,
		End:      end,
		Persons:  params.Persons,
		Total:    breakdown.Total,
		QuotedAt: now,
	}
	for _, line := range breakdown.Rooms {
		quote.Rooms = append(quote.Rooms, RoomQuote{
			RoomID:    line.RoomID,
			RoomName:  names[line.RoomID],
			Start:     start,
			End:       end,
			Persons:   params.Persons,
			Breakdown: line.Breakdown,
			QuotedAt:  now,
		})
	}
	for i, line := range breakdown.Packages {
		quote.Packages = append(quote.Packages, PackageQuote{
			PackageID: line.PackageID,
			Name:      packages[i].Name,
			Basis:     packages[i].Basis,
			Amount:    line.Amount,
		})
	}

	q.logger.Debug("booking quoted",
		"rooms", len(quote.Rooms),
		"packages", len(quote.Packages),
		"total", quote.Total)

	return quote, nil
}

func (q *tariffQueriesImpl) ApplicableRules(ctx context.Context, roomID uuid.UUID, start, end time.Time) ([]tariff.RecurringRateRule, error) {
	room, err := q.loadRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	start, end = q.venueTime(start, end)
	rules, err := tariff.FindApplicableRules(tariff.NewSpan(start, end), room.Tariff.Schedules)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidQuoteRequest)
	}
	return rules, nil
}

func (q *tariffQueriesImpl) loadRoom(ctx context.Context, roomID uuid.UUID) (*shared.RoomSnapshot, error) {
	room, err := q.store.FindRoomTariff(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrRoomNotFound, "room %s", roomID)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return room, nil
}

// loadPackages returns the packages in request order, each id once.
func (q *tariffQueriesImpl) loadPackages(ctx context.Context, ids []uuid.UUID) ([]tariff.Package, error) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return nil, nil
	}

	found, err := q.store.FindPackages(ctx, unique)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	byID := make(map[uuid.UUID]tariff.Package, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	ordered := make([]tariff.Package, 0, len(unique))
	for _, id := range unique {
		p, ok := byID[id]
		if !ok {
			return nil, errs.Wrapf(errs.ErrPackageNotFound, "package %s", id)
		}
		ordered = append(ordered, p)
	}
	return ordered, nil
}

// venueTime reads both instants on the venue's wall clock.
func (q *tariffQueriesImpl) venueTime(start, end time.Time) (time.Time, time.Time) {
	return start.In(q.loc), end.In(q.loc)
}
