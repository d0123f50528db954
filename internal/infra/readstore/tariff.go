package readstore

import (
	"context"
	"log/slog"

	"venue-pricing/internal/domain/tariff"
	"venue-pricing/internal/infra"
	"venue-pricing/internal/infra/query"
	"venue-pricing/internal/pkg/errs"
	"venue-pricing/internal/pkg/pgconv"
	"venue-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TariffReadQueries interface {
	GetRoomByID(ctx context.Context, db query.DBTX, id pgtype.UUID) (query.Room, error)
	ListRoomSchedules(ctx context.Context, db query.DBTX, roomID pgtype.UUID) ([]query.RoomSchedule, error)
	ListRoomSeatings(ctx context.Context, db query.DBTX, roomID pgtype.UUID) ([]query.RoomSeating, error)
	ListPackagesByIDs(ctx context.Context, db query.DBTX, ids []pgtype.UUID) ([]query.Package, error)
}

type TariffReadStore struct {
	queries TariffReadQueries
	uow     shared.UnitOfWork
	logger  *slog.Logger
}

func NewTariffReadStore(queries TariffReadQueries, uow shared.UnitOfWork, logger *slog.Logger) *TariffReadStore {
	return &TariffReadStore{
		queries: queries,
		uow:     uow,
		logger:  logger,
	}
}

func (r *TariffReadStore) FindRoomTariff(ctx context.Context, roomID uuid.UUID) (*shared.RoomSnapshot, error) {
	var (
		room      query.Room
		schedules []query.RoomSchedule
		seatings  []query.RoomSeating
	)
	id := pgconv.UUIDToPgtype(roomID)

	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, db query.DBTX) error {
		var err error
		room, err = r.queries.GetRoomByID(ctx, db, id)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return infra.WrapRepoErr(r.logger, infra.KindNotFound, "room not found", err)
			}
			return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find room by ID", err)
		}
		schedules, err = r.queries.ListRoomSchedules(ctx, db, id)
		if err != nil {
			return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list room schedules", err)
		}
		seatings, err = r.queries.ListRoomSeatings(ctx, db, id)
		if err != nil {
			return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list room seatings", err)
		}
		return nil
	})
	if err != nil {
		var repoErr infra.RepositoryError
		if errs.As(err, &repoErr) {
			return nil, err
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read room tariff", err)
	}

	snapshot, err := toRoomSnapshot(room, schedules, seatings)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorruptRow, "invalid tariff row for room "+roomID.String(), err)
	}
	return snapshot, nil
}

func (r *TariffReadStore) FindPackages(ctx context.Context, ids []uuid.UUID) ([]tariff.Package, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []query.Package
	err := r.uow.WithDB(ctx, func(ctx context.Context, db query.DBTX) error {
		var err error
		rows, err = r.queries.ListPackagesByIDs(ctx, db, pgconv.UUIDsToPgtype(ids))
		return err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list packages", err)
	}

	result := make([]tariff.Package, 0, len(rows))
	for _, row := range rows {
		p, err := toPackage(row)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindCorruptRow, "invalid package row", err)
		}
		result = append(result, p)
	}
	return result, nil
}

// ------------------------------------------------------------
// row -> domain
// ------------------------------------------------------------

func toRoomSnapshot(room query.Room, schedules []query.RoomSchedule, seatings []query.RoomSeating) (*shared.RoomSnapshot, error) {
	baseRate, err := pgconv.Float64FromNumeric(room.BaseRate)
	if err != nil {
		return nil, errs.Wrap(err, "base_rate")
	}
	baseBasis, err := tariff.ParseRateBasis(room.BaseRateBasis)
	if err != nil {
		return nil, err
	}

	t := tariff.RoomTariff{
		BaseRate:      baseRate,
		BaseRateBasis: baseBasis,
		Schedules:     make([]tariff.RecurringRateRule, 0, len(schedules)),
		Seatings:      make([]tariff.SeatingOption, 0, len(seatings)),
	}
	for _, row := range schedules {
		rule, err := toRule(row)
		if err != nil {
			return nil, err
		}
		t.Schedules = append(t.Schedules, rule)
	}
	for _, row := range seatings {
		s, err := toSeating(row)
		if err != nil {
			return nil, err
		}
		t.Seatings = append(t.Seatings, s)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return &shared.RoomSnapshot{
		ID:     pgconv.UUIDFromPgtype(room.ID),
		Name:   room.Name,
		Tariff: t,
	}, nil
}

func toRule(row query.RoomSchedule) (tariff.RecurringRateRule, error) {
	id := pgconv.UUIDFromPgtype(row.ID)
	category, err := tariff.ParseRuleCategory(row.Category)
	if err != nil {
		return tariff.RecurringRateRule{}, errs.Wrapf(err, "schedule %s", id)
	}
	basis, err := tariff.ParseRateBasis(row.RateBasis)
	if err != nil {
		return tariff.RecurringRateRule{}, errs.Wrapf(err, "schedule %s", id)
	}
	tier, err := tariff.ParseExclusivityTier(row.ExclusivityTier)
	if err != nil {
		return tariff.RecurringRateRule{}, errs.Wrapf(err, "schedule %s", id)
	}
	rate, err := pgconv.Float64FromNumeric(row.Rate)
	if err != nil {
		return tariff.RecurringRateRule{}, errs.Wrapf(err, "schedule %s: rate", id)
	}
	exclusiveRate, err := pgconv.Float64PtrFromNumeric(row.ExclusiveRate)
	if err != nil {
		return tariff.RecurringRateRule{}, errs.Wrapf(err, "schedule %s: exclusive_rate", id)
	}
	var exclusiveBasis tariff.RateBasis
	if raw := pgconv.StringFromPgtype(row.ExclusiveRateBasis); raw != "" {
		if exclusiveBasis, err = tariff.ParseRateBasis(raw); err != nil {
			return tariff.RecurringRateRule{}, errs.Wrapf(err, "schedule %s", id)
		}
	}
	start, err := toTimeOfDay(row.StartTime)
	if err != nil {
		return tariff.RecurringRateRule{}, errs.Wrapf(err, "schedule %s: start_time", id)
	}
	end, err := toTimeOfDay(row.EndTime)
	if err != nil {
		return tariff.RecurringRateRule{}, errs.Wrapf(err, "schedule %s: end_time", id)
	}

	return tariff.RecurringRateRule{
		ID:                 id,
		Category:           category,
		StartDay:           tariff.WeekDay(row.StartDay),
		EndDay:             tariff.WeekDay(row.EndDay),
		StartTime:          start,
		EndTime:            end,
		Rate:               rate,
		RateBasis:          basis,
		ExclusivityTier:    tier,
		ExclusiveRate:      exclusiveRate,
		ExclusiveRateBasis: exclusiveBasis,
	}, nil
}

func toSeating(row query.RoomSeating) (tariff.SeatingOption, error) {
	basis, err := tariff.ParseRateBasis(row.RateBasis)
	if err != nil {
		return tariff.SeatingOption{}, errs.Wrapf(err, "seating %q", row.Key)
	}
	rate, err := pgconv.Float64FromNumeric(row.Rate)
	if err != nil {
		return tariff.SeatingOption{}, errs.Wrapf(err, "seating %q: rate", row.Key)
	}
	reconfigRate, err := pgconv.Float64PtrFromNumeric(row.ReconfigRate)
	if err != nil {
		return tariff.SeatingOption{}, errs.Wrapf(err, "seating %q: reconfig_rate", row.Key)
	}
	var reconfigBasis tariff.RateBasis
	if raw := pgconv.StringFromPgtype(row.ReconfigRateBasis); raw != "" {
		if reconfigBasis, err = tariff.ParseRateBasis(raw); err != nil {
			return tariff.SeatingOption{}, errs.Wrapf(err, "seating %q", row.Key)
		}
	}

	return tariff.SeatingOption{
		Key:                row.Key,
		RateBasis:          basis,
		IsAbsolute:         row.IsAbsolute,
		Rate:               rate,
		IsDefault:          row.IsDefault,
		ReconfigRateBasis:  reconfigBasis,
		ReconfigIsAbsolute: row.ReconfigIsAbsolute,
		ReconfigRate:       reconfigRate,
	}, nil
}

func toPackage(row query.Package) (tariff.Package, error) {
	id := pgconv.UUIDFromPgtype(row.ID)
	basis, err := tariff.ParseRateBasis(row.RateBasis)
	if err != nil {
		return tariff.Package{}, errs.Wrapf(err, "package %s", id)
	}
	rate, err := pgconv.Float64FromNumeric(row.Rate)
	if err != nil {
		return tariff.Package{}, errs.Wrapf(err, "package %s: rate", id)
	}
	p := tariff.Package{ID: id, Name: row.Name, Rate: rate, Basis: basis}
	if err := p.Validate(); err != nil {
		return tariff.Package{}, err
	}
	return p, nil
}

func toTimeOfDay(pt pgtype.Time) (tariff.TimeOfDay, error) {
	secs, err := pgconv.SecondsFromPgTime(pt)
	if err != nil {
		return 0, err
	}
	tod := tariff.TimeOfDay(secs)
	if !tod.Valid() {
		return 0, errs.Wrapf(tariff.ErrInvalidTimeOfDay, "%d seconds", secs)
	}
	return tod, nil
}
