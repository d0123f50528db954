package commands

import (
	"context"
	"log/slog"

	"venue-pricing/internal/domain/tariff"
	"venue-pricing/internal/infra"
	"venue-pricing/internal/pkg/errs"
	"venue-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

// ScheduleCommands guard schedule edits before they are saved elsewhere.
type ScheduleCommands interface {
	// CheckConflicts lists the room's basic rules that collide with candidate.
	// A candidate carrying an existing rule's ID is compared as its replacement.
	CheckConflicts(ctx context.Context, roomID uuid.UUID, candidate tariff.RecurringRateRule) ([]tariff.RecurringRateRule, error)
	CheckOverlap(ctx context.Context, a, b tariff.RecurringRateRule) (bool, error)
}

type scheduleUseCaseImpl struct {
	store  shared.TariffReadStore
	logger *slog.Logger
}

func NewScheduleUseCase(store shared.TariffReadStore, logger *slog.Logger) ScheduleCommands {
	return &scheduleUseCaseImpl{store: store, logger: logger}
}

func (uc *scheduleUseCaseImpl) CheckConflicts(ctx context.Context, roomID uuid.UUID, candidate tariff.RecurringRateRule) ([]tariff.RecurringRateRule, error) {
	if err := candidate.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	room, err := uc.store.FindRoomTariff(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrRoomNotFound, "room %s", roomID)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	conflicts, err := tariff.FindOverlappingRules(candidate, room.Tariff.Schedules)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if len(conflicts) > 0 {
		uc.logger.Info("schedule conflicts found",
			"room_id", roomID.String(),
			"candidate_id", candidate.ID.String(),
			"conflicts", len(conflicts))
	}
	return conflicts, nil
}

func (uc *scheduleUseCaseImpl) CheckOverlap(_ context.Context, a, b tariff.RecurringRateRule) (bool, error) {
	overlap, err := tariff.RulesOverlap(a, b)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDomainValidation)
	}
	return overlap, nil
}
