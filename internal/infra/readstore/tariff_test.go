//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"testing"
	"time"

	"venue-pricing/internal/domain/tariff"
	"venue-pricing/internal/infra"
	"venue-pricing/internal/infra/query"
	"venue-pricing/internal/infra/readstore"
	"venue-pricing/internal/pkg/pgconv"
	readstoremock "venue-pricing/tests/mock/readstore"
	sharedmock "venue-pricing/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
	discarded           = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func numeric(cents int64) pgtype.Numeric {
	return pgtype.Numeric{Int: big.NewInt(cents), Exp: -2, Valid: true}
}

func clockTime(hour, minute int) pgtype.Time {
	d := time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute
	return pgtype.Time{Microseconds: d.Microseconds(), Valid: true}
}

func text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

// passthroughUoW runs the callback directly, as a transaction would.
func passthroughUoW(ctrl *gomock.Controller) *sharedmock.MockUnitOfWork {
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	run := func(ctx context.Context, fn func(context.Context, query.DBTX) error) error {
		return fn(ctx, nil)
	}
	uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	return uow
}

func roomRow(id uuid.UUID) query.Room {
	return query.Room{
		ID:            pgconv.UUIDToPgtype(id),
		Name:          "Hall",
		BaseRate:      numeric(1000),
		BaseRateBasis: "per_hour",
	}
}

func scheduleRow() query.RoomSchedule {
	return query.RoomSchedule{
		ID:                 pgconv.UUIDToPgtype(uuid.New()),
		Category:           "basic",
		StartDay:           4,
		EndDay:             0,
		StartTime:          clockTime(22, 0),
		EndTime:            clockTime(2, 30),
		Rate:               numeric(2550),
		RateBasis:          "per_person",
		ExclusivityTier:    "optional",
		ExclusiveRate:      numeric(500),
		ExclusiveRateBasis: text("once"),
	}
}

func seatingRow() query.RoomSeating {
	return query.RoomSeating{
		Key:                "theatre",
		Rate:               numeric(1000),
		RateBasis:          "once",
		IsAbsolute:         false,
		IsDefault:          true,
		ReconfigRateBasis:  pgtype.Text{},
		ReconfigIsAbsolute: true,
	}
}

// =============================================================================
// FindRoomTariff Tests
// =============================================================================

func TestReadStore_FindRoomTariff(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	t.Run("success: rows are converted to a tariff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockTariffReadQueries(ctrl)
		id := pgconv.UUIDToPgtype(roomID)
		schedule := scheduleRow()
		mockQueries.EXPECT().GetRoomByID(ctx, gomock.Any(), id).Return(roomRow(roomID), nil)
		mockQueries.EXPECT().ListRoomSchedules(ctx, gomock.Any(), id).Return([]query.RoomSchedule{schedule}, nil)
		mockQueries.EXPECT().ListRoomSeatings(ctx, gomock.Any(), id).Return([]query.RoomSeating{seatingRow()}, nil)

		store := readstore.NewTariffReadStore(mockQueries, passthroughUoW(ctrl), discarded)
		got, err := store.FindRoomTariff(ctx, roomID)
		require.NoError(t, err)

		assert.Equal(t, roomID, got.ID)
		assert.Equal(t, "Hall", got.Name)
		assert.InDelta(t, 10, got.Tariff.BaseRate, 1e-9)
		assert.Equal(t, tariff.RateBasisPerHour, got.Tariff.BaseRateBasis)

		require.Len(t, got.Tariff.Schedules, 1)
		rule := got.Tariff.Schedules[0]
		assert.Equal(t, uuid.UUID(schedule.ID.Bytes), rule.ID)
		assert.Equal(t, tariff.Friday, rule.StartDay)
		assert.Equal(t, tariff.Monday, rule.EndDay)
		assert.Equal(t, "22:00:00", rule.StartTime.String())
		assert.Equal(t, "02:30:00", rule.EndTime.String())
		assert.InDelta(t, 25.5, rule.Rate, 1e-9)
		assert.Equal(t, tariff.RateBasisPerPerson, rule.RateBasis)
		assert.Equal(t, tariff.ExclusivityOptional, rule.ExclusivityTier)
		require.NotNil(t, rule.ExclusiveRate)
		assert.InDelta(t, 5, *rule.ExclusiveRate, 1e-9)
		assert.Equal(t, tariff.RateBasisFlatOnce, rule.ExclusiveRateBasis)

		require.Len(t, got.Tariff.Seatings, 1)
		seating := got.Tariff.Seatings[0]
		assert.Equal(t, "theatre", seating.Key)
		assert.False(t, seating.IsAbsolute)
		assert.True(t, seating.IsDefault)
		assert.Nil(t, seating.ReconfigRate)
		assert.Empty(t, seating.ReconfigRateBasis)
	})

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockTariffReadQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "error: room not found",
			setupMock: func(m *readstoremock.MockTariffReadQueries) {
				m.EXPECT().GetRoomByID(ctx, gomock.Any(), gomock.Any()).Return(query.Room{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(m *readstoremock.MockTariffReadQueries) {
				m.EXPECT().GetRoomByID(ctx, gomock.Any(), gomock.Any()).Return(query.Room{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: schedules query fails",
			setupMock: func(m *readstoremock.MockTariffReadQueries) {
				m.EXPECT().GetRoomByID(ctx, gomock.Any(), gomock.Any()).Return(roomRow(roomID), nil)
				m.EXPECT().ListRoomSchedules(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: unknown rate basis",
			setupMock: func(m *readstoremock.MockTariffReadQueries) {
				row := scheduleRow()
				row.RateBasis = "per_fortnight"
				m.EXPECT().GetRoomByID(ctx, gomock.Any(), gomock.Any()).Return(roomRow(roomID), nil)
				m.EXPECT().ListRoomSchedules(ctx, gomock.Any(), gomock.Any()).Return([]query.RoomSchedule{row}, nil)
				m.EXPECT().ListRoomSeatings(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectKind: infra.KindCorruptRow,
		},
		{
			name: "error: week day out of range",
			setupMock: func(m *readstoremock.MockTariffReadQueries) {
				row := scheduleRow()
				row.EndDay = 7
				m.EXPECT().GetRoomByID(ctx, gomock.Any(), gomock.Any()).Return(roomRow(roomID), nil)
				m.EXPECT().ListRoomSchedules(ctx, gomock.Any(), gomock.Any()).Return([]query.RoomSchedule{row}, nil)
				m.EXPECT().ListRoomSeatings(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectKind: infra.KindCorruptRow,
		},
		{
			name: "error: NULL base rate",
			setupMock: func(m *readstoremock.MockTariffReadQueries) {
				row := roomRow(roomID)
				row.BaseRate = pgtype.Numeric{}
				m.EXPECT().GetRoomByID(ctx, gomock.Any(), gomock.Any()).Return(row, nil)
				m.EXPECT().ListRoomSchedules(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
				m.EXPECT().ListRoomSeatings(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectKind: infra.KindCorruptRow,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockTariffReadQueries(ctrl)
			tc.setupMock(mockQueries)

			store := readstore.NewTariffReadStore(mockQueries, passthroughUoW(ctrl), discarded)
			result, err := store.FindRoomTariff(ctx, roomID)

			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
			assert.Nil(t, result, "result should be nil when error occurs")
		})
	}
}

// =============================================================================
// FindPackages Tests
// =============================================================================

func TestReadStore_FindPackages(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockTariffReadQueries(ctrl)
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		mockQueries.EXPECT().ListPackagesByIDs(ctx, gomock.Any(), pgconv.UUIDsToPgtype(ids)).Return([]query.Package{
			{ID: pgconv.UUIDToPgtype(ids[1]), Name: "coffee", Rate: numeric(350), RateBasis: "per_person"},
			{ID: pgconv.UUIDToPgtype(ids[0]), Name: "projector", Rate: numeric(2000), RateBasis: "per_hour"},
		}, nil)

		store := readstore.NewTariffReadStore(mockQueries, passthroughUoW(ctrl), discarded)
		got, err := store.FindPackages(ctx, ids)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, ids[1], got[0].ID)
		assert.InDelta(t, 3.5, got[0].Rate, 1e-9)
		assert.Equal(t, tariff.RateBasisPerPerson, got[0].Basis)
	})

	t.Run("no ids skips the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockTariffReadQueries(ctrl)

		store := readstore.NewTariffReadStore(mockQueries, passthroughUoW(ctrl), discarded)
		got, err := store.FindPackages(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockTariffReadQueries(ctrl)
		mockQueries.EXPECT().ListPackagesByIDs(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		store := readstore.NewTariffReadStore(mockQueries, passthroughUoW(ctrl), discarded)
		_, err := store.FindPackages(ctx, []uuid.UUID{uuid.New()})
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: corrupt row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockTariffReadQueries(ctrl)
		mockQueries.EXPECT().ListPackagesByIDs(ctx, gomock.Any(), gomock.Any()).Return([]query.Package{
			{ID: pgconv.UUIDToPgtype(uuid.New()), Name: "mystery", Rate: numeric(100), RateBasis: "per_fortnight"},
		}, nil)

		store := readstore.NewTariffReadStore(mockQueries, passthroughUoW(ctrl), discarded)
		_, err := store.FindPackages(ctx, []uuid.UUID{uuid.New()})
		assert.True(t, infra.IsKind(err, infra.KindCorruptRow))
	})
}
