package query

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

type Room struct {
	ID            pgtype.UUID    `db:"id"`
	Name          string         `db:"name"`
	BaseRate      pgtype.Numeric `db:"base_rate"`
	BaseRateBasis string         `db:"base_rate_basis"`
}

type RoomSchedule struct {
	ID                 pgtype.UUID    `db:"id"`
	Category           string         `db:"category"`
	StartDay           int16          `db:"start_day"`
	EndDay             int16          `db:"end_day"`
	StartTime          pgtype.Time    `db:"start_time"`
	EndTime            pgtype.Time    `db:"end_time"`
	Rate               pgtype.Numeric `db:"rate"`
	RateBasis          string         `db:"rate_basis"`
	ExclusivityTier    string         `db:"exclusivity_tier"`
	ExclusiveRate      pgtype.Numeric `db:"exclusive_rate"`
	ExclusiveRateBasis pgtype.Text    `db:"exclusive_rate_basis"`
}

type RoomSeating struct {
	Key                string         `db:"key"`
	Rate               pgtype.Numeric `db:"rate"`
	RateBasis          string         `db:"rate_basis"`
	IsAbsolute         bool           `db:"is_absolute"`
	IsDefault          bool           `db:"is_default"`
	ReconfigRate       pgtype.Numeric `db:"reconfig_rate"`
	ReconfigRateBasis  pgtype.Text    `db:"reconfig_rate_basis"`
	ReconfigIsAbsolute bool           `db:"reconfig_is_absolute"`
}

type Package struct {
	ID        pgtype.UUID    `db:"id"`
	Name      string         `db:"name"`
	Rate      pgtype.Numeric `db:"rate"`
	RateBasis string         `db:"rate_basis"`
}

const getRoomByID = `
SELECT id, name, base_rate, base_rate_basis::text AS base_rate_basis
FROM rooms
WHERE id = $1`

func (q *Queries) GetRoomByID(ctx context.Context, db DBTX, id pgtype.UUID) (Room, error) {
	rows, err := db.Query(ctx, getRoomByID, id)
	if err != nil {
		return Room{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Room])
}

const listRoomSchedules = `
SELECT id, category::text AS category, start_day, end_day, start_time, end_time,
       rate, rate_basis::text AS rate_basis, exclusivity_tier::text AS exclusivity_tier,
       exclusive_rate, exclusive_rate_basis::text AS exclusive_rate_basis
FROM room_schedules
WHERE room_id = $1
ORDER BY position, id`

func (q *Queries) ListRoomSchedules(ctx context.Context, db DBTX, roomID pgtype.UUID) ([]RoomSchedule, error) {
	rows, err := db.Query(ctx, listRoomSchedules, roomID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[RoomSchedule])
}

const listRoomSeatings = `
SELECT key, rate, rate_basis::text AS rate_basis, is_absolute, is_default,
       reconfig_rate, reconfig_rate_basis::text AS reconfig_rate_basis, reconfig_is_absolute
FROM room_seatings
WHERE room_id = $1
ORDER BY position, key`

func (q *Queries) ListRoomSeatings(ctx context.Context, db DBTX, roomID pgtype.UUID) ([]RoomSeating, error) {
	rows, err := db.Query(ctx, listRoomSeatings, roomID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[RoomSeating])
}

const listPackagesByIDs = `
SELECT id, name, rate, rate_basis::text AS rate_basis
FROM packages
WHERE id = ANY($1::uuid[])`

func (q *Queries) ListPackagesByIDs(ctx context.Context, db DBTX, ids []pgtype.UUID) ([]Package, error) {
	rows, err := db.Query(ctx, listPackagesByIDs, ids)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Package])
}
