//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"venue-pricing/internal/domain/tariff"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestRoom(t *testing.T, db DBLike, name string, baseRate float64, basis tariff.RateBasis) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, name, base_rate, base_rate_basis) VALUES ($1, $2, $3, $4::rate_basis)",
		roomID, name, baseRate, string(basis))
	require.NoError(t, err)

	return roomID
}

// CreateTestSchedule stores rule under roomID, keeping the rule's own ID.
func CreateTestSchedule(t *testing.T, db DBLike, roomID uuid.UUID, rule tariff.RecurringRateRule, position int) uuid.UUID {
	t.Helper()

	ruleID := rule.ID
	if ruleID == uuid.Nil {
		ruleID = uuid.New()
	}
	_, err := db.Exec(context.Background(), `
		INSERT INTO room_schedules (
		    id, room_id, category, start_day, end_day, start_time, end_time,
		    rate, rate_basis, exclusivity_tier, exclusive_rate, exclusive_rate_basis, position
		) VALUES ($1, $2, $3::rule_category, $4, $5, $6, $7, $8, $9::rate_basis, $10::exclusivity_tier, $11, $12::rate_basis, $13)`,
		ruleID, roomID, string(rule.Category), int16(rule.StartDay), int16(rule.EndDay),
		pgTime(rule.StartTime), pgTime(rule.EndTime),
		rule.Rate, string(rule.RateBasis), string(rule.ExclusivityTier),
		rule.ExclusiveRate, nullableBasis(rule.ExclusiveRateBasis), position)
	require.NoError(t, err)

	return ruleID
}

func CreateTestSeating(t *testing.T, db DBLike, roomID uuid.UUID, seating tariff.SeatingOption, position int) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO room_seatings (
		    room_id, key, rate, rate_basis, is_absolute, is_default,
		    reconfig_rate, reconfig_rate_basis, reconfig_is_absolute, position
		) VALUES ($1, $2, $3, $4::rate_basis, $5, $6, $7, $8::rate_basis, $9, $10)`,
		roomID, seating.Key, seating.Rate, string(seating.RateBasis), seating.IsAbsolute, seating.IsDefault,
		seating.ReconfigRate, nullableBasis(seating.ReconfigRateBasis), seating.ReconfigIsAbsolute, position)
	require.NoError(t, err)
}

func CreateTestPackage(t *testing.T, db DBLike, name string, rate float64, basis tariff.RateBasis) uuid.UUID {
	t.Helper()

	packageID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO packages (id, name, rate, rate_basis) VALUES ($1, $2, $3, $4::rate_basis)",
		packageID, name, rate, string(basis))
	require.NoError(t, err)

	return packageID
}

// PackageIDByName looks up one of the reference packages.
func PackageIDByName(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM packages WHERE name = $1 LIMIT 1", name).Scan(&id)
	require.NoError(t, err)
	return id
}

func pgTime(tod tariff.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(tod) * 1_000_000, Valid: true}
}

func nullableBasis(b tariff.RateBasis) *string {
	if b == "" {
		return nil
	}
	s := string(b)
	return &s
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO packages (id, name, rate, rate_basis) VALUES
		    (gen_random_uuid(), 'Coffee Break', 3.00, 'per_person'),
		    (gen_random_uuid(), 'Projector', 20.00, 'per_hour'),
		    (gen_random_uuid(), 'Cleaning', 50.00, 'once');
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
