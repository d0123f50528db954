package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrInvalidFloat64Value = errors.New("invalid float64 value in pgtype.Numeric")
	ErrNullValue           = errors.New("unexpected NULL value")
)

func UUIDFromPgtype(pu pgtype.UUID) uuid.UUID {
	if !pu.Valid {
		return uuid.Nil
	}
	return uuid.UUID(pu.Bytes)
}

func StringFromPgtype(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

func Float64FromNumeric(pn pgtype.Numeric) (float64, error) {
	v, err := Float64PtrFromNumeric(pn)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, ErrNullValue
	}
	return *v, nil
}

func Float64PtrFromNumeric(pn pgtype.Numeric) (*float64, error) {
	if !pn.Valid {
		return nil, nil
	}

	value, err := pn.Float64Value()
	if err != nil || !value.Valid {
		return nil, ErrInvalidFloat64Value
	}

	return &value.Float64, nil
}

// SecondsFromPgTime converts a TIME column into seconds since midnight.
func SecondsFromPgTime(pt pgtype.Time) (int, error) {
	if !pt.Valid {
		return 0, ErrNullValue
	}
	return int(time.Duration(pt.Microseconds) * time.Microsecond / time.Second), nil
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDsToPgtype(ids []uuid.UUID) []pgtype.UUID {
	out := make([]pgtype.UUID, len(ids))
	for i, id := range ids {
		out[i] = UUIDToPgtype(id)
	}
	return out
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
