//go:build unit || e2e

package builder

import (
	"time"

	"venue-pricing/internal/domain/tariff"
	reqdto "venue-pricing/internal/handler/dto/request"
	"venue-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

// QuoteBuilder produces request DTOs and usecase results for the quote endpoints.
type QuoteBuilder struct {
	RoomID     uuid.UUID
	RoomName   string
	Start      time.Time
	End        time.Time
	Persons    int
	SeatingKey string
	Total      float64
	QuotedAt   time.Time
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		RoomID:   uuid.New(),
		RoomName: "Main Hall",
		Start:    June2025(2, 10, 0),
		End:      June2025(2, 14, 0),
		Persons:  10,
		Total:    400,
		QuotedAt: June2025(1, 12, 0),
	}
}

func (q *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(q)
	return q
}

func (q *QuoteBuilder) BuildRoomQuoteRequestDTO() reqdto.RoomQuoteRequest {
	return reqdto.RoomQuoteRequest{
		Start:      q.Start,
		End:        q.End,
		Persons:    q.Persons,
		SeatingKey: q.SeatingKey,
	}
}

func (q *QuoteBuilder) BuildBookingQuoteRequestDTO(roomIDs ...uuid.UUID) reqdto.BookingQuoteRequest {
	rooms := make([]reqdto.BookingRoomRequest, len(roomIDs))
	for i, id := range roomIDs {
		rooms[i] = reqdto.BookingRoomRequest{RoomID: id}
	}
	return reqdto.BookingQuoteRequest{
		Start:   q.Start,
		End:     q.End,
		Persons: q.Persons,
		Rooms:   rooms,
	}
}

func (q *QuoteBuilder) BuildRoomQuote() *queries.RoomQuote {
	return &queries.RoomQuote{
		RoomID:   q.RoomID,
		RoomName: q.RoomName,
		Start:    q.Start,
		End:      q.End,
		Persons:  q.Persons,
		Breakdown: tariff.RoomBreakdown{
			RuleCharges: q.Total,
			Covered:     []tariff.Span{tariff.NewSpan(q.Start, q.End)},
			Total:       q.Total,
		},
		QuotedAt: q.QuotedAt,
	}
}

func (q *QuoteBuilder) BuildBookingQuote() *queries.BookingQuote {
	room := q.BuildRoomQuote()
	return &queries.BookingQuote{
		Start:    q.Start,
		End:      q.End,
		Persons:  q.Persons,
		Rooms:    []queries.RoomQuote{*room},
		Total:    q.Total,
		QuotedAt: q.QuotedAt,
	}
}

// BuildScheduleRuleDTO mirrors rule as the JSON payload accepted by the schedule endpoints.
func BuildScheduleRuleDTO(rule tariff.RecurringRateRule) reqdto.ScheduleRuleRequest {
	id := rule.ID
	startDay, endDay := int(rule.StartDay), int(rule.EndDay)
	rate := rule.Rate
	return reqdto.ScheduleRuleRequest{
		ID:                 &id,
		Category:           string(rule.Category),
		StartDay:           &startDay,
		EndDay:             &endDay,
		StartTime:          rule.StartTime.String(),
		EndTime:            rule.EndTime.String(),
		Rate:               &rate,
		RateBasis:          rule.RateBasis.String(),
		ExclusivityTier:    string(rule.ExclusivityTier),
		ExclusiveRate:      rule.ExclusiveRate,
		ExclusiveRateBasis: string(rule.ExclusiveRateBasis),
	}
}
