package response

import (
	"time"

	"venue-pricing/internal/domain/tariff"
	"venue-pricing/internal/usecase/queries"
)

type SpanResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type RoomQuoteResponse struct {
	RoomID           string         `json:"room_id"`
	RoomName         string         `json:"room_name"`
	Start            time.Time      `json:"start"`
	End              time.Time      `json:"end"`
	Persons          int            `json:"persons"`
	RuleCharges      float64        `json:"rule_charges"`
	ExclusiveCharges float64        `json:"exclusive_charges"`
	BaseCharge       float64        `json:"base_charge"`
	SeatingCharge    float64        `json:"seating_charge"`
	Covered          []SpanResponse `json:"covered"`
	Total            float64        `json:"total"`
	QuotedAt         int64          `json:"quoted_at"`
}

func FromRoomQuote(q *queries.RoomQuote) *RoomQuoteResponse {
	covered := make([]SpanResponse, len(q.Breakdown.Covered))
	for i, s := range q.Breakdown.Covered {
		covered[i] = SpanResponse{Start: s.Start, End: s.End}
	}
	return &RoomQuoteResponse{
		RoomID:           q.RoomID.String(),
		RoomName:         q.RoomName,
		Start:            q.Start,
		End:              q.End,
		Persons:          q.Persons,
		RuleCharges:      q.Breakdown.RuleCharges,
		ExclusiveCharges: q.Breakdown.ExclusiveCharges,
		BaseCharge:       q.Breakdown.BaseCharge,
		SeatingCharge:    q.Breakdown.SeatingCharge,
		Covered:          covered,
		Total:            q.Breakdown.Total,
		QuotedAt:         q.QuotedAt.Unix(),
	}
}

type PackageQuoteResponse struct {
	PackageID string  `json:"package_id"`
	Name      string  `json:"name"`
	Basis     string  `json:"basis"`
	Amount    float64 `json:"amount"`
}

type BookingQuoteResponse struct {
	Start    time.Time               `json:"start"`
	End      time.Time               `json:"end"`
	Persons  int                     `json:"persons"`
	Rooms    []*RoomQuoteResponse    `json:"rooms"`
	Packages []*PackageQuoteResponse `json:"packages"`
	Total    float64                 `json:"total"`
	QuotedAt int64                   `json:"quoted_at"`
}

func FromBookingQuote(q *queries.BookingQuote) *BookingQuoteResponse {
	rooms := make([]*RoomQuoteResponse, len(q.Rooms))
	for i := range q.Rooms {
		rooms[i] = FromRoomQuote(&q.Rooms[i])
	}
	packages := make([]*PackageQuoteResponse, len(q.Packages))
	for i, p := range q.Packages {
		packages[i] = &PackageQuoteResponse{
			PackageID: p.PackageID.String(),
			Name:      p.Name,
			Basis:     p.Basis.String(),
			Amount:    p.Amount,
		}
	}
	return &BookingQuoteResponse{
		Start:    q.Start,
		End:      q.End,
		Persons:  q.Persons,
		Rooms:    rooms,
		Packages: packages,
		Total:    q.Total,
		QuotedAt: q.QuotedAt.Unix(),
	}
}

type RuleResponse struct {
	ID                 string   `json:"id"`
	Category           string   `json:"category"`
	StartDay           int      `json:"start_day"`
	EndDay             int      `json:"end_day"`
	StartTime          string   `json:"start_time"`
	EndTime            string   `json:"end_time"`
	Rate               float64  `json:"rate"`
	RateBasis          string   `json:"rate_basis"`
	ExclusivityTier    string   `json:"exclusivity_tier"`
	ExclusiveRate      *float64 `json:"exclusive_rate,omitempty"`
	ExclusiveRateBasis string   `json:"exclusive_rate_basis,omitempty"`
}

func FromRules(rules []tariff.RecurringRateRule) []*RuleResponse {
	res := make([]*RuleResponse, len(rules))
	for i, r := range rules {
		res[i] = &RuleResponse{
			ID:                 r.ID.String(),
			Category:           string(r.Category),
			StartDay:           int(r.StartDay),
			EndDay:             int(r.EndDay),
			StartTime:          r.StartTime.String(),
			EndTime:            r.EndTime.String(),
			Rate:               r.Rate,
			RateBasis:          r.RateBasis.String(),
			ExclusivityTier:    string(r.ExclusivityTier),
			ExclusiveRate:      r.ExclusiveRate,
			ExclusiveRateBasis: string(r.ExclusiveRateBasis),
		}
	}
	return res
}
