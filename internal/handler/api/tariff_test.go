//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"venue-pricing/internal/domain/tariff"
	"venue-pricing/internal/handler/api"
	resdto "venue-pricing/internal/handler/dto/response"
	"venue-pricing/internal/pkg/errs"
	"venue-pricing/internal/usecase/queries"
	"venue-pricing/tests/common/builder"
	"venue-pricing/tests/common/httptest"
	"venue-pricing/tests/common/testutil"
	queriesmock "venue-pricing/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TariffHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockTariffQueries
	handler     *api.TariffHandler
}

func (s *TariffHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockTariffQueries(s.mockCtrl)
	s.handler = api.NewTariffHandler(s.mockQueries)

	s.router.POST("/api/rooms/:id/quote", s.handler.QuoteRoom)
	s.router.GET("/api/rooms/:id/applicable-rules", s.handler.ApplicableRules)
	s.router.POST("/api/bookings/quote", s.handler.QuoteBooking)
}

func (s *TariffHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTariffHandlerSuite(t *testing.T) {
	suite.Run(t, new(TariffHandlerTestSuite))
}

type testCaseQuote struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

var usecaseErrorCases = []struct {
	name           string
	err            error
	expectedStatus int
	expectedMsg    string
}{
	{
		name:           "room not found",
		err:            errs.Wrapf(errs.ErrRoomNotFound, "room %s", uuid.New()),
		expectedStatus: http.StatusNotFound,
		expectedMsg:    "Room not found",
	},
	{
		name:           "package not found",
		err:            errs.Wrapf(errs.ErrPackageNotFound, "package %s", uuid.New()),
		expectedStatus: http.StatusNotFound,
		expectedMsg:    "Package not found",
	},
	{
		name:           "engine rejected the request",
		err:            errs.Mark(tariff.ErrInvalidBookingInterval, errs.ErrInvalidQuoteRequest),
		expectedStatus: http.StatusUnprocessableEntity,
		expectedMsg:    "Invalid quote request",
	},
	{
		name:           "database failure",
		err:            errs.Mark(errors.New("connection reset"), errs.ErrDatabaseOperationFailed),
		expectedStatus: http.StatusInternalServerError,
		expectedMsg:    "Internal error",
	},
	{
		name:           "unexpected error",
		err:            errors.New("boom"),
		expectedStatus: http.StatusInternalServerError,
		expectedMsg:    "Internal error",
	},
}

// ================================================================================
// TestQuoteRoom
// ================================================================================

func (s *TariffHandlerTestSuite) TestQuoteRoom() {
	qb := builder.NewQuoteBuilder()
	url := "/api/rooms/" + qb.RoomID.String() + "/quote"
	reqBody := qb.BuildRoomQuoteRequestDTO()
	quote := qb.BuildRoomQuote()

	s.Run("success: returns 200 OK with breakdown", func() {
		s.mockQueries.EXPECT().QuoteRoom(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p queries.QuoteRoomParams) (*queries.RoomQuote, error) {
				s.Equal(qb.RoomID, p.RoomID)
				s.True(qb.Start.Equal(p.Start))
				s.True(qb.End.Equal(p.End))
				s.Equal(qb.Persons, p.Persons)
				s.False(p.Exclusive)
				s.Nil(p.Contributions)
				return quote, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.RoomQuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(qb.RoomID.String(), response.RoomID)
		s.Equal("Main Hall", response.RoomName)
		s.InDelta(400, response.Total, 1e-9)
		s.InDelta(400, response.RuleCharges, 1e-9)
		s.Len(response.Covered, 1)
		s.Equal(qb.QuotedAt.Unix(), response.QuotedAt)
	})

	s.Run("success: exclusivity and contributions reach the usecase", func() {
		s.mockQueries.EXPECT().QuoteRoom(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p queries.QuoteRoomParams) (*queries.RoomQuote, error) {
				s.True(p.Exclusive)
				s.Equal("theatre", p.SeatingKey)
				s.Equal(tariff.Contributions{tariff.ContributionExclusive}, p.Contributions)
				return quote, nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("exclusive", true),
			testutil.Field("seating_key", "theatre"),
			testutil.Field("contributions", []string{"exclusive"}),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseQuote{
			{name: "persons boundary OK (1)", mutate: testutil.Field("persons", 1), expectCode: http.StatusOK},
			{name: "persons boundary invalid (0)", mutate: testutil.Field("persons", 0), expectCode: http.StatusBadRequest},
			{name: "missing field: persons (required)", mutate: testutil.Field("persons", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: start (required)", mutate: testutil.Field("start", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: end (required)", mutate: testutil.Field("end", nil), expectCode: http.StatusBadRequest},
			{name: "end before start", mutate: testutil.Field("end", "2025-06-02T09:00:00Z"), expectCode: http.StatusBadRequest},
			{name: "end equal to start", mutate: testutil.Field("end", "2025-06-02T10:00:00Z"), expectCode: http.StatusBadRequest},
			{name: "malformed start", mutate: testutil.Field("start", "monday morning"), expectCode: http.StatusBadRequest},
			{name: "contribution OK (rate)", mutate: testutil.Field("contributions", []string{"rate"}), expectCode: http.StatusOK},
			{name: "contribution invalid", mutate: testutil.Field("contributions", []string{"discount"}), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusOK {
					s.mockQueries.EXPECT().QuoteRoom(gomock.Any(), gomock.Any()).Return(quote, nil).Times(1)
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/invalid-uuid/quote", reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		for _, tc := range usecaseErrorCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().QuoteRoom(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestQuoteBooking
// ================================================================================

func (s *TariffHandlerTestSuite) TestQuoteBooking() {
	url := "/api/bookings/quote"
	qb := builder.NewQuoteBuilder()
	otherRoom := uuid.New()
	reqBody := qb.BuildBookingQuoteRequestDTO(qb.RoomID, otherRoom)
	quote := qb.BuildBookingQuote()

	s.Run("success: returns 200 OK with room and package lines", func() {
		packageID := uuid.New()
		quote := qb.BuildBookingQuote()
		quote.Packages = []queries.PackageQuote{{PackageID: packageID, Name: "coffee", Basis: tariff.RateBasisPerPerson, Amount: 30}}
		quote.Total += 30

		s.mockQueries.EXPECT().QuoteBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p queries.QuoteBookingParams) (*queries.BookingQuote, error) {
				s.Require().Len(p.Rooms, 2)
				s.Equal(qb.RoomID, p.Rooms[0].RoomID)
				s.Equal(otherRoom, p.Rooms[1].RoomID)
				s.True(p.Rooms[1].Exclusive)
				s.Equal([]uuid.UUID{packageID}, p.PackageIDs)
				return quote, nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("package_ids", []string{packageID.String()}),
			testutil.Field("rooms", []map[string]any{
				{"room_id": qb.RoomID.String()},
				{"room_id": otherRoom.String(), "exclusive": true},
			}),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		var response resdto.BookingQuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.InDelta(430, response.Total, 1e-9)
		s.Require().Len(response.Rooms, 1)
		s.Equal("Main Hall", response.Rooms[0].RoomName)
		s.Require().Len(response.Packages, 1)
		s.Equal("coffee", response.Packages[0].Name)
		s.Equal("per_person", response.Packages[0].Basis)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseQuote{
			{name: "no rooms is allowed", mutate: testutil.Field("rooms", nil), expectCode: http.StatusOK},
			{name: "room without id", mutate: testutil.Field("rooms", []map[string]any{{"exclusive": true}}), expectCode: http.StatusBadRequest},
			{name: "malformed package id", mutate: testutil.Field("package_ids", []string{"coffee"}), expectCode: http.StatusBadRequest},
			{name: "persons boundary invalid (0)", mutate: testutil.Field("persons", 0), expectCode: http.StatusBadRequest},
			{name: "end before start", mutate: testutil.Field("end", "2025-06-02T09:00:00Z"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusOK {
					s.mockQueries.EXPECT().QuoteBooking(gomock.Any(), gomock.Any()).Return(quote, nil).Times(1)
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		for _, tc := range usecaseErrorCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().QuoteBooking(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestApplicableRules
// ================================================================================

func (s *TariffHandlerTestSuite) TestApplicableRules() {
	roomID := uuid.New()
	base := "/api/rooms/" + roomID.String() + "/applicable-rules"
	url := base + "?start=2025-06-02T09:00:00Z&end=2025-06-02T10:00:00Z"
	morning := builder.NewRuleBuilder().
		OnDay(tariff.Monday).
		WithTimes("08:00:00", "12:00:00").
		WithRate(25, tariff.RateBasisPerHour).
		Build()

	s.Run("success: returns 200 OK with rules", func() {
		s.mockQueries.EXPECT().
			ApplicableRules(gomock.Any(), roomID, builder.June2025(2, 9, 0), builder.June2025(2, 10, 0)).
			Return([]tariff.RecurringRateRule{morning}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response struct {
			Rules []resdto.RuleResponse `json:"rules"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Rules, 1)
		s.Equal(morning.ID.String(), response.Rules[0].ID)
		s.Equal("08:00:00", response.Rules[0].StartTime)
		s.Equal("12:00:00", response.Rules[0].EndTime)
		s.Equal("per_hour", response.Rules[0].RateBasis)
		s.Equal(0, response.Rules[0].StartDay)
	})

	s.Run("error: 400 Bad Request for missing or malformed bounds", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?end=2025-06-02T10:00:00Z", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid start")

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start=2025-06-02T09:00:00Z&end=tomorrow", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid end")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		for _, tc := range usecaseErrorCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().ApplicableRules(gomock.Any(), roomID, gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
