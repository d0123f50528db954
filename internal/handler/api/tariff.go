package api

import (
	"net/http"
	"time"

	reqdto "venue-pricing/internal/handler/dto/request"
	resdto "venue-pricing/internal/handler/dto/response"
	"venue-pricing/internal/handler/httperr"
	"venue-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TariffHandler struct {
	q queries.TariffQueries
}

func NewTariffHandler(q queries.TariffQueries) *TariffHandler {
	return &TariffHandler{q: q}
}

// @Summary Quote a room
// @Description Price one room for an interval, headcount and seating
// @Tags tariffs
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.RoomQuoteRequest true "Room quote request"
// @Success 200 {object} resdto.RoomQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/rooms/{id}/quote [post]
func (h *TariffHandler) QuoteRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room id", nil)
		return
	}
	var req reqdto.RoomQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	quote, err := h.q.QuoteRoom(c.Request.Context(), req.ToParams(roomID))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomQuote(quote))
}

// @Summary Quote a booking
// @Description Price several rooms and packages booked together
// @Tags tariffs
// @Accept json
// @Produce json
// @Param request body reqdto.BookingQuoteRequest true "Booking quote request"
// @Success 200 {object} resdto.BookingQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/quote [post]
func (h *TariffHandler) QuoteBooking(c *gin.Context) {
	var req reqdto.BookingQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	quote, err := h.q.QuoteBooking(c.Request.Context(), req.ToParams())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingQuote(quote))
}

// @Summary Applicable rules
// @Description List the room's rules whose windows meet the interval
// @Tags tariffs
// @Produce json
// @Param id path string true "Room ID"
// @Param start query string true "Interval start (RFC 3339)"
// @Param end query string true "Interval end (RFC 3339)"
// @Success 200 {array} resdto.RuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id}/applicable-rules [get]
func (h *TariffHandler) ApplicableRules(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room id", nil)
		return
	}
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start", nil)
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid end", nil)
		return
	}
	rules, err := h.q.ApplicableRules(c.Request.Context(), roomID, start, end)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": resdto.FromRules(rules)})
}
