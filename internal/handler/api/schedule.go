package api

import (
	"net/http"

	reqdto "venue-pricing/internal/handler/dto/request"
	resdto "venue-pricing/internal/handler/dto/response"
	"venue-pricing/internal/handler/httperr"
	"venue-pricing/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	cmds commands.ScheduleCommands
}

func NewScheduleHandler(cmds commands.ScheduleCommands) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds}
}

// @Summary Check schedule conflicts
// @Description List the room's basic rules a candidate rule would overlap
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.ScheduleRuleRequest true "Candidate rule"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/rooms/{id}/schedules/conflicts [post]
func (h *ScheduleHandler) CheckConflicts(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room id", nil)
		return
	}
	var req reqdto.ScheduleRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	candidate, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rule", err.Error())
		return
	}
	conflicts, err := h.cmds.CheckConflicts(c.Request.Context(), roomID, candidate)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"has_conflicts": len(conflicts) > 0,
		"conflicts":     resdto.FromRules(conflicts),
	})
}

// @Summary Check overlap
// @Description Report whether two recurring rules share any moment of the week
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body reqdto.OverlapRequest true "Rule pair"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/schedules/overlap [post]
func (h *ScheduleHandler) CheckOverlap(c *gin.Context) {
	var req reqdto.OverlapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	first, err := req.First.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid first rule", err.Error())
		return
	}
	second, err := req.Second.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid second rule", err.Error())
		return
	}
	overlap, err := h.cmds.CheckOverlap(c.Request.Context(), first, second)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"overlap": overlap})
}
