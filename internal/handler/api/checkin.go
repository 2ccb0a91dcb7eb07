package api

import (
	"net/http"

	resdto "loyalty-ledger/internal/handler/dto/response"
	"loyalty-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckInHandler struct {
	cmds commands.CheckInCommands
}

func NewCheckInHandler(cmds commands.CheckInCommands) *CheckInHandler {
	return &CheckInHandler{cmds: cmds}
}

// @Summary Check in to an event
// @Description Awards check-in points once per user and event. A repeat scan returns 409 with the current total.
// @Tags check-ins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 201 {object} resdto.CheckInResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /events/{id}/check-in [post]
func (h *CheckInHandler) CheckIn(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	eventID, ok := pathUUID(c, "id", "event")
	if !ok {
		return
	}

	result, err := h.cmds.CheckIn(c.Request.Context(), actor.ID, eventID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckInResult(result))
}
