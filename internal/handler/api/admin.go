package api

import (
	"net/http"

	reqdto "loyalty-ledger/internal/handler/dto/request"
	resdto "loyalty-ledger/internal/handler/dto/response"
	"loyalty-ledger/internal/handler/httperr"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	redemptions commands.RedemptionCommands
	adjustments commands.AdjustmentCommands
	balances    queries.BalanceQueries
	ledger      *LedgerHandler
}

func NewAdminHandler(
	redemptions commands.RedemptionCommands,
	adjustments commands.AdjustmentCommands,
	balances queries.BalanceQueries,
	ledger *LedgerHandler,
) *AdminHandler {
	return &AdminHandler{
		redemptions: redemptions,
		adjustments: adjustments,
		balances:    balances,
		ledger:      ledger,
	}
}

// @Summary Set redemption status
// @Description Admin fulfilment transition. Cancelling refunds the points paid.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Redemption ID"
// @Param request body reqdto.SetRedemptionStatusRequest true "Target status"
// @Success 200 {object} resdto.SetRedemptionStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/redemptions/{id}/status [patch]
func (h *AdminHandler) SetRedemptionStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id", "redemption")
	if !ok {
		return
	}
	var req reqdto.SetRedemptionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.redemptions.SetStatus(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSetStatusResult(result))
}

// @Summary Adjust a user's points
// @Description Signed manual adjustment. Debits below zero are clamped and the audit row records both amounts.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.AdjustPointsRequest true "Adjustment"
// @Success 201 {object} resdto.AdjustPointsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id}/adjustments [post]
func (h *AdminHandler) AdjustPoints(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}
	var req reqdto.AdjustPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.adjustments.AdjustPoints(c.Request.Context(), req.ToCommand(userID), actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAdjustPointsResult(result))
}

// @Summary List a user's point adjustments
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {array} resdto.AdjustmentHistoryItem
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/users/{id}/adjustments [get]
func (h *AdminHandler) ListAdjustments(c *gin.Context) {
	userID, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}
	h.ledger.writeAdjustments(c, userID)
}

// @Summary Get a user's balance
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id}/balance [get]
func (h *AdminHandler) GetBalance(c *gin.Context) {
	userID, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}
	view, err := h.balances.GetBalance(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}

func (h *LedgerHandler) writeAdjustments(c *gin.Context, userID uuid.UUID) {
	views, err := h.history.Adjustments(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	items, err := resdto.FromAdjustmentViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, items)
}
