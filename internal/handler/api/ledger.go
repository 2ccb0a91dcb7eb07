package api

import (
	"net/http"

	resdto "loyalty-ledger/internal/handler/dto/response"
	"loyalty-ledger/internal/handler/httperr"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	balances queries.BalanceQueries
	history  queries.HistoryQueries
}

func NewLedgerHandler(balances queries.BalanceQueries, history queries.HistoryQueries) *LedgerHandler {
	return &LedgerHandler{balances: balances, history: history}
}

// @Summary Get my balance
// @Description Current points with lifetime earned and spent totals
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BalanceResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /me/balance [get]
func (h *LedgerHandler) MyBalance(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.balances.GetBalance(c.Request.Context(), actor.ID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}

// @Summary List my check-ins
// @Description Newest first, bounded by the configured history limit
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CheckInHistoryItem
// @Failure 401 {object} httperr.Response
// @Router /me/check-ins [get]
func (h *LedgerHandler) MyCheckIns(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.history.CheckIns(c.Request.Context(), actor.ID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	items, err := resdto.FromCheckInViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary List my point adjustments
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AdjustmentHistoryItem
// @Failure 401 {object} httperr.Response
// @Router /me/adjustments [get]
func (h *LedgerHandler) MyAdjustments(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	h.writeAdjustments(c, actor.ID)
}
