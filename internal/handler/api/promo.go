package api

import (
	"net/http"

	resdto "loyalty-ledger/internal/handler/dto/response"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromoHandler struct {
	cmds commands.PromoCommands
	q    queries.PromoQueries
}

func NewPromoHandler(cmds commands.PromoCommands, q queries.PromoQueries) *PromoHandler {
	return &PromoHandler{cmds: cmds, q: q}
}

// @Summary Use a promo
// @Description Claims a promo once per user, subject to its validity window and usage cap
// @Tags promos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promo ID"
// @Success 201 {object} resdto.PromoUseResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /promos/{id}/use [post]
func (h *PromoHandler) Use(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	promoID, ok := pathUUID(c, "id", "promo")
	if !ok {
		return
	}

	result, err := h.cmds.UsePromo(c.Request.Context(), actor.ID, promoID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPromoUseResult(result))
}

// @Summary Look up a promo by code
// @Tags promos
// @Produce json
// @Security BearerAuth
// @Param code path string true "Promo code"
// @Success 200 {object} resdto.PromoResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /promos/code/{code} [get]
func (h *PromoHandler) GetByCode(c *gin.Context) {
	view, err := h.q.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromoView(view))
}
