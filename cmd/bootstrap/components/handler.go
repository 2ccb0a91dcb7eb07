package components

import (
	"loyalty-ledger/internal/handler"
	"loyalty-ledger/internal/handler/api"
	"loyalty-ledger/internal/handler/middleware"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLedgerHandler,
		api.NewCheckInHandler,
		api.NewPromoHandler,
		api.NewRedemptionHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(registerRoutes),
)

type routeParams struct {
	fx.In

	Engine     *gin.Engine
	Config     config.Config
	Ledger     *api.LedgerHandler
	CheckIn    *api.CheckInHandler
	Promo      *api.PromoHandler
	Redemption *api.RedemptionHandler
	Admin      *api.AdminHandler
	Auth       *middleware.AuthMiddleware
	Logger     *middleware.Logger
	Metrics    *metrics.Ledger
}

func registerRoutes(p routeParams) {
	handler.NewRouter(p.Engine, p.Config, handler.Handlers{
		Ledger:     p.Ledger,
		CheckIn:    p.CheckIn,
		Promo:      p.Promo,
		Redemption: p.Redemption,
		Admin:      p.Admin,
		Auth:       p.Auth,
		Logger:     p.Logger,
		Metrics:    p.Metrics,
	})
}
