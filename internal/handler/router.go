package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"loyalty-ledger/internal/domain/user"
	"loyalty-ledger/internal/handler/api"
	"loyalty-ledger/internal/handler/middleware"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Ledger     *api.LedgerHandler
	CheckIn    *api.CheckInHandler
	Promo      *api.PromoHandler
	Redemption *api.RedemptionHandler
	Admin      *api.AdminHandler
	Auth       *middleware.AuthMiddleware
	Logger     *middleware.Logger
	Metrics    *metrics.Ledger
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg, h)
	setupRoutes(engine, cfg, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, h Handlers) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(h.Logger.GetSlogLogger()))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(h.Logger.LoggingMiddleware())
	if cfg.Metrics.Enabled {
		engine.Use(middleware.MetricsMiddleware(h.Metrics))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if cfg.Metrics.Enabled {
		engine.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(h.Auth.RequireAuth())
	{
		me := apiGroup.Group("/me")
		addRoutes(me, []route{
			{Method: http.MethodGet, Path: "/balance", Handler: h.Ledger.MyBalance},
			{Method: http.MethodGet, Path: "/check-ins", Handler: h.Ledger.MyCheckIns},
			{Method: http.MethodGet, Path: "/adjustments", Handler: h.Ledger.MyAdjustments},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/events/:id/check-in", Handler: h.CheckIn.CheckIn},
			{Method: http.MethodPost, Path: "/promos/:id/use", Handler: h.Promo.Use},
			{Method: http.MethodGet, Path: "/promos/code/:code", Handler: h.Promo.GetByCode},
		})

		redemptions := apiGroup.Group("/redemptions")
		addRoutes(redemptions, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Redemption.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Redemption.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Redemption.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Redemption.Cancel},
		})

		adminOnly := []gin.HandlerFunc{h.Auth.RequireRoleAtLeast(user.RoleAdmin)}
		admin := apiGroup.Group("/admin")
		addRoutes(admin, []route{
			{Method: http.MethodPatch, Path: "/redemptions/:id/status", Handler: h.Admin.SetRedemptionStatus, Mw: adminOnly},
			{Method: http.MethodPost, Path: "/users/:id/adjustments", Handler: h.Admin.AdjustPoints, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/users/:id/adjustments", Handler: h.Admin.ListAdjustments, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/users/:id/balance", Handler: h.Admin.GetBalance, Mw: adminOnly},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
