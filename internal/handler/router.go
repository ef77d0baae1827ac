package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"baby-registry/internal/handler/api"
	"baby-registry/internal/handler/middleware"
	"baby-registry/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine              *gin.Engine
	Config              config.Config
	Logger              *middleware.Logger
	RateLimiter         *middleware.RateLimiter
	AuthMiddleware      *middleware.AuthMiddleware
	AuthHandler         *api.AuthHandler
	ItemHandler         *api.ItemHandler
	ContributionHandler *api.ContributionHandler
	ReservationHandler  *api.ReservationHandler
	MailingHandler      *api.MailingHandler
	PaymentHandler      *api.PaymentHandler
	HealthHandler       *api.HealthHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	limited := []gin.HandlerFunc{p.RateLimiter.Middleware()}

	engine.GET("/health", p.HealthHandler.Live)
	engine.GET("/health/ready", p.HealthHandler.Ready)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/items", Handler: p.ItemHandler.List},
			{Method: http.MethodGet, Path: "/items/:id", Handler: p.ItemHandler.Get},
			{Method: http.MethodPost, Path: "/items/:id/reservations", Handler: p.ReservationHandler.Reserve, Mw: limited},
			{Method: http.MethodDelete, Path: "/items/:id/reservations", Handler: p.ReservationHandler.Release},
			{Method: http.MethodPost, Path: "/contributions", Handler: p.ContributionHandler.Create, Mw: limited},
			{Method: http.MethodGet, Path: "/payment-details", Handler: p.PaymentHandler.Get},
			{Method: http.MethodPost, Path: "/admin/login", Handler: p.AuthHandler.Login, Mw: limited},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(p.AuthMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.AuthHandler.Logout},
				{Method: http.MethodPost, Path: "/items", Handler: p.ItemHandler.Create},
				{Method: http.MethodPut, Path: "/items/:id", Handler: p.ItemHandler.Update},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: p.ItemHandler.Delete},
				{Method: http.MethodPost, Path: "/emails/broadcast", Handler: p.MailingHandler.Broadcast},
				{Method: http.MethodPost, Path: "/emails/single", Handler: p.MailingHandler.Single},
			})
		}
	}
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
