package handler

import (
	"net/http"

	"staybook/internal/domain/user"
	"staybook/internal/handler/api"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/handler/middleware"
	"staybook/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Property *api.PropertyHandler
	Coupon   *api.CouponHandler
	Admin    *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.GET("/properties/:slug/calendar.ics", h.Property.CalendarExport)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/properties/:slug/availability", Handler: h.Property.Availability},
			{Method: http.MethodGet, Path: "/properties/:slug/pricing", Handler: h.Property.Pricing},
			{Method: http.MethodPost, Path: "/coupons/validate", Handler: h.Coupon.Validate},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "/bookings/:code", Handler: h.Booking.GetByCode},
		})

		admin := apiGroup.Group("/admin/properties/:slug")
		admin.Use(authMiddleware.RequireAuth())
		{
			viewer := authMiddleware.RequireRoleAtLeast(user.RoleViewer)
			operator := authMiddleware.RequireRoleAtLeast(user.RoleOperator)
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/calendar/sync", Handler: h.Admin.SyncCalendar, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodGet, Path: "/blocked-dates", Handler: h.Admin.ListBlockedDates, Mw: []gin.HandlerFunc{viewer}},
				{Method: http.MethodPost, Path: "/blocked-dates", Handler: h.Admin.AddBlockedDates, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodDelete, Path: "/blocked-dates/:id", Handler: h.Admin.DeleteBlockedDates, Mw: []gin.HandlerFunc{operator}},
			})
		}
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
