package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shop-api/internal/domain/user"
	"shop-api/internal/handler/api"
	"shop-api/internal/handler/middleware"
	"shop-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, cartHandler *api.CartHandler, couponHandler *api.CouponHandler, reviewHandler *api.ReviewHandler, authMiddleware *middleware.AuthMiddleware, metrics *middleware.Metrics) {
	setupMiddleware(engine, cfg, metrics)
	setupRoutes(engine, cartHandler, couponHandler, reviewHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, metrics *middleware.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(metrics.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cartHandler *api.CartHandler, couponHandler *api.CouponHandler, reviewHandler *api.ReviewHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.Get},
				{Method: http.MethodPost, Path: "/add", Handler: cartHandler.Add},
				{Method: http.MethodPut, Path: "/update", Handler: cartHandler.Update},
				{Method: http.MethodDelete, Path: "/remove/:productId", Handler: cartHandler.Remove},
				{Method: http.MethodDelete, Path: "/clear", Handler: cartHandler.Clear},
			})
		}

		coupon := apiGroup.Group("/coupon")
		{
			addRoutes(coupon, []route{
				{Method: http.MethodPost, Path: "/validate", Handler: couponHandler.Validate},
				{Method: http.MethodGet, Path: "", Handler: couponHandler.List},
			})

			authRequired := coupon.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/use", Handler: couponHandler.Use},
				{
					Method:  http.MethodPost,
					Path:    "",
					Handler: couponHandler.Create,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)},
				},
			})
		}

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "/:productId/reviews", Handler: reviewHandler.ListByProduct},
				{
					Method:  http.MethodPost,
					Path:    "/:productId/reviews",
					Handler: reviewHandler.Create,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireAuth()},
				},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reviews, []route{
				{Method: http.MethodDelete, Path: "/:id", Handler: reviewHandler.Delete},
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
