package components

import (
	"shop-api/internal/handler"
	"shop-api/internal/handler/api"
	"shop-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewCouponHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		middleware.NewMetrics,
	),
	fx.Invoke(handler.NewRouter),
)
