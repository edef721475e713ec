package components

import (
	"hotel-voucher-api/internal/handler"
	"hotel-voucher-api/internal/handler/api"
	"hotel-voucher-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewVoucherHandler,
		api.NewSyncHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
