package components

import (
	"cashdrawer-api/internal/handler"
	"cashdrawer-api/internal/handler/api"
	"cashdrawer-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCashDrawerHandler,
		api.NewCashTransactionHandler,
		api.NewDrawerHistoryHandler,
		middleware.NewAuthMiddleware,
		func(cd *api.CashDrawerHandler, ct *api.CashTransactionHandler, dh *api.DrawerHistoryHandler) handler.Handlers {
			return handler.Handlers{CashDrawer: cd, CashTransaction: ct, DrawerHistory: dh}
		},
	),
	fx.Invoke(handler.NewRouter),
)
