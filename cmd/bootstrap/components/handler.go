package components

import (
	"venue-pricing/internal/handler"
	"venue-pricing/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTariffHandler,
		api.NewScheduleHandler,
	),
	fx.Invoke(handler.NewRouter),
)
