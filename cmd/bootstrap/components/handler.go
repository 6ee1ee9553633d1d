package components

import (
	"github.com/kitmak72/room-booking-system/internal/handler"
	"github.com/kitmak72/room-booking-system/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewRoomHandler,
	),
	fx.Invoke(
		handler.NewRouter,
	),
)
