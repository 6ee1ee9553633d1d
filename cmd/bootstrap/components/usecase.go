package components

import (
	"github.com/kitmak72/room-booking-system/internal/admission"
	"github.com/kitmak72/room-booking-system/internal/domain/booking"
	"github.com/kitmak72/room-booking-system/internal/pkg/clock"
	"github.com/kitmak72/room-booking-system/internal/pkg/config"
	"github.com/kitmak72/room-booking-system/internal/usecase/commands"
	"github.com/kitmak72/room-booking-system/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) booking.AdmissionPolicy {
		return booking.NewAdmissionPolicy(cfg.Booking.OpenHour, cfg.Booking.CloseHour)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewRoomCommands,
		func(store commands.SettlementStore, pool *pgxpool.Pool, cfg config.Config) commands.SettlementCommands {
			return commands.NewSettlementCommands(store, pool, cfg.Booking.SettlementRetries)
		},
		func(q *admission.Queue) commands.AdmissionQueue {
			return q
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewRoomQueries,
	),
)
