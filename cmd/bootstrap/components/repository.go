package components

import (
	"github.com/kitmak72/room-booking-system/internal/admission"
	"github.com/kitmak72/room-booking-system/internal/infra/db"
	"github.com/kitmak72/room-booking-system/internal/infra/readstore"
	"github.com/kitmak72/room-booking-system/internal/infra/repository"
	"github.com/kitmak72/room-booking-system/internal/usecase/commands"
	"github.com/kitmak72/room-booking-system/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(commands.SettlementStore)),
			fx.As(new(admission.PendingSource)),
		),
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(commands.RoomRepository)),
			fx.As(new(commands.RoomWriteRepository)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
