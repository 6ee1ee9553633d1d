package bootstrap

import (
	"github.com/kitmak72/room-booking-system/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.AdmissionModule,
	components.HandlerModule,
)
