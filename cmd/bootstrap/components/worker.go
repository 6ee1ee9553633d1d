package components

import (
	"context"
	"log/slog"

	"github.com/kitmak72/room-booking-system/internal/admission"
	"github.com/kitmak72/room-booking-system/internal/usecase/commands"

	"go.uber.org/fx"
)

var AdmissionModule = fx.Module("admission",
	fx.Provide(
		admission.NewQueue,
		func(q *admission.Queue, settler commands.SettlementCommands, logger *slog.Logger) *admission.Worker {
			return admission.NewWorker(q, settler, logger)
		},
	),
	fx.Invoke(
		startAdmission,
	),
)

// startAdmission rehydrates the queue from the store and starts the
// settlement worker. Rehydration runs to completion inside OnStart,
// before the HTTP server begins accepting submissions, so recovered
// bookings keep their request-time order ahead of new arrivals.
func startAdmission(lc fx.Lifecycle, queue *admission.Queue, worker *admission.Worker) {
	workerCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := queue.Rehydrate(ctx); err != nil {
				cancel()
				return err
			}
			worker.Start(workerCtx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			return worker.Stop(ctx)
		},
	})
}
