package main

import (
	"context"
	"log/slog"
	"os"

	"staybook/cmd/bootstrap"
	"staybook/internal/usecase/commands"

	"go.uber.org/fx"
)

func runRelay(lc fx.Lifecycle, relay commands.NotificationRelay, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting notification relay")
			go func() {
				defer close(done)
				if err := relay.Run(ctx); err != nil {
					logger.Error("notification relay stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
			logger.Info("notification relay stopped")
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.RelayModule,
		fx.Invoke(runRelay),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start relay", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop relay", "error", err)
	}
}
