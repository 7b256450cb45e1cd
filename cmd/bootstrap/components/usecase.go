package components

import (
	"context"
	"log/slog"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/pricing"
	"staybook/internal/infra/ical"
	"staybook/internal/infra/messaging"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/jwt"
	"staybook/internal/usecase"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock) *booking.Services {
		return booking.NewServices(clk, booking.RandomCodes{})
	},
	func(cfg config.Config) (pricing.Schedule, error) {
		return pricing.NewSchedule(cfg.Pricing.ServiceFeeRate, cfg.Pricing.TaxRate, cfg.Pricing.DefaultCurrency)
	},
	func(cfg config.Config) (shared.BookingSettings, error) {
		return shared.NewBookingSettings(cfg.Booking)
	},
	fx.Annotate(
		func(cfg config.Config) *ical.Fetcher {
			return ical.NewFetcher(cfg.ICal)
		},
		fx.As(new(commands.CalendarFeed)),
	),
	fx.Annotate(
		func(cfg config.Config) *ical.Encoder {
			return ical.NewEncoder(cfg.ICal.ProductID, cfg.ICal.UIDDomain)
		},
		fx.As(new(queries.CalendarEncoder)),
	),
	fx.Annotate(
		func(s *jwt.Service) *jwt.Service { return s },
		fx.As(new(commands.TokenIssuer)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewCalendarSyncCommands,
		commands.NewBlockedDateCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewCouponQueries,
		func(schedule pricing.Schedule, settings shared.BookingSettings) queries.PropertyQueriesConfig {
			return queries.PropertyQueriesConfig{
				Schedule:            schedule,
				Location:            settings.Location,
				AvailabilityHorizon: settings.AvailabilityHorizon,
				MaxWindowDays:       settings.MaxWindowDays,
			}
		},
		queries.NewPropertyQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var RelayModule = fx.Module("relay",
	fx.Provide(
		clock.NewRealClock,
		func(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.EventPublisher {
			publisher := messaging.NewKafkaPublisher(cfg.Kafka, logger)
			lc.Append(fx.Hook{
				OnStop: func(context.Context) error {
					return publisher.Close()
				},
			})
			return publisher
		},
		func(uow shared.UnitOfWork, publisher commands.EventPublisher, clk clock.Clock, cfg config.Config, logger *slog.Logger) commands.NotificationRelay {
			return commands.NewNotificationRelay(uow, publisher, clk, cfg.Notify, logger)
		},
	),
)
