package bootstrap

import (
	"context"
	"log/slog"

	"vinyl-record-house/internal/infra/messaging"
	"vinyl-record-house/internal/pkg/clock"
	"vinyl-record-house/internal/pkg/config"
	"vinyl-record-house/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
		NewRelay,
	),
	fx.Invoke(func(*messaging.Relay) {}),
)

func NewPublisher(cfg config.Config) messaging.Publisher {
	brokers := messaging.ParseBrokers(cfg.Kafka.Brokers)
	if len(brokers) == 0 {
		slog.Info("kafka disabled: notifications are logged instead of published")
		return messaging.LogPublisher{}
	}
	return messaging.NewKafkaPublisher(brokers, cfg.Outbox.PublishTimeout)
}

// NewRelay ties the outbox relay to the app lifecycle; Stop closes the publisher.
func NewRelay(lc fx.Lifecycle, uow shared.UnitOfWork, publisher messaging.Publisher, cfg config.Config, clk clock.Clock) *messaging.Relay {
	relay := messaging.NewRelay(uow, publisher, cfg.Outbox, clk)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return relay.Stop(ctx)
		},
	})
	return relay
}
