package bootstrap

import (
	"log/slog"

	"vinyl-record-house/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logIntegrations),
)

// logIntegrations records which optional backends this process will talk to.
// An empty address means the in-process fallback is used instead.
func logIntegrations(cfg config.Config, logger *slog.Logger) {
	logger.Info("store configuration",
		"redis_cache", cfg.Redis.Address != "",
		"kafka_relay", cfg.Kafka.Brokers != "",
		"payment_gateway", cfg.Payment.GatewayURL != "",
		"auto_migrate", cfg.DB.AutoMigrate,
		"shipping_flat_fee", cfg.Shipping.FlatFee,
		"shipping_free_threshold", cfg.Shipping.FreeThreshold,
	)
}
