package bootstrap

import (
	"vinyl-record-house/internal/infra/metrics"
	"vinyl-record-house/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.New,
		func(m *metrics.Metrics) commands.CheckoutMetrics { return m },
	),
)
