package bootstrap

import (
	"vinyl-record-house/internal/infra/payment"
	"vinyl-record-house/internal/pkg/config"
	"vinyl-record-house/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		func(cfg config.Config) commands.PaymentGateway {
			return payment.NewGateway(cfg.Payment)
		},
	),
)
