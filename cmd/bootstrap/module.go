package bootstrap

import (
	"vinyl-record-house/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	CacheModule,
	MetricsModule,
	PaymentModule,
	components.PersistenceModule,
	MessagingModule,
	components.UseCaseModule,
	components.HandlerModule,
)
