package components

import (
	"vinyl-record-house/internal/domain/order"
	"vinyl-record-house/internal/pkg/clock"
	"vinyl-record-house/internal/pkg/config"
	"vinyl-record-house/internal/usecase"
	"vinyl-record-house/internal/usecase/commands"
	"vinyl-record-house/internal/usecase/queries"
	"vinyl-record-house/internal/usecase/shared"

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
	NewShippingPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewProfileUseCase,
		commands.NewCartUseCase,
		NewCheckoutCommands,
		NewOrderCommands,
		commands.NewReviewUseCase,
		commands.NewWishlistUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewCartQueries,
		queries.NewOrderQueries,
		queries.NewReviewQueries,
		queries.NewWishlistQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewShippingPolicy is the one policy shared by cart views and checkout.
func NewShippingPolicy(cfg config.Config) (order.ShippingPolicy, error) {
	return order.NewShippingPolicy(cfg.Shipping.FlatFee, cfg.Shipping.FreeThreshold)
}

func NewCheckoutCommands(
	uow shared.UnitOfWork,
	payments commands.PaymentGateway,
	cache commands.RecordCacheInvalidator,
	metrics commands.CheckoutMetrics,
	shipping order.ShippingPolicy,
	cfg config.Config,
	clk clock.Clock,
) commands.CheckoutCommands {
	return commands.NewCheckoutUseCase(uow, payments, cache, metrics, shipping, cfg.Kafka.OrderTopic, clk)
}

func NewOrderCommands(
	uow shared.UnitOfWork,
	cache commands.RecordCacheInvalidator,
	metrics commands.CheckoutMetrics,
	cfg config.Config,
	clk clock.Clock,
) commands.OrderCommands {
	return commands.NewOrderUseCase(uow, cache, metrics, cfg.Kafka.OrderTopic, clk)
}
