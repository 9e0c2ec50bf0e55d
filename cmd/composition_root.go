package cmd

import (
	"context"
	"log/slog"

	"fulfilment/internal/adapters/out/gateways"
	"fulfilment/internal/adapters/out/kafka"
	"fulfilment/internal/adapters/out/postgres"
	"fulfilment/internal/adapters/out/postgres/catalogrepo"
	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/application/usecases/queries"
	"fulfilment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	predictor  ports.ShortagePredictor
	suggester  ports.SubstitutionSuggester
	decider    ports.ShortageDecider
	catalog    ports.CatalogReader
	publisher  ports.OrderEventPublisher
	closers    []func() error
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		predictor:  gateways.NewPredictClient(config.PredictServiceURL, config.GatewayTimeout, logger),
		suggester:  gateways.NewSuggestClient(config.SubstitutionServiceURL, config.GatewayTimeout, logger),
		decider:    gateways.NewDecideClient(config.DecisionServiceURL, config.GatewayTimeout, logger),
		catalog:    catalogrepo.NewGormCatalogReader(gormDB),
		logger:     logger,
	}

	if config.KafkaHost != "" {
		publisher := kafka.NewOrderEventPublisher(config.KafkaHost, config.KafkaOrderFinalizedTopic)
		root.publisher = publisher
		root.closers = append(root.closers, publisher.Close)
	} else {
		root.publisher = noopOrderEventPublisher{}
	}

	return root
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessOrderCommandHandler(
		f,
		c.predictor,
		c.suggester,
		c.decider,
		c.catalog,
		c.publisher,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDegradedOrdersQueryHandler() queries.GetDegradedOrdersQueryHandler {
	return queries.NewGetDegradedOrdersQueryHandler(c.gormDB)
}

// Close releases resources held by long-lived adapters.
func (c *CompositionRoot) Close() {
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			c.logger.Error("Failed to close adapter", "error", err)
		}
	}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// noopOrderEventPublisher drops events when no broker is configured.
type noopOrderEventPublisher struct{}

func (noopOrderEventPublisher) PublishOrderFinalized(_ context.Context, _ ports.OrderFinalizedEvent) error {
	return nil
}
