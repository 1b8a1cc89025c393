package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/identity"
	"orders/internal/adapters/out/kafka"
	"orders/internal/adapters/out/logpublisher"
	"orders/internal/adapters/out/memory/eventlog"
	"orders/internal/adapters/out/memory/orderrepo"
	"orders/internal/adapters/out/rabbitmq"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
	"orders/internal/jobs"
	"orders/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	configs Config
	logger  *slog.Logger
	clock   ports.Clock

	metrics         *metrics.Metrics
	orderRepository *orderrepo.MemoryOrderRepository
	eventLog        *eventlog.EventLog
	accessPolicy    *services.AccessPolicy
	userDirectory   ports.UserDirectory
	eventPublisher  ports.EventPublisher
}

// NewCompositionRoot builds the shared infrastructure. Broker connections are opened
// here and released by Close.
func NewCompositionRoot(ctx context.Context, configs Config, logger *slog.Logger) (*CompositionRoot, error) {
	accessPolicy, err := services.NewAccessPolicy()
	if err != nil {
		return nil, fmt.Errorf("access policy: %w", err)
	}

	publisher, err := newEventPublisher(ctx, configs, logger)
	if err != nil {
		return nil, fmt.Errorf("event publisher: %w", err)
	}

	clock := ports.SystemClock
	m := metrics.New(metrics.NewRegistry())

	return &CompositionRoot{
		configs:         configs,
		logger:          logger,
		clock:           clock,
		metrics:         m,
		orderRepository: orderrepo.NewMemoryOrderRepository(),
		eventLog:        eventlog.New(configs.EventQueueSize, clock, m, logger),
		accessPolicy:    accessPolicy,
		userDirectory:   identity.NewClient(configs.UsersServiceURL, configs.UsersServiceTimeout, logger),
		eventPublisher:  publisher,
	}, nil
}

func newEventPublisher(ctx context.Context, configs Config, logger *slog.Logger) (ports.EventPublisher, error) {
	switch configs.EventBroker {
	case BrokerKafka:
		return kafka.NewPublisher(configs.KafkaHost, configs.KafkaOrderChangedTopic)
	case BrokerRabbitMQ:
		return rabbitmq.Connect(ctx, configs.RabbitMQURL, configs.RabbitMQExchange, logger)
	case BrokerLog, "":
		return logpublisher.New(logger), nil
	}
	return nil, fmt.Errorf("unknown event broker %q", configs.EventBroker)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepository, c.userDirectory, c.eventLog, c.clock, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderRepository, c.accessPolicy, c.eventLog, c.clock, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderRepository, c.accessPolicy, c.eventLog, c.clock, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepository, c.accessPolicy)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	server := httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.clock,
	)
	return httpin.NewRouter(server, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	relay := jobs.NewEventRelayJob(c.eventLog, c.eventPublisher, c.metrics, c.configs.EventRelaySchedule, c.logger)
	return jobs.NewJobManager(relay, c.logger)
}

// Close releases the event broker connection.
func (c *CompositionRoot) Close() error {
	if err := c.eventPublisher.Close(); err != nil {
		return errors.Join(errors.New("close event publisher"), err)
	}
	return nil
}
