package cmd

import (
	"log/slog"

	"orderlifecycle/internal/adapters/out/kafka"
	"orderlifecycle/internal/adapters/out/postgres"
	"orderlifecycle/internal/core/application/usecases/commands"
	"orderlifecycle/internal/core/application/usecases/queries"
	"orderlifecycle/internal/core/ports"
	"orderlifecycle/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, writer kafka.MessageWriter, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  kafka.NewPublisher(writer),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreatePublishLifecycleEventCommandHandler() commands.PublishLifecycleEventCommandHandler {
	return commands.NewPublishLifecycleEventCommandHandler(c.publisher, c.redeliveryUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateRedeliverEventsCommandHandler() commands.RedeliverEventsCommandHandler {
	return commands.NewRedeliverEventsCommandHandler(c.redeliveryUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateListStatusesQueryHandler() queries.ListStatusesQueryHandler {
	return queries.NewListStatusesQueryHandler()
}

func (c *CompositionRoot) CreateResolveRouteQueryHandler() queries.ResolveRouteQueryHandler {
	return queries.NewResolveRouteQueryHandler()
}

func (c *CompositionRoot) CreateListParkedEventsQueryHandler() queries.ListParkedEventsQueryHandler {
	return queries.NewListParkedEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	cmd, err := commands.NewRedeliverEventsCommand(c.configs.RedeliveryBatchSize, c.configs.RedeliveryMaxAttempts)
	if err != nil {
		return nil, err
	}

	handler := c.CreateRedeliverEventsCommandHandler()
	return jobs.NewJobManager(handler, c.configs.RedeliverySchedule, cmd, c.logger), nil
}

func (c *CompositionRoot) redeliveryUoWFactory() commands.RedeliveryUoWFactory {
	return FuncRedeliveryUoWFactory(func() commands.RedeliveryUoW {
		return c.uowFactory.Create()
	})
}

type FuncRedeliveryUoWFactory func() commands.RedeliveryUoW

func (f FuncRedeliveryUoWFactory) Create() commands.RedeliveryUoW {
	return f()
}
