package cmd

import (
	"log/slog"

	httpin "github.com/TenZ001/cure-cart25-sub001/internal/adapters/in/http"
	"github.com/TenZ001/cure-cart25-sub001/internal/adapters/out/notifier"
	"github.com/TenZ001/cure-cart25-sub001/internal/adapters/out/postgres"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/application/usecases/commands"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/application/usecases/queries"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/ports"
	"github.com/TenZ001/cure-cart25-sub001/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  notifier.NewSlogEventPublisher(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateAssignPartnerCommandHandler() commands.AssignPartnerCommandHandler {
	return commands.NewAssignPartnerCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceDeliveryCommandHandler() commands.AdvanceDeliveryCommandHandler {
	return commands.NewAdvanceDeliveryCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateReportLocationCommandHandler() commands.ReportLocationCommandHandler {
	return commands.NewReportLocationCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPartnerOrdersQueryHandler() queries.ListPartnerOrdersQueryHandler {
	return queries.NewListPartnerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaleDeliveriesQueryHandler() queries.GetStaleDeliveriesQueryHandler {
	return queries.NewGetStaleDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAssignPartnerCommandHandler(),
		c.CreateAdvanceDeliveryCommandHandler(),
		c.CreateReportLocationCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListCustomerOrdersQueryHandler(),
		c.CreateListPartnerOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetStaleDeliveriesQueryHandler(),
		c.config.WatchdogSilenceThreshold,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
