package cmd

import (
	"time"

	"orders/internal/adapters/out/postgres"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/routing"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	engine     services.RoutingEngine
	dispatcher services.TicketDispatcher
	publisher  ports.EventPublisher
	autoFire   bool
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.EventPublisher) (CompositionRoot, error) {
	mode, err := routing.ModeFromString(config.RoutingMode)
	if err != nil {
		return CompositionRoot{}, err
	}

	var defaultStationID *kernel.UUID
	if config.DefaultStationID != "" {
		stationID, idErr := kernel.UUIDFromString(config.DefaultStationID)
		if idErr != nil {
			return CompositionRoot{}, idErr
		}
		defaultStationID = &stationID
	}

	engine, err := services.NewRoutingEngine(mode, defaultStationID)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		engine:     engine,
		dispatcher: services.NewTicketDispatcher(),
		publisher:  publisher,
		autoFire:   config.AutoFire,
	}, nil
}

func (c *CompositionRoot) OrderTimeout(config Config) time.Duration {
	return time.Duration(config.OrderTimeoutMinutes) * time.Minute
}

func (c *CompositionRoot) RequestTimeout(config Config) time.Duration {
	return time.Duration(config.RequestTimeoutSeconds) * time.Second
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) stationUoWFactory() commands.StationUoWFactory {
	return FuncStationUoWFactory(func() commands.StationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ticketUoWFactory() commands.TicketUoWFactory {
	return FuncTicketUoWFactory(func() commands.TicketUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fireUoWFactory() commands.FireUoWFactory {
	return FuncFireUoWFactory(func() commands.FireUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fireUoWFactory(), c.engine, c.dispatcher, c.publisher, c.autoFire)
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	return commands.NewAddOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	return commands.NewRemoveOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateItemQuantityCommandHandler() commands.UpdateItemQuantityCommandHandler {
	return commands.NewUpdateItemQuantityCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateItemStatusCommandHandler() commands.UpdateItemStatusCommandHandler {
	return commands.NewUpdateItemStatusCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCancelItemCommandHandler() commands.CancelItemCommandHandler {
	return commands.NewCancelItemCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateFireOrderCommandHandler() commands.FireOrderCommandHandler {
	return commands.NewFireOrderCommandHandler(c.fireUoWFactory(), c.engine, c.dispatcher, c.publisher)
}

func (c *CompositionRoot) CreateBumpOrderCommandHandler() commands.BumpOrderCommandHandler {
	return commands.NewBumpOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRecallOrderCommandHandler() commands.RecallOrderCommandHandler {
	return commands.NewRecallOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAckTicketCommandHandler() commands.AckTicketCommandHandler {
	return commands.NewAckTicketCommandHandler(c.ticketUoWFactory())
}

func (c *CompositionRoot) CreateReprintTicketCommandHandler() commands.ReprintTicketCommandHandler {
	return commands.NewReprintTicketCommandHandler(c.ticketUoWFactory(), c.dispatcher, c.publisher)
}

func (c *CompositionRoot) CreateMarkTicketPrintedCommandHandler() commands.MarkTicketPrintedCommandHandler {
	return commands.NewMarkTicketPrintedCommandHandler(c.ticketUoWFactory())
}

func (c *CompositionRoot) CreateRegisterStationCommandHandler() commands.RegisterStationCommandHandler {
	return commands.NewRegisterStationCommandHandler(c.stationUoWFactory())
}

func (c *CompositionRoot) CreateDeactivateStationCommandHandler() commands.DeactivateStationCommandHandler {
	return commands.NewDeactivateStationCommandHandler(c.stationUoWFactory())
}

func (c *CompositionRoot) CreateCreateRoutingRuleCommandHandler() commands.CreateRoutingRuleCommandHandler {
	return commands.NewCreateRoutingRuleCommandHandler(c.stationUoWFactory())
}

func (c *CompositionRoot) CreateRemoveRoutingRuleCommandHandler() commands.RemoveRoutingRuleCommandHandler {
	return commands.NewRemoveRoutingRuleCommandHandler(c.stationUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByTableQueryHandler() queries.GetOrdersByTableQueryHandler {
	return queries.NewGetOrdersByTableQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStationsQueryHandler() queries.ListStationsQueryHandler {
	return queries.NewListStationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStationSummaryQueryHandler() queries.GetStationSummaryQueryHandler {
	return queries.NewGetStationSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStationTicketsQueryHandler() queries.GetStationTicketsQueryHandler {
	return queries.NewGetStationTicketsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRenderTicketQueryHandler() queries.RenderTicketQueryHandler {
	return queries.NewRenderTicketQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStationUoWFactory func() commands.StationUoW

func (f FuncStationUoWFactory) Create() commands.StationUoW {
	return f()
}

type FuncTicketUoWFactory func() commands.TicketUoW

func (f FuncTicketUoWFactory) Create() commands.TicketUoW {
	return f()
}

type FuncFireUoWFactory func() commands.FireUoW

func (f FuncFireUoWFactory) Create() commands.FireUoW {
	return f()
}
