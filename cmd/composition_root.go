package cmd

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"fanstore/internal/adapters/in/ws"
	"fanstore/internal/adapters/out/mail"
	"fanstore/internal/adapters/out/notify"
	"fanstore/internal/adapters/out/postgres"
	"fanstore/internal/adapters/out/realtime"
	"fanstore/internal/core/application/usecases/commands"
	"fanstore/internal/core/application/usecases/queries"
	"fanstore/internal/core/ports"
	"fanstore/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory postgres.GormUnitOfWorkFactory

	emailSender *mail.SMTPSender
	hub         *realtime.Hub
	bridge      *realtime.RedisBridge
	notifier    *notify.FanOutNotifier
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	hub := realtime.NewHub(logger)

	emailSender := mail.NewSMTPSender(
		config.SMTPHost,
		config.SMTPPort,
		config.SMTPUser,
		config.SMTPPassword,
		config.MailFrom,
	)

	// With redis configured the bridge publishes and every instance replays
	// the subscription into its local hub, own events included. Publishing
	// to the hub directly as well would deliver twice.
	var events ports.EventPublisher = hub
	var bridge *realtime.RedisBridge
	if config.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		bridge = realtime.NewRedisBridge(client, hub, logger)
		events = bridge
	}

	return &CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		logger:      logger,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		emailSender: emailSender,
		hub:         hub,
		bridge:      bridge,
		notifier:    notify.NewFanOutNotifier(emailSender, events, logger),
	}
}

// Close drains the notifier and stops the redis bridge. Call on shutdown
// after the HTTP server stops accepting requests.
func (c *CompositionRoot) Close() {
	c.notifier.Close()
	if c.bridge != nil {
		c.bridge.Close()
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRiderOrdersQueryHandler() queries.GetRiderOrdersQueryHandler {
	return queries.NewGetRiderOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRidersQueryHandler() queries.GetRidersQueryHandler {
	return queries.NewGetRidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSalesReportQueryHandler() queries.GetSalesReportQueryHandler {
	return queries.NewGetSalesReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateWebSocketHandler() *ws.Handler {
	auth := ws.NewOrderAccessAuthorizer(c.CreateGetOrderQueryHandler())
	return ws.NewHandler(c.hub, auth, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetSalesReportQueryHandler(),
		c.emailSender,
		c.config.AdminEmail,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
