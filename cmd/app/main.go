package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"orders/cmd"
	httpadapter "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/natsevents"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/rulerepo"
	"orders/internal/adapters/out/postgres/stationrepo"
	"orders/internal/adapters/out/postgres/ticketrepo"
	"orders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	migrateSchema(gormDB)

	publisher, err := natsevents.NewPublisher(configs.NatsURL, logger)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer publisher.Close()

	root, err := cmd.NewCompositionRoot(configs, gormDB, publisher)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(
		root.CreateGetActiveOrdersQueryHandler(),
		root.OrderTimeout(configs),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		NatsURL:               goDotEnvVariable("NATS_URL"),
		RoutingMode:           goDotEnvVariable("ROUTING_MODE"),
		DefaultStationID:      goDotEnvVariable("DEFAULT_STATION_ID"),
		AutoFire:              goDotEnvVariable("AUTO_FIRE") == "true",
		OrderTimeoutMinutes:   goDotEnvIntVariable("ORDER_TIMEOUT_MINUTES"),
		RequestTimeoutSeconds: goDotEnvIntVariable("REQUEST_TIMEOUT_SECONDS"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer value for %s: %s", key, raw)
	}
	return value
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateSchema(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.DailySequenceDTO{},
		&stationrepo.StationDTO{},
		&rulerepo.RuleDTO{},
		&ticketrepo.TicketDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

func startWebServer(root cmd.CompositionRoot, configs cmd.Config) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:        root.CreateCreateOrderCommandHandler(),
		AddOrderItem:       root.CreateAddOrderItemCommandHandler(),
		RemoveOrderItem:    root.CreateRemoveOrderItemCommandHandler(),
		UpdateItemQuantity: root.CreateUpdateItemQuantityCommandHandler(),
		UpdateItemStatus:   root.CreateUpdateItemStatusCommandHandler(),
		CancelItem:         root.CreateCancelItemCommandHandler(),
		FireOrder:          root.CreateFireOrderCommandHandler(),
		BumpOrder:          root.CreateBumpOrderCommandHandler(),
		RecallOrder:        root.CreateRecallOrderCommandHandler(),
		CancelOrder:        root.CreateCancelOrderCommandHandler(),
		AckTicket:          root.CreateAckTicketCommandHandler(),
		ReprintTicket:      root.CreateReprintTicketCommandHandler(),
		MarkTicketPrinted:  root.CreateMarkTicketPrintedCommandHandler(),
		RegisterStation:    root.CreateRegisterStationCommandHandler(),
		DeactivateStation:  root.CreateDeactivateStationCommandHandler(),
		CreateRoutingRule:  root.CreateCreateRoutingRuleCommandHandler(),
		RemoveRoutingRule:  root.CreateRemoveRoutingRuleCommandHandler(),

		GetOrder:          root.CreateGetOrderQueryHandler(),
		GetActiveOrders:   root.CreateGetActiveOrdersQueryHandler(),
		GetOrdersByTable:  root.CreateGetOrdersByTableQueryHandler(),
		GetOrderStats:     root.CreateGetOrderStatsQueryHandler(),
		ListStations:      root.CreateListStationsQueryHandler(),
		GetStationSummary: root.CreateGetStationSummaryQueryHandler(),
		GetStationTickets: root.CreateGetStationTicketsQueryHandler(),
		RenderTicket:      root.CreateRenderTicketQueryHandler(),
	}, root.RequestTimeout(configs))

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
