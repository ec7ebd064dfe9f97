package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	alertapp "github.com/retailmax/inventario/application/alert"
	auditapp "github.com/retailmax/inventario/application/audit"
	catalogapp "github.com/retailmax/inventario/application/catalog"
	inventoryapp "github.com/retailmax/inventario/application/inventory"
	variantapp "github.com/retailmax/inventario/application/variant"
	"github.com/retailmax/inventario/cmd/config"
	redisclient "github.com/retailmax/inventario/cmd/redis"
	_ "github.com/retailmax/inventario/docs"
	movementRepo "github.com/retailmax/inventario/repository/movement"
	redisRepo "github.com/retailmax/inventario/repository/redis"
	stockRepo "github.com/retailmax/inventario/repository/stock"
	thresholdRepo "github.com/retailmax/inventario/repository/threshold"
	txRepo "github.com/retailmax/inventario/repository/tx"
	variantRepo "github.com/retailmax/inventario/repository/variant"
	"github.com/retailmax/inventario/thirdparty/rabbitmq"
	"github.com/retailmax/inventario/transport"
	"github.com/retailmax/inventario/utils/logger"
	"go.uber.org/zap"
)

// @title INVENTARIO API
// @version 1.0
// @description Inventory ledger and stock management API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// RabbitMQ is optional; without it low stock alerts are log-only and
	// order confirmations arrive through the internal HTTP endpoint only.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
		}
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	StockRepo := stockRepo.NewStockRepository(db)
	MovementRepo := movementRepo.NewMovementRepository(db)
	ThresholdRepo := thresholdRepo.NewThresholdRepository(db)
	VariantRepo := variantRepo.NewVariantRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	InventoryApp := inventoryapp.NewInventoryApp(TxRepo, StockRepo, MovementRepo, ThresholdRepo, publisher)
	AlertApp := alertapp.NewAlertApp(ThresholdRepo)
	AuditApp := auditapp.NewAuditApp(StockRepo)
	VariantApp := variantapp.NewVariantApp(VariantRepo)
	CatalogApp := catalogapp.NewCatalogApp(cfg, RedisRepo)

	httpTransport := transport.NewTransport(InventoryApp, AlertApp, AuditApp, VariantApp, CatalogApp, cfg.Internal.APIKey)

	if cfg.RabbitMQ.Enabled {
		apiURL := "http://localhost:" + cfg.Server.Port
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, apiURL, cfg.Internal.APIKey)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer func() {
			_ = consumer.Close()
		}()
		go func() {
			if err := consumer.Start(context.Background()); err != nil {
				logger.Error("order confirmed consumer stopped", zap.Error(err))
			}
		}()
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
