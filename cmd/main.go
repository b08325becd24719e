package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	contactapp "github.com/ksagri/agroexport-api/application/contact"
	productapp "github.com/ksagri/agroexport-api/application/product"
	userapp "github.com/ksagri/agroexport-api/application/user"
	"github.com/ksagri/agroexport-api/cmd/config"
	redisclient "github.com/ksagri/agroexport-api/cmd/redis"
	contactRepo "github.com/ksagri/agroexport-api/repository/contact"
	productRepo "github.com/ksagri/agroexport-api/repository/product"
	redisRepo "github.com/ksagri/agroexport-api/repository/redis"
	userRepo "github.com/ksagri/agroexport-api/repository/user"
	"github.com/ksagri/agroexport-api/thirdparty/rabbitmq"
	"github.com/ksagri/agroexport-api/thirdparty/storage"
	"github.com/ksagri/agroexport-api/transport"
	"github.com/ksagri/agroexport-api/utils/logger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
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

	// Follow-up reminder publisher
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	// Product image store
	imageStore, err := storage.NewS3Store(context.Background(), cfg.Storage.Bucket, cfg.Storage.Region)
	if err != nil {
		logger.Fatal("err init image store", zap.Error(err))
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	ContactRepo := contactRepo.NewContactRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ContactApp := contactapp.NewContactApp(ContactRepo, UserRepo, publisher)
	ProductApp := productapp.NewProductApp(ProductRepo, UserRepo, imageStore)

	httpTransport := transport.NewTransport(cfg, UserApp, ContactApp, ProductApp, RedisRepo)

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
