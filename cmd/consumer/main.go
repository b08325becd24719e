package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ksagri/agroexport-api/cmd/config"
	"github.com/ksagri/agroexport-api/thirdparty/rabbitmq"
	"github.com/ksagri/agroexport-api/utils/logger"
	"go.uber.org/zap"
)

// The consumer drains the follow-up reminder queue and reports due
// reminders back to the API over its internal endpoint.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting follow-up consumer", zap.String("env", cfg.Environment))

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		cfg.APIBaseURL, cfg.InternalAPIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down follow-up consumer")
}
