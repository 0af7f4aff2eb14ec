package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rkhan0192/sapienscare/api"
	"github.com/rkhan0192/sapienscare/config"
	"github.com/rkhan0192/sapienscare/internal/bootstrap"
	"github.com/rkhan0192/sapienscare/internal/cache"
	"github.com/rkhan0192/sapienscare/internal/export"
	"github.com/rkhan0192/sapienscare/internal/kafka"
	"github.com/rkhan0192/sapienscare/internal/repository"
	"github.com/rkhan0192/sapienscare/internal/service/catalog"
	"github.com/rkhan0192/sapienscare/internal/service/order"
	"github.com/rkhan0192/sapienscare/internal/upload"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := repository.InitSchema(ctx, pool); err != nil {
		log.Fatalf("init schema: %v", err)
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	productRepo := repository.NewProductRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	exportStore := export.NewStore(cfg.Export.FilePath)

	catalogService := catalog.NewService(productRepo, redisCache)
	orderService := order.NewService(
		orderRepo,
		exportStore,
		producer,
		cfg.Kafka.OrderEventsTopic,
		order.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	signer := upload.NewSigner(cfg.Upload.APISecret, cfg.Upload.UploadPreset)

	handlers := bootstrap.Handlers{
		Products: api.NewProductHandler(catalogService),
		Orders:   api.NewOrderHandler(orderService),
		Export:   api.NewExportHandler(exportStore),
		Upload:   api.NewUploadHandler(signer),
	}

	if err := bootstrap.Run(ctx, cfg, handlers); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
