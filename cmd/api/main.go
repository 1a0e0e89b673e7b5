package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/njprem/fitcity-offers/internal/catalog"
	"github.com/njprem/fitcity-offers/internal/config"
	"github.com/njprem/fitcity-offers/internal/logging"
	"github.com/njprem/fitcity-offers/internal/repository/minio"
	"github.com/njprem/fitcity-offers/internal/repository/ports"
	"github.com/njprem/fitcity-offers/internal/repository/postgres"
	"github.com/njprem/fitcity-offers/internal/repository/redis"
	"github.com/njprem/fitcity-offers/internal/scheduler"
	"github.com/njprem/fitcity-offers/internal/service"
	transporthttp "github.com/njprem/fitcity-offers/internal/transport/http"
	"github.com/njprem/fitcity-offers/internal/transport/kafka"
	"github.com/njprem/fitcity-offers/internal/util"
)

func main() {
	cfg := config.Load()

	var sink zapcore.WriteSyncer
	var logstash *logging.LogstashSink
	if cfg.LogstashTCPAddr != "" {
		var err error
		logstash, err = logging.NewLogstashSink(logging.LogstashConfig{Addr: cfg.LogstashTCPAddr})
		if err != nil {
			logging.Fallback().Fatal("logstash sink", zap.Error(err))
		}
		defer logstash.Close()
		sink = logstash
	}
	logger, err := logging.New(cfg.AppEnv, sink)
	if err != nil {
		logging.Fallback().Fatal("init logger", zap.Error(err))
	}
	defer logger.Sync()
	if logstash != nil {
		defer func() {
			if n := logstash.Dropped(); n > 0 {
				logger.Warn("log entries not shipped to logstash", zap.Uint64("dropped", n))
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	defer db.Close()

	minioClient, err := minio.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
	if err != nil {
		logger.Fatal("connect minio", zap.Error(err))
	}
	storage := minio.NewStorage(minioClient, cfg.MinIOPublicURL)

	redisClient := redis.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, feed cache will miss", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	feedCache := redis.NewFeedCache(redisClient)

	var clicks ports.ClickPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewSyncProducer(cfg.KafkaBrokers)
		if err != nil {
			logger.Fatal("connect kafka", zap.Strings("brokers", cfg.KafkaBrokers), zap.Error(err))
		}
		clickProducer := kafka.NewClickProducer(producer, cfg.KafkaClickTopic, logger)
		defer clickProducer.Close()
		clicks = clickProducer
	} else {
		logger.Info("KAFKA_BROKERS not set, outbound clicks are logged only")
	}

	userRepo := postgres.NewUserRepo(db)
	sessionRepo := postgres.NewSessionRepo(db)
	favoriteRepo := postgres.NewFavoriteRepo(db)

	jwt := util.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)
	authService := service.NewAuthService(userRepo, sessionRepo, jwt)
	offerCatalog := catalog.Default()
	clickService := service.NewClickService(offerCatalog, clicks, logger)
	feedService := service.NewOfferFeedService(
		storage,
		feedCache,
		service.DemoFeedLocation{Bucket: cfg.DemoFeedBucket, Object: cfg.DemoFeedObject},
		cfg.FeedCacheTTL,
		logger,
	)

	refresh, err := scheduler.StartFeedRefresh(ctx, cfg.DemoFeedRefreshCron, feedService, logger)
	if err != nil {
		logger.Fatal("schedule demo feed refresh", zap.String("cron", cfg.DemoFeedRefreshCron), zap.Error(err))
	}
	defer refresh.Stop()

	e := transporthttp.NewRouter(cfg.AllowOrigins, logger)
	transporthttp.RegisterProviders(e, offerCatalog, clickService, authService, cfg.RedirectRatePerSecond)
	transporthttp.RegisterOffers(e, feedService)
	transporthttp.RegisterFavorites(e, authService, favoriteRepo, logger)
	transporthttp.RegisterSwagger(e, "docs")

	go func() {
		logger.Info("listening", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdown(e, logger)
}

func shutdown(e *echo.Echo, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown", zap.Error(err))
	}
}
