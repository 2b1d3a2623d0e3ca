package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lpernett/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"adaptiveui/internal/cache"
	"adaptiveui/internal/config"
	"adaptiveui/internal/engine"
	"adaptiveui/internal/repository"
	"adaptiveui/internal/service"
	"adaptiveui/internal/telemetry"
	"adaptiveui/internal/transport/rest"
	"adaptiveui/internal/transport/ws"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	logger.Info("connected to MongoDB", zap.String("db", cfg.MongoDB))

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Fatal("failed to ping Redis", zap.Error(err))
	}
	logger.Info("connected to Redis", zap.String("addr", cfg.RedisAddr))

	// Event feed hub
	hub := ws.NewHub(logger)

	// Repositories
	ruleRepo := repository.NewRuleRepo(db)
	interactionRepo := repository.NewInteractionRepo(db)
	componentRepo := repository.NewComponentRepo(db)

	// Caches
	statusCache := cache.NewStatusCache(rdb, cfg.StatusTTL)
	analyticsCache := cache.NewAnalyticsCache(rdb, cfg.AnalyticsTTL)

	// Services
	statusSvc := service.NewStatusService(service.NewStaticStatusProvider(), statusCache, logger)
	trackingSvc := service.NewTrackingService(interactionRepo, logger)
	adaptationSvc := service.NewAdaptationService(
		engine.New(engine.DefaultPredictorConfig()),
		ruleRepo,
		interactionRepo,
		telemetry.NewFixtureSource(),
		statusSvc,
		trackingSvc,
		logger,
	)
	ruleSvc := service.NewRuleService(ruleRepo, logger)
	componentSvc := service.NewComponentService(componentRepo, logger)
	analyticsSvc := service.NewAnalyticsService(ruleRepo, interactionRepo, analyticsCache, logger)
	experimentSvc := service.NewExperimentService(ruleRepo)

	// Live feed (hub implements service.Broadcaster)
	adaptationSvc.SetBroadcaster(hub)
	trackingSvc.SetBroadcaster(hub)

	container := &rest.Container{
		AdaptationService: adaptationSvc,
		RuleService:       ruleSvc,
		ComponentService:  componentSvc,
		AnalyticsService:  analyticsSvc,
		TrackingService:   trackingSvc,
		ExperimentService: experimentSvc,
		WSHandler:         ws.NewHandler(hub, logger),
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen and serve", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
