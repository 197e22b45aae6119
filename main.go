package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rathernotsay21/betirement-sub000/domain/model"
	"github.com/rathernotsay21/betirement-sub000/domain/repository"
	"github.com/rathernotsay21/betirement-sub000/infrastructure/cache"
	youtubeclient "github.com/rathernotsay21/betirement-sub000/infrastructure/clients/youtube"
	"github.com/rathernotsay21/betirement-sub000/infrastructure/configuration"
	"github.com/rathernotsay21/betirement-sub000/infrastructure/logger"
	"github.com/rathernotsay21/betirement-sub000/infrastructure/ratelimit"
	httpHandler "github.com/rathernotsay21/betirement-sub000/interfaces/http"
	"github.com/rathernotsay21/betirement-sub000/server"
	"github.com/rathernotsay21/betirement-sub000/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// staleRetention is how long redis keeps entries after the freshness TTL has passed
const staleRetention = 7 * 24 * time.Hour

func main() {
	os.Exit(run())
}

// run owns every deferred cleanup so main can exit with its code afterwards
func run() (code int) {
	defer func() {
		if err := recover(); err != nil {
			logger.GetLogger().WithField("error", err).Error("Application panic recovered")
			code = 1
		}
	}()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	loaded := configuration.LoadEnvFromFile("config.env", ".env")
	configuration.Reload()
	logger.GetLogger().WithField("variables", loaded).Info("Environment files loaded")

	app := configuration.C.App
	ytConfig := configuration.GetYouTubeConfig()

	videoCache, limiter, redisClient := initiateBackends(ctx, ytConfig)
	if redisClient != nil {
		defer redisClient.Close()
	}

	provider, err := youtubeclient.NewYouTubeClient(ctx, &youtubeclient.Config{
		APIKey:   ytConfig.APIKey,
		Endpoint: ytConfig.Endpoint,
		Timeout:  ytConfig.RequestTimeout,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to initialize YouTube client")
		return 1
	}
	videoClient := usecase.NewVideoDataClient(usecase.VideoClientOptions{
		APIKey:         ytConfig.APIKey,
		ChannelID:      ytConfig.ChannelID,
		Provider:       provider,
		Cache:          videoCache,
		Limiter:        limiter,
		CacheTTL:       ytConfig.CacheTTL,
		RequestTimeout: ytConfig.RequestTimeout,
	})
	videoUseCase := usecase.NewVideoUseCase(videoClient)

	videoHandler := httpHandler.NewVideoHandler(videoUseCase)
	healthHandler := httpHandler.NewHealthHandler(limiter)

	if os.Getenv("ENV") == "production" || os.Getenv("ENV") == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.InitiateRouter(videoHandler, healthHandler, app.AllowedOrigins)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.GetLogger().WithFields(map[string]interface{}{"port": app.Port, "redis": redisClient != nil}).Info("Starting application")
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = httpServer.Shutdown(shutdownCtx)

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		return 2
	}
	return 0
}

// initiateBackends picks redis backed cache and rate limiter when redis is
// enabled and reachable, and in-memory ones otherwise
func initiateBackends(ctx context.Context, yt *configuration.YouTubeConfig) (repository.ICacheStore[[]model.Video], repository.IRateLimiter, *redis.Client) {
	rc := configuration.C.RedisClient
	if rc.Enabled {
		client, err := cache.NewCache(ctx, rc.RedisAddr(), rc.Username, rc.Password, rc.DB)
		if err == nil {
			logger.GetLogger().WithField("addr", rc.RedisAddr()).Info("Redis client initialized successfully.")
			store := cache.NewRedisStore[[]model.Video](client, rc.KeyPrefix+"videos:", yt.CacheTTL+staleRetention)
			limiter := ratelimit.NewRedisFixedWindow(client, rc.KeyPrefix+"ratelimit", yt.MaxRequests, yt.Window, nil)
			return store, limiter, client
		}
		logger.GetLogger().WithField("error", err).Warn("Redis not available - continuing with in-memory cache")
	}
	return cache.NewMemoryStore[[]model.Video](), ratelimit.NewFixedWindow(yt.MaxRequests, yt.Window, nil), nil
}
