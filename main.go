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

	"golang.org/x/sync/errgroup"

	"my-tube/infrastructure/cache"
	"my-tube/infrastructure/configuration"
	"my-tube/infrastructure/logger"
	"my-tube/infrastructure/media"
	"my-tube/infrastructure/persistence"
	httpHandler "my-tube/interfaces/http"
	"my-tube/server"
	"my-tube/usecase"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	mongoClient, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot connect to MongoDB")
		os.Exit(1)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("MongoDB ping failed")
		os.Exit(1)
	}
	logger.GetLogger().Info("MongoDB connected successfully")
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.Redis.Host, configuration.C.Redis.Port),
		configuration.C.Redis.Username,
		configuration.C.Redis.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - continuing without stats cache")
		redisClient = nil
	}

	mediaStorage, err := media.NewS3Storage(ctx, configuration.C.Media)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot initialize media storage")
		os.Exit(1)
	}

	dbName := configuration.C.Database.Mongo.Name
	userRepository := persistence.NewUserRepository(mongoClient, dbName)
	videoRepository := persistence.NewVideoRepository(mongoClient, dbName)
	commentRepository := persistence.NewCommentRepository(mongoClient, dbName)
	tweetRepository := persistence.NewTweetRepository(mongoClient, dbName)
	playlistRepository := persistence.NewPlaylistRepository(mongoClient, dbName)
	likeRepository := persistence.NewLikeRepository(mongoClient, dbName)
	subscriptionRepository := persistence.NewSubscriptionRepository(mongoClient, dbName)
	statsCache := cache.NewStatsCache(redisClient)

	userUsecase := usecase.NewUserUsecase(userRepository, mediaStorage, configuration.C.Auth)
	videoUsecase := usecase.NewVideoUsecase(videoRepository, userRepository, mediaStorage, statsCache)
	commentUsecase := usecase.NewCommentUsecase(commentRepository, videoRepository)
	tweetUsecase := usecase.NewTweetUsecase(tweetRepository)
	playlistUsecase := usecase.NewPlaylistUsecase(playlistRepository, videoRepository)
	likeUsecase := usecase.NewLikeUsecase(likeRepository, videoRepository, commentRepository, tweetRepository)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(subscriptionRepository, userRepository, statsCache)
	dashboardUsecase := usecase.NewDashboardUsecase(videoRepository, likeRepository, subscriptionRepository, statsCache)

	router := server.InitiateRouter(
		httpHandler.NewUserHandler(userUsecase, configuration.C.Auth),
		httpHandler.NewVideoHandler(videoUsecase),
		httpHandler.NewCommentHandler(commentUsecase),
		httpHandler.NewTweetHandler(tweetUsecase),
		httpHandler.NewPlaylistHandler(playlistUsecase),
		httpHandler.NewLikeHandler(likeUsecase),
		httpHandler.NewSubscriptionHandler(subscriptionUsecase),
		httpHandler.NewDashboardHandler(dashboardUsecase),
		httpHandler.NewHealthHandler(mongoClient),
		userRepository,
		configuration.C.App.CorsOrigin,
	)

	port := configuration.C.App.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
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

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
