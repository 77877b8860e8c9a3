package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ryanmello/devboard/internal/config"
	"github.com/ryanmello/devboard/internal/database"
	"github.com/ryanmello/devboard/internal/database/postgres"
	"github.com/ryanmello/devboard/internal/github"
	"github.com/ryanmello/devboard/internal/leetcode"
	"github.com/ryanmello/devboard/internal/profile"
	"github.com/ryanmello/devboard/internal/server"
	"github.com/ryanmello/devboard/internal/social"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	pool, err := database.NewPool(cfg.GetDBConnString(),
		config.DefaultDBMaxConns, config.DefaultDBMaxIdleTime, config.DefaultDBMaxLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.InitSchema(context.Background(), pool); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	userRepo := postgres.NewUserRepository(pool)
	socialRepo := postgres.NewSocialRepository(pool)

	contribFeed := github.NewClient("", cfg.GitHubToken, cfg.FeedTimeout)
	statsFeed := leetcode.NewClient(cfg.LeetCodeAPIURL, cfg.FeedTimeout)

	profileService := profile.NewService(userRepo, contribFeed, statsFeed,
		cfg.ProfileCacheLen, cfg.ProfileCacheTTL, cfg.FeedTimeout)
	socialService := social.NewService(userRepo, socialRepo)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies,
		pool, profileService, socialService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("Server failed to start: %v", err)
	case sig := <-stop:
		slog.Default().Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Default().Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Default().Info("Server stopped")
}
