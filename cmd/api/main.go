package main

import (
	"context"
	"errors"
	"go-practice/internal/config"
	"go-practice/internal/handlers"
	"go-practice/internal/logger"
	"go-practice/internal/store"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("loading config")
	}
	logger.Setup(cfg.LogLevel, cfg.IsDevelopment())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AutoMigrate {
		if err := store.Migrate(ctx, cfg.DatabaseURL); err != nil {
			logger.Fatal().Err(err).Msg("applying migrations")
		}
		logger.Info().Msg("migrations applied")
	}

	pool, err := store.Open(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("connecting to postgres")
	}
	defer pool.Close()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), logger.RequestID(), logger.GinLogger())

	h := handlers.New(store.NewTaskRepo(pool), store.NewUserRepo(pool), pool, cfg.JWTKey, cfg.TokenTTL)
	h.Routes(router)

	srv := &http.Server{
		Addr:     cfg.Addr(),
		Handler:  router,
		ErrorLog: logger.StdErrorLogger(),
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("task api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
