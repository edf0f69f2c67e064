package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/codejam_client/internal/config"
	"github.com/mishasvintus/codejam_client/internal/logger"
	"github.com/mishasvintus/codejam_client/internal/mockapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	state := mockapi.NewState()
	admin, member, err := mockapi.Seed(state)
	if err != nil {
		zlog.Fatalw("failed to seed state", "error", err)
	}
	zlog.Infow("seeded users",
		"admin_id", admin.ID,
		"member_id", member.ID,
		"login", "POST /dev/login/{id}",
	)

	r := mockapi.SetupRoutes(mockapi.NewHandler(state, zlog), zlog)

	addr := cfg.MockAddr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zlog.Infow("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatalw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Errorw("server forced to shutdown", "error", err)
		return
	}
	zlog.Info("server exited")
}
