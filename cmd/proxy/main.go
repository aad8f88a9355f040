package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/TRu-S3/hackmatch-go/internal/client/config"
	"github.com/TRu-S3/hackmatch-go/internal/logging"
	"github.com/TRu-S3/hackmatch-go/internal/proxy"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := proxy.NewServer(cfg.ProxyAddr, cfg.AgentEndpoint, log)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}
