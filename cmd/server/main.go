package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amora-app/amora-backend/internal/config"
	"github.com/amora-app/amora-backend/internal/infrastructure/container"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	app, err := container.NewContainer(cfg)
	if err != nil {
		fmt.Printf("Failed to initialize application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			app.Logger.Error(context.Background(), "error closing application", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Server.Start(); err != nil {
			app.Logger.Error(context.Background(), "server error", "err", err)
			quit <- syscall.SIGTERM
		}
	}()

	app.Logger.Info(context.Background(), "server started",
		"host", cfg.Server.Host, "port", cfg.Server.Port)

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Logger.Error(ctx, "server shutdown error", "err", err)
		os.Exit(1)
	}

	app.Logger.Info(ctx, "server exited properly")
}
