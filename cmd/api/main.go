// Command api serves the timetable solver over HTTP. Startup/shutdown
// sequencing follows siakad-poc/cmd/main.go: signal channel, goroutine
// Listen, context-bounded graceful Shutdown.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"timetable-scheduler/internal/applog"
	"timetable-scheduler/internal/config"
	"timetable-scheduler/internal/httpapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading config:", err)
		os.Exit(1)
	}
	applog.Init(cfg.Log)

	metrics := httpapi.NewMetrics()
	app := httpapi.NewApp(metrics)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	go func() {
		log.Info().Str("addr", addr).Msg("starting timetable api")
		if err := app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
	}()

	<-quit
	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	} else {
		log.Info().Msg("server shutdown gracefully")
	}
}
