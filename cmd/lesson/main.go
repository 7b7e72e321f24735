package main

import (
	"fmt"
	"os"

	"urban-people/internal/config"
	"urban-people/internal/lesson"
	"urban-people/internal/platform/logger"
	"urban-people/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName + "-lesson",
	})

	srv := server.New(lesson.NewRouter(log), server.Options{
		Addr:            fmt.Sprintf(":%d", cfg.Port),
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, log)

	if err := srv.Run(); err != nil {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
