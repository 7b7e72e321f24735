package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"urban-people/internal/config"
	"urban-people/internal/platform/logger"
	"urban-people/internal/router"
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
		App:    cfg.AppName,
	})

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	r := router.NewRouter(router.Options{
		Variant: cfg.UsersVariant(),
		Logger:  log,
		Rand:    rand.New(rand.NewPCG(seed, seed>>1)),
	})

	srv := server.New(r, server.Options{
		Addr:            fmt.Sprintf(":%d", cfg.Port),
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, log)

	log.Info("starting users service", map[string]any{"addr": srv.Addr(), "variant": cfg.Variant})
	if err := srv.Run(); err != nil {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
