package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/medsupply/orderflow/internal/api"
	"github.com/medsupply/orderflow/internal/backend"
	"github.com/medsupply/orderflow/internal/config"
	"github.com/medsupply/orderflow/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	apiClient := backend.NewClient(cfg.Backend, logger)
	store := service.NewStore()

	router := api.NewRouter(cfg, store, apiClient, logger)

	logger.Info("Starting orderflow server",
		zap.String("port", cfg.Port),
		zap.String("backend", cfg.Backend.BaseURL),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
