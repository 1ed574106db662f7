package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brainfeed/brainfeed-be/database"
	"github.com/brainfeed/brainfeed-be/internal/config"
	"github.com/brainfeed/brainfeed-be/internal/pkg/validate"
)

func main() {
	viperConfig := config.NewViper()

	log := config.NewLogger(viperConfig)
	db, storageMode := database.New(viperConfig, log)
	validator := validate.NewValidator()
	api := config.NewAPI(viperConfig, log)

	log.Infof("Storage mode: %s", storageMode)

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Migrations completed successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	defer stop()

	config.Bootstrap(&config.BootstrapConfig{
		Config:    viperConfig,
		Log:       log,
		Api:       api,
		Validator: validator,
		DB:        db,
	})

	listenAddr := ":8080"
	if addr := viperConfig.GetString("api.listen_addr"); addr != "" {
		listenAddr = addr
	}

	go func() {
		if err := api.Listen(listenAddr); err != nil {
			log.Fatalf("Failed to start API server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := api.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("API shutdown error: %v", err)
	}

	log.Info("Shutting down server...")

}
