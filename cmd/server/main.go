package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"tanglaw_backend/internal/api"
	"tanglaw_backend/internal/app/service"
	"tanglaw_backend/internal/common/security"
	"tanglaw_backend/internal/domain/repository"
	"tanglaw_backend/internal/platform/config"
	"tanglaw_backend/internal/platform/database"
	"tanglaw_backend/internal/platform/logger"
)

func main() {
	logger.Init()

	config.Load()
	log.Info().Msg("Configuration loaded")

	security.InitJWT()

	database.Connect()
	defer database.Close()

	if err := database.Migrate(database.DB); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	userRepo := repository.NewPgUserRepository(database.DB)
	messageRepo := repository.NewPgMessageRepository(database.DB)
	appointmentRepo := repository.NewPgAppointmentRepository(database.DB)

	authService := service.NewAuthService(userRepo)
	directoryService := service.NewDirectoryService(userRepo)
	messageService := service.NewMessageService(messageRepo)
	appointmentService := service.NewAppointmentService(userRepo, appointmentRepo)

	router := api.NewRouter(authService, directoryService, messageService, appointmentService, api.RouterOptions{
		StaticDir:      config.AppConfig.StaticDir,
		RateLimitRPS:   config.AppConfig.RateLimitRPS,
		RateLimitBurst: config.AppConfig.RateLimitBurst,
	})

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", config.AppConfig.APIPort).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Could not start server")
		}
	}()

	<-stop // Wait for interrupt signal

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Server stopped gracefully")
}
