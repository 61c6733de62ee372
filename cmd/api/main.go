package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/wilsonXeem/clong-backend/internal/pkg/logger"
	"github.com/wilsonXeem/clong-backend/internal/server"
)

// @title CLONG API
// @version 1.0
// @description REST API for the CLONG non-profit platform: donations, programs, events, stories and volunteer management

// @contact.name API Support
// @contact.email support@clong.org

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// missing .env is fine, environment variables may come from elsewhere
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully")
}
