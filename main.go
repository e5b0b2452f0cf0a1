package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/assistente-financeiro/painel/internal/controllers"
	"github.com/assistente-financeiro/painel/internal/router"
	"github.com/assistente-financeiro/painel/internal/session"
	"github.com/assistente-financeiro/painel/internal/upstream"
)

func main() {
	// A .env file is optional, real deployments set the environment directly
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	upstreamURL, ok := os.LookupEnv("UPSTREAM_URL")
	if !ok {
		upstreamURL = "http://localhost:8080"
	}

	// Create data directory for the session database
	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	sessionDB, ok := os.LookupEnv("SESSION_DB")
	if !ok {
		sessionDB = filepath.Join(dataDir, "session.db")
	}

	sessions, err := session.Open(sessionDB)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	client := upstream.New(upstreamURL, sessions)

	r, err := router.Router(controllers.New(client, sessions))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
