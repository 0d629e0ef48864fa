// main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/thinkful-ei27/peter-noteful-v3/config"
	httpapi "github.com/thinkful-ei27/peter-noteful-v3/http"
	"github.com/thinkful-ei27/peter-noteful-v3/store"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load("noteful.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	st, err := store.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer st.Close()

	server := httpapi.NewServer(st, log, cfg.Env)

	go func() {
		if err := server.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := server.Shutdown(); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
