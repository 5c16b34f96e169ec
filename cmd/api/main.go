package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"scriptoria/internal/artifacts"
	"scriptoria/internal/http/handlers"
	"scriptoria/internal/http/httpapi"
	"scriptoria/internal/imagechain"
	"scriptoria/internal/infra"
	"scriptoria/internal/providers/groq"
)

func main() {
	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	if cfg.GroqAPIKey == "" {
		logger.Warn().Msg("GROQ_API_KEY not set, artifact generation will fail per call")
	}
	if cfg.HFConfigured() {
		logger.Info().Msg("HF_API_KEY loaded, image generation available")
	} else {
		logger.Warn().Msg("HF_API_KEY not set, image generation will prompt for setup")
	}

	textGen := groq.NewClient(groq.Options{
		APIKey:  cfg.GroqAPIKey,
		Model:   cfg.GroqModel,
		BaseURL: cfg.GroqBaseURL,
	})

	store, err := artifacts.NewSessionStore(cfg.SessionCacheSize)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build session store")
	}

	orchestrator := artifacts.NewOrchestrator(textGen, logger)

	// EnvCredentials re-reads the key per call so a token added while the
	// server runs takes effect without a restart.
	chain := imagechain.NewChain(imagechain.Options{
		TextGenerator: textGen,
		Credentials:   imagechain.EnvCredentials{},
		Model:         cfg.HFModel,
		Logger:        logger,
	})

	app := handlers.NewApp(logger, orchestrator, store, chain)
	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
