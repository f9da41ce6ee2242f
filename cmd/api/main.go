package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/EdwinBikes/videos-con-IA/internal/http/handlers"
	httpapi "github.com/EdwinBikes/videos-con-IA/internal/http/httpapi"
	"github.com/EdwinBikes/videos-con-IA/internal/infra"
	"github.com/EdwinBikes/videos-con-IA/internal/orchestrator"
	"github.com/EdwinBikes/videos-con-IA/internal/providers/genai"
	"github.com/EdwinBikes/videos-con-IA/internal/storage"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	client, err := genai.NewClient(genai.Options{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		ImageModel: cfg.GeminiImageModel,
		VideoModel: cfg.GeminiVideoModel,
		Logger:     &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build generative client")
	}

	var output *storage.FileStore
	if cfg.OutputDir != "" {
		output, err = storage.NewFileStore(cfg.OutputDir)
		if err != nil {
			logger.Fatal().Err(err).Str("dir", cfg.OutputDir).Msg("failed to prepare output directory")
		}
	}

	engine := orchestrator.New(orchestrator.Options{
		Client:         client,
		Logger:         logger,
		Results:        storage.NewResultStore(cfg.ResultTTL),
		Output:         output,
		PollInterval:   cfg.PollInterval,
		StatusInterval: cfg.StatusInterval,
	})

	app := handlers.NewApp(cfg, logger, engine)
	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
