package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/EdwinBikes/videos-con-IA/internal/domain"
	"github.com/EdwinBikes/videos-con-IA/internal/infra"
	"github.com/EdwinBikes/videos-con-IA/internal/middleware"
	"github.com/EdwinBikes/videos-con-IA/internal/orchestrator"
)

// Engine is the orchestration surface the HTTP layer drives.
// *orchestrator.Engine satisfies it; tests substitute stubs.
type Engine interface {
	Execute(ctx context.Context, in orchestrator.Input) (*domain.OperationResult, error)
	Status() (bool, string)
	Result(id string) (*domain.OperationResult, bool)
}

type App struct {
	Config *infra.Config
	Logger infra.Logger
	Engine Engine
}

func NewApp(cfg *infra.Config, logger infra.Logger, engine Engine) *App {
	return &App{Config: cfg, Logger: logger, Engine: engine}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, errorResponse{Error: msg})
}

// Localized pre-flight messages, keyed by message id then locale.
var messages = map[string]map[string]string{
	"missing_media": {
		"en": "Please upload an image first.",
		"es": "Primero sube una imagen.",
	},
	"empty_prompt": {
		"en": "Please enter a prompt.",
		"es": "Escribe una instrucción primero.",
	},
	"invalid_image": {
		"en": "The uploaded image could not be read.",
		"es": "No se pudo leer la imagen subida.",
	},
	"invalid_mode": {
		"en": "Unknown generation mode.",
		"es": "Modo de generación desconocido.",
	},
	"busy": {
		"en": "A generation is already in progress.",
		"es": "Ya hay una generación en curso.",
	},
	"bad_request": {
		"en": "The request body could not be parsed.",
		"es": "No se pudo interpretar la solicitud.",
	},
	"not_found": {
		"en": "The result is no longer available.",
		"es": "El resultado ya no está disponible.",
	},
}

func localized(ctx context.Context, key string) string {
	locale := middleware.LocaleFromContext(ctx)
	if byLocale, ok := messages[key]; ok {
		if msg, ok := byLocale[locale]; ok {
			return msg
		}
		if msg, ok := byLocale["en"]; ok {
			return msg
		}
	}
	return key
}
