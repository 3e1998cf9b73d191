package handler

import (
	"github.com/avolkova/gift-certificates/internal/config"
	"github.com/avolkova/gift-certificates/internal/handler/http"
	"github.com/avolkova/gift-certificates/internal/logger"
	"github.com/avolkova/gift-certificates/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
