package http

import (
	"github.com/avolkova/gift-certificates/internal/config"
	"github.com/avolkova/gift-certificates/internal/logger"
	"github.com/avolkova/gift-certificates/internal/service"
)

type Handler struct {
	services *service.Services

	// defaultPageSize fills the `size` query parameter when absent.
	defaultPageSize int

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	pageSize := cfg.PageSize
	if pageSize < 1 {
		pageSize = config.DefaultPageSize
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		defaultPageSize: pageSize,
		logger:          logger,
	}
}
