// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Error containment, authentication gating, tracing,
// and access logging concerns are all handled at this layer before
// requests are forwarded to the service layer.
package http

import (
	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
)

type Handler struct {
	services *service.Services

	// authToken is the static shared secret required by the auth gate on
	// every non-GET request.
	authToken string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		authToken: cfg.AuthToken,
		logger:    logger,
	}
}
