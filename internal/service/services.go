package service

import (
	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/validators"
)

type Services struct {
	UserService UserService
}

func NewServices(directory store.UserDirectory, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		UserService: NewUserService(directory, validators.NewUserValidator(), cfg.App, logger),
	}
}
