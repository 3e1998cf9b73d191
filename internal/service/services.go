package service

import (
	"github.com/avolkova/gift-certificates/internal/links"
	"github.com/avolkova/gift-certificates/internal/logger"
	"github.com/avolkova/gift-certificates/internal/store"
)

type Services struct {
	CertificateService CertificateService
	UserService        UserService
	OrderService       OrderService
}

func NewServices(storages *store.Storages, linkProvider *links.Provider, logger *logger.Logger) *Services {
	return &Services{
		CertificateService: NewCertificateService(storages.CertificateRepository, linkProvider, logger),
		UserService:        NewUserService(storages.UserRepository, linkProvider, logger),
		OrderService:       NewOrderService(storages.OrderRepository, storages.UserRepository, linkProvider, logger),
	}
}
