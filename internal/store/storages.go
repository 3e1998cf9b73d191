package store

import "github.com/avolkova/gift-certificates/internal/logger"

// Storages bundles all repositories behind their narrow interfaces.
// Services receive it from the composition root; nothing here is a
// process-wide registry.
type Storages struct {
	CertificateRepository CertificateRepository
	UserRepository        UserRepository
	OrderRepository       OrderRepository
}

// NewStorages constructs every repository over the shared database
// connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		CertificateRepository: NewCertificateRepository(db, logger),
		UserRepository:        NewUserRepository(db, logger),
		OrderRepository:       NewOrderRepository(db, logger),
	}
}
