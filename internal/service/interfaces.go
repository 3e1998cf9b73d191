package service

import (
	"context"

	"github.com/avolkova/gift-certificates/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CertificateService orchestrates certificate operations: validate the
// request parameters, delegate to the store, enrich results with
// hypermedia links, and propagate errors unchanged for the transport
// layer to map onto status codes.
type CertificateService interface {
	// Create persists a new certificate after checking its invariants.
	// The caller only needs the success signal; the created entity is
	// not echoed back.
	Create(ctx context.Context, certificate models.Certificate) error

	// FindAll returns one page of certificates matching the filters:
	// certificates tagged with ALL of tagNames, whose name or
	// description contains partName case-insensitively. Both filters
	// are optional and combine conjunctively.
	FindAll(ctx context.Context, tagNames []string, partName string, page, size int) ([]models.Certificate, error)

	FindByID(ctx context.Context, id int64) (models.Certificate, error)

	// UpdateByID applies a merge-patch: only fields present in the
	// patch change, invariants are re-checked on the merged value, and
	// the write is a single atomic store operation.
	UpdateByID(ctx context.Context, id int64, patch models.CertificatePatch) (models.Certificate, error)

	DeleteByID(ctx context.Context, id int64) error
}

// UserService orchestrates user account operations.
type UserService interface {
	// Signup registers a new user and returns it enriched with links.
	Signup(ctx context.Context, user models.User) (models.User, error)

	FindAll(ctx context.Context, page, size int) ([]models.User, error)

	// FindByMostCost returns one page of users ordered by total order
	// spend, descending, ties broken by ascending id.
	FindByMostCost(ctx context.Context, page, size int) ([]models.User, error)

	FindByID(ctx context.Context, id int64) (models.User, error)
}

// OrderService orchestrates order lookups scoped to an owning user.
type OrderService interface {
	// FindByUserID returns the order only when it exists and belongs
	// to the user; ownership mismatch is reported identically to
	// non-existence.
	FindByUserID(ctx context.Context, userID, orderID int64) (models.Order, error)

	// FindAllByUserID returns one page of the user's orders, newest
	// first. Fails with the user's not-found error when the user
	// itself is absent.
	FindAllByUserID(ctx context.Context, userID int64, page, size int) ([]models.Order, error)
}
