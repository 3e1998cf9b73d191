package store

import (
	"context"

	"github.com/avolkova/gift-certificates/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CertificateFilter is the request-scoped filter and pagination criteria
// for certificate listing. Zero values mean "no filter": an empty
// TagNames slice and an empty PartName select the whole population.
type CertificateFilter struct {
	// TagNames narrows the result to certificates associated with ALL
	// listed tags (conjunctive match).
	TagNames []string

	// PartName narrows the result to certificates whose name or
	// description contains the value as a case-insensitive substring.
	PartName string

	// Page is the zero-based page number; Size is the page length.
	// Pagination applies after filtering.
	Page int
	Size int
}

// CertificateRepository is the persistence contract for certificates and
// their tag associations. Every write method is a single atomic
// operation: the certificate row and its tag links change together or
// not at all.
type CertificateRepository interface {
	Create(ctx context.Context, certificate models.Certificate) (models.Certificate, error)
	FindAll(ctx context.Context, filter CertificateFilter) ([]models.Certificate, error)
	FindByID(ctx context.Context, id int64) (models.Certificate, error)

	// Update overwrites the certificate row identified by
	// certificate.ID. When updateTags is true the tag associations are
	// replaced with certificate.Tags in the same transaction.
	Update(ctx context.Context, certificate models.Certificate, updateTags bool) (models.Certificate, error)

	Delete(ctx context.Context, id int64) error
}

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindAll(ctx context.Context, page, size int) ([]models.User, error)

	// FindByMostCost returns one page of users ordered by their total
	// spend across all orders, descending, ties broken by ascending id.
	FindByMostCost(ctx context.Context, page, size int) ([]models.User, error)

	FindByID(ctx context.Context, id int64) (models.User, error)
}

// OrderRepository is the persistence contract for orders. Orders are
// immutable after creation, so the contract is read-only.
type OrderRepository interface {
	// FindByUserID returns the order only when it exists AND belongs to
	// the given user; otherwise [ErrOrderNotFound].
	FindByUserID(ctx context.Context, userID, orderID int64) (models.Order, error)

	// FindAllByUserID returns one page of the user's orders, purchase
	// date descending, ties broken by ascending id.
	FindAllByUserID(ctx context.Context, userID int64, page, size int) ([]models.Order, error)
}
