package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkova/gift-certificates/internal/logger"
	"github.com/avolkova/gift-certificates/models"
)

// orderRepository is the PostgreSQL-backed implementation of
// [OrderRepository]. Orders are written once at purchase time and never
// change afterwards, so only lookups live here.
type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository constructs an [OrderRepository] backed by the
// provided database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

// FindByUserID retrieves a single order scoped to its owning user.
// The WHERE clause matches both the order id and the user id, so an
// order that exists but belongs to another user yields the same
// [ErrOrderNotFound] as an order that does not exist at all.
func (r *orderRepository) FindByUserID(ctx context.Context, userID, orderID int64) (models.Order, error) {
	log := logger.FromContext(ctx)

	var order models.Order
	row := r.db.QueryRowContext(ctx, selectOrderByUserAndID, orderID, userID)
	if err := row.Scan(&order.ID, &order.UserID, &order.CertificateID, &order.CertificateName, &order.Cost, &order.PurchaseDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrOrderNotFound
		}

		log.Err(err).
			Str("func", "*orderRepository.FindByUserID").
			Int64("user_id", userID).
			Int64("order_id", orderID).
			Msg("error scanning order")
		return models.Order{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return order, nil
}

// FindAllByUserID retrieves one page of the user's orders, newest
// purchase first, ties broken by ascending id.
func (r *orderRepository) FindAllByUserID(ctx context.Context, userID int64, page, size int) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOrdersByUserQuery(userID, page, size)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.FindAllByUserID").Int64("user_id", userID).Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*orderRepository.FindAllByUserID").
			Int64("user_id", userID).
			Bool("retryable", r.db.IsRetryable(err)).
			Msg("failed to execute order listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0, size)
	for rows.Next() {
		var order models.Order
		if scanErr := rows.Scan(&order.ID, &order.UserID, &order.CertificateID, &order.CertificateName, &order.Cost, &order.PurchaseDate); scanErr != nil {
			log.Err(scanErr).Str("func", "*orderRepository.FindAllByUserID").Int64("user_id", userID).Msg("failed to scan order row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		orders = append(orders, order)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*orderRepository.FindAllByUserID").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return orders, nil
}
