package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avolkova/gift-certificates/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrderRepo(t *testing.T) (*orderRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &orderRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestOrderFindByUserID_Success(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM orders").
		WithArgs(int64(7), int64(5)).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "user_id", "certificate_id", "certificate_name", "cost", "purchase_date"}).
			AddRow(7, 5, 42, "Yoga", 4990, now))

	order, err := repo.FindByUserID(context.Background(), 5, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), order.ID)
	assert.Equal(t, int64(5), order.UserID)
	assert.Equal(t, int64(4990), order.Cost)
	assert.Equal(t, "Yoga", order.CertificateName)
}

func TestOrderFindByUserID_OwnershipMismatchIsNotFound(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	// order 7 belongs to user 9; the query is scoped by user 5 and
	// matches nothing, which is indistinguishable from a missing order
	mock.ExpectQuery("SELECT (.+) FROM orders").
		WithArgs(int64(7), int64(5)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByUserID(context.Background(), 5, 7)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderFindAllByUserID_ReturnsPage(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	newer := time.Now()
	older := newer.Add(-24 * time.Hour)
	mock.ExpectQuery("SELECT (.+) FROM orders").
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "user_id", "certificate_id", "certificate_name", "cost", "purchase_date"}).
			AddRow(2, 5, 42, "Yoga", 4990, newer).
			AddRow(1, 5, 43, "Gym Pass", 9900, older))

	orders, err := repo.FindAllByUserID(context.Background(), 5, 0, 10)
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, int64(2), orders[0].ID, "newest purchase first")
	assert.Equal(t, int64(1), orders[1].ID)
}

func TestOrderFindAllByUserID_EmptyPage(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "certificate_id", "certificate_name", "cost", "purchase_date"}))

	orders, err := repo.FindAllByUserID(context.Background(), 5, 3, 10)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
