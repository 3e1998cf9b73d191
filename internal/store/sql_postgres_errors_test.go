package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassify_NilAndForeignErrors(t *testing.T) {
	c := NewPostgresErrorClassifier()

	if got := c.Classify(nil); got != NonRetryable {
		t.Errorf("nil error: expected NonRetryable, got %v", got)
	}
	if got := c.Classify(errors.New("dial tcp: refused")); got != NonRetryable {
		t.Errorf("non-pg error: expected NonRetryable, got %v", got)
	}
}

func TestClassify_RetryableCodes(t *testing.T) {
	c := NewPostgresErrorClassifier()

	for _, code := range []string{
		pgerrcode.ConnectionFailure,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow,
	} {
		if got := c.Classify(&pgconn.PgError{Code: code}); got != Retryable {
			t.Errorf("code %s: expected Retryable, got %v", code, got)
		}
	}
}

func TestClassify_ConstraintViolationsAreNotRetryable(t *testing.T) {
	c := NewPostgresErrorClassifier()

	for _, code := range []string{
		pgerrcode.UniqueViolation,
		pgerrcode.ForeignKeyViolation,
		pgerrcode.UndefinedTable,
	} {
		if got := c.Classify(&pgconn.PgError{Code: code}); got != NonRetryable {
			t.Errorf("code %s: expected NonRetryable, got %v", code, got)
		}
	}
}

func TestIsRetryable_UnwrapsWrappedErrors(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}

	wrapped := fmt.Errorf("%w: %w", ErrExecutingQuery, &pgconn.PgError{Code: pgerrcode.DeadlockDetected})
	if !db.IsRetryable(wrapped) {
		t.Error("deadlock wrapped in ErrExecutingQuery should classify as retryable")
	}
	if db.IsRetryable(ErrExecutingQuery) {
		t.Error("bare query error should not classify as retryable")
	}
}
