package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkova/gift-certificates/internal/logger"
	"github.com/avolkova/gift-certificates/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of
// [UserRepository]. It handles account creation and lookup against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserLoginExists].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, insertUser, user.Login, user.Name)
	if err := row.Scan(&user.ID, &user.Login, &user.Name, &user.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUserLoginExists
		}

		log.Err(err).Str("func", "*userRepository.Create").Str("login", user.Login).Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// FindAll retrieves one page of users ordered by id.
func (r *userRepository) FindAll(ctx context.Context, page, size int) ([]models.User, error) {
	query, args, err := buildSelectUsersQuery(page, size)
	if err != nil {
		return nil, err
	}

	return r.queryUsers(ctx, "*userRepository.FindAll", query, args)
}

// FindByMostCost retrieves one page of users ordered by their total
// order spend, descending. Ordering happens over the full population
// before paging; ties break by ascending id.
func (r *userRepository) FindByMostCost(ctx context.Context, page, size int) ([]models.User, error) {
	query, args, err := buildSelectUsersByMostCostQuery(page, size)
	if err != nil {
		return nil, err
	}

	return r.queryUsers(ctx, "*userRepository.FindByMostCost", query, args)
}

// FindByID retrieves a single user record.
//
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, selectUserByID, id)
	if err := row.Scan(&user.ID, &user.Login, &user.Name, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindByID").Int64("id", id).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (r *userRepository) queryUsers(ctx context.Context, funcName, query string, args []any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Bool("retryable", r.db.IsRetryable(err)).Msg("failed to execute user listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 10)
	for rows.Next() {
		var user models.User
		if scanErr := rows.Scan(&user.ID, &user.Login, &user.Name, &user.CreatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}
