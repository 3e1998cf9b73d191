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

// certificateRepository is the PostgreSQL-backed implementation of
// [CertificateRepository]. It owns the "certificates", "tags" and
// "certificate_tags" tables; every write covers the certificate row and
// its tag links in one transaction.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type certificateRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCertificateRepository constructs a [CertificateRepository] backed by
// the provided database connection and logger.
func NewCertificateRepository(db *DB, logger *logger.Logger) CertificateRepository {
	logger.Debug().Msg("creating certificate repository")
	return &certificateRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new certificate together with its tag associations
// and returns the fully populated [models.Certificate] with
// server-assigned fields (ID, CreateDate, LastUpdateDate).
//
// Tags are upserted by name, so referencing an existing tag links to it
// instead of duplicating it.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the name → [ErrCertificateNameExists].
//   - Any other driver-level error → wrapped low-level sentinel.
func (r *certificateRepository) Create(ctx context.Context, certificate models.Certificate) (models.Certificate, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*certificateRepository.Create").Msg("error beginning transaction")
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, insertCertificate,
		certificate.Name, certificate.Description, certificate.Price, certificate.Duration)
	if err := row.Scan(&certificate.ID, &certificate.CreateDate, &certificate.LastUpdateDate); err != nil {
		log.Err(err).Str("func", "*certificateRepository.Create").Str("name", certificate.Name).Msg("error inserting certificate")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Certificate{}, ErrCertificateNameExists
		}
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := r.linkTags(ctx, tx, &certificate); err != nil {
		return models.Certificate{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*certificateRepository.Create").Msg("error committing transaction")
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return certificate, nil
}

// FindAll retrieves one page of certificates matching the filter, tags
// attached, ordered by id. Filters combine conjunctively; an empty
// filter selects the whole population.
func (r *certificateRepository) FindAll(ctx context.Context, filter CertificateFilter) ([]models.Certificate, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCertificatesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*certificateRepository.FindAll").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*certificateRepository.FindAll").
			Strs("tag_names", filter.TagNames).
			Str("part_name", filter.PartName).
			Bool("retryable", r.db.IsRetryable(err)).
			Msg("failed to execute certificate listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	certificates := make([]models.Certificate, 0, filter.Size)
	for rows.Next() {
		var c models.Certificate
		if scanErr := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Price, &c.Duration, &c.CreateDate, &c.LastUpdateDate); scanErr != nil {
			log.Err(scanErr).Str("func", "*certificateRepository.FindAll").Msg("failed to scan certificate row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		certificates = append(certificates, c)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*certificateRepository.FindAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if err := r.attachTags(ctx, certificates); err != nil {
		return nil, err
	}

	return certificates, nil
}

// FindByID retrieves a single certificate with its tags.
//
// Returns [ErrCertificateNotFound] when no row matches.
func (r *certificateRepository) FindByID(ctx context.Context, id int64) (models.Certificate, error) {
	log := logger.FromContext(ctx)

	var c models.Certificate
	row := r.db.QueryRowContext(ctx, selectCertificateByID, id)
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Price, &c.Duration, &c.CreateDate, &c.LastUpdateDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Certificate{}, ErrCertificateNotFound
		}

		log.Err(err).Str("func", "*certificateRepository.FindByID").Int64("id", id).Msg("error scanning certificate")
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	certificates := []models.Certificate{c}
	if err := r.attachTags(ctx, certificates); err != nil {
		return models.Certificate{}, err
	}

	return certificates[0], nil
}

// Update overwrites the certificate row and, when updateTags is set,
// replaces its tag associations — all inside one transaction, so a
// concurrent reader never observes a half-applied patch.
//
// Error handling:
//   - no matching row → [ErrCertificateNotFound]
//   - unique_violation on the new name → [ErrCertificateNameExists]
func (r *certificateRepository) Update(ctx context.Context, certificate models.Certificate, updateTags bool) (models.Certificate, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*certificateRepository.Update").Msg("error beginning transaction")
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, updateCertificate,
		certificate.Name, certificate.Description, certificate.Price, certificate.Duration, certificate.ID)
	if err := row.Scan(&certificate.CreateDate, &certificate.LastUpdateDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Certificate{}, ErrCertificateNotFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Certificate{}, ErrCertificateNameExists
		}

		log.Err(err).Str("func", "*certificateRepository.Update").Int64("id", certificate.ID).Msg("error updating certificate")
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if updateTags {
		if _, err := tx.ExecContext(ctx, deleteCertificateTags, certificate.ID); err != nil {
			log.Err(err).Str("func", "*certificateRepository.Update").Int64("id", certificate.ID).Msg("error clearing tag links")
			return models.Certificate{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if err := r.linkTags(ctx, tx, &certificate); err != nil {
			return models.Certificate{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*certificateRepository.Update").Msg("error committing transaction")
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return certificate, nil
}

// Delete removes the certificate row. Tag associations go with it via
// the ON DELETE CASCADE constraint on certificate_tags, which keeps the
// whole removal a single atomic statement.
//
// Returns [ErrCertificateNotFound] when no row matched, so a repeated
// delete of the same id reports not-found rather than silently
// succeeding.
func (r *certificateRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCertificate, id)
	if err != nil {
		log.Err(err).Str("func", "*certificateRepository.Delete").Int64("id", id).Msg("error deleting certificate")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*certificateRepository.Delete").Int64("id", id).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCertificateNotFound
	}

	return nil
}

// linkTags upserts every tag of the certificate by name and inserts the
// association rows, replacing certificate.Tags entries with their
// server-assigned ids.
func (r *certificateRepository) linkTags(ctx context.Context, tx *sql.Tx, certificate *models.Certificate) error {
	log := logger.FromContext(ctx)

	for i, tag := range certificate.Tags {
		row := tx.QueryRowContext(ctx, upsertTag, tag.Name)
		if err := row.Scan(&certificate.Tags[i].ID); err != nil {
			log.Err(err).Str("func", "*certificateRepository.linkTags").Str("tag", tag.Name).Msg("error upserting tag")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if _, err := tx.ExecContext(ctx, insertCertificateTag, certificate.ID, certificate.Tags[i].ID); err != nil {
			log.Err(err).Str("func", "*certificateRepository.linkTags").Str("tag", tag.Name).Msg("error linking tag")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// attachTags loads the tags for every certificate in the slice with a
// single query and distributes them in place.
func (r *certificateRepository) attachTags(ctx context.Context, certificates []models.Certificate) error {
	if len(certificates) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	ids := make([]int64, 0, len(certificates))
	index := make(map[int64]int, len(certificates))
	for i, c := range certificates {
		ids = append(ids, c.ID)
		index[c.ID] = i
		certificates[i].Tags = []models.Tag{}
	}

	query, args, err := buildSelectTagsByCertificateIDsQuery(ids)
	if err != nil {
		log.Err(err).Str("func", "*certificateRepository.attachTags").Msg("failed to create tags query")
		return err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*certificateRepository.attachTags").Msg("failed to execute tags query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var certificateID int64
		var tag models.Tag
		if scanErr := rows.Scan(&certificateID, &tag.ID, &tag.Name); scanErr != nil {
			log.Err(scanErr).Str("func", "*certificateRepository.attachTags").Msg("failed to scan tag row")
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if i, ok := index[certificateID]; ok {
			certificates[i].Tags = append(certificates[i].Tags, tag)
		}
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*certificateRepository.attachTags").Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return nil
}
