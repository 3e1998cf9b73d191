// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Volkova

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Fixed-shape statements are kept as plain SQL constants; queries whose
// WHERE clause depends on request parameters are assembled with squirrel
// in the build* functions below.
const (
	insertCertificate = `
		INSERT INTO certificates (name, description, price, duration)
		VALUES ($1, $2, $3, $4)
		RETURNING id, create_date, last_update_date;`

	selectCertificateByID = `
		SELECT id, name, description, price, duration, create_date, last_update_date
		FROM certificates
		WHERE id = $1;`

	updateCertificate = `
		UPDATE certificates SET
			name             = $1,
			description      = $2,
			price            = $3,
			duration         = $4,
			last_update_date = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING create_date, last_update_date;`

	deleteCertificate = `
		DELETE FROM certificates
		WHERE id = $1;`

	upsertTag = `
		INSERT INTO tags (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id;`

	insertCertificateTag = `
		INSERT INTO certificate_tags (certificate_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;`

	deleteCertificateTags = `
		DELETE FROM certificate_tags
		WHERE certificate_id = $1;`

	insertUser = `
		INSERT INTO users (login, name)
		VALUES ($1, $2)
		RETURNING id, login, name, created_at;`

	selectUserByID = `
		SELECT id, login, name, created_at
		FROM users
		WHERE id = $1;`

	selectOrderByUserAndID = `
		SELECT id, user_id, certificate_id, certificate_name, cost, purchase_date
		FROM orders
		WHERE id = $1 AND user_id = $2;`
)

// conjunctiveTagMatch keeps only certificates linked to every tag in the
// provided name list: the grouped subquery counts distinct matched names
// and requires the count to equal the list length.
const conjunctiveTagMatch = `certificates.id IN (
	SELECT ct.certificate_id
	FROM certificate_tags ct
	JOIN tags t ON t.id = ct.tag_id
	WHERE t.name = ANY(?)
	GROUP BY ct.certificate_id
	HAVING COUNT(DISTINCT t.name) = ?
)`

// buildSelectCertificatesQuery assembles the filtered, paginated
// certificate listing. Filters combine conjunctively; pagination applies
// after filtering; ordering by id keeps consecutive pages a gap-free
// partition of the filtered set.
func buildSelectCertificatesQuery(filter CertificateFilter) (string, []any, error) {
	builder := sq.
		Select("id", "name", "description", "price", "duration", "create_date", "last_update_date").
		From("certificates").
		PlaceholderFormat(sq.Dollar)

	if len(filter.TagNames) > 0 {
		builder = builder.Where(conjunctiveTagMatch, filter.TagNames, len(filter.TagNames))
	}

	if filter.PartName != "" {
		pattern := "%" + filter.PartName + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		})
	}

	query, args, err := builder.
		OrderBy("id").
		Limit(uint64(filter.Size)).
		Offset(uint64(filter.Page * filter.Size)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectTagsByCertificateIDsQuery assembles the batched tag lookup
// for a set of certificates. sq.Eq expands the id list into individual
// placeholders.
func buildSelectTagsByCertificateIDsQuery(ids []int64) (string, []any, error) {
	query, args, err := sq.
		Select("ct.certificate_id", "t.id", "t.name").
		From("certificate_tags ct").
		Join("tags t ON t.id = ct.tag_id").
		Where(sq.Eq{"ct.certificate_id": ids}).
		PlaceholderFormat(sq.Dollar).
		OrderBy("ct.certificate_id", "t.id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectUsersQuery assembles the plain paginated user listing,
// ordered by id.
func buildSelectUsersQuery(page, size int) (string, []any, error) {
	query, args, err := sq.
		Select("id", "login", "name", "created_at").
		From("users").
		PlaceholderFormat(sq.Dollar).
		OrderBy("id").
		Limit(uint64(size)).
		Offset(uint64(page * size)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectUsersByMostCostQuery orders the full user population by
// total order spend, descending, before paging. Users without orders
// count as zero spend; ties break by ascending id for determinism.
func buildSelectUsersByMostCostQuery(page, size int) (string, []any, error) {
	query, args, err := sq.
		Select("u.id", "u.login", "u.name", "u.created_at").
		From("users u").
		LeftJoin("orders o ON o.user_id = u.id").
		GroupBy("u.id", "u.login", "u.name", "u.created_at").
		PlaceholderFormat(sq.Dollar).
		OrderBy("COALESCE(SUM(o.cost), 0) DESC", "u.id ASC").
		Limit(uint64(size)).
		Offset(uint64(page * size)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectOrdersByUserQuery assembles one page of a user's orders,
// newest purchase first, ties broken by ascending id.
func buildSelectOrdersByUserQuery(userID int64, page, size int) (string, []any, error) {
	query, args, err := sq.
		Select("id", "user_id", "certificate_id", "certificate_name", "cost", "purchase_date").
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		OrderBy("purchase_date DESC", "id ASC").
		Limit(uint64(size)).
		Offset(uint64(page * size)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
