// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Volkova

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSelectCertificatesQuery_NoFilters(t *testing.T) {
	query, args, err := buildSelectCertificatesQuery(CertificateFilter{Page: 0, Size: 10})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from certificates")
	require.Contains(t, q, "order by id")
	require.Contains(t, q, "limit 10")
	require.Contains(t, q, "offset 0")
	require.NotContains(t, q, "where")

	assert.Empty(t, args)
}

func TestBuildSelectCertificatesQuery_TagFilter(t *testing.T) {
	filter := CertificateFilter{TagNames: []string{"fit", "gym"}, Page: 0, Size: 10}

	query, args, err := buildSelectCertificatesQuery(filter)
	require.NoError(t, err)

	q := strings.ToLower(query)

	// conjunctive match: grouped subquery over certificate_tags with a
	// distinct-count check against the number of requested names
	require.Contains(t, q, "certificate_tags")
	require.Contains(t, q, "group by ct.certificate_id")
	require.Contains(t, q, "having count(distinct t.name)")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")

	require.Len(t, args, 2)
	assert.Equal(t, []string{"fit", "gym"}, args[0])
	assert.Equal(t, 2, args[1])
}

func TestBuildSelectCertificatesQuery_PartNameFilter(t *testing.T) {
	filter := CertificateFilter{PartName: "gym", Page: 0, Size: 10}

	query, args, err := buildSelectCertificatesQuery(filter)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "name ilike")
	require.Contains(t, q, "description ilike")
	require.Contains(t, q, " or ")

	require.Len(t, args, 2)
	assert.Equal(t, "%gym%", args[0])
	assert.Equal(t, "%gym%", args[1])
}

func TestBuildSelectCertificatesQuery_CombinedFiltersAndPaging(t *testing.T) {
	filter := CertificateFilter{
		TagNames: []string{"fit"},
		PartName: "pass",
		Page:     2,
		Size:     25,
	}

	query, args, err := buildSelectCertificatesQuery(filter)
	require.NoError(t, err)

	q := strings.ToLower(query)

	// both filters present, combined conjunctively
	require.Contains(t, q, "certificate_tags")
	require.Contains(t, q, "ilike")

	// pagination applies after filtering
	require.Contains(t, q, "limit 25")
	require.Contains(t, q, "offset 50")

	// tag args precede part-name args (declaration order of Where calls)
	require.Len(t, args, 4)
	assert.Equal(t, []string{"fit"}, args[0])
	assert.Equal(t, 1, args[1])
	assert.Equal(t, "%pass%", args[2])
	assert.Equal(t, "%pass%", args[3])
}

func TestBuildSelectTagsByCertificateIDsQuery(t *testing.T) {
	query, args, err := buildSelectTagsByCertificateIDsQuery([]int64{2, 5})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "from certificate_tags ct")
	require.Contains(t, q, "join tags t on t.id = ct.tag_id")
	// id list expands into individual placeholders
	require.Contains(t, q, "ct.certificate_id in ($1,$2)")
	require.Contains(t, q, "order by ct.certificate_id, t.id")

	require.Len(t, args, 2)
	assert.Equal(t, int64(2), args[0])
	assert.Equal(t, int64(5), args[1])
}

func TestBuildSelectUsersQuery(t *testing.T) {
	query, args, err := buildSelectUsersQuery(1, 10)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "from users")
	require.Contains(t, q, "order by id")
	require.Contains(t, q, "limit 10")
	require.Contains(t, q, "offset 10")

	assert.Empty(t, args)
}

func TestBuildSelectUsersByMostCostQuery(t *testing.T) {
	query, args, err := buildSelectUsersByMostCostQuery(0, 10)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "left join orders o on o.user_id = u.id")
	require.Contains(t, q, "group by u.id")
	require.Contains(t, q, "coalesce(sum(o.cost), 0) desc")
	// deterministic tie-break
	require.Contains(t, q, "u.id asc")

	assert.Empty(t, args)
}

func TestBuildSelectOrdersByUserQuery(t *testing.T) {
	query, args, err := buildSelectOrdersByUserQuery(7, 3, 20)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "from orders")
	require.Contains(t, q, "user_id = $1")
	require.Contains(t, q, "purchase_date desc")
	require.Contains(t, q, "id asc")
	require.Contains(t, q, "limit 20")
	require.Contains(t, q, "offset 60")

	require.Len(t, args, 1)
	assert.Equal(t, int64(7), args[0])
}
