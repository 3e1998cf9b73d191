// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Volkova

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/avolkova/gift-certificates/internal/validators"
	"github.com/go-chi/chi/v5"
)

// Query parameter names accepted by the list endpoints.
const (
	paramTagName  = "tag_name"
	paramPartName = "part_name"
	paramPage     = "page"
	paramSize     = "size"
)

// idParam extracts a positive int64 path parameter. A non-numeric value is
// reported with the same sentinel as an out-of-range one, so the caller maps
// both to a single client error.
func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", validators.ErrInvalidID, raw)
	}

	return id, nil
}

// pagination extracts `page` and `size` query parameters. Absent parameters
// fall back to page 0 and the handler's configured default size; malformed
// values are reported with the pagination sentinels.
func (h *Handler) pagination(r *http.Request) (page, size int, err error) {
	page, err = queryInt(r, paramPage, 0, validators.ErrInvalidPage)
	if err != nil {
		return 0, 0, err
	}

	size, err = queryInt(r, paramSize, h.defaultPageSize, validators.ErrInvalidSize)
	if err != nil {
		return 0, 0, err
	}

	return page, size, nil
}

func queryInt(r *http.Request, name string, fallback int, sentinel error) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", sentinel, raw)
	}

	return value, nil
}
