// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Volkova

package validators

import "errors"

// Request-parameter errors. All of them are surfaced as 400 Bad Request
// before any store access. Callers match against them with [errors.Is].
var (
	// ErrInvalidPage is returned when the page query parameter is negative.
	ErrInvalidPage = errors.New("page must not be negative")

	// ErrInvalidSize is returned when the size query parameter is zero
	// or negative.
	ErrInvalidSize = errors.New("size must be a positive integer")

	// ErrPageSizeTooLarge is returned when the size query parameter
	// exceeds [MaxPageSize].
	ErrPageSizeTooLarge = errors.New("size exceeds the maximum page size")

	// ErrInvalidID is returned when a path identifier is not a positive
	// integer.
	ErrInvalidID = errors.New("id must be a positive integer")
)

// Entity-invariant errors raised on create and after a merge-patch.
var (
	// ErrEmptyCertificateName is returned when a certificate has an
	// empty name.
	ErrEmptyCertificateName = errors.New("certificate name must not be empty")

	// ErrNegativePrice is returned when a certificate price is negative.
	ErrNegativePrice = errors.New("certificate price must not be negative")

	// ErrNonPositiveDuration is returned when a certificate duration is
	// zero or negative.
	ErrNonPositiveDuration = errors.New("certificate duration must be a positive number of days")

	// ErrEmptyUserLogin is returned when a user is registered with an
	// empty login.
	ErrEmptyUserLogin = errors.New("user login must not be empty")

	// ErrEmptyUserName is returned when a user is registered with an
	// empty name.
	ErrEmptyUserName = errors.New("user name must not be empty")
)
