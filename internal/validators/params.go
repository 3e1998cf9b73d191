package validators

// MaxPageSize is the largest page size a caller may request.
// Requests above it fail with [ErrPageSizeTooLarge] instead of being
// silently clamped.
const MaxPageSize = 100

// ValidatePagination checks pagination query parameters before any store
// call. Pure function: no I/O, no mutation.
//
// Rules: page >= 0, 0 < size <= [MaxPageSize].
func ValidatePagination(page, size int) error {
	if page < 0 {
		return ErrInvalidPage
	}
	if size <= 0 {
		return ErrInvalidSize
	}
	if size > MaxPageSize {
		return ErrPageSizeTooLarge
	}

	return nil
}

// ValidateID checks that a path identifier is a positive integer.
// Pure function: no I/O, no mutation.
func ValidateID(id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}

	return nil
}
