package domain

import "strings"

// ValidatePageSize checks that n is within [1, MaxPageSize] and returns it
// unchanged. No side effects.
func ValidatePageSize(n int) (int, error) {
	if n <= 0 || n > MaxPageSize {
		return 0, InvalidArgumentf("page size must be between 1 and %d", MaxPageSize)
	}
	return n, nil
}

// ValidateCursor passes an absent cursor through and rejects one longer than
// MaxCursorLength. The cursor itself stays opaque; only its length is checked.
func ValidateCursor(cursor string) (string, error) {
	if len(cursor) > MaxCursorLength {
		return "", InvalidArgumentf("cursor too long")
	}
	return cursor, nil
}

// ValidateID trims the identifier and rejects it when empty. The trimmed
// value is returned, so the check is idempotent.
func ValidateID(id, fieldName string) (string, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return "", InvalidArgumentf("%s cannot be empty", fieldName)
	}
	return trimmed, nil
}
