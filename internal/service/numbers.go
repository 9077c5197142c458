package service

import (
	"strconv"
	"strings"
)

// The catalog forms treat numeric input leniently: a value that does not
// parse is coerced to a default instead of failing the whole submission.

// parseIntOrZero returns the integer value of s, or 0 when s is not an integer.
func parseIntOrZero(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// parseIntPtr returns a pointer to the integer value of s, or nil when s is
// not an integer.
func parseIntPtr(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &v
}

// parseIDPtr returns a pointer to the positive identifier value of s, or nil
// when s is not a positive integer.
func parseIDPtr(s string) *uint {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return nil
	}
	id := uint(v)
	return &id
}
