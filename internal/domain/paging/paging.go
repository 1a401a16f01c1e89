// Package paging holds the list query fields shared by every aggregate.
package paging

import (
	"fmt"
	"slices"
)

// Page size bounds applied to every list query
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Sort orders
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Query carries pagination and sorting of a list request
type Query struct {
	Limit     int    `validate:"min=0,max=100"`
	Offset    int    `validate:"min=0"`
	SortBy    string `validate:"omitempty,max=64"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// EffectiveLimit returns Limit or DefaultLimit when unset
func (q Query) EffectiveLimit() int {
	if q.Limit <= 0 {
		return DefaultLimit
	}
	if q.Limit > MaxLimit {
		return MaxLimit
	}
	return q.Limit
}

// OrderClause builds the ORDER BY clause, falling back to fallback when SortBy is empty.
// SortBy must be one of allowed.
func (q Query) OrderClause(fallback string, allowed ...string) (string, error) {
	if q.SortBy == "" {
		return fallback, nil
	}
	if !slices.Contains(allowed, q.SortBy) {
		return "", fmt.Errorf("sorting by %q is not supported", q.SortBy)
	}
	order := q.SortOrder
	if order == "" {
		order = SortAsc
	}
	return fmt.Sprintf("%s %s", q.SortBy, order), nil
}
