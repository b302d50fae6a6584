// Package view implements the list filter and aggregate view-model shared by
// every dashboard page: an immutable record store, a stable text/selector
// filter and count/sum/ratio reductions over the full store.
package view

import (
	"fmt"
	"slices"
)

// Record is one domain entity held by a [Store].
type Record interface {
	// RecordID returns the identifier, unique within a store.
	RecordID() string

	// Validate reports an error if a categorical field is outside its
	// enumeration or a numeric field is out of range.
	Validate() error
}

// Store is an immutable, ordered sequence of records.
//
// A Store is built once per page view and never mutated. All accessors
// return copies so callers cannot alter the backing slice.
type Store[R Record] struct {
	records []R
}

// NewStore validates records and takes a private copy of them.
//
// Returns an error wrapping [ErrEmptyID] or [ErrDuplicateID] for identifier
// violations, or the record's own Validate error.
func NewStore[R Record](records []R) (*Store[R], error) {
	seen := make(map[string]struct{}, len(records))
	owned := make([]R, 0, len(records))

	for i, rec := range records {
		id := rec.RecordID()
		if id == "" {
			return nil, fmt.Errorf("%w: record #%d", ErrEmptyID, i+1)
		}

		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}

		err := rec.Validate()
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", id, err)
		}

		seen[id] = struct{}{}
		owned = append(owned, rec)
	}

	return &Store[R]{records: owned}, nil
}

// Len returns the number of records.
func (s *Store[R]) Len() int {
	return len(s.records)
}

// All returns a copy of every record in store order.
func (s *Store[R]) All() []R {
	return slices.Clone(s.records)
}
