package view

import (
	"fmt"
	"slices"
	"strings"
)

// Schema describes how one record type is searched and narrowed.
//
// S is the record's selector enumeration (status, health, category). The
// empty S value means "no selector".
type Schema[R any, S ~string] struct {
	// Selectors is the closed enumeration accepted by Filter.
	Selectors []S

	// SelectorOf returns the field compared against the selector.
	SelectorOf func(R) S

	// SearchFields returns the free-text fields the query is matched against.
	SearchFields func(R) []string
}

// Valid reports whether sel is a member of the selector enumeration.
func (s Schema[R, S]) Valid(sel S) bool {
	return slices.Contains(s.Selectors, sel)
}

// ParseSelector converts user input into a selector value.
//
// The empty string parses to the empty selector. Any other value must be a
// member of the enumeration; otherwise the error wraps [ErrInvalidSelector].
func (s Schema[R, S]) ParseSelector(raw string) (S, error) {
	if raw == "" {
		return "", nil
	}

	sel := S(raw)
	if !s.Valid(sel) {
		return "", fmt.Errorf("%w: %s (want one of %s)", ErrInvalidSelector, raw, s.selectorList())
	}

	return sel, nil
}

// match reports whether rec is visible for the lowercased query and selector.
func (s Schema[R, S]) match(rec R, lowerQuery string, sel S) bool {
	if sel != "" && s.SelectorOf(rec) != sel {
		return false
	}

	if lowerQuery == "" {
		return true
	}

	for _, field := range s.SearchFields(rec) {
		if strings.Contains(strings.ToLower(field), lowerQuery) {
			return true
		}
	}

	return false
}

// Filter returns the records matching query and sel, in their original order.
//
// A record matches when sel is empty or equals its selector field, and the
// query is empty or its lowercase form is a substring of at least one
// lowercased search field. The query is not trimmed.
//
// A selector outside the enumeration matches nothing.
func (s Schema[R, S]) Filter(records []R, query string, sel S) []R {
	out := make([]R, 0, len(records))

	if sel != "" && !s.Valid(sel) {
		return out
	}

	lowerQuery := strings.ToLower(query)

	for _, rec := range records {
		if s.match(rec, lowerQuery, sel) {
			out = append(out, rec)
		}
	}

	return out
}

func (s Schema[R, S]) selectorList() string {
	names := make([]string, len(s.Selectors))
	for i, sel := range s.Selectors {
		names[i] = string(sel)
	}

	return strings.Join(names, "|")
}

// Where returns the records for which keep reports true, in their original
// order. It narrows a [Schema.Filter] result by fields outside the schema.
// A nil keep returns a copy of records.
func Where[R any](records []R, keep func(R) bool) []R {
	out := make([]R, 0, len(records))

	for _, rec := range records {
		if keep == nil || keep(rec) {
			out = append(out, rec)
		}
	}

	return out
}
