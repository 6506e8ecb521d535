// Package query implements the filter, sort and paginate pipeline shared by
// every listing page.
package query

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// All is the filter value that disables a constraint.
const All = "All"

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// State is the query state a store keeps for one listing.
type State struct {
	Search    string
	Filters   map[string]string
	SortField string
	SortDir   Direction
	Page      int
}

// WithFilter returns a copy of st with filter key set to value.
func (st State) WithFilter(key, value string) State {
	filters := make(map[string]string, len(st.Filters)+1)
	for k, v := range st.Filters {
		filters[k] = v
	}
	filters[key] = value
	st.Filters = filters
	return st
}

// Filter returns the value of a filter, or All when unset.
func (st State) Filter(key string) string {
	if v, ok := st.Filters[key]; ok && v != "" {
		return v
	}
	return All
}

// ToggleSort selects field. Selecting the current field again flips the
// direction; a different field starts ascending.
func (st State) ToggleSort(field string) State {
	if st.SortField == field {
		if st.SortDir == Asc {
			st.SortDir = Desc
		} else {
			st.SortDir = Asc
		}
		return st
	}
	st.SortField = field
	st.SortDir = Asc
	return st
}

// Compare orders two records ascending.
type Compare[T any] func(a, b T) int

// Predicate reports whether a record satisfies a filter value.
type Predicate[T any] func(item T, value string) bool

// Spec describes how one collection is searched, filtered and sorted.
type Spec[T any] struct {
	PageSize     int
	SearchFields []func(T) string
	Filters      map[string]Predicate[T]
	Sorts        map[string]Compare[T]
}

// Sortable reports whether field names one of the spec's sort keys.
func (spec Spec[T]) Sortable(field string) bool {
	_, ok := spec.Sorts[field]
	return ok
}

// Result is the visible page plus the metadata needed by pagination controls.
type Result[T any] struct {
	Rows []T
	Pagination
}

// Run filters, sorts and paginates items. items is never modified.
func Run[T any](items []T, spec Spec[T], st State) Result[T] {
	all := Apply(items, spec, st)
	p := NewPagination(st.Page, spec.PageSize, len(all))
	start, end := p.Bounds()
	return Result[T]{Rows: all[start:end], Pagination: p}
}

// Apply returns every record that passes the filters, in sorted order.
func Apply[T any](items []T, spec Spec[T], st State) []T {
	out := filter(items, spec, st)
	if less, ok := spec.Sorts[st.SortField]; ok {
		slices.SortStableFunc(out, less)
		if st.SortDir == Desc {
			slices.Reverse(out)
		}
	}
	return out
}

func filter[T any](items []T, spec Spec[T], st State) []T {
	needle := ""
	if s := strings.TrimSpace(st.Search); s != "" {
		needle = fold(s)
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if needle != "" && !matchesSearch(item, spec.SearchFields, needle) {
			continue
		}
		if !matchesFilters(item, spec.Filters, st.Filters) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesSearch[T any](item T, fields []func(T) string, needle string) bool {
	if len(fields) == 0 {
		return true
	}
	for _, field := range fields {
		if strings.Contains(fold(field(item)), needle) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](item T, preds map[string]Predicate[T], values map[string]string) bool {
	for key, value := range values {
		if value == "" || value == All {
			continue
		}
		pred, ok := preds[key]
		if !ok {
			continue
		}
		if !pred(item, value) {
			return false
		}
	}
	return true
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// Equals is a Predicate matching a string field exactly.
func Equals[T any](field func(T) string) Predicate[T] {
	return func(item T, value string) bool { return field(item) == value }
}

// EqualFold is a Predicate matching a string field case-insensitively.
func EqualFold[T any](field func(T) string) Predicate[T] {
	return func(item T, value string) bool { return fold(field(item)) == fold(value) }
}

// Ordered compares a numeric or otherwise ordered key.
func Ordered[T any, K cmp.Ordered](key func(T) K) Compare[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// Lexical compares string keys case-insensitively.
func Lexical[T any](key func(T) string) Compare[T] {
	return func(a, b T) int { return strings.Compare(fold(key(a)), fold(key(b))) }
}

// Ranked compares enum keys through a rank table. Values missing from the
// table rank after every known value.
func Ranked[T any](key func(T) string, ranks map[string]int) Compare[T] {
	rank := func(v string) int {
		if r, ok := ranks[v]; ok {
			return r
		}
		return 99
	}
	return func(a, b T) int { return cmp.Compare(rank(key(a)), rank(key(b))) }
}

// Chronological compares date strings in the given layout. Unparseable
// values sort as the zero time.
func Chronological[T any](key func(T) string, layout string) Compare[T] {
	parse := func(v string) time.Time {
		t, err := time.Parse(layout, v)
		if err != nil {
			return time.Time{}
		}
		return t
	}
	return func(a, b T) int { return parse(key(a)).Compare(parse(key(b))) }
}
