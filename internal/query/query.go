// package query holds the list helpers shared by the directory and trivia services:
// pagination, past/upcoming partitioning and case-insensitive search.
package query

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// DefaultPageSize is the page size used when a caller passes a non-positive size.
const DefaultPageSize = 10

// Paginate returns the 1-based page of items. Pages below 1 are treated as page 1 and
// pages past the end are empty. The result never aliases beyond the page bounds.
func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	if page > Pages(len(items), size) {
		return []T{}
	}
	start := (page - 1) * size
	end := min(start+size, len(items))
	return slices.Clip(items[start:end])
}

// Pages reports how many pages of size it takes to hold total items.
func Pages(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return pages
}

// Event is anything scheduled at an instant with a stable identity.
type Event interface {
	Key() int64
	Start() time.Time
}

// Partition splits events around ref. Events strictly before ref are past, the rest are upcoming.
// Both halves are sorted by start time, ties broken by key.
func Partition[T Event](events []T, ref time.Time) (past, upcoming []T) {
	past, upcoming = []T{}, []T{}
	for _, e := range events {
		if e.Start().Before(ref) {
			past = append(past, e)
		} else {
			upcoming = append(upcoming, e)
		}
	}

	byStart := func(a, b T) int {
		if c := a.Start().Compare(b.Start()); c != 0 {
			return c
		}
		return cmp.Compare(a.Key(), b.Key())
	}
	slices.SortStableFunc(past, byStart)
	slices.SortStableFunc(upcoming, byStart)
	return past, upcoming
}

// Fold returns the Unicode case-folded form of s.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Search keeps the items whose field contains term, ignoring case. An empty term keeps everything.
// Matches stay in input order.
func Search[T any](items []T, term string, field func(T) string) []T {
	out := make([]T, 0, len(items))
	needle := Fold(term)
	for _, item := range items {
		if needle == "" || strings.Contains(Fold(field(item)), needle) {
			out = append(out, item)
		}
	}
	return out
}
