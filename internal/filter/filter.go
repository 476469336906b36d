// Package filter implements record lookup as composable predicates over a
// full record set.
package filter

import (
	"strings"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
)

type Predicate[T any] func(T) bool

// All combines predicates conjunctively. Nil predicates are skipped, so an
// empty list matches everything.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if p != nil && !p(v) {
				return false
			}
		}
		return true
	}
}

// Apply returns the records matching pred, preserving order. The result is
// never nil.
func Apply[T any](records []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if pred == nil || pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// First returns the first record matching pred.
func First[T any](records []T, pred Predicate[T]) (T, bool) {
	for _, r := range records {
		if pred(r) {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// CheckDateRange rejects a range whose start is after its end. Equal bounds are allowed.
func CheckDateRange(start, end time.Time) error {
	if start.After(end) {
		return domain.ErrInvalidDateRange
	}
	return nil
}

func CheckAmountRange(min, max float64) error {
	if min > max {
		return domain.ErrInvalidAmountRange
	}
	return nil
}

// Between reports whether t lies in the closed interval [start, end].
func Between(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}
