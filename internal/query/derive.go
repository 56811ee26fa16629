// Package query derives the filtered, sorted task list shown to staff.
package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/rezkam/hostitask/internal/domain"
)

// Derive returns the tasks matching params, ordered urgent-first and then by params.SortKey.
// The input slice is never modified. The sort is stable, so tasks that compare
// equal keep their relative input order.
func Derive(tasks []domain.Task, params domain.ViewParams) []domain.Task {
	search := strings.ToLower(params.Search)

	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if matches(t, params, search) {
			out = append(out, t)
		}
	}

	slices.SortStableFunc(out, comparator(params.SortKey))
	return out
}

func matches(t domain.Task, params domain.ViewParams, search string) bool {
	if search != "" && !strings.Contains(strings.ToLower(t.Description), search) {
		return false
	}
	if params.Department != nil && t.Department != *params.Department {
		return false
	}
	if params.Status != nil && t.Status != *params.Status {
		return false
	}
	return true
}

// comparator builds the ordering for a sort key. Urgency always dominates.
func comparator(key domain.SortKey) func(a, b domain.Task) int {
	var secondary func(a, b domain.Task) int
	switch key {
	case domain.SortByStatus:
		// Plain lexicographic order of the status code: done, in-progress, not-done, pending.
		secondary = func(a, b domain.Task) int {
			return strings.Compare(string(a.Status), string(b.Status))
		}
	case domain.SortByDate:
		secondary = func(a, b domain.Task) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	default:
		secondary = func(a, b domain.Task) int { return 0 }
	}

	return func(a, b domain.Task) int {
		if c := cmp.Compare(urgencyRank(a), urgencyRank(b)); c != 0 {
			return c
		}
		return secondary(a, b)
	}
}

func urgencyRank(t domain.Task) int {
	if t.IsUrgent() {
		return 0
	}
	return 1
}
