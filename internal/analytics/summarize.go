// Package analytics computes the manager dashboard statistics.
package analytics

import (
	"math"

	"github.com/rezkam/hostitask/internal/domain"
)

// Summarize aggregates the full task collection. It keeps no state between
// calls, so every call reflects the collection exactly as passed in.
func Summarize(tasks []domain.Task) domain.Summary {
	summary := domain.Summary{
		TotalTasks:       len(tasks),
		StatusCounts:     make(map[domain.TaskStatus]int, len(domain.TaskStatuses)),
		DepartmentCounts: make(map[domain.Department]int, len(domain.Departments)),
		DelayReasons:     make(map[string]int),
	}
	for _, status := range domain.TaskStatuses {
		summary.StatusCounts[status] = 0
	}
	for _, department := range domain.Departments {
		summary.DepartmentCounts[department] = 0
	}

	for _, t := range tasks {
		if t.IsUrgent() {
			summary.UrgentTasks++
		}
		if t.Status == domain.TaskStatusDone {
			summary.CompletedTasks++
		}
		summary.StatusCounts[t.Status]++
		summary.DepartmentCounts[t.Department]++
		if t.DelayReason != nil && *t.DelayReason != "" {
			summary.DelayReasons[*t.DelayReason]++
		}
	}

	summary.CompletionRate = CompletionRate(summary.CompletedTasks, summary.TotalTasks)
	return summary
}

// CompletionRate returns round(100 * done / total), or 0 when total is 0.
func CompletionRate(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
