package domain

// ViewParams contains parameters for deriving the task list view.
//
// Common use cases:
//   - "Everything for housekeeping": Department=housekeeping
//   - "Open work, oldest first": Status=pending, SortKey=date
//   - "Find room 101": Search="101"
type ViewParams struct {
	// Optional filters (nil = "all", no filter applied)
	Search     string      // Case-insensitive substring of the description; empty matches all
	Department *Department // Filter by department
	Status     *TaskStatus // Filter by status

	// Secondary ordering after urgent-first (empty = DefaultSortKey)
	SortKey SortKey
}

// Summary holds aggregate statistics over the whole task collection.
type Summary struct {
	TotalTasks     int
	UrgentTasks    int
	CompletedTasks int

	// CompletionRate is round(100 * done / total), 0 for an empty collection.
	CompletionRate int

	// Zero-filled for every known status and department.
	StatusCounts     map[TaskStatus]int
	DepartmentCounts map[Department]int

	// DelayReasons counts tasks per distinct delay reason. Tasks without one are excluded.
	DelayReasons map[string]int
}

// StatusShares returns the percentage of tasks in each status.
// Every status maps to 0 when there are no tasks.
func (s Summary) StatusShares() map[TaskStatus]float64 {
	shares := make(map[TaskStatus]float64, len(TaskStatuses))
	total := 0
	for _, status := range TaskStatuses {
		total += s.StatusCounts[status]
	}
	for _, status := range TaskStatuses {
		if total > 0 {
			shares[status] = float64(s.StatusCounts[status]) / float64(total) * 100
		} else {
			shares[status] = 0
		}
	}
	return shares
}

// DepartmentScale returns each department's count as a percentage of the busiest department.
// Every department maps to 0 when all counts are zero.
func (s Summary) DepartmentScale() map[Department]float64 {
	scale := make(map[Department]float64, len(Departments))
	busiest := 0
	for _, department := range Departments {
		busiest = max(busiest, s.DepartmentCounts[department])
	}
	for _, department := range Departments {
		if busiest > 0 {
			scale[department] = float64(s.DepartmentCounts[department]) / float64(busiest) * 100
		} else {
			scale[department] = 0
		}
	}
	return scale
}
