package domain

// TaskStatus represents the current state of a task.
// Value object - immutable string enum.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusNotDone    TaskStatus = "not-done"
)

// TaskStatuses lists every status in workflow order.
var TaskStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusInProgress,
	TaskStatusDone,
	TaskStatusNotDone,
}

// Department is the functional team responsible for a task.
// Value object - immutable string enum.
type Department string

const (
	DepartmentHousekeeping Department = "housekeeping"
	DepartmentKitchen      Department = "kitchen"
	DepartmentMaintenance  Department = "maintenance"
)

// Departments lists every department in display order.
var Departments = []Department{
	DepartmentHousekeeping,
	DepartmentKitchen,
	DepartmentMaintenance,
}

// Urgency is the binary priority flag of a task.
// Value object - immutable string enum.
type Urgency string

const (
	UrgencyUrgent   Urgency = "urgent"
	UrgencyStandard Urgency = "standard"
)

// SortKey selects the secondary ordering applied after urgent-first.
type SortKey string

const (
	SortByUrgency SortKey = "urgency"
	SortByStatus  SortKey = "status"
	SortByDate    SortKey = "date"
)

// DefaultSortKey is used when no sort key is requested.
const DefaultSortKey = SortByUrgency

// FilterAll is the sentinel filter value meaning "no filter".
const FilterAll = "all"
