package tasks

import (
	"context"

	"github.com/rezkam/hostitask/internal/domain"
)

// Repository defines the Task Store operations the lifecycle engine relies on.
// Implementations keep tasks in insertion order and never delete them.
type Repository interface {
	// CreateTask appends a new pending task to the end of the collection.
	// The store assigns ID (previous counter + 1) and CreatedAt, and leaves
	// AssignedTo, EstimatedTime and DelayReason absent.
	CreateTask(ctx context.Context, draft domain.NewTask) (domain.Task, error)

	// FindTaskByID retrieves a single task.
	// Returns domain.ErrTaskNotFound if no task has the id.
	FindTaskByID(ctx context.Context, id string) (domain.Task, error)

	// UpdateTask merges the non-nil fields of patch into the task with the given id.
	// Returns found=false and changes nothing when the id is unknown; that case is not an error.
	UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (task domain.Task, found bool, err error)

	// ListTasks returns a snapshot of every task in insertion order.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// Atomic runs fn with exclusive access to the store.
	// Reads and writes made through the repo passed to fn happen as one unit.
	Atomic(ctx context.Context, fn func(repo Repository) error) error
}
