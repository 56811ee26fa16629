package domain

import (
	"time"

	"github.com/rezkam/hostitask/internal/ptr"
)

// Task is a unit of guest-service work tracked by the front desk.
//
// Description, Department, Urgency, GuestContact and CreatedAt are fixed at
// creation. Status, AssignedTo, EstimatedTime and DelayReason change only
// through lifecycle transitions.
type Task struct {
	ID          string
	Description string
	Department  Department
	Urgency     Urgency
	Status      TaskStatus

	// GuestContact is a phone number or e-mail address.
	GuestContact string

	// CreatedAt is always UTC. It is not required to follow insertion order.
	CreatedAt time.Time

	// Optional fields (nil = absent)
	DelayReason   *string
	AssignedTo    *string // Set together with EstimatedTime by a claim
	EstimatedTime *int    // Minutes
}

// IsUrgent reports whether the task carries the urgent flag.
func (t Task) IsUrgent() bool {
	return t.Urgency == UrgencyUrgent
}

// Clone returns a copy that shares no pointers with t.
func (t Task) Clone() Task {
	c := t
	c.DelayReason = ptr.Clone(t.DelayReason)
	c.AssignedTo = ptr.Clone(t.AssignedTo)
	c.EstimatedTime = ptr.Clone(t.EstimatedTime)
	return c
}

// NewTask is the creation payload for a task.
// ID, CreatedAt and the status-management fields are assigned by the store.
type NewTask struct {
	Description  string
	Department   Department
	Urgency      Urgency
	GuestContact string
}

// TaskPatch carries the fields a lifecycle transition changes.
// Nil fields are left untouched when the patch is applied.
type TaskPatch struct {
	Status        *TaskStatus
	AssignedTo    *string
	EstimatedTime *int
	DelayReason   *string
}

// Apply shallow-merges the patch into t and returns the result. t itself is not modified.
func (p TaskPatch) Apply(t Task) Task {
	out := t.Clone()
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.AssignedTo != nil {
		out.AssignedTo = ptr.Clone(p.AssignedTo)
	}
	if p.EstimatedTime != nil {
		out.EstimatedTime = ptr.Clone(p.EstimatedTime)
	}
	if p.DelayReason != nil {
		out.DelayReason = ptr.Clone(p.DelayReason)
	}
	return out
}
