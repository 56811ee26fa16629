package domain

import (
	"slices"
	"strings"

	"github.com/rezkam/hostitask/internal/ptr"
)

// allowedTransitions is the task state machine.
// done and not-done are terminal; nothing leads back to pending.
var allowedTransitions = map[TaskStatus][]TaskStatus{
	TaskStatusPending:    {TaskStatusInProgress},
	TaskStatusInProgress: {TaskStatusDone, TaskStatusNotDone},
}

// CanTransition reports whether a task may move from one status to another.
func CanTransition(from, to TaskStatus) bool {
	return slices.Contains(allowedTransitions[from], to)
}

// IsTerminal reports whether no further transition is possible from s.
func (s TaskStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// Claim is a validated request from a staff member to take a pending task.
type Claim struct {
	StaffName        StaffName
	EstimatedMinutes int
}

// NewClaim validates the staff name and estimated minutes of a claim.
func NewClaim(staffName string, estimatedMinutes int) (Claim, error) {
	name, err := NewStaffName(staffName)
	if err != nil {
		return Claim{}, err
	}
	minutes, err := NewEstimatedMinutes(estimatedMinutes)
	if err != nil {
		return Claim{}, err
	}
	return Claim{StaffName: name, EstimatedMinutes: minutes}, nil
}

// ClaimPatch returns the patch that moves a pending task to in-progress
// and assigns it. Assignee and estimate are always set together.
func ClaimPatch(t Task, c Claim) (TaskPatch, error) {
	if err := checkTransition(t, TaskStatusInProgress); err != nil {
		return TaskPatch{}, err
	}
	return TaskPatch{
		Status:        ptr.To(TaskStatusInProgress),
		AssignedTo:    ptr.To(c.StaffName.String()),
		EstimatedTime: ptr.To(c.EstimatedMinutes),
	}, nil
}

// DonePatch returns the patch that marks an in-progress task done.
func DonePatch(t Task) (TaskPatch, error) {
	if err := checkTransition(t, TaskStatusDone); err != nil {
		return TaskPatch{}, err
	}
	return TaskPatch{Status: ptr.To(TaskStatusDone)}, nil
}

// NotDonePatch returns the patch that marks an in-progress task not done.
// A blank reason leaves DelayReason absent.
func NotDonePatch(t Task, reason string) (TaskPatch, error) {
	if err := checkTransition(t, TaskStatusNotDone); err != nil {
		return TaskPatch{}, err
	}
	patch := TaskPatch{Status: ptr.To(TaskStatusNotDone)}
	if reason = strings.TrimSpace(reason); reason != "" {
		patch.DelayReason = &reason
	}
	return patch, nil
}

func checkTransition(t Task, to TaskStatus) error {
	if !CanTransition(t.Status, to) {
		return &TransitionError{TaskID: t.ID, From: t.Status, To: to}
	}
	return nil
}
