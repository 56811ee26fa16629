package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Description is a validated, trimmed, non-empty task description.
type Description struct {
	value string
}

// NewDescription creates a new Description, validating the input.
func NewDescription(s string) (Description, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Description{}, ErrDescriptionRequired
	}
	return Description{value: s}, nil
}

// String returns the description value.
func (d Description) String() string {
	return d.value
}

// GuestContact is a validated guest phone number or e-mail address.
// Only presence is enforced; the front desk records whatever the guest gives.
type GuestContact struct {
	value string
}

// NewGuestContact creates a new GuestContact, validating the input.
func NewGuestContact(s string) (GuestContact, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return GuestContact{}, ErrGuestContactRequired
	}
	return GuestContact{value: s}, nil
}

// String returns the contact value.
func (c GuestContact) String() string {
	return c.value
}

// StaffName is the trimmed name of the staff member claiming a task.
type StaffName struct {
	value string
}

// NewStaffName creates a new StaffName, validating the input.
func NewStaffName(s string) (StaffName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StaffName{}, ErrStaffNameRequired
	}
	return StaffName{value: s}, nil
}

// String returns the staff name value.
func (n StaffName) String() string {
	return n.value
}

// NewEstimatedMinutes validates an estimated completion time in minutes.
func NewEstimatedMinutes(minutes int) (int, error) {
	if minutes <= 0 {
		return 0, ErrInvalidEstimatedTime
	}
	return minutes, nil
}

// ParseEstimatedMinutes parses free-text minutes as typed into the claim form.
// Only a plain decimal integer greater than zero is accepted; "30m" or "1.5" are rejected.
func ParseEstimatedMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidEstimatedTime
	}
	minutes, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidEstimatedTime, s)
	}
	return NewEstimatedMinutes(minutes)
}

// NewDepartment validates and creates a Department.
func NewDepartment(s string) (Department, error) {
	department := Department(strings.ToLower(strings.TrimSpace(s)))

	switch department {
	case DepartmentHousekeeping, DepartmentKitchen, DepartmentMaintenance:
		return department, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidDepartment, s)
	}
}

// NewUrgency validates and creates an Urgency.
func NewUrgency(s string) (Urgency, error) {
	urgency := Urgency(strings.ToLower(strings.TrimSpace(s)))

	switch urgency {
	case UrgencyUrgent, UrgencyStandard:
		return urgency, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidUrgency, s)
	}
}

// NewTaskStatus validates and creates a TaskStatus.
func NewTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(strings.ToLower(strings.TrimSpace(s)))

	switch status {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone, TaskStatusNotDone:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidTaskStatus, s)
	}
}

// NewSortKey validates and creates a SortKey.
// Returns DefaultSortKey for empty input.
func NewSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultSortKey, nil
	}

	key := SortKey(s)
	switch key {
	case SortByUrgency, SortByStatus, SortByDate:
		return key, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidSortKey, s)
	}
}

// ParseDepartmentFilter turns a department filter value into an optional Department.
// Empty input and the "all" sentinel yield nil (no filter).
func ParseDepartmentFilter(s string) (*Department, error) {
	if isFilterAll(s) {
		return nil, nil
	}
	department, err := NewDepartment(s)
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// ParseStatusFilter turns a status filter value into an optional TaskStatus.
// Empty input and the "all" sentinel yield nil (no filter).
func ParseStatusFilter(s string) (*TaskStatus, error) {
	if isFilterAll(s) {
		return nil, nil
	}
	status, err := NewTaskStatus(s)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func isFilterAll(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, FilterAll)
}
