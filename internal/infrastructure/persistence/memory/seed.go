package memory

import (
	"time"

	"github.com/rezkam/hostitask/internal/domain"
	"github.com/rezkam/hostitask/internal/ptr"
)

// SampleTasks returns the demo tasks the dashboard ships with.
// A fresh slice is built on every call.
func SampleTasks() []domain.Task {
	at := func(day, hour, minute int) time.Time {
		return time.Date(2024, time.January, day, hour, minute, 0, 0, time.UTC)
	}

	return []domain.Task{
		{
			ID:           "1",
			Description:  "Room 101 needs cleaning",
			Department:   domain.DepartmentHousekeeping,
			Urgency:      domain.UrgencyUrgent,
			Status:       domain.TaskStatusPending,
			GuestContact: "guest101@hotel.com",
			CreatedAt:    at(15, 10, 0),
		},
		{
			ID:            "2",
			Description:   "Kitchen equipment maintenance",
			Department:    domain.DepartmentMaintenance,
			Urgency:       domain.UrgencyStandard,
			Status:        domain.TaskStatusInProgress,
			GuestContact:  "+995555123456",
			CreatedAt:     at(15, 9, 30),
			AssignedTo:    ptr.To("John Smith"),
			EstimatedTime: ptr.To(120),
		},
		{
			ID:            "3",
			Description:   "Room service for Room 205",
			Department:    domain.DepartmentKitchen,
			Urgency:       domain.UrgencyUrgent,
			Status:        domain.TaskStatusDone,
			GuestContact:  "guest205@hotel.com",
			CreatedAt:     at(15, 8, 0),
			AssignedTo:    ptr.To("Maria Garcia"),
			EstimatedTime: ptr.To(30),
		},
		{
			ID:            "4",
			Description:   "Air conditioning repair Room 303",
			Department:    domain.DepartmentMaintenance,
			Urgency:       domain.UrgencyUrgent,
			Status:        domain.TaskStatusNotDone,
			GuestContact:  "+995555789012",
			CreatedAt:     at(14, 16, 0),
			DelayReason:   ptr.To("Lack of supplies"),
			AssignedTo:    ptr.To("Mike Johnson"),
			EstimatedTime: ptr.To(180),
		},
		{
			ID:            "5",
			Description:   "Extra towels for Room 150",
			Department:    domain.DepartmentHousekeeping,
			Urgency:       domain.UrgencyStandard,
			Status:        domain.TaskStatusDone,
			GuestContact:  "guest150@hotel.com",
			CreatedAt:     at(14, 14, 0),
			AssignedTo:    ptr.To("Sarah Wilson"),
			EstimatedTime: ptr.To(15),
		},
	}
}
