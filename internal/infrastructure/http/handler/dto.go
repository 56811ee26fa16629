package handler

import (
	"cmp"
	"slices"
	"time"

	"github.com/rezkam/hostitask/internal/chat"
	"github.com/rezkam/hostitask/internal/domain"
	"github.com/rezkam/hostitask/internal/i18n"
)

// Requests

// CreateTaskRequest is the body of POST /v1/tasks.
type CreateTaskRequest struct {
	Description  string `json:"description" validate:"required,max=1000"`
	Department   string `json:"department" validate:"required,oneof=housekeeping kitchen maintenance"`
	Urgency      string `json:"urgency" validate:"required,oneof=urgent standard"`
	GuestContact string `json:"guest_contact" validate:"required,max=255"`
}

// ClaimTaskRequest is the body of POST /v1/tasks/{task_id}/claim.
// EstimatedTime is minutes as typed into the form, e.g. "30".
type ClaimTaskRequest struct {
	StaffName     string `json:"staff_name" validate:"required,max=100"`
	EstimatedTime string `json:"estimated_time" validate:"required,max=10"`
}

// MarkNotDoneRequest is the optional body of POST /v1/tasks/{task_id}/not-done.
type MarkNotDoneRequest struct {
	DelayReason string `json:"delay_reason" validate:"max=500"`
}

// SendMessageRequest is the body of POST /v1/chat/sessions/{session_id}/messages.
type SendMessageRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// Responses

// TaskDTO is the wire form of a task, with labels in the request language.
type TaskDTO struct {
	ID              string    `json:"id"`
	Description     string    `json:"description"`
	Department      string    `json:"department"`
	DepartmentLabel string    `json:"department_label"`
	Urgency         string    `json:"urgency"`
	UrgencyLabel    string    `json:"urgency_label"`
	Status          string    `json:"status"`
	StatusLabel     string    `json:"status_label"`
	GuestContact    string    `json:"guest_contact"`
	CreatedAt       time.Time `json:"created_at"`
	AssignedTo      *string   `json:"assigned_to,omitempty"`
	EstimatedTime   *int      `json:"estimated_time,omitempty"`
	DelayReason     *string   `json:"delay_reason,omitempty"`
}

// TaskResponse wraps a single task.
type TaskResponse struct {
	Task TaskDTO `json:"task"`
}

// ListTasksResponse is the derived task view.
type ListTasksResponse struct {
	Tasks      []TaskDTO `json:"tasks"`
	TotalCount int       `json:"total_count"`
}

// StatusStat is one row of the status breakdown.
type StatusStat struct {
	Status string  `json:"status"`
	Label  string  `json:"label"`
	Count  int     `json:"count"`
	Share  float64 `json:"share"`
}

// DepartmentStat is one row of the department breakdown.
// Scale is the count relative to the busiest department, in percent.
type DepartmentStat struct {
	Department string  `json:"department"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Scale      float64 `json:"scale"`
}

// DelayReasonStat counts not-done tasks sharing a delay reason.
type DelayReasonStat struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// AnalyticsResponse is the aggregate view of every task.
type AnalyticsResponse struct {
	TotalTasks     int               `json:"total_tasks"`
	UrgentTasks    int               `json:"urgent_tasks"`
	CompletedTasks int               `json:"completed_tasks"`
	CompletionRate int               `json:"completion_rate"`
	Statuses       []StatusStat      `json:"statuses"`
	Departments    []DepartmentStat  `json:"departments"`
	DelayReasons   []DelayReasonStat `json:"delay_reasons"`
}

// LabelsResponse is the label table for one language.
type LabelsResponse struct {
	Lang   string            `json:"lang"`
	Labels map[string]string `json:"labels"`
}

// MessageDTO is the wire form of a chat message.
type MessageDTO struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageResponse wraps a single chat message.
type MessageResponse struct {
	Message MessageDTO `json:"message"`
}

// ChatSessionResponse is the state of a chat session.
type ChatSessionResponse struct {
	SessionID string       `json:"session_id"`
	Lang      string       `json:"lang"`
	Open      bool         `json:"open"`
	Messages  []MessageDTO `json:"messages"`
}

// Domain → DTO mappers

// MapTaskToDTO converts domain.Task to TaskDTO.
func MapTaskToDTO(t domain.Task, lang i18n.Lang) TaskDTO {
	return TaskDTO{
		ID:              t.ID,
		Description:     t.Description,
		Department:      string(t.Department),
		DepartmentLabel: i18n.DepartmentLabel(lang, t.Department),
		Urgency:         string(t.Urgency),
		UrgencyLabel:    i18n.UrgencyLabel(lang, t.Urgency),
		Status:          string(t.Status),
		StatusLabel:     i18n.StatusLabel(lang, t.Status),
		GuestContact:    t.GuestContact,
		CreatedAt:       t.CreatedAt,
		AssignedTo:      t.AssignedTo,
		EstimatedTime:   t.EstimatedTime,
		DelayReason:     t.DelayReason,
	}
}

// MapTasksToDTO converts a task view, keeping its order.
func MapTasksToDTO(ts []domain.Task, lang i18n.Lang) []TaskDTO {
	out := make([]TaskDTO, len(ts))
	for i, t := range ts {
		out[i] = MapTaskToDTO(t, lang)
	}
	return out
}

// MapSummaryToDTO converts domain.Summary to AnalyticsResponse.
// Statuses and departments follow their canonical order; delay reasons are
// most frequent first, ties broken alphabetically.
func MapSummaryToDTO(s domain.Summary, lang i18n.Lang) AnalyticsResponse {
	shares := s.StatusShares()
	statuses := make([]StatusStat, 0, len(domain.TaskStatuses))
	for _, status := range domain.TaskStatuses {
		statuses = append(statuses, StatusStat{
			Status: string(status),
			Label:  i18n.StatusLabel(lang, status),
			Count:  s.StatusCounts[status],
			Share:  shares[status],
		})
	}

	scale := s.DepartmentScale()
	departments := make([]DepartmentStat, 0, len(domain.Departments))
	for _, d := range domain.Departments {
		departments = append(departments, DepartmentStat{
			Department: string(d),
			Label:      i18n.DepartmentLabel(lang, d),
			Count:      s.DepartmentCounts[d],
			Scale:      scale[d],
		})
	}

	reasons := make([]DelayReasonStat, 0, len(s.DelayReasons))
	for reason, count := range s.DelayReasons {
		reasons = append(reasons, DelayReasonStat{Reason: reason, Count: count})
	}
	slices.SortFunc(reasons, func(a, b DelayReasonStat) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Reason, b.Reason))
	})

	return AnalyticsResponse{
		TotalTasks:     s.TotalTasks,
		UrgentTasks:    s.UrgentTasks,
		CompletedTasks: s.CompletedTasks,
		CompletionRate: s.CompletionRate,
		Statuses:       statuses,
		Departments:    departments,
		DelayReasons:   reasons,
	}
}

// MapMessageToDTO converts chat.Message to MessageDTO.
func MapMessageToDTO(m chat.Message) MessageDTO {
	return MessageDTO{
		ID:        m.ID,
		Text:      m.Text,
		Sender:    string(m.Sender),
		Timestamp: m.Timestamp,
	}
}

// MapSessionToDTO converts a chat session to ChatSessionResponse.
func MapSessionToDTO(s *chat.Session) ChatSessionResponse {
	msgs := s.Messages()
	out := make([]MessageDTO, len(msgs))
	for i, m := range msgs {
		out[i] = MapMessageToDTO(m)
	}
	return ChatSessionResponse{
		SessionID: s.ID(),
		Lang:      string(s.Lang()),
		Open:      s.IsOpen(),
		Messages:  out,
	}
}
