package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rezkam/hostitask/internal/application/tasks"
	"github.com/rezkam/hostitask/internal/domain"
	mw "github.com/rezkam/hostitask/internal/infrastructure/http/middleware"
	"github.com/rezkam/hostitask/internal/infrastructure/http/response"
)

// CreateTask handles POST /v1/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	lang := mw.LangFromContext(r.Context())

	var req CreateTaskRequest
	if !decodeAndValidate(w, r, &req, lang, false) {
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), tasks.CreateTaskInput{
		Description:  req.Description,
		Department:   req.Department,
		Urgency:      req.Urgency,
		GuestContact: req.GuestContact,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to create task via HTTP",
			"department", req.Department,
			"urgency", req.Urgency,
			"error", err)
		response.FromDomainError(w, r, err)
		return
	}

	response.Created(w, TaskResponse{Task: MapTaskToDTO(task, lang)})
}

// ListTasks handles GET /v1/tasks?search=&department=&status=&sort=.
// "all" or an empty value disables a filter.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	lang := mw.LangFromContext(r.Context())
	q := r.URL.Query()

	department, err := domain.ParseDepartmentFilter(q.Get("department"))
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	status, err := domain.ParseStatusFilter(q.Get("status"))
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	sortKey, err := domain.NewSortKey(q.Get("sort"))
	if err != nil {
		slog.WarnContext(r.Context(), "invalid sort key for list tasks", "sort", q.Get("sort"))
		response.FromDomainError(w, r, err)
		return
	}

	view, err := h.taskService.ListTasks(r.Context(), domain.ViewParams{
		Search:     q.Get("search"),
		Department: department,
		Status:     status,
		SortKey:    sortKey,
	})
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	response.OK(w, ListTasksResponse{
		Tasks:      MapTasksToDTO(view, lang),
		TotalCount: len(view),
	})
}

// GetTask handles GET /v1/tasks/{task_id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.taskService.GetTask(r.Context(), chi.URLParam(r, "task_id"))
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, TaskResponse{Task: MapTaskToDTO(task, mw.LangFromContext(r.Context()))})
}

// ClaimTask handles POST /v1/tasks/{task_id}/claim.
func (h *TaskHandler) ClaimTask(w http.ResponseWriter, r *http.Request) {
	lang := mw.LangFromContext(r.Context())
	taskID := chi.URLParam(r, "task_id")

	var req ClaimTaskRequest
	if !decodeAndValidate(w, r, &req, lang, false) {
		return
	}

	minutes, err := domain.ParseEstimatedMinutes(req.EstimatedTime)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	task, err := h.taskService.ClaimTask(r.Context(), taskID, req.StaffName, minutes)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "task claimed via HTTP", "task_id", taskID, "assigned_to", req.StaffName)
	response.OK(w, TaskResponse{Task: MapTaskToDTO(task, lang)})
}

// MarkDone handles POST /v1/tasks/{task_id}/done.
func (h *TaskHandler) MarkDone(w http.ResponseWriter, r *http.Request) {
	task, err := h.taskService.MarkDone(r.Context(), chi.URLParam(r, "task_id"))
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, TaskResponse{Task: MapTaskToDTO(task, mw.LangFromContext(r.Context()))})
}

// MarkNotDone handles POST /v1/tasks/{task_id}/not-done. The body is optional.
func (h *TaskHandler) MarkNotDone(w http.ResponseWriter, r *http.Request) {
	lang := mw.LangFromContext(r.Context())

	var req MarkNotDoneRequest
	if !decodeAndValidate(w, r, &req, lang, true) {
		return
	}

	task, err := h.taskService.MarkNotDone(r.Context(), chi.URLParam(r, "task_id"), req.DelayReason)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, TaskResponse{Task: MapTaskToDTO(task, lang)})
}

// Analytics handles GET /v1/analytics.
func (h *TaskHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.taskService.Summary(r.Context())
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, MapSummaryToDTO(summary, mw.LangFromContext(r.Context())))
}
