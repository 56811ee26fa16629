package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rezkam/hostitask/internal/application/tasks"
	"github.com/rezkam/hostitask/internal/chat"
	mw "github.com/rezkam/hostitask/internal/infrastructure/http/middleware"
)

// TaskHandler adapts HTTP requests to the task service.
type TaskHandler struct {
	taskService *tasks.Service
}

// NewTaskHandler creates a new task HTTP handler.
func NewTaskHandler(taskService *tasks.Service) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ChatHandler adapts HTTP requests to the chat hub.
type ChatHandler struct {
	hub *chat.Hub
}

// NewChatHandler creates a new chat HTTP handler.
func NewChatHandler(hub *chat.Hub) *ChatHandler {
	return &ChatHandler{hub: hub}
}

// NewRouter creates the API handler with language resolution and every route mounted.
// Production code and tests both use it so they see identical behavior.
func NewRouter(taskService *tasks.Service, hub *chat.Hub) http.Handler {
	th := NewTaskHandler(taskService)
	ch := NewChatHandler(hub)

	r := chi.NewRouter()
	r.Use(mw.Language)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", th.CreateTask)
			r.Get("/", th.ListTasks)
			r.Route("/{task_id}", func(r chi.Router) {
				r.Get("/", th.GetTask)
				r.Post("/claim", th.ClaimTask)
				r.Post("/done", th.MarkDone)
				r.Post("/not-done", th.MarkNotDone)
			})
		})
		r.Get("/analytics", th.Analytics)
		r.Get("/labels", Labels)

		r.Route("/chat/sessions", func(r chi.Router) {
			r.Post("/", ch.OpenSession)
			r.Route("/{session_id}", func(r chi.Router) {
				r.Get("/messages", ch.ListMessages)
				r.Post("/messages", ch.SendMessage)
				r.Post("/end", ch.EndSession)
			})
		})
	})

	return r
}
