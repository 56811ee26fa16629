package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/rezkam/hostitask/internal/infrastructure/http/middleware"
	"github.com/rezkam/hostitask/internal/infrastructure/http/response"
)

// OpenSession handles POST /v1/chat/sessions.
// The session speaks the request language.
func (h *ChatHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	s := h.hub.Open(r.Context(), mw.LangFromContext(r.Context()))
	response.Created(w, MapSessionToDTO(s))
}

// ListMessages handles GET /v1/chat/sessions/{session_id}/messages.
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	s, err := h.hub.Get(chi.URLParam(r, "session_id"))
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, MapSessionToDTO(s))
}

// SendMessage handles POST /v1/chat/sessions/{session_id}/messages.
// The manager reply is appended later, so the response is 202.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if !decodeAndValidate(w, r, &req, mw.LangFromContext(r.Context()), false) {
		return
	}

	msg, err := h.hub.Send(r.Context(), chi.URLParam(r, "session_id"), req.Text)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.Accepted(w, MessageResponse{Message: MapMessageToDTO(msg)})
}

// EndSession handles POST /v1/chat/sessions/{session_id}/end.
func (h *ChatHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	msg, err := h.hub.End(r.Context(), chi.URLParam(r, "session_id"))
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, MessageResponse{Message: MapMessageToDTO(msg)})
}
