package chat

import (
	"container/list"
	"context"
	"log/slog"
	"sync"

	"github.com/rezkam/hostitask/internal/domain"
	"github.com/rezkam/hostitask/internal/i18n"
)

// Hub owns the live chat sessions keyed by session id.
//
// A session leaves the hub when its ended conversation resets, or when it is
// the oldest one and the hub is full.
type Hub struct {
	opts options

	mu       sync.RWMutex
	sessions map[string]*list.Element // value is *Session
	order    *list.List               // oldest first
}

// NewHub creates an empty hub. opts apply to every session it opens.
func NewHub(opts ...Option) *Hub {
	h := &Hub{
		opts:     applyOptions(opts),
		sessions: make(map[string]*list.Element),
		order:    list.New(),
	}
	h.opts.onClosed = h.remove
	return h
}

// Open starts a new session in lang.
func (h *Hub) Open(ctx context.Context, lang i18n.Lang) *Session {
	s := newSession(lang, h.opts)

	h.mu.Lock()
	var evicted *Session
	if h.order.Len() >= h.opts.maxSessions {
		oldest := h.order.Front()
		evicted = h.order.Remove(oldest).(*Session)
		delete(h.sessions, evicted.ID())
	}
	h.sessions[s.ID()] = h.order.PushBack(s)
	h.mu.Unlock()

	if evicted != nil {
		slog.WarnContext(ctx, "chat session evicted", "session_id", evicted.ID(), "max_sessions", h.opts.maxSessions)
	}
	slog.InfoContext(ctx, "chat session opened", "session_id", s.ID(), "lang", lang)
	return s
}

// Get returns the session with the given id.
func (h *Hub) Get(id string) (*Session, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	e, ok := h.sessions[id]
	if !ok {
		return nil, domain.ErrChatSessionNotFound
	}
	return e.Value.(*Session), nil
}

// Send posts a user message to a session.
func (h *Hub) Send(ctx context.Context, id, text string) (Message, error) {
	s, err := h.Get(id)
	if err != nil {
		return Message{}, err
	}
	msg, err := s.Send(text)
	if err != nil {
		return Message{}, err
	}
	slog.DebugContext(ctx, "chat message received", "session_id", id, "message_id", msg.ID)
	return msg, nil
}

// End ends a session. It stays readable until the close delay has passed.
func (h *Hub) End(ctx context.Context, id string) (Message, error) {
	s, err := h.Get(id)
	if err != nil {
		return Message{}, err
	}
	msg := s.End()
	slog.InfoContext(ctx, "chat session ended", "session_id", id)
	return msg, nil
}

// Len returns the number of sessions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if e, ok := h.sessions[id]; ok {
		h.order.Remove(e)
		delete(h.sessions, id)
	}
}
