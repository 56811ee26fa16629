// Package chat implements the front desk's quick chat with the duty manager.
// Manager replies are canned and arrive after a fixed delay.
package chat

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rezkam/hostitask/internal/domain"
	"github.com/rezkam/hostitask/internal/i18n"
)

// Default delays before the manager reply and before an ended chat resets.
const (
	DefaultReplyDelay = 2 * time.Second
	DefaultCloseDelay = 2 * time.Second
)

// DefaultMaxSessions bounds how many sessions a Hub keeps at once.
const DefaultMaxSessions = 1000

// Sender identifies who wrote a message.
type Sender string

const (
	SenderUser    Sender = "user"
	SenderManager Sender = "manager"
)

// Message is a single chat line.
type Message struct {
	ID        string
	Text      string
	Sender    Sender
	Timestamp time.Time
}

// Option is a functional option for configuring sessions.
type Option func(*options)

type options struct {
	replyDelay  time.Duration
	closeDelay  time.Duration
	now         func() time.Time
	maxSessions int

	// onClosed runs after an ended session has reset.
	onClosed func(id string)
}

func defaultOptions() options {
	return options{
		replyDelay:  DefaultReplyDelay,
		closeDelay:  DefaultCloseDelay,
		now:         time.Now,
		maxSessions: DefaultMaxSessions,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithReplyDelay sets how long the manager takes to answer.
func WithReplyDelay(d time.Duration) Option {
	return func(o *options) {
		o.replyDelay = d
	}
}

// WithCloseDelay sets how long an ended chat stays visible before it resets.
func WithCloseDelay(d time.Duration) Option {
	return func(o *options) {
		o.closeDelay = d
	}
}

// WithMaxSessions caps the sessions a Hub holds. When the cap is reached the
// oldest session is dropped to make room. Values below 1 keep the default.
// Sessions ignore it.
func WithMaxSessions(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSessions = n
		}
	}
}

// WithClock sets the time source for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// Session is one conversation. It is safe for concurrent use.
//
// Scheduled replies and resets are never cancelled: each one appends to,
// or replaces, whatever message list exists when it fires.
type Session struct {
	id   string
	lang i18n.Lang
	opts options

	mu       sync.Mutex
	messages []Message
	open     bool
}

// NewSession starts an open session holding a single manager greeting.
func NewSession(lang i18n.Lang, opts ...Option) *Session {
	return newSession(lang, applyOptions(opts))
}

func newSession(lang i18n.Lang, o options) *Session {
	s := &Session{
		id:   newID(),
		lang: lang,
		opts: o,
		open: true,
	}
	s.messages = []Message{s.managerMessage(i18n.KeyChatGreeting)}
	return s
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Lang returns the language replies are written in.
func (s *Session) Lang() i18n.Lang {
	return s.lang
}

// Messages returns a snapshot of the conversation.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// IsOpen reports whether the chat window is open.
// It turns false once an ended chat has reset.
func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Send appends the trimmed user message and schedules the manager reply.
// Sending to a closed session reopens it.
func (s *Session) Send(text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, domain.ErrEmptyMessage
	}

	msg := Message{
		ID:        newID(),
		Text:      text,
		Sender:    SenderUser,
		Timestamp: s.opts.now(),
	}

	s.mu.Lock()
	s.open = true
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	time.AfterFunc(s.opts.replyDelay, func() {
		s.appendManager(i18n.KeyChatReply)
	})
	return msg, nil
}

// End appends the closing message and, after the close delay, closes the
// session and resets it to a fresh greeting. A session opened through a Hub
// is then removed from it.
func (s *Session) End() Message {
	msg := s.appendManager(i18n.KeyChatEnded)

	time.AfterFunc(s.opts.closeDelay, func() {
		greeting := s.managerMessage(i18n.KeyChatGreeting)
		s.mu.Lock()
		s.open = false
		s.messages = []Message{greeting}
		s.mu.Unlock()

		if s.opts.onClosed != nil {
			s.opts.onClosed(s.id)
		}
	})
	return msg
}

func (s *Session) appendManager(key string) Message {
	msg := s.managerMessage(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return msg
}

func (s *Session) managerMessage(key string) Message {
	return Message{
		ID:        newID(),
		Text:      i18n.Label(s.lang, key),
		Sender:    SenderManager,
		Timestamp: s.opts.now(),
	}
}

// newID returns a time-ordered UUIDv7, or a random UUID if the clock source fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
