// Package memory implements the task store in process memory.
//
// The store keeps tasks in a slice (insertion order) plus an id index.
// A single RWMutex serializes writers, so concurrent HTTP handlers see one
// logical writer and read-after-write consistency.
package memory

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/rezkam/hostitask/internal/application/tasks"
	"github.com/rezkam/hostitask/internal/domain"
)

// Store is the in-memory Task Store.
type Store struct {
	mu    sync.RWMutex
	state *state
}

// Option is a functional option for configuring Store.
type Option func(*Store)

// WithClock sets the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.state.now = now
	}
}

// WithSeed preloads tasks in the given order.
// The id counter continues after the largest numeric seeded id, so new ids never collide.
// Tasks with an empty or already seeded id are skipped; the first one wins.
func WithSeed(seed []domain.Task) Option {
	return func(s *Store) {
		for _, t := range seed {
			if t.ID == "" {
				slog.Warn("skipping seed task without id", "description", t.Description)
				continue
			}
			if _, dup := s.state.index[t.ID]; dup {
				slog.Warn("skipping duplicate seed task", "task_id", t.ID)
				continue
			}
			s.state.insert(t.Clone())
			if n, err := strconv.Atoi(t.ID); err == nil && n > s.state.counter {
				s.state.counter = n
			}
		}
		s.state.counter = max(s.state.counter, len(s.state.tasks))
	}
}

// NewStore creates an empty store with the given options applied.
func NewStore(opts ...Option) *Store {
	s := &Store{
		state: &state{
			index: make(map[string]int),
			now:   time.Now,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTask implements tasks.Repository.
func (s *Store) CreateTask(ctx context.Context, draft domain.NewTask) (domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return domain.Task{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.create(draft), nil
}

// FindTaskByID implements tasks.Repository.
func (s *Store) FindTaskByID(ctx context.Context, id string) (domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return domain.Task{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.find(id)
}

// UpdateTask implements tasks.Repository.
func (s *Store) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (domain.Task, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Task{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, found := s.state.update(id, patch)
	return t, found, nil
}

// ListTasks implements tasks.Repository.
func (s *Store) ListTasks(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.list(), nil
}

// Atomic implements tasks.Repository. fn runs while the write lock is held;
// it must only use the repo it is given.
func (s *Store) Atomic(ctx context.Context, fn func(repo tasks.Repository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&lockedStore{state: s.state})
}

// lockedStore is the view handed to Atomic callbacks. The caller already holds the lock.
type lockedStore struct {
	state *state
}

func (l *lockedStore) CreateTask(ctx context.Context, draft domain.NewTask) (domain.Task, error) {
	return l.state.create(draft), nil
}

func (l *lockedStore) FindTaskByID(ctx context.Context, id string) (domain.Task, error) {
	return l.state.find(id)
}

func (l *lockedStore) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (domain.Task, bool, error) {
	t, found := l.state.update(id, patch)
	return t, found, nil
}

func (l *lockedStore) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return l.state.list(), nil
}

func (l *lockedStore) Atomic(ctx context.Context, fn func(repo tasks.Repository) error) error {
	return fn(l)
}

// state holds the collection. All methods expect the caller to hold Store.mu.
type state struct {
	tasks   []domain.Task
	index   map[string]int // id -> position in tasks
	counter int
	now     func() time.Time
}

func (st *state) insert(t domain.Task) {
	st.index[t.ID] = len(st.tasks)
	st.tasks = append(st.tasks, t)
}

func (st *state) create(draft domain.NewTask) domain.Task {
	st.counter++
	t := domain.Task{
		ID:           strconv.Itoa(st.counter),
		Description:  draft.Description,
		Department:   draft.Department,
		Urgency:      draft.Urgency,
		Status:       domain.TaskStatusPending,
		GuestContact: draft.GuestContact,
		CreatedAt:    st.now().UTC(),
	}
	st.insert(t)
	return t.Clone()
}

func (st *state) find(id string) (domain.Task, error) {
	i, ok := st.index[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return st.tasks[i].Clone(), nil
}

func (st *state) update(id string, patch domain.TaskPatch) (domain.Task, bool) {
	i, ok := st.index[id]
	if !ok {
		return domain.Task{}, false
	}
	st.tasks[i] = patch.Apply(st.tasks[i])
	return st.tasks[i].Clone(), true
}

func (st *state) list() []domain.Task {
	out := make([]domain.Task, len(st.tasks))
	for i, t := range st.tasks {
		out[i] = t.Clone()
	}
	return out
}

var (
	_ tasks.Repository = (*Store)(nil)
	_ tasks.Repository = (*lockedStore)(nil)
)
