// Package tasks holds the task lifecycle engine: creation, claiming and
// completion of tasks, plus the list and analytics views derived from them.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/rezkam/hostitask/internal/analytics"
	"github.com/rezkam/hostitask/internal/domain"
	"github.com/rezkam/hostitask/internal/query"
)

const instrumentationName = "github.com/rezkam/hostitask/internal/application/tasks"

// Rejection reasons recorded on the rejected-transitions counter.
const (
	rejectReasonInvalidTransition = "invalid_transition"
	rejectReasonNotFound          = "not_found"
	rejectReasonValidation        = "validation"
)

// CreateTaskInput is the raw creation request as entered at the front desk.
type CreateTaskInput struct {
	Description  string
	Department   string
	Urgency      string
	GuestContact string
}

// Service provides business logic for task management.
// It orchestrates operations using the Repository interface.
type Service struct {
	repo   Repository
	tracer trace.Tracer

	created     metric.Int64Counter
	transitions metric.Int64Counter
	rejected    metric.Int64Counter
}

// Option is a functional option for configuring Service.
type Option func(*options)

type options struct {
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

// WithMeterProvider sets the meter provider. Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = mp
	}
}

// WithTracerProvider sets the tracer provider. Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

// NewService creates a new task service.
func NewService(repo Repository, opts ...Option) (*Service, error) {
	o := options{
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	meter := o.meterProvider.Meter(instrumentationName)
	created, err := meter.Int64Counter("hostitask.tasks.created",
		metric.WithDescription("Number of tasks created"),
		metric.WithUnit("{task}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks.created counter: %w", err)
	}
	transitions, err := meter.Int64Counter("hostitask.tasks.transitions",
		metric.WithDescription("Number of applied lifecycle transitions"),
		metric.WithUnit("{transition}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks.transitions counter: %w", err)
	}
	rejected, err := meter.Int64Counter("hostitask.tasks.transitions.rejected",
		metric.WithDescription("Number of lifecycle requests that were refused"),
		metric.WithUnit("{transition}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks.transitions.rejected counter: %w", err)
	}

	return &Service{
		repo:        repo,
		tracer:      o.tracerProvider.Tracer(instrumentationName),
		created:     created,
		transitions: transitions,
		rejected:    rejected,
	}, nil
}

// CreateTask validates the input and appends a new pending task.
// Nothing is stored when any field is invalid.
func (s *Service) CreateTask(ctx context.Context, in CreateTaskInput) (domain.Task, error) {
	ctx, span := s.tracer.Start(ctx, "tasks.CreateTask")
	defer span.End()

	description, err := domain.NewDescription(in.Description)
	if err != nil {
		return domain.Task{}, err
	}
	department, err := domain.NewDepartment(in.Department)
	if err != nil {
		return domain.Task{}, err
	}
	urgency, err := domain.NewUrgency(in.Urgency)
	if err != nil {
		return domain.Task{}, err
	}
	contact, err := domain.NewGuestContact(in.GuestContact)
	if err != nil {
		return domain.Task{}, err
	}

	task, err := s.repo.CreateTask(ctx, domain.NewTask{
		Description:  description.String(),
		Department:   department,
		Urgency:      urgency,
		GuestContact: contact.String(),
	})
	if err != nil {
		return domain.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	s.created.Add(ctx, 1, metric.WithAttributes(
		attribute.String("department", string(task.Department)),
		attribute.String("urgency", string(task.Urgency)),
	))
	slog.InfoContext(ctx, "task created",
		"task_id", task.ID,
		"department", task.Department,
		"urgency", task.Urgency)

	return task, nil
}

// GetTask retrieves a task by ID.
func (s *Service) GetTask(ctx context.Context, id string) (domain.Task, error) {
	if id == "" {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return s.repo.FindTaskByID(ctx, id)
}

// ListTasks returns the filtered, urgent-first view of the current tasks.
func (s *Service) ListTasks(ctx context.Context, params domain.ViewParams) ([]domain.Task, error) {
	ctx, span := s.tracer.Start(ctx, "tasks.ListTasks")
	defer span.End()

	all, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return query.Derive(all, params), nil
}

// Summary aggregates statistics over every task.
func (s *Service) Summary(ctx context.Context) (domain.Summary, error) {
	ctx, span := s.tracer.Start(ctx, "tasks.Summary")
	defer span.End()

	all, err := s.repo.ListTasks(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("failed to list tasks: %w", err)
	}
	return analytics.Summarize(all), nil
}

// ClaimTask assigns a pending task to a staff member and moves it to in-progress.
func (s *Service) ClaimTask(ctx context.Context, id, staffName string, estimatedMinutes int) (domain.Task, error) {
	claim, err := domain.NewClaim(staffName, estimatedMinutes)
	if err != nil {
		s.reject(ctx, id, domain.TaskStatusInProgress, err)
		return domain.Task{}, err
	}
	return s.transition(ctx, id, domain.TaskStatusInProgress, func(t domain.Task) (domain.TaskPatch, error) {
		return domain.ClaimPatch(t, claim)
	})
}

// MarkDone completes an in-progress task.
func (s *Service) MarkDone(ctx context.Context, id string) (domain.Task, error) {
	return s.transition(ctx, id, domain.TaskStatusDone, domain.DonePatch)
}

// MarkNotDone closes an in-progress task as not done.
// reason is optional; a blank reason records no delay reason.
func (s *Service) MarkNotDone(ctx context.Context, id, reason string) (domain.Task, error) {
	return s.transition(ctx, id, domain.TaskStatusNotDone, func(t domain.Task) (domain.TaskPatch, error) {
		return domain.NotDonePatch(t, reason)
	})
}

// transition reads the task and writes the patch built from it inside one
// Atomic call, so two racing requests cannot both leave the same status.
func (s *Service) transition(ctx context.Context, id string, to domain.TaskStatus, build func(domain.Task) (domain.TaskPatch, error)) (domain.Task, error) {
	ctx, span := s.tracer.Start(ctx, "tasks.Transition", trace.WithAttributes(
		attribute.String("task.id", id),
		attribute.String("task.status", string(to)),
	))
	defer span.End()

	if id == "" {
		s.reject(ctx, id, to, domain.ErrTaskNotFound)
		return domain.Task{}, domain.ErrTaskNotFound
	}

	var updated domain.Task
	err := s.repo.Atomic(ctx, func(repo Repository) error {
		current, err := repo.FindTaskByID(ctx, id)
		if err != nil {
			return err
		}
		patch, err := build(current)
		if err != nil {
			return err
		}
		task, found, err := repo.UpdateTask(ctx, id, patch)
		if err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		if !found {
			return domain.ErrTaskNotFound
		}
		updated = task
		return nil
	})
	if err != nil {
		s.reject(ctx, id, to, err)
		return domain.Task{}, err
	}

	s.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(to))))
	slog.InfoContext(ctx, "task transitioned", "task_id", id, "status", to)

	return updated, nil
}

func (s *Service) reject(ctx context.Context, id string, to domain.TaskStatus, err error) {
	var reason string
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		reason = rejectReasonInvalidTransition
	case errors.Is(err, domain.ErrTaskNotFound):
		reason = rejectReasonNotFound
	case errors.Is(err, domain.ErrValidation):
		reason = rejectReasonValidation
	default:
		// Infrastructure failures are logged by the caller, not counted as rejections.
		return
	}

	s.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	slog.WarnContext(ctx, "task transition rejected",
		"task_id", id,
		"status", to,
		"reason", reason,
		"error", err)
}
