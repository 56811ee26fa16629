package tasks_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/rezkam/hostitask/internal/application/tasks"
	"github.com/rezkam/hostitask/internal/domain"
	"github.com/rezkam/hostitask/internal/infrastructure/persistence/memory"
)

func newService(t *testing.T, opts ...memory.Option) (*tasks.Service, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	svc, err := tasks.NewService(memory.NewStore(opts...), tasks.WithMeterProvider(mp))
	require.NoError(t, err)
	return svc, reader
}

func roomCleaning() tasks.CreateTaskInput {
	return tasks.CreateTaskInput{
		Description:  "Room 101 needs cleaning",
		Department:   "housekeeping",
		Urgency:      "urgent",
		GuestContact: "guest101@hotel.com",
	}
}

// counterTotals sums each counter's data points, keyed by metric name and the attribute value given.
func counterTotals(t *testing.T, reader *sdkmetric.ManualReader, attr attribute.Key) map[string]map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			byAttr := make(map[string]int64)
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value(attr)
				byAttr[v.AsString()] += dp.Value
			}
			out[m.Name] = byAttr
		}
	}
	return out
}

func TestService_EndToEnd(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	a, err := svc.CreateTask(ctx, roomCleaning())
	require.NoError(t, err)

	view, err := svc.ListTasks(ctx, domain.ViewParams{})
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, a.ID, view[0].ID)
	assert.Equal(t, domain.TaskStatusPending, view[0].Status)

	claimed, err := svc.ClaimTask(ctx, a.ID, "John", 30)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusInProgress, claimed.Status)
	require.NotNil(t, claimed.AssignedTo)
	assert.Equal(t, "John", *claimed.AssignedTo)
	require.NotNil(t, claimed.EstimatedTime)
	assert.Equal(t, 30, *claimed.EstimatedTime)

	done, err := svc.MarkDone(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusDone, done.Status)
	assert.Equal(t, "John", *done.AssignedTo, "claim fields survive completion")

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalTasks)
	assert.Equal(t, 1, summary.CompletedTasks)
	assert.Equal(t, 100, summary.CompletionRate)
}

func TestService_CreateTask_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*tasks.CreateTaskInput)
		wantErr error
	}{
		{"blank description", func(in *tasks.CreateTaskInput) { in.Description = "   " }, domain.ErrDescriptionRequired},
		{"unknown department", func(in *tasks.CreateTaskInput) { in.Department = "spa" }, domain.ErrInvalidDepartment},
		{"unknown urgency", func(in *tasks.CreateTaskInput) { in.Urgency = "asap" }, domain.ErrInvalidUrgency},
		{"missing contact", func(in *tasks.CreateTaskInput) { in.GuestContact = "" }, domain.ErrGuestContactRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)
			ctx := context.Background()

			in := roomCleaning()
			tt.mutate(&in)

			_, err := svc.CreateTask(ctx, in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)

			view, err := svc.ListTasks(ctx, domain.ViewParams{})
			require.NoError(t, err)
			assert.Empty(t, view, "nothing is stored on validation failure")
		})
	}
}

func TestService_CreateTask_TrimsAndNormalizes(t *testing.T) {
	svc, _ := newService(t)

	task, err := svc.CreateTask(context.Background(), tasks.CreateTaskInput{
		Description:  "  Fix AC in 204 ",
		Department:   "Maintenance",
		Urgency:      "STANDARD",
		GuestContact: " +1-555-0100 ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Fix AC in 204", task.Description)
	assert.Equal(t, domain.DepartmentMaintenance, task.Department)
	assert.Equal(t, domain.UrgencyStandard, task.Urgency)
	assert.Equal(t, "+1-555-0100", task.GuestContact)
}

func TestService_ClaimTask_Validation(t *testing.T) {
	tests := []struct {
		name      string
		staffName string
		minutes   int
		wantErr   error
	}{
		{"empty name", "", 30, domain.ErrStaffNameRequired},
		{"blank name", "  ", 30, domain.ErrStaffNameRequired},
		{"zero minutes", "John", 0, domain.ErrInvalidEstimatedTime},
		{"negative minutes", "John", -5, domain.ErrInvalidEstimatedTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)
			ctx := context.Background()

			task, err := svc.CreateTask(ctx, roomCleaning())
			require.NoError(t, err)

			_, err = svc.ClaimTask(ctx, task.ID, tt.staffName, tt.minutes)
			assert.ErrorIs(t, err, tt.wantErr)

			got, err := svc.GetTask(ctx, task.ID)
			require.NoError(t, err)
			assert.Equal(t, task, got, "rejected claim leaves the task untouched")
		})
	}
}

func TestService_TransitionGuards(t *testing.T) {
	type step func(svc *tasks.Service, id string) (domain.Task, error)

	claim := func(svc *tasks.Service, id string) (domain.Task, error) {
		return svc.ClaimTask(context.Background(), id, "Maria", 15)
	}
	done := func(svc *tasks.Service, id string) (domain.Task, error) {
		return svc.MarkDone(context.Background(), id)
	}
	notDone := func(svc *tasks.Service, id string) (domain.Task, error) {
		return svc.MarkNotDone(context.Background(), id, "")
	}

	tests := []struct {
		name    string
		setup   []step
		attempt step
	}{
		{"pending to done", nil, done},
		{"pending to not-done", nil, notDone},
		{"claim twice", []step{claim}, claim},
		{"done to claim", []step{claim, done}, claim},
		{"done to not-done", []step{claim, done}, notDone},
		{"done twice", []step{claim, done}, done},
		{"not-done to done", []step{claim, notDone}, done},
		{"not-done to claim", []step{claim, notDone}, claim},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)
			ctx := context.Background()

			task, err := svc.CreateTask(ctx, roomCleaning())
			require.NoError(t, err)
			for _, s := range tt.setup {
				_, err := s(svc, task.ID)
				require.NoError(t, err)
			}

			before, err := svc.GetTask(ctx, task.ID)
			require.NoError(t, err)

			_, err = tt.attempt(svc, task.ID)
			require.ErrorIs(t, err, domain.ErrInvalidTransition)

			var terr *domain.TransitionError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, task.ID, terr.TaskID)
			assert.Equal(t, before.Status, terr.From)

			after, err := svc.GetTask(ctx, task.ID)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestService_MarkNotDone_DelayReason(t *testing.T) {
	tests := []struct {
		name   string
		reason string
		want   *string
	}{
		{"no reason", "", nil},
		{"blank reason", "   ", nil},
		{"with reason", " Lack of supplies ", ptrTo("Lack of supplies")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)
			ctx := context.Background()

			task, err := svc.CreateTask(ctx, roomCleaning())
			require.NoError(t, err)
			_, err = svc.ClaimTask(ctx, task.ID, "Maria", 15)
			require.NoError(t, err)

			got, err := svc.MarkNotDone(ctx, task.ID, tt.reason)
			require.NoError(t, err)
			assert.Equal(t, domain.TaskStatusNotDone, got.Status)
			assert.Equal(t, tt.want, got.DelayReason)

			summary, err := svc.Summary(ctx)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, summary.DelayReasons)
			} else {
				assert.Equal(t, map[string]int{*tt.want: 1}, summary.DelayReasons)
			}
		})
	}
}

func TestService_UnknownTask(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	for _, id := range []string{"", "99"} {
		_, err := svc.GetTask(ctx, id)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
		_, err = svc.ClaimTask(ctx, id, "John", 30)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
		_, err = svc.MarkDone(ctx, id)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
		_, err = svc.MarkNotDone(ctx, id, "")
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	}
}

func TestService_ListTasks_SeededView(t *testing.T) {
	svc, _ := newService(t, memory.WithSeed(memory.SampleTasks()))
	ctx := context.Background()

	housekeeping := domain.DepartmentHousekeeping
	view, err := svc.ListTasks(ctx, domain.ViewParams{Department: &housekeeping, SortKey: domain.SortByDate})
	require.NoError(t, err)

	ids := make([]string, len(view))
	for i, task := range view {
		ids[i] = task.ID
	}
	assert.Equal(t, []string{"1", "5"}, ids)
}

func TestService_ConcurrentClaimsOnlyOneWins(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, roomCleaning())
	require.NoError(t, err)

	const claimers = 10
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for range claimers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.ClaimTask(ctx, task.ID, "John", 30); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestService_Metrics(t *testing.T) {
	svc, reader := newService(t)
	ctx := context.Background()

	a, err := svc.CreateTask(ctx, roomCleaning())
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, tasks.CreateTaskInput{
		Description: "Breakfast for 305", Department: "kitchen", Urgency: "standard", GuestContact: "305",
	})
	require.NoError(t, err)

	_, err = svc.MarkDone(ctx, a.ID)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = svc.ClaimTask(ctx, a.ID, "", 30)
	require.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.ClaimTask(ctx, "404", "John", 30)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	_, err = svc.ClaimTask(ctx, a.ID, "John", 30)
	require.NoError(t, err)
	_, err = svc.MarkDone(ctx, a.ID)
	require.NoError(t, err)

	byDepartment := counterTotals(t, reader, "department")
	assert.Equal(t, map[string]int64{"housekeeping": 1, "kitchen": 1}, byDepartment["hostitask.tasks.created"])

	byStatus := counterTotals(t, reader, "status")
	assert.Equal(t, map[string]int64{"in-progress": 1, "done": 1}, byStatus["hostitask.tasks.transitions"])

	byReason := counterTotals(t, reader, "reason")
	assert.Equal(t, map[string]int64{"invalid_transition": 1, "validation": 1, "not_found": 1},
		byReason["hostitask.tasks.transitions.rejected"])
}

type failingRepo struct {
	tasks.Repository
	err error
}

func (f failingRepo) ListTasks(context.Context) ([]domain.Task, error) {
	return nil, f.err
}

func TestService_WrapsRepositoryErrors(t *testing.T) {
	boom := errors.New("store unavailable")
	svc, err := tasks.NewService(failingRepo{err: boom})
	require.NoError(t, err)

	_, err = svc.ListTasks(context.Background(), domain.ViewParams{})
	assert.ErrorIs(t, err, boom)

	_, err = svc.Summary(context.Background())
	assert.ErrorIs(t, err, boom)
}

func ptrTo[T any](v T) *T {
	return &v
}
