// Package compliance holds the behavioural test suite every tasks.Repository must pass.
package compliance

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/hostitask/internal/application/tasks"
	"github.com/rezkam/hostitask/internal/domain"
)

func draft(desc string, urgency domain.Urgency) domain.NewTask {
	return domain.NewTask{
		Description:  desc,
		Department:   domain.DepartmentHousekeeping,
		Urgency:      urgency,
		GuestContact: "guest@hotel.com",
	}
}

// RunRepositoryComplianceTest runs a standard set of tests against a Repository implementation.
// setup returns a fresh, empty repository and a teardown func.
func RunRepositoryComplianceTest(t *testing.T, setup func() (tasks.Repository, func())) {
	t.Run("CreateAssignsPendingDefaults", func(t *testing.T) {
		repo, teardown := setup()
		defer teardown()
		ctx := context.Background()

		created, err := repo.CreateTask(ctx, draft("Room 101 needs cleaning", domain.UrgencyUrgent))
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Room 101 needs cleaning", created.Description)
		assert.Equal(t, domain.TaskStatusPending, created.Status)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Nil(t, created.AssignedTo)
		assert.Nil(t, created.EstimatedTime)
		assert.Nil(t, created.DelayReason)

		fetched, err := repo.FindTaskByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, fetched)
	})

	t.Run("IDsAreUniqueAndIncreasing", func(t *testing.T) {
		repo, teardown := setup()
		defer teardown()
		ctx := context.Background()

		seen := make(map[string]bool)
		prev := 0
		for i := range 50 {
			created, err := repo.CreateTask(ctx, draft("task", domain.UrgencyStandard))
			require.NoError(t, err)

			require.False(t, seen[created.ID], "duplicate id %s", created.ID)
			seen[created.ID] = true

			n, err := strconv.Atoi(created.ID)
			require.NoError(t, err, "id %q should be numeric", created.ID)
			require.Greater(t, n, prev, "creation %d", i)
			prev = n
		}
	})

	t.Run("CreateAppendsToEnd", func(t *testing.T) {
		repo, teardown := setup()
		defer teardown()
		ctx := context.Background()

		var want []string
		for _, desc := range []string{"first", "second", "third"} {
			created, err := repo.CreateTask(ctx, draft(desc, domain.UrgencyStandard))
			require.NoError(t, err)
			want = append(want, created.ID)

			all, err := repo.ListTasks(ctx)
			require.NoError(t, err)
			require.Len(t, all, len(want))
			for i, tk := range all {
				assert.Equal(t, want[i], tk.ID)
			}
		}
	})

	t.Run("UpdateTouchesOnlyTarget", func(t *testing.T) {
		repo, teardown := setup()
		defer teardown()
		ctx := context.Background()

		a, err := repo.CreateTask(ctx, draft("a", domain.UrgencyUrgent))
		require.NoError(t, err)
		b, err := repo.CreateTask(ctx, draft("b", domain.UrgencyStandard))
		require.NoError(t, err)

		inProgress := domain.TaskStatusInProgress
		name := "John"
		minutes := 30
		_, found, err := repo.UpdateTask(ctx, a.ID, domain.TaskPatch{Status: &inProgress, AssignedTo: &name, EstimatedTime: &minutes})
		require.NoError(t, err)
		require.True(t, found)

		before, err := repo.FindTaskByID(ctx, a.ID)
		require.NoError(t, err)

		done := domain.TaskStatusDone
		updated, found, err := repo.UpdateTask(ctx, a.ID, domain.TaskPatch{Status: &done})
		require.NoError(t, err)
		require.True(t, found)

		expected := before
		expected.Status = domain.TaskStatusDone
		assert.Equal(t, expected, updated)

		other, err := repo.FindTaskByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b, other)
	})

	t.Run("UpdateUnknownIDIsNoop", func(t *testing.T) {
		repo, teardown := setup()
		defer teardown()
		ctx := context.Background()

		created, err := repo.CreateTask(ctx, draft("a", domain.UrgencyUrgent))
		require.NoError(t, err)

		done := domain.TaskStatusDone
		_, found, err := repo.UpdateTask(ctx, "does-not-exist", domain.TaskPatch{Status: &done})
		require.NoError(t, err)
		assert.False(t, found)

		all, err := repo.ListTasks(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Task{created}, all)
	})

	t.Run("FindUnknownID", func(t *testing.T) {
		repo, teardown := setup()
		defer teardown()

		_, err := repo.FindTaskByID(context.Background(), "42")
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("SnapshotsAreDetached", func(t *testing.T) {
		repo, teardown := setup()
		defer teardown()
		ctx := context.Background()

		created, err := repo.CreateTask(ctx, draft("a", domain.UrgencyUrgent))
		require.NoError(t, err)

		all, err := repo.ListTasks(ctx)
		require.NoError(t, err)
		all[0].Status = domain.TaskStatusDone

		fetched, err := repo.FindTaskByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusPending, fetched.Status)
	})

	t.Run("AtomicPropagatesError", func(t *testing.T) {
		repo, teardown := setup()
		defer teardown()
		ctx := context.Background()

		created, err := repo.CreateTask(ctx, draft("a", domain.UrgencyUrgent))
		require.NoError(t, err)

		sentinel := errors.New("stop")
		err = repo.Atomic(ctx, func(tx tasks.Repository) error {
			fetched, err := tx.FindTaskByID(ctx, created.ID)
			if err != nil {
				return err
			}
			assert.Equal(t, created.ID, fetched.ID)
			return sentinel
		})
		assert.ErrorIs(t, err, sentinel)
	})
}
