package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantName string
	}{
		{name: "creates user with valid name", input: "Alice", wantName: "Alice"},
		{name: "trims surrounding whitespace", input: "  Bob  ", wantName: "Bob"},
		{name: "rejects empty name", input: "", wantErr: ErrValidation},
		{name: "rejects whitespace-only name", input: "   ", wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, _ := newTestServices()
			u, err := users.Create(context.Background(), CreateUserInput{Name: tt.input})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, u.ID)
			assert.Equal(t, tt.wantName, u.Name)

			got, _, err := users.Get(context.Background(), u.ID)
			require.NoError(t, err)
			assert.Equal(t, u.ID, got.ID)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestUserService_List(t *testing.T) {
	users, _ := newTestServices()
	ctx := context.Background()
	for _, name := range []string{"Alice", "Bob", "alicia"} {
		_, err := users.Create(ctx, CreateUserInput{Name: name})
		require.NoError(t, err)
	}

	t.Run("case-insensitive substring keeps store order", func(t *testing.T) {
		got, err := users.List(ctx, "ali")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Alice", got[0].Name)
		assert.Equal(t, "alicia", got[1].Name)
	})

	t.Run("empty filter matches all", func(t *testing.T) {
		got, err := users.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("no match yields empty slice not error", func(t *testing.T) {
		got, err := users.List(ctx, "zzz")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("store failure surfaces as store error", func(t *testing.T) {
		broken := &UserService{Users: failingUserRepo{}}
		_, err := broken.List(ctx, "")
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})
}

func TestUserService_Get_RecentTaskCap(t *testing.T) {
	users, tasks := newTestServices()
	ctx := context.Background()

	u, err := users.Create(ctx, CreateUserInput{Name: "Alice"})
	require.NoError(t, err)

	names := []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9", "t10"}
	for _, n := range names {
		_, err := tasks.Create(ctx, CreateTaskInput{TaskName: n, UserID: u.ID})
		require.NoError(t, err)
	}

	_, recent, err := users.Get(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, recent, 4)
	for i, task := range recent {
		assert.Equal(t, names[i], task.TaskName)
	}
}

func TestUserService_Update(t *testing.T) {
	users, _ := newTestServices()
	ctx := context.Background()

	u, err := users.Create(ctx, CreateUserInput{Name: "Alice"})
	require.NoError(t, err)

	t.Run("overwrites the name", func(t *testing.T) {
		updated, err := users.Update(ctx, u.ID, UpdateUserInput{Name: "Alicia"})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", updated.Name)

		got, _, err := users.Get(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alicia", got.Name)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := users.Update(ctx, "00000000-0000-0000-0000-000000000000", UpdateUserInput{Name: "X"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := users.Update(ctx, u.ID, UpdateUserInput{Name: " "})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestUserService_DeleteGuard(t *testing.T) {
	users, tasks := newTestServices()
	ctx := context.Background()

	alice, err := users.Create(ctx, CreateUserInput{Name: "Alice"})
	require.NoError(t, err)
	task, err := tasks.Create(ctx, CreateTaskInput{TaskName: "Write report", UserID: alice.ID})
	require.NoError(t, err)

	t.Run("owner resolves on the task", func(t *testing.T) {
		got, err := tasks.Get(ctx, task.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Owner)
		assert.Equal(t, alice.ID, got.Owner.ID)
		assert.Equal(t, "Alice", got.Owner.Name)
	})

	t.Run("delete blocked while a task references the user", func(t *testing.T) {
		err := users.Delete(ctx, alice.ID)
		assert.ErrorIs(t, err, ErrUserHasTasks)

		// user survives the blocked delete
		got, _, err := users.Get(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, alice.ID, got.ID)
	})

	t.Run("CanDelete reports the blocking count", func(t *testing.T) {
		allowed, blocking, err := users.CanDelete(ctx, alice.ID)
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.EqualValues(t, 1, blocking)
	})

	t.Run("delete succeeds once the task is gone", func(t *testing.T) {
		require.NoError(t, tasks.Delete(ctx, task.ID))

		allowed, blocking, err := users.CanDelete(ctx, alice.ID)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Zero(t, blocking)

		require.NoError(t, users.Delete(ctx, alice.ID))
		_, _, err = users.Get(ctx, alice.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("deleting a missing user", func(t *testing.T) {
		err := users.Delete(ctx, alice.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserService_DeleteGuard_FailSafe(t *testing.T) {
	// A store failure while checking for dependent tasks must block the
	// deletion, not allow it.
	svc := &UserService{Users: failingUserRepo{}, Tasks: failingTaskRepo{}}

	allowed, _, err := svc.CanDelete(context.Background(), "any")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.False(t, allowed)

	err = svc.Delete(context.Background(), "any")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestUserService_ZeroTaskUserAlwaysDeletable(t *testing.T) {
	users, _ := newTestServices()
	ctx := context.Background()

	u, err := users.Create(ctx, CreateUserInput{Name: "Bob"})
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, u.ID))

	_, _, err = users.Get(ctx, u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
