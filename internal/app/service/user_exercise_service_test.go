package service

import (
	"context"
	"testing"

	"fitastic/internal/common"
	"fitastic/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserExerciseOwnerScoping(t *testing.T) {
	svc := NewUserExerciseService(repository.NewMemoryUserExerciseRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice-id", UserExercisePayload{Name: "Morning Run", Target: "cardio"})
	require.NoError(t, err)
	assert.Equal(t, "alice-id", created.UserID)

	// The owner sees the record; everybody else gets not found.
	got, err := svc.Get(ctx, "alice-id", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Get(ctx, "bob-id", created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = svc.Update(ctx, "bob-id", created.ID, UserExercisePayload{Name: "Evening Run"})
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = svc.Delete(ctx, "bob-id", created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	list, err := svc.GetAll(ctx, "alice-id")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = svc.GetAll(ctx, "bob-id")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUserExerciseUpdateAndDelete(t *testing.T) {
	svc := NewUserExerciseService(repository.NewMemoryUserExerciseRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice-id", UserExercisePayload{Name: "Morning Run"})
	require.NoError(t, err)

	sessionID := "session-1"
	updated, err := svc.Update(ctx, "alice-id", created.ID, UserExercisePayload{
		Name:      "Evening Run",
		SessionID: &sessionID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Evening Run", updated.Name)
	require.NotNil(t, updated.SessionID)
	assert.Equal(t, "session-1", *updated.SessionID)

	require.NoError(t, svc.Delete(ctx, "alice-id", created.ID))
	_, err = svc.Get(ctx, "alice-id", created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
