package service

import (
	"context"
	"testing"

	"fitastic/internal/common"
	"fitastic/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultExerciseCreateAndGetBySlug(t *testing.T) {
	svc := NewDefaultExerciseService(repository.NewMemoryDefaultExerciseRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, DefaultExercisePayload{
		Name:         "Barbell Bench Press",
		Target:       "chest",
		Instructions: []string{"lie down", "press"},
	})
	require.NoError(t, err)
	assert.Equal(t, "barbell-bench-press", created.Slug)

	byID, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	bySlug, err := svc.Get(ctx, "barbell-bench-press")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	_, err = svc.Get(ctx, "no-such-exercise")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDefaultExerciseDuplicateSlug(t *testing.T) {
	svc := NewDefaultExerciseService(repository.NewMemoryDefaultExerciseRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, DefaultExercisePayload{Name: "Deadlift"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, DefaultExercisePayload{Name: "Deadlift"})
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestDefaultExerciseUpdateRewritesSlug(t *testing.T) {
	svc := NewDefaultExerciseService(repository.NewMemoryDefaultExerciseRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, DefaultExercisePayload{Name: "Squat"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, DefaultExercisePayload{Name: "Front Squat"})
	require.NoError(t, err)
	assert.Equal(t, "front-squat", updated.Slug)

	_, err = svc.Update(ctx, "missing-id", DefaultExercisePayload{Name: "Front Squat"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDefaultExerciseDelete(t *testing.T) {
	svc := NewDefaultExerciseService(repository.NewMemoryDefaultExerciseRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, DefaultExercisePayload{Name: "Pull Up"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	list, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
