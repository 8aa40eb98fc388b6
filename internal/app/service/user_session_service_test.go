package service

import (
	"context"
	"testing"
	"time"

	"fitastic/internal/common"
	"fitastic/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSessionCreateDefaultsDate(t *testing.T) {
	svc := NewUserSessionService(repository.NewMemoryUserSessionRepository())
	ctx := context.Background()

	before := time.Now()
	created, err := svc.Create(ctx, "alice-id", UserSessionPayload{Name: "Leg day workout"})
	require.NoError(t, err)
	assert.False(t, created.SessionDate.Before(before))

	when := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	withDate, err := svc.Create(ctx, "alice-id", UserSessionPayload{Name: "Morning cardio", SessionDate: &when})
	require.NoError(t, err)
	assert.True(t, withDate.SessionDate.Equal(when))
}

func TestUserSessionOwnerScoping(t *testing.T) {
	svc := NewUserSessionService(repository.NewMemoryUserSessionRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice-id", UserSessionPayload{Name: "Leg day workout"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "bob-id", created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	updated, err := svc.Update(ctx, "alice-id", created.ID, UserSessionPayload{Name: "Push day workout"})
	require.NoError(t, err)
	assert.Equal(t, "Push day workout", updated.Name)

	require.NoError(t, svc.Delete(ctx, "alice-id", created.ID))
	_, err = svc.Get(ctx, "alice-id", created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
