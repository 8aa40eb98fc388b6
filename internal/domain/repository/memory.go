package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"fitastic/internal/common"
	"fitastic/internal/domain/model"
)

// In-memory repository implementations backing the test suites. They honor
// the same contracts as the Postgres implementations, including soft-revoke
// semantics for tokens.

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User // by id
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: map[string]model.User{}}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return fmt.Errorf("user with given username already exists: %w", common.ErrConflict)
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		found := u
		return &found, nil
	}
	return nil, common.ErrNotFound
}

type MemoryTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]model.Token // by id
}

func NewMemoryTokenRepository() *MemoryTokenRepository {
	return &MemoryTokenRepository{tokens: map[string]model.Token{}}
}

// Count reports how many token records exist, revoked ones included.
func (r *MemoryTokenRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens)
}

func (r *MemoryTokenRepository) Create(_ context.Context, token *model.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token.ID] = *token
	return nil
}

func (r *MemoryTokenRepository) FindByAccessToken(_ context.Context, raw string) (*model.Token, error) {
	return r.findBy(func(t model.Token) bool { return t.AccessToken == raw })
}

func (r *MemoryTokenRepository) FindByRefreshToken(_ context.Context, raw string) (*model.Token, error) {
	return r.findBy(func(t model.Token) bool { return t.RefreshToken == raw })
}

func (r *MemoryTokenRepository) findBy(match func(model.Token) bool) (*model.Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tokens {
		if match(t) {
			found := t
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryTokenRepository) IsAccessTokenLive(ctx context.Context, raw string) (bool, error) {
	t, err := r.FindByAccessToken(ctx, raw)
	if err != nil {
		return false, nil
	}
	return !t.LoggedOut, nil
}

func (r *MemoryTokenRepository) IsRefreshTokenLive(ctx context.Context, raw string) (bool, error) {
	t, err := r.FindByRefreshToken(ctx, raw)
	if err != nil {
		return false, nil
	}
	return !t.LoggedOut, nil
}

func (r *MemoryTokenRepository) RevokeAllByUser(_ context.Context, userID string) ([]model.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var revoked []model.Token
	for id, t := range r.tokens {
		if t.UserID == userID && !t.LoggedOut {
			t.LoggedOut = true
			r.tokens[id] = t
			revoked = append(revoked, t)
		}
	}
	return revoked, nil
}

func (r *MemoryTokenRepository) Revoke(_ context.Context, token *model.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[token.ID]
	if !ok {
		return common.ErrNotFound
	}
	t.LoggedOut = true
	r.tokens[token.ID] = t
	return nil
}

type MemoryDefaultExerciseRepository struct {
	mu        sync.RWMutex
	exercises map[string]model.DefaultExercise
}

func NewMemoryDefaultExerciseRepository() *MemoryDefaultExerciseRepository {
	return &MemoryDefaultExerciseRepository{exercises: map[string]model.DefaultExercise{}}
}

func (r *MemoryDefaultExerciseRepository) List(_ context.Context) ([]model.DefaultExercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.DefaultExercise, 0, len(r.exercises))
	for _, e := range r.exercises {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryDefaultExerciseRepository) FindByID(_ context.Context, id string) (*model.DefaultExercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.exercises[id]; ok {
		found := e
		return &found, nil
	}
	return nil, common.ErrNotFound
}

func (r *MemoryDefaultExerciseRepository) FindBySlug(_ context.Context, slug string) (*model.DefaultExercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.exercises {
		if e.Slug == slug {
			found := e
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryDefaultExerciseRepository) Create(_ context.Context, e *model.DefaultExercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.exercises {
		if existing.Slug == e.Slug {
			return fmt.Errorf("exercise with this slug already exists: %w", common.ErrConflict)
		}
	}
	r.exercises[e.ID] = *e
	return nil
}

func (r *MemoryDefaultExerciseRepository) Update(_ context.Context, e *model.DefaultExercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.exercises[e.ID]; !ok {
		return common.ErrNotFound
	}
	r.exercises[e.ID] = *e
	return nil
}

func (r *MemoryDefaultExerciseRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.exercises[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.exercises, id)
	return nil
}

type MemoryUserExerciseRepository struct {
	mu        sync.RWMutex
	exercises map[string]model.UserExercise
}

func NewMemoryUserExerciseRepository() *MemoryUserExerciseRepository {
	return &MemoryUserExerciseRepository{exercises: map[string]model.UserExercise{}}
}

func (r *MemoryUserExerciseRepository) ListByUser(_ context.Context, userID string) ([]model.UserExercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.UserExercise
	for _, e := range r.exercises {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryUserExerciseRepository) FindByID(_ context.Context, id string) (*model.UserExercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.exercises[id]; ok {
		found := e
		return &found, nil
	}
	return nil, common.ErrNotFound
}

func (r *MemoryUserExerciseRepository) Create(_ context.Context, e *model.UserExercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exercises[e.ID] = *e
	return nil
}

func (r *MemoryUserExerciseRepository) Update(_ context.Context, e *model.UserExercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.exercises[e.ID]; !ok {
		return common.ErrNotFound
	}
	r.exercises[e.ID] = *e
	return nil
}

func (r *MemoryUserExerciseRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.exercises[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.exercises, id)
	return nil
}

type MemoryUserSessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]model.UserSession
}

func NewMemoryUserSessionRepository() *MemoryUserSessionRepository {
	return &MemoryUserSessionRepository{sessions: map[string]model.UserSession{}}
}

func (r *MemoryUserSessionRepository) ListByUser(_ context.Context, userID string) ([]model.UserSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.UserSession
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SessionDate.After(out[j].SessionDate) })
	return out, nil
}

func (r *MemoryUserSessionRepository) FindByID(_ context.Context, id string) (*model.UserSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.sessions[id]; ok {
		found := s
		return &found, nil
	}
	return nil, common.ErrNotFound
}

func (r *MemoryUserSessionRepository) Create(_ context.Context, s *model.UserSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = *s
	return nil
}

func (r *MemoryUserSessionRepository) Update(_ context.Context, s *model.UserSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.ID]; !ok {
		return common.ErrNotFound
	}
	r.sessions[s.ID] = *s
	return nil
}

func (r *MemoryUserSessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}
