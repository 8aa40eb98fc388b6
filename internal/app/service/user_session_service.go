package service

import (
	"context"
	"time"

	"fitastic/internal/common"
	"fitastic/internal/domain/model"
	"fitastic/internal/domain/repository"

	"github.com/google/uuid"
)

type UserSessionService struct {
	repo repository.UserSessionRepository
}

func NewUserSessionService(repo repository.UserSessionRepository) *UserSessionService {
	return &UserSessionService{repo: repo}
}

type UserSessionPayload struct {
	Name        string     `json:"name" validate:"required,min=5,max=30"`
	SessionDate *time.Time `json:"session_date,omitempty"`
}

func (s *UserSessionService) GetAll(ctx context.Context, userID string) ([]model.UserSession, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *UserSessionService) Get(ctx context.Context, userID, id string) (*model.UserSession, error) {
	session, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, common.ErrNotFound
	}
	return session, nil
}

func (s *UserSessionService) Create(ctx context.Context, userID string, payload UserSessionPayload) (*model.UserSession, error) {
	sessionDate := time.Now()
	if payload.SessionDate != nil {
		sessionDate = *payload.SessionDate
	}

	session := &model.UserSession{
		ID:          uuid.NewString(),
		Name:        payload.Name,
		UserID:      userID,
		SessionDate: sessionDate,
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *UserSessionService) Update(ctx context.Context, userID, id string, payload UserSessionPayload) (*model.UserSession, error) {
	session, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	session.Name = payload.Name
	if payload.SessionDate != nil {
		session.SessionDate = *payload.SessionDate
	}

	if err := s.repo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *UserSessionService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
