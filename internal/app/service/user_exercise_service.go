package service

import (
	"context"

	"fitastic/internal/common"
	"fitastic/internal/domain/model"
	"fitastic/internal/domain/repository"

	"github.com/google/uuid"
)

// UserExerciseService is owner-scoped CRUD: every operation runs on behalf
// of the authenticated user and records belonging to somebody else are
// reported as not found.
type UserExerciseService struct {
	repo repository.UserExerciseRepository
}

func NewUserExerciseService(repo repository.UserExerciseRepository) *UserExerciseService {
	return &UserExerciseService{repo: repo}
}

type UserExercisePayload struct {
	Name         string  `json:"name" validate:"required,min=3,max=50"`
	Target       string  `json:"target"`
	Description  string  `json:"description"`
	Instructions string  `json:"instructions"`
	Image        string  `json:"image"`
	Advices      string  `json:"advices"`
	Video        string  `json:"video"`
	SessionID    *string `json:"session_id,omitempty"`
}

func (s *UserExerciseService) GetAll(ctx context.Context, userID string) ([]model.UserExercise, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *UserExerciseService) Get(ctx context.Context, userID, id string) (*model.UserExercise, error) {
	exercise, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exercise.UserID != userID {
		return nil, common.ErrNotFound
	}
	return exercise, nil
}

func (s *UserExerciseService) Create(ctx context.Context, userID string, payload UserExercisePayload) (*model.UserExercise, error) {
	exercise := &model.UserExercise{
		ID:           uuid.NewString(),
		Name:         payload.Name,
		Target:       payload.Target,
		Description:  payload.Description,
		Instructions: payload.Instructions,
		Image:        payload.Image,
		Advices:      payload.Advices,
		Video:        payload.Video,
		UserID:       userID,
		SessionID:    payload.SessionID,
	}
	if err := s.repo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *UserExerciseService) Update(ctx context.Context, userID, id string, payload UserExercisePayload) (*model.UserExercise, error) {
	exercise, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	exercise.Name = payload.Name
	exercise.Target = payload.Target
	exercise.Description = payload.Description
	exercise.Instructions = payload.Instructions
	exercise.Image = payload.Image
	exercise.Advices = payload.Advices
	exercise.Video = payload.Video
	exercise.SessionID = payload.SessionID

	if err := s.repo.Update(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *UserExerciseService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
