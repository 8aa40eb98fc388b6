package service

import (
	"context"
	"errors"

	"fitastic/internal/common"
	"fitastic/internal/domain/model"
	"fitastic/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// DefaultExerciseService manages the curated exercise catalog. Reads are
// open to every authenticated user, mutations are admin-only (enforced at
// the router).
type DefaultExerciseService struct {
	repo repository.DefaultExerciseRepository
}

func NewDefaultExerciseService(repo repository.DefaultExerciseRepository) *DefaultExerciseService {
	return &DefaultExerciseService{repo: repo}
}

type DefaultExercisePayload struct {
	Name         string   `json:"name" validate:"required,min=3,max=50"`
	Target       string   `json:"target"`
	Description  []string `json:"description"`
	Instructions []string `json:"instructions"`
	Images       []string `json:"images"`
	Advices      []string `json:"advices"`
	Video        string   `json:"video"`
}

func (s *DefaultExerciseService) GetAll(ctx context.Context) ([]model.DefaultExercise, error) {
	return s.repo.List(ctx)
}

// Get resolves an exercise by id, falling back to the slug so catalog URLs
// stay readable.
func (s *DefaultExerciseService) Get(ctx context.Context, idOrSlug string) (*model.DefaultExercise, error) {
	exercise, err := s.repo.FindByID(ctx, idOrSlug)
	if err == nil {
		return exercise, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	return s.repo.FindBySlug(ctx, idOrSlug)
}

func (s *DefaultExerciseService) Create(ctx context.Context, payload DefaultExercisePayload) (*model.DefaultExercise, error) {
	exercise := &model.DefaultExercise{
		ID:           uuid.NewString(),
		Name:         payload.Name,
		Slug:         slug.Make(payload.Name),
		Target:       payload.Target,
		Description:  payload.Description,
		Instructions: payload.Instructions,
		Images:       payload.Images,
		Advices:      payload.Advices,
		Video:        payload.Video,
	}
	if err := s.repo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *DefaultExerciseService) Update(ctx context.Context, id string, payload DefaultExercisePayload) (*model.DefaultExercise, error) {
	exercise, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exercise.Name = payload.Name
	exercise.Slug = slug.Make(payload.Name)
	exercise.Target = payload.Target
	exercise.Description = payload.Description
	exercise.Instructions = payload.Instructions
	exercise.Images = payload.Images
	exercise.Advices = payload.Advices
	exercise.Video = payload.Video

	if err := s.repo.Update(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *DefaultExerciseService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
