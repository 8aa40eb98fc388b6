package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fitastic/internal/common"
	"fitastic/internal/domain/model"
)

type UserExerciseRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.UserExercise, error)
	FindByID(ctx context.Context, id string) (*model.UserExercise, error)
	Create(ctx context.Context, exercise *model.UserExercise) error
	Update(ctx context.Context, exercise *model.UserExercise) error
	Delete(ctx context.Context, id string) error
}

type pgUserExerciseRepository struct {
	db *sql.DB
}

func NewPgUserExerciseRepository(db *sql.DB) UserExerciseRepository {
	return &pgUserExerciseRepository{db: db}
}

const userExerciseColumns = `id, name, target, description, instructions, image, advices, video, user_id, session_id, created_at, updated_at`

func (r *pgUserExerciseRepository) ListByUser(ctx context.Context, userID string) ([]model.UserExercise, error) {
	query := `SELECT ` + userExerciseColumns + ` FROM user_exercises WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgUserExerciseRepository.ListByUser: %w", err)
	}
	defer rows.Close()

	var exercises []model.UserExercise
	for rows.Next() {
		var e model.UserExercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Target, &e.Description, &e.Instructions, &e.Image, &e.Advices, &e.Video, &e.UserID, &e.SessionID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("pgUserExerciseRepository.ListByUser scan: %w", err)
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

func (r *pgUserExerciseRepository) FindByID(ctx context.Context, id string) (*model.UserExercise, error) {
	query := `SELECT ` + userExerciseColumns + ` FROM user_exercises WHERE id = $1`
	e := &model.UserExercise{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Target, &e.Description, &e.Instructions, &e.Image, &e.Advices, &e.Video, &e.UserID, &e.SessionID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserExerciseRepository.FindByID: %w", err)
	}
	return e, nil
}

func (r *pgUserExerciseRepository) Create(ctx context.Context, e *model.UserExercise) error {
	query := `INSERT INTO user_exercises (id, name, target, description, instructions, image, advices, video, user_id, session_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.Name, e.Target, e.Description, e.Instructions, e.Image, e.Advices, e.Video, e.UserID, e.SessionID)
	if err != nil {
		return fmt.Errorf("pgUserExerciseRepository.Create: %w", err)
	}
	return nil
}

func (r *pgUserExerciseRepository) Update(ctx context.Context, e *model.UserExercise) error {
	query := `UPDATE user_exercises SET
	            name = $1, target = $2, description = $3, instructions = $4, image = $5,
	            advices = $6, video = $7, session_id = $8, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $9`
	result, err := r.db.ExecContext(ctx, query, e.Name, e.Target, e.Description, e.Instructions, e.Image, e.Advices, e.Video, e.SessionID, e.ID)
	if err != nil {
		return fmt.Errorf("pgUserExerciseRepository.Update: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgUserExerciseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM user_exercises WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgUserExerciseRepository.Delete: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}
