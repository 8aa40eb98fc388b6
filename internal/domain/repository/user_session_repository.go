package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fitastic/internal/common"
	"fitastic/internal/domain/model"
)

type UserSessionRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.UserSession, error)
	FindByID(ctx context.Context, id string) (*model.UserSession, error)
	Create(ctx context.Context, session *model.UserSession) error
	Update(ctx context.Context, session *model.UserSession) error
	Delete(ctx context.Context, id string) error
}

type pgUserSessionRepository struct {
	db *sql.DB
}

func NewPgUserSessionRepository(db *sql.DB) UserSessionRepository {
	return &pgUserSessionRepository{db: db}
}

func (r *pgUserSessionRepository) ListByUser(ctx context.Context, userID string) ([]model.UserSession, error) {
	query := `SELECT id, name, user_id, session_date, created_at
	          FROM user_sessions WHERE user_id = $1 ORDER BY session_date DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgUserSessionRepository.ListByUser: %w", err)
	}
	defer rows.Close()

	var sessions []model.UserSession
	for rows.Next() {
		var s model.UserSession
		if err := rows.Scan(&s.ID, &s.Name, &s.UserID, &s.SessionDate, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgUserSessionRepository.ListByUser scan: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *pgUserSessionRepository) FindByID(ctx context.Context, id string) (*model.UserSession, error) {
	query := `SELECT id, name, user_id, session_date, created_at FROM user_sessions WHERE id = $1`
	s := &model.UserSession{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.UserID, &s.SessionDate, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserSessionRepository.FindByID: %w", err)
	}
	return s, nil
}

func (r *pgUserSessionRepository) Create(ctx context.Context, s *model.UserSession) error {
	query := `INSERT INTO user_sessions (id, name, user_id, session_date) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.UserID, s.SessionDate); err != nil {
		return fmt.Errorf("pgUserSessionRepository.Create: %w", err)
	}
	return nil
}

func (r *pgUserSessionRepository) Update(ctx context.Context, s *model.UserSession) error {
	query := `UPDATE user_sessions SET name = $1, session_date = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, s.Name, s.SessionDate, s.ID)
	if err != nil {
		return fmt.Errorf("pgUserSessionRepository.Update: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgUserSessionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM user_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgUserSessionRepository.Delete: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}
