package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fitastic/internal/common"
	"fitastic/internal/domain/model"
)

// TokenRepository persists issued token pairs. Records are only ever
// soft-revoked (logged_out flipped to true), never deleted.
type TokenRepository interface {
	Create(ctx context.Context, token *model.Token) error
	FindByAccessToken(ctx context.Context, raw string) (*model.Token, error)
	FindByRefreshToken(ctx context.Context, raw string) (*model.Token, error)
	IsAccessTokenLive(ctx context.Context, raw string) (bool, error)
	IsRefreshTokenLive(ctx context.Context, raw string) (bool, error)
	RevokeAllByUser(ctx context.Context, userID string) ([]model.Token, error)
	Revoke(ctx context.Context, token *model.Token) error
}

type pgTokenRepository struct {
	db *sql.DB
}

func NewPgTokenRepository(db *sql.DB) TokenRepository {
	return &pgTokenRepository{db: db}
}

func (r *pgTokenRepository) Create(ctx context.Context, token *model.Token) error {
	query := `INSERT INTO tokens (id, access_token, refresh_token, logged_out, user_id)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, token.ID, token.AccessToken, token.RefreshToken, token.LoggedOut, token.UserID)
	if err != nil {
		return fmt.Errorf("pgTokenRepository.Create: %w", err)
	}
	return nil
}

func (r *pgTokenRepository) findByColumn(ctx context.Context, column, raw string) (*model.Token, error) {
	query := `SELECT id, access_token, refresh_token, logged_out, user_id, created_at
	          FROM tokens WHERE ` + column + ` = $1`
	token := &model.Token{}
	err := r.db.QueryRowContext(ctx, query, raw).Scan(
		&token.ID, &token.AccessToken, &token.RefreshToken, &token.LoggedOut, &token.UserID, &token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgTokenRepository.findByColumn: %w", err)
	}
	return token, nil
}

func (r *pgTokenRepository) FindByAccessToken(ctx context.Context, raw string) (*model.Token, error) {
	return r.findByColumn(ctx, "access_token", raw)
}

func (r *pgTokenRepository) FindByRefreshToken(ctx context.Context, raw string) (*model.Token, error) {
	return r.findByColumn(ctx, "refresh_token", raw)
}

func (r *pgTokenRepository) IsAccessTokenLive(ctx context.Context, raw string) (bool, error) {
	return r.isLive(ctx, "access_token", raw)
}

func (r *pgTokenRepository) IsRefreshTokenLive(ctx context.Context, raw string) (bool, error) {
	return r.isLive(ctx, "refresh_token", raw)
}

func (r *pgTokenRepository) isLive(ctx context.Context, column, raw string) (bool, error) {
	query := `SELECT NOT logged_out FROM tokens WHERE ` + column + ` = $1`
	var live bool
	err := r.db.QueryRowContext(ctx, query, raw).Scan(&live)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// A token the store has never seen is not live.
			return false, nil
		}
		return false, fmt.Errorf("pgTokenRepository.isLive: %w", err)
	}
	return live, nil
}

func (r *pgTokenRepository) RevokeAllByUser(ctx context.Context, userID string) ([]model.Token, error) {
	query := `UPDATE tokens SET logged_out = TRUE
	          WHERE user_id = $1 AND NOT logged_out
	          RETURNING id, access_token, refresh_token, logged_out, user_id, created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgTokenRepository.RevokeAllByUser: %w", err)
	}
	defer rows.Close()

	var revoked []model.Token
	for rows.Next() {
		var t model.Token
		if err := rows.Scan(&t.ID, &t.AccessToken, &t.RefreshToken, &t.LoggedOut, &t.UserID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgTokenRepository.RevokeAllByUser scan: %w", err)
		}
		revoked = append(revoked, t)
	}
	return revoked, rows.Err()
}

func (r *pgTokenRepository) Revoke(ctx context.Context, token *model.Token) error {
	query := `UPDATE tokens SET logged_out = TRUE WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, token.ID); err != nil {
		return fmt.Errorf("pgTokenRepository.Revoke: %w", err)
	}
	return nil
}
