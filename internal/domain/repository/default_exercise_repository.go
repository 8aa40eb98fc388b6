package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"fitastic/internal/common"
	"fitastic/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type DefaultExerciseRepository interface {
	List(ctx context.Context) ([]model.DefaultExercise, error)
	FindByID(ctx context.Context, id string) (*model.DefaultExercise, error)
	FindBySlug(ctx context.Context, slug string) (*model.DefaultExercise, error)
	Create(ctx context.Context, exercise *model.DefaultExercise) error
	Update(ctx context.Context, exercise *model.DefaultExercise) error
	Delete(ctx context.Context, id string) error
}

type pgDefaultExerciseRepository struct {
	db *sql.DB
}

func NewPgDefaultExerciseRepository(db *sql.DB) DefaultExerciseRepository {
	return &pgDefaultExerciseRepository{db: db}
}

// String slices are stored as JSONB columns.
func marshalList(v []string) ([]byte, error) {
	if v == nil {
		v = []string{}
	}
	return json.Marshal(v)
}

func scanExercise(scan func(dest ...any) error) (*model.DefaultExercise, error) {
	e := &model.DefaultExercise{}
	var description, instructions, images, advices []byte
	err := scan(
		&e.ID, &e.Name, &e.Slug, &e.Target, &description, &instructions, &images, &advices, &e.Video, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	for _, pair := range []struct {
		raw []byte
		out *[]string
	}{
		{description, &e.Description},
		{instructions, &e.Instructions},
		{images, &e.Images},
		{advices, &e.Advices},
	} {
		if err := json.Unmarshal(pair.raw, pair.out); err != nil {
			return nil, fmt.Errorf("decode exercise list column: %w", err)
		}
	}
	return e, nil
}

const defaultExerciseColumns = `id, name, slug, target, description, instructions, images, advices, video, created_at, updated_at`

func (r *pgDefaultExerciseRepository) List(ctx context.Context) ([]model.DefaultExercise, error) {
	query := `SELECT ` + defaultExerciseColumns + ` FROM default_exercises ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgDefaultExerciseRepository.List: %w", err)
	}
	defer rows.Close()

	var exercises []model.DefaultExercise
	for rows.Next() {
		e, err := scanExercise(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("pgDefaultExerciseRepository.List scan: %w", err)
		}
		exercises = append(exercises, *e)
	}
	return exercises, rows.Err()
}

func (r *pgDefaultExerciseRepository) FindByID(ctx context.Context, id string) (*model.DefaultExercise, error) {
	return r.findBy(ctx, "id", id)
}

func (r *pgDefaultExerciseRepository) FindBySlug(ctx context.Context, slug string) (*model.DefaultExercise, error) {
	return r.findBy(ctx, "slug", slug)
}

func (r *pgDefaultExerciseRepository) findBy(ctx context.Context, column, value string) (*model.DefaultExercise, error) {
	query := `SELECT ` + defaultExerciseColumns + ` FROM default_exercises WHERE ` + column + ` = $1`
	e, err := scanExercise(r.db.QueryRowContext(ctx, query, value).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgDefaultExerciseRepository.findBy: %w", err)
	}
	return e, nil
}

func (r *pgDefaultExerciseRepository) Create(ctx context.Context, e *model.DefaultExercise) error {
	description, err := marshalList(e.Description)
	if err != nil {
		return err
	}
	instructions, err := marshalList(e.Instructions)
	if err != nil {
		return err
	}
	images, err := marshalList(e.Images)
	if err != nil {
		return err
	}
	advices, err := marshalList(e.Advices)
	if err != nil {
		return err
	}

	query := `INSERT INTO default_exercises (id, name, slug, target, description, instructions, images, advices, video)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.db.ExecContext(ctx, query, e.ID, e.Name, e.Slug, e.Target, description, instructions, images, advices, e.Video)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint for slug
			return fmt.Errorf("exercise with this slug already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgDefaultExerciseRepository.Create: %w", err)
	}
	return nil
}

func (r *pgDefaultExerciseRepository) Update(ctx context.Context, e *model.DefaultExercise) error {
	description, err := marshalList(e.Description)
	if err != nil {
		return err
	}
	instructions, err := marshalList(e.Instructions)
	if err != nil {
		return err
	}
	images, err := marshalList(e.Images)
	if err != nil {
		return err
	}
	advices, err := marshalList(e.Advices)
	if err != nil {
		return err
	}

	query := `UPDATE default_exercises SET
	            name = $1, slug = $2, target = $3, description = $4, instructions = $5,
	            images = $6, advices = $7, video = $8, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $9`
	result, err := r.db.ExecContext(ctx, query, e.Name, e.Slug, e.Target, description, instructions, images, advices, e.Video, e.ID)
	if err != nil {
		return fmt.Errorf("pgDefaultExerciseRepository.Update: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgDefaultExerciseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM default_exercises WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgDefaultExerciseRepository.Delete: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}
