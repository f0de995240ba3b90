package authors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/dbx"
	"github.com/dmitrijs2005/bookstore/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Author, error) {
	query :=
		`SELECT id, user_id, first_name, last_name, bio, created_at, updated_at FROM authors
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Author{}
	for rows.Next() {
		a := &models.Author{}
		if err := rows.Scan(&a.ID, &a.UserID, &a.FirstName, &a.LastName, &a.Bio, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Author, error) {
	query :=
		`SELECT id, user_id, first_name, last_name, bio, created_at, updated_at FROM authors
		 WHERE id = $1
		 `

	a := &models.Author{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&a.ID, &a.UserID, &a.FirstName, &a.LastName, &a.Bio, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, author *models.Author) (*models.Author, error) {
	query :=
		`INSERT INTO authors (user_id, first_name, last_name, bio)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		author.UserID, author.FirstName, author.LastName, author.Bio).
		Scan(&author.ID, &author.CreatedAt, &author.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return author, nil
}

func (r *PostgresRepository) Update(ctx context.Context, author *models.Author) (*models.Author, error) {
	query :=
		`UPDATE authors SET first_name = $1, last_name = $2, bio = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING user_id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		author.FirstName, author.LastName, author.Bio, author.ID).
		Scan(&author.UserID, &author.CreatedAt, &author.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return author, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM authors WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
