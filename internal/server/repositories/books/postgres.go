package books

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

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Book, error) {
	query :=
		`SELECT id, user_id, author_id, title, year, cover, created_at, updated_at FROM books
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Book{}
	for rows.Next() {
		b := &models.Book{}
		if err := rows.Scan(&b.ID, &b.UserID, &b.AuthorID, &b.Title, &b.Year, &b.Cover, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	query :=
		`SELECT id, user_id, author_id, title, year, cover, created_at, updated_at FROM books
		 WHERE id = $1
		 `

	b := &models.Book{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&b.ID, &b.UserID, &b.AuthorID, &b.Title, &b.Year, &b.Cover, &b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return b, nil
}

func (r *PostgresRepository) Create(ctx context.Context, book *models.Book) (*models.Book, error) {
	query :=
		`INSERT INTO books (user_id, author_id, title, year, cover)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		book.UserID, book.AuthorID, book.Title, book.Year, book.Cover).
		Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return book, nil
}

func (r *PostgresRepository) Update(ctx context.Context, book *models.Book) (*models.Book, error) {
	query :=
		`UPDATE books SET author_id = $1, title = $2, year = $3, cover = $4, updated_at = now()
		 WHERE id = $5
		 RETURNING user_id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		book.AuthorID, book.Title, book.Year, book.Cover, book.ID).
		Scan(&book.UserID, &book.CreatedAt, &book.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return book, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM books WHERE id = $1`

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
