package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/bookstore/internal/dbx"
	"github.com/dmitrijs2005/bookstore/internal/server/models"
	"github.com/dmitrijs2005/bookstore/internal/server/repositories/repomanager"
)

// BookService implements CRUD operations over book records. Writes that
// reference an author run inside a transaction so the author check and the
// book write observe the same snapshot.
type BookService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewBookService(db *sql.DB, m repomanager.RepositoryManager) *BookService {
	return &BookService{db: db, repomanager: m}
}

func (s *BookService) List(ctx context.Context) ([]*models.Book, error) {
	repo := s.repomanager.Books(s.db)
	result, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing books: %w", err)
	}
	return result, nil
}

// Get returns the book with the given id, or common.ErrorNotFound.
func (s *BookService) Get(ctx context.Context, id int64) (*models.Book, error) {
	repo := s.repomanager.Books(s.db)
	return repo.GetByID(ctx, id)
}

// Create stores a new book owned by userID. The referenced author must
// exist; a missing author yields common.ErrorNotFound.
func (s *BookService) Create(ctx context.Context, userID int64, authorID int64, title string, year int, cover string) (*models.Book, error) {
	book := &models.Book{
		UserID:   userID,
		AuthorID: authorID,
		Title:    title,
		Year:     year,
		Cover:    cover,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Authors(tx).GetByID(ctx, authorID); err != nil {
			return err
		}
		created, err := s.repomanager.Books(tx).Create(ctx, book)
		if err != nil {
			return err
		}
		book = created
		return nil
	}); err != nil {
		return nil, err
	}

	return book, nil
}

// Update overwrites the mutable fields of an existing book. Unknown book or
// author ids yield common.ErrorNotFound.
func (s *BookService) Update(ctx context.Context, id int64, authorID int64, title string, year int, cover string) (*models.Book, error) {
	book := &models.Book{
		ID:       id,
		AuthorID: authorID,
		Title:    title,
		Year:     year,
		Cover:    cover,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Authors(tx).GetByID(ctx, authorID); err != nil {
			return err
		}
		updated, err := s.repomanager.Books(tx).Update(ctx, book)
		if err != nil {
			return err
		}
		book = updated
		return nil
	}); err != nil {
		return nil, err
	}

	return book, nil
}

// Delete removes the book with the given id, or returns common.ErrorNotFound.
func (s *BookService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Books(s.db)
	return repo.Delete(ctx, id)
}
