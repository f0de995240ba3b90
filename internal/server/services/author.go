package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/bookstore/internal/server/models"
	"github.com/dmitrijs2005/bookstore/internal/server/repositories/repomanager"
)

// AuthorService implements CRUD operations over author records.
type AuthorService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAuthorService(db *sql.DB, m repomanager.RepositoryManager) *AuthorService {
	return &AuthorService{db: db, repomanager: m}
}

func (s *AuthorService) List(ctx context.Context) ([]*models.Author, error) {
	repo := s.repomanager.Authors(s.db)
	result, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing authors: %w", err)
	}
	return result, nil
}

// Get returns the author with the given id, or common.ErrorNotFound.
func (s *AuthorService) Get(ctx context.Context, id int64) (*models.Author, error) {
	repo := s.repomanager.Authors(s.db)
	return repo.GetByID(ctx, id)
}

// Create stores a new author record owned by userID.
func (s *AuthorService) Create(ctx context.Context, userID int64, firstName, lastName, bio string) (*models.Author, error) {
	author := &models.Author{
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		Bio:       bio,
	}

	repo := s.repomanager.Authors(s.db)
	a, err := repo.Create(ctx, author)
	if err != nil {
		return nil, fmt.Errorf("error creating author: %w", err)
	}
	return a, nil
}

// Update overwrites the mutable fields of an existing author. Unknown ids
// yield common.ErrorNotFound.
func (s *AuthorService) Update(ctx context.Context, id int64, firstName, lastName, bio string) (*models.Author, error) {
	author := &models.Author{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Bio:       bio,
	}

	repo := s.repomanager.Authors(s.db)
	return repo.Update(ctx, author)
}

// Delete removes the author with the given id, or returns
// common.ErrorNotFound.
func (s *AuthorService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Authors(s.db)
	return repo.Delete(ctx, id)
}
