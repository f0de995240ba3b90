package authors

import (
	"context"

	"github.com/dmitrijs2005/bookstore/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Author, error)
	GetByID(ctx context.Context, id int64) (*models.Author, error)
	Create(ctx context.Context, author *models.Author) (*models.Author, error)
	Update(ctx context.Context, author *models.Author) (*models.Author, error)
	Delete(ctx context.Context, id int64) error
}
