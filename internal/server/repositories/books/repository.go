package books

import (
	"context"

	"github.com/dmitrijs2005/bookstore/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Book, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	Create(ctx context.Context, book *models.Book) (*models.Book, error)
	Update(ctx context.Context, book *models.Book) (*models.Book, error)
	Delete(ctx context.Context, id int64) error
}
