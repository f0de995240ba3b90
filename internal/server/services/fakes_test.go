package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/bookstore/internal/dbx"
	"github.com/dmitrijs2005/bookstore/internal/server/models"
	authorsrepo "github.com/dmitrijs2005/bookstore/internal/server/repositories/authors"
	booksrepo "github.com/dmitrijs2005/bookstore/internal/server/repositories/books"
	usersrepo "github.com/dmitrijs2005/bookstore/internal/server/repositories/users"
)

// ---- repository fakes shared by the service tests ----

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeAuthorsRepo struct {
	listOut []*models.Author
	listErr error

	getOut *models.Author
	getErr error

	createOut *models.Author
	createErr error

	updateOut *models.Author
	updateErr error

	deleteErr error
}

func (f *fakeAuthorsRepo) List(ctx context.Context) ([]*models.Author, error) {
	return f.listOut, f.listErr
}
func (f *fakeAuthorsRepo) GetByID(ctx context.Context, id int64) (*models.Author, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeAuthorsRepo) Create(ctx context.Context, a *models.Author) (*models.Author, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return a, nil
}
func (f *fakeAuthorsRepo) Update(ctx context.Context, a *models.Author) (*models.Author, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	return a, nil
}
func (f *fakeAuthorsRepo) Delete(ctx context.Context, id int64) error { return f.deleteErr }

type fakeBooksRepo struct {
	listOut []*models.Book
	listErr error

	getOut *models.Book
	getErr error

	createOut *models.Book
	createErr error

	updateOut *models.Book
	updateErr error

	deleteErr error
}

func (f *fakeBooksRepo) List(ctx context.Context) ([]*models.Book, error) {
	return f.listOut, f.listErr
}
func (f *fakeBooksRepo) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeBooksRepo) Create(ctx context.Context, b *models.Book) (*models.Book, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return b, nil
}
func (f *fakeBooksRepo) Update(ctx context.Context, b *models.Book) (*models.Book, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	return b, nil
}
func (f *fakeBooksRepo) Delete(ctx context.Context, id int64) error { return f.deleteErr }

type fakeRepoManager struct {
	u *fakeUsersRepo
	a *fakeAuthorsRepo
	b *fakeBooksRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Authors(db dbx.DBTX) authorsrepo.Repository   { return m.a }
func (m *fakeRepoManager) Books(db dbx.DBTX) booksrepo.Repository       { return m.b }
