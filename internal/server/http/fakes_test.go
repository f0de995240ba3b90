package http

import (
	"context"

	"github.com/dmitrijs2005/bookstore/internal/logging"
	"github.com/dmitrijs2005/bookstore/internal/server/models"
)

type noopLogger struct{}

func (l noopLogger) Debug(context.Context, string, ...any) {}
func (l noopLogger) Info(context.Context, string, ...any)  {}
func (l noopLogger) Warn(context.Context, string, ...any)  {}
func (l noopLogger) Error(context.Context, string, ...any) {}
func (l noopLogger) With(...any) logging.Logger            { return l }

type fakeUsers struct {
	signUpOut *models.User
	signUpErr error

	signInToken string
	signInErr   error
}

func (f *fakeUsers) SignUp(ctx context.Context, email, password, firstName, lastName string) (*models.User, error) {
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	if f.signUpOut != nil {
		return f.signUpOut, nil
	}
	return &models.User{ID: 1, Email: email, FirstName: firstName, LastName: lastName}, nil
}

func (f *fakeUsers) SignIn(ctx context.Context, email, password string) (string, error) {
	return f.signInToken, f.signInErr
}

type fakeAuthors struct {
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

func (f *fakeAuthors) List(ctx context.Context) ([]*models.Author, error) {
	return f.listOut, f.listErr
}

func (f *fakeAuthors) Get(ctx context.Context, id int64) (*models.Author, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeAuthors) Create(ctx context.Context, userID int64, firstName, lastName, bio string) (*models.Author, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return &models.Author{ID: 1, UserID: userID, FirstName: firstName, LastName: lastName, Bio: bio}, nil
}

func (f *fakeAuthors) Update(ctx context.Context, id int64, firstName, lastName, bio string) (*models.Author, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	return &models.Author{ID: id, FirstName: firstName, LastName: lastName, Bio: bio}, nil
}

func (f *fakeAuthors) Delete(ctx context.Context, id int64) error { return f.deleteErr }

type fakeBooks struct {
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

func (f *fakeBooks) List(ctx context.Context) ([]*models.Book, error) {
	return f.listOut, f.listErr
}

func (f *fakeBooks) Get(ctx context.Context, id int64) (*models.Book, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeBooks) Create(ctx context.Context, userID, authorID int64, title string, year int, cover string) (*models.Book, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return &models.Book{ID: 1, UserID: userID, AuthorID: authorID, Title: title, Year: year, Cover: cover}, nil
}

func (f *fakeBooks) Update(ctx context.Context, id, authorID int64, title string, year int, cover string) (*models.Book, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	return &models.Book{ID: id, AuthorID: authorID, Title: title, Year: year, Cover: cover}, nil
}

func (f *fakeBooks) Delete(ctx context.Context, id int64) error { return f.deleteErr }
