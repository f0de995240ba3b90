package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/bookstore/internal/dbx"
	"github.com/dmitrijs2005/bookstore/internal/server/repositories/authors"
	"github.com/dmitrijs2005/bookstore/internal/server/repositories/books"
	"github.com/dmitrijs2005/bookstore/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Authors(db dbx.DBTX) authors.Repository
	Books(db dbx.DBTX) books.Repository
}
