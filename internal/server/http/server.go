// Package http implements the REST transport of the bookstore server on top
// of gin. Handlers translate between HTTP and the services layer; business
// rules and error taxonomy live in the services.
package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/bookstore/internal/logging"
	"github.com/dmitrijs2005/bookstore/internal/server/models"
)

// UserProvider is the part of the user service the transport depends on.
type UserProvider interface {
	SignUp(ctx context.Context, email, password, firstName, lastName string) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (string, error)
}

// AuthorProvider is the part of the author service the transport depends on.
type AuthorProvider interface {
	List(ctx context.Context) ([]*models.Author, error)
	Get(ctx context.Context, id int64) (*models.Author, error)
	Create(ctx context.Context, userID int64, firstName, lastName, bio string) (*models.Author, error)
	Update(ctx context.Context, id int64, firstName, lastName, bio string) (*models.Author, error)
	Delete(ctx context.Context, id int64) error
}

// BookProvider is the part of the book service the transport depends on.
type BookProvider interface {
	List(ctx context.Context) ([]*models.Book, error)
	Get(ctx context.Context, id int64) (*models.Book, error)
	Create(ctx context.Context, userID, authorID int64, title string, year int, cover string) (*models.Book, error)
	Update(ctx context.Context, id, authorID int64, title string, year int, cover string) (*models.Book, error)
	Delete(ctx context.Context, id int64) error
}

// Server wires the gin engine, middleware and handlers together.
type Server struct {
	engine    *gin.Engine
	logger    logging.Logger
	users     UserProvider
	authors   AuthorProvider
	books     BookProvider
	jwtSecret []byte
}

func NewServer(users UserProvider, authors AuthorProvider, books BookProvider, jwtSecret []byte, logger logging.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine:    gin.New(),
		logger:    logger,
		users:     users,
		authors:   authors,
		books:     books,
		jwtSecret: jwtSecret,
	}
	s.registerRoutes()
	return s
}

// Handler returns the root http.Handler for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) registerRoutes() {
	r := s.engine
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(s.logger))
	r.Use(CORS())

	r.GET("/", s.index)

	authn := r.Group("/auth")
	{
		authn.POST("/signup", s.signUp)
		authn.POST("/signin", s.signIn)
		authn.GET("/me", AuthRequired(s.jwtSecret), s.me)
	}

	authors := r.Group("/authors")
	authors.Use(AuthRequired(s.jwtSecret))
	{
		authors.GET("", s.listAuthors)
		authors.POST("", s.createAuthor)
		authors.GET("/:id", s.getAuthor)
		authors.PUT("/:id", s.updateAuthor)
		authors.DELETE("/:id", s.deleteAuthor)
	}

	books := r.Group("/books")
	books.Use(AuthRequired(s.jwtSecret))
	{
		books.GET("", s.listBooks)
		books.POST("", s.createBook)
		books.GET("/:id", s.getBook)
		books.PUT("/:id", s.updateBook)
		books.DELETE("/:id", s.deleteBook)
	}
}

func (s *Server) index(c *gin.Context) {
	c.String(http.StatusOK, "Bookstore API")
}
