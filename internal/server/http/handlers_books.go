package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/server/models"
)

type bookRequest struct {
	AuthorID int64  `json:"author_id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Year     int    `json:"year" binding:"required"`
	Cover    string `json:"cover"`
}

type bookResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	AuthorID  int64     `json:"author_id"`
	Title     string    `json:"title"`
	Year      int       `json:"year"`
	Cover     string    `json:"cover"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toBookResponse(b *models.Book) bookResponse {
	return bookResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		AuthorID:  b.AuthorID,
		Title:     b.Title,
		Year:      b.Year,
		Cover:     b.Cover,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (s *Server) listBooks(c *gin.Context) {
	books, err := s.books.List(c.Request.Context())
	if err != nil {
		s.internalError(c, err)
		return
	}

	res := make([]bookResponse, 0, len(books))
	for _, b := range books {
		res = append(res, toBookResponse(b))
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) getBook(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		notFound(c)
		return
	}

	b, err := s.books.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			notFound(c)
			return
		}
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookResponse(b))
}

func (s *Server) createBook(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	userID, ok := CurrentUserID(c)
	if !ok {
		abortInvalidToken(c)
		return
	}

	b, err := s.books.Create(c.Request.Context(), userID, req.AuthorID, req.Title, req.Year, req.Cover)
	if err != nil {
		// the referenced author must exist
		if errors.Is(err, common.ErrorNotFound) {
			notFound(c)
			return
		}
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBookResponse(b))
}

func (s *Server) updateBook(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		notFound(c)
		return
	}

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	b, err := s.books.Update(c.Request.Context(), id, req.AuthorID, req.Title, req.Year, req.Cover)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			notFound(c)
			return
		}
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookResponse(b))
}

func (s *Server) deleteBook(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		notFound(c)
		return
	}

	if err := s.books.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			notFound(c)
			return
		}
		s.internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
