package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/server/models"
)

type authorRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Bio       string `json:"bio"`
}

type authorResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toAuthorResponse(a *models.Author) authorResponse {
	return authorResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Bio:       a.Bio,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (s *Server) listAuthors(c *gin.Context) {
	authors, err := s.authors.List(c.Request.Context())
	if err != nil {
		s.internalError(c, err)
		return
	}

	res := make([]authorResponse, 0, len(authors))
	for _, a := range authors {
		res = append(res, toAuthorResponse(a))
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) getAuthor(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		notFound(c)
		return
	}

	a, err := s.authors.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			notFound(c)
			return
		}
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAuthorResponse(a))
}

func (s *Server) createAuthor(c *gin.Context) {
	var req authorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	userID, ok := CurrentUserID(c)
	if !ok {
		abortInvalidToken(c)
		return
	}

	a, err := s.authors.Create(c.Request.Context(), userID, req.FirstName, req.LastName, req.Bio)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAuthorResponse(a))
}

func (s *Server) updateAuthor(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		notFound(c)
		return
	}

	var req authorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	a, err := s.authors.Update(c.Request.Context(), id, req.FirstName, req.LastName, req.Bio)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			notFound(c)
			return
		}
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAuthorResponse(a))
}

func (s *Server) deleteAuthor(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		notFound(c)
		return
	}

	if err := s.authors.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			notFound(c)
			return
		}
		s.internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
}
