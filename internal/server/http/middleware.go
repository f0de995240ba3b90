package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/bookstore/internal/logging"
	"github.com/dmitrijs2005/bookstore/internal/server/auth"
)

const (
	ctxUserIDKey    = "user_id"
	ctxRequestIDKey = "request_id"

	requestIDHeader = "X-Request-Id"
)

// RequestID assigns every request an id, reusing the client-supplied
// X-Request-Id header when present. The id is echoed back in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs one line per completed request.
func RequestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString(ctxRequestIDKey),
		)
	}
}

// AuthRequired guards a route with bearer-token authentication. A missing
// header, a non-Bearer scheme, a bad signature and an expired token all
// produce the same outward 401 so a caller cannot probe which check failed.
// On success the authenticated user id is stored in the gin context.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortInvalidToken(c)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortInvalidToken(c)
			return
		}

		claims, err := auth.ParseToken(parts[1], secret)
		if err != nil {
			abortInvalidToken(c)
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Next()
	}
}

func abortInvalidToken(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid Token"})
}

// CurrentUserID returns the user id stored by AuthRequired.
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
