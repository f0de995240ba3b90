// Package services contains server-side business logic. This file implements
// UserService, which handles sign-up, sign-in, and issuing JWT access tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/server/auth"
	"github.com/dmitrijs2005/bookstore/internal/server/config"
	"github.com/dmitrijs2005/bookstore/internal/server/models"
	"github.com/dmitrijs2005/bookstore/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - SignUp: create accounts
// - SignIn: verify credentials and mint an access token
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// SignUp hashes the password and creates a new account. A duplicate email
// yields common.ErrorAlreadyExists; any other failure wraps
// common.ErrorInternal, keeping the cause attached for server-side logging
// while the transport returns only the generic message.
func (s *UserService) SignUp(ctx context.Context, email, password, firstName, lastName string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password: %v", common.ErrorInternal, err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("%w: creating user: %v", common.ErrorInternal, err)
	}

	return u, nil
}

// SignIn verifies the credentials and, on success, returns a signed access
// token. An unknown email and a wrong password both yield
// common.ErrorUnauthorized so the caller cannot probe for account existence.
func (s *UserService) SignIn(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", fmt.Errorf("%w: looking up user: %v", common.ErrorInternal, err)
	}

	ok, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		// a stored hash that cannot be compared is a misconfiguration,
		// not a credential mismatch
		return "", fmt.Errorf("%w: verifying password: %v", common.ErrorInternal, err)
	}
	if !ok {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, auth.RoleUser, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%w: signing token: %v", common.ErrorInternal, err)
	}

	return token, nil
}
