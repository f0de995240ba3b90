// Package auth implements the token and password primitives of the
// authentication core: HS256 JWT issuance/verification and bcrypt password
// hashing.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Role identifies the access level carried inside a token. Only one role
// exists today; the claims format admits more members without change.
type Role string

const RoleUser Role = "user"

// Claims is the claim set embedded in every issued token.
//
// UserID shadows the registered string subject so that "sub" serializes as
// the numeric user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"sub"`
	Role   Role  `json:"role"`
}

// GenerateToken issues a signed HS256 token for the given user id, valid for
// validityDuration from now.
func GenerateToken(userID int64, role Role, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
		Role:   role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of tokenString and returns its
// claims. The signing method is pinned to HS256.
//
// Expired tokens yield common.ErrTokenExpired; any other defect (malformed
// encoding, wrong signature, wrong method) yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
