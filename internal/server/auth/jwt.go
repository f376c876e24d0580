// Package auth implements the stateless parts of authentication: minting and
// verifying signed bearer tokens (HS256) and hashing passwords with bcrypt.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/cptracker/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the claim payload extracted from a verified token. Downstream
// handlers trust it without re-checking the user record; a stale identity
// stays valid until the token expires.
type Identity struct {
	UserID   string
	Username string
}

// Claims combines the registered JWT claims with the identity fields
// embedded at issuance.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// GenerateToken mints a signed token asserting the given identity,
// valid for validityDuration from now.
func GenerateToken(userID, username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID:   userID,
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken checks signature and expiry and returns the embedded identity.
// Expired tokens yield common.ErrTokenExpired; any other defect yields
// common.ErrInvalidToken. Callers that must not distinguish the two can
// match both with errors.Is.
func VerifyToken(tokenString string, secretKey []byte) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return &Identity{UserID: claims.UserID, Username: claims.Username}, nil
}
