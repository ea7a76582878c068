package models

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims of a sync server access token. Subject holds
// the owner's user id in base 10.
type TokenClaims struct {
	jwt.RegisteredClaims
}

// Owner parses the subject claim.
func (c *TokenClaims) Owner() (int64, error) {
	if c.Subject == "" {
		return 0, errors.New("token has no subject")
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject %q: %w", c.Subject, err)
	}
	return id, nil
}

// Token is a signed access token together with its decoded claims.
type Token struct {
	Claims       TokenClaims
	SignedString string
	UserID       int64
}

func (t Token) String() string {
	return t.SignedString
}

// Session is the client-side view of t.
func (t Token) Session() Session {
	s := Session{UserID: t.UserID, Token: t.SignedString}
	if t.Claims.ExpiresAt != nil {
		s.ExpiresAt = t.Claims.ExpiresAt.Time
	}
	return s
}
