package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-offline-sync/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by IssueToken for an empty issuer or
// key, or a zero lifetime.
var ErrInvalidTokenParams = errors.New("invalid params for issuing token")

// IssueToken signs an HS256 access token for userID that expires ttl from
// now. A negative ttl yields an already expired token.
func IssueToken(issuer string, userID int64, ttl time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || ttl == 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := models.TokenClaims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("sign token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: signed, UserID: userID}, nil
}

// VerifyToken checks the signature, issuer and expiry of raw and returns
// the token with its owner resolved.
func VerifyToken(raw, signKey, issuer string) (models.Token, error) {
	var claims models.TokenClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("verify token: %w", err)
	}

	owner, err := claims.Owner()
	if err != nil {
		return models.Token{}, err
	}
	return models.Token{Claims: claims, SignedString: raw, UserID: owner}, nil
}

// ParseBearerToken returns the credentials of a "<scheme> <token>" header.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// ParseSessionFromJWT reads the owner and expiry of raw without checking
// the signature. The client holds no sign key; the server stays the
// authority on whether the token is accepted.
func ParseSessionFromJWT(raw string) (models.Session, error) {
	var claims models.TokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return models.Session{}, err
	}

	owner, err := claims.Owner()
	if err != nil {
		return models.Session{}, fmt.Errorf("invalid token subject: %w", err)
	}
	return models.Token{Claims: claims, SignedString: raw, UserID: owner}.Session(), nil
}
