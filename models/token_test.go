package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenClaims_Owner(t *testing.T) {
	tests := []struct {
		subject string
		want    int64
		wantErr bool
	}{
		{subject: "42", want: 42},
		{subject: "", wantErr: true},
		{subject: "ann", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			c := TokenClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: tt.subject}}
			got, err := c.Owner()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToken_Session(t *testing.T) {
	exp := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	token := Token{
		Claims:       TokenClaims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}},
		SignedString: "a.b.c",
		UserID:       9,
	}

	assert.Equal(t, Session{UserID: 9, Token: "a.b.c", ExpiresAt: exp}, token.Session())
	assert.Equal(t, "a.b.c", token.String())

	token.Claims.ExpiresAt = nil
	assert.True(t, token.Session().ExpiresAt.IsZero(), "no exp claim means no expiry")
}
