package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-offline-sync/internal/app"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It validates the bearer token via [service.AuthService.ParseToken] and
// stores the user ID in the request context with [utils.WithUserID].
// The request logger gains a user_id field. Every rejection is a 401 with
// the [app.MsgTokenIsExpiredOrInvalid] body the client recognizes.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", token.UserID)
		})
		ctx = log.WithContext(ctx)
		ctx = utils.WithUserID(ctx, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from a "Bearer <token>"
// header value. The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
