package http

import (
	"net/http"

	"github.com/MKhiriev/go-offline-sync/internal/app"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/utils"
	"github.com/MKhiriev/go-offline-sync/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(w, r, &user, maxRequestBody); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")
	h.writeToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(w, r, &user, maxRequestBody); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, err, "user login failed")
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user successfully logged in")
	h.writeToken(w, r, foundUser)
}

// writeToken issues a token for user and returns it in the Authorization
// response header.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.String())
	w.WriteHeader(http.StatusOK)
}
