package http

import (
	"net/http"

	"github.com/MKhiriev/go-vault-sync/internal/app"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
)

// register handles POST /api/register.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeDecodeError(w, err, app.MsgInvalidDataProvided)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user registration failed")
		writeError(w, err)
		return
	}

	log.Info().Str("user_id", registeredUser.UserID).Msg("user registered")
	utils.WriteMessage(w, app.MsgUserRegistered, http.StatusCreated)
}

// login handles POST /api/login.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeDecodeError(w, err, app.MsgInvalidDataProvided)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user login failed")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("user_id", foundUser.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}
