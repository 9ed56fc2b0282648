// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-vault-sync/internal/app"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
)

// vaultUpload keeps encrypted_vault raw so that a missing field, null and
// non-string values can all be rejected.
type vaultUpload struct {
	EncryptedVault json.RawMessage `json:"encrypted_vault"`
}

// getVault handles GET /api/accounts. A user who never saved gets
// {"encrypted_vault": null}.
func (h *Handler) getVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	envelope, err := h.services.VaultService.GetEncryptedVault(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("reading encrypted vault failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.VaultPayload{EncryptedVault: envelope}, http.StatusOK)
}

// setVault handles POST /api/accounts. The envelope replaces the stored one
// as is: the server never looks inside it.
func (h *Handler) setVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	var upload vaultUpload
	if err := decodeJSON(r, &upload); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeDecodeError(w, err, app.MsgEncryptedVaultMustBeString)
		return
	}

	envelope, ok := envelopeString(upload.EncryptedVault)
	if !ok {
		log.Error().Msg("encrypted_vault is missing or not a string")
		utils.WriteMessage(w, app.MsgEncryptedVaultMustBeString, http.StatusBadRequest)
		return
	}

	if err := h.services.VaultService.SetEncryptedVault(ctx, userID, envelope); err != nil {
		log.Err(err).Str("user_id", userID).Msg("saving encrypted vault failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("user_id", userID).Int("envelope_len", len(envelope)).Msg("encrypted vault replaced")
	utils.WriteMessage(w, app.MsgVaultUpdated, http.StatusOK)
}

// envelopeString returns the decoded value when raw is a JSON string.
func envelopeString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}

	var envelope string
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", false
	}
	return envelope, true
}
