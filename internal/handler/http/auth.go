// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-task-manager/internal/app"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/utils"
	"github.com/MKhiriev/go-task-manager/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.respondMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(request); err != nil {
		h.respondValidationError(w, r, err)
		return
	}

	user := models.User{
		Name:  request.Name,
		Email: request.Email,
		Role:  request.Role,
	}

	registered, pair, err := h.services.AuthService.Register(ctx, user, request.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", registered.UserID).Str("email", registered.Email).Msg("user registered")

	utils.WriteJSON(w, models.AuthResponse{ //nolint:errcheck
		User:         registered,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, http.StatusCreated)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.respondMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(request); err != nil {
		h.respondValidationError(w, r, err)
		return
	}

	user, pair, err := h.services.AuthService.Login(ctx, request.Email, request.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{ //nolint:errcheck
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, http.StatusOK)
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.respondMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	pair, err := h.services.AuthService.Refresh(ctx, request.RefreshToken)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, pair, http.StatusOK) //nolint:errcheck
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.respondMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.Logout(ctx, request.RefreshToken); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondMessage(w, app.MsgLoggedOut, http.StatusOK)
}
