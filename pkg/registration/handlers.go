// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/lumibase/member-service/internal/logging"
	"github.com/lumibase/member-service/internal/storage"
)

type API struct {
	service ServiceInterface

	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v1/register/options", a.signupOptions)
	mux.Post("/api/v1/user", a.registerUser)
}

func (a *API) signupOptions(w http.ResponseWriter, r *http.Request) {
	redirect := r.URL.Query().Get("redirect")

	a.jsonResponse(w, http.StatusOK, a.service.SignupOptions(r.Context(), redirect))
}

func (a *API) registerUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.service.RegisterUser(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPasswordAuthDisabled):
			a.jsonError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, storage.ErrDuplicateKey):
			a.jsonError(w, http.StatusConflict, err.Error())
		default:
			a.logger.Errorf("failed to register user: %v", err)
			a.jsonError(w, http.StatusInternalServerError, "failed to register user")
		}
		return
	}

	a.jsonResponse(w, http.StatusCreated, user)
}

func (a *API) jsonResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) jsonError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	}); err != nil {
		a.logger.Errorf("failed to encode error response: %v", err)
	}
}
