// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/lumibase/member-service/internal/logging"
	"github.com/lumibase/member-service/internal/monitoring"
	"github.com/lumibase/member-service/internal/tracing"
	"github.com/lumibase/member-service/internal/version"
	"github.com/lumibase/member-service/pkg/registration"
)

type BuildInfo struct {
	Version string `json:"version"`
	Name    string `json:"name"`
}

type StatusResponse struct {
	Status    string    `json:"status"`
	BuildInfo BuildInfo `json:"buildInfo"`
}

// HealthResponse carries the capability snapshot clients use to decide which
// sign-up paths to offer.
type HealthResponse struct {
	Status string                        `json:"status"`
	Auth   registration.AuthCapabilities `json:"auth"`
}

type API struct {
	caps registration.AuthCapabilities

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(caps registration.AuthCapabilities, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		caps:    caps,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v1/status", a.status)
	mux.Get("/api/v1/health", a.health)
}

func (a *API) status(w http.ResponseWriter, r *http.Request) {
	a.jsonResponse(w, StatusResponse{
		Status: "ok",
		BuildInfo: BuildInfo{
			Version: version.Version,
			Name:    "member-service",
		},
	})
}

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	a.jsonResponse(w, HealthResponse{
		Status: "ok",
		Auth:   a.caps,
	})
}

func (a *API) jsonResponse(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
