// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"

	chi "github.com/go-chi/chi/v5"

	"github.com/lumibase/member-service/internal/logging"
)

type API struct {
	logger logging.LoggerInterface
}

func NewAPI(logger logging.LoggerInterface) *API {
	return &API{logger: logger}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v1/metrics", promhttp.Handler().ServeHTTP)
}
