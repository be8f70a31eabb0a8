// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/lumibase/member-service/internal/authorization"
	"github.com/lumibase/member-service/internal/config"
	"github.com/lumibase/member-service/internal/db"
	"github.com/lumibase/member-service/internal/logging"
	"github.com/lumibase/member-service/internal/monitoring"
	"github.com/lumibase/member-service/internal/storage"
	"github.com/lumibase/member-service/internal/tracing"
	"github.com/lumibase/member-service/pkg/authentication"
	"github.com/lumibase/member-service/pkg/metrics"
	"github.com/lumibase/member-service/pkg/organization"
	"github.com/lumibase/member-service/pkg/registration"
	"github.com/lumibase/member-service/pkg/status"
)

func NewRouter(
	spec *config.EnvSpec,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	verifier authentication.TokenVerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	var authorizer organization.AuthzInterface
	if spec.AuthenticationEnabled {
		authorizer = authorization.NewAuthorizer(s, tracer, monitor, logger)
	} else {
		authorizer = authorization.NewNoopAuthorizer()
	}

	memberService := organization.NewService(s, tracer, monitor, logger)
	registrationService := registration.NewService(
		s,
		registration.NewEventLogger(logger),
		registration.NewOptionsBuilder(spec),
		tracer,
		monitor,
		logger,
	)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(registration.CapabilitiesFromSpec(spec), tracer, monitor, logger).RegisterEndpoints(router)
	registration.NewAPI(registrationService, logger).RegisterEndpoints(router)

	memberAPI := organization.NewAPI(memberService, authorizer, logger)
	if spec.AuthenticationEnabled {
		// Membership endpoints require a verified bearer token. The
		// registration and status surfaces stay open.
		protected := chi.NewMux()
		protected.Use(authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate())
		memberAPI.RegisterEndpoints(protected)
		router.Mount("/", protected)
	} else {
		memberAPI.RegisterEndpoints(router)
	}

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	})
}
