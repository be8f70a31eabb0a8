// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/lumibase/member-service/internal/logging"
	"github.com/lumibase/member-service/internal/monitoring"
	"github.com/lumibase/member-service/internal/tracing"
)

// accessClaims is the slice of the token payload the access policy looks at.
// Providers spell scopes either as a single space-separated "scope" string or
// as a "scp" array.
type accessClaims struct {
	Subject string   `json:"sub"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
}

func (c accessClaims) grantedScopes() []string {
	return append(strings.Fields(c.Scope), c.Scopes...)
}

// JWTVerifier validates bearer tokens against the OIDC issuer and enforces a
// single required scope. A verifier without a required scope admits nobody:
// the policy must be configured explicitly.
type JWTVerifier struct {
	verifier      *oidc.IDTokenVerifier
	requiredScope string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}

	var claims accessClaims
	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("failed to extract token claims: %v", err)
		return "", err
	}

	if v.requiredScope == "" {
		v.logger.Security().AuthzFailure(claims.Subject, "jwt_api_access")
		return "", fmt.Errorf("unauthorized: no access policy configured")
	}

	if !slices.Contains(claims.grantedScopes(), v.requiredScope) {
		v.logger.Security().AuthzFailure(claims.Subject, "jwt_api_access")
		return "", fmt.Errorf("unauthorized: token lacks scope %q", v.requiredScope)
	}

	return claims.Subject, nil
}

func NewJWTVerifier(
	provider ProviderInterface,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier: provider.Verifier(&oidc.Config{
			SkipClientIDCheck: true,
			SkipIssuerCheck:   false,
		}),
		requiredScope: requiredScope,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// NewJWTVerifierDirect wraps an already-built token verifier, used when the
// JWKS endpoint is configured manually instead of via discovery.
func NewJWTVerifierDirect(
	verifier *oidc.IDTokenVerifier,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier:      verifier,
		requiredScope: requiredScope,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}
