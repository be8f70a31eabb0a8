// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/lumibase/member-service/internal/logging"
	"github.com/lumibase/member-service/internal/monitoring"
	"github.com/lumibase/member-service/internal/tracing"
	"github.com/lumibase/member-service/internal/types"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer derives permissions from the membership role column: there is
// no separate permission store to consult.
type Authorizer struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAuthorizer(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	a := new(Authorizer)

	a.storage = storage

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *Authorizer) CanManageMembers(ctx context.Context, organizationUUID, userUUID string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanManageMembers")
	defer span.End()

	member, err := a.storage.FindOrganizationMember(ctx, organizationUUID, userUUID)
	if err != nil {
		return false, err
	}

	if member == nil || member.Role != types.RoleAdmin {
		a.logger.Security().AuthzFailure(userUUID, "manage_members")
		return false, nil
	}

	return true, nil
}

var _ AuthorizerInterface = (*NoopAuthorizer)(nil)

// NoopAuthorizer allows everything. Used when authentication is disabled and
// there is no actor identity to check against.
type NoopAuthorizer struct{}

func NewNoopAuthorizer() *NoopAuthorizer {
	return &NoopAuthorizer{}
}

func (a *NoopAuthorizer) CanManageMembers(ctx context.Context, organizationUUID, userUUID string) (bool, error) {
	return true, nil
}
