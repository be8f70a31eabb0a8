// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/lumibase/member-service/internal/types"
)

type AuthorizerInterface interface {
	// CanManageMembers reports whether the user may create memberships or
	// change roles within the organization.
	CanManageMembers(ctx context.Context, organizationUUID, userUUID string) (bool, error)
}

// StorageInterface is the subset of the storage layer the authorizer needs.
type StorageInterface interface {
	FindOrganizationMember(ctx context.Context, organizationUUID, userUUID string) (*types.OrganizationMemberProfile, error)
}
