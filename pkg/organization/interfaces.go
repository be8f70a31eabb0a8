// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"

	"github.com/lumibase/member-service/internal/types"
)

type ServiceInterface interface {
	FindOrganizationMember(ctx context.Context, organizationUUID, userUUID string) (*types.OrganizationMemberProfile, error)
	GetOrganizationMember(ctx context.Context, organizationUUID, userUUID string) (*types.OrganizationMemberProfile, error)
	ListOrganizationMembers(ctx context.Context, organizationUUID string) ([]*types.OrganizationMemberProfile, error)
	ListOrganizationAdmins(ctx context.Context, organizationUUID string) ([]*types.OrganizationMemberProfile, error)
	ListOrganizationMembersWithGroups(ctx context.Context, organizationUUID string, limit int64) ([]*types.OrganizationMemberProfileWithGroups, error)
	CreateOrganizationMembership(ctx context.Context, organizationUUID, userUUID string, role types.OrganizationMemberRole) (*types.OrganizationMemberProfile, error)
	UpdateOrganizationMember(ctx context.Context, organizationUUID, userUUID string, update types.OrganizationMemberProfileUpdate) (*types.OrganizationMemberProfile, error)
	CreateOrganization(ctx context.Context, name string) (*types.Organization, error)
	GetOrganizationByUUID(ctx context.Context, organizationUUID string) (*types.Organization, error)
	CreateGroup(ctx context.Context, organizationUUID, name string) (*types.Group, error)
	AddGroupMember(ctx context.Context, groupUUID, userUUID string) error
}

// StorageInterface is the subset of the storage layer this package consumes.
type StorageInterface interface {
	FindOrganizationMember(ctx context.Context, organizationUUID, userUUID string) (*types.OrganizationMemberProfile, error)
	GetOrganizationMember(ctx context.Context, organizationUUID, userUUID string) (*types.OrganizationMemberProfile, error)
	ListOrganizationMembers(ctx context.Context, organizationUUID string) ([]*types.OrganizationMemberProfile, error)
	ListOrganizationAdmins(ctx context.Context, organizationUUID string) ([]*types.OrganizationMemberProfile, error)
	ListOrganizationMembersWithGroups(ctx context.Context, organizationUUID string, limit int64) ([]*types.OrganizationMemberProfileWithGroups, error)
	CreateOrganizationMembership(ctx context.Context, organizationUUID, userUUID string, role types.OrganizationMemberRole) error
	UpdateOrganizationMember(ctx context.Context, organizationUUID, userUUID string, update types.OrganizationMemberProfileUpdate) (*types.OrganizationMemberProfile, error)
	CreateOrganization(ctx context.Context, name string) (*types.Organization, error)
	GetOrganizationByUUID(ctx context.Context, organizationUUID string) (*types.Organization, error)
	CreateGroup(ctx context.Context, organizationUUID, name string) (*types.Group, error)
	AddGroupMember(ctx context.Context, groupUUID, userUUID string) error
}

type AuthzInterface interface {
	CanManageMembers(ctx context.Context, organizationUUID, userUUID string) (bool, error)
}
