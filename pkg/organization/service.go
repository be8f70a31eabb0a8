// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"
	"fmt"

	"github.com/lumibase/member-service/internal/logging"
	"github.com/lumibase/member-service/internal/monitoring"
	"github.com/lumibase/member-service/internal/tracing"
	"github.com/lumibase/member-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) FindOrganizationMember(ctx context.Context, organizationUUID, userUUID string) (*types.OrganizationMemberProfile, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.FindOrganizationMember")
	defer span.End()

	return s.storage.FindOrganizationMember(ctx, organizationUUID, userUUID)
}

func (s *Service) GetOrganizationMember(ctx context.Context, organizationUUID, userUUID string) (*types.OrganizationMemberProfile, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.GetOrganizationMember")
	defer span.End()

	return s.storage.GetOrganizationMember(ctx, organizationUUID, userUUID)
}

func (s *Service) ListOrganizationMembers(ctx context.Context, organizationUUID string) ([]*types.OrganizationMemberProfile, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ListOrganizationMembers")
	defer span.End()

	return s.storage.ListOrganizationMembers(ctx, organizationUUID)
}

func (s *Service) ListOrganizationAdmins(ctx context.Context, organizationUUID string) ([]*types.OrganizationMemberProfile, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ListOrganizationAdmins")
	defer span.End()

	return s.storage.ListOrganizationAdmins(ctx, organizationUUID)
}

func (s *Service) ListOrganizationMembersWithGroups(ctx context.Context, organizationUUID string, limit int64) ([]*types.OrganizationMemberProfileWithGroups, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ListOrganizationMembersWithGroups")
	defer span.End()

	return s.storage.ListOrganizationMembersWithGroups(ctx, organizationUUID, limit)
}

// CreateOrganizationMembership inserts the membership and returns the
// resulting profile read back from the database.
func (s *Service) CreateOrganizationMembership(ctx context.Context, organizationUUID, userUUID string, role types.OrganizationMemberRole) (*types.OrganizationMemberProfile, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.CreateOrganizationMembership")
	defer span.End()

	if !role.Valid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	if err := s.storage.CreateOrganizationMembership(ctx, organizationUUID, userUUID, role); err != nil {
		return nil, err
	}

	return s.storage.GetOrganizationMember(ctx, organizationUUID, userUUID)
}

// UpdateOrganizationMember applies the role change, if any, and returns the
// profile re-read after the mutation committed. An update without a role is
// a no-op fetch.
func (s *Service) UpdateOrganizationMember(ctx context.Context, organizationUUID, userUUID string, update types.OrganizationMemberProfileUpdate) (*types.OrganizationMemberProfile, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.UpdateOrganizationMember")
	defer span.End()

	if update.Role != nil && !update.Role.Valid() {
		return nil, fmt.Errorf("invalid role: %s", *update.Role)
	}

	return s.storage.UpdateOrganizationMember(ctx, organizationUUID, userUUID, update)
}

func (s *Service) CreateOrganization(ctx context.Context, name string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.CreateOrganization")
	defer span.End()

	return s.storage.CreateOrganization(ctx, name)
}

func (s *Service) GetOrganizationByUUID(ctx context.Context, organizationUUID string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.GetOrganizationByUUID")
	defer span.End()

	return s.storage.GetOrganizationByUUID(ctx, organizationUUID)
}

func (s *Service) CreateGroup(ctx context.Context, organizationUUID, name string) (*types.Group, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.CreateGroup")
	defer span.End()

	return s.storage.CreateGroup(ctx, organizationUUID, name)
}

func (s *Service) AddGroupMember(ctx context.Context, groupUUID, userUUID string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.AddGroupMember")
	defer span.End()

	return s.storage.AddGroupMember(ctx, groupUUID, userUUID)
}
