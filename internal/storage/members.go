// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/lumibase/member-service/internal/types"
)

// Columns backing an OrganizationMemberProfile. The invite link expiry rides
// along from the left join and only feeds the IsInviteExpired derivation.
var memberProfileColumns = []string{
	"u.user_uuid",
	"u.first_name",
	"u.last_name",
	"u.is_active",
	"e.email",
	"o.organization_uuid",
	"m.role",
	"il.expires_at",
}

type memberProfileRow struct {
	UserUUID         string
	FirstName        string
	LastName         string
	IsActive         bool
	Email            string
	OrganizationUUID string
	Role             string
	ExpiresAt        sql.NullTime
}

// parseMemberProfile maps a joined row into the domain shape. An invite is
// expired only for inactive members: either no invite row was joined, or the
// invite's expiry has passed.
func parseMemberProfile(row memberProfileRow, now time.Time) *types.OrganizationMemberProfile {
	return &types.OrganizationMemberProfile{
		UserUUID:         row.UserUUID,
		FirstName:        row.FirstName,
		LastName:         row.LastName,
		Email:            row.Email,
		OrganizationUUID: row.OrganizationUUID,
		Role:             types.OrganizationMemberRole(row.Role),
		IsActive:         row.IsActive,
		IsInviteExpired:  !row.IsActive && (!row.ExpiresAt.Valid || row.ExpiresAt.Time.Before(now)),
	}
}

// memberProfileQuery is the shared join shape for profile reads: membership to
// user, to the primary email (inner, so users without one are excluded), to
// the organization, with the invite link attached optionally.
//
// Invite links are matched on user identity alone, not on the (user,
// organization) pair, so a user belonging to several organizations shares one
// invite row across all of them. The invite schema is owned by the identity
// subsystem; this join mirrors it as-is.
func (s *Storage) memberProfileQuery(ctx context.Context) sq.SelectBuilder {
	return s.db.Statement(ctx).
		Select(memberProfileColumns...).
		From("organization_memberships m").
		Join("users u ON m.user_id = u.user_id").
		Join("emails e ON u.user_id = e.user_id AND e.is_primary").
		Join("organizations o ON m.organization_id = o.organization_id").
		LeftJoin("invite_links il ON u.user_uuid = il.user_uuid")
}

// FindOrganizationMember looks up one membership by the (organization, user)
// pair. A missing row is not an error: the profile is nil.
func (s *Storage) FindOrganizationMember(ctx context.Context, organizationUUID, userUUID string) (*types.OrganizationMemberProfile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindOrganizationMember")
	defer span.End()

	var row memberProfileRow
	err := s.memberProfileQuery(ctx).
		Where(sq.Eq{
			"o.organization_uuid": organizationUUID,
			"u.user_uuid":         userUUID,
		}).
		QueryRowContext(ctx).
		Scan(&row.UserUUID, &row.FirstName, &row.LastName, &row.IsActive, &row.Email, &row.OrganizationUUID, &row.Role, &row.ExpiresAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find organization member: %w", err)
	}

	return parseMemberProfile(row, time.Now()), nil
}

// GetOrganizationMember is the strict variant of FindOrganizationMember: a
// missing row yields ErrNotFound.
func (s *Storage) GetOrganizationMember(ctx context.Context, organizationUUID, userUUID string) (*types.OrganizationMemberProfile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationMember")
	defer span.End()

	member, err := s.FindOrganizationMember(ctx, organizationUUID, userUUID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, fmt.Errorf("no matching member found in organization: %w", ErrNotFound)
	}

	return member, nil
}

func (s *Storage) organizationMembersQuery(ctx context.Context, organizationUUID string) sq.SelectBuilder {
	return s.memberProfileQuery(ctx).
		Where(sq.Eq{"o.organization_uuid": organizationUUID})
}

func (s *Storage) organizationAdminsQuery(ctx context.Context, organizationUUID string) sq.SelectBuilder {
	return s.memberProfileQuery(ctx).
		Where(sq.Eq{
			"o.organization_uuid": organizationUUID,
			"m.role":              string(types.RoleAdmin),
		})
}

func (s *Storage) ListOrganizationMembers(ctx context.Context, organizationUUID string) ([]*types.OrganizationMemberProfile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrganizationMembers")
	defer span.End()

	return s.queryMemberProfiles(ctx, s.organizationMembersQuery(ctx, organizationUUID))
}

func (s *Storage) ListOrganizationAdmins(ctx context.Context, organizationUUID string) ([]*types.OrganizationMemberProfile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrganizationAdmins")
	defer span.End()

	return s.queryMemberProfiles(ctx, s.organizationAdminsQuery(ctx, organizationUUID))
}

func (s *Storage) queryMemberProfiles(ctx context.Context, query sq.SelectBuilder) ([]*types.OrganizationMemberProfile, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization members: %w", err)
	}
	defer rows.Close()

	now := time.Now()

	var members []*types.OrganizationMemberProfile
	for rows.Next() {
		var row memberProfileRow
		if err := rows.Scan(&row.UserUUID, &row.FirstName, &row.LastName, &row.IsActive, &row.Email, &row.OrganizationUUID, &row.Role, &row.ExpiresAt); err != nil {
			return nil, fmt.Errorf("failed to scan organization member: %w", err)
		}
		members = append(members, parseMemberProfile(row, now))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// decodeMemberGroups unpacks the aggregated group JSON into domain pairs.
// The aggregate COALESCEs to an empty array, so members without groups come
// back with an empty, never nil, slice.
func decodeMemberGroups(raw []byte) ([]types.OrganizationMemberGroup, error) {
	groups := []types.OrganizationMemberGroup{}
	if len(raw) == 0 {
		return groups, nil
	}
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode member groups: %w", err)
	}
	if groups == nil {
		groups = []types.OrganizationMemberGroup{}
	}
	return groups, nil
}

// membersWithGroupsQuery builds the grouped member read. Groups are
// aggregated in the database with json_agg DISTINCT, so the LIMIT applies to
// grouped member rows, never to the raw join. A limit <= 0 means unbounded.
func (s *Storage) membersWithGroupsQuery(ctx context.Context, organizationUUID string, limit int64) sq.SelectBuilder {
	query := s.db.Statement(ctx).
		Select(memberProfileColumns...).
		Column(`COALESCE(json_agg(DISTINCT jsonb_build_object('uuid', g.group_uuid, 'name', g.name)) FILTER (WHERE g.group_uuid IS NOT NULL), '[]') AS groups`).
		From("users u").
		LeftJoin("organization_memberships m ON u.user_id = m.user_id").
		LeftJoin("organizations o ON m.organization_id = o.organization_id").
		LeftJoin("group_memberships gm ON u.user_id = gm.user_id").
		LeftJoin("groups g ON gm.group_uuid = g.group_uuid").
		Join("emails e ON u.user_id = e.user_id AND e.is_primary").
		LeftJoin("invite_links il ON u.user_uuid = il.user_uuid").
		Where(sq.Eq{"o.organization_uuid": organizationUUID}).
		GroupBy("u.user_uuid", "u.user_id", "u.first_name", "u.last_name", "u.is_active", "e.email", "o.organization_uuid", "m.role", "il.expires_at")

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	return query
}

// ListOrganizationMembersWithGroups returns member profiles with every group
// the member belongs to, deduplicated by (uuid, name).
func (s *Storage) ListOrganizationMembersWithGroups(ctx context.Context, organizationUUID string, limit int64) ([]*types.OrganizationMemberProfileWithGroups, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrganizationMembersWithGroups")
	defer span.End()

	rows, err := s.membersWithGroupsQuery(ctx, organizationUUID, limit).QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization members with groups: %w", err)
	}
	defer rows.Close()

	now := time.Now()

	var members []*types.OrganizationMemberProfileWithGroups
	for rows.Next() {
		var row memberProfileRow
		var rawGroups []byte
		if err := rows.Scan(&row.UserUUID, &row.FirstName, &row.LastName, &row.IsActive, &row.Email, &row.OrganizationUUID, &row.Role, &row.ExpiresAt, &rawGroups); err != nil {
			return nil, fmt.Errorf("failed to scan organization member: %w", err)
		}

		groups, err := decodeMemberGroups(rawGroups)
		if err != nil {
			return nil, err
		}

		members = append(members, &types.OrganizationMemberProfileWithGroups{
			OrganizationMemberProfile: *parseMemberProfile(row, now),
			Groups:                    groups,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// CreateOrganizationMembership inserts a membership row for the pair,
// resolving both uuids to internal ids in the same statement. Uniqueness of
// the pair is enforced by the schema, not here: a duplicate insert surfaces
// as ErrDuplicateKey.
func (s *Storage) CreateOrganizationMembership(ctx context.Context, organizationUUID, userUUID string, role types.OrganizationMemberRole) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganizationMembership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Insert("organization_memberships").
		Columns("organization_id", "user_id", "role").
		Select(
			sq.Select("o.organization_id", "u.user_id").
				Column(sq.Expr("?", string(role))).
				From("organizations o").
				CrossJoin("users u").
				Where(sq.Eq{
					"o.organization_uuid": organizationUUID,
					"u.user_uuid":         userUUID,
				}),
		).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return fmt.Errorf("membership already exists: %w", ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create organization membership: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("organization or user does not exist: %w", ErrNotFound)
	}

	return nil
}

// UpdateOrganizationMember updates the membership's role when the update
// carries one and returns the profile re-read from the database. The
// mutation's own result is never trusted; the read path stays the single
// source of truth. An update without a role is a plain fetch.
func (s *Storage) UpdateOrganizationMember(ctx context.Context, organizationUUID, userUUID string, update types.OrganizationMemberProfileUpdate) (*types.OrganizationMemberProfile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateOrganizationMember")
	defer span.End()

	if update.Role != nil {
		_, err := s.db.Statement(ctx).
			Update("organization_memberships").
			Set("role", string(*update.Role)).
			Where(sq.Expr("organization_id = (SELECT organization_id FROM organizations WHERE organization_uuid = ?)", organizationUUID)).
			Where(sq.Expr("user_id = (SELECT user_id FROM users WHERE user_uuid = ?)", userUUID)).
			ExecContext(ctx)

		if err != nil {
			return nil, fmt.Errorf("failed to update organization member: %w", err)
		}
	}

	return s.GetOrganizationMember(ctx, organizationUUID, userUUID)
}
