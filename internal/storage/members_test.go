// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/lumibase/member-service/internal/logging"
	"github.com/lumibase/member-service/internal/monitoring"
	"github.com/lumibase/member-service/internal/tracing"
	"github.com/lumibase/member-service/internal/types"
)

// builderOnlyClient hands out statement builders without a runner; the tests
// below render SQL, they never execute it.
type builderOnlyClient struct{}

func (builderOnlyClient) Statement(context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func (builderOnlyClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (builderOnlyClient) Ping(context.Context) error { return nil }

func (builderOnlyClient) Close() {}

func newQueryTestStorage() *Storage {
	return NewStorage(builderOnlyClient{}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestParseMemberProfileInviteExpiry(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	testCases := []struct {
		name            string
		isActive        bool
		expiresAt       sql.NullTime
		expectedExpired bool
	}{
		{
			name:            "active member without invite",
			isActive:        true,
			expiresAt:       sql.NullTime{},
			expectedExpired: false,
		},
		{
			name:            "active member with expired invite",
			isActive:        true,
			expiresAt:       sql.NullTime{Time: past, Valid: true},
			expectedExpired: false,
		},
		{
			name:            "active member with pending invite",
			isActive:        true,
			expiresAt:       sql.NullTime{Time: future, Valid: true},
			expectedExpired: false,
		},
		{
			name:            "inactive member without invite",
			isActive:        false,
			expiresAt:       sql.NullTime{},
			expectedExpired: true,
		},
		{
			name:            "inactive member with pending invite",
			isActive:        false,
			expiresAt:       sql.NullTime{Time: future, Valid: true},
			expectedExpired: false,
		},
		{
			name:            "inactive member with expired invite",
			isActive:        false,
			expiresAt:       sql.NullTime{Time: past, Valid: true},
			expectedExpired: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			row := memberProfileRow{
				UserUUID:         "user-1",
				FirstName:        "Ada",
				LastName:         "Lovelace",
				IsActive:         tc.isActive,
				Email:            "ada@example.com",
				OrganizationUUID: "org-1",
				Role:             "member",
				ExpiresAt:        tc.expiresAt,
			}

			profile := parseMemberProfile(row, now)

			if profile.IsInviteExpired != tc.expectedExpired {
				t.Errorf("expected IsInviteExpired %v, got %v", tc.expectedExpired, profile.IsInviteExpired)
			}
		})
	}
}

func TestParseMemberProfileExpiryTransition(t *testing.T) {
	expiry := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	row := memberProfileRow{
		UserUUID:  "user-1",
		IsActive:  false,
		ExpiresAt: sql.NullTime{Time: expiry, Valid: true},
	}

	before := parseMemberProfile(row, expiry.Add(-time.Minute))
	if before.IsInviteExpired {
		t.Error("invite must not be expired before the expiry timestamp")
	}

	after := parseMemberProfile(row, expiry.Add(time.Minute))
	if !after.IsInviteExpired {
		t.Error("invite must be expired after the expiry timestamp")
	}
}

func TestParseMemberProfileMapping(t *testing.T) {
	row := memberProfileRow{
		UserUUID:         "user-1",
		FirstName:        "Grace",
		LastName:         "Hopper",
		IsActive:         true,
		Email:            "grace@example.com",
		OrganizationUUID: "org-1",
		Role:             "admin",
	}

	profile := parseMemberProfile(row, time.Now())

	if profile.UserUUID != "user-1" || profile.Email != "grace@example.com" {
		t.Errorf("unexpected identity mapping: %+v", profile)
	}
	if profile.OrganizationUUID != "org-1" {
		t.Errorf("expected organization org-1, got %s", profile.OrganizationUUID)
	}
	if profile.Role != types.RoleAdmin {
		t.Errorf("expected role admin, got %s", profile.Role)
	}
}

func TestOrganizationMembersQuerySQL(t *testing.T) {
	s := newQueryTestStorage()

	sqlStr, args, err := s.organizationMembersQuery(context.Background(), "org-1").ToSql()
	if err != nil {
		t.Fatalf("failed to build query: %v", err)
	}

	for _, fragment := range []string{
		"FROM organization_memberships m",
		"JOIN users u ON m.user_id = u.user_id",
		"JOIN emails e ON u.user_id = e.user_id AND e.is_primary",
		"JOIN organizations o ON m.organization_id = o.organization_id",
		"LEFT JOIN invite_links il ON u.user_uuid = il.user_uuid",
	} {
		if !strings.Contains(sqlStr, fragment) {
			t.Errorf("expected query to contain %q, got:\n%s", fragment, sqlStr)
		}
	}

	// The email join must stay inner: users without a primary email are
	// excluded, only the invite link is optional.
	if strings.Contains(sqlStr, "LEFT JOIN emails") {
		t.Errorf("email join must be inner, got:\n%s", sqlStr)
	}

	if len(args) != 1 || args[0] != "org-1" {
		t.Errorf("expected args [org-1], got %v", args)
	}
}

func TestOrganizationAdminsQuerySQL(t *testing.T) {
	s := newQueryTestStorage()

	sqlStr, args, err := s.organizationAdminsQuery(context.Background(), "org-1").ToSql()
	if err != nil {
		t.Fatalf("failed to build query: %v", err)
	}

	if !strings.Contains(sqlStr, "m.role = $") {
		t.Errorf("expected a role filter, got:\n%s", sqlStr)
	}

	foundRole := false
	for _, arg := range args {
		if arg == string(types.RoleAdmin) {
			foundRole = true
		}
	}
	if !foundRole {
		t.Errorf("expected args to carry the admin role, got %v", args)
	}
}

func TestMembersWithGroupsQuerySQL(t *testing.T) {
	s := newQueryTestStorage()

	sqlStr, args, err := s.membersWithGroupsQuery(context.Background(), "org-1", 10).ToSql()
	if err != nil {
		t.Fatalf("failed to build query: %v", err)
	}

	for _, fragment := range []string{
		"json_agg(DISTINCT jsonb_build_object('uuid', g.group_uuid, 'name', g.name)) FILTER (WHERE g.group_uuid IS NOT NULL)",
		"LEFT JOIN group_memberships gm ON u.user_id = gm.user_id",
		"LEFT JOIN groups g ON gm.group_uuid = g.group_uuid",
		"JOIN emails e ON u.user_id = e.user_id AND e.is_primary",
		"GROUP BY u.user_uuid",
		"LIMIT 10",
	} {
		if !strings.Contains(sqlStr, fragment) {
			t.Errorf("expected query to contain %q, got:\n%s", fragment, sqlStr)
		}
	}

	// LIMIT rides on the grouped statement, after aggregation, so it bounds
	// members rather than raw join rows.
	if !strings.Contains(sqlStr, "GROUP BY") || strings.Index(sqlStr, "GROUP BY") > strings.Index(sqlStr, "LIMIT") {
		t.Errorf("expected LIMIT after GROUP BY, got:\n%s", sqlStr)
	}

	if len(args) != 1 || args[0] != "org-1" {
		t.Errorf("expected args [org-1], got %v", args)
	}
}

func TestMembersWithGroupsQueryUnbounded(t *testing.T) {
	s := newQueryTestStorage()

	for _, limit := range []int64{0, -1} {
		sqlStr, _, err := s.membersWithGroupsQuery(context.Background(), "org-1", limit).ToSql()
		if err != nil {
			t.Fatalf("failed to build query: %v", err)
		}
		if strings.Contains(sqlStr, "LIMIT") {
			t.Errorf("limit %d must be unbounded, got:\n%s", limit, sqlStr)
		}
	}
}

func TestDecodeMemberGroups(t *testing.T) {
	testCases := []struct {
		name     string
		raw      []byte
		expected []types.OrganizationMemberGroup
		wantErr  bool
	}{
		{
			name:     "empty payload",
			raw:      nil,
			expected: []types.OrganizationMemberGroup{},
		},
		{
			name:     "empty array",
			raw:      []byte(`[]`),
			expected: []types.OrganizationMemberGroup{},
		},
		{
			name: "distinct pairs",
			raw:  []byte(`[{"uuid":"g-1","name":"Finance"},{"uuid":"g-2","name":"Marketing"}]`),
			expected: []types.OrganizationMemberGroup{
				{UUID: "g-1", Name: "Finance"},
				{UUID: "g-2", Name: "Marketing"},
			},
		},
		{
			name:    "malformed payload",
			raw:     []byte(`{`),
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			groups, err := decodeMemberGroups(tc.raw)

			if tc.wantErr {
				if err == nil {
					t.Fatal("expected decode error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if groups == nil {
				t.Fatal("groups must never be nil")
			}
			if len(groups) != len(tc.expected) {
				t.Fatalf("expected %d groups, got %d", len(tc.expected), len(groups))
			}
			for i, g := range groups {
				if g != tc.expected[i] {
					t.Errorf("group %d: expected %+v, got %+v", i, tc.expected[i], g)
				}
			}
		})
	}
}
