// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/lumibase/member-service/internal/logging"
	"github.com/lumibase/member-service/internal/monitoring"
	"github.com/lumibase/member-service/internal/tracing"
	"github.com/lumibase/member-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_authorization.go -source=./interfaces.go

func TestAuthorizer_CanManageMembers(t *testing.T) {
	orgUUID := "org-1"
	userUUID := "user-1"
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expected    bool
		expectedErr error
	}{
		{
			name: "admin is allowed",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().FindOrganizationMember(gomock.Any(), orgUUID, userUUID).Return(
					&types.OrganizationMemberProfile{UserUUID: userUUID, Role: types.RoleAdmin}, nil)
			},
			expected: true,
		},
		{
			name: "member is denied",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().FindOrganizationMember(gomock.Any(), orgUUID, userUUID).Return(
					&types.OrganizationMemberProfile{UserUUID: userUUID, Role: types.RoleMember}, nil)
			},
			expected: false,
		},
		{
			name: "non-member is denied",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().FindOrganizationMember(gomock.Any(), orgUUID, userUUID).Return(nil, nil)
			},
			expected: false,
		},
		{
			name: "storage error propagates",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().FindOrganizationMember(gomock.Any(), orgUUID, userUUID).Return(nil, dbErr)
			},
			expected:    false,
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			a := NewAuthorizer(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			allowed, err := a.CanManageMembers(context.Background(), orgUUID, userUUID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if allowed != tc.expected {
				t.Errorf("expected allowed %v, got %v", tc.expected, allowed)
			}
		})
	}
}

func TestNoopAuthorizerAllowsEverything(t *testing.T) {
	a := NewNoopAuthorizer()

	allowed, err := a.CanManageMembers(context.Background(), "org-1", "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Error("noop authorizer must allow")
	}
}
