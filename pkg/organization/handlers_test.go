// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/lumibase/member-service/internal/logging"
	"github.com/lumibase/member-service/internal/storage"
	"github.com/lumibase/member-service/internal/types"
)

const (
	testOrgUUID  = "4a29a7fc-9902-47b0-a1a5-b0d3f6bf7d82"
	testUserUUID = "6b2d1f04-9f3a-4a77-bd0e-1c3f9c1f64aa"
)

func setupAPITest(t *testing.T) (*MockServiceInterface, *MockAuthzInterface, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)

	mux := chi.NewMux()
	NewAPI(mockService, mockAuthz, logging.NewNoopLogger()).RegisterEndpoints(mux)

	return mockService, mockAuthz, mux
}

func TestHandleGetMember(t *testing.T) {
	profile := &types.OrganizationMemberProfile{
		UserUUID:         testUserUUID,
		FirstName:        "Ada",
		LastName:         "Lovelace",
		Email:            "ada@example.com",
		OrganizationUUID: testOrgUUID,
		Role:             types.RoleAdmin,
		IsActive:         true,
	}

	testCases := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "member returned",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().GetOrganizationMember(gomock.Any(), testOrgUUID, testUserUUID).Return(profile, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing member maps to 404",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().GetOrganizationMember(gomock.Any(), testOrgUUID, testUserUUID).Return(
					nil, fmt.Errorf("organization member not found: %w", storage.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "storage failure maps to 500",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().GetOrganizationMember(gomock.Any(), testOrgUUID, testUserUUID).Return(
					nil, fmt.Errorf("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, _, mux := setupAPITest(t)
			tc.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/organizations/%s/users/%s", testOrgUUID, testUserUUID), nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}

			if tc.expectedStatus == http.StatusOK {
				var got types.OrganizationMemberProfile
				if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if got.UserUUID != profile.UserUUID || got.Role != profile.Role {
					t.Errorf("expected %+v, got %+v", profile, got)
				}
			}
		})
	}
}

func TestHandleListMembers(t *testing.T) {
	members := []*types.OrganizationMemberProfile{
		{UserUUID: testUserUUID, OrganizationUUID: testOrgUUID, Role: types.RoleMember},
	}
	withGroups := []*types.OrganizationMemberProfileWithGroups{
		{
			OrganizationMemberProfile: *members[0],
			Groups:                    []types.OrganizationMemberGroup{{UUID: "g-1", Name: "analysts"}},
		},
	}

	testCases := []struct {
		name           string
		target         string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "plain member list",
			target: fmt.Sprintf("/api/v1/organizations/%s/users", testOrgUUID),
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().ListOrganizationMembers(gomock.Any(), testOrgUUID).Return(members, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   testUserUUID,
		},
		{
			name:   "includeGroups switches to the aggregated query",
			target: fmt.Sprintf("/api/v1/organizations/%s/users?includeGroups=10", testOrgUUID),
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().ListOrganizationMembersWithGroups(gomock.Any(), testOrgUUID, int64(10)).Return(withGroups, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "analysts",
		},
		{
			name:           "non-integer includeGroups rejected",
			target:         fmt.Sprintf("/api/v1/organizations/%s/users?includeGroups=many", testOrgUUID),
			setupMocks:     func(mockService *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, _, mux := setupAPITest(t)
			tc.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}

			if tc.expectedBody != "" {
				body, _ := io.ReadAll(rr.Body)
				if !strings.Contains(string(body), tc.expectedBody) {
					t.Errorf("expected body to contain %q, got %q", tc.expectedBody, string(body))
				}
			}
		})
	}
}

func TestHandleListAdmins(t *testing.T) {
	admins := []*types.OrganizationMemberProfile{
		{UserUUID: testUserUUID, OrganizationUUID: testOrgUUID, Role: types.RoleAdmin},
	}

	mockService, _, mux := setupAPITest(t)
	mockService.EXPECT().ListOrganizationAdmins(gomock.Any(), testOrgUUID).Return(admins, nil)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/organizations/%s/admins", testOrgUUID), nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var got []*types.OrganizationMemberProfile
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 1 || got[0].Role != types.RoleAdmin {
		t.Errorf("expected one admin, got %+v", got)
	}
}

func TestHandleCreateMembership(t *testing.T) {
	profile := &types.OrganizationMemberProfile{
		UserUUID:         testUserUUID,
		OrganizationUUID: testOrgUUID,
		Role:             types.RoleEditor,
	}

	validBody := fmt.Sprintf(`{"user_uuid": %q, "role": "editor"}`, testUserUUID)

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface, *MockAuthzInterface)
		expectedStatus int
	}{
		{
			name: "membership created",
			body: validBody,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanManageMembers(gomock.Any(), testOrgUUID, gomock.Any()).Return(true, nil)
				mockService.EXPECT().CreateOrganizationMembership(gomock.Any(), testOrgUUID, testUserUUID, types.RoleEditor).Return(profile, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "forbidden without manage permission",
			body: validBody,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanManageMembers(gomock.Any(), testOrgUUID, gomock.Any()).Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "invalid role rejected",
			body: fmt.Sprintf(`{"user_uuid": %q, "role": "owner"}`, testUserUUID),
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanManageMembers(gomock.Any(), testOrgUUID, gomock.Any()).Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "malformed body rejected",
			body: `{"user_uuid": `,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanManageMembers(gomock.Any(), testOrgUUID, gomock.Any()).Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate membership maps to 409",
			body: validBody,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanManageMembers(gomock.Any(), testOrgUUID, gomock.Any()).Return(true, nil)
				mockService.EXPECT().CreateOrganizationMembership(gomock.Any(), testOrgUUID, testUserUUID, types.RoleEditor).Return(
					nil, fmt.Errorf("membership already exists: %w", storage.ErrDuplicateKey))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "unknown user or organization maps to 404",
			body: validBody,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanManageMembers(gomock.Any(), testOrgUUID, gomock.Any()).Return(true, nil)
				mockService.EXPECT().CreateOrganizationMembership(gomock.Any(), testOrgUUID, testUserUUID, types.RoleEditor).Return(
					nil, fmt.Errorf("user or organization not found: %w", storage.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, mockAuthz, mux := setupAPITest(t)
			tc.setupMocks(mockService, mockAuthz)

			req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/organizations/%s/users", testOrgUUID), strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
		})
	}
}

func TestHandleCreateOrganization(t *testing.T) {
	org := &types.Organization{UUID: testOrgUUID, Name: "lumibase"}

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "organization created",
			body: `{"name": "lumibase"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().CreateOrganization(gomock.Any(), "lumibase").Return(org, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name rejected",
			body:           `{}`,
			setupMocks:     func(mockService *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body rejected",
			body:           `{"name": `,
			setupMocks:     func(mockService *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, _, mux := setupAPITest(t)
			tc.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/organizations", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}

			if tc.expectedStatus == http.StatusCreated {
				var got types.Organization
				if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if got.UUID != org.UUID || got.Name != org.Name {
					t.Errorf("expected %+v, got %+v", org, got)
				}
			}
		})
	}
}

func TestHandleGetOrganization(t *testing.T) {
	org := &types.Organization{UUID: testOrgUUID, Name: "lumibase"}

	testCases := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "organization returned",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().GetOrganizationByUUID(gomock.Any(), testOrgUUID).Return(org, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing organization maps to 404",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().GetOrganizationByUUID(gomock.Any(), testOrgUUID).Return(
					nil, fmt.Errorf("organization not found: %w", storage.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, _, mux := setupAPITest(t)
			tc.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/organizations/%s", testOrgUUID), nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
		})
	}
}

func TestHandleCreateGroup(t *testing.T) {
	group := &types.Group{UUID: "7f1f5b1a-0c0a-4f21-8d8f-2f9a6c1de111", OrganizationUUID: testOrgUUID, Name: "analysts"}

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface, *MockAuthzInterface)
		expectedStatus int
	}{
		{
			name: "group created",
			body: `{"name": "analysts"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanManageMembers(gomock.Any(), testOrgUUID, gomock.Any()).Return(true, nil)
				mockService.EXPECT().CreateGroup(gomock.Any(), testOrgUUID, "analysts").Return(group, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "forbidden without manage permission",
			body: `{"name": "analysts"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanManageMembers(gomock.Any(), testOrgUUID, gomock.Any()).Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "duplicate group name maps to 409",
			body: `{"name": "analysts"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanManageMembers(gomock.Any(), testOrgUUID, gomock.Any()).Return(true, nil)
				mockService.EXPECT().CreateGroup(gomock.Any(), testOrgUUID, "analysts").Return(
					nil, fmt.Errorf("group already exists: %w", storage.ErrDuplicateKey))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "missing name rejected",
			body: `{}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanManageMembers(gomock.Any(), testOrgUUID, gomock.Any()).Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, mockAuthz, mux := setupAPITest(t)
			tc.setupMocks(mockService, mockAuthz)

			req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/organizations/%s/groups", testOrgUUID), strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
		})
	}
}

func TestHandleAddGroupMember(t *testing.T) {
	groupUUID := "7f1f5b1a-0c0a-4f21-8d8f-2f9a6c1de111"
	validBody := fmt.Sprintf(`{"user_uuid": %q}`, testUserUUID)

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "member added to group",
			body: validBody,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().AddGroupMember(gomock.Any(), groupUUID, testUserUUID).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "unknown group or user maps to 404",
			body: validBody,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().AddGroupMember(gomock.Any(), groupUUID, testUserUUID).Return(
					fmt.Errorf("group or user not found: %w", storage.ErrForeignKeyViolation))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "duplicate group membership maps to 409",
			body: validBody,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().AddGroupMember(gomock.Any(), groupUUID, testUserUUID).Return(
					fmt.Errorf("group membership already exists: %w", storage.ErrDuplicateKey))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "invalid user uuid rejected",
			body:           `{"user_uuid": "not-a-uuid"}`,
			setupMocks:     func(mockService *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, _, mux := setupAPITest(t)
			tc.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/groups/%s/users", groupUUID), strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
		})
	}
}

func TestHandleUpdateMember(t *testing.T) {
	admin := types.RoleAdmin
	profile := &types.OrganizationMemberProfile{
		UserUUID:         testUserUUID,
		OrganizationUUID: testOrgUUID,
		Role:             types.RoleAdmin,
	}

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface, *MockAuthzInterface)
		expectedStatus int
	}{
		{
			name: "role updated",
			body: `{"role": "admin"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanManageMembers(gomock.Any(), testOrgUUID, gomock.Any()).Return(true, nil)
				mockService.EXPECT().UpdateOrganizationMember(gomock.Any(), testOrgUUID, testUserUUID,
					types.OrganizationMemberProfileUpdate{Role: &admin}).Return(profile, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "empty update returns the current profile",
			body: `{}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanManageMembers(gomock.Any(), testOrgUUID, gomock.Any()).Return(true, nil)
				mockService.EXPECT().UpdateOrganizationMember(gomock.Any(), testOrgUUID, testUserUUID,
					types.OrganizationMemberProfileUpdate{}).Return(profile, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing member maps to 404",
			body: `{"role": "admin"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanManageMembers(gomock.Any(), testOrgUUID, gomock.Any()).Return(true, nil)
				mockService.EXPECT().UpdateOrganizationMember(gomock.Any(), testOrgUUID, testUserUUID,
					types.OrganizationMemberProfileUpdate{Role: &admin}).Return(
					nil, fmt.Errorf("organization member not found: %w", storage.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "invalid role rejected",
			body: `{"role": "owner"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanManageMembers(gomock.Any(), testOrgUUID, gomock.Any()).Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "forbidden without manage permission",
			body: `{"role": "admin"}`,
			setupMocks: func(mockService *MockServiceInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CanManageMembers(gomock.Any(), testOrgUUID, gomock.Any()).Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, mockAuthz, mux := setupAPITest(t)
			tc.setupMocks(mockService, mockAuthz)

			req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/api/v1/organizations/%s/users/%s", testOrgUUID, testUserUUID), strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
		})
	}
}
