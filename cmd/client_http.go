// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lumibase/member-service/internal/types"
	"github.com/lumibase/member-service/pkg/registration"
)

// memberClient is a thin REST client over the service API used by the CLI
// commands.
type memberClient struct {
	endpoint string
	token    string
	client   *http.Client
}

func newMemberClient() *memberClient {
	endpoint := httpEndpoint
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}
	endpoint = strings.TrimSuffix(endpoint, "/")

	return &memberClient{
		endpoint: endpoint,
		token:    authToken,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *memberClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}
	return nil
}

func (c *memberClient) CreateOrganization(ctx context.Context, name string) (*types.Organization, error) {
	out := new(types.Organization)
	body := map[string]string{"name": name}
	err := c.do(ctx, http.MethodPost, "/api/v1/organizations", body, out)
	return out, err
}

func (c *memberClient) GetOrganization(ctx context.Context, organizationUUID string) (*types.Organization, error) {
	out := new(types.Organization)
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/organizations/%s", organizationUUID), nil, out)
	return out, err
}

func (c *memberClient) CreateGroup(ctx context.Context, organizationUUID, name string) (*types.Group, error) {
	out := new(types.Group)
	body := map[string]string{"name": name}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/organizations/%s/groups", organizationUUID), body, out)
	return out, err
}

func (c *memberClient) AddGroupMember(ctx context.Context, groupUUID, userUUID string) error {
	body := map[string]string{"user_uuid": userUUID}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/groups/%s/users", groupUUID), body, nil)
}

func (c *memberClient) ListMembers(ctx context.Context, organizationUUID string) ([]*types.OrganizationMemberProfile, error) {
	var out []*types.OrganizationMemberProfile
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/organizations/%s/users", organizationUUID), nil, &out)
	return out, err
}

func (c *memberClient) ListMembersWithGroups(ctx context.Context, organizationUUID string, limit int64) ([]*types.OrganizationMemberProfileWithGroups, error) {
	var out []*types.OrganizationMemberProfileWithGroups
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/organizations/%s/users?includeGroups=%d", organizationUUID, limit), nil, &out)
	return out, err
}

func (c *memberClient) ListAdmins(ctx context.Context, organizationUUID string) ([]*types.OrganizationMemberProfile, error) {
	var out []*types.OrganizationMemberProfile
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/organizations/%s/admins", organizationUUID), nil, &out)
	return out, err
}

func (c *memberClient) GetMember(ctx context.Context, organizationUUID, userUUID string) (*types.OrganizationMemberProfile, error) {
	out := new(types.OrganizationMemberProfile)
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/organizations/%s/users/%s", organizationUUID, userUUID), nil, out)
	return out, err
}

func (c *memberClient) CreateMembership(ctx context.Context, organizationUUID, userUUID, role string) (*types.OrganizationMemberProfile, error) {
	out := new(types.OrganizationMemberProfile)
	body := map[string]string{"user_uuid": userUUID, "role": role}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/organizations/%s/users", organizationUUID), body, out)
	return out, err
}

func (c *memberClient) UpdateMemberRole(ctx context.Context, organizationUUID, userUUID, role string) (*types.OrganizationMemberProfile, error) {
	out := new(types.OrganizationMemberProfile)
	body := map[string]string{"role": role}
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/organizations/%s/users/%s", organizationUUID, userUUID), body, out)
	return out, err
}

func (c *memberClient) SignupOptions(ctx context.Context) (*registration.RegistrationOptions, error) {
	out := new(registration.RegistrationOptions)
	err := c.do(ctx, http.MethodGet, "/api/v1/register/options", nil, out)
	return out, err
}

func (c *memberClient) RegisterUser(ctx context.Context, req *registration.RegisterUserRequest) (*types.User, error) {
	out := new(types.User)
	err := c.do(ctx, http.MethodPost, "/api/v1/user", req, out)
	return out, err
}
