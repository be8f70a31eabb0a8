// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/lumibase/member-service/internal/logging"
	"github.com/lumibase/member-service/internal/storage"
	"github.com/lumibase/member-service/internal/types"
	"github.com/lumibase/member-service/pkg/authentication"
)

type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateGroupRequest struct {
	Name string `json:"name" validate:"required"`
}

type AddGroupMemberRequest struct {
	UserUUID string `json:"user_uuid" validate:"required,uuid"`
}

type CreateMembershipRequest struct {
	UserUUID string `json:"user_uuid" validate:"required,uuid"`
	Role     string `json:"role" validate:"required,oneof=admin editor member viewer"`
}

type UpdateMembershipRequest struct {
	Role *string `json:"role" validate:"omitempty,oneof=admin editor member viewer"`
}

type API struct {
	service ServiceInterface
	authz   AuthzInterface

	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, authz AuthzInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		authz:    authz,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v1/organizations", a.createOrganization)
	mux.Get("/api/v1/organizations/{organizationUUID}", a.getOrganization)
	mux.Get("/api/v1/organizations/{organizationUUID}/users", a.listMembers)
	mux.Post("/api/v1/organizations/{organizationUUID}/users", a.createMembership)
	mux.Get("/api/v1/organizations/{organizationUUID}/users/{userUUID}", a.getMember)
	mux.Patch("/api/v1/organizations/{organizationUUID}/users/{userUUID}", a.updateMember)
	mux.Get("/api/v1/organizations/{organizationUUID}/admins", a.listAdmins)
	mux.Post("/api/v1/organizations/{organizationUUID}/groups", a.createGroup)
	mux.Post("/api/v1/groups/{groupUUID}/users", a.addGroupMember)
}

// createOrganization bootstraps a new organization. It is deliberately not
// gated on membership checks: a fresh organization has no members yet.
func (a *API) createOrganization(w http.ResponseWriter, r *http.Request) {
	var req CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	org, err := a.service.CreateOrganization(r.Context(), req.Name)
	if err != nil {
		a.serviceError(w, err, "failed to create organization")
		return
	}

	a.jsonResponse(w, http.StatusCreated, org)
}

func (a *API) getOrganization(w http.ResponseWriter, r *http.Request) {
	organizationUUID := chi.URLParam(r, "organizationUUID")

	org, err := a.service.GetOrganizationByUUID(r.Context(), organizationUUID)
	if err != nil {
		a.serviceError(w, err, "failed to get organization")
		return
	}

	a.jsonResponse(w, http.StatusOK, org)
}

func (a *API) createGroup(w http.ResponseWriter, r *http.Request) {
	organizationUUID := chi.URLParam(r, "organizationUUID")

	if !a.authorize(w, r, organizationUUID) {
		return
	}

	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	group, err := a.service.CreateGroup(r.Context(), organizationUUID, req.Name)
	if err != nil {
		a.serviceError(w, err, "failed to create group")
		return
	}

	a.jsonResponse(w, http.StatusCreated, group)
}

func (a *API) addGroupMember(w http.ResponseWriter, r *http.Request) {
	groupUUID := chi.URLParam(r, "groupUUID")

	var req AddGroupMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.service.AddGroupMember(r.Context(), groupUUID, req.UserUUID); err != nil {
		a.serviceError(w, err, "failed to add group member")
		return
	}

	a.jsonResponse(w, http.StatusCreated, map[string]string{
		"group_uuid": groupUUID,
		"user_uuid":  req.UserUUID,
	})
}

// listMembers returns plain member profiles, or profiles with aggregated
// groups when the includeGroups query parameter is present. The parameter's
// value bounds the number of members returned.
func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	organizationUUID := chi.URLParam(r, "organizationUUID")

	if rawLimit := r.URL.Query().Get("includeGroups"); rawLimit != "" {
		limit, err := strconv.ParseInt(rawLimit, 10, 64)
		if err != nil {
			a.jsonError(w, http.StatusBadRequest, "includeGroups must be an integer")
			return
		}

		members, err := a.service.ListOrganizationMembersWithGroups(r.Context(), organizationUUID, limit)
		if err != nil {
			a.serviceError(w, err, "failed to list organization members with groups")
			return
		}

		a.jsonResponse(w, http.StatusOK, members)
		return
	}

	members, err := a.service.ListOrganizationMembers(r.Context(), organizationUUID)
	if err != nil {
		a.serviceError(w, err, "failed to list organization members")
		return
	}

	a.jsonResponse(w, http.StatusOK, members)
}

func (a *API) listAdmins(w http.ResponseWriter, r *http.Request) {
	organizationUUID := chi.URLParam(r, "organizationUUID")

	admins, err := a.service.ListOrganizationAdmins(r.Context(), organizationUUID)
	if err != nil {
		a.serviceError(w, err, "failed to list organization admins")
		return
	}

	a.jsonResponse(w, http.StatusOK, admins)
}

func (a *API) getMember(w http.ResponseWriter, r *http.Request) {
	organizationUUID := chi.URLParam(r, "organizationUUID")
	userUUID := chi.URLParam(r, "userUUID")

	member, err := a.service.GetOrganizationMember(r.Context(), organizationUUID, userUUID)
	if err != nil {
		a.serviceError(w, err, "failed to get organization member")
		return
	}

	a.jsonResponse(w, http.StatusOK, member)
}

func (a *API) createMembership(w http.ResponseWriter, r *http.Request) {
	organizationUUID := chi.URLParam(r, "organizationUUID")

	if !a.authorize(w, r, organizationUUID) {
		return
	}

	var req CreateMembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	member, err := a.service.CreateOrganizationMembership(r.Context(), organizationUUID, req.UserUUID, types.OrganizationMemberRole(req.Role))
	if err != nil {
		a.serviceError(w, err, "failed to create organization membership")
		return
	}

	a.jsonResponse(w, http.StatusCreated, member)
}

func (a *API) updateMember(w http.ResponseWriter, r *http.Request) {
	organizationUUID := chi.URLParam(r, "organizationUUID")
	userUUID := chi.URLParam(r, "userUUID")

	if !a.authorize(w, r, organizationUUID) {
		return
	}

	var req UpdateMembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	var update types.OrganizationMemberProfileUpdate
	if req.Role != nil {
		role := types.OrganizationMemberRole(*req.Role)
		update.Role = &role
	}

	member, err := a.service.UpdateOrganizationMember(r.Context(), organizationUUID, userUUID, update)
	if err != nil {
		a.serviceError(w, err, "failed to update organization member")
		return
	}

	a.jsonResponse(w, http.StatusOK, member)
}

// authorize checks the acting user may manage members of the organization.
// With authentication disabled the wiring injects a noop authorizer and the
// check passes without an actor.
func (a *API) authorize(w http.ResponseWriter, r *http.Request, organizationUUID string) bool {
	actorUUID, _ := authentication.GetUserID(r.Context())

	allowed, err := a.authz.CanManageMembers(r.Context(), organizationUUID, actorUUID)
	if err != nil {
		a.serviceError(w, err, "failed to check permissions")
		return false
	}
	if !allowed {
		a.jsonError(w, http.StatusForbidden, "not allowed to manage members")
		return false
	}

	return true
}

func (a *API) serviceError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrForeignKeyViolation):
		a.jsonError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrDuplicateKey):
		a.jsonError(w, http.StatusConflict, err.Error())
	default:
		a.logger.Errorf("%s: %v", message, err)
		a.jsonError(w, http.StatusInternalServerError, message)
	}
}

func (a *API) jsonResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) jsonError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	}); err != nil {
		a.logger.Errorf("failed to encode error response: %v", err)
	}
}
