// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/lumibase/member-service/internal/types"
)

// CreateUser persists a new user together with their primary email. Both
// inserts run on the statement builder from the context, so a caller holding
// a lazy transaction gets user and email committed atomically.
func (s *Storage) CreateUser(ctx context.Context, user *types.UserIn) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	var newUser types.User
	err = s.db.Statement(ctx).
		Insert("users").
		Columns("user_uuid", "first_name", "last_name", "password_hash", "is_active").
		Values(id.String(), user.FirstName, user.LastName, user.PasswordHash, user.IsActive).
		Suffix("RETURNING user_id, user_uuid, first_name, last_name, is_active, created_at").
		QueryRowContext(ctx).
		Scan(&newUser.ID, &newUser.UUID, &newUser.FirstName, &newUser.LastName, &newUser.IsActive, &newUser.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("emails").
		Columns("user_id", "email", "is_primary").
		Values(newUser.ID, user.Email, true).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("email already in use: %w", ErrDuplicateKey)
		}
		return nil, fmt.Errorf("failed to insert primary email: %w", err)
	}

	newUser.Email = user.Email

	return &newUser, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("u.user_id", "u.user_uuid", "u.first_name", "u.last_name", "u.is_active", "u.created_at", "e.email").
		From("users u").
		Join("emails e ON u.user_id = e.user_id AND e.is_primary").
		Where(sq.Eq{"e.email": email}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.UUID, &u.FirstName, &u.LastName, &u.IsActive, &u.CreatedAt, &u.Email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &u, nil
}

func (s *Storage) CreateOrganization(ctx context.Context, name string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization ID: %w", err)
	}

	var org types.Organization
	err = s.db.Statement(ctx).
		Insert("organizations").
		Columns("organization_uuid", "organization_name").
		Values(id.String(), name).
		Suffix("RETURNING organization_id, organization_uuid, organization_name, created_at").
		QueryRowContext(ctx).
		Scan(&org.ID, &org.UUID, &org.Name, &org.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert organization: %w", err)
	}

	return &org, nil
}

func (s *Storage) GetOrganizationByUUID(ctx context.Context, organizationUUID string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByUUID")
	defer span.End()

	var org types.Organization
	err := s.db.Statement(ctx).
		Select("organization_id", "organization_uuid", "organization_name", "created_at").
		From("organizations").
		Where(sq.Eq{"organization_uuid": organizationUUID}).
		QueryRowContext(ctx).
		Scan(&org.ID, &org.UUID, &org.Name, &org.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &org, nil
}

func (s *Storage) CreateGroup(ctx context.Context, organizationUUID, name string) (*types.Group, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateGroup")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate group ID: %w", err)
	}

	var g types.Group
	err = s.db.Statement(ctx).
		Insert("groups").
		Columns("group_uuid", "organization_id", "name").
		Select(
			sq.Select().
				Column(sq.Expr("?", id.String())).
				Column("o.organization_id").
				Column(sq.Expr("?", name)).
				From("organizations o").
				Where(sq.Eq{"o.organization_uuid": organizationUUID}),
		).
		Suffix("RETURNING group_uuid, name, created_at").
		QueryRowContext(ctx).
		Scan(&g.UUID, &g.Name, &g.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("organization does not exist: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to insert group: %w", err)
	}

	g.OrganizationUUID = organizationUUID

	return &g, nil
}

func (s *Storage) AddGroupMember(ctx context.Context, groupUUID, userUUID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddGroupMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Insert("group_memberships").
		Columns("group_uuid", "user_id").
		Select(
			sq.Select().
				Column(sq.Expr("?", groupUUID)).
				Column("u.user_id").
				From("users u").
				Where(sq.Eq{"u.user_uuid": userUUID}),
		).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return fmt.Errorf("group membership already exists: %w", ErrDuplicateKey)
		}
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("group does not exist: %w", ErrForeignKeyViolation)
		}
		return fmt.Errorf("failed to add group member: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user does not exist: %w", ErrNotFound)
	}

	return nil
}
