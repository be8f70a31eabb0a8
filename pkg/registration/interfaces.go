// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"context"

	"github.com/lumibase/member-service/internal/types"
)

type ServiceInterface interface {
	SignupOptions(ctx context.Context, redirect string) RegistrationOptions
	RegisterUser(ctx context.Context, req *RegisterUserRequest) (*types.User, error)
}

// StorageInterface is the subset of the storage layer this package consumes.
type StorageInterface interface {
	CreateUser(ctx context.Context, user *types.UserIn) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
}

// AnalyticsInterface receives product analytics events. Identify announces a
// newly registered user.
type AnalyticsInterface interface {
	Identify(ctx context.Context, userUUID string, traits map[string]string)
}
