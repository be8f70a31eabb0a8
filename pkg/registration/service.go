// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/lumibase/member-service/internal/logging"
	"github.com/lumibase/member-service/internal/monitoring"
	"github.com/lumibase/member-service/internal/storage"
	"github.com/lumibase/member-service/internal/tracing"
	"github.com/lumibase/member-service/internal/types"
)

// ErrPasswordAuthDisabled rejects password sign-up when the deployment only
// allows federated providers.
var ErrPasswordAuthDisabled = errors.New("password authentication is disabled")

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	analytics AnalyticsInterface
	options   *OptionsBuilder

	passwordDisabled bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	analytics AnalyticsInterface,
	options *OptionsBuilder,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:          storage,
		analytics:        analytics,
		options:          options,
		passwordDisabled: options.caps.DisablePasswordAuthentication,
		tracer:           tracer,
		monitor:          monitor,
		logger:           logger,
	}
}

func (s *Service) SignupOptions(ctx context.Context, redirect string) RegistrationOptions {
	_, span := s.tracer.Start(ctx, "registration.Service.SignupOptions")
	defer span.End()

	return s.options.SignupOptions(redirect)
}

// RegisterUser creates the user with their primary email and announces the
// new identity to analytics. The password never leaves this method unhashed.
func (s *Service) RegisterUser(ctx context.Context, req *RegisterUserRequest) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "registration.Service.RegisterUser")
	defer span.End()

	if s.passwordDisabled {
		return nil, ErrPasswordAuthDisabled
	}

	if _, err := s.storage.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", storage.ErrDuplicateKey)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.storage.CreateUser(ctx, &types.UserIn{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return nil, err
	}

	s.logger.Security().UserCreated(user.UUID)
	s.analytics.Identify(ctx, user.UUID, map[string]string{
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	})

	return user, nil
}
