// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumibase/member-service/internal/config"
	"github.com/lumibase/member-service/internal/logging"
	"github.com/lumibase/member-service/internal/monitoring"
	"github.com/lumibase/member-service/internal/storage"
	"github.com/lumibase/member-service/internal/tracing"
	"github.com/lumibase/member-service/internal/types"
)

func newTestRegistrationService(spec *config.EnvSpec, storage StorageInterface, analytics AnalyticsInterface) *Service {
	return NewService(
		storage,
		analytics,
		NewOptionsBuilder(spec),
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestService_RegisterUser(t *testing.T) {
	req := &RegisterUserRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "correct-horse-battery",
	}

	created := &types.User{
		UUID:      "6b2d1f04-9f3a-4a77-bd0e-1c3f9c1f64aa",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		IsActive:  true,
	}

	t.Run("user created with hashed password and identify event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockAnalytics := NewMockAnalyticsInterface(ctrl)

		mockStorage.EXPECT().GetUserByEmail(gomock.Any(), req.Email).Return(nil, storage.ErrNotFound)
		mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, in *types.UserIn) (*types.User, error) {
				if in.Email != req.Email || in.FirstName != req.FirstName || in.LastName != req.LastName {
					t.Errorf("unexpected user input: %+v", in)
				}
				if !in.IsActive {
					t.Error("registered users must be active")
				}
				if in.PasswordHash == req.Password {
					t.Error("password must be hashed before storage")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(in.PasswordHash), []byte(req.Password)); err != nil {
					t.Errorf("stored hash does not match the password: %v", err)
				}
				return created, nil
			})
		mockAnalytics.EXPECT().Identify(gomock.Any(), created.UUID, gomock.Any())

		s := newTestRegistrationService(&config.EnvSpec{SiteURL: "https://example.com"}, mockStorage, mockAnalytics)

		user, err := s.RegisterUser(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.UUID != created.UUID {
			t.Errorf("expected user %q, got %q", created.UUID, user.UUID)
		}
	})

	t.Run("password sign-up rejected when disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockAnalytics := NewMockAnalyticsInterface(ctrl)

		spec := &config.EnvSpec{SiteURL: "https://example.com", PasswordAuthDisabled: true}
		s := newTestRegistrationService(spec, mockStorage, mockAnalytics)

		_, err := s.RegisterUser(context.Background(), req)
		if !errors.Is(err, ErrPasswordAuthDisabled) {
			t.Fatalf("expected ErrPasswordAuthDisabled, got %v", err)
		}
	})

	t.Run("existing email surfaces as conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockAnalytics := NewMockAnalyticsInterface(ctrl)

		mockStorage.EXPECT().GetUserByEmail(gomock.Any(), req.Email).Return(created, nil)

		s := newTestRegistrationService(&config.EnvSpec{SiteURL: "https://example.com"}, mockStorage, mockAnalytics)

		_, err := s.RegisterUser(context.Background(), req)
		if !errors.Is(err, storage.ErrDuplicateKey) {
			t.Fatalf("expected duplicate key error, got %v", err)
		}
	})

	t.Run("insert race still surfaces as conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockAnalytics := NewMockAnalyticsInterface(ctrl)

		mockStorage.EXPECT().GetUserByEmail(gomock.Any(), req.Email).Return(nil, storage.ErrNotFound)
		mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)

		s := newTestRegistrationService(&config.EnvSpec{SiteURL: "https://example.com"}, mockStorage, mockAnalytics)

		_, err := s.RegisterUser(context.Background(), req)
		if !errors.Is(err, storage.ErrDuplicateKey) {
			t.Fatalf("expected duplicate key error, got %v", err)
		}
	})
}
