// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"github.com/lumibase/member-service/internal/config"
)

// Provider names as they appear in capability snapshots and sign-up options.
const (
	ProviderGoogle   = "google"
	ProviderOkta     = "okta"
	ProviderOneLogin = "oneLogin"
	ProviderAzureAD  = "azuread"
)

type ProviderCapability struct {
	Enabled bool `json:"enabled"`
}

// AuthCapabilities is the authentication section of the health payload.
// Clients derive the available sign-up paths from it.
type AuthCapabilities struct {
	DisablePasswordAuthentication bool               `json:"disable_password_authentication"`
	Google                        ProviderCapability `json:"google"`
	Okta                          ProviderCapability `json:"okta"`
	OneLogin                      ProviderCapability `json:"oneLogin"`
	AzureAD                       ProviderCapability `json:"azuread"`
}

// CapabilitiesFromSpec maps the environment configuration to the capability
// snapshot served to clients.
func CapabilitiesFromSpec(spec *config.EnvSpec) AuthCapabilities {
	return AuthCapabilities{
		DisablePasswordAuthentication: spec.PasswordAuthDisabled,
		Google:                        ProviderCapability{Enabled: spec.GoogleAuthEnabled},
		Okta:                          ProviderCapability{Enabled: spec.OktaAuthEnabled},
		OneLogin:                      ProviderCapability{Enabled: spec.OneLoginAuthEnabled},
		AzureAD:                       ProviderCapability{Enabled: spec.AzureADAuthEnabled},
	}
}

// SignupProvider is one federated sign-up affordance.
type SignupProvider struct {
	Name      string `json:"name"`
	SignInURL string `json:"sign_in_url"`
	Intent    string `json:"intent"`
	Redirect  string `json:"redirect"`
}

// RegistrationOptions describes the sign-up paths a client should offer.
// ShowDivider is set only when both the password form and at least one
// federated provider are available.
type RegistrationOptions struct {
	PasswordEnabled bool             `json:"password_enabled"`
	Providers       []SignupProvider `json:"providers"`
	ShowDivider     bool             `json:"show_divider"`
}

type RegisterUserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}
