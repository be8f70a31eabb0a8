// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"fmt"
	"net/url"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/microsoft"

	"github.com/lumibase/member-service/internal/config"
)

// signupIntent marks authorization requests that originate from the sign-up
// flow rather than a plain login.
const signupIntent = "signup"

const defaultRedirect = "/"

type providerEntry struct {
	name   string
	oauth2 *oauth2.Config
}

// OptionsBuilder derives sign-up options from the configured capabilities.
// The mapping is deterministic: the same configuration and redirect always
// produce the same options.
type OptionsBuilder struct {
	caps      AuthCapabilities
	providers []providerEntry
}

func NewOptionsBuilder(spec *config.EnvSpec) *OptionsBuilder {
	b := new(OptionsBuilder)
	b.caps = CapabilitiesFromSpec(spec)

	scopes := []string{"openid", "profile", "email"}

	if spec.GoogleAuthEnabled {
		b.providers = append(b.providers, providerEntry{
			name: ProviderGoogle,
			oauth2: &oauth2.Config{
				ClientID:    spec.GoogleClientID,
				Endpoint:    google.Endpoint,
				RedirectURL: callbackURL(spec.SiteURL, ProviderGoogle),
				Scopes:      scopes,
			},
		})
	}

	if spec.OktaAuthEnabled {
		b.providers = append(b.providers, providerEntry{
			name: ProviderOkta,
			oauth2: &oauth2.Config{
				ClientID: spec.OktaClientID,
				Endpoint: oauth2.Endpoint{
					AuthURL:  fmt.Sprintf("https://%s/oauth2/v1/authorize", spec.OktaDomain),
					TokenURL: fmt.Sprintf("https://%s/oauth2/v1/token", spec.OktaDomain),
				},
				RedirectURL: callbackURL(spec.SiteURL, ProviderOkta),
				Scopes:      scopes,
			},
		})
	}

	if spec.OneLoginAuthEnabled {
		b.providers = append(b.providers, providerEntry{
			name: ProviderOneLogin,
			oauth2: &oauth2.Config{
				ClientID: spec.OneLoginClientID,
				Endpoint: oauth2.Endpoint{
					AuthURL:  fmt.Sprintf("https://%s/oidc/2/auth", spec.OneLoginDomain),
					TokenURL: fmt.Sprintf("https://%s/oidc/2/token", spec.OneLoginDomain),
				},
				RedirectURL: callbackURL(spec.SiteURL, ProviderOneLogin),
				Scopes:      scopes,
			},
		})
	}

	if spec.AzureADAuthEnabled {
		b.providers = append(b.providers, providerEntry{
			name: ProviderAzureAD,
			oauth2: &oauth2.Config{
				ClientID:    spec.AzureADClientID,
				Endpoint:    microsoft.AzureADEndpoint(spec.AzureADTenantID),
				RedirectURL: callbackURL(spec.SiteURL, ProviderAzureAD),
				Scopes:      scopes,
			},
		})
	}

	return b
}

// SignupOptions maps the capability snapshot to the sign-up paths a client
// should offer. An empty redirect falls back to the site root.
func (b *OptionsBuilder) SignupOptions(redirect string) RegistrationOptions {
	if redirect == "" {
		redirect = defaultRedirect
	}

	options := RegistrationOptions{
		PasswordEnabled: !b.caps.DisablePasswordAuthentication,
		Providers:       []SignupProvider{},
	}

	state := url.Values{
		"intent":   []string{signupIntent},
		"redirect": []string{redirect},
	}.Encode()

	for _, p := range b.providers {
		options.Providers = append(options.Providers, SignupProvider{
			Name:      p.name,
			SignInURL: p.oauth2.AuthCodeURL(state),
			Intent:    signupIntent,
			Redirect:  redirect,
		})
	}

	options.ShowDivider = options.PasswordEnabled && len(options.Providers) > 0

	return options
}

func callbackURL(siteURL, provider string) string {
	return fmt.Sprintf("%s/api/v1/oauth/%s/callback", siteURL, provider)
}
