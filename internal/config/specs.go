package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// Capability flags reported to clients on the health endpoint. They
	// drive which sign-up paths the registration surface offers.
	PasswordAuthDisabled bool   `envconfig:"password_auth_disabled" default:"false"`
	GoogleAuthEnabled    bool   `envconfig:"google_auth_enabled" default:"false"`
	GoogleClientID       string `envconfig:"google_client_id"`
	OktaAuthEnabled      bool   `envconfig:"okta_auth_enabled" default:"false"`
	OktaClientID         string `envconfig:"okta_client_id"`
	OktaDomain           string `envconfig:"okta_domain"`
	OneLoginAuthEnabled  bool   `envconfig:"onelogin_auth_enabled" default:"false"`
	OneLoginClientID     string `envconfig:"onelogin_client_id"`
	OneLoginDomain       string `envconfig:"onelogin_domain"`
	AzureADAuthEnabled   bool   `envconfig:"azuread_auth_enabled" default:"false"`
	AzureADClientID      string `envconfig:"azuread_client_id"`
	AzureADTenantID      string `envconfig:"azuread_tenant_id"`

	SiteURL string `envconfig:"site_url" default:"http://localhost:8080"`

	AuthenticationEnabled bool   `envconfig:"authentication_enabled" default:"false"`
	OIDCIssuer            string `envconfig:"oidc_issuer"`
	JWKSURL               string `envconfig:"jwks_url"`
	RequiredScope         string `envconfig:"required_scope"`
}
