// Package social implements Google/Facebook login for the portal page.
// Provider configuration is an immutable snapshot swapped atomically when
// an admin updates credentials; request handlers only ever read a
// snapshot, never a mutable registry.
package social

import (
	"sync/atomic"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/nuanu-wifi/backend/config"
)

// Provider names accepted in /auth/:provider routes.
const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

// Credentials holds the client id/secret pairs for both providers. Empty
// pairs disable the provider.
type Credentials struct {
	GoogleClientID       string
	GoogleClientSecret   string
	FacebookClientID     string
	FacebookClientSecret string
}

// CredentialsFromConfig extracts the provider credentials from app config.
func CredentialsFromConfig(cfg config.OAuthConfig) Credentials {
	return Credentials{
		GoogleClientID:       cfg.GoogleClientID,
		GoogleClientSecret:   cfg.GoogleClientSecret,
		FacebookClientID:     cfg.FacebookClientID,
		FacebookClientSecret: cfg.FacebookClientSecret,
	}
}

// Providers is an immutable snapshot of the configured OAuth providers.
type Providers struct {
	creds    Credentials
	google   *oauth2.Config
	facebook *oauth2.Config
}

// BuildProviders assembles a snapshot from credentials. The redirect URLs
// are anchored to the portal's public base URL.
func BuildProviders(creds Credentials, baseURL string) *Providers {
	p := &Providers{creds: creds}
	if creds.GoogleClientID != "" && creds.GoogleClientSecret != "" {
		p.google = &oauth2.Config{
			ClientID:     creds.GoogleClientID,
			ClientSecret: creds.GoogleClientSecret,
			RedirectURL:  baseURL + "/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     endpoints.Google,
		}
	}
	if creds.FacebookClientID != "" && creds.FacebookClientSecret != "" {
		p.facebook = &oauth2.Config{
			ClientID:     creds.FacebookClientID,
			ClientSecret: creds.FacebookClientSecret,
			RedirectURL:  baseURL + "/auth/facebook/callback",
			Scopes:       []string{"email", "public_profile"},
			Endpoint:     endpoints.Facebook,
		}
	}
	return p
}

// Credentials returns the credentials this snapshot was built from.
func (p *Providers) Credentials() Credentials { return p.creds }

// Config returns the oauth2 config for a provider name, or nil when the
// provider is unknown or unconfigured.
func (p *Providers) Config(provider string) *oauth2.Config {
	switch provider {
	case ProviderGoogle:
		return p.google
	case ProviderFacebook:
		return p.facebook
	}
	return nil
}

// GoogleEnabled reports whether Google login is configured.
func (p *Providers) GoogleEnabled() bool { return p.google != nil }

// FacebookEnabled reports whether Facebook login is configured.
func (p *Providers) FacebookEnabled() bool { return p.facebook != nil }

// Registry holds the current provider snapshot. Handlers load a snapshot
// per request; credential updates swap the whole snapshot in one step.
type Registry struct {
	current atomic.Pointer[Providers]
}

// NewRegistry creates a registry holding the initial snapshot.
func NewRegistry(p *Providers) *Registry {
	r := &Registry{}
	r.current.Store(p)
	return r
}

// Load returns the current snapshot.
func (r *Registry) Load() *Providers { return r.current.Load() }

// Swap replaces the current snapshot.
func (r *Registry) Swap(p *Providers) { r.current.Store(p) }

// GoogleEnabled implements settings.OAuthAvailability.
func (r *Registry) GoogleEnabled() bool { return r.Load().GoogleEnabled() }

// FacebookEnabled implements settings.OAuthAvailability.
func (r *Registry) FacebookEnabled() bool { return r.Load().FacebookEnabled() }
