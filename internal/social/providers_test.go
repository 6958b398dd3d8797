package social

import (
	"testing"
)

func TestBuildProvidersPartialCredentials(t *testing.T) {
	tests := []struct {
		name         string
		creds        Credentials
		wantGoogle   bool
		wantFacebook bool
	}{
		{"none configured", Credentials{}, false, false},
		{
			"google only",
			Credentials{GoogleClientID: "id", GoogleClientSecret: "secret"},
			true, false,
		},
		{
			"facebook only",
			Credentials{FacebookClientID: "id", FacebookClientSecret: "secret"},
			false, true,
		},
		{
			"id without secret stays disabled",
			Credentials{GoogleClientID: "id"},
			false, false,
		},
		{
			"both configured",
			Credentials{
				GoogleClientID: "gid", GoogleClientSecret: "gsec",
				FacebookClientID: "fid", FacebookClientSecret: "fsec",
			},
			true, true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildProviders(tt.creds, "https://portal.example.com")
			if got := p.GoogleEnabled(); got != tt.wantGoogle {
				t.Errorf("GoogleEnabled() = %v, want %v", got, tt.wantGoogle)
			}
			if got := p.FacebookEnabled(); got != tt.wantFacebook {
				t.Errorf("FacebookEnabled() = %v, want %v", got, tt.wantFacebook)
			}
		})
	}
}

func TestBuildProvidersRedirectURLs(t *testing.T) {
	creds := Credentials{
		GoogleClientID: "gid", GoogleClientSecret: "gsec",
		FacebookClientID: "fid", FacebookClientSecret: "fsec",
	}
	p := BuildProviders(creds, "https://wifi.nuanu.com")

	if got := p.Config(ProviderGoogle).RedirectURL; got != "https://wifi.nuanu.com/auth/google/callback" {
		t.Errorf("google redirect = %q", got)
	}
	if got := p.Config(ProviderFacebook).RedirectURL; got != "https://wifi.nuanu.com/auth/facebook/callback" {
		t.Errorf("facebook redirect = %q", got)
	}
	if p.Config("twitter") != nil {
		t.Error("unknown provider should have no config")
	}
}

func TestRegistrySwapReplacesSnapshot(t *testing.T) {
	r := NewRegistry(BuildProviders(Credentials{}, "http://localhost:8000"))
	if r.GoogleEnabled() {
		t.Fatal("google should start disabled")
	}

	old := r.Load()
	r.Swap(BuildProviders(Credentials{
		GoogleClientID: "id", GoogleClientSecret: "secret",
	}, "http://localhost:8000"))

	if !r.GoogleEnabled() {
		t.Error("google should be enabled after swap")
	}
	if old.GoogleEnabled() {
		t.Error("old snapshot must stay unchanged")
	}
}
