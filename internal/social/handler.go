package social

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/nuanu-wifi/backend/config"
	"github.com/nuanu-wifi/backend/internal/emails"
	"github.com/nuanu-wifi/backend/internal/hotspot"
	"github.com/nuanu-wifi/backend/pkg/response"
)

const userInfoTimeout = 10 * time.Second

// Userinfo endpoints queried with the granted access token.
const (
	googleUserInfoURL   = "https://www.googleapis.com/oauth2/v2/userinfo"
	facebookUserInfoURL = "https://graph.facebook.com/me?fields=id,name,email"
)

// Handler serves the social login flow and credential management.
type Handler struct {
	registry *Registry
	states   *StateStore
	emails   *emails.Repository
	gateway  hotspot.Gateway
	baseURL  string
	envPath  string
	logger   *zap.Logger
}

// NewHandler creates a social login handler.
func NewHandler(registry *Registry, states *StateStore, repo *emails.Repository, gateway hotspot.Gateway, baseURL string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		registry: registry,
		states:   states,
		emails:   repo,
		gateway:  gateway,
		baseURL:  baseURL,
		envPath:  ".env",
		logger:   logger,
	}
}

// Login starts the OAuth dance: issues a state nonce and redirects the
// visitor to the provider's consent screen.
// GET /auth/:provider/login
func (h *Handler) Login(c *gin.Context) {
	provider := c.Param("provider")
	cfg := h.registry.Load().Config(provider)
	if cfg == nil {
		response.ServiceUnavailable(c, fmt.Sprintf("%s login is not configured", provider))
		return
	}

	state, err := h.states.Issue(c.Request.Context(), provider)
	if err != nil {
		h.logger.Error("failed to issue oauth state", zap.Error(err))
		response.Internal(c, "failed to start login")
		return
	}
	c.Redirect(http.StatusFound, cfg.AuthCodeURL(state))
}

// Callback completes the OAuth dance: validates the state nonce, exchanges
// the code, records the visitor's email, and hands the client off to the
// hotspot gateway for network authorization.
// GET /auth/:provider/callback
func (h *Handler) Callback(c *gin.Context) {
	provider := c.Param("provider")
	cfg := h.registry.Load().Config(provider)
	if cfg == nil {
		response.ServiceUnavailable(c, fmt.Sprintf("%s login is not configured", provider))
		return
	}

	ctx := c.Request.Context()
	issuedFor, err := h.states.Consume(ctx, c.Query("state"))
	if err != nil || issuedFor != provider {
		h.logger.Warn("rejected oauth callback",
			zap.String("provider", provider), zap.Error(err))
		response.BadRequest(c, "invalid or expired login state")
		return
	}

	code := c.Query("code")
	if code == "" {
		response.BadRequest(c, "missing authorization code")
		return
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		h.logger.Error("oauth code exchange failed",
			zap.String("provider", provider), zap.Error(err))
		response.BadRequest(c, "login was not completed")
		return
	}

	email, err := fetchEmail(ctx, cfg, token, provider)
	if err != nil {
		h.logger.Error("failed to fetch user info",
			zap.String("provider", provider), zap.Error(err))
		response.BadRequest(c, "could not read account email")
		return
	}

	// Social logins imply the provider's own consent screen was accepted.
	if err := h.emails.Save(ctx, email, true); err != nil {
		h.logger.Error("failed to save email", zap.Error(err))
		response.Internal(c, "failed to save email")
		return
	}

	h.logger.Info("social login completed",
		zap.String("provider", provider), zap.String("email", email))
	c.Redirect(http.StatusFound, h.gateway.LoginURL())
}

func fetchEmail(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token, provider string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, userInfoTimeout)
	defer cancel()

	endpoint := googleUserInfoURL
	if provider == ProviderFacebook {
		endpoint = facebookUserInfoURL
	}

	resp, err := cfg.Client(ctx, token).Get(endpoint)
	if err != nil {
		return "", fmt.Errorf("query userinfo: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("userinfo returned %d: %s", resp.StatusCode, body)
	}

	var info struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("decode userinfo: %w", err)
	}
	if info.Email == "" {
		return "", fmt.Errorf("%s account has no email", provider)
	}
	return info.Email, nil
}

// CredentialsRequest carries a partial credential update. Omitted fields
// keep their current value; empty strings clear them.
type CredentialsRequest struct {
	GoogleClientID       *string `json:"google_client_id"`
	GoogleClientSecret   *string `json:"google_client_secret"`
	FacebookClientID     *string `json:"facebook_client_id"`
	FacebookClientSecret *string `json:"facebook_client_secret"`
}

// UpdateCredentials persists new provider credentials and swaps in a
// rebuilt provider snapshot so the change takes effect immediately.
// POST /api/oauth-credentials (admin)
func (h *Handler) UpdateCredentials(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	creds := h.registry.Load().Credentials()
	if req.GoogleClientID != nil {
		creds.GoogleClientID = *req.GoogleClientID
	}
	if req.GoogleClientSecret != nil {
		creds.GoogleClientSecret = *req.GoogleClientSecret
	}
	if req.FacebookClientID != nil {
		creds.FacebookClientID = *req.FacebookClientID
	}
	if req.FacebookClientSecret != nil {
		creds.FacebookClientSecret = *req.FacebookClientSecret
	}

	err := config.UpdateEnvFile(h.envPath, map[string]string{
		"GOOGLE_CLIENT_ID":       creds.GoogleClientID,
		"GOOGLE_CLIENT_SECRET":   creds.GoogleClientSecret,
		"FACEBOOK_CLIENT_ID":     creds.FacebookClientID,
		"FACEBOOK_CLIENT_SECRET": creds.FacebookClientSecret,
	})
	if err != nil {
		h.logger.Error("failed to persist oauth credentials", zap.Error(err))
		response.Internal(c, "failed to save credentials")
		return
	}

	snapshot := BuildProviders(creds, h.baseURL)
	h.registry.Swap(snapshot)

	h.logger.Info("oauth credentials updated",
		zap.Bool("google_enabled", snapshot.GoogleEnabled()),
		zap.Bool("facebook_enabled", snapshot.FacebookEnabled()))
	response.OK(c, gin.H{
		"google_enabled":   snapshot.GoogleEnabled(),
		"facebook_enabled": snapshot.FacebookEnabled(),
	})
}
