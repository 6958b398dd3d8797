package settings

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nuanu-wifi/backend/pkg/response"
)

// The decoded upload cap is ~6 MB; the base64 form is a third larger.
const maxUploadDataLen = 8_000_000

// OAuthAvailability reports which social providers are currently
// configured, merged into the public settings payload.
type OAuthAvailability interface {
	GoogleEnabled() bool
	FacebookEnabled() bool
}

// Handler handles page-setting endpoints: the public login-page read and
// the admin update.
type Handler struct {
	repo   *Repository
	oauth  OAuthAvailability
	logger *zap.Logger
}

// NewHandler creates a settings handler.
func NewHandler(repo *Repository, oauth OAuthAvailability, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, oauth: oauth, logger: logger}
}

// Public handles GET /portal/settings: stored settings merged over
// defaults, plus provider availability flags. Store errors degrade to the
// defaults so the login page always renders.
func (h *Handler) Public(c *gin.Context) {
	merged := Defaults()
	stored, err := h.repo.All(c.Request.Context())
	if err != nil {
		h.logger.Warn("load settings failed, serving defaults", zap.Error(err))
	} else {
		for k, v := range stored {
			merged[k] = v
		}
	}
	merged["google_oauth_available"] = boolString(h.oauth.GoogleEnabled())
	merged["facebook_oauth_available"] = boolString(h.oauth.FacebookEnabled())
	response.OK(c, merged)
}

// Update handles POST /api/settings (admin): bulk setting update with
// upload validation.
func (h *Handler) Update(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	if mode, ok := req[KeyBackgroundImageType]; ok {
		data := strings.TrimSpace(req[KeyBackgroundImageData])
		switch mode {
		case "upload":
			if data == "" {
				response.BadRequest(c, "please upload an image before saving")
				return
			}
			if !strings.HasPrefix(data, "data:image/") {
				response.BadRequest(c, "invalid image format")
				return
			}
			if len(data) > maxUploadDataLen {
				response.BadRequest(c, "image is too large, please keep it under 6 MB")
				return
			}
		case "none":
			req[KeyBackgroundImage] = ""
			req[KeyBackgroundImageData] = ""
		default:
			req[KeyBackgroundImageData] = ""
		}
	}

	ctx := c.Request.Context()
	for key, value := range req {
		if err := h.repo.Update(ctx, key, value); err != nil {
			h.logger.Error("update setting failed", zap.Error(err), zap.String("key", key))
			response.Internal(c, "could not update settings")
			return
		}
	}
	response.OK(c, gin.H{"updated": len(req)})
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
