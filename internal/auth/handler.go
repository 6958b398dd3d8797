package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nuanu-wifi/backend/config"
	"github.com/nuanu-wifi/backend/pkg/response"
)

// LoginRequest is the body for POST /dashboard/login.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Handler handles dashboard login.
type Handler struct {
	dashboard config.DashboardConfig
	jwt       *JWTService
	logger    *zap.Logger
}

// NewHandler creates an auth handler.
func NewHandler(dashboard config.DashboardConfig, jwt *JWTService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{dashboard: dashboard, jwt: jwt, logger: logger}
}

// Login handles POST /dashboard/login: exchanges the dashboard password
// for a session token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if !VerifyDashboardPassword(h.dashboard, req.Password) {
		h.logger.Warn("dashboard login rejected", zap.String("client_ip", c.ClientIP()))
		response.Unauthorized(c, "wrong password")
		return
	}
	token, err := h.jwt.Generate()
	if err != nil {
		h.logger.Error("generate session token failed", zap.Error(err))
		response.Internal(c, "could not create session")
		return
	}
	response.OK(c, gin.H{"token": token})
}
