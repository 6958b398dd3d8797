package emails

import (
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nuanu-wifi/backend/internal/models"
	"github.com/nuanu-wifi/backend/pkg/response"
)

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

// SaveRequest is the body for POST /emails.
type SaveRequest struct {
	Email   string `json:"email" binding:"required"`
	Consent bool   `json:"consent"`
}

// CheckRequest is the body for POST /emails/check.
type CheckRequest struct {
	Email string `json:"email" binding:"required"`
}

// Handler handles email capture (public) and the collected-email listing
// (admin dashboard).
type Handler struct {
	repo   *Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewHandler creates an emails handler. now is injectable for tests; nil
// means time.Now.
func NewHandler(repo *Repository, logger *zap.Logger, now func() time.Time) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Handler{repo: repo, logger: logger, now: now}
}

// Save handles POST /emails (public): stores a visitor email with
// marketing consent. Consent is mandatory for the form flow.
func (h *Handler) Save(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid email")
		return
	}
	email := normalizeEmail(req.Email)
	if email == "" {
		response.BadRequest(c, "invalid email")
		return
	}
	if !req.Consent {
		response.BadRequest(c, "consent required")
		return
	}
	if err := h.repo.Save(c.Request.Context(), email, true); err != nil {
		h.logger.Error("save email failed", zap.Error(err))
		response.Internal(c, "could not save email")
		return
	}
	response.OK(c, gin.H{"verified": true})
}

// Check handles POST /emails/check (public): reports whether an email was
// already captured and verified.
func (h *Handler) Check(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid email")
		return
	}
	email := normalizeEmail(req.Email)
	if email == "" {
		response.BadRequest(c, "invalid email")
		return
	}
	verified, err := h.repo.IsVerified(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("check email failed", zap.Error(err))
		response.Internal(c, "could not check email")
		return
	}
	response.OK(c, gin.H{"verified": verified})
}

// List handles GET /dashboard/emails (admin): paginated listing with date
// filter presets.
func (h *Handler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := queryInt(c, "page_size", defaultPageSize)
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	dr := ComputeDateRange(c.Query("date_filter"), c.Query("start_date"), c.Query("end_date"), h.now())

	ctx := c.Request.Context()
	total, err := h.repo.Count(ctx, dr)
	if err != nil {
		h.logger.Error("count emails failed", zap.Error(err))
		response.Internal(c, "could not load emails")
		return
	}
	list, err := h.repo.List(ctx, dr, pageSize, (page-1)*pageSize)
	if err != nil {
		h.logger.Error("list emails failed", zap.Error(err))
		response.Internal(c, "could not load emails")
		return
	}
	if list == nil {
		list = []models.TrialEmail{}
	}

	totalPages := (total + pageSize - 1) / pageSize
	response.OK(c, gin.H{
		"emails":      list,
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": totalPages,
		"range":       dr.Label,
	})
}

func normalizeEmail(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, err := mail.ParseAddress(s); err != nil {
		return ""
	}
	return s
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
