package schedule

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nuanu-wifi/backend/internal/models"
	"github.com/nuanu-wifi/backend/pkg/response"
)

// CreateWindowRequest is the body for POST /api/scheduled-ads.
type CreateWindowRequest struct {
	Title               string `json:"title" binding:"required"`
	Description         string `json:"description"`
	BackgroundImage     string `json:"background_image"`
	BackgroundImageType string `json:"background_image_type"`
	BackgroundImageData string `json:"background_image_data"`
	BackgroundColor     string `json:"background_color"`
	PageTitle           string `json:"page_title"`
	ButtonText          string `json:"button_text"`
	StartDate           string `json:"start_date" binding:"required"`
	EndDate             string `json:"end_date" binding:"required"`
	StartTime           string `json:"start_time"`
	EndTime             string `json:"end_time"`
	IsActive            *bool  `json:"is_active"`
	CreatedBy           string `json:"created_by"`
}

// UpdateWindowRequest is the body for PUT /api/scheduled-ads/:id.
// Nil fields keep their stored values.
type UpdateWindowRequest struct {
	Title               *string `json:"title"`
	Description         *string `json:"description"`
	BackgroundImage     *string `json:"background_image"`
	BackgroundImageType *string `json:"background_image_type"`
	BackgroundImageData *string `json:"background_image_data"`
	BackgroundColor     *string `json:"background_color"`
	PageTitle           *string `json:"page_title"`
	ButtonText          *string `json:"button_text"`
	StartDate           *string `json:"start_date"`
	EndDate             *string `json:"end_date"`
	StartTime           *string `json:"start_time"`
	EndTime             *string `json:"end_time"`
	IsActive            *bool   `json:"is_active"`
}

// Handler handles scheduled-ad HTTP endpoints: the admin CRUD guarded by
// the overlap detector, and the public active-ad lookups for the login
// page.
type Handler struct {
	repo   *Repository
	cache  *ActiveAdCache
	logger *zap.Logger
	now    func() time.Time
}

// NewHandler creates a schedule handler. now is injectable for tests; nil
// means time.Now.
func NewHandler(repo *Repository, cache *ActiveAdCache, logger *zap.Logger, now func() time.Time) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Handler{repo: repo, cache: cache, logger: logger, now: now}
}

// List handles GET /api/scheduled-ads (admin).
func (h *Handler) List(c *gin.Context) {
	windows, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("list scheduled ads failed", zap.Error(err))
		response.Internal(c, "could not load scheduled ads")
		return
	}
	if windows == nil {
		windows = []models.ScheduleWindow{}
	}
	response.OK(c, gin.H{"ads": windows})
}

// Get handles GET /api/scheduled-ads/:id (admin).
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid ad id")
		return
	}
	w, err := h.repo.GetByID(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "ad not found")
		return
	}
	if err != nil {
		h.logger.Error("get scheduled ad failed", zap.Error(err), zap.String("id", id.String()))
		response.Internal(c, "could not load scheduled ad")
		return
	}
	response.OK(c, gin.H{"ad": w})
}

// Create handles POST /api/scheduled-ads (admin).
func (h *Handler) Create(c *gin.Context) {
	var req CreateWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	w, err := windowFromCreate(req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	existing, err := h.repo.ListActive(ctx)
	if err != nil {
		h.logger.Error("load active ads for conflict check failed", zap.Error(err))
		response.Internal(c, "could not verify schedule availability")
		return
	}
	if conflict := FindConflict(*w, existing); conflict != nil {
		response.Conflict(c, conflict.Error())
		return
	}

	if err := h.repo.Insert(ctx, w); err != nil {
		h.logger.Error("insert scheduled ad failed", zap.Error(err))
		response.Internal(c, "could not create scheduled ad")
		return
	}
	h.cache.Invalidate(ctx)
	response.Created(c, gin.H{"ad": w})
}

// Update handles PUT /api/scheduled-ads/:id (admin).
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid ad id")
		return
	}
	var req UpdateWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	current, err := h.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "ad not found")
		return
	}
	if err != nil {
		h.logger.Error("load scheduled ad failed", zap.Error(err), zap.String("id", id.String()))
		response.Internal(c, "could not load scheduled ad")
		return
	}

	updated := *current
	if err := applyUpdate(&updated, req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := ValidateRange(updated.StartDate, updated.EndDate); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Re-check conflicts only when the scheduling fields moved; an
	// unchanged extent already passed the check when it was written.
	if scheduleChanged(current, &updated) {
		existing, err := h.repo.ListActive(ctx)
		if err != nil {
			h.logger.Error("load active ads for conflict check failed", zap.Error(err))
			response.Internal(c, "could not verify schedule availability")
			return
		}
		if conflict := FindConflict(updated, existing); conflict != nil {
			response.Conflict(c, conflict.Error())
			return
		}
	}

	if err := h.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "ad not found")
			return
		}
		h.logger.Error("update scheduled ad failed", zap.Error(err), zap.String("id", id.String()))
		response.Internal(c, "could not update scheduled ad")
		return
	}
	h.cache.Invalidate(ctx)
	response.OK(c, gin.H{"ad": updated})
}

// Delete handles DELETE /api/scheduled-ads/:id (admin).
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid ad id")
		return
	}
	ctx := c.Request.Context()
	if err := h.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "ad not found")
			return
		}
		h.logger.Error("delete scheduled ad failed", zap.Error(err), zap.String("id", id.String()))
		response.Internal(c, "could not delete scheduled ad")
		return
	}
	h.cache.Invalidate(ctx)
	response.OK(c, gin.H{"deleted": id})
}

// ActiveAd handles GET /portal/active-ad (public): the single most
// recently started ad covering now, or null.
func (h *Handler) ActiveAd(c *gin.Context) {
	ctx := c.Request.Context()
	if raw := h.cache.Get(ctx, activeAdKey); raw != nil {
		response.OK(c, gin.H{"ad": json.RawMessage(raw)})
		return
	}

	windows, err := h.repo.ListActive(ctx)
	if err != nil {
		h.logger.Error("load active ads failed", zap.Error(err))
		response.OK(c, gin.H{"ad": nil})
		return
	}

	var ad *models.ActiveAd
	for _, w := range ResolveActive(h.now(), windows) {
		if a := materializeAd(w); a != nil {
			ad = a
			break
		}
	}
	if ad == nil {
		response.OK(c, gin.H{"ad": nil})
		return
	}
	if raw, err := json.Marshal(ad); err == nil {
		h.cache.Set(ctx, activeAdKey, raw)
	}
	response.OK(c, gin.H{"ad": ad})
}

// ActiveAds handles GET /portal/active-ads (public): every displayable ad
// covering now, most recently started first.
func (h *Handler) ActiveAds(c *gin.Context) {
	ctx := c.Request.Context()
	if raw := h.cache.Get(ctx, activeAdsKey); raw != nil {
		response.OK(c, gin.H{"ads": json.RawMessage(raw)})
		return
	}

	windows, err := h.repo.ListActive(ctx)
	if err != nil {
		h.logger.Error("load active ads failed", zap.Error(err))
		response.OK(c, gin.H{"ads": []models.ActiveAd{}})
		return
	}

	ads := make([]models.ActiveAd, 0, len(windows))
	for _, w := range ResolveActive(h.now(), windows) {
		if a := materializeAd(w); a != nil {
			ads = append(ads, *a)
		}
	}
	if raw, err := json.Marshal(ads); err == nil {
		h.cache.Set(ctx, activeAdsKey, raw)
	}
	response.OK(c, gin.H{"ads": ads})
}

// materializeAd converts a window into its public payload, or nil when the
// image resolves to nothing displayable.
func materializeAd(w models.ScheduleWindow) *models.ActiveAd {
	image := BuildImageSrc(w.BackgroundImageType, w.BackgroundImage, w.BackgroundImageData)
	if image == "" {
		return nil
	}
	return &models.ActiveAd{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		StartDate:   w.StartDate.String(),
		EndDate:     w.EndDate.String(),
		StartTime:   w.StartTime.String(),
		EndTime:     w.EndTime.String(),
		Image:       image,
	}
}

func windowFromCreate(req CreateWindowRequest) (*models.ScheduleWindow, error) {
	w := &models.ScheduleWindow{
		Title:               strings.TrimSpace(req.Title),
		Description:         req.Description,
		BackgroundImage:     req.BackgroundImage,
		BackgroundImageType: defaultString(req.BackgroundImageType, models.ImageTypeURL),
		BackgroundImageData: req.BackgroundImageData,
		BackgroundColor:     defaultString(req.BackgroundColor, "#667eea"),
		PageTitle:           req.PageTitle,
		ButtonText:          req.ButtonText,
		StartTime:           models.StartOfDay,
		EndTime:             models.EndOfDay,
		IsActive:            true,
		CreatedBy:           defaultString(req.CreatedBy, "admin"),
	}
	if req.IsActive != nil {
		w.IsActive = *req.IsActive
	}

	var err error
	if w.StartDate, err = models.ParseDate(req.StartDate); err != nil {
		return nil, err
	}
	if w.EndDate, err = models.ParseDate(req.EndDate); err != nil {
		return nil, err
	}
	if req.StartTime != "" {
		if w.StartTime, err = models.ParseTimeOfDay(req.StartTime); err != nil {
			return nil, err
		}
	}
	if req.EndTime != "" {
		if w.EndTime, err = models.ParseTimeOfDay(req.EndTime); err != nil {
			return nil, err
		}
	}
	if err := ValidateRange(w.StartDate, w.EndDate); err != nil {
		return nil, err
	}
	return w, nil
}

func applyUpdate(w *models.ScheduleWindow, req UpdateWindowRequest) error {
	if req.Title != nil {
		w.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		w.Description = *req.Description
	}
	if req.BackgroundImage != nil {
		w.BackgroundImage = *req.BackgroundImage
	}
	if req.BackgroundImageType != nil {
		w.BackgroundImageType = *req.BackgroundImageType
	}
	if req.BackgroundImageData != nil {
		w.BackgroundImageData = *req.BackgroundImageData
	}
	if req.BackgroundColor != nil {
		w.BackgroundColor = *req.BackgroundColor
	}
	if req.PageTitle != nil {
		w.PageTitle = *req.PageTitle
	}
	if req.ButtonText != nil {
		w.ButtonText = *req.ButtonText
	}
	if req.IsActive != nil {
		w.IsActive = *req.IsActive
	}

	var err error
	if req.StartDate != nil {
		if w.StartDate, err = models.ParseDate(*req.StartDate); err != nil {
			return err
		}
	}
	if req.EndDate != nil {
		if w.EndDate, err = models.ParseDate(*req.EndDate); err != nil {
			return err
		}
	}
	if req.StartTime != nil {
		if w.StartTime, err = models.ParseTimeOfDay(*req.StartTime); err != nil {
			return err
		}
	}
	if req.EndTime != nil {
		if w.EndTime, err = models.ParseTimeOfDay(*req.EndTime); err != nil {
			return err
		}
	}
	return nil
}

func scheduleChanged(before, after *models.ScheduleWindow) bool {
	return before.StartDate != after.StartDate ||
		before.EndDate != after.EndDate ||
		before.StartTime != after.StartTime ||
		before.EndTime != after.EndTime ||
		before.IsActive != after.IsActive
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
