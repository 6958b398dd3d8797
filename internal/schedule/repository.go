package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nuanu-wifi/backend/internal/models"
)

// ErrNotFound is returned when a window id does not exist.
var ErrNotFound = errors.New("scheduled ad not found")

// Repository handles scheduled-ad persistence.
//
// Conflict checks run against a snapshot read before the write commits;
// two concurrent admin writes can both pass against stale reads. The
// schema's CHECK constraint backs the range invariant, and admin traffic
// is low enough that the window is acceptable.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a scheduled-ad repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const windowColumns = `id, title, COALESCE(description,''),
	COALESCE(background_image,''), COALESCE(background_image_type,'url'), COALESCE(background_image_data,''),
	COALESCE(background_color,'#667eea'), COALESCE(page_title,''), COALESCE(button_text,''),
	start_date::text, end_date::text, start_time::text, end_time::text,
	is_active, created_at, updated_at, COALESCE(created_by,'')`

func scanWindow(row pgx.Row) (*models.ScheduleWindow, error) {
	var w models.ScheduleWindow
	var startDate, endDate, startTime, endTime string
	err := row.Scan(&w.ID, &w.Title, &w.Description,
		&w.BackgroundImage, &w.BackgroundImageType, &w.BackgroundImageData,
		&w.BackgroundColor, &w.PageTitle, &w.ButtonText,
		&startDate, &endDate, &startTime, &endTime,
		&w.IsActive, &w.CreatedAt, &w.UpdatedAt, &w.CreatedBy)
	if err != nil {
		return nil, err
	}
	if w.StartDate, err = models.ParseDate(startDate); err != nil {
		return nil, fmt.Errorf("scan start_date: %w", err)
	}
	if w.EndDate, err = models.ParseDate(endDate); err != nil {
		return nil, fmt.Errorf("scan end_date: %w", err)
	}
	if w.StartTime, err = models.ParseTimeOfDay(startTime); err != nil {
		return nil, fmt.Errorf("scan start_time: %w", err)
	}
	if w.EndTime, err = models.ParseTimeOfDay(endTime); err != nil {
		return nil, fmt.Errorf("scan end_time: %w", err)
	}
	return &w, nil
}

func (r *Repository) list(ctx context.Context, q string) ([]models.ScheduleWindow, error) {
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.ScheduleWindow
	for rows.Next() {
		w, err := scanWindow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *w)
	}
	return list, rows.Err()
}

// ListActive returns all windows with is_active=true, most recent first.
func (r *Repository) ListActive(ctx context.Context) ([]models.ScheduleWindow, error) {
	return r.list(ctx, `SELECT `+windowColumns+` FROM scheduled_ads
		WHERE is_active = TRUE ORDER BY start_date DESC, start_time DESC`)
}

// ListAll returns every window regardless of active state (admin listing).
func (r *Repository) ListAll(ctx context.Context) ([]models.ScheduleWindow, error) {
	return r.list(ctx, `SELECT `+windowColumns+` FROM scheduled_ads
		ORDER BY start_date DESC, start_time DESC`)
}

// GetByID returns one window, or ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.ScheduleWindow, error) {
	q := `SELECT ` + windowColumns + ` FROM scheduled_ads WHERE id = $1`
	w, err := scanWindow(r.pool.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return w, err
}

// Insert stores a new window and fills its id and timestamps.
func (r *Repository) Insert(ctx context.Context, w *models.ScheduleWindow) error {
	const q = `INSERT INTO scheduled_ads (
			id, title, description, background_image, background_image_type,
			background_image_data, background_color, page_title, button_text,
			start_date, end_date, start_time, end_time, is_active, created_by
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8,
			$9::date, $10::date, $11::time, $12::time, $13, $14)
		RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, q,
		w.Title, w.Description, w.BackgroundImage, w.BackgroundImageType,
		w.BackgroundImageData, w.BackgroundColor, w.PageTitle, w.ButtonText,
		w.StartDate.String(), w.EndDate.String(), w.StartTime.String(), w.EndTime.String(),
		w.IsActive, w.CreatedBy,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
}

// Update replaces every mutable field of the window.
func (r *Repository) Update(ctx context.Context, w *models.ScheduleWindow) error {
	const q = `UPDATE scheduled_ads SET
			title = $2, description = $3, background_image = $4,
			background_image_type = $5, background_image_data = $6,
			background_color = $7, page_title = $8, button_text = $9,
			start_date = $10::date, end_date = $11::date,
			start_time = $12::time, end_time = $13::time,
			is_active = $14, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`
	err := r.pool.QueryRow(ctx, q, w.ID,
		w.Title, w.Description, w.BackgroundImage,
		w.BackgroundImageType, w.BackgroundImageData,
		w.BackgroundColor, w.PageTitle, w.ButtonText,
		w.StartDate.String(), w.EndDate.String(), w.StartTime.String(), w.EndTime.String(),
		w.IsActive,
	).Scan(&w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete removes a window (hard delete), or returns ErrNotFound.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM scheduled_ads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
