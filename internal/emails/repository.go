package emails

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nuanu-wifi/backend/internal/models"
)

// Repository handles trial-email persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an emails repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Save upserts an email as verified. Consent is sticky: once given it is
// never cleared by a later save.
func (r *Repository) Save(ctx context.Context, email string, consented bool) error {
	const q = `INSERT INTO trial_emails (email, is_verified, consented)
		VALUES ($1, TRUE, $2)
		ON CONFLICT (email) DO UPDATE
		SET is_verified = TRUE, consented = trial_emails.consented OR EXCLUDED.consented`
	_, err := r.pool.Exec(ctx, q, email, consented)
	return err
}

// IsVerified reports whether the email exists and is verified.
func (r *Repository) IsVerified(ctx context.Context, email string) (bool, error) {
	const q = `SELECT COALESCE(
		(SELECT is_verified FROM trial_emails WHERE email = $1), FALSE)`
	var verified bool
	err := r.pool.QueryRow(ctx, q, email).Scan(&verified)
	return verified, err
}

// Count returns the number of collected emails within the range.
func (r *Repository) Count(ctx context.Context, dr DateRange) (int, error) {
	q := `SELECT COUNT(*) FROM trial_emails`
	args := []any{}
	if !dr.All {
		q += ` WHERE created_at BETWEEN $1 AND $2`
		args = append(args, dr.Start, dr.End)
	}
	var count int
	err := r.pool.QueryRow(ctx, q, args...).Scan(&count)
	return count, err
}

// List returns a page of collected emails within the range, newest first.
func (r *Repository) List(ctx context.Context, dr DateRange, limit, offset int) ([]models.TrialEmail, error) {
	q := `SELECT id, email, is_verified, consented, created_at FROM trial_emails`
	args := []any{}
	if !dr.All {
		q += ` WHERE created_at BETWEEN $1 AND $2`
		args = append(args, dr.Start, dr.End)
	}
	q += ` ORDER BY created_at DESC`
	if limit > 0 {
		args = append(args, limit, offset)
		q += ` LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.TrialEmail
	for rows.Next() {
		var e models.TrialEmail
		if err := rows.Scan(&e.ID, &e.Email, &e.IsVerified, &e.Consented, &e.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// ListAll returns every email within the range, newest first (export).
func (r *Repository) ListAll(ctx context.Context, dr DateRange) ([]models.TrialEmail, error) {
	return r.List(ctx, dr, 0, 0)
}
