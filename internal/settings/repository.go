package settings

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Setting keys used by the login page.
const (
	KeyGoogleLoginEnabled   = "google_login_enabled"
	KeyFacebookLoginEnabled = "facebook_login_enabled"
	KeyBackgroundImage      = "background_image"
	KeyBackgroundImageType  = "background_image_type"
	KeyBackgroundImageData  = "background_image_data"
	KeyBackgroundColor      = "background_color"
	KeyPageTitle            = "page_title"
	KeyButtonText           = "button_text"
)

// Defaults returns the factory page settings. Also used to backfill keys
// missing from the store so the login page never renders without them.
func Defaults() map[string]string {
	return map[string]string{
		KeyGoogleLoginEnabled:   "true",
		KeyFacebookLoginEnabled: "false",
		KeyBackgroundImage:      "url(../img/nuanu.png)",
		KeyBackgroundImageType:  "url",
		KeyBackgroundImageData:  "",
		KeyBackgroundColor:      "#667eea",
		KeyPageTitle:            "Welcome To NUANU Free WiFi",
		KeyButtonText:           "Connect to WiFi",
	}
}

// Repository handles page-setting persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a settings repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// EnsureDefaults seeds any missing default settings. Existing values are
// left untouched.
func (r *Repository) EnsureDefaults(ctx context.Context) error {
	const q = `INSERT INTO page_settings (setting_key, setting_value)
		VALUES ($1, $2) ON CONFLICT (setting_key) DO NOTHING`
	for key, value := range Defaults() {
		if _, err := r.pool.Exec(ctx, q, key, value); err != nil {
			return err
		}
	}
	return nil
}

// All returns every stored setting as a map.
func (r *Repository) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT setting_key, setting_value FROM page_settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		out[key] = value
	}
	return out, rows.Err()
}

// Update upserts one setting.
func (r *Repository) Update(ctx context.Context, key, value string) error {
	const q = `INSERT INTO page_settings (setting_key, setting_value)
		VALUES ($1, $2)
		ON CONFLICT (setting_key) DO UPDATE
		SET setting_value = EXCLUDED.setting_value, updated_at = NOW()`
	_, err := r.pool.Exec(ctx, q, key, value)
	return err
}
