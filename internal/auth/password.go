package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/nuanu-wifi/backend/config"
)

// HashPassword hashes a plain password using bcrypt. Exposed so operators
// can generate DASHBOARD_PASSWORD_HASH values.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerifyDashboardPassword checks a login attempt against the configured
// dashboard credential. A bcrypt hash takes precedence; the plain-password
// fallback exists for installs that have not generated one.
func VerifyDashboardPassword(cfg config.DashboardConfig, attempt string) bool {
	if cfg.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(cfg.PasswordHash), []byte(attempt)) == nil
	}
	if cfg.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cfg.Password), []byte(attempt)) == 1
}
