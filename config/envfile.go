package config

import (
	"fmt"
	"os"
	"strings"
)

// UpdateEnvFile merges the given key/value pairs into the .env file at
// path, preserving the order and comments of existing lines. Keys not yet
// present are appended. The file is created when missing.
func UpdateEnvFile(path string, updates map[string]string) error {
	var lines []string
	if data, err := os.ReadFile(path); err == nil {
		lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read env file: %w", err)
	}

	pending := make(map[string]string, len(updates))
	for k, v := range updates {
		pending[k] = v
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, _, ok := strings.Cut(trimmed, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if v, found := pending[key]; found {
			lines[i] = key + "=" + v
			delete(pending, key)
		}
	}

	// Append new keys in a stable order so repeated saves diff cleanly.
	for _, key := range envKeyOrder {
		if v, found := pending[key]; found {
			lines = append(lines, key+"="+v)
			delete(pending, key)
		}
	}
	for key, v := range pending {
		lines = append(lines, key+"="+v)
	}

	out := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(out), 0o600); err != nil {
		return fmt.Errorf("write env file: %w", err)
	}

	// Keep the running process in sync with what was persisted.
	for k, v := range updates {
		_ = os.Setenv(k, v)
	}
	return nil
}

var envKeyOrder = []string{
	"BASE_URL",
	"GOOGLE_CLIENT_ID",
	"GOOGLE_CLIENT_SECRET",
	"FACEBOOK_CLIENT_ID",
	"FACEBOOK_CLIENT_SECRET",
	"DASHBOARD_PASSWORD",
	"GATEWAY_IP",
	"HOTSPOT_USER",
	"HOTSPOT_PASS",
	"DST_URL",
	"SECRET_KEY",
}
