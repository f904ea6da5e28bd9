package settings

import "context"

// Service exposes the settings store to handlers and to the other services
// that read working-time and rate configuration.
type Service interface {
	// GetAll retrieves every stored setting.
	GetAll(ctx context.Context) ([]Setting, error)

	// Update upserts a known setting key. Unknown keys are rejected.
	Update(ctx context.Context, req UpdateSettingRequest) (Setting, error)

	// Float reads a numeric setting, falling back to def when the row is
	// missing or not a number.
	Float(ctx context.Context, key string, def float64) float64

	// String reads a string setting, falling back to def when missing.
	String(ctx context.Context, key string, def string) string
}
