package settings

import "context"

// Repository defines data access for the key-value settings store.
type Repository interface {
	// Get retrieves a single setting by key. Returns ErrSettingNotFound when
	// no row exists.
	Get(ctx context.Context, key string) (Setting, error)

	// List retrieves all settings.
	List(ctx context.Context) ([]Setting, error)

	// Upsert creates or replaces a setting.
	Upsert(ctx context.Context, setting Setting) (Setting, error)
}
