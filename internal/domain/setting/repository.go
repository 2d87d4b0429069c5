package setting

import (
	"context"
)

// SettingRepository defines data access methods for system settings.
type SettingRepository interface {
	Get(ctx context.Context, key string) (Setting, error)

	List(ctx context.Context) ([]Setting, error)

	Upsert(ctx context.Context, setting Setting) (Setting, error)
}
