package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/setting"
)

type SettingRepository struct {
	mu       sync.RWMutex
	settings map[string]setting.Setting
}

// NewSettingRepository starts from the seed defaults so rule checks in tests
// see the CLT values without extra setup.
func NewSettingRepository() *SettingRepository {
	r := &SettingRepository{settings: make(map[string]setting.Setting)}
	for _, st := range setting.Defaults() {
		r.settings[st.Key] = st
	}
	return r
}

func (r *SettingRepository) Get(ctx context.Context, key string) (setting.Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.settings[key]
	if !ok {
		return setting.Setting{}, setting.ErrSettingNotFound
	}
	return st, nil
}

func (r *SettingRepository) List(ctx context.Context) ([]setting.Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var settings []setting.Setting
	for _, st := range r.settings {
		settings = append(settings, st)
	}

	sort.Slice(settings, func(a, b int) bool {
		return settings[a].Key < settings[b].Key
	})

	return settings, nil
}

func (r *SettingRepository) Upsert(ctx context.Context, st setting.Setting) (setting.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings[st.Key] = st
	return st, nil
}
