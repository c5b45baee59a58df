package memory

import (
	"context"
	"sort"
	"time"

	"healthlink-be/internal/entity"

	"github.com/google/uuid"
)

type systemSettingRepository struct {
	store *Store
}

func (r *systemSettingRepository) Create(ctx context.Context, setting *entity.SystemSetting) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	if setting.Id == uuid.Nil {
		setting.Id = uuid.New()
	}
	setting.CreatedAt = now
	setting.UpdatedAt = now
	r.store.settings[setting.Id] = *setting
	return nil
}

func (r *systemSettingRepository) Update(ctx context.Context, setting *entity.SystemSetting) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	setting.UpdatedAt = time.Now()
	r.store.settings[setting.Id] = *setting
	return nil
}

func (r *systemSettingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.settings, id)
	return nil
}

func (r *systemSettingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SystemSetting, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if s, ok := r.store.settings[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *systemSettingRepository) FindAll(ctx context.Context) ([]*entity.SystemSetting, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*entity.SystemSetting, 0, len(r.store.settings))
	for _, s := range r.store.settings {
		s := s
		result = append(result, &s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})
	return result, nil
}
