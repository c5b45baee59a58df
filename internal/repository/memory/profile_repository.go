package memory

import (
	"context"
	"sort"
	"time"

	"healthlink-be/internal/entity"

	"github.com/google/uuid"
)

type profileRepository struct {
	store *Store
}

func (r *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	if profile.Id == uuid.Nil {
		profile.Id = uuid.New()
	}
	profile.CreatedAt = now
	profile.UpdatedAt = now
	r.store.profiles[profile.Id] = *profile
	return nil
}

func (r *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	profile.UpdatedAt = time.Now()
	r.store.profiles[profile.Id] = *profile
	return nil
}

func (r *profileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.profiles, id)
	return nil
}

func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if p, ok := r.store.profiles[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *profileRepository) FindFirstByUserID(ctx context.Context, userId uuid.UUID) (*entity.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var matches []entity.Profile
	for _, p := range r.store.profiles {
		if p.UserId == userId {
			matches = append(matches, p)
		}
	}
	if len(matches) == 0 {
		return nil, nil
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})
	return &matches[0], nil
}

func (r *profileRepository) FindAll(ctx context.Context) ([]*entity.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*entity.Profile, 0, len(r.store.profiles))
	for _, p := range r.store.profiles {
		p := p
		result = append(result, &p)
	}
	return result, nil
}
