package memory

import (
	"context"
	"sort"
	"time"

	"healthlink-be/internal/entity"
	"healthlink-be/internal/repository/contract"

	"github.com/google/uuid"
)

type healthRecordRepository struct {
	store *Store
}

func (r *healthRecordRepository) Create(ctx context.Context, record *entity.HealthRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	if record.Id == uuid.Nil {
		record.Id = uuid.New()
	}
	record.CreatedAt = now
	if record.RecordedAt.IsZero() {
		record.RecordedAt = now
	}
	r.store.healthRecords[record.Id] = *record
	return nil
}

func (r *healthRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.healthRecords, id)
	return nil
}

func (r *healthRecordRepository) FindAll(ctx context.Context, filter contract.HealthRecordFilter) ([]*entity.HealthRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*entity.HealthRecord, 0)
	for _, h := range r.store.healthRecords {
		if filter.DataType != "" && h.DataType != filter.DataType {
			continue
		}
		if filter.From != nil && h.RecordedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && h.RecordedAt.After(*filter.To) {
			continue
		}
		h := h
		result = append(result, &h)
	}
	sortByRecordedAtDesc(result)
	return result, nil
}

func (r *healthRecordRepository) FindRecentByUserID(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.HealthRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*entity.HealthRecord, 0)
	for _, h := range r.store.healthRecords {
		if h.UserId == userId {
			h := h
			result = append(result, &h)
		}
	}
	sortByRecordedAtDesc(result)
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func sortByRecordedAtDesc(records []*entity.HealthRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].RecordedAt.After(records[j].RecordedAt)
	})
}
