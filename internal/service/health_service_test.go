package service

import (
	"context"
	"testing"
	"time"

	"healthlink-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHealthRecord(t *testing.T, svc IHealthRecordService, userId uuid.UUID, dataType, value string, recordedAt time.Time) *dto.HealthRecordResponse {
	t.Helper()
	created, err := svc.Create(context.Background(), &dto.CreateHealthRecordRequest{
		UserId:     userId,
		DataType:   dataType,
		Value:      value,
		RecordedAt: &recordedAt,
	})
	require.NoError(t, err)
	return created
}

func TestHealthRecordsFilterByTypeAndRange(t *testing.T) {
	factory, _ := newMemoryFactory()
	svc := NewHealthRecordService(factory)
	userId := uuid.New()

	inRange := seedHealthRecord(t, svc, userId, "weight", "82.5",
		time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC))
	onLowerBound := seedHealthRecord(t, svc, userId, "weight", "83.1",
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	seedHealthRecord(t, svc, userId, "weight", "84.0",
		time.Date(2026, 7, 20, 8, 0, 0, 0, time.UTC)) // before range
	seedHealthRecord(t, svc, userId, "heart_rate", "71",
		time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC)) // wrong type

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	records, err := svc.GetAll(context.Background(), &dto.ListHealthRecordsQuery{
		DataType:  "weight",
		StartDate: &from,
		EndDate:   &to,
	})
	require.NoError(t, err)

	require.Len(t, records, 2)
	// Newest reading first; the lower bound is inclusive.
	assert.Equal(t, inRange.Id, records[0].Id)
	assert.Equal(t, onLowerBound.Id, records[1].Id)
}

func TestHealthRecordsUnfilteredReturnsAllNewestFirst(t *testing.T) {
	factory, _ := newMemoryFactory()
	svc := NewHealthRecordService(factory)
	userId := uuid.New()

	seedHealthRecord(t, svc, userId, "weight", "82.5",
		time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC))
	seedHealthRecord(t, svc, userId, "heart_rate", "71",
		time.Date(2026, 8, 12, 8, 0, 0, 0, time.UTC))
	seedHealthRecord(t, svc, userId, "blood_pressure", "120/80",
		time.Date(2026, 8, 11, 8, 0, 0, 0, time.UTC))

	records, err := svc.GetAll(context.Background(), &dto.ListHealthRecordsQuery{})
	require.NoError(t, err)

	require.Len(t, records, 3)
	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].RecordedAt.After(records[i-1].RecordedAt))
	}
}

func TestHealthRecordCreateDefaultsRecordedAt(t *testing.T) {
	factory, _ := newMemoryFactory()
	svc := NewHealthRecordService(factory)

	before := time.Now()
	created, err := svc.Create(context.Background(), &dto.CreateHealthRecordRequest{
		UserId:   uuid.New(),
		DataType: "steps",
		Value:    "10432",
	})
	require.NoError(t, err)
	assert.False(t, created.RecordedAt.Before(before))
}
