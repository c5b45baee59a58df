package service

import (
	"context"
	"testing"

	"healthlink-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProfilePartialUpdate(t *testing.T) {
	factory, _ := newMemoryFactory()
	svc := NewProfileService(factory)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateProfileRequest{
		UserId:   uuid.New(),
		FullName: strPtr("Alex Rivera"),
		Phone:    strPtr("+628123456789"),
		Gender:   strPtr("male"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.Id, &dto.UpdateProfileRequest{
		Phone: strPtr("+628199999999"),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Phone)
	assert.Equal(t, "+628199999999", *updated.Phone)
	require.NotNil(t, updated.FullName)
	assert.Equal(t, "Alex Rivera", *updated.FullName)
	require.NotNil(t, updated.Gender)
	assert.Equal(t, "male", *updated.Gender)
	assert.Nil(t, updated.BirthDate)
}

func TestProfileCreateAllowsSparseRows(t *testing.T) {
	factory, _ := newMemoryFactory()
	svc := NewProfileService(factory)

	created, err := svc.Create(context.Background(), &dto.CreateProfileRequest{
		UserId: uuid.New(),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.Id)
	assert.Nil(t, created.FullName)
	assert.Nil(t, created.Phone)
}

func TestSettingsSortedByKey(t *testing.T) {
	factory, _ := newMemoryFactory()
	svc := NewSystemSettingService(factory)
	ctx := context.Background()

	for _, key := range []string{"chat_model", "appointment_window_days", "max_upload_mb"} {
		_, err := svc.Create(ctx, &dto.CreateSettingRequest{Key: key, Value: "1"})
		require.NoError(t, err)
	}

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "appointment_window_days", all[0].Key)
	assert.Equal(t, "chat_model", all[1].Key)
	assert.Equal(t, "max_upload_mb", all[2].Key)
}

func TestSettingUpdateKeepsKey(t *testing.T) {
	factory, _ := newMemoryFactory()
	svc := NewSystemSettingService(factory)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateSettingRequest{
		Key:         "chat_model",
		Value:       "default-v1",
		Description: strPtr("Model used by the chat automation"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.Id, &dto.UpdateSettingRequest{
		Value: strPtr("default-v2"),
	})
	require.NoError(t, err)

	assert.Equal(t, "chat_model", updated.Key)
	assert.Equal(t, "default-v2", updated.Value)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Model used by the chat automation", *updated.Description)
}
