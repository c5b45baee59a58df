package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"healthlink-be/internal/dto"
	"healthlink-be/internal/entity"
	"healthlink-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatWebhookStoresBothTurnSides(t *testing.T) {
	factory, _ := newMemoryFactory()
	publisher := &noopPublisher{}
	conversations := NewConversationService(factory, publisher)
	svc := NewIntegrationService(factory, publisher)
	ctx := context.Background()

	conversation, err := conversations.Create(ctx, &dto.CreateConversationRequest{
		UserId: uuid.New(),
		Title:  "Blood pressure",
	})
	require.NoError(t, err)

	before := time.Now()
	userMessage := "What was my last reading?"
	botResponse := "Your last reading was 120/80 on Monday."
	err = svc.ChatWebhook(ctx, &dto.ChatWebhookRequest{
		ConversationId: conversation.Id,
		UserMessage:    &userMessage,
		BotResponse:    &botResponse,
	})
	require.NoError(t, err)

	messages, err := conversations.GetMessages(ctx, conversation.Id)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, entity.SenderTypeUser, messages[0].SenderType)
	assert.Equal(t, userMessage, messages[0].Content)
	assert.Equal(t, entity.SenderTypeBot, messages[1].SenderType)
	assert.Equal(t, botResponse, messages[1].Content)

	after, err := conversations.Show(ctx, conversation.Id)
	require.NoError(t, err)
	assert.False(t, after.UpdatedAt.Before(before))

	assert.Len(t, publisher.published, 2)
}

func TestChatWebhookBotOnlyTurn(t *testing.T) {
	factory, _ := newMemoryFactory()
	conversations := NewConversationService(factory, &noopPublisher{})
	svc := NewIntegrationService(factory, &noopPublisher{})
	ctx := context.Background()

	conversation, err := conversations.Create(ctx, &dto.CreateConversationRequest{
		UserId: uuid.New(),
		Title:  "Reminders",
	})
	require.NoError(t, err)

	botResponse := "Time to take your evening medication."
	err = svc.ChatWebhook(ctx, &dto.ChatWebhookRequest{
		ConversationId: conversation.Id,
		BotResponse:    &botResponse,
	})
	require.NoError(t, err)

	messages, err := conversations.GetMessages(ctx, conversation.Id)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, entity.SenderTypeBot, messages[0].SenderType)
}

func TestChatWebhookUnknownConversation(t *testing.T) {
	factory, _ := newMemoryFactory()
	svc := NewIntegrationService(factory, &noopPublisher{})
	ctx := context.Background()

	conversationId := uuid.New()
	userMessage := "hello?"
	err := svc.ChatWebhook(ctx, &dto.ChatWebhookRequest{
		ConversationId: conversationId,
		UserMessage:    &userMessage,
	})
	require.Error(t, err)

	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)

	// Nothing was written.
	messages, err := factory.NewUnitOfWork(ctx).
		MessageRepository().
		FindAllByConversationID(ctx, conversationId)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestUserContextRequiresUserId(t *testing.T) {
	factory, _ := newMemoryFactory()
	svc := NewIntegrationService(factory, &noopPublisher{})

	_, err := svc.UserContext(context.Background(), "")
	require.Error(t, err)

	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
}

func TestUserContextRejectsMalformedUserId(t *testing.T) {
	factory, _ := newMemoryFactory()
	svc := NewIntegrationService(factory, &noopPublisher{})

	_, err := svc.UserContext(context.Background(), "not-a-uuid")
	require.Error(t, err)

	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "invalid user_id", appErr.Message)
}

func TestUserContextWithoutProfile(t *testing.T) {
	factory, _ := newMemoryFactory()
	appointments := NewAppointmentService(factory)
	svc := NewIntegrationService(factory, &noopPublisher{})
	ctx := context.Background()

	userId := uuid.New()
	_, err := appointments.Create(ctx, &dto.CreateAppointmentRequest{
		UserId:          userId,
		Title:           "Vaccination",
		AppointmentDate: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	snapshot, err := svc.UserContext(ctx, userId.String())
	require.NoError(t, err)

	assert.Nil(t, snapshot.Profile)
	require.Len(t, snapshot.Appointments, 1)
	assert.NotNil(t, snapshot.HealthData)
	assert.Empty(t, snapshot.HealthData)
	assert.False(t, snapshot.Timestamp.IsZero())
}

func TestUserContextAppliesRecencyLimits(t *testing.T) {
	factory, _ := newMemoryFactory()
	appointments := NewAppointmentService(factory)
	health := NewHealthRecordService(factory)
	svc := NewIntegrationService(factory, &noopPublisher{})
	ctx := context.Background()

	userId := uuid.New()
	for i := 0; i < recentAppointmentsLimit+2; i++ {
		_, err := appointments.Create(ctx, &dto.CreateAppointmentRequest{
			UserId:          userId,
			Title:           fmt.Sprintf("Visit %d", i),
			AppointmentDate: time.Now().Add(time.Duration(i) * 24 * time.Hour),
		})
		require.NoError(t, err)
	}
	for i := 0; i < recentHealthRecordsLimit+3; i++ {
		recordedAt := time.Now().Add(-time.Duration(i) * time.Hour)
		_, err := health.Create(ctx, &dto.CreateHealthRecordRequest{
			UserId:     userId,
			DataType:   "heart_rate",
			Value:      fmt.Sprintf("%d", 60+i),
			RecordedAt: &recordedAt,
		})
		require.NoError(t, err)
	}

	snapshot, err := svc.UserContext(ctx, userId.String())
	require.NoError(t, err)

	assert.Len(t, snapshot.Appointments, recentAppointmentsLimit)
	require.Len(t, snapshot.HealthData, recentHealthRecordsLimit)
	// Most recent reading comes first.
	for i := 1; i < len(snapshot.HealthData); i++ {
		assert.False(t, snapshot.HealthData[i].RecordedAt.After(snapshot.HealthData[i-1].RecordedAt))
	}
}
