package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"healthlink-be/internal/dto"
	"healthlink-be/internal/entity"
	"healthlink-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMessageOnMissingConversation(t *testing.T) {
	factory, _ := newMemoryFactory()
	svc := NewConversationService(factory, &noopPublisher{})

	_, err := svc.CreateMessage(context.Background(), uuid.New(), &dto.CreateMessageRequest{
		Content:    "hello",
		SenderType: entity.SenderTypeUser,
	})
	require.Error(t, err)

	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
}

func TestMessagesReturnInChronologicalOrder(t *testing.T) {
	factory, _ := newMemoryFactory()
	svc := NewConversationService(factory, &noopPublisher{})
	ctx := context.Background()

	first, err := svc.Create(ctx, &dto.CreateConversationRequest{UserId: uuid.New(), Title: "Symptoms"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &dto.CreateConversationRequest{UserId: uuid.New(), Title: "Medication"})
	require.NoError(t, err)

	// Interleave appends across the two conversations.
	for i := 0; i < 3; i++ {
		_, err := svc.CreateMessage(ctx, first.Id, &dto.CreateMessageRequest{
			Content:    fmt.Sprintf("first-%d", i),
			SenderType: entity.SenderTypeUser,
		})
		require.NoError(t, err)
		_, err = svc.CreateMessage(ctx, second.Id, &dto.CreateMessageRequest{
			Content:    fmt.Sprintf("second-%d", i),
			SenderType: entity.SenderTypeBot,
		})
		require.NoError(t, err)
	}

	messages, err := svc.GetMessages(ctx, first.Id)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	for i, m := range messages {
		assert.Equal(t, fmt.Sprintf("first-%d", i), m.Content)
		assert.Equal(t, first.Id, m.ConversationId)
		if i > 0 {
			assert.False(t, m.CreatedAt.Before(messages[i-1].CreatedAt))
		}
	}
}

func TestCreateMessageRefreshesConversationUpdatedAt(t *testing.T) {
	factory, _ := newMemoryFactory()
	publisher := &noopPublisher{}
	svc := NewConversationService(factory, publisher)
	ctx := context.Background()

	conversation, err := svc.Create(ctx, &dto.CreateConversationRequest{UserId: uuid.New(), Title: "Sleep"})
	require.NoError(t, err)

	created, err := svc.CreateMessage(ctx, conversation.Id, &dto.CreateMessageRequest{
		Content:    "How did I sleep last week?",
		SenderType: entity.SenderTypeUser,
	})
	require.NoError(t, err)

	after, err := svc.Show(ctx, conversation.Id)
	require.NoError(t, err)
	assert.False(t, after.UpdatedAt.Before(created.CreatedAt))

	require.Len(t, publisher.published, 1)
	assert.Equal(t, created.Id, publisher.published[0].MessageId)
	assert.Equal(t, conversation.Id, publisher.published[0].ConversationId)
}

func TestConversationsOrderedByMostRecentActivity(t *testing.T) {
	factory, _ := newMemoryFactory()
	svc := NewConversationService(factory, &noopPublisher{})
	ctx := context.Background()

	older, err := svc.Create(ctx, &dto.CreateConversationRequest{UserId: uuid.New(), Title: "Older"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &dto.CreateConversationRequest{UserId: uuid.New(), Title: "Newer"})
	require.NoError(t, err)

	// A new message bumps the older conversation back to the top.
	_, err = svc.CreateMessage(ctx, older.Id, &dto.CreateMessageRequest{
		Content:    "ping",
		SenderType: entity.SenderTypeUser,
	})
	require.NoError(t, err)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, older.Id, all[0].Id)
}

func TestDeleteMessageUnknownIdSucceeds(t *testing.T) {
	factory, _ := newMemoryFactory()
	svc := NewConversationService(factory, &noopPublisher{})

	assert.NoError(t, svc.DeleteMessage(context.Background(), uuid.New()))
}
