package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"healthlink-be/internal/bootstrap"
	"healthlink-be/internal/config"
	"healthlink-be/internal/dto"
	"healthlink-be/internal/pkg/serverutils"
	"healthlink-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			APIPrefix:          "/api",
			Environment:        "test",
			LogFilePath:        filepath.Join(t.TempDir(), "app.log"),
			CorsAllowedOrigins: "*",
			ChatEventsTopic:    "CHAT_MESSAGE_CREATED",
		},
	}

	container := bootstrap.NewContainerWithFactory(memory.NewRepositoryFactory(memory.NewStore()), cfg)
	return New(cfg, container).GetApp()
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUnmatchedRouteReturnsNotFoundBody(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/no-such-resource", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody[serverutils.ErrorResponse](t, resp)
	assert.Equal(t, "Not found", body.Error)
}

func TestCorsPreflight(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("OPTIONS", "/api/appointments", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "POST")
}

func TestAppointmentCRUDOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/appointments", fiber.Map{
		"user_id":          uuid.New().String(),
		"title":            "Annual checkup",
		"appointment_date": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	created := decodeBody[dto.AppointmentResponse](t, resp)
	assert.Equal(t, "scheduled", created.Status)
	assert.NotEqual(t, uuid.Nil, created.Id)

	t.Run("Show returns the bare row", func(t *testing.T) {
		resp := doJSON(t, app, "GET", "/api/appointments/"+created.Id.String(), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		shown := decodeBody[dto.AppointmentResponse](t, resp)
		assert.Equal(t, created.Id, shown.Id)
	})

	t.Run("Show unknown id is 404", func(t *testing.T) {
		resp := doJSON(t, app, "GET", "/api/appointments/"+uuid.New().String(), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeBody[serverutils.ErrorResponse](t, resp)
		assert.Equal(t, "Appointment not found", body.Error)
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			resp := doJSON(t, app, "DELETE", "/api/appointments/"+created.Id.String(), nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			body := decodeBody[serverutils.SuccessMarker](t, resp)
			assert.True(t, body.Success)
		}
	})
}

func TestAppointmentCreateValidation(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/appointments", fiber.Map{
		"user_id": uuid.New().String(),
		// title and appointment_date missing
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[serverutils.ErrorResponse](t, resp)
	assert.NotEmpty(t, body.Error)
}

func TestMessagePathIsAuthoritative(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/conversations", fiber.Map{
		"user_id": uuid.New().String(),
		"title":   "Symptoms",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	conversation := decodeBody[dto.ConversationResponse](t, resp)

	// A conversation_id in the body must be ignored in favour of the path.
	resp = doJSON(t, app, "POST", "/api/conversations/"+conversation.Id.String()+"/messages", fiber.Map{
		"conversation_id": uuid.New().String(),
		"content":         "hello",
		"sender_type":     "user",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	message := decodeBody[dto.MessageResponse](t, resp)
	assert.Equal(t, conversation.Id, message.ConversationId)

	resp = doJSON(t, app, "GET", "/api/conversations/"+conversation.Id.String()+"/messages", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	messages := decodeBody[[]dto.MessageResponse](t, resp)
	require.Len(t, messages, 1)
	assert.Equal(t, "hello", messages[0].Content)
}

func TestMessageSenderTypeValidated(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/conversations", fiber.Map{
		"user_id": uuid.New().String(),
		"title":   "Symptoms",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	conversation := decodeBody[dto.ConversationResponse](t, resp)

	resp = doJSON(t, app, "POST", "/api/conversations/"+conversation.Id.String()+"/messages", fiber.Map{
		"content":     "hello",
		"sender_type": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatWebhookOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/conversations", fiber.Map{
		"user_id": uuid.New().String(),
		"title":   "Blood pressure",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	conversation := decodeBody[dto.ConversationResponse](t, resp)

	resp = doJSON(t, app, "POST", "/api/n8n/webhook/chat", fiber.Map{
		"conversation_id": conversation.Id.String(),
		"user_message":    "What was my last reading?",
		"bot_response":    "120/80 on Monday.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[dto.ChatWebhookResponse](t, resp)
	assert.True(t, body.Success)

	resp = doJSON(t, app, "GET", "/api/conversations/"+conversation.Id.String()+"/messages", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	messages := decodeBody[[]dto.MessageResponse](t, resp)
	require.Len(t, messages, 2)
	assert.Equal(t, "user", messages[0].SenderType)
	assert.Equal(t, "bot", messages[1].SenderType)
}

func TestChatWebhookUnknownConversationOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/n8n/webhook/chat", fiber.Map{
		"conversation_id": uuid.New().String(),
		"user_message":    "hello",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUserContextOverHTTP(t *testing.T) {
	app := newTestApp(t)
	userId := uuid.New()

	t.Run("missing user_id is 400", func(t *testing.T) {
		resp := doJSON(t, app, "GET", "/api/n8n/user-context", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed user_id is 400", func(t *testing.T) {
		resp := doJSON(t, app, "GET", "/api/n8n/user-context?user_id=not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody[serverutils.ErrorResponse](t, resp)
		assert.Equal(t, "invalid user_id", body.Error)
	})

	for i := 0; i < 2; i++ {
		resp := doJSON(t, app, "POST", "/api/appointments", fiber.Map{
			"user_id":          userId.String(),
			"title":            fmt.Sprintf("Visit %d", i),
			"appointment_date": time.Now().Add(time.Duration(i+1) * 24 * time.Hour).Format(time.RFC3339),
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp := doJSON(t, app, "GET", "/api/n8n/user-context?user_id="+userId.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	snapshot := decodeBody[dto.UserContextResponse](t, resp)
	assert.Nil(t, snapshot.Profile)
	assert.Len(t, snapshot.Appointments, 2)
	assert.NotNil(t, snapshot.HealthData)
	assert.False(t, snapshot.Timestamp.IsZero())
}

func TestMalformedIdParamIsRejected(t *testing.T) {
	app := newTestApp(t)

	for _, target := range []string{
		"/api/appointments/not-a-uuid",
		"/api/profiles/not-a-uuid",
		"/api/conversations/not-a-uuid/messages",
	} {
		resp := doJSON(t, app, "GET", target, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, target)

		body := decodeBody[serverutils.ErrorResponse](t, resp)
		assert.Equal(t, "invalid id", body.Error, target)
	}

	resp := doJSON(t, app, "DELETE", "/api/messages/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthDataQueryValidation(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/health-data?start_date=not-a-date", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
