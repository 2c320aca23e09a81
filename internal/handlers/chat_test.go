package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hawaco/booking-backend/internal/config"
	"github.com/hawaco/booking-backend/internal/dispatch"
	"github.com/hawaco/booking-backend/internal/flow"
	"github.com/hawaco/booking-backend/internal/routes"
	"github.com/hawaco/booking-backend/internal/storage"
)

type chatResponse struct {
	Reply string `json:"reply"`
	Done  bool   `json:"done"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := storage.NewMemoryStore(time.Hour, 100)
	t.Cleanup(store.Close)

	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(webhook.Close)

	cfg := &config.Config{WebhookURL: webhook.URL, StaticDir: t.TempDir()}
	engine := flow.NewEngine(store, nil, dispatch.NewDispatcher(cfg.WebhookURL, nil))

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"reply": "خطأ داخلي في السيرفر.",
				"done":  false,
			})
		},
	})
	routes.SetupRoutes(app, cfg, store, engine)

	return app
}

func postChat(t *testing.T, app *fiber.App, body string) (*http.Response, chatResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed chatResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))

	return resp, parsed
}

func TestChatRejectsMissingSessionID(t *testing.T) {
	app := newTestApp(t)

	resp, parsed := postChat(t, app, `{"message": "__start__"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "خطأ في البيانات.", parsed.Reply)
	assert.False(t, parsed.Done)
}

func TestChatRejectsMissingMessage(t *testing.T) {
	app := newTestApp(t)

	resp, parsed := postChat(t, app, `{"sessionId": "s1"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "خطأ في البيانات.", parsed.Reply)
}

func TestChatRejectsNonStringMessage(t *testing.T) {
	app := newTestApp(t)

	resp, _ := postChat(t, app, `{"sessionId": "s1", "message": 42}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatSentinelThenFirstTurn(t *testing.T) {
	app := newTestApp(t)

	resp, parsed := postChat(t, app, `{"sessionId": "s1", "message": "__start__"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, parsed.Reply)
	assert.False(t, parsed.Done)

	resp, parsed = postChat(t, app, `{"sessionId": "s1", "message": "أحمد محمد علي"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, parsed.Reply, "تشرفنا")
	assert.False(t, parsed.Done)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "healthy", parsed["status"])
}
