package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"chatgw/internal/model"
	"chatgw/internal/provider"
	"chatgw/internal/service"
)

type stubOrchestrator struct {
	response *provider.Response
	err      error
}

func (s *stubOrchestrator) Run(_ context.Context, _ *model.ChatRequest, _ model.ModelCapability, _ int) (*provider.Response, error) {
	return s.response, s.err
}

func newTestRouter(orch *stubOrchestrator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	api := engine.Group("/api")
	api.GET("/models", NewModelsHandler().List)
	api.POST("/chat", NewChatHandler(service.NewChatService(orch)).Chat)
	api.GET("/health", NewHealthHandler().Health)

	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestHealthEndpoint(t *testing.T) {
	engine := newTestRouter(&stubOrchestrator{})

	recorder := doJSON(t, engine, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestModelsEndpointReturnsCapabilityFields(t *testing.T) {
	engine := newTestRouter(&stubOrchestrator{})

	recorder := doJSON(t, engine, http.MethodGet, "/api/models", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var payload []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	require.NotEmpty(t, payload)

	first := payload[0]
	for _, field := range []string{
		"id",
		"supportsTemperature",
		"supportsReasoningEffort",
		"reasoningEffortOptions",
		"defaultReasoningEffort",
		"supportsWebSearch",
		"supportsPreviousResponse",
	} {
		require.Contains(t, first, field)
	}
}

func TestChatEndpointSuccessResponseShape(t *testing.T) {
	inputTokens, outputTokens := 10, 20
	engine := newTestRouter(&stubOrchestrator{
		response: &provider.Response{
			Message:         "hello",
			ResponseID:      "resp_success",
			InputTokens:     &inputTokens,
			OutputTokens:    &outputTokens,
			DurationSeconds: 0.35,
		},
	})

	recorder := doJSON(t, engine, http.MethodPost, "/api/chat",
		`{"model":"gpt-4.1-mini","messages":[{"role":"user","content":"hi"}]}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	require.Equal(t, "hello", payload["message"])
	require.Equal(t, "resp_success", payload["responseId"])
	require.Equal(t, float64(10), payload["inputTokens"])
	require.Equal(t, float64(20), payload["outputTokens"])
	require.Equal(t, 0.35, payload["durationSeconds"])
}

func TestChatEndpointInvalidModelReturns400(t *testing.T) {
	engine := newTestRouter(&stubOrchestrator{})

	recorder := doJSON(t, engine, http.MethodPost, "/api/chat",
		`{"model":"gpt-unknown","messages":[{"role":"user","content":"hi"}]}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Contains(t, recorder.Body.String(), "Unsupported model: gpt-unknown")
}

func TestChatEndpointInvalidRoleReturns400(t *testing.T) {
	engine := newTestRouter(&stubOrchestrator{})

	recorder := doJSON(t, engine, http.MethodPost, "/api/chat",
		`{"model":"gpt-4.1-mini","messages":[{"role":"system","content":"hi"}]}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestChatEndpointMissingMessagesReturns400(t *testing.T) {
	engine := newTestRouter(&stubOrchestrator{})

	recorder := doJSON(t, engine, http.MethodPost, "/api/chat",
		`{"model":"gpt-4.1-mini"}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Contains(t, recorder.Body.String(), "messages is required")
}

func TestChatEndpointZeroMaxOutputTokensReturns400(t *testing.T) {
	engine := newTestRouter(&stubOrchestrator{})

	recorder := doJSON(t, engine, http.MethodPost, "/api/chat",
		`{"model":"gpt-4.1-mini","maxOutputTokens":0,"messages":[{"role":"user","content":"hi"}]}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Contains(t, recorder.Body.String(), "maxOutputTokens must be between 1 and")
}

func TestChatEndpointMalformedBodyReturns400(t *testing.T) {
	engine := newTestRouter(&stubOrchestrator{})

	recorder := doJSON(t, engine, http.MethodPost, "/api/chat", `{"model":`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestChatEndpointProviderFailureReturns502(t *testing.T) {
	engine := newTestRouter(&stubOrchestrator{err: errors.New("upstream boom")})

	recorder := doJSON(t, engine, http.MethodPost, "/api/chat",
		`{"model":"gpt-4.1-mini","messages":[{"role":"user","content":"hi"}]}`)
	require.Equal(t, http.StatusBadGateway, recorder.Code)
	require.Contains(t, recorder.Body.String(), "Provider call failed")
}

func TestChatEndpointUnsupportedTemperatureReturns400(t *testing.T) {
	engine := newTestRouter(&stubOrchestrator{})

	recorder := doJSON(t, engine, http.MethodPost, "/api/chat",
		`{"model":"gpt-5","temperature":0.5,"messages":[{"role":"user","content":"hi"}]}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Contains(t, recorder.Body.String(), "temperature is not supported for model: gpt-5")
}
