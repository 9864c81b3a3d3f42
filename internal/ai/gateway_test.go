package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashnote/core/internal/config"
	"github.com/flashnote/core/internal/logger"
	"github.com/flashnote/core/models"
)

func testNotes() []models.Note {
	now := time.Now().UTC()
	return []models.Note{
		{ID: "n1", Text: "fix the login timeout", CreatedAt: now, TypeHint: models.TypeIssue, Status: models.StatusNew, Tags: []string{"auth"}},
		{ID: "n2", Text: "follow up with the design team tomorrow", CreatedAt: now, TypeHint: models.TypeTodo, Status: models.StatusOngoing, Tags: []string{}},
	}
}

// openAIStub serves the OpenAI chat completions envelope with a fixed reply
// and records the last request body.
func openAIStub(t *testing.T, reply string, status int) (*httptest.Server, *openAIChatRequest) {
	t.Helper()

	lastRequest := &openAIChatRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(lastRequest))

		w.WriteHeader(status)
		if status != http.StatusOK {
			return
		}
		err := json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": reply}},
			},
		})
		require.NoError(t, err)
	}))
	t.Cleanup(server.Close)

	return server, lastRequest
}

// qwenStub serves the DashScope text-generation envelope.
func qwenStub(t *testing.T, reply string) (*httptest.Server, *qwenRequest) {
	t.Helper()

	lastRequest := &qwenRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/services/aigc/text-generation/generation", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(lastRequest))

		err := json.NewEncoder(w).Encode(map[string]any{
			"output": map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": reply}},
				},
			},
		})
		require.NoError(t, err)
	}))
	t.Cleanup(server.Close)

	return server, lastRequest
}

func newTestGateway(t *testing.T, cfg *config.AIConfig) *Gateway {
	t.Helper()

	log := logger.Nop()
	gateway, err := New(cfg, log)
	require.NoError(t, err)

	return gateway
}

func TestNew_UnknownProviderFailsFast(t *testing.T) {
	_, err := New(&config.AIConfig{Provider: "claude", APIKey: "k"}, logger.Nop())
	assert.ErrorIs(t, err, config.ErrUnknownProvider)
}

func TestGenerateDailyDigest_OpenAI(t *testing.T) {
	server, lastRequest := openAIStub(t, "## Project Overview\nall good", http.StatusOK)
	gateway := newTestGateway(t, &config.AIConfig{
		Provider: config.ProviderOpenAI,
		APIKey:   "test-key",
		BaseURL:  server.URL,
	})

	digest := gateway.GenerateDailyDigest(context.Background(), testNotes())

	assert.Equal(t, "## Project Overview\nall good", digest)
	assert.Equal(t, openAIDefaultModel, lastRequest.Model)
	require.Len(t, lastRequest.Messages, 1)
	assert.Equal(t, "user", lastRequest.Messages[0].Role)
	assert.Contains(t, lastRequest.Messages[0].Content, "fix the login timeout")
	assert.Contains(t, lastRequest.Messages[0].Content, "Project Overview")
}

func TestGenerateDailyDigest_Qwen(t *testing.T) {
	server, lastRequest := qwenStub(t, "digest text")
	gateway := newTestGateway(t, &config.AIConfig{
		Provider: config.ProviderQwen,
		APIKey:   "test-key",
		Model:    "qwen-max",
		BaseURL:  server.URL,
	})

	digest := gateway.GenerateDailyDigest(context.Background(), testNotes())

	assert.Equal(t, "digest text", digest)
	assert.Equal(t, "qwen-max", lastRequest.Model)
	assert.Equal(t, "message", lastRequest.Parameters.ResultFormat)
	require.Len(t, lastRequest.Input.Messages, 1)
	assert.Contains(t, lastRequest.Input.Messages[0].Content, "follow up with the design team")
}

func TestGenerateDailyDigest_EmptyNotesSkipsProvider(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	gateway := newTestGateway(t, &config.AIConfig{
		Provider: config.ProviderOpenAI,
		APIKey:   "test-key",
		BaseURL:  server.URL,
	})

	digest := gateway.GenerateDailyDigest(context.Background(), nil)

	assert.Equal(t, emptyDigestPlaceholder, digest)
	assert.False(t, called)
}

func TestGenerateDailyDigest_ProviderErrorReturnsApology(t *testing.T) {
	server, _ := openAIStub(t, "", http.StatusInternalServerError)
	gateway := newTestGateway(t, &config.AIConfig{
		Provider: config.ProviderOpenAI,
		APIKey:   "test-key",
		BaseURL:  server.URL,
	})

	digest := gateway.GenerateDailyDigest(context.Background(), testNotes())

	assert.Equal(t, digestApology, digest)
}

func TestOptimizeContent_StripsResidualMarkup(t *testing.T) {
	server, lastRequest := openAIStub(t, "# Plan\n\n- **step one**\n- step two", http.StatusOK)
	gateway := newTestGateway(t, &config.AIConfig{
		Provider: config.ProviderOpenAI,
		APIKey:   "test-key",
		BaseURL:  server.URL,
	})

	got := gateway.OptimizeContent(context.Background(), "plan: step one, step two")

	assert.Equal(t, "Plan\n\nstep one\nstep two", got)
	assert.Contains(t, lastRequest.Messages[0].Content, "plan: step one, step two")
}

func TestOptimizeContent_ProviderErrorReturnsOriginal(t *testing.T) {
	server, _ := openAIStub(t, "", http.StatusBadGateway)
	gateway := newTestGateway(t, &config.AIConfig{
		Provider: config.ProviderOpenAI,
		APIKey:   "test-key",
		BaseURL:  server.URL,
	})

	original := "raw unedited text"
	assert.Equal(t, original, gateway.OptimizeContent(context.Background(), original))
}

func TestProcessAssistantChat_ParsesActions(t *testing.T) {
	reply := `Sure! {"message":"Created it.","actions":[{"type":"create","params":{"text":"buy milk"}},{"type":"teleport","params":{}}]} done`
	server, _ := openAIStub(t, reply, http.StatusOK)
	gateway := newTestGateway(t, &config.AIConfig{
		Provider: config.ProviderOpenAI,
		APIKey:   "test-key",
		BaseURL:  server.URL,
	})

	got := gateway.ProcessAssistantChat(context.Background(), "add buy milk", testNotes())

	assert.Equal(t, "Created it.", got.Message)
	require.Len(t, got.Actions, 1)
	assert.Equal(t, models.ActionCreate, got.Actions[0].Type)
	assert.Equal(t, "buy milk", got.Actions[0].Params["text"])
}

func TestProcessAssistantChat_NonJSONFallsBackToRawText(t *testing.T) {
	server, _ := openAIStub(t, "  I could not decide on an action.  ", http.StatusOK)
	gateway := newTestGateway(t, &config.AIConfig{
		Provider: config.ProviderOpenAI,
		APIKey:   "test-key",
		BaseURL:  server.URL,
	})

	got := gateway.ProcessAssistantChat(context.Background(), "hmm", nil)

	assert.Equal(t, "I could not decide on an action.", got.Message)
	assert.NotNil(t, got.Actions)
	assert.Empty(t, got.Actions)
}

func TestProcessAssistantChat_ProviderErrorNeverPanics(t *testing.T) {
	server, _ := openAIStub(t, "", http.StatusServiceUnavailable)
	gateway := newTestGateway(t, &config.AIConfig{
		Provider: config.ProviderOpenAI,
		APIKey:   "test-key",
		BaseURL:  server.URL,
	})

	got := gateway.ProcessAssistantChat(context.Background(), "hello", nil)

	assert.NotEmpty(t, got.Message)
	assert.NotNil(t, got.Actions)
	assert.Empty(t, got.Actions)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  bool
	}{
		{name: "PlainOK", reply: "OK", want: true},
		{name: "LowercaseOK", reply: "ok", want: true},
		{name: "OKWithChatter", reply: "Sure thing: OK.", want: true},
		{name: "Refusal", reply: "I cannot help with that.", want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server, _ := openAIStub(t, test.reply, http.StatusOK)
			gateway := newTestGateway(t, &config.AIConfig{
				Provider: config.ProviderOpenAI,
				APIKey:   "test-key",
				BaseURL:  server.URL,
			})

			assert.Equal(t, test.want, gateway.ValidateConfig(context.Background()))
		})
	}
}

func TestValidateConfig_ProviderErrorIsFalse(t *testing.T) {
	server, _ := openAIStub(t, "", http.StatusUnauthorized)
	gateway := newTestGateway(t, &config.AIConfig{
		Provider: config.ProviderOpenAI,
		APIKey:   "test-key",
		BaseURL:  server.URL,
	})

	assert.False(t, gateway.ValidateConfig(context.Background()))
}
