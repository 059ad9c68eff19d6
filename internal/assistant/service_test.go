package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceview/graceview-api/pkg/config"
)

func serviceFor(srv *httptest.Server) AssistantService {
	return NewAssistantService(&config.Config{
		AssistantURL:   srv.URL,
		AssistantKey:   "test-key",
		AssistantModel: "test-model",
	})
}

func TestChatExtractsReply(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"John 3:16 is a good place to start."}}]}`))
	}))
	defer srv.Close()

	svc := serviceFor(srv)
	resp, err := svc.Chat(context.Background(), ChatRequest{Messages: []Message{
		{Role: "user", Content: "Where should I start reading?"},
	}})
	require.NoError(t, err)

	assert.Equal(t, "John 3:16 is a good place to start.", resp.Reply)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotBody["model"])

	// The system prompt is prepended, the user's message follows.
	messages := gotBody["messages"].([]interface{})
	require.Len(t, messages, 2)
	first := messages[0].(map[string]interface{})
	assert.Equal(t, "system", first["role"])
}

func TestChatProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := serviceFor(srv)
	_, err := svc.Chat(context.Background(), ChatRequest{Messages: []Message{
		{Role: "user", Content: "hello"},
	}})
	assert.ErrorIs(t, err, ErrProviderFailure)
}

func TestChatMalformedCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	svc := serviceFor(srv)
	_, err := svc.Chat(context.Background(), ChatRequest{Messages: []Message{
		{Role: "user", Content: "hello"},
	}})
	assert.ErrorIs(t, err, ErrProviderFailure)
}

func TestChatRejectsEmptyConversation(t *testing.T) {
	svc := NewAssistantService(&config.Config{AssistantURL: "http://localhost:0"})
	_, err := svc.Chat(context.Background(), ChatRequest{})
	assert.ErrorIs(t, err, ErrEmptyConversation)
}
