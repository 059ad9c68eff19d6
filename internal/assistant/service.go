package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/graceview/graceview-api/pkg/config"
)

var (
	ErrEmptyConversation = errors.New("conversation has no messages")
	ErrProviderFailure   = errors.New("assistant provider request failed")
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []Message `json:"messages"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// systemPrompt keeps the assistant on topic. It is prepended to every
// conversation before it goes to the provider.
const systemPrompt = "You are a friendly Bible study assistant for a church community app. " +
	"Answer questions about scripture, faith and church life. " +
	"Keep answers short and kind, and cite book, chapter and verse when you quote."

// AssistantService proxies conversations to a chat-completion provider.
// There is no retry: a failed call surfaces as ErrProviderFailure and the
// app decides whether to resend.
type AssistantService struct {
	url    string
	key    string
	model  string
	client *http.Client
}

func NewAssistantService(cfg *config.Config) AssistantService {
	return AssistantService{
		url:   cfg.AssistantURL,
		key:   cfg.AssistantKey,
		model: cfg.AssistantModel,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *AssistantService) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if len(req.Messages) == 0 {
		return nil, ErrEmptyConversation
	}

	messages := make([]Message, 0, len(req.Messages)+1)
	messages = append(messages, Message{Role: "system", Content: systemPrompt})
	for _, m := range req.Messages {
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		messages = append(messages, m)
	}

	payload, err := json.Marshal(map[string]interface{}{
		"model":    s.model,
		"messages": messages,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.key)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrProviderFailure, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrProviderFailure, resp.StatusCode, truncate(string(body), 200))
	}

	reply := gjson.GetBytes(body, "choices.0.message.content").String()
	if reply == "" {
		return nil, fmt.Errorf("%w: empty completion", ErrProviderFailure)
	}
	return &ChatResponse{Reply: reply}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
