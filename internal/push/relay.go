package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// batchSize is the relay's documented cap on recipients per request.
const batchSize = 100

// RelayClient talks to an Expo-compatible push relay. Batches that fail are
// reported but never retried here; the next scheduled run covers the gap.
type RelayClient struct {
	url    string
	client *http.Client
}

func NewRelayClient(url string) *RelayClient {
	return &RelayClient{
		url: url,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Send fans the message out to all tokens in batches. It returns the number
// of batches that failed alongside the first error seen.
func (c *RelayClient) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, error) {
	var failed int
	var firstErr error

	for start := 0; start < len(tokens); start += batchSize {
		end := start + batchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		msg := RelayMessage{
			To:    tokens[start:end],
			Title: title,
			Body:  body,
			Data:  data,
		}
		if err := c.sendBatch(ctx, msg); err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return failed, firstErr
}

func (c *RelayClient) sendBatch(ctx context.Context, msg RelayMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("relay returned %d: %s", resp.StatusCode, body)
	}
	return nil
}
