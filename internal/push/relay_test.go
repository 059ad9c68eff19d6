package push

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendBatchesAtHundred(t *testing.T) {
	var batches []RelayMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg RelayMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		batches = append(batches, msg)
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	tokens := make([]string, 250)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("ExponentPushToken[%03d]", i)
	}

	client := NewRelayClient(srv.URL)
	failed, err := client.Send(context.Background(), tokens, "Morning Mercies", "Lm 3:22-23", nil)
	require.NoError(t, err)
	assert.Zero(t, failed)

	require.Len(t, batches, 3)
	assert.Len(t, batches[0].To, 100)
	assert.Len(t, batches[1].To, 100)
	assert.Len(t, batches[2].To, 50)
	assert.Equal(t, "Morning Mercies", batches[0].Title)
}

func TestSendContinuesPastFailedBatch(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "bad gateway", http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	tokens := make([]string, 150)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("ExponentPushToken[%03d]", i)
	}

	client := NewRelayClient(srv.URL)
	failed, err := client.Send(context.Background(), tokens, "t", "b", nil)

	assert.Equal(t, 1, failed)
	assert.Error(t, err)
	assert.Equal(t, 2, calls, "the second batch still goes out")
}

func TestSendNoTokensNoRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))
	defer srv.Close()

	client := NewRelayClient(srv.URL)
	failed, err := client.Send(context.Background(), nil, "t", "b", nil)
	assert.NoError(t, err)
	assert.Zero(t, failed)
}

func TestCronSpec(t *testing.T) {
	spec, err := cronSpec("07:00")
	require.NoError(t, err)
	assert.Equal(t, "0 7 * * *", spec)

	spec, err = cronSpec("21:30")
	require.NoError(t, err)
	assert.Equal(t, "30 21 * * *", spec)

	_, err = cronSpec("7am")
	assert.Error(t, err)

	_, err = cronSpec("25:00")
	assert.Error(t, err)
}
