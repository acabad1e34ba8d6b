package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, status int, body string, seen *chatRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if seen != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func reply(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": content}}},
	})
	return string(b)
}

func TestChatClient_Complete(t *testing.T) {
	var seen chatRequest
	srv := chatServer(t, http.StatusOK, reply("  hello  "), &seen)

	c := NewChatClient(Config{Endpoint: srv.URL, Model: "m1", APIKey: "test-key"})
	out, err := c.Complete(context.Background(), Prompt{System: "sys", User: "usr", MaxTokens: 10, Temperature: 0.3})
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	assert.Equal(t, "m1", seen.Model)
	assert.Equal(t, 10, seen.MaxTokens)
	require.Len(t, seen.Messages, 2)
	assert.Equal(t, chatMessage{Role: "system", Content: "sys"}, seen.Messages[0])
	assert.Equal(t, chatMessage{Role: "user", Content: "usr"}, seen.Messages[1])
}

func TestChatClient_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`},
		{"rate limited", http.StatusTooManyRequests, ``},
		{"malformed json", http.StatusOK, `{"choices": [`},
		{"no choices", http.StatusOK, `{"choices": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := chatServer(t, tt.status, tt.body, nil)
			c := NewChatClient(Config{Endpoint: srv.URL, Model: "m", APIKey: "test-key"})
			_, err := c.Complete(context.Background(), Prompt{User: "x"})
			assert.ErrorIs(t, err, ErrUnavailable)
		})
	}
}

func TestChatClient_Misconfigured(t *testing.T) {
	_, err := NewChatClient(Config{}).Complete(context.Background(), Prompt{User: "x"})
	assert.ErrorIs(t, err, ErrUnavailable)

	var nilClient *ChatClient
	_, err = nilClient.Complete(context.Background(), Prompt{User: "x"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestChatClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewChatClient(Config{Endpoint: url, Model: "m"}).Complete(context.Background(), Prompt{User: "x"})
	assert.ErrorIs(t, err, ErrUnavailable)
}
