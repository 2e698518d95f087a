package telegram

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.hacdias.com/folio/core"
	tb "gopkg.in/telebot.v3"
)

func TestTelegram(t *testing.T) {
	var (
		mu       sync.Mutex
		messages []string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/sendMessage"), r.URL.Path)
		var payload map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "42", payload["chat_id"])

		mu.Lock()
		messages = append(messages, payload["text"])
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`))
	}))
	defer srv.Close()

	n, err := newTelegram(&core.Telegram{Token: "token", ChatID: 42}, tb.Settings{
		Token:   "token",
		URL:     srv.URL,
		Offline: true,
	})
	require.NoError(t, err)

	n.Info("📬 New lead from Ada <ada@example.com>\n\nUse <div> if a<b")
	n.Error(errors.New("disk is full"))
	n.Info(strings.Repeat("é", maxMessageLength+10))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, messages, 3)
	assert.Equal(t, "📬 New lead from Ada <ada@example.com>\n\nUse <div> if a<b", messages[0])
	assert.Equal(t, "❌ disk is full", messages[1])
	assert.Equal(t, maxMessageLength, utf8.RuneCountInString(messages[2]))
	assert.True(t, strings.HasSuffix(messages[2], "é…"))
}

func TestFitMessage(t *testing.T) {
	tests := []struct {
		title    string
		input    string
		expected string
	}{
		{"Short", "hello", "hello"},
		{"At Limit", strings.Repeat("a", maxMessageLength), strings.Repeat("a", maxMessageLength)},
		{"Over Limit", strings.Repeat("a", maxMessageLength+1), strings.Repeat("a", maxMessageLength-1) + "…"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, fitMessage(tt.input), "failed for title: %s", tt.title)
	}
}
