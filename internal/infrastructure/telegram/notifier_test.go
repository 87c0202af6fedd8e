package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyExpired(t *testing.T) {
	var gotPath string
	var gotPayload sendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		json.NewEncoder(w).Encode(sendMessageResponse{OK: true})
	}))
	defer srv.Close()

	notifier := NewBotNotifier("test-token", "42", 2*time.Second)
	notifier.baseURL = srv.URL

	deliveryDate := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, notifier.NotifyExpired(context.Background(), 7, deliveryDate))

	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "42", gotPayload.ChatID)
	assert.Equal(t, "Заказ №7 просрочен. Дата поставки: 2020-01-01.", gotPayload.Text)
}

func TestNotifyExpired_APIRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(sendMessageResponse{OK: false, Description: "chat not found"})
	}))
	defer srv.Close()

	notifier := NewBotNotifier("test-token", "42", 2*time.Second)
	notifier.baseURL = srv.URL

	err := notifier.NotifyExpired(context.Background(), 7, time.Now())
	assert.ErrorContains(t, err, "chat not found")
}

func TestNotifyExpired_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	notifier := NewBotNotifier("test-token", "42", 2*time.Second)
	notifier.baseURL = srv.URL

	err := notifier.NotifyExpired(context.Background(), 7, time.Now())
	assert.Error(t, err)
}
