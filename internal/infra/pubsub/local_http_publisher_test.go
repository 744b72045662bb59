package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hbb/internal/domain/constants"
	"hbb/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishRegistryEvent(t *testing.T) {
	var received PubSubPushMessage
	var gotRequestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	event := &service.RegistryEvent{
		RequestID:  "req-42",
		Type:       constants.EventTypeBusinessCreated,
		UserID:     "user-1",
		BusinessID: "business-1",
		OccurredAt: time.Now().UTC(),
	}

	require.NoError(t, publisher.PublishRegistryEvent(context.Background(), event))

	assert.Equal(t, "req-42", gotRequestID)
	assert.Equal(t, constants.EventTypeBusinessCreated, received.Message.Attributes["type"])
	assert.Equal(t, "user-1", received.Message.Attributes["user_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	payload, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.RegistryEvent
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, event.Type, decoded.Type)
	assert.Equal(t, event.BusinessID, decoded.BusinessID)
}

func TestLocalHTTPPublisher_PublishRegistryEvent_ConsumerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishRegistryEvent(context.Background(), &service.RegistryEvent{
		Type:   constants.EventTypeUserCreated,
		UserID: "user-1",
	})

	assert.Error(t, err)
}
