package streamclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noSleep(_ context.Context, _ time.Duration) error { return nil }

func TestClient_GivesUpAfterMaxAttempts(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(server.URL, server.Client(), Options{MaxAttempts: 3, Sleep: noSleep})

	err := client.Run(context.Background(), func(Frame) error { return nil })

	assert.ErrorIs(t, err, ErrReconnectExhausted)
	assert.Equal(t, int32(4), requests.Load())
}

func TestClient_ParsesFramesAndResetsAfterConnect(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := requests.Add(1)
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, ": comentário\n\n")
		fmt.Fprintf(w, "id: evt-%d\nevent: entity.changed\ndata: {\"n\":%d}\n\n", n, n)
		fmt.Fprintf(w, "event: keepalive\ndata: {}\n\n")
	}))
	defer server.Close()

	stop := errors.New("chega")
	var frames []Frame
	client := New(server.URL, server.Client(), Options{MaxAttempts: 1, Sleep: noSleep})

	err := client.Run(context.Background(), func(f Frame) error {
		frames = append(frames, f)
		if len(frames) == 6 {
			return stop
		}
		return nil
	})

	// três conexões seguidas com sucesso, apesar de MaxAttempts = 1
	require.ErrorIs(t, err, stop)
	require.Len(t, frames, 6)
	assert.Equal(t, Frame{ID: "evt-1", Event: "entity.changed", Data: `{"n":1}`}, frames[0])
	assert.Equal(t, Frame{Event: "keepalive", Data: "{}"}, frames[1])
	assert.Equal(t, "evt-3", frames[4].ID)
	assert.Equal(t, int32(3), requests.Load())
}

func TestClient_StopsOnContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	client := New(server.URL, server.Client(), Options{
		MaxAttempts: 10,
		Sleep: func(context.Context, time.Duration) error {
			cancel()
			return context.Canceled
		},
	})

	assert.NoError(t, client.Run(ctx, func(Frame) error { return nil }))
}

func TestBackoff(t *testing.T) {
	b := NewBackoff(100*time.Millisecond, 400*time.Millisecond, 2)

	first := b.Next()
	assert.GreaterOrEqual(t, first, 100*time.Millisecond)
	assert.LessOrEqual(t, first, 120*time.Millisecond)

	b.Next()
	third := b.Next()
	assert.GreaterOrEqual(t, third, 320*time.Millisecond)
	assert.LessOrEqual(t, third, 480*time.Millisecond)

	fourth := b.Next()
	assert.LessOrEqual(t, fourth, 480*time.Millisecond, "limitado ao máximo")
	assert.Equal(t, 4, b.Attempts())

	b.Reset()
	assert.Equal(t, 0, b.Attempts())
}
