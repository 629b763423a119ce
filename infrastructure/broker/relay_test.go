package broker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/pkg/eventbus"
	"github.com/vfg2006/ads-mirror-api/pkg/streamclient"
)

func TestRoutingKeyFor(t *testing.T) {
	assert.Equal(t, "user.42", routingKeyFor("user:42"))
	assert.Equal(t, "page.123", routingKeyFor("page:123"))
}

func TestEnvelopeRoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	env := envelope{
		Origin: "instance-a",
		Key:    "user:1",
		Event: domain.Event{
			ID:        "evt-1",
			Type:      domain.EventEntityChanged,
			Key:       "user:1",
			Data:      map[string]any{"id": "c1", "new_status": "PAUSED"},
			CreatedAt: created,
		},
	}

	body, err := encodeEnvelope(env)
	require.NoError(t, err)

	decoded, err := decodeDelivery(body)
	require.NoError(t, err)

	assert.Equal(t, "instance-a", decoded.Origin)
	assert.Equal(t, "user:1", decoded.Key)
	assert.Equal(t, domain.EventEntityChanged, decoded.Event.Type)
	assert.True(t, created.Equal(decoded.Event.CreatedAt))
	assert.Equal(t, "PAUSED", decoded.Event.Data.(map[string]any)["new_status"])
}

func TestDecodeDelivery_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "json inválido", body: "{"},
		{name: "sem chave", body: `{"origin":"a","event":{"type":"entity.changed"}}`},
		{name: "sem origem", body: `{"key":"user:1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeDelivery([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestRelay_EnqueueSkipsRemoteEvents(t *testing.T) {
	r := &Relay{
		instanceID: "instance-a",
		outbox:     make(chan envelope, 1),
		bus:        eventbus.New(),
	}

	r.enqueue(eventbus.Delivery{Key: "user:1", Event: domain.Event{ID: "remoto"}, Remote: true})
	assert.Len(t, r.outbox, 0)

	r.enqueue(eventbus.Delivery{Key: "user:1", Event: domain.Event{ID: "local"}})
	require.Len(t, r.outbox, 1)
	env := <-r.outbox
	assert.Equal(t, "instance-a", env.Origin)
	assert.Equal(t, "local", env.Event.ID)

	// fila cheia descarta sem bloquear
	r.enqueue(eventbus.Delivery{Key: "user:1", Event: domain.Event{ID: "1"}})
	r.enqueue(eventbus.Delivery{Key: "user:1", Event: domain.Event{ID: "2"}})
	assert.Len(t, r.outbox, 1)
}

func TestReconnectTentaAteConseguir(t *testing.T) {
	backoff := streamclient.NewBackoff(time.Millisecond, 5*time.Millisecond, 2)

	calls := 0
	sess, err := reconnect(context.Background(), backoff, func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("connection refused")
		}
		return "sessão", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "sessão", sess)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 0, backoff.Attempts())
}

func TestReconnectParaQuandoContextoCancela(t *testing.T) {
	backoff := streamclient.NewBackoff(time.Millisecond, 5*time.Millisecond, 2)
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	_, err := reconnect(ctx, backoff, func() (string, error) {
		calls++
		if calls == 2 {
			cancel()
		}
		return "", errors.New("connection refused")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, calls)
}

func TestRelayNaoPublicaDuranteReconexao(t *testing.T) {
	r := &Relay{instanceID: "instance-a"}

	err := r.publish(context.Background(), envelope{Origin: "instance-a", Key: "user:1"})

	assert.EqualError(t, err, "broker connection is closed")
}
