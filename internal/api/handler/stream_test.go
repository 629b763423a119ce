package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/messaging"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
	"github.com/vfg2006/ads-mirror-api/pkg/eventbus"
	"github.com/vfg2006/ads-mirror-api/pkg/stream"
)

type pageAuthorizerFunc func(ctx context.Context, userID int, pageIDs []string) error

func (f pageAuthorizerFunc) AuthorizePages(ctx context.Context, userID int, pageIDs []string) error {
	return f(ctx, userID, pageIDs)
}

// managedPages aceita apenas as páginas informadas
func managedPages(owned ...string) PageAuthorizer {
	return pageAuthorizerFunc(func(_ context.Context, _ int, pageIDs []string) error {
		for _, pageID := range pageIDs {
			if !slices.Contains(owned, pageID) {
				return messaging.NewMessagingError(messaging.ErrPageNotManaged, apiErrors.ErrInsufficientPrivilege, "", pageID)
			}
		}
		return nil
	})
}

func TestStreamKeys(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/stream?page=p_1&page=&page=p_2&page=p_1", nil)

	keys := streamKeys(testUserID, requestedPages(req))

	assert.Equal(t, []string{"user:7", "page:p_1", "page:p_2"}, keys)
}

func TestStreamRecusaPaginaDeOutroUsuario(t *testing.T) {
	bus := eventbus.New()
	notifier := eventbus.NewPushNotifier(bus, 8)

	rec := httptest.NewRecorder()
	Stream(notifier, managedPages("p_1"), stream.Options{KeepaliveInterval: time.Hour}).
		ServeHTTP(rec, newRequest(http.MethodGet, "/v1/stream?page=p_1&page=p_9", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, bus.SubscriberCount(domain.PageKey("p_9")))
	assert.Zero(t, bus.SubscriberCount(domain.UserKey(testUserID)))
}

func TestStreamEntregaEventosELiberaInscricao(t *testing.T) {
	bus := eventbus.New()
	notifier := eventbus.NewPushNotifier(bus, 8)
	userKey := domain.UserKey(testUserID)

	req := newRequest(http.MethodGet, "/v1/stream?page=p_1", nil)
	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		Stream(notifier, managedPages("p_1"), stream.Options{KeepaliveInterval: time.Hour}).ServeHTTP(rec, req)
	}()

	require.Eventually(t, func() bool {
		return bus.SubscriberCount(userKey) == 1 && bus.SubscriberCount(domain.PageKey("p_1")) == 1
	}, time.Second, 5*time.Millisecond)

	bus.Publish(userKey, domain.Event{ID: "evt_1", Type: domain.EventEntityChanged})
	bus.Publish(domain.PageKey("p_1"), domain.Event{ID: "evt_2", Type: domain.EventMessageCreated})

	// o handler grava de forma assíncrona; damos tempo para os frames saírem
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream não encerrou após o cancelamento")
	}

	assert.Zero(t, bus.SubscriberCount(userKey))
	assert.Zero(t, bus.SubscriberCount(domain.PageKey("p_1")))
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "id: evt_1\nevent: entity.changed\n")
	assert.Contains(t, rec.Body.String(), "id: evt_2\nevent: message.created\n")
}

func TestListEvents(t *testing.T) {
	bus := eventbus.New()
	pollLog := eventbus.NewPollNotifier(bus, 10, time.Hour)
	defer pollLog.Close()

	userKey := domain.UserKey(testUserID)
	bus.Publish(userKey, domain.Event{Type: domain.EventEntityChanged})
	bus.Publish(domain.UserKey(99), domain.Event{Type: domain.EventEntityChanged})
	bus.Publish(userKey, domain.Event{Type: domain.EventSyncCompleted})

	rec := httptest.NewRecorder()
	ListEvents(pollLog, managedPages()).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/events?cursor=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Events []eventbus.Record `json:"events"`
		Cursor uint64            `json:"cursor"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Events, 1)
	assert.Equal(t, domain.EventSyncCompleted, body.Events[0].Event.Type)
	assert.Equal(t, uint64(3), body.Cursor)
}

func TestListEventsParametrosInvalidos(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "cursor negativo", query: "?cursor=-1"},
		{name: "cursor não numérico", query: "?cursor=abc"},
		{name: "limit zero", query: "?limit=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := eventbus.New()
			pollLog := eventbus.NewPollNotifier(bus, 10, time.Hour)
			defer pollLog.Close()

			rec := httptest.NewRecorder()
			ListEvents(pollLog, managedPages()).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/events"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestListEventsNaoExpoePaginaDeOutroUsuario(t *testing.T) {
	bus := eventbus.New()
	pollLog := eventbus.NewPollNotifier(bus, 10, time.Hour)
	defer pollLog.Close()

	bus.Publish(domain.PageKey("p_9"), domain.Event{Type: domain.EventMessageCreated, Data: "segredo"})

	rec := httptest.NewRecorder()
	ListEvents(pollLog, managedPages("p_1")).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/events?page=p_9", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NotContains(t, rec.Body.String(), "segredo")
}
