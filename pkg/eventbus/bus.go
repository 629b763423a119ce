// Package eventbus implementa o registro pub/sub por chave usado para
// distribuir eventos de mudança, mensagens e sincronizações.
package eventbus

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/pkg/metrics"
	"github.com/vfg2006/ads-mirror-api/pkg/utils"
)

// Handler recebe os eventos de uma chave. Erros e panics são registrados e
// não afetam os outros inscritos.
type Handler func(evt domain.Event) error

// Delivery é o que os observadores recebem. Remote indica que o evento veio
// de outra instância pelo broker.
type Delivery struct {
	Key    string
	Event  domain.Event
	Remote bool
}

type Observer func(d Delivery)

// Publisher é o lado de publicação usado pelos casos de uso
type Publisher interface {
	Publish(key string, evt domain.Event)
}

type Bus struct {
	mu        sync.RWMutex
	nextID    uint64
	handlers  map[string]map[uint64]Handler
	observers map[uint64]Observer
}

func New() *Bus {
	return &Bus{
		handlers:  make(map[string]map[uint64]Handler),
		observers: make(map[uint64]Observer),
	}
}

// Subscribe registra o handler na chave. A função retornada remove a
// inscrição e pode ser chamada mais de uma vez.
func (b *Bus) Subscribe(key string, h Handler) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	if b.handlers[key] == nil {
		b.handlers[key] = make(map[uint64]Handler)
	}
	b.handlers[key][id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.handlers[key], id)
			if len(b.handlers[key]) == 0 {
				delete(b.handlers, key)
			}
		})
	}
}

// Observe registra um observador de todas as chaves (log de polling, relay)
func (b *Bus) Observe(o Observer) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.observers[id] = o
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.observers, id)
		})
	}
}

// Publish entrega o evento de forma síncrona a todos os inscritos da chave
func (b *Bus) Publish(key string, evt domain.Event) {
	b.dispatch(key, evt, false)
}

// Deliver entrega um evento recebido de outra instância. Observadores são
// avisados com Remote=true para que o relay não o republique.
func (b *Bus) Deliver(key string, evt domain.Event) int {
	return b.dispatch(key, evt, true)
}

func (b *Bus) SubscriberCount(key string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[key])
}

func (b *Bus) dispatch(key string, evt domain.Event, remote bool) int {
	if evt.ID == "" {
		evt.ID = utils.NewEventID()
	}
	if evt.CreatedAt.IsZero() {
		evt.CreatedAt = time.Now().UTC()
	}
	evt.Key = key

	// cópia para não segurar o lock enquanto os handlers rodam
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers[key]))
	for _, h := range b.handlers[key] {
		handlers = append(handlers, h)
	}
	observers := make([]Observer, 0, len(b.observers))
	for _, o := range b.observers {
		observers = append(observers, o)
	}
	b.mu.RUnlock()

	metrics.BusPublished.WithLabelValues(string(evt.Type)).Inc()

	for _, o := range observers {
		notifyObserver(o, Delivery{Key: key, Event: evt, Remote: remote})
	}

	delivered := 0
	for _, h := range handlers {
		if err := safeCall(h, evt); err != nil {
			metrics.BusHandlerFailures.Inc()
			logrus.WithFields(logrus.Fields{
				"key":        key,
				"event_id":   evt.ID,
				"event_type": evt.Type,
				"error":      err.Error(),
			}).Warn("eventbus: subscriber failed")
			continue
		}
		delivered++
	}

	return delivered
}

func safeCall(h Handler, evt domain.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return h(evt)
}

func notifyObserver(o Observer, d Delivery) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("eventbus: observer panicked")
		}
	}()
	o(d)
}
