package cache

import (
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/ads-mirror-api/pkg/metrics"
)

// Entry guarda o valor, o tipo de conteúdo (para assets binários) e o
// momento de inserção usado tanto na expiração quanto na remoção.
type Entry[V any] struct {
	Value       V
	ContentType string
	InsertedAt  time.Time
}

// TTLCache é um cache limitado com expiração preguiçosa. Ao atingir a
// capacidade, os capacity/5 itens mais antigos são removidos antes da inserção.
type TTLCache[V any] struct {
	mu       sync.Mutex
	name     string
	ttl      time.Duration
	capacity int
	entries  map[string]Entry[V]
	now      func() time.Time
}

func New[V any](name string, ttl time.Duration, capacity int) *TTLCache[V] {
	if capacity <= 0 {
		capacity = 1
	}

	return &TTLCache[V]{
		name:     name,
		ttl:      ttl,
		capacity: capacity,
		entries:  make(map[string]Entry[V], capacity),
		now:      time.Now,
	}
}

// WithClock troca o relógio, usado nos testes
func (c *TTLCache[V]) WithClock(now func() time.Time) *TTLCache[V] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
	return c
}

func (c *TTLCache[V]) Name() string { return c.name }

func (c *TTLCache[V]) TTL() time.Duration { return c.ttl }

func (c *TTLCache[V]) Get(key string) (V, bool) {
	entry, ok := c.GetEntry(key)
	return entry.Value, ok
}

// GetEntry retorna a entrada apenas se now - insertedAt < ttl. Entradas
// vencidas são apagadas na leitura.
func (c *TTLCache[V]) GetEntry(key string) (Entry[V], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		metrics.CacheRequests.WithLabelValues(c.name, "miss").Inc()
		return Entry[V]{}, false
	}

	if c.now().Sub(entry.InsertedAt) >= c.ttl {
		delete(c.entries, key)
		metrics.CacheRequests.WithLabelValues(c.name, "expired").Inc()
		metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.entries)))
		return Entry[V]{}, false
	}

	metrics.CacheRequests.WithLabelValues(c.name, "hit").Inc()
	return entry, true
}

func (c *TTLCache[V]) Put(key string, value V) {
	c.PutWithContentType(key, value, "")
}

func (c *TTLCache[V]) PutWithContentType(key string, value V, contentType string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		c.evictOldest()
	}

	c.entries[key] = Entry[V]{
		Value:       value,
		ContentType: contentType,
		InsertedAt:  c.now(),
	}

	metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.entries)))
}

func (c *TTLCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.entries)))
}

func (c *TTLCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest deve ser chamado com o lock adquirido
func (c *TTLCache[V]) evictOldest() {
	n := c.capacity / 5
	if n < 1 {
		n = 1
	}

	type aged struct {
		key        string
		insertedAt time.Time
	}

	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{key: k, insertedAt: e.InsertedAt})
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].insertedAt.Before(all[j].insertedAt)
	})

	for i := 0; i < n && i < len(all); i++ {
		delete(c.entries, all[i].key)
	}

	metrics.CacheEvictions.WithLabelValues(c.name).Add(float64(min(n, len(all))))
}
