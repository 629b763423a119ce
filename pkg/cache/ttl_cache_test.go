package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestTTLCache_Expiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	ttl := time.Minute

	tests := []struct {
		name    string
		elapsed time.Duration
		found   bool
	}{
		{name: "logo após inserir", elapsed: 0, found: true},
		{name: "um instante antes do ttl", elapsed: ttl - time.Millisecond, found: true},
		{name: "exatamente no ttl", elapsed: ttl, found: false},
		{name: "depois do ttl", elapsed: ttl + time.Millisecond, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock.t = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
			c := New[string]("tokens", ttl, 10).WithClock(clock.now)
			c.Put("user:1", "token")

			clock.advance(tt.elapsed)
			value, ok := c.Get("user:1")

			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, "token", value)
			} else {
				assert.Equal(t, 0, c.Len(), "entrada vencida deve ser removida na leitura")
			}
		})
	}
}

func TestTTLCache_EvictsOldestFifth(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	capacity := 10
	c := New[int]("insights", time.Hour, capacity).WithClock(clock.now)

	for i := 0; i < capacity; i++ {
		c.Put(fmt.Sprintf("k%d", i), i)
		clock.advance(time.Second)
	}
	require.Equal(t, capacity, c.Len())

	c.Put("novo", 99)

	assert.Equal(t, capacity-capacity/5+1, c.Len())

	// k0 e k1 são os mais antigos
	_, ok := c.Get("k0")
	assert.False(t, ok)
	_, ok = c.Get("k1")
	assert.False(t, ok)

	for i := 2; i < capacity; i++ {
		v, ok := c.Get(fmt.Sprintf("k%d", i))
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}

	v, ok := c.Get("novo")
	assert.True(t, ok)
	assert.Equal(t, 99, v)
}

func TestTTLCache_UpdateExistingKeyDoesNotEvict(t *testing.T) {
	c := New[int]("assets", time.Hour, 3)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	c.Put("b", 20)

	assert.Equal(t, 3, c.Len())
	v, _ := c.Get("b")
	assert.Equal(t, 20, v)
}

func TestTTLCache_SmallCapacityEvictsAtLeastOne(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New[int]("small", time.Hour, 2).WithClock(clock.now)
	c.Put("a", 1)
	clock.advance(time.Second)
	c.Put("b", 2)
	clock.advance(time.Second)

	c.Put("c", 3)

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestTTLCache_ContentType(t *testing.T) {
	c := New[[]byte]("assets", time.Hour, 5)
	c.PutWithContentType("https://cdn/img.png", []byte{0x1}, "image/png")

	entry, ok := c.GetEntry("https://cdn/img.png")

	require.True(t, ok)
	assert.Equal(t, "image/png", entry.ContentType)
	assert.Equal(t, []byte{0x1}, entry.Value)

	c.Delete("https://cdn/img.png")
	_, ok = c.GetEntry("https://cdn/img.png")
	assert.False(t, ok)
}
