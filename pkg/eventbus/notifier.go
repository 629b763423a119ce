package eventbus

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/pkg/metrics"
)

// ChangeNotifier esconde a estratégia de entrega: push (inscrição no
// barramento) ou pull (consulta periódica ao log de eventos).
type ChangeNotifier interface {
	Listen(ctx context.Context, keys []string, fn func(domain.Event) error) error
}

// PushNotifier entrega os eventos assim que são publicados. Um buffer cheio
// descarta o evento apenas para este ouvinte.
type PushNotifier struct {
	bus    *Bus
	buffer int
}

func NewPushNotifier(bus *Bus, buffer int) *PushNotifier {
	if buffer <= 0 {
		buffer = 32
	}
	return &PushNotifier{bus: bus, buffer: buffer}
}

func (n *PushNotifier) Listen(ctx context.Context, keys []string, fn func(domain.Event) error) error {
	ch := make(chan domain.Event, n.buffer)

	unsubscribes := make([]func(), 0, len(keys))
	for _, key := range keys {
		unsubscribes = append(unsubscribes, n.bus.Subscribe(key, func(evt domain.Event) error {
			select {
			case ch <- evt:
			default:
				metrics.StreamDropped.Inc()
			}
			return nil
		}))
	}
	defer func() {
		for _, unsubscribe := range unsubscribes {
			unsubscribe()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt := <-ch:
			if err := fn(evt); err != nil {
				return err
			}
		}
	}
}

// Record é um evento no log do PollNotifier
type Record struct {
	Cursor uint64       `json:"cursor"`
	Event  domain.Event `json:"event"`
}

// PollNotifier mantém um log limitado por chave com cursor crescente. Serve
// o fallback de polling (GET /v1/events) e também implementa ChangeNotifier
// consultando o log em intervalo fixo.
type PollNotifier struct {
	mu       sync.RWMutex
	cursor   uint64
	capacity int
	interval time.Duration
	logs     map[string][]Record
	stop     func()
}

func NewPollNotifier(bus *Bus, capacity int, interval time.Duration) *PollNotifier {
	if capacity <= 0 {
		capacity = 100
	}
	if interval <= 0 {
		interval = time.Second
	}

	p := &PollNotifier{
		capacity: capacity,
		interval: interval,
		logs:     make(map[string][]Record),
	}
	p.stop = bus.Observe(func(d Delivery) {
		p.Append(d.Key, d.Event)
	})

	return p
}

func (p *PollNotifier) Append(key string, evt domain.Event) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cursor++
	log := append(p.logs[key], Record{Cursor: p.cursor, Event: evt})
	if len(log) > p.capacity {
		log = log[len(log)-p.capacity:]
	}
	p.logs[key] = log

	return p.cursor
}

// Cursor retorna a posição atual do log
func (p *PollNotifier) Cursor() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cursor
}

// Since retorna os eventos das chaves com cursor maior que o informado, em
// ordem, e o cursor a ser usado na próxima consulta.
func (p *PollNotifier) Since(keys []string, cursor uint64, limit int) ([]Record, uint64) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	records := make([]Record, 0)
	for _, key := range keys {
		log := p.logs[key]
		idx := sort.Search(len(log), func(i int) bool { return log[i].Cursor > cursor })
		records = append(records, log[idx:]...)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Cursor < records[j].Cursor })

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	next := cursor
	if len(records) > 0 {
		next = records[len(records)-1].Cursor
	} else if cursor > p.cursor {
		next = p.cursor
	}

	return records, next
}

func (p *PollNotifier) Listen(ctx context.Context, keys []string, fn func(domain.Event) error) error {
	cursor := p.Cursor()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			var records []Record
			records, cursor = p.Since(keys, cursor, 0)
			for _, r := range records {
				if err := fn(r.Event); err != nil {
					return err
				}
			}
		}
	}
}

// Close para de observar o barramento
func (p *PollNotifier) Close() {
	p.stop()
}
