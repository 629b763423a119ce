// Package broker replica os eventos do barramento local entre instâncias via
// RabbitMQ. Cada instância publica o que foi emitido localmente e entrega
// no barramento local o que outras instâncias publicaram.
package broker

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/pkg/eventbus"
	"github.com/vfg2006/ads-mirror-api/pkg/metrics"
	"github.com/vfg2006/ads-mirror-api/pkg/streamclient"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	originHeader      = "origin"
	confirmTimeout    = 10 * time.Second
	outboxSize        = 256
	reconnectMinDelay = time.Second
	reconnectMaxDelay = 30 * time.Second
)

// envelope é o corpo publicado no exchange
type envelope struct {
	Origin string       `json:"origin"`
	Key    string       `json:"key"`
	Event  domain.Event `json:"event"`
}

// session agrupa a conexão e os canais abertos sobre ela. Uma queda da
// conexão invalida a sessão inteira.
type session struct {
	conn       *amqp.Connection
	pubChannel *amqp.Channel
	subChannel *amqp.Channel
	msgs       <-chan amqp.Delivery
	closed     chan *amqp.Error
}

func (s *session) close() {
	if s.subChannel != nil {
		s.subChannel.Close()
	}
	if s.pubChannel != nil {
		s.pubChannel.Close()
	}
	if s.conn != nil {
		s.conn.Close()
	}
}

type Relay struct {
	url        string
	exchange   string
	instanceID string
	bus        *eventbus.Bus
	outbox     chan envelope
	backoff    *streamclient.Backoff
	healthy    atomic.Bool
	stopTap    func()
	closeOnce  sync.Once
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc

	mu   sync.RWMutex
	sess *session
}

// NewRelay conecta, declara o exchange topic, ativa publisher confirms e
// registra a fila exclusiva desta instância.
func NewRelay(url, exchange string, bus *eventbus.Bus) (*Relay, error) {
	ctx, cancel := context.WithCancel(context.Background())
	r := &Relay{
		url:        url,
		exchange:   exchange,
		instanceID: uuid.NewString(),
		bus:        bus,
		outbox:     make(chan envelope, outboxSize),
		backoff:    streamclient.NewBackoff(reconnectMinDelay, reconnectMaxDelay, 2),
		ctx:        ctx,
		cancel:     cancel,
	}

	sess, err := r.openSession()
	if err != nil {
		cancel()
		return nil, err
	}
	r.sess = sess
	r.setHealthy(true)

	logrus.WithFields(logrus.Fields{
		"exchange": exchange,
		"instance": r.instanceID,
	}).Info("Relay conectado ao RabbitMQ")

	return r, nil
}

func (r *Relay) openSession() (*session, error) {
	c, err := amqp.Dial(r.url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	sess := &session{conn: c, closed: make(chan *amqp.Error, 1)}

	if sess.pubChannel, err = c.Channel(); err != nil {
		sess.close()
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	if err := sess.pubChannel.ExchangeDeclare(r.exchange, "topic", true, false, false, false, nil); err != nil {
		sess.close()
		return nil, fmt.Errorf("failed to declare topic exchange: %w", err)
	}

	if err := sess.pubChannel.Confirm(false); err != nil {
		sess.close()
		return nil, fmt.Errorf("failed to activate Publisher Confirms: %w", err)
	}

	if sess.subChannel, err = c.Channel(); err != nil {
		sess.close()
		return nil, fmt.Errorf("failed to open RabbitMQ consumer channel: %w", err)
	}

	q, err := sess.subChannel.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		sess.close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := sess.subChannel.QueueBind(q.Name, "#", r.exchange, false, nil); err != nil {
		sess.close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	sess.msgs, err = sess.subChannel.Consume(q.Name, "relay-"+r.instanceID, false, true, false, false, nil)
	if err != nil {
		sess.close()
		return nil, fmt.Errorf("failed to register consumer: %w", err)
	}

	c.NotifyClose(sess.closed)

	return sess, nil
}

// Start passa a observar o barramento e a consumir o exchange. Quedas da
// conexão são tratadas em segundo plano até Close.
func (r *Relay) Start() error {
	r.stopTap = r.bus.Observe(r.enqueue)

	r.wg.Add(2)
	go r.publishLoop()
	go r.superviseLoop()

	return nil
}

func (r *Relay) current() *session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sess
}

func (r *Relay) setHealthy(ok bool) {
	r.healthy.Store(ok)
	if ok {
		metrics.BrokerHealth.Set(1)
		return
	}
	metrics.BrokerHealth.Set(0)
}

// superviseLoop consome a sessão atual e, quando ela cai, abre outra com
// espera exponencial entre as tentativas.
func (r *Relay) superviseLoop() {
	defer r.wg.Done()

	for {
		r.consume(r.current())
		if r.ctx.Err() != nil {
			return
		}

		r.setHealthy(false)

		next, err := reconnect(r.ctx, r.backoff, r.openSession)
		if err != nil {
			return
		}

		r.mu.Lock()
		previous := r.sess
		r.sess = next
		r.mu.Unlock()
		previous.close()

		r.setHealthy(true)
		logrus.WithField("instance", r.instanceID).Info("relay: reconnected to RabbitMQ")
	}
}

// reconnect tenta open até conseguir ou até ctx ser cancelado
func reconnect[T any](ctx context.Context, backoff *streamclient.Backoff, open func() (T, error)) (T, error) {
	for {
		delay := backoff.Next()

		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-time.After(delay):
		}

		v, err := open()
		if err == nil {
			backoff.Reset()
			return v, nil
		}

		logrus.WithFields(logrus.Fields{
			"attempt": backoff.Attempts(),
			"delay":   delay.String(),
			"error":   err.Error(),
		}).Warn("relay: reconnect attempt failed")
	}
}

func (r *Relay) enqueue(d eventbus.Delivery) {
	// eventos vindos de outra instância não voltam para o exchange
	if d.Remote {
		return
	}

	select {
	case r.outbox <- envelope{Origin: r.instanceID, Key: d.Key, Event: d.Event}:
	default:
		metrics.BrokerMessages.WithLabelValues("out", "dropped").Inc()
	}
}

func (r *Relay) publishLoop() {
	defer r.wg.Done()

	for {
		select {
		case <-r.ctx.Done():
			return
		case env := <-r.outbox:
			if err := r.publish(r.ctx, env); err != nil {
				metrics.BrokerMessages.WithLabelValues("out", "failed").Inc()
				logrus.WithFields(logrus.Fields{
					"key":      env.Key,
					"event_id": env.Event.ID,
					"error":    err.Error(),
				}).Warn("relay: failed to publish event")
				continue
			}
			metrics.BrokerMessages.WithLabelValues("out", "acked").Inc()
		}
	}
}

func (r *Relay) publish(ctx context.Context, env envelope) error {
	if !r.IsHealthy() {
		return fmt.Errorf("broker connection is closed")
	}

	body, err := encodeEnvelope(env)
	if err != nil {
		return err
	}

	deferred, err := r.current().pubChannel.PublishWithDeferredConfirmWithContext(
		ctx,
		r.exchange,
		routingKeyFor(env.Key),
		false,
		false,
		amqp.Publishing{
			Headers:     amqp.Table{originHeader: env.Origin},
			ContentType: "application/json",
			MessageId:   env.Event.ID,
			Timestamp:   env.Event.CreatedAt,
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish call failed: %w", err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-deferred.Done():
		if !deferred.Acked() {
			return fmt.Errorf("RabbitMQ NACK received")
		}
		return nil
	case <-time.After(confirmTimeout):
		return fmt.Errorf("publisher confirm timeout")
	}
}

// consume retorna quando a conexão da sessão cai ou o relay é fechado
func (r *Relay) consume(sess *session) {
	for {
		select {
		case <-r.ctx.Done():
			return
		case err := <-sess.closed:
			logrus.WithField("error", err).Warn("RabbitMQ connection closed")
			return
		case d, ok := <-sess.msgs:
			if !ok {
				logrus.Warn("relay: consumer channel closed")
				return
			}

			env, err := decodeDelivery(d.Body)
			if err != nil {
				metrics.BrokerMessages.WithLabelValues("in", "malformed").Inc()
				logrus.WithField("error", err.Error()).Error("relay: failed to decode message")
				_ = d.Nack(false, false)
				continue
			}

			if env.Origin != r.instanceID {
				r.bus.Deliver(env.Key, env.Event)
				metrics.BrokerMessages.WithLabelValues("in", "delivered").Inc()
			}

			if err := d.Ack(false); err != nil {
				logrus.WithField("error", err.Error()).Warn("relay: failed to ack message")
			}
		}
	}
}

// Close para os loops e fecha a sessão atual
func (r *Relay) Close() error {
	r.closeOnce.Do(func() {
		logrus.Info("Encerrando relay do RabbitMQ")
		if r.stopTap != nil {
			r.stopTap()
		}
		r.cancel()
		r.wg.Wait()
		r.setHealthy(false)
		if sess := r.current(); sess != nil {
			sess.close()
		}
	})
	return nil
}

func (r *Relay) IsHealthy() bool {
	return r.healthy.Load()
}

// routingKeyFor converte "user:1" em "user.1"
func routingKeyFor(key string) string {
	return strings.ReplaceAll(key, ":", ".")
}

func encodeEnvelope(env envelope) ([]byte, error) {
	body, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize event: %w", err)
	}
	return body, nil
}

func decodeDelivery(body []byte) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return envelope{}, fmt.Errorf("failed to unmarshal message: %w", err)
	}
	if env.Key == "" || env.Origin == "" {
		return envelope{}, fmt.Errorf("message without key or origin")
	}
	return env, nil
}
