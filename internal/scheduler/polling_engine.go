package scheduler

//go:generate mockgen -source=polling_engine.go -destination=mocks/polling_engine.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/infrastructure/lock"
	"github.com/vfg2006/ads-mirror-api/infrastructure/repository"
	"github.com/vfg2006/ads-mirror-api/internal/config"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/mirroring"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-mirror-api/pkg/eventbus"
	"github.com/vfg2006/ads-mirror-api/pkg/metrics"
)

type State string

const (
	StateStopped State = "STOPPED"
	StateRunning State = "RUNNING"

	pollingLockKey = "polling-engine"
)

type Poller interface {
	Start(ctx context.Context) (State, error)
	Stop() State
	State() State
	TriggerPollForUser(ctx context.Context, userID int) ([]domain.ChangeEvent, error)
	GetStatus() map[string]any
}

// Só um motor de polling roda por processo
var (
	activeMu     sync.Mutex
	activeEngine *PollingEngine
)

// PollingEngine sincroniza periodicamente cada usuário com token e publica
// um entity.changed para cada entidade cujo status ou orçamento mudou.
type PollingEngine struct {
	interval time.Duration
	users    repository.UserRepository
	syncer   syncing.Syncer
	reader   mirroring.Reader
	bus      eventbus.Publisher
	locker   lock.Locker
	now      func() time.Time

	mu        sync.Mutex
	state     State
	scheduler *gocron.Scheduler
	stop      chan struct{}
	watchers  sync.WaitGroup

	tickMu  sync.Mutex
	ticking bool

	snapMu    sync.Mutex
	snapshots map[int]domain.Snapshot
	userLocks map[int]*sync.Mutex

	statusMu            sync.Mutex
	lastTickStartedAt   time.Time
	lastTickCompletedAt time.Time
	lastUsersPolled     int
	eventsEmitted       int
	ticksSkipped        int
}

// NewPollingEngine cria o motor parado. locker é opcional: quando presente,
// apenas uma instância executa cada tick.
func NewPollingEngine(
	users repository.UserRepository,
	syncer syncing.Syncer,
	reader mirroring.Reader,
	bus eventbus.Publisher,
	locker lock.Locker,
	cfg *config.Config,
) *PollingEngine {
	interval := cfg.Polling.Interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	logrus.WithFields(logrus.Fields{
		"interval":         interval.String(),
		"distributed_lock": locker != nil,
	}).Info("polling: engine configured")

	return &PollingEngine{
		interval:  interval,
		users:     users,
		syncer:    syncer,
		reader:    reader,
		bus:       bus,
		locker:    locker,
		now:       func() time.Time { return time.Now().UTC() },
		state:     StateStopped,
		snapshots: make(map[int]domain.Snapshot),
		userLocks: make(map[int]*sync.Mutex),
	}
}

// Start agenda os ticks. Chamar com o motor já rodando, ou com outro motor
// rodando no processo, não faz nada e retorna RUNNING. O motor para quando ctx
// é cancelado; um ctx que nunca cancela deixa a parada a cargo de Stop.
func (e *PollingEngine) Start(ctx context.Context) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateRunning {
		return StateRunning, nil
	}

	activeMu.Lock()
	defer activeMu.Unlock()

	if activeEngine != nil {
		logrus.Info("polling: another engine is already running, ignoring start")
		return StateRunning, nil
	}

	scheduler := gocron.NewScheduler(time.UTC)
	_, err := scheduler.Every(e.interval).WaitForSchedule().Do(func() {
		e.Tick(context.Background())
	})
	if err != nil {
		return StateStopped, fmt.Errorf("erro ao agendar o polling: %w", err)
	}

	scheduler.StartAsync()

	stop := make(chan struct{})
	e.scheduler = scheduler
	e.stop = stop
	e.state = StateRunning
	activeEngine = e

	if done := ctx.Done(); done != nil {
		e.watchers.Add(1)
		go func() {
			defer e.watchers.Done()
			select {
			case <-done:
				e.stopRun(stop)
			case <-stop:
			}
		}()
	}

	logrus.WithField("interval", e.interval.String()).Info("polling: engine started")

	return StateRunning, nil
}

// Stop interrompe o agendamento; um tick em andamento termina normalmente
func (e *PollingEngine) Stop() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stopLocked()
}

// stopRun só para a execução iniciada com stop; um cancelamento atrasado não
// derruba uma execução posterior.
func (e *PollingEngine) stopRun(stop chan struct{}) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stop != stop {
		return
	}
	e.stopLocked()
}

func (e *PollingEngine) stopLocked() State {
	if e.state == StateStopped {
		return StateStopped
	}

	e.scheduler.Stop()
	e.scheduler = nil
	close(e.stop)
	e.stop = nil
	e.state = StateStopped

	activeMu.Lock()
	if activeEngine == e {
		activeEngine = nil
	}
	activeMu.Unlock()

	logrus.Info("polling: engine stopped")

	return StateStopped
}

func (e *PollingEngine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Tick executa uma rodada de polling. Retorna false quando a rodada foi
// ignorada porque outra ainda estava em andamento.
func (e *PollingEngine) Tick(ctx context.Context) bool {
	e.tickMu.Lock()
	if e.ticking {
		e.tickMu.Unlock()
		e.skipTick("previous tick still running")
		return false
	}
	e.ticking = true
	e.tickMu.Unlock()

	defer func() {
		e.tickMu.Lock()
		e.ticking = false
		e.tickMu.Unlock()
	}()

	if e.locker != nil {
		unlock, ok, err := e.locker.TryLock(ctx, pollingLockKey)
		if err != nil || !ok {
			if err != nil {
				logrus.WithError(err).Warn("polling: failed to acquire distributed lock")
			}
			e.skipTick("distributed lock held elsewhere")
			return false
		}
		defer unlock()
	}

	startedAt := e.now()
	e.statusMu.Lock()
	e.lastTickStartedAt = startedAt
	e.statusMu.Unlock()

	users, err := e.users.ListUsersWithUpstreamToken(ctx)
	if err != nil {
		logrus.WithError(err).Error("polling: failed to list users")
		metrics.PollTicks.WithLabelValues("failed").Inc()
		return true
	}

	emitted := 0
	for _, user := range users {
		changes, err := e.pollUser(ctx, user.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"error":   err.Error(),
			}).Warn("polling: user poll failed")
			continue
		}
		emitted += len(changes)
	}

	completedAt := e.now()
	e.statusMu.Lock()
	e.lastTickCompletedAt = completedAt
	e.lastUsersPolled = len(users)
	e.eventsEmitted += emitted
	e.statusMu.Unlock()

	metrics.PollTicks.WithLabelValues("completed").Inc()
	logrus.WithFields(logrus.Fields{
		"users":    len(users),
		"changes":  emitted,
		"duration": completedAt.Sub(startedAt).String(),
	}).Info("polling: tick completed")

	return true
}

func (e *PollingEngine) skipTick(reason string) {
	e.statusMu.Lock()
	e.ticksSkipped++
	e.statusMu.Unlock()

	metrics.PollTicks.WithLabelValues("skipped").Inc()
	logrus.WithField("reason", reason).Info("polling: tick skipped")
}

// TriggerPollForUser sincroniza e compara um usuário fora do ciclo agendado
func (e *PollingEngine) TriggerPollForUser(ctx context.Context, userID int) ([]domain.ChangeEvent, error) {
	changes, err := e.pollUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	e.statusMu.Lock()
	e.eventsEmitted += len(changes)
	e.statusMu.Unlock()

	return changes, nil
}

// pollUser usa o último snapshot em memória como base; na primeira vez a
// base é o espelho antes da sincronização. Rodadas do mesmo usuário são
// serializadas para que cada mudança seja publicada uma única vez.
func (e *PollingEngine) pollUser(ctx context.Context, userID int) ([]domain.ChangeEvent, error) {
	userLock := e.userLock(userID)
	userLock.Lock()
	defer userLock.Unlock()

	previous, ok := e.snapshot(userID)
	if !ok {
		baseline, err := e.reader.Snapshot(ctx, userID)
		if err != nil {
			return nil, err
		}
		previous = baseline
	}

	if _, err := e.syncer.FullSync(ctx, userID, nil); err != nil {
		return nil, err
	}

	current, err := e.reader.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	changes := Diff(previous, current, e.now())
	for i := range changes {
		e.bus.Publish(domain.UserKey(userID), domain.Event{
			Type: domain.EventEntityChanged,
			Data: changes[i],
		})
		metrics.ChangeEvents.WithLabelValues(string(changes[i].Kind)).Inc()
	}

	e.snapMu.Lock()
	e.snapshots[userID] = current
	e.snapMu.Unlock()

	if len(changes) > 0 {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"changes": len(changes),
		}).Info("polling: changes detected")
	}

	return changes, nil
}

func (e *PollingEngine) userLock(userID int) *sync.Mutex {
	e.snapMu.Lock()
	defer e.snapMu.Unlock()

	l, ok := e.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		e.userLocks[userID] = l
	}
	return l
}

func (e *PollingEngine) snapshot(userID int) (domain.Snapshot, bool) {
	e.snapMu.Lock()
	defer e.snapMu.Unlock()
	s, ok := e.snapshots[userID]
	return s, ok
}

// GetStatus retorna o status atual do motor
func (e *PollingEngine) GetStatus() map[string]any {
	state := e.State()

	e.statusMu.Lock()
	defer e.statusMu.Unlock()

	return map[string]any{
		"state":                  state,
		"interval":               e.interval.String(),
		"distributed_lock":       e.locker != nil,
		"last_tick_started_at":   e.lastTickStartedAt,
		"last_tick_completed_at": e.lastTickCompletedAt,
		"last_users_polled":      e.lastUsersPolled,
		"events_emitted":         e.eventsEmitted,
		"ticks_skipped":          e.ticksSkipped,
	}
}
