package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-mirror-api/infrastructure/lock"
	"github.com/vfg2006/ads-mirror-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-mirror-api/internal/config"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	mirrormocks "github.com/vfg2006/ads-mirror-api/internal/usecases/mirroring/mocks"
	syncmocks "github.com/vfg2006/ads-mirror-api/internal/usecases/syncing/mocks"
	"github.com/vfg2006/ads-mirror-api/pkg/eventbus"
	"go.uber.org/mock/gomock"
)

type engineFixture struct {
	users  *mocks.MockUserRepository
	syncer *syncmocks.MockSyncer
	reader *mirrormocks.MockReader
	bus    *eventbus.Bus
	engine *PollingEngine
}

func newEngineFixture(t *testing.T, locker lock.Locker) *engineFixture {
	ctrl := gomock.NewController(t)

	f := &engineFixture{
		users:  mocks.NewMockUserRepository(ctrl),
		syncer: syncmocks.NewMockSyncer(ctrl),
		reader: mirrormocks.NewMockReader(ctrl),
		bus:    eventbus.New(),
	}

	cfg := &config.Config{}
	cfg.Polling.Interval = time.Hour

	f.engine = NewPollingEngine(f.users, f.syncer, f.reader, f.bus, locker, cfg)
	t.Cleanup(func() { f.engine.Stop() })

	return f
}

func adState(id, status string) domain.EntityState {
	return domain.EntityState{Kind: domain.EntityAd, ID: id, AccountID: "act_1", Status: status, EffectiveStatus: status}
}

func snapshotOf(states ...domain.EntityState) domain.Snapshot {
	s := domain.Snapshot{}
	for _, state := range states {
		s.Add(state)
	}
	return s
}

func TestPollUserEmiteUmEventoPorMudanca(t *testing.T) {
	f := newEngineFixture(t, nil)

	var events []domain.Event
	f.bus.Subscribe(domain.UserKey(7), func(evt domain.Event) error {
		events = append(events, evt)
		return nil
	})

	gomock.InOrder(
		f.reader.EXPECT().Snapshot(gomock.Any(), 7).Return(snapshotOf(adState("A", "ACTIVE"), adState("B", "ACTIVE")), nil),
		f.syncer.EXPECT().FullSync(gomock.Any(), 7, gomock.Nil()).Return(&domain.SyncResult{}, nil),
		f.reader.EXPECT().Snapshot(gomock.Any(), 7).Return(snapshotOf(adState("A", "PAUSED"), adState("B", "ACTIVE"), adState("C", "ACTIVE")), nil),
	)

	changes, err := f.engine.TriggerPollForUser(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "A", changes[0].ID)
	assert.Equal(t, "ACTIVE", changes[0].OldStatus)
	assert.Equal(t, "PAUSED", changes[0].NewStatus)

	require.Len(t, events, 1)
	assert.Equal(t, domain.EventEntityChanged, events[0].Type)
	assert.Equal(t, domain.UserKey(7), events[0].Key)
}

func TestPollUserUsaSnapshotAnterior(t *testing.T) {
	f := newEngineFixture(t, nil)

	gomock.InOrder(
		f.reader.EXPECT().Snapshot(gomock.Any(), 7).Return(snapshotOf(adState("A", "ACTIVE")), nil),
		f.syncer.EXPECT().FullSync(gomock.Any(), 7, gomock.Nil()).Return(&domain.SyncResult{}, nil),
		f.reader.EXPECT().Snapshot(gomock.Any(), 7).Return(snapshotOf(adState("A", "ACTIVE")), nil),
		f.syncer.EXPECT().FullSync(gomock.Any(), 7, gomock.Nil()).Return(&domain.SyncResult{}, nil),
		f.reader.EXPECT().Snapshot(gomock.Any(), 7).Return(snapshotOf(adState("A", "PAUSED")), nil),
	)

	first, err := f.engine.TriggerPollForUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, first)

	second, err := f.engine.TriggerPollForUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestTickIsolaFalhasPorUsuario(t *testing.T) {
	f := newEngineFixture(t, nil)

	f.users.EXPECT().ListUsersWithUpstreamToken(gomock.Any()).Return([]*domain.User{{ID: 1}, {ID: 2}}, nil)
	f.reader.EXPECT().Snapshot(gomock.Any(), 1).Return(domain.Snapshot{}, nil)
	f.syncer.EXPECT().FullSync(gomock.Any(), 1, gomock.Nil()).Return(nil, domain.ErrUnauthorized)
	f.reader.EXPECT().Snapshot(gomock.Any(), 2).Return(snapshotOf(adState("A", "ACTIVE")), nil).Times(2)
	f.syncer.EXPECT().FullSync(gomock.Any(), 2, gomock.Nil()).Return(&domain.SyncResult{}, nil)

	ran := f.engine.Tick(context.Background())

	assert.True(t, ran)
	status := f.engine.GetStatus()
	assert.Equal(t, 2, status["last_users_polled"])
	assert.False(t, status["last_tick_completed_at"].(time.Time).IsZero())
}

func TestTickSobrepostoEIgnorado(t *testing.T) {
	f := newEngineFixture(t, nil)

	entered := make(chan struct{})
	release := make(chan struct{})

	f.users.EXPECT().ListUsersWithUpstreamToken(gomock.Any()).DoAndReturn(
		func(context.Context) ([]*domain.User, error) {
			close(entered)
			<-release
			return []*domain.User{}, nil
		}).Times(1)

	done := make(chan bool)
	go func() { done <- f.engine.Tick(context.Background()) }()

	<-entered
	assert.False(t, f.engine.Tick(context.Background()))

	close(release)
	assert.True(t, <-done)
	assert.Equal(t, 1, f.engine.GetStatus()["ticks_skipped"])
}

func TestTickSemLockDistribuidoEIgnorado(t *testing.T) {
	locker := lock.NewLocalLocker()
	unlock, ok, err := locker.TryLock(context.Background(), pollingLockKey)
	require.NoError(t, err)
	require.True(t, ok)
	defer unlock()

	f := newEngineFixture(t, locker)

	assert.False(t, f.engine.Tick(context.Background()))
}

func TestTickFalhaAoListarUsuarios(t *testing.T) {
	f := newEngineFixture(t, nil)
	f.users.EXPECT().ListUsersWithUpstreamToken(gomock.Any()).Return(nil, errors.New("db down"))

	assert.True(t, f.engine.Tick(context.Background()))
}

func TestStartIdempotente(t *testing.T) {
	first := newEngineFixture(t, nil)
	second := newEngineFixture(t, nil)

	state, err := first.engine.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateRunning, state)

	state, err = first.engine.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateRunning, state)

	// outro motor no mesmo processo não sobe
	state, err = second.engine.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateRunning, state)
	assert.Equal(t, StateStopped, second.engine.State())

	assert.Equal(t, StateStopped, first.engine.Stop())
	assert.Equal(t, StateStopped, first.engine.Stop())

	state, err = second.engine.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateRunning, second.engine.State())
	assert.Equal(t, StateRunning, state)
}

func TestStartParaQuandoContextoCancela(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx, cancel := context.WithCancel(context.Background())

	_, err := f.engine.Start(ctx)
	require.NoError(t, err)

	cancel()

	assert.Eventually(t, func() bool {
		return f.engine.State() == StateStopped
	}, time.Second, 10*time.Millisecond)
}

func TestStopEncerraObservadorDoContexto(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := f.engine.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateStopped, f.engine.Stop())

	waitWatchers(t, f.engine)
}

func TestStartComContextoSemCancelamento(t *testing.T) {
	f := newEngineFixture(t, nil)

	state, err := f.engine.Start(context.WithoutCancel(context.Background()))
	require.NoError(t, err)
	assert.Equal(t, StateRunning, state)

	// nenhum observador fica preso esperando um Done que nunca fecha
	waitWatchers(t, f.engine)

	assert.Equal(t, StateStopped, f.engine.Stop())
}

func TestCancelamentoAtrasadoNaoParaNovaExecucao(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx, cancel := context.WithCancel(context.Background())

	_, err := f.engine.Start(ctx)
	require.NoError(t, err)
	f.engine.Stop()
	waitWatchers(t, f.engine)

	_, err = f.engine.Start(context.Background())
	require.NoError(t, err)
	cancel()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, StateRunning, f.engine.State())
}

func waitWatchers(t *testing.T, engine *PollingEngine) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		engine.watchers.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("observador do contexto não encerrou")
	}
}

func TestPollConcorrenteDoMesmoUsuarioPublicaUmaVez(t *testing.T) {
	f := newEngineFixture(t, nil)

	var mu sync.Mutex
	var events []domain.Event
	f.bus.Subscribe(domain.UserKey(7), func(evt domain.Event) error {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, evt)
		return nil
	})

	entered := make(chan struct{})
	release := make(chan struct{})
	var syncs int
	var synced bool

	f.users.EXPECT().ListUsersWithUpstreamToken(gomock.Any()).Return([]*domain.User{{ID: 7}}, nil)
	f.reader.EXPECT().Snapshot(gomock.Any(), 7).DoAndReturn(
		func(context.Context, int) (domain.Snapshot, error) {
			mu.Lock()
			defer mu.Unlock()
			if synced {
				return snapshotOf(adState("A", "PAUSED")), nil
			}
			return snapshotOf(adState("A", "ACTIVE")), nil
		}).AnyTimes()
	f.syncer.EXPECT().FullSync(gomock.Any(), 7, gomock.Nil()).DoAndReturn(
		func(context.Context, int, *domain.InsightFilters) (*domain.SyncResult, error) {
			mu.Lock()
			syncs++
			first := syncs == 1
			mu.Unlock()
			if first {
				close(entered)
				<-release
			}
			mu.Lock()
			synced = true
			mu.Unlock()
			return &domain.SyncResult{}, nil
		}).Times(2)

	tickDone := make(chan struct{})
	go func() {
		defer close(tickDone)
		f.engine.Tick(context.Background())
	}()
	<-entered

	triggerDone := make(chan struct{})
	var triggered []domain.ChangeEvent
	go func() {
		defer close(triggerDone)
		triggered, _ = f.engine.TriggerPollForUser(context.Background(), 7)
	}()

	time.Sleep(50 * time.Millisecond)
	close(release)
	<-tickDone
	<-triggerDone

	assert.Empty(t, triggered)
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventEntityChanged, events[0].Type)
}
