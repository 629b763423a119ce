package batcher

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sleepRecorder struct {
	mu    sync.Mutex
	waits []time.Duration
}

func (s *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waits = append(s.waits, d)
	return ctx.Err()
}

func (s *sleepRecorder) total() time.Duration {
	var sum time.Duration
	for _, w := range s.waits {
		sum += w
	}
	return sum
}

func identity(_ context.Context, i int) (int, error) { return i * 10, nil }

func negative(i int, _ error) int { return -i }

func TestRun_BatchesAndWaits(t *testing.T) {
	tests := []struct {
		name          string
		inputs        int
		batchSize     int
		expectBatches int
		expectWaits   int
	}{
		{name: "lista vazia não espera", inputs: 0, batchSize: 3, expectBatches: 0, expectWaits: 0},
		{name: "um único lote", inputs: 3, batchSize: 3, expectBatches: 1, expectWaits: 0},
		{name: "lote parcial no final", inputs: 7, batchSize: 3, expectBatches: 3, expectWaits: 2},
		{name: "50 anúncios com lote de 3", inputs: 50, batchSize: 3, expectBatches: 17, expectWaits: 16},
		{name: "tamanho de lote inválido vira 1", inputs: 4, batchSize: 0, expectBatches: 4, expectWaits: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &sleepRecorder{}
			inputs := make([]int, tt.inputs)
			for i := range inputs {
				inputs[i] = i
			}

			var batches atomic.Int32
			var inFlight, maxInFlight atomic.Int32

			size := tt.batchSize
			if size <= 0 {
				size = 1
			}

			op := func(ctx context.Context, i int) (int, error) {
				if i%size == 0 {
					batches.Add(1)
				}
				cur := inFlight.Add(1)
				for {
					prev := maxInFlight.Load()
					if cur <= prev || maxInFlight.CompareAndSwap(prev, cur) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				inFlight.Add(-1)
				return identity(ctx, i)
			}

			results := Run(context.Background(), inputs, Options{
				Name:      "test",
				BatchSize: tt.batchSize,
				Delay:     500 * time.Millisecond,
				Sleep:     recorder.sleep,
			}, op, negative)

			assert.Len(t, results, tt.inputs)
			assert.Equal(t, int32(tt.expectBatches), batches.Load())
			assert.Len(t, recorder.waits, tt.expectWaits)
			assert.Equal(t, time.Duration(tt.expectWaits)*500*time.Millisecond, recorder.total())
			assert.LessOrEqual(t, maxInFlight.Load(), int32(size))
		})
	}
}

func TestRun_PreservesInputOrder(t *testing.T) {
	inputs := []int{0, 1, 2, 3, 4, 5}

	// itens do primeiro lote terminam depois dos do segundo
	op := func(_ context.Context, i int) (int, error) {
		time.Sleep(time.Duration(6-i) * time.Millisecond)
		return i * 10, nil
	}

	results := Run(context.Background(), inputs, Options{BatchSize: 3}, op, negative)

	assert.Equal(t, []int{0, 10, 20, 30, 40, 50}, results)
}

func TestRun_IsolatesFailures(t *testing.T) {
	inputs := []int{1, 2, 3, 4}

	op := func(_ context.Context, i int) (int, error) {
		switch i {
		case 2:
			return 0, errors.New("upstream falhou")
		case 3:
			panic("boom")
		}
		return i * 10, nil
	}

	var fallbackErrs []string
	var mu sync.Mutex
	fallback := func(i int, err error) int {
		mu.Lock()
		fallbackErrs = append(fallbackErrs, err.Error())
		mu.Unlock()
		return -i
	}

	results := Run(context.Background(), inputs, Options{BatchSize: 4}, op, fallback)

	assert.Equal(t, []int{10, -2, -3, 40}, results)
	assert.Len(t, fallbackErrs, 2)
}

func TestRun_StopsOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	op := func(_ context.Context, i int) (int, error) {
		calls.Add(1)
		return i, nil
	}

	cancelingSleep := func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	}

	results := Run(ctx, []int{1, 2, 3, 4, 5}, Options{BatchSize: 2, Delay: time.Second, Sleep: cancelingSleep}, op, negative)

	require.Len(t, results, 5)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, []int{1, 2, -3, -4, -5}, results)
}

func TestRun_DefaultSleepHonorsDelay(t *testing.T) {
	start := time.Now()
	Run(context.Background(), []int{1, 2, 3}, Options{BatchSize: 1, Delay: 20 * time.Millisecond}, identity, negative)
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}
