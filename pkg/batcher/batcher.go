// Package batcher executa operações assíncronas em lotes com concorrência
// limitada e espera fixa entre lotes, respeitando o limite de taxa do Meta.
package batcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/pkg/metrics"
)

// Sleeper aguarda d ou até o contexto ser cancelado
type Sleeper func(ctx context.Context, d time.Duration) error

// Options define o tamanho do lote (B) e a espera entre lotes (D)
type Options struct {
	Name      string
	BatchSize int
	Delay     time.Duration
	Sleep     Sleeper
}

// Run processa inputs em ⌈N/B⌉ lotes. Cada lote roda até B operações em
// paralelo e aguarda Delay antes do lote seguinte (nunca depois do último).
// O resultado mantém a ordem de entrada; falhas e panics de um item viram
// fallback(item, err) sem afetar os demais.
func Run[I, O any](
	ctx context.Context,
	inputs []I,
	opts Options,
	op func(context.Context, I) (O, error),
	fallback func(I, error) O,
) []O {
	results := make([]O, len(inputs))
	if len(inputs) == 0 {
		return results
	}

	size := opts.BatchSize
	if size <= 0 {
		size = 1
	}

	sleep := opts.Sleep
	if sleep == nil {
		sleep = wait
	}

	for start := 0; start < len(inputs); start += size {
		if start > 0 && opts.Delay > 0 {
			if err := sleep(ctx, opts.Delay); err != nil {
				fillFallback(results, inputs, start, fallback, err)
				return results
			}
		}

		if err := ctx.Err(); err != nil {
			fillFallback(results, inputs, start, fallback, err)
			return results
		}

		end := min(start+size, len(inputs))

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = runItem(ctx, opts.Name, inputs[i], op, fallback)
			}(i)
		}
		wg.Wait()

		metrics.BatcherBatches.WithLabelValues(opts.Name).Inc()
	}

	return results
}

func runItem[I, O any](
	ctx context.Context,
	name string,
	input I,
	op func(context.Context, I) (O, error),
	fallback func(I, error) O,
) (result O) {
	defer func() {
		if r := recover(); r != nil {
			metrics.BatcherItemFailures.WithLabelValues(name).Inc()
			logrus.WithFields(logrus.Fields{
				"batcher": name,
				"panic":   r,
			}).Error("batcher: operation panicked")
			result = fallback(input, fmt.Errorf("panic: %v", r))
		}
	}()

	out, err := op(ctx, input)
	if err != nil {
		metrics.BatcherItemFailures.WithLabelValues(name).Inc()
		logrus.WithFields(logrus.Fields{
			"batcher": name,
			"error":   err.Error(),
		}).Debug("batcher: operation failed, using fallback")
		return fallback(input, err)
	}

	return out
}

func fillFallback[I, O any](results []O, inputs []I, from int, fallback func(I, error) O, err error) {
	for i := from; i < len(inputs); i++ {
		results[i] = fallback(inputs[i], err)
	}
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
