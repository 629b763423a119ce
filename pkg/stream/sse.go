// Package stream entrega eventos do barramento em conexões Server-Sent Events.
package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/pkg/eventbus"
	"github.com/vfg2006/ads-mirror-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrStreamingUnsupported = errors.New("response writer does not support flushing")

type Options struct {
	KeepaliveInterval time.Duration
	BufferSize        int
}

// Serve mantém a conexão aberta até o contexto da requisição terminar.
// Ao retornar, a inscrição no notifier e o ticker de keepalive já foram
// liberados.
func Serve(ctx context.Context, w http.ResponseWriter, notifier eventbus.ChangeNotifier, keys []string, opts Options) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return ErrStreamingUnsupported
	}

	if opts.KeepaliveInterval <= 0 {
		opts.KeepaliveInterval = 25 * time.Second
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = 32
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	metrics.StreamConnections.Inc()
	defer metrics.StreamConnections.Dec()

	listenCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	frames := make(chan domain.Event, opts.BufferSize)
	done := make(chan error, 1)
	go func() {
		done <- notifier.Listen(listenCtx, keys, func(evt domain.Event) error {
			select {
			case frames <- evt:
			default:
				metrics.StreamDropped.Inc()
			}
			return nil
		})
	}()

	ticker := time.NewTicker(opts.KeepaliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			cancel()
			<-done
			return nil

		case err := <-done:
			return err

		case evt := <-frames:
			if err := WriteFrame(w, evt); err != nil {
				cancel()
				<-done
				return err
			}
			flusher.Flush()

		case now := <-ticker.C:
			keepalive := domain.Event{
				Type:      domain.EventKeepalive,
				CreatedAt: now.UTC(),
			}
			if err := WriteFrame(w, keepalive); err != nil {
				cancel()
				<-done
				return err
			}
			flusher.Flush()
		}
	}
}

// WriteFrame escreve um evento no formato SSE (id, event, data)
func WriteFrame(w io.Writer, evt domain.Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"event_id":   evt.ID,
			"event_type": evt.Type,
			"error":      err.Error(),
		}).Error("stream: failed to encode event")
		return nil
	}

	if evt.ID != "" {
		if _, err := fmt.Fprintf(w, "id: %s\n", evt.ID); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", evt.Type, data)
	return err
}
