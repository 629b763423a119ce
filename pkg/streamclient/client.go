// Package streamclient consome o endpoint SSE reconectando com backoff.
package streamclient

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var ErrReconnectExhausted = errors.New("stream: reconnect attempts exhausted")

// Frame é um evento SSE recebido
type Frame struct {
	ID    string
	Event string
	Data  string
}

type Options struct {
	MinDelay    time.Duration
	MaxDelay    time.Duration
	Multiplier  float64
	MaxAttempts int
	Header      http.Header
	Sleep       func(ctx context.Context, d time.Duration) error
}

type Client struct {
	url        string
	httpClient *http.Client
	opts       Options
}

func New(url string, httpClient *http.Client, opts Options) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if opts.MinDelay <= 0 {
		opts.MinDelay = time.Second
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = 30 * time.Second
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 5
	}
	if opts.Sleep == nil {
		opts.Sleep = sleep
	}

	return &Client{url: url, httpClient: httpClient, opts: opts}
}

// Run lê o stream entregando cada frame a fn. Uma conexão que chegou a abrir
// zera as tentativas. Depois de MaxAttempts reconexões sem sucesso retorna
// ErrReconnectExhausted. Um erro de fn encerra o Run com esse erro.
func (c *Client) Run(ctx context.Context, fn func(Frame) error) error {
	backoff := NewBackoff(c.opts.MinDelay, c.opts.MaxDelay, c.opts.Multiplier)
	lastID := ""

	for {
		connected, err := c.consume(ctx, &lastID, fn)
		if ctx.Err() != nil {
			return nil
		}

		var handlerErr *handlerError
		if errors.As(err, &handlerErr) {
			return handlerErr.err
		}

		if connected {
			backoff.Reset()
		}

		if backoff.Attempts() >= c.opts.MaxAttempts {
			logrus.WithFields(logrus.Fields{
				"url":      c.url,
				"attempts": backoff.Attempts(),
			}).Error("stream: giving up reconnecting")
			return ErrReconnectExhausted
		}

		wait := backoff.Next()
		fields := logrus.Fields{
			"url":     c.url,
			"attempt": backoff.Attempts(),
			"wait":    wait.String(),
		}
		if err != nil {
			fields["error"] = err.Error()
		}
		logrus.WithFields(fields).Warn("stream: connection lost, reconnecting")

		if err := c.opts.Sleep(ctx, wait); err != nil {
			return nil
		}
	}
}

type handlerError struct {
	err error
}

func (e *handlerError) Error() string { return e.err.Error() }

func (c *Client) consume(ctx context.Context, lastID *string, fn func(Frame) error) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return false, err
	}
	for k, values := range c.opts.Header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "text/event-stream")
	if *lastID != "" {
		req.Header.Set("Last-Event-ID", *lastID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("stream: unexpected status %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var frame Frame
	var data []string
	for scanner.Scan() {
		line := scanner.Text()

		if line == "" {
			if frame.Event == "" && len(data) == 0 {
				continue
			}
			frame.Data = strings.Join(data, "\n")
			if frame.ID != "" {
				*lastID = frame.ID
			}
			if err := fn(frame); err != nil {
				return true, &handlerError{err: err}
			}
			frame, data = Frame{}, nil
			continue
		}

		// comentário
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")

		switch field {
		case "id":
			frame.ID = value
		case "event":
			frame.Event = value
		case "data":
			data = append(data, value)
		}
	}

	if err := scanner.Err(); err != nil {
		return true, err
	}

	return true, errors.New("stream: closed by server")
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
