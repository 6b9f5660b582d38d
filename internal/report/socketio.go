// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package report

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/vk/tsconv/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// connectTimeout bounds the wait for the initial socket.io handshake.
const connectTimeout = 15 * time.Second

// Options configures the socket.io reporter.
type Options struct {
	URL                string
	Namespace          string
	InsecureSkipVerify bool
}

// SocketIO emits progress events over a persistent socket.io connection.
type SocketIO struct {
	mu     sync.Mutex
	client *socket.Socket
}

// Dial connects to the socket.io server described by opts and waits for the
// connection to be acknowledged.
func Dial(ctx context.Context, opts Options) (*SocketIO, error) {
	logger := ctxlog.FromContext(ctx).With("reporter", "socketio", "url", opts.URL)

	target, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("reporter URL %q must include scheme and host", opts.URL)
	}
	if opts.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
	}

	sockOpts := socketOptions(target.Path, opts.InsecureSkipVerify)
	manager := socket.NewManager(target.Scheme+"://"+target.Host, sockOpts)
	client := manager.Socket(opts.Namespace, sockOpts)

	logger.Info("Connecting progress reporter...")
	if err := awaitConnect(ctx, client, connectTimeout); err != nil {
		client.Disconnect()
		return nil, err
	}
	logger.Debug("Reporter connected", "sid", client.Id())
	return &SocketIO{client: client}, nil
}

// offer sends err on ch unless ch is full.
func offer(ch chan<- error, err error) {
	select {
	case ch <- err:
	default:
	}
}

func socketOptions(path string, insecure bool) *socket.Options {
	opts := socket.DefaultOptions()
	opts.SetPath(path)
	if insecure {
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))
	return opts
}

// awaitConnect starts the connection and blocks until the first of connect,
// connect_error, ctx cancellation or timeout. The result channel holds one
// value and later events are dropped, so a late callback never blocks.
func awaitConnect(ctx context.Context, client *socket.Socket, timeout time.Duration) error {
	result := make(chan error, 1)
	deliver := func(err error) { offer(result, err) }

	client.Once(types.EventName("connect"), func(...any) {
		deliver(nil)
	})
	client.Once(types.EventName("connect_error"), func(errs ...any) {
		err := errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		deliver(err)
	})
	client.Connect()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-result:
		if err != nil {
			return fmt.Errorf("socket.io connection failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for socket.io connection: %w", ctx.Err())
	case <-timer.C:
		return fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}
}

// FileProcessed emits EventFileProcessed.
func (r *SocketIO) FileProcessed(ctx context.Context, e FileEvent) {
	r.emit(ctx, EventFileProcessed, e.Payload())
}

// BatchFinished emits EventBatchFinished.
func (r *SocketIO) BatchFinished(ctx context.Context, e BatchEvent) {
	r.emit(ctx, EventBatchFinished, e.Payload())
}

func (r *SocketIO) emit(ctx context.Context, event string, payload map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ctxlog.FromContext(ctx).Debug("Emitting event", "event", event, "file", payload["file"])
	r.client.Emit(event, payload)
}

// Close disconnects from the server.
func (r *SocketIO) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.client.Disconnect()
	return nil
}
