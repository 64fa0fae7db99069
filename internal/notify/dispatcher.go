// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/workers"
)

// job is one queued delivery. The plaintext code is captured at enqueue time
// because only its hash is ever persisted.
type job struct {
	kind  kind
	email string
	code  string
	log   *logger.Logger
}

// Dispatcher is an asynchronous [Notifier]. Send calls enqueue the code and
// return at once; a pool of workers drains the queue through the wrapped
// Notifier.
type Dispatcher struct {
	next   Notifier
	jobs   chan job
	pool   *workers.Workers
	logger *logger.Logger

	mu      sync.RWMutex
	stopped bool
	cancel  context.CancelFunc
}

// NewDispatcher wraps next with a queue of queueSize slots drained by
// workerCount workers. Call Start before serving requests and Shutdown on
// exit.
func NewDispatcher(next Notifier, workerCount, queueSize int, logger *logger.Logger) *Dispatcher {
	d := &Dispatcher{
		next:   next,
		jobs:   make(chan job, max(queueSize, 1)),
		logger: logger,
		cancel: func() {},
	}

	pool := make([]workers.Worker, max(workerCount, 1))
	for i := range pool {
		pool[i] = &deliveryWorker{id: i, jobs: d.jobs, next: next}
	}
	d.pool = workers.NewWorkers(pool...)

	return d
}

// Start launches the delivery workers. In-flight deliveries are detached from
// ctx cancellation; they stop when Shutdown gives up waiting.
func (d *Dispatcher) Start(ctx context.Context) {
	deliveryCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	d.mu.Lock()
	d.cancel = cancel
	d.mu.Unlock()

	d.logger.Info().Int("workers", d.pool.Len()).Int("queue_size", cap(d.jobs)).Msg("starting delivery dispatcher")
	d.pool.Run(deliveryCtx)
}

func (d *Dispatcher) SendActivationCode(ctx context.Context, email, code string) error {
	return d.enqueue(ctx, kindActivation, email, code)
}

func (d *Dispatcher) SendResetCode(ctx context.Context, email, code string) error {
	return d.enqueue(ctx, kindReset, email, code)
}

func (d *Dispatcher) enqueue(ctx context.Context, k kind, email, code string) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return ErrDispatcherStopped
	}

	select {
	case d.jobs <- job{kind: k, email: email, code: code, log: logger.FromContext(ctx)}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Shutdown stops accepting codes and waits until the queue is drained or ctx
// is done, whichever comes first. In the latter case pending deliveries are
// cancelled and ctx.Err() is returned.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.jobs)
	}
	cancel := d.cancel
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.pool.Wait()
		close(done)
	}()

	select {
	case <-done:
		cancel()
		d.logger.Info().Msg("delivery dispatcher stopped")
		return nil
	case <-ctx.Done():
		cancel()
		d.logger.Warn().Int("pending", len(d.jobs)).Msg("delivery dispatcher stopped before queue was drained")
		return ctx.Err()
	}
}

// deliveryWorker drains the dispatcher queue until it is closed.
type deliveryWorker struct {
	id   int
	jobs <-chan job
	next Notifier
}

func (w *deliveryWorker) Run(ctx context.Context) {
	for j := range w.jobs {
		if ctx.Err() != nil {
			j.log.Warn().Int("worker", w.id).Str("email", j.email).Stringer("kind", j.kind).Msg("delivery dropped on shutdown")
			continue
		}

		jobCtx := j.log.WithContext(ctx)

		var err error
		switch j.kind {
		case kindReset:
			err = w.next.SendResetCode(jobCtx, j.email, j.code)
		default:
			err = w.next.SendActivationCode(jobCtx, j.email, j.code)
		}
		if err != nil {
			j.log.Err(err).Int("worker", w.id).Str("email", j.email).Stringer("kind", j.kind).Msg("async delivery failed")
		}
	}
}
