// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
)

// Workers runs a fixed set of [Worker] values concurrently.
type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers returns an aggregate over workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Len returns the number of workers in the aggregate.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Go(func() {
			worker.Run(ctx)
		})
	}
}

// Wait blocks until every worker started by Run has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
