// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts
// multiple workers together and waits for all of them to return.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until the worker has no more work or ctx is cancelled. The
// aggregate runs every worker in its own goroutine.
//
// Example implementation:
//
//	type MyWorker struct{ jobs <-chan Job }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    for job := range w.jobs {
//	        job.Do(ctx)
//	    }
//	}
type Worker interface {
	Run(ctx context.Context)
}
