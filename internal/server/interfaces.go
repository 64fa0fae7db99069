// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the process.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down
	// gracefully.
	RunServer()

	// Serve serves until ctx is done or a listener fails.
	Serve(ctx context.Context) error
}

// Background is a component started together with the servers and drained
// after they stop accepting requests, such as the delivery dispatcher.
type Background interface {
	Start(ctx context.Context)
	Shutdown(ctx context.Context) error
}
