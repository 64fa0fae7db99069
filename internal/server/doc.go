// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the transport servers and the background components of
// the account service.
//
// It binds the HTTP and gRPC listeners, starts the delivery dispatcher and
// the health checker, and on a stop signal shuts everything down in order:
// listeners first, then queued deliveries, then background workers.
package server
