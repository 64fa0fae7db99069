// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import "errors"

var (
	ErrMissingHost = errors.New("SMTP host is required")
	ErrMissingFrom = errors.New("SMTP from address is required")

	ErrBuildingMessage = errors.New("error building mail message")
	ErrSendingMessage  = errors.New("error sending mail message")

	// ErrQueueFull is returned by [Dispatcher] when the delivery queue has no
	// free slot. The code is dropped.
	ErrQueueFull = errors.New("delivery queue is full")

	// ErrDispatcherStopped is returned by [Dispatcher] after Shutdown.
	ErrDispatcherStopped = errors.New("delivery dispatcher is stopped")
)
