// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard grpc.health.v1 service. The reported
// status follows the reachability of the account store.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
)

// ServiceName is the service name reported next to the overall ("") status.
const ServiceName = "accounts.v1.CredentialService"

const (
	DefaultCheckInterval = 10 * time.Second
	pingTimeout          = 2 * time.Second
)

// Handler keeps the health status up to date by pinging the store.
type Handler struct {
	health   *health.Server
	pinger   store.Pinger
	interval time.Duration

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The status starts as NOT_SERVING until
// the first successful ping.
func NewHandler(pinger store.Pinger, interval time.Duration, logger *logger.Logger) *Handler {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}

	h := &Handler{
		health:   health.NewServer(),
		pinger:   pinger,
		interval: interval,
		logger:   logger,
	}
	h.setStatus(grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(s, h.health)
}

// Run implements workers.Worker. It checks the store right away and then every
// interval until ctx is done, after which every status turns NOT_SERVING.
func (h *Handler) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

// Check pings the store once and updates the status.
func (h *Handler) Check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.pinger.PingContext(pingCtx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.Check").Msg("account store is unreachable")
		h.setStatus(grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		return
	}

	h.setStatus(grpc_health_v1.HealthCheckResponse_SERVING)
}

func (h *Handler) setStatus(status grpc_health_v1.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
