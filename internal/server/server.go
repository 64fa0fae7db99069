// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/handler"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/workers"
)

// DefaultShutdownTimeout bounds the graceful shutdown of all components.
const DefaultShutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	background []Background
	workers    *workers.Workers

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer creates a server for every handler in handlers. background
// components are started before the listeners and drained after them.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, background ...Background) (Server, error) {
	return newServer(handlers, cfg, logger, background...)
}

func newServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, background ...Background) (*server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		background:      background,
		shutdownTimeout: DefaultShutdownTimeout,
		logger:          logger,
	}

	var jobs []workers.Worker
	if handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if handlers.GRPC != nil && cfg.GRPCAddress != "" {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
		jobs = append(jobs, handlers.GRPC)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.workers = workers.NewWorkers(jobs...)

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Serve(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return
	}
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Serve(ctx context.Context) error {
	if err := s.listen(); err != nil {
		return err
	}
	return s.serve(ctx)
}

// listen binds every listener so that address errors surface before anything
// is started.
func (s *server) listen() error {
	if s.httpServer != nil {
		if err := s.httpServer.listen(); err != nil {
			return err
		}
	}
	if s.gRPCServer != nil {
		if err := s.gRPCServer.listen(); err != nil {
			if s.httpServer != nil {
				_ = s.httpServer.listener.Close()
			}
			return err
		}
	}
	return nil
}

func (s *server) serve(ctx context.Context) error {
	workerCtx, stopWorkers := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWorkers()

	for _, b := range s.background {
		b.Start(workerCtx)
	}
	s.workers.Run(workerCtx)

	errCh := make(chan error, 2)
	if s.httpServer != nil {
		go func() { errCh <- s.httpServer.run() }()
	}
	if s.gRPCServer != nil {
		go func() { errCh <- s.gRPCServer.run() }()
	}

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	shutdownErr := s.shutdown()

	stopWorkers()
	s.workers.Wait()

	return errors.Join(serveErr, shutdownErr)
}

// shutdown stops the listeners and then drains the background components.
func (s *server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		s.httpServer.shutdown(ctx)
	}
	if s.gRPCServer != nil {
		s.gRPCServer.shutdown()
	}

	var errs []error
	for _, b := range s.background {
		if err := b.Shutdown(ctx); err != nil {
			s.logger.Err(err).Msg("error draining background component")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
