// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-account-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
)

type grpcServer struct {
	address string

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) listen() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("error listening gRPC on %s: %w", g.address, err)
	}
	g.gRPCNetListener = listener
	return nil
}

func (g *grpcServer) run() error {
	if g.gRPCNetListener == nil {
		return errServerNotListening
	}

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("Launching gRPC server")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.server.GracefulStop()
}
