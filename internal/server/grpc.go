package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	myGRPC "github.com/MKhiriev/go-vault-sync/internal/handler/grpc"
	"github.com/MKhiriev/go-vault-sync/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server          *grpc.Server
	gRPCNetListener net.Listener

	// probeCtx scopes the health probe started by RunServer.
	probeCtx  context.Context
	stopProbe context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer()
	handler.Register(srv)

	ctx, cancel := context.WithCancel(context.Background())

	return &grpcServer{
		handler:   handler,
		address:   cfg.GRPCAddress,
		server:    srv,
		probeCtx:  ctx,
		stopProbe: cancel,
		logger:    logger,
	}
}

func (g *grpcServer) Listen() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC listen on %q: %w", g.address, err)
	}
	g.gRPCNetListener = lis
	return nil
}

func (g *grpcServer) Addr() string {
	if g.gRPCNetListener == nil {
		return g.address
	}
	return g.gRPCNetListener.Addr().String()
}

func (g *grpcServer) RunServer() {
	if g.gRPCNetListener == nil {
		g.logger.Error().Err(errNotListening).Msg("gRPC server cannot serve")
		return
	}

	probeDone := make(chan struct{})
	go func() {
		defer close(probeDone)
		g.handler.RunHealthProbe(g.probeCtx)
	}()
	defer func() {
		g.stopProbe()
		<-probeDone
	}()

	g.logger.Info().Str("address", g.Addr()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.stopProbe()
	g.server.GracefulStop()
	if g.gRPCNetListener != nil {
		_ = g.gRPCNetListener.Close()
	}
}
