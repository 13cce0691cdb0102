package server

import (
	"fmt"
	"net"

	"github.com/MKhiriev/go-notes-auth/internal/config"
	myGRPC "github.com/MKhiriev/go-notes-auth/internal/handler/grpc"
	"github.com/MKhiriev/go-notes-auth/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

type grpcServer struct {
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	opts := handler.ServerOptions()
	if cfg.TLSEnabled() {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			return nil, fmt.Errorf("gRPC server TLS: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	}

	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("gRPC server listen on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(opts...)
	handler.RegisterOn(server)

	return &grpcServer{
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) Addr() string {
	return g.gRPCNetListener.Addr().String()
}

func (g *grpcServer) RunServer() error {
	g.logger.Info().Str("address", g.Addr()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.server.GracefulStop()
}
