package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-notes-auth/internal/config"
	"github.com/MKhiriev/go-notes-auth/internal/handler"
	"github.com/MKhiriev/go-notes-auth/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	shutdownOnce sync.Once
}

// NewServer creates a server for every handler present and binds its
// address. Listeners already opened are closed if a later one fails.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			if servers.httpServer != nil {
				_ = servers.httpServer.listener.Close()
			}
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

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

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		// finish HTTP server
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}

		// finish gRPC server
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}

func (s *server) Run(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	errs := make(chan error, 2)
	var running sync.WaitGroup

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		running.Go(func() { errs <- s.httpServer.RunServer() })
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching gRPC server")
		running.Go(func() { errs <- s.gRPCServer.RunServer() })
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errs:
		// a server stopped on its own; take the others down too
	}

	s.Shutdown()
	running.Wait()
	close(errs)

	for err := range errs {
		runErr = errors.Join(runErr, err)
	}
	if runErr != nil {
		return fmt.Errorf("server stopped: %w", runErr)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
