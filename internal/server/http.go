package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes-auth/internal/config"
	"github.com/MKhiriev/go-notes-auth/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type httpServer struct {
	server   *http.Server
	listener net.Listener

	certFile string
	keyFile  string

	logger *logger.Logger
}

// newHTTPServer binds cfg.HTTPAddress right away so that a busy port is
// reported at startup.
func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) (*httpServer, error) {
	listener, err := net.Listen("tcp", cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("HTTP server listen on %s: %w", cfg.HTTPAddress, err)
	}

	s := &httpServer{
		server: &http.Server{
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		listener: listener,
		logger:   logger,
	}
	if cfg.TLSEnabled() {
		s.certFile, s.keyFile = cfg.TLSCertFile, cfg.TLSKeyFile
	}

	return s, nil
}

func (h *httpServer) Addr() string {
	return h.listener.Addr().String()
}

func (h *httpServer) RunServer() error {
	var err error
	if h.certFile != "" {
		h.logger.Info().Str("address", h.Addr()).Msg("HTTPS server listening")
		err = h.server.ServeTLS(h.listener, h.certFile, h.keyFile)
	} else {
		h.logger.Info().Str("address", h.Addr()).Msg("HTTP server listening")
		err = h.server.Serve(h.listener)
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("HTTP server Serve: %w", err)
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	h.logger.Info().Msg("HTTP server Shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
